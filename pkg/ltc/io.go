package ltc

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/gzip"

	"github.com/df07/go-ris-ltc/pkg/core"
)

// gridMagic starts every table file
var gridMagic = [4]byte{'L', 'T', 'C', 'G'}

// maxGridSize bounds the dimensions accepted when reading a table
const maxGridSize = 4096

// TableFileNames are the file names LoadTables and SaveTables use for the
// three row tables
var TableFileNames = [3]string{"ltc_1.bin.gz", "ltc_2.bin.gz", "ltc_3.bin.gz"}

// WriteGrid encodes a grid as gzip-compressed little-endian float64 texels
// preceded by a magic number and the dimensions
func WriteGrid(w io.Writer, g *Grid) error {
	zw := gzip.NewWriter(w)
	bw := bufio.NewWriter(zw)

	header := []any{gridMagic, uint32(g.Width), uint32(g.Height)}
	for _, field := range header {
		if err := binary.Write(bw, binary.LittleEndian, field); err != nil {
			return errors.Wrap(err, "writing table header")
		}
	}

	buf := make([]byte, 24)
	for _, t := range g.Texels {
		binary.LittleEndian.PutUint64(buf[0:], math.Float64bits(t.X))
		binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(t.Y))
		binary.LittleEndian.PutUint64(buf[16:], math.Float64bits(t.Z))
		if _, err := bw.Write(buf); err != nil {
			return errors.Wrap(err, "writing table texels")
		}
	}

	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "flushing table")
	}
	return errors.Wrap(zw.Close(), "closing gzip stream")
}

// ReadGrid decodes a grid written by WriteGrid
func ReadGrid(r io.Reader) (*Grid, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "opening gzip stream")
	}
	defer zr.Close()
	br := bufio.NewReader(zr)

	var magic [4]byte
	var width, height uint32
	for _, field := range []any{&magic, &width, &height} {
		if err := binary.Read(br, binary.LittleEndian, field); err != nil {
			return nil, errors.Wrap(err, "reading table header")
		}
	}
	if magic != gridMagic {
		return nil, errors.Newf("not an LTC table (magic %q)", magic[:])
	}
	if width == 0 || height == 0 || width > maxGridSize || height > maxGridSize {
		return nil, errors.Newf("invalid table dimensions %dx%d", width, height)
	}

	g := NewGrid(int(width), int(height))
	buf := make([]byte, 24)
	for i := range g.Texels {
		if _, err := io.ReadFull(br, buf); err != nil {
			return nil, errors.Wrapf(err, "reading texel %d", i)
		}
		g.Texels[i] = core.NewVec3(
			math.Float64frombits(binary.LittleEndian.Uint64(buf[0:])),
			math.Float64frombits(binary.LittleEndian.Uint64(buf[8:])),
			math.Float64frombits(binary.LittleEndian.Uint64(buf[16:])),
		)
	}
	return g, nil
}

// LoadGrid reads a table file
func LoadGrid(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening table %s", path)
	}
	defer f.Close()

	g, err := ReadGrid(f)
	if err != nil {
		return nil, errors.Wrapf(err, "loading table %s", path)
	}
	return g, nil
}

// SaveGrid writes a table file
func SaveGrid(path string, g *Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating table %s", path)
	}
	if err := WriteGrid(f, g); err != nil {
		f.Close()
		return errors.Wrapf(err, "saving table %s", path)
	}
	return errors.Wrapf(f.Close(), "closing table %s", path)
}

// LoadTables reads the three row tables from dir
func LoadTables(dir string) (Tables, error) {
	var grids [3]*Grid
	for i, name := range TableFileNames {
		g, err := LoadGrid(filepath.Join(dir, name))
		if err != nil {
			return Tables{}, err
		}
		grids[i] = g
	}
	return Tables{R1: grids[0], R2: grids[1], R3: grids[2]}, nil
}

// SaveTables writes the three row tables into dir. Only grid-backed tables
// can be saved.
func SaveTables(dir string, tables Tables) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "creating table directory %s", dir)
	}
	for i, table := range []Table{tables.R1, tables.R2, tables.R3} {
		g, ok := table.(*Grid)
		if !ok {
			return errors.Newf("table %d is %T, only *ltc.Grid can be saved", i+1, table)
		}
		if err := SaveGrid(filepath.Join(dir, TableFileNames[i]), g); err != nil {
			return err
		}
	}
	return nil
}
