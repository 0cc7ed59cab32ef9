package ltc

import (
	"math"

	"github.com/df07/go-ris-ltc/pkg/core"
)

// Table is a 2D lookup of RGB texels. The three LTC tables store the rows of
// the transform matrix indexed by (view angle, roughness).
type Table interface {
	Lookup(uv core.Vec2, active bool) core.Vec3
}

// Tables groups the three row tables of the LTC transform
type Tables struct {
	R1 Table
	R2 Table
	R3 Table
}

// Complete reports whether all three tables are present
func (t Tables) Complete() bool {
	return t.R1 != nil && t.R2 != nil && t.R3 != nil
}

// Grid is a bilinear, clamp-to-edge RGB texture. U runs along the width
// (view angle axis) and V along the height (roughness axis). Values are
// returned raw, without colour conversion.
type Grid struct {
	Width  int
	Height int
	Texels []core.Vec3 // Row-major, Height rows of Width texels
}

// NewGrid allocates a zeroed grid
func NewGrid(width, height int) *Grid {
	width = max(1, width)
	height = max(1, height)
	return &Grid{Width: width, Height: height, Texels: make([]core.Vec3, width*height)}
}

// At returns the texel at integer coordinates, clamped to the grid
func (g *Grid) At(x, y int) core.Vec3 {
	x = max(0, min(g.Width-1, x))
	y = max(0, min(g.Height-1, y))
	return g.Texels[y*g.Width+x]
}

// Set stores a texel
func (g *Grid) Set(x, y int, v core.Vec3) {
	g.Texels[y*g.Width+x] = v
}

// Fill sets every texel from f, called with the texel-centre coordinates
func (g *Grid) Fill(f func(u, v float64) core.Vec3) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			u := (float64(x) + 0.5) / float64(g.Width)
			v := (float64(y) + 0.5) / float64(g.Height)
			g.Set(x, y, f(u, v))
		}
	}
}

// Lookup implements Table. Inactive lanes still perform the lookup.
func (g *Grid) Lookup(uv core.Vec2, active bool) core.Vec3 {
	fx := uv.X*float64(g.Width) - 0.5
	fy := uv.Y*float64(g.Height) - 0.5
	if math.IsNaN(fx) || math.IsNaN(fy) {
		fx, fy = 0, 0
	}

	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := max(0, min(1, fx-float64(x0)))
	ty := max(0, min(1, fy-float64(y0)))

	top := lerp(g.At(x0, y0), g.At(x0+1, y0), tx)
	bottom := lerp(g.At(x0, y0+1), g.At(x0+1, y0+1), tx)
	return lerp(top, bottom, ty)
}

func lerp(a, b core.Vec3, t float64) core.Vec3 {
	return a.Multiply(1 - t).Add(b.Multiply(t))
}

// NewIdentityTables returns tables that encode the plain clamped cosine
// everywhere (the diffuse lobe)
func NewIdentityTables(size int) Tables {
	rows := [3]core.Vec3{
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, 1),
	}
	var grids [3]*Grid
	for i := range grids {
		row := rows[i]
		grids[i] = NewGrid(size, size)
		grids[i].Fill(func(u, v float64) core.Vec3 { return row })
	}
	return Tables{R1: grids[0], R2: grids[1], R3: grids[2]}
}

// minLobeScale keeps the scaled cosine tables invertible at low roughness
const minLobeScale = 0.02

// NewScaledCosineTables returns an analytic stand-in for fitted tables: the
// cosine lobe is squeezed towards the normal by a factor equal to the
// roughness (M = diag(a, a, 1)), approaching the plain cosine as the
// roughness approaches 1.
func NewScaledCosineTables(size int) Tables {
	r1 := NewGrid(size, size)
	r2 := NewGrid(size, size)
	r3 := NewGrid(size, size)
	r1.Fill(func(u, v float64) core.Vec3 { return core.NewVec3(lobeScale(v), 0, 0) })
	r2.Fill(func(u, v float64) core.Vec3 { return core.NewVec3(0, lobeScale(v), 0) })
	r3.Fill(func(u, v float64) core.Vec3 { return core.NewVec3(0, 0, 1) })
	return Tables{R1: r1, R2: r2, R3: r3}
}

func lobeScale(roughness float64) float64 {
	return max(minLobeScale, min(1, roughness))
}
