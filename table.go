package main

import (
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"

	"github.com/df07/go-ris-ltc/pkg/logger"
	"github.com/df07/go-ris-ltc/pkg/ltc"
)

var (
	TableKindFlag = cli.StringFlag{
		Name:  "kind",
		Usage: "analytic table family (identity, scaled-cosine)",
		Value: "scaled-cosine",
	}
	TableSizeFlag = cli.IntFlag{
		Name:  "size",
		Usage: "table resolution along both axes",
		Value: builtinTableSize,
	}
	TableDirFlag = cli.StringFlag{
		Name:     "dir",
		Usage:    "directory receiving the table files",
		Required: true,
	}
)

// TableCommand writes analytic LTC tables in the format --tables reads
var TableCommand = cli.Command{
	Action: tableAction,
	Name:   "table",
	Usage:  "write analytic LTC tables",
	Flags:  []cli.Flag{&TableKindFlag, &TableSizeFlag, &TableDirFlag},
	Description: `
The table command writes the three row tables of an analytic LTC fit as
gzip compressed grids. Fitted tables in the same format can replace them.`,
}

func tableAction(ctx *cli.Context) error {
	log := logger.NewLogger(ctx.String(logger.LogLevelFlag.Name), "Table")

	size := ctx.Int(TableSizeFlag.Name)
	if size < 2 {
		return errors.Newf("table size must be at least 2, got %d", size)
	}

	var tables ltc.Tables
	switch kind := ctx.String(TableKindFlag.Name); kind {
	case "identity":
		tables = ltc.NewIdentityTables(size)
	case "scaled-cosine":
		tables = ltc.NewScaledCosineTables(size)
	default:
		return errors.Newf("unknown table kind %q", kind)
	}

	dir := ctx.String(TableDirFlag.Name)
	if err := ltc.SaveTables(dir, tables); err != nil {
		return err
	}
	log.Noticef("Wrote %dx%d %s tables to %s", size, size, ctx.String(TableKindFlag.Name), dir)
	return nil
}
