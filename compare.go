package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/op/go-logging"
	"github.com/urfave/cli/v2"
	"gonum.org/v1/gonum/stat"

	"github.com/df07/go-ris-ltc/pkg/core"
	"github.com/df07/go-ris-ltc/pkg/logger"
	"github.com/df07/go-ris-ltc/pkg/renderer"
)

var (
	IntegratorsFlag = cli.StringSliceFlag{
		Name:  "integrators",
		Usage: "estimators to compare",
		Value: cli.NewStringSlice("ris", "ltc-ris", "ltc-mc", "ltc", "direct"),
	}
	ReferenceFlag = cli.StringFlag{
		Name:  "reference",
		Usage: "estimator the others are measured against",
		Value: "direct",
	}
	OutputDirFlag = cli.StringFlag{
		Name:  "output-dir",
		Usage: "directory receiving one image per estimator; no images if empty",
	}
)

// CompareCommand renders a scene with several estimators and tabulates
// their statistics
var CompareCommand = cli.Command{
	Action: compareAction,
	Name:   "compare",
	Usage:  "compare estimators on a preset scene",
	Flags:  append([]cli.Flag{&IntegratorsFlag, &ReferenceFlag, &OutputDirFlag}, renderFlags...),
	Description: `
The compare command renders the same scene, camera and sample budget with
each estimator and prints the mean luminance, the per-sample variance, the
RMSE against the reference estimator and the render time.`,
}

// comparison is the outcome of one estimator
type comparison struct {
	name     string
	summary  renderer.Summary
	radiance [][]core.Vec3
	elapsed  time.Duration
}

func compareAction(ctx *cli.Context) error {
	log := logger.NewLogger(ctx.String(logger.LogLevelFlag.Name), "Compare")

	setup, err := newRenderSetup(ctx, log)
	if err != nil {
		return err
	}

	names := ctx.StringSlice(IntegratorsFlag.Name)
	reference := ctx.String(ReferenceFlag.Name)
	if reference != "" && !slices.Contains(names, reference) {
		names = append(names, reference)
	}
	if len(names) == 0 {
		return errors.New("no estimators to compare")
	}

	runCtx, stop := signal.NotifyContext(ctx.Context, os.Interrupt)
	defer stop()

	outputDir := ctx.String(OutputDirFlag.Name)
	results := make([]comparison, 0, len(names))
	for _, name := range names {
		result, err := runComparison(runCtx, setup, name, outputDir, log)
		if err != nil {
			return errors.Wrapf(err, "estimator %s", name)
		}
		results = append(results, result)
	}

	var referenceRadiance [][]core.Vec3
	for _, r := range results {
		if r.name == reference {
			referenceRadiance = r.radiance
		}
	}

	t := table.NewWriter()
	t.SetOutputMirror(ctx.App.Writer)
	t.SetStyle(table.StyleLight)
	t.SetTitle("%s, %dx%d, %d spp", setup.scene.Name,
		setup.camera.Width(), setup.camera.Height(), setup.progressive.MaxSamplesPerPixel)
	t.AppendHeader(table.Row{"Estimator", "Mean luminance", "Std dev", "Sample variance", "RMSE", "Time"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})
	for _, r := range results {
		rmse := "-"
		if referenceRadiance != nil && r.name != reference {
			rmse = fmt.Sprintf("%.5f", luminanceRMSE(r.radiance, referenceRadiance))
		}
		t.AppendRow(table.Row{
			r.name,
			fmt.Sprintf("%.5f", r.summary.MeanLuminance),
			fmt.Sprintf("%.5f", r.summary.StdDevLuminance),
			fmt.Sprintf("%.5f", r.summary.MeanVariance),
			rmse,
			r.elapsed.Round(time.Millisecond),
		})
	}
	t.Render()
	return nil
}

// runComparison renders the scene with one estimator
func runComparison(ctx context.Context, setup *renderSetup, name, outputDir string, log *logging.Logger) (comparison, error) {
	pr, err := setup.newRenderer(name, log)
	if err != nil {
		return comparison{}, err
	}
	defer pr.Close()

	log.Infof("Rendering %s with %s", setup.scene.Name, name)
	start := time.Now()
	img, _, err := pr.Render(ctx)
	if err != nil {
		return comparison{}, err
	}
	result := comparison{
		name:     name,
		summary:  pr.Summary(),
		radiance: pr.Radiance(),
		elapsed:  time.Since(start),
	}

	if outputDir != "" {
		path := filepath.Join(outputDir, fmt.Sprintf("%s-%s.png", setup.scene.Name, name))
		if err := saveImage(img, path); err != nil {
			return comparison{}, err
		}
		log.Infof("Saved %s", path)
	}
	return result, nil
}

// luminanceRMSE is the root mean squared luminance difference of two
// equally sized radiance buffers
func luminanceRMSE(a, b [][]core.Vec3) float64 {
	var squared []float64
	for y := range a {
		for x := range a[y] {
			d := a[y][x].Luminance() - b[y][x].Luminance()
			squared = append(squared, d*d)
		}
	}
	if len(squared) == 0 {
		return 0
	}
	return math.Sqrt(stat.Mean(squared, nil))
}
