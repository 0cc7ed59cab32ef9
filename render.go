package main

import (
	"image"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/disintegration/imaging"
	"github.com/urfave/cli/v2"

	"github.com/df07/go-ris-ltc/pkg/logger"
	"github.com/df07/go-ris-ltc/pkg/renderer"
)

// RenderCommand renders one preset scene with one estimator
var RenderCommand = cli.Command{
	Action: renderAction,
	Name:   "render",
	Usage:  "render a preset scene progressively",
	Flags:  append([]cli.Flag{&IntegratorFlag, &OutputFlag}, renderFlags...),
	Description: `
The render command traces one camera ray per sample through the chosen
direct lighting estimator and refines the image over several passes. The
final image is written to --output.`,
}

func renderAction(ctx *cli.Context) error {
	log := logger.NewLogger(ctx.String(logger.LogLevelFlag.Name), "Render")

	setup, err := newRenderSetup(ctx, log)
	if err != nil {
		return err
	}
	name := ctx.String(IntegratorFlag.Name)
	pr, err := setup.newRenderer(name, log)
	if err != nil {
		return err
	}
	defer pr.Close()

	runCtx, stop := signal.NotifyContext(ctx.Context, os.Interrupt)
	defer stop()

	log.Noticef("Rendering %s with %s (%dx%d, %d spp)", setup.scene.Name, name,
		setup.camera.Width(), setup.camera.Height(), setup.progressive.MaxSamplesPerPixel)
	start := time.Now()

	passes, errs := pr.RenderProgressive(runCtx)
	for result := range passes {
		log.Debugf("Pass %d done, %d of %d samples valid", result.PassNumber,
			result.Stats.ValidSamples, result.Stats.TotalSamples)
	}
	if err := <-errs; err != nil {
		return err
	}

	h, m, s := logger.ParseTime(time.Since(start))
	log.Noticef("Render finished in %vh %vm %vs", h, m, s)

	img := pr.Image()
	summary := pr.Summary()
	log.Infof("Mean luminance %.5f (image %.4f), mean sample variance %.5f",
		summary.MeanLuminance, renderer.CalculateAverageLuminance(img), summary.MeanVariance)

	output := ctx.String(OutputFlag.Name)
	if err := saveImage(img, output); err != nil {
		return err
	}
	log.Noticef("Saved %s", output)
	return nil
}

// saveImage writes img to path, creating the parent directory
func saveImage(img image.Image, path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "failed to create %s", dir)
		}
	}
	if err := imaging.Save(img, path); err != nil {
		return errors.Wrapf(err, "failed to save %s", path)
	}
	return nil
}
