package main

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/op/go-logging"
	"github.com/urfave/cli/v2"

	"github.com/df07/go-ris-ltc/pkg/geometry"
	"github.com/df07/go-ris-ltc/pkg/integrator"
	"github.com/df07/go-ris-ltc/pkg/ltc"
	"github.com/df07/go-ris-ltc/pkg/renderer"
	"github.com/df07/go-ris-ltc/pkg/scene"
)

// builtinTableSize is the resolution of the tables used when no table
// directory is given
const builtinTableSize = 64

var (
	SceneFlag = cli.StringFlag{
		Name:  "scene",
		Usage: "preset scene (" + strings.Join(scene.Names(), ", ") + ")",
		Value: "unit-square",
	}
	IntegratorFlag = cli.StringFlag{
		Name:  "integrator",
		Usage: "estimator (" + strings.Join(integrator.Names(), ", ") + ")",
		Value: "ris",
	}
	ConfigFlag = cli.StringFlag{
		Name:  "config",
		Usage: "YAML file with estimator parameters; flags override it",
	}
	TablesFlag = cli.StringFlag{
		Name:  "tables",
		Usage: "directory holding ltc_1.bin.gz, ltc_2.bin.gz and ltc_3.bin.gz; built-in scaled cosine tables if empty",
	}
	ProposalsFlag = cli.IntFlag{
		Name:  "proposals",
		Usage: "candidates streamed through the reservoir",
	}
	PDFSamplesFlag = cli.IntFlag{
		Name:  "pdf-samples",
		Usage: "direction samples per LTC-RIS target estimate",
	}
	HideEmittersFlag = cli.BoolFlag{
		Name:  "hide-emitters",
		Usage: "do not show directly visible emitters",
	}
	NoVisibilityFlag = cli.BoolFlag{
		Name:  "no-visibility",
		Usage: "skip the shadow test of the RIS selection",
	}
	ReestimateFlag = cli.BoolFlag{
		Name:  "reestimate-pdf",
		Usage: "recompute the target of the selected candidate instead of reusing the streamed one",
	}
	WidthFlag = cli.IntFlag{
		Name:  "width",
		Usage: "image width in pixels; the scene's width if zero",
	}
	SamplesFlag = cli.IntFlag{
		Name:  "spp",
		Usage: "samples per pixel; the scene's default if zero",
	}
	PassesFlag = cli.IntFlag{
		Name:  "passes",
		Usage: "progressive passes",
		Value: 4,
	}
	WorkersFlag = cli.IntFlag{
		Name:  "workers",
		Usage: "parallel tile workers (0 = CPU count)",
	}
	SeedFlag = cli.Int64Flag{
		Name:  "seed",
		Usage: "base seed of the random streams",
		Value: 42,
	}
	OutputFlag = cli.StringFlag{
		Name:  "output",
		Usage: "output image path; the format follows the extension",
		Value: "output/render.png",
	}
)

// renderFlags are shared by the commands that render
var renderFlags = []cli.Flag{
	&SceneFlag,
	&ConfigFlag,
	&TablesFlag,
	&ProposalsFlag,
	&PDFSamplesFlag,
	&HideEmittersFlag,
	&NoVisibilityFlag,
	&ReestimateFlag,
	&WidthFlag,
	&SamplesFlag,
	&PassesFlag,
	&WorkersFlag,
	&SeedFlag,
}

// integratorConfig reads the estimator parameters from --config and the
// flags that were set explicitly
func integratorConfig(ctx *cli.Context) (integrator.Config, error) {
	cfg := integrator.DefaultConfig()
	if path := ctx.String(ConfigFlag.Name); path != "" {
		var err error
		if cfg, err = integrator.LoadConfig(path); err != nil {
			return cfg, err
		}
	}

	if ctx.IsSet(ProposalsFlag.Name) {
		cfg.NumProposals = ctx.Int(ProposalsFlag.Name)
	}
	if ctx.IsSet(PDFSamplesFlag.Name) {
		cfg.NumPDFSamples = ctx.Int(PDFSamplesFlag.Name)
	}
	if ctx.IsSet(HideEmittersFlag.Name) {
		cfg.HideEmitters = ctx.Bool(HideEmittersFlag.Name)
	}
	if ctx.IsSet(NoVisibilityFlag.Name) {
		cfg.VisibilityTest = !ctx.Bool(NoVisibilityFlag.Name)
	}
	if ctx.IsSet(ReestimateFlag.Name) {
		cfg.ReuseStreamPDF = !ctx.Bool(ReestimateFlag.Name)
	}
	return cfg, cfg.Validate()
}

// loadTables reads the LTC tables from --tables or builds the scaled cosine fallback
func loadTables(ctx *cli.Context, log *logging.Logger) (ltc.Tables, error) {
	dir := ctx.String(TablesFlag.Name)
	if dir == "" {
		log.Debugf("Using built-in scaled cosine tables (%dx%d)", builtinTableSize, builtinTableSize)
		return ltc.NewScaledCosineTables(builtinTableSize), nil
	}
	tables, err := ltc.LoadTables(dir)
	if err != nil {
		return ltc.Tables{}, err
	}
	log.Infof("Loaded LTC tables from %s", dir)
	return tables, nil
}

// renderSetup is everything a render needs apart from the integrator
type renderSetup struct {
	scene       *scene.Scene
	camera      *geometry.Camera
	progressive renderer.ProgressiveConfig
	config      integrator.Config
	tables      ltc.Tables
}

func newRenderSetup(ctx *cli.Context, log *logging.Logger) (*renderSetup, error) {
	s, err := scene.Load(ctx.String(SceneFlag.Name))
	if err != nil {
		return nil, err
	}
	cfg, err := integratorConfig(ctx)
	if err != nil {
		return nil, err
	}
	tables, err := loadTables(ctx, log)
	if err != nil {
		return nil, err
	}

	cameraConfig := s.CameraConfig
	if width := ctx.Int(WidthFlag.Name); width > 0 {
		cameraConfig.Width = width
	}

	progressive := renderer.DefaultProgressiveConfig()
	progressive.MaxSamplesPerPixel = s.SamplingConfig.SamplesPerPixel
	if spp := ctx.Int(SamplesFlag.Name); spp > 0 {
		progressive.MaxSamplesPerPixel = spp
	}
	progressive.MaxPasses = max(1, min(ctx.Int(PassesFlag.Name), progressive.MaxSamplesPerPixel))
	progressive.NumWorkers = ctx.Int(WorkersFlag.Name)
	progressive.Seed = ctx.Int64(SeedFlag.Name)
	if err := progressive.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid render settings")
	}

	return &renderSetup{
		scene:       s,
		camera:      geometry.NewCamera(cameraConfig),
		progressive: progressive,
		config:      cfg,
		tables:      tables,
	}, nil
}

// newRenderer creates a progressive renderer for the named integrator
func (rs *renderSetup) newRenderer(name string, log *logging.Logger) (*renderer.ProgressiveRenderer, error) {
	integ, err := integrator.New(name, rs.config, rs.tables)
	if err != nil {
		return nil, err
	}
	return renderer.NewProgressiveRenderer(rs.scene, rs.camera, integ, rs.progressive, log)
}
