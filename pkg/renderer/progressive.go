package renderer

import (
	"context"
	"image"
	"image/color"
	"math/rand"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/op/go-logging"

	"github.com/df07/go-ris-ltc/pkg/core"
	"github.com/df07/go-ris-ltc/pkg/geometry"
	"github.com/df07/go-ris-ltc/pkg/integrator"
)

// ProgressiveConfig contains configuration for progressive rendering
type ProgressiveConfig struct {
	TileSize           int   // Size of each tile
	InitialSamples     int   // Samples for first pass
	MaxSamplesPerPixel int   // Maximum total samples per pixel
	MaxPasses          int   // Maximum number of passes
	NumWorkers         int   // Number of parallel workers (0 = use CPU count)
	BatchSize          int   // Lanes evaluated together
	Seed               int64 // Base seed of the tile random generators
}

// DefaultProgressiveConfig returns sensible default values
func DefaultProgressiveConfig() ProgressiveConfig {
	return ProgressiveConfig{
		TileSize:           32,
		InitialSamples:     1,
		MaxSamplesPerPixel: 16,
		MaxPasses:          4,
		NumWorkers:         0,
		BatchSize:          16,
		Seed:               42,
	}
}

// Validate checks the pass layout
func (c ProgressiveConfig) Validate() error {
	switch {
	case c.TileSize < 1:
		return errors.Newf("tile size must be positive, got %d", c.TileSize)
	case c.MaxPasses < 1:
		return errors.Newf("max passes must be positive, got %d", c.MaxPasses)
	case c.InitialSamples < 1 || c.MaxSamplesPerPixel < c.InitialSamples:
		return errors.Newf("need 1 <= initial samples (%d) <= max samples per pixel (%d)",
			c.InitialSamples, c.MaxSamplesPerPixel)
	}
	return nil
}

// PassResult contains the result of a single pass
type PassResult struct {
	PassNumber int
	Image      *image.RGBA
	Stats      RenderStats
	IsLast     bool
}

// ProgressiveRenderer renders an image in passes of increasing sample
// counts, parallelized over tiles
type ProgressiveRenderer struct {
	width, height int
	config        ProgressiveConfig
	tiles         []*Tile        // Tile management
	pixelStats    [][]PixelStats // Shared pixel statistics array (global image coordinates)
	workerPool    *WorkerPool    // Worker pool for parallel processing
	logger        *logging.Logger
}

// NewProgressiveRenderer creates a new progressive renderer for the camera's image
func NewProgressiveRenderer(scene integrator.Scene, camera *geometry.Camera, integ integrator.Integrator, config ProgressiveConfig, logger *logging.Logger) (*ProgressiveRenderer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	width, height := camera.Width(), camera.Height()
	tiles := NewTileGrid(width, height, config.TileSize, config.Seed)

	pixelStats := make([][]PixelStats, height)
	for y := range pixelStats {
		pixelStats[y] = make([]PixelStats, width)
	}

	tileRenderer := NewTileRenderer(scene, camera, integ, config.BatchSize)
	return &ProgressiveRenderer{
		width:      width,
		height:     height,
		config:     config,
		tiles:      tiles,
		pixelStats: pixelStats,
		workerPool: NewWorkerPool(tileRenderer, len(tiles), config.NumWorkers),
		logger:     logger,
	}, nil
}

// getSamplesForPass calculates the target total samples for a given pass
func (pr *ProgressiveRenderer) getSamplesForPass(passNumber int) int {
	if pr.config.MaxPasses == 1 {
		return pr.config.MaxSamplesPerPixel
	}

	// First pass is a quick preview
	if passNumber == 1 {
		return pr.config.InitialSamples
	}

	// Divide remaining samples evenly across remaining passes
	remainingSamples := pr.config.MaxSamplesPerPixel - pr.config.InitialSamples
	remainingPasses := pr.config.MaxPasses - 1
	samplesPerPass := remainingSamples / remainingPasses

	targetSamples := pr.config.InitialSamples + (passNumber-1)*samplesPerPass
	if passNumber >= pr.config.MaxPasses {
		targetSamples = pr.config.MaxSamplesPerPixel
	}

	return targetSamples
}

// RenderPass renders a single progressive pass using parallel processing.
// Cancelling ctx stops the pass between tiles.
func (pr *ProgressiveRenderer) RenderPass(ctx context.Context, passNumber int) (*image.RGBA, RenderStats, error) {
	targetSamples := pr.getSamplesForPass(passNumber)

	pr.logger.Debugf("Pass %d: target %d samples per pixel (using %d workers)",
		passNumber, targetSamples, pr.workerPool.GetNumWorkers())

	pr.workerPool.Start()

	for taskID, tile := range pr.tiles {
		pr.workerPool.SubmitTask(TileTask{
			Ctx:           ctx,
			Tile:          tile,
			PassNumber:    passNumber,
			TargetSamples: targetSamples,
			TaskID:        taskID,
			PixelStats:    pr.pixelStats,
		})
	}

	// Collect every result, even after a failure, so that no task of this
	// pass is left in the queues
	var stats RenderStats
	var passErr error
	for range pr.tiles {
		result, ok := pr.workerPool.GetResult()
		if !ok {
			return nil, RenderStats{}, errors.New("worker pool closed unexpectedly")
		}
		if result.Error != nil {
			passErr = result.Error
			continue
		}
		pr.tiles[result.TaskID].PassesCompleted++
		stats.add(result.Stats)
	}
	if passErr != nil {
		return nil, RenderStats{}, errors.Wrapf(passErr, "pass %d", passNumber)
	}
	pr.logger.Debugf("Pass %d: %d new samples, %d hit a surface", passNumber, stats.TotalSamples, stats.ValidSamples)

	return pr.Image(), pr.currentStats(targetSamples), nil
}

// RenderProgressive renders all passes in the background. Each completed
// pass is sent on the first channel; the error channel receives at most one
// error. Both channels are closed when rendering stops.
func (pr *ProgressiveRenderer) RenderProgressive(ctx context.Context) (<-chan PassResult, <-chan error) {
	passChan := make(chan PassResult, 1)
	errChan := make(chan error, 1)

	go func() {
		defer close(passChan)
		defer close(errChan)
		defer pr.Close()

		pr.logger.Infof("Starting progressive rendering with %d passes", pr.config.MaxPasses)
		start := time.Now()

		for pass := 1; pass <= pr.config.MaxPasses; pass++ {
			if err := ctx.Err(); err != nil {
				pr.logger.Warningf("Rendering cancelled before pass %d", pass)
				errChan <- err
				return
			}

			passStart := time.Now()
			img, stats, err := pr.RenderPass(ctx, pass)
			if err != nil {
				errChan <- err
				return
			}

			pr.logger.Infof("Pass %d completed in %v (%.1f samples/pixel)",
				pass, time.Since(passStart).Round(time.Millisecond), stats.AverageSamples)

			isLast := pass == pr.config.MaxPasses || stats.AverageSamples >= float64(pr.config.MaxSamplesPerPixel)
			select {
			case passChan <- PassResult{PassNumber: pass, Image: img, Stats: stats, IsLast: isLast}:
			case <-ctx.Done():
				errChan <- ctx.Err()
				return
			}
			if isLast {
				break
			}
		}

		pr.logger.Infof("Rendering finished in %v", time.Since(start).Round(time.Millisecond))
	}()

	return passChan, errChan
}

// Render runs all passes and returns the final image
func (pr *ProgressiveRenderer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	passes, errs := pr.RenderProgressive(ctx)

	var last PassResult
	for result := range passes {
		last = result
	}
	if err := <-errs; err != nil {
		return nil, RenderStats{}, err
	}
	return last.Image, last.Stats, nil
}

// Close stops the worker pool. The renderer cannot render afterwards.
func (pr *ProgressiveRenderer) Close() {
	pr.workerPool.Stop()
}

// Image converts the current pixel averages to a gamma corrected image
func (pr *ProgressiveRenderer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, pr.width, pr.height))
	for y := 0; y < pr.height; y++ {
		for x := 0; x < pr.width; x++ {
			img.SetRGBA(x, y, vec3ToColor(pr.pixelStats[y][x].GetColor()))
		}
	}
	return img
}

// Radiance returns the current per-pixel radiance estimates, row by row
func (pr *ProgressiveRenderer) Radiance() [][]core.Vec3 {
	radiance := make([][]core.Vec3, pr.height)
	for y := range radiance {
		radiance[y] = make([]core.Vec3, pr.width)
		for x := range radiance[y] {
			radiance[y][x] = pr.pixelStats[y][x].GetColor()
		}
	}
	return radiance
}

// Summary summarizes the current pixel statistics
func (pr *ProgressiveRenderer) Summary() Summary {
	return Summarize(pr.pixelStats)
}

// currentStats computes the render statistics of the whole image
func (pr *ProgressiveRenderer) currentStats(targetSamples int) RenderStats {
	stats := RenderStats{
		TotalPixels: pr.width * pr.height,
		MaxSamples:  targetSamples,
	}
	for y := range pr.pixelStats {
		for x := range pr.pixelStats[y] {
			stats.TotalSamples += pr.pixelStats[y][x].SampleCount
		}
	}
	if stats.TotalPixels > 0 {
		stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	}
	return stats
}

// vec3ToColor converts a Vec3 color to RGBA with proper clamping and gamma correction
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.GammaCorrect(2.0).Clamp(0.0, 1.0)
	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID              int             // Unique tile identifier
	Bounds          image.Rectangle // Pixel bounds (x0,y0,x1,y1)
	PassesCompleted int             // Number of passes completed for this tile
	Random          *rand.Rand      // Tile-specific random generator for deterministic results
}

// tileSeedStride separates the seeds of neighbouring tiles
const tileSeedStride = 1_000_003

// NewTile creates a new tile whose random generator is seeded from the
// render seed and the tile ID
func NewTile(id int, bounds image.Rectangle, seed int64) *Tile {
	return &Tile{
		ID:     id,
		Bounds: bounds,
		Random: rand.New(rand.NewSource(seed*tileSeedStride + int64(id) + 1)),
	}
}

// NewTileGrid creates a grid of tiles covering the entire image
func NewTileGrid(width, height, tileSize int, seed int64) []*Tile {
	var tiles []*Tile
	tileID := 0

	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Don't exceed image bounds
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, NewTile(tileID, image.Rect(x0, y0, x1, y1), seed))
			tileID++
		}
	}

	return tiles
}
