package renderer

import (
	"image"
	"math/rand"

	"github.com/df07/go-ris-ltc/pkg/core"
	"github.com/df07/go-ris-ltc/pkg/geometry"
	"github.com/df07/go-ris-ltc/pkg/integrator"
)

// TileRenderer renders the pixels of a tile by evaluating camera samples
// in batches of lanes
type TileRenderer struct {
	scene      integrator.Scene
	camera     *geometry.Camera
	integrator integrator.Integrator
	batchSize  int
}

// NewTileRenderer creates a new tile renderer with the given scene and integrator
func NewTileRenderer(scene integrator.Scene, camera *geometry.Camera, integ integrator.Integrator, batchSize int) *TileRenderer {
	return &TileRenderer{
		scene:      scene,
		camera:     camera,
		integrator: integ,
		batchSize:  max(1, batchSize),
	}
}

type pixelSample struct {
	x, y int
}

// RenderTileBounds tops every pixel within bounds up to targetSamples.
// Samples are grouped into full batches; the last batch is padded with
// inactive lanes. Every lane, padding included, gets its own sampler seeded
// from random, so the result depends only on random's state.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, pixelStats [][]PixelStats, random *rand.Rand, targetSamples int) RenderStats {
	var pending []pixelSample
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			for s := pixelStats[y][x].SampleCount; s < targetSamples; s++ {
				pending = append(pending, pixelSample{x, y})
			}
		}
	}

	stats := RenderStats{
		TotalPixels: bounds.Dx() * bounds.Dy(),
		MaxSamples:  targetSamples,
	}

	batch := make(Batch, tr.batchSize)
	for start := 0; start < len(pending); start += tr.batchSize {
		end := min(start+tr.batchSize, len(pending))
		for i := range batch {
			sampler := core.NewSeededSampler(random.Int63())
			jitter := sampler.Get2D()
			p := pixelSample{bounds.Min.X, bounds.Min.Y}
			if start+i < end {
				p = pending[start+i]
			}
			batch[i] = Lane{
				Ray:     tr.camera.GetRay(p.x, p.y, jitter),
				Sampler: sampler,
				Active:  start+i < end,
			}
		}

		results := batch.Evaluate(tr.integrator, tr.scene)
		for i, result := range results[:end-start] {
			p := pending[start+i]
			pixelStats[p.y][p.x].AddSample(result.Radiance)
			stats.TotalSamples++
			if result.Valid {
				stats.ValidSamples++
			}
		}
	}

	if stats.TotalPixels > 0 {
		stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	}
	return stats
}
