package renderer

import (
	"context"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-ris-ltc/pkg/geometry"
	"github.com/df07/go-ris-ltc/pkg/integrator"
	"github.com/df07/go-ris-ltc/pkg/logger"
	"github.com/df07/go-ris-ltc/pkg/ltc"
	"github.com/df07/go-ris-ltc/pkg/scene"
)

func TestProgressiveSampleCalculation(t *testing.T) {
	config := DefaultProgressiveConfig()
	config.InitialSamples = 1
	config.MaxSamplesPerPixel = 50
	config.MaxPasses = 7

	pr := &ProgressiveRenderer{config: config}

	// Pass 1: 1 sample, then (50-1)/6 = 8 more per pass, the last pass gets the rest
	expectedTotalSamples := []int{1, 9, 17, 25, 33, 41, 50}

	for pass := 1; pass <= 7; pass++ {
		totalSamples := pr.getSamplesForPass(pass)

		if totalSamples != expectedTotalSamples[pass-1] {
			t.Errorf("Pass %d: expected %d total samples, got %d",
				pass, expectedTotalSamples[pass-1], totalSamples)
		}
	}

	pr.config.MaxPasses = 1
	if got := pr.getSamplesForPass(1); got != 50 {
		t.Errorf("Single pass: expected 50 samples, got %d", got)
	}
}

func TestProgressiveConfig_Validate(t *testing.T) {
	require.NoError(t, DefaultProgressiveConfig().Validate())

	tests := []struct {
		name   string
		modify func(*ProgressiveConfig)
	}{
		{"zero tile size", func(c *ProgressiveConfig) { c.TileSize = 0 }},
		{"zero passes", func(c *ProgressiveConfig) { c.MaxPasses = 0 }},
		{"zero initial samples", func(c *ProgressiveConfig) { c.InitialSamples = 0 }},
		{"max below initial", func(c *ProgressiveConfig) { c.InitialSamples, c.MaxSamplesPerPixel = 4, 2 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultProgressiveConfig()
			tt.modify(&config)
			assert.Error(t, config.Validate())
		})
	}
}

func TestNewTileGrid(t *testing.T) {
	width, height, tileSize := 400, 225, 64
	tiles := NewTileGrid(width, height, tileSize, 1)

	expectedTilesX := (width + tileSize - 1) / tileSize   // 7 tiles
	expectedTilesY := (height + tileSize - 1) / tileSize  // 4 tiles
	expectedTotalTiles := expectedTilesX * expectedTilesY // 28 tiles

	if len(tiles) != expectedTotalTiles {
		t.Errorf("Expected %d tiles, got %d", expectedTotalTiles, len(tiles))
	}

	// Tiles cover the entire image without gaps or overlaps
	covered := make([][]bool, height)
	for y := range covered {
		covered[y] = make([]bool, width)
	}

	for _, tile := range tiles {
		for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
			for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
				if x >= width || y >= height {
					t.Errorf("Tile %d extends beyond image bounds at (%d,%d)", tile.ID, x, y)
					continue
				}
				if covered[y][x] {
					t.Errorf("Pixel (%d,%d) is covered by multiple tiles", x, y)
				}
				covered[y][x] = true
			}
		}
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !covered[y][x] {
				t.Errorf("Pixel (%d,%d) is not covered by any tile", x, y)
			}
		}
	}
}

func TestTileDeterministicRandom(t *testing.T) {
	bounds := image.Rect(0, 0, 64, 64)
	val1 := NewTile(42, bounds, 7).Random.Float64()
	val2 := NewTile(42, bounds, 7).Random.Float64()
	if val1 != val2 {
		t.Errorf("Tiles with same ID and seed should produce same random values: %f != %f", val1, val2)
	}

	if val3 := NewTile(43, bounds, 7).Random.Float64(); val1 == val3 {
		t.Error("Tiles with different IDs should produce different random values")
	}
	if val4 := NewTile(42, bounds, 8).Random.Float64(); val1 == val4 {
		t.Error("Tiles with different seeds should produce different random values")
	}
}

// newUnitSquareRenderer renders a small view of the unit square scene
func newUnitSquareRenderer(t *testing.T, name string, config ProgressiveConfig) *ProgressiveRenderer {
	t.Helper()
	s, err := scene.Load("unit-square")
	require.NoError(t, err)

	cameraConfig := s.CameraConfig
	cameraConfig.Width = 12
	camera := geometry.NewCamera(cameraConfig)

	cfg := integrator.DefaultConfig()
	cfg.NumProposals = 4
	integ, err := integrator.New(name, cfg, ltc.NewIdentityTables(8))
	require.NoError(t, err)

	pr, err := NewProgressiveRenderer(s, camera, integ, config, logger.NewLogger("error", "renderer-test"))
	require.NoError(t, err)
	return pr
}

func smallConfig(workers int) ProgressiveConfig {
	config := DefaultProgressiveConfig()
	config.TileSize = 5
	config.MaxSamplesPerPixel = 4
	config.MaxPasses = 3
	config.BatchSize = 7
	config.NumWorkers = workers
	return config
}

func TestRenderProgressive_Passes(t *testing.T) {
	pr := newUnitSquareRenderer(t, "ris", smallConfig(2))

	passes, errs := pr.RenderProgressive(context.Background())
	var results []PassResult
	for result := range passes {
		results = append(results, result)
	}
	require.NoError(t, <-errs)

	require.Len(t, results, 3)
	assert.Equal(t, 1, results[0].Stats.MaxSamples)
	assert.InDelta(t, 2.0, results[1].Stats.AverageSamples, 1e-12)
	assert.InDelta(t, 4.0, results[2].Stats.AverageSamples, 1e-12)
	assert.True(t, results[2].IsLast)
	assert.Equal(t, image.Rect(0, 0, 12, 12), results[2].Image.Bounds())
	assert.Greater(t, pr.Summary().MeanLuminance, 0.0)
}

func TestRender_DeterministicAcrossWorkerCounts(t *testing.T) {
	for _, name := range []string{"ris", "ltc-ris"} {
		t.Run(name, func(t *testing.T) {
			single := newUnitSquareRenderer(t, name, smallConfig(1))
			_, _, err := single.Render(context.Background())
			require.NoError(t, err)

			parallel := newUnitSquareRenderer(t, name, smallConfig(4))
			_, _, err = parallel.Render(context.Background())
			require.NoError(t, err)

			assert.Equal(t, single.Radiance(), parallel.Radiance())
		})
	}
}

func TestRender_Cancelled(t *testing.T) {
	pr := newUnitSquareRenderer(t, "ltc", smallConfig(2))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := pr.Render(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
