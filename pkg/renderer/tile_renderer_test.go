package renderer

import (
	"image"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/df07/go-ris-ltc/pkg/core"
	"github.com/df07/go-ris-ltc/pkg/geometry"
	"github.com/df07/go-ris-ltc/pkg/integrator"
)

func newPixelStats(width, height int) [][]PixelStats {
	stats := make([][]PixelStats, height)
	for y := range stats {
		stats[y] = make([]PixelStats, width)
	}
	return stats
}

func testCamera(width int) *geometry.Camera {
	return geometry.NewCamera(geometry.CameraConfig{
		Center:      core.NewVec3(0, 0, 1),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       width,
		AspectRatio: 1,
		VFov:        60,
	})
}

func TestTileRenderer_PadsLastBatchWithInactiveLanes(t *testing.T) {
	ctrl := gomock.NewController(t)
	integ := integrator.NewMockIntegrator(ctrl)
	s := integrator.NewMockScene(ctrl)

	// 3x3 pixels, 2 samples each: 18 lanes in batches of 4 leave 2 padding lanes
	integ.EXPECT().Sample(s, gomock.Any(), gomock.Any(), true).Return(core.NewVec3(1, 2, 3), true).Times(18)
	integ.EXPECT().Sample(s, gomock.Any(), gomock.Any(), false).Return(core.Vec3{}, false).Times(2)

	tr := NewTileRenderer(s, testCamera(3), integ, 4)
	pixels := newPixelStats(3, 3)
	stats := tr.RenderTileBounds(image.Rect(0, 0, 3, 3), pixels, rand.New(rand.NewSource(1)), 2)

	assert.Equal(t, 18, stats.TotalSamples)
	assert.Equal(t, 18, stats.ValidSamples)
	assert.InDelta(t, 2.0, stats.AverageSamples, 1e-12)
	for y := range pixels {
		for x := range pixels[y] {
			assert.Equal(t, 2, pixels[y][x].SampleCount)
			assert.Equal(t, core.NewVec3(1, 2, 3), pixels[y][x].GetColor())
		}
	}
}

func TestTileRenderer_TopsUpToTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	integ := integrator.NewMockIntegrator(ctrl)
	s := integrator.NewMockScene(ctrl)
	integ.EXPECT().Sample(s, gomock.Any(), gomock.Any(), gomock.Any()).Return(core.NewVec3(1, 1, 1), true).AnyTimes()

	tr := NewTileRenderer(s, testCamera(2), integ, 1)
	pixels := newPixelStats(2, 2)
	pixels[0][0].SampleCount = 3

	stats := tr.RenderTileBounds(image.Rect(0, 0, 2, 2), pixels, rand.New(rand.NewSource(2)), 4)
	assert.Equal(t, 1+4+4+4, stats.TotalSamples)
	assert.Equal(t, 4, pixels[0][0].SampleCount)
	assert.Equal(t, 4, pixels[1][1].SampleCount)
}

// recordingIntegrator returns the first random number of every lane
type recordingIntegrator struct{}

func (recordingIntegrator) Sample(scene integrator.Scene, sampler core.Sampler, ray core.Ray, active bool) (core.Vec3, bool) {
	u := sampler.Get1D()
	return core.NewVec3(u, u, u).Select(active), active
}

func TestTileRenderer_Deterministic(t *testing.T) {
	render := func() [][]PixelStats {
		tr := NewTileRenderer(nil, testCamera(4), recordingIntegrator{}, 3)
		pixels := newPixelStats(4, 4)
		tr.RenderTileBounds(image.Rect(0, 0, 4, 4), pixels, rand.New(rand.NewSource(3)), 2)
		return pixels
	}
	first, second := render(), render()
	require.Equal(t, first, second)
	assert.NotEqual(t, first[0][0].ColorAccum, first[0][1].ColorAccum)
}

func TestBatch_InactiveLanesDoNotDisturbActiveOnes(t *testing.T) {
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))
	lane := func(seed int64, active bool) Lane {
		return Lane{Ray: ray, Sampler: core.NewSeededSampler(seed), Active: active}
	}

	mixed := Batch{lane(1, true), lane(2, false), lane(3, true), lane(4, false)}.Evaluate(recordingIntegrator{}, nil)
	activeOnly := Batch{lane(1, true), lane(3, true)}.Evaluate(recordingIntegrator{}, nil)

	assert.Equal(t, activeOnly[0], mixed[0])
	assert.Equal(t, activeOnly[1], mixed[2])
	for _, i := range []int{1, 3} {
		assert.True(t, mixed[i].Radiance.IsZero())
		assert.False(t, mixed[i].Valid)
	}
}
