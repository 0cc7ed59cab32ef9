package integrator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gonum.org/v1/gonum/stat"

	"github.com/df07/go-ris-ltc/pkg/core"
	"github.com/df07/go-ris-ltc/pkg/lights"
	"github.com/df07/go-ris-ltc/pkg/ltc"
	"github.com/df07/go-ris-ltc/pkg/material"
	"github.com/df07/go-ris-ltc/pkg/scene"
)

// countingSampler counts the random numbers drawn from it
type countingSampler struct {
	core.Sampler
	draws int
}

func (c *countingSampler) Get1D() float64 {
	c.draws++
	return c.Sampler.Get1D()
}

func (c *countingSampler) Get2D() core.Vec2 {
	c.draws += 2
	return c.Sampler.Get2D()
}

// Rays from below the unit square light: straight down onto the floor point
// under its centre and straight up into it
var (
	floorRay = core.NewRay(core.NewVec3(0, 0, 0.5), core.NewVec3(0, 0, -1))
	lightRay = core.NewRay(core.NewVec3(0, 0, 0.5), core.NewVec3(0, 0, 1))
)

// unitSquareRadiance is the exact radiance reflected by the floor point
// below the unit square light
func unitSquareRadiance() float64 {
	corner := func(a, b float64) float64 {
		sa, sb := math.Sqrt(1+a*a), math.Sqrt(1+b*b)
		return (a/sa*math.Atan(b/sa) + b/sb*math.Atan(a/sb)) / (2 * math.Pi)
	}
	return scene.UnitSquareAlbedo.X * scene.UnitSquareEmission.X * 4 * corner(0.5, 0.5)
}

func loadScene(t *testing.T, name string) *scene.Scene {
	t.Helper()
	s, err := scene.Load(name)
	require.NoError(t, err)
	return s
}

// twoLightScene has two lights of different power that are both fully
// visible from the origin
func twoLightScene(t *testing.T) *scene.Scene {
	t.Helper()
	s := scene.New("two-lights")
	s.AddQuad(core.NewVec3(-5, -5, 0), core.NewVec3(10, 0, 0), core.NewVec3(0, 10, 0),
		material.NewLambertian(core.NewVec3(0.8, 0.8, 0.8)))
	down := [2]core.Vec3{core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0)}
	s.AddQuadLight(core.NewVec3(-1.5, -0.5, 1), down[0], down[1], core.NewVec3(1, 1, 1))
	s.AddQuadLight(core.NewVec3(0.5, -0.5, 1.5), down[0], down[1], core.NewVec3(3, 3, 3))
	require.NoError(t, s.Preprocess())
	return s
}

func newIntegrator(t *testing.T, name string, cfg Config) Integrator {
	t.Helper()
	integ, err := New(name, cfg, ltc.NewIdentityTables(16))
	require.NoError(t, err)
	return integ
}

// estimates returns the red channel of n estimates along ray
func estimates(integ Integrator, s Scene, ray core.Ray, n int, seed int64) []float64 {
	sampler := core.NewSeededSampler(seed)
	values := make([]float64, n)
	for i := range values {
		radiance, _ := integ.Sample(s, sampler, ray, true)
		values[i] = radiance.X
	}
	return values
}

func assertMean(t *testing.T, want float64, values []float64) {
	t.Helper()
	mean, std := stat.MeanStdDev(values, nil)
	stderr := std / math.Sqrt(float64(len(values)))
	assert.InDelta(t, want, mean, 5*stderr+1e-9, "mean %.6f, std err %.6f", mean, stderr)
}

func TestRIS_UnbiasedOnUnitSquare(t *testing.T) {
	s := loadScene(t, "unit-square")
	for _, reuse := range []bool{true, false} {
		cfg := DefaultConfig()
		cfg.NumProposals = 8
		cfg.ReuseStreamPDF = reuse
		values := estimates(NewRISIntegrator(cfg), s, floorRay, 4000, 1)
		assertMean(t, unitSquareRadiance(), values)
	}
}

func TestRIS_VarianceDecreasesWithProposals(t *testing.T) {
	s := loadScene(t, "unit-square")
	variance := func(m int) float64 {
		cfg := DefaultConfig()
		cfg.NumProposals = m
		return stat.Variance(estimates(NewRISIntegrator(cfg), s, floorRay, 2000, 2), nil)
	}
	v1, v4, v16 := variance(1), variance(4), variance(16)
	assert.Less(t, v4, v1)
	assert.Less(t, v16, v4)
}

func TestLTC_IdentityTablesMatchFormFactor(t *testing.T) {
	s := loadScene(t, "unit-square")
	integ := newIntegrator(t, "ltc", DefaultConfig())
	radiance, valid := integ.Sample(s, core.NewSeededSampler(3), floorRay, true)
	assert.True(t, valid)
	assert.InDelta(t, unitSquareRadiance(), radiance.X, 1e-9)
	assert.InDelta(t, radiance.X, radiance.Z, 1e-12)
}

func TestLTCEstimators_AgreeWithFullIntegral(t *testing.T) {
	s := twoLightScene(t)
	full, _ := newIntegrator(t, "ltc", DefaultConfig()).Sample(s, core.NewSeededSampler(4), floorRay, true)
	require.Greater(t, full.X, 0.0)

	cfg := DefaultConfig()
	cfg.NumProposals = 4
	for _, name := range []string{"ltc-mc", "ltc-ris"} {
		t.Run(name, func(t *testing.T) {
			assertMean(t, full.X, estimates(newIntegrator(t, name, cfg), s, floorRay, 4000, 5))
		})
	}
}

func TestDirect_ConvergesOnUnitSquare(t *testing.T) {
	s := loadScene(t, "unit-square")
	cfg := DefaultConfig()
	cfg.NumProposals = 4
	for _, name := range []string{"direct", "emitter", "bsdf"} {
		t.Run(name, func(t *testing.T) {
			assertMean(t, unitSquareRadiance(), estimates(newIntegrator(t, name, cfg), s, floorRay, 4000, 6))
		})
	}
}

func TestEstimatePDF_MatchesUnshadowedIntegral(t *testing.T) {
	s := loadScene(t, "unit-square")
	cfg := DefaultConfig()
	cfg.NumPDFSamples = 20000
	integ, err := NewLTCRISIntegrator(cfg, ltc.NewIdentityTables(4))
	require.NoError(t, err)

	si := s.Intersect(floorRay, true)
	require.True(t, si.Valid)
	estimate := integ.EstimatePDF(s, core.NewSeededSampler(7), &si, si.BSDF, 0, true)

	// the target is the norm of an RGB value with three equal channels
	want := math.Sqrt(3) * unitSquareRadiance()
	assert.InDelta(t, want, estimate, 0.02*want)

	assert.Zero(t, integ.EstimatePDF(s, core.NewSeededSampler(7), &si, si.BSDF, 0, false))
	assert.Zero(t, integ.EstimatePDF(s, core.NewSeededSampler(7), &si, si.BSDF, -1, true))
}

func TestVisibleEmitters(t *testing.T) {
	s := loadScene(t, "unit-square")
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			radiance, valid := newIntegrator(t, name, cfg).Sample(s, core.NewSeededSampler(8), lightRay, true)
			assert.True(t, valid)
			assert.Equal(t, scene.UnitSquareEmission, radiance)

			cfg.HideEmitters = true
			radiance, valid = newIntegrator(t, name, cfg).Sample(s, core.NewSeededSampler(8), lightRay, true)
			assert.True(t, valid)
			assert.True(t, radiance.IsZero())
		})
	}
}

func TestMasking_LockStepDraws(t *testing.T) {
	s := loadScene(t, "cornell")
	center, lookAt := s.CameraConfig.Center, s.CameraConfig.LookAt
	cornellRay := core.NewRay(center, lookAt.Subtract(center))
	awayRay := core.NewRay(center, center.Subtract(lookAt))
	rays := []core.Ray{cornellRay, awayRay}

	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.NumProposals = 4
			cfg.ReuseStreamPDF = false
			integ := newIntegrator(t, name, cfg)

			reference := &countingSampler{Sampler: core.NewSeededSampler(9)}
			integ.Sample(s, reference, cornellRay, true)
			require.Positive(t, reference.draws)

			for _, ray := range rays {
				for _, active := range []bool{true, false} {
					sampler := &countingSampler{Sampler: core.NewSeededSampler(9)}
					radiance, valid := integ.Sample(s, sampler, ray, active)
					assert.Equal(t, reference.draws, sampler.draws)
					if !active {
						assert.True(t, radiance.IsZero())
						assert.False(t, valid)
					}
				}
			}
		})
	}
}

func TestMasking_ActiveLanesUnaffectedByInactiveOnes(t *testing.T) {
	s := loadScene(t, "glossy-plates")
	ray := core.NewRay(s.CameraConfig.Center, s.CameraConfig.LookAt.Subtract(s.CameraConfig.Center))
	integ := newIntegrator(t, "ris", DefaultConfig())

	// two lanes sharing one stream: the second lane sees the same numbers
	// whether or not the first one was active
	mixed := core.NewSeededSampler(10)
	integ.Sample(s, mixed, ray, false)
	got, _ := integ.Sample(s, mixed, ray, true)

	alone := core.NewSeededSampler(10)
	integ.Sample(s, alone, ray, true)
	want, _ := integ.Sample(s, alone, ray, true)

	assert.Equal(t, want, got)
}

// surfaceAt returns a Lambertian floor interaction at the origin seen from above
func surfaceAt(albedo core.Vec3) material.SurfaceInteraction {
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	si := material.NewSurfaceInteraction(ray, 1, core.Vec3{}, core.NewVec3(0, 0, 1), core.Vec2{})
	si.BSDF = material.NewLambertian(albedo)
	return si
}

func TestRIS_MockScene_SelectionWeight(t *testing.T) {
	albedo := core.NewVec3(0.5, 0.5, 0.5)
	overhead := lights.DirectionSample{
		Point:     core.NewVec3(0, 0, 1),
		Normal:    core.NewVec3(0, 0, -1),
		Direction: core.NewVec3(0, 0, 1),
		Distance:  1,
		PDF:       2,
	}
	white := core.NewVec3(1, 1, 1)

	tests := []struct {
		name     string
		occluded bool
		want     core.Vec3
	}{
		// one candidate of density 2, so the estimate is f·L/2
		{"visible", false, albedo.Multiply(0.5 / math.Pi)},
		{"occluded", true, core.Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			s := NewMockScene(ctrl)
			cfg := DefaultConfig()
			cfg.NumProposals = 3

			s.EXPECT().Intersect(gomock.Any(), true).Return(surfaceAt(albedo))
			s.EXPECT().SampleEmitterDirection(gomock.Any(), gomock.Any(), gomock.Any(), true).
				Return(overhead, white).Times(3)
			s.EXPECT().Occluded(gomock.Any(), overhead.Point, true).Return(tt.occluded)
			s.EXPECT().EvalEmitterDirection(gomock.Any(), overhead, !tt.occluded).
				Return(white.Select(!tt.occluded))

			radiance, valid := NewRISIntegrator(cfg).Sample(s, core.NewSeededSampler(11), floorRay, true)
			assert.True(t, valid)
			assert.InDelta(t, tt.want.X, radiance.X, 1e-12)
			assert.InDelta(t, tt.want.Z, radiance.Z, 1e-12)
		})
	}
}

func TestRIS_MockScene_InactiveLaneStillStreams(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := NewMockScene(ctrl)
	cfg := DefaultConfig()
	cfg.NumProposals = 5

	s.EXPECT().Intersect(gomock.Any(), false).Return(material.SurfaceInteraction{EmitterIndex: -1})
	s.EXPECT().SampleEmitterDirection(gomock.Any(), gomock.Any(), gomock.Any(), false).
		Return(lights.DirectionSample{EmitterIndex: -1}, core.Vec3{}).Times(5)
	s.EXPECT().Occluded(gomock.Any(), gomock.Any(), false).Return(false)
	s.EXPECT().EvalEmitterDirection(gomock.Any(), gomock.Any(), false).Return(core.Vec3{})

	radiance, valid := NewRISIntegrator(cfg).Sample(s, core.NewSeededSampler(12), floorRay, false)
	assert.False(t, valid)
	assert.True(t, radiance.IsZero())
}

func TestLTCMC_MockScene_ScalesByInverseSelectionPdf(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := NewMockScene(ctrl)
	light := lights.NewMockPolygonLight(ctrl)
	albedo := core.NewVec3(0.25, 0.5, 1)

	s.EXPECT().Intersect(gomock.Any(), true).Return(surfaceAt(albedo))
	s.EXPECT().SampleEmitter(gomock.Any(), true).Return(1, 4.0)
	s.EXPECT().Emitters().Return([]lights.Light{lights.NewMockLight(ctrl), light})
	light.EXPECT().EvaluatePolygonIntegral(gomock.Any(), gomock.Any(), true).Return(core.NewVec3(0.1, 0.1, 0.1))

	integ, err := NewLTCMCIntegrator(DefaultConfig(), ltc.NewIdentityTables(4))
	require.NoError(t, err)
	radiance, valid := integ.Sample(s, core.NewSeededSampler(13), floorRay, true)
	assert.True(t, valid)
	assert.InDelta(t, 0.1, radiance.X, 1e-12)
	assert.InDelta(t, 0.2, radiance.Y, 1e-12)
	assert.InDelta(t, 0.4, radiance.Z, 1e-12)
}
