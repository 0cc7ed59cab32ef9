package integrator

import (
	"github.com/df07/go-ris-ltc/pkg/core"
	"github.com/df07/go-ris-ltc/pkg/lights"
	"github.com/df07/go-ris-ltc/pkg/ltc"
	"github.com/df07/go-ris-ltc/pkg/material"
)

// shadingPoint is the per-lane state shared by all estimators after the
// camera ray has been traced
type shadingPoint struct {
	si      material.SurfaceInteraction
	bsdf    material.BSDF
	valid   bool      // the ray hit a surface
	active  bool      // the surface can be shaded (valid and smooth)
	emitted core.Vec3 // radiance of a directly visible emitter
}

// trace intersects ray and decides whether the hit can be shaded. Visible
// emitters contribute unless hidden; only smooth BSDFs are shaded.
func trace(scene Scene, ray core.Ray, hideEmitters bool, active bool) shadingPoint {
	sp := shadingPoint{si: scene.Intersect(ray, active)}
	sp.valid = active && sp.si.Valid

	if sp.si.Emitter != nil {
		sp.emitted = sp.si.Emitter.Evaluate(&sp.si, sp.valid && !hideEmitters)
	}

	sp.bsdf = sp.si.BSDF
	if sp.bsdf == nil {
		sp.bsdf = absorber{}
	}
	sp.active = sp.valid && sp.bsdf.Flags().Smooth()
	return sp
}

// prepareLTC draws the BSDF sample that provides the lobe roughness and
// reflectance and builds the LTC frame for it
func prepareLTC(sp *shadingPoint, sampler core.Sampler, tables ltc.Tables) (material.BSDFSample, ltc.Frame) {
	u1 := sampler.Get1D()
	u2 := sampler.Get2D()
	bs, _ := sp.bsdf.Sample(material.BSDFContext{}, &sp.si, u1, u2, sp.active)
	frame := ltc.NewFrame(tables, sp.si.Wi, bs.Roughness, sp.active)
	return bs, frame
}

// polygonIntegral evaluates the LTC integral of one emitter, zero for
// emitters without a polygonal shape
func polygonIntegral(emitter lights.Light, sp *shadingPoint, frame ltc.Frame, active bool) core.Vec3 {
	polygon, ok := emitter.(lights.PolygonLight)
	if !ok {
		return core.Vec3{}
	}
	return polygon.EvaluatePolygonIntegral(&sp.si, frame, active)
}

// emitterAt returns the emitter at index, nil when out of range
func emitterAt(scene Scene, index int) lights.Light {
	emitters := scene.Emitters()
	if index < 0 || index >= len(emitters) {
		return nil
	}
	return emitters[index]
}

// absorber stands in for the BSDF of surfaces that have none (pure
// emitters). It is not smooth, so those lanes are never shaded.
type absorber struct{}

func (absorber) Flags() material.BSDFFlags { return 0 }

func (absorber) Sample(ctx material.BSDFContext, si *material.SurfaceInteraction, u1 float64, u2 core.Vec2, active bool) (material.BSDFSample, core.Vec3) {
	return material.BSDFSample{}, core.Vec3{}
}

func (absorber) Evaluate(ctx material.BSDFContext, si *material.SurfaceInteraction, wo core.Vec3, active bool) core.Vec3 {
	return core.Vec3{}
}

func (absorber) PDF(ctx material.BSDFContext, si *material.SurfaceInteraction, wo core.Vec3, active bool) float64 {
	return 0
}
