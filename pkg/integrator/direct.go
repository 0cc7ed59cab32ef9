package integrator

import (
	"github.com/cockroachdb/errors"

	"github.com/df07/go-ris-ltc/pkg/core"
	"github.com/df07/go-ris-ltc/pkg/lights"
	"github.com/df07/go-ris-ltc/pkg/material"
)

// DirectIntegrator is the reference direct lighting estimator the
// resampled estimators are compared against. It combines emitter and BSDF
// sampling with the power heuristic; with one of the two counts at zero it
// reduces to plain emitter or BSDF sampling.
type DirectIntegrator struct {
	config         Config
	emitterSamples int
	bsdfSamples    int
}

// NewDirectIntegrator creates a direct lighting integrator
func NewDirectIntegrator(config Config, emitterSamples, bsdfSamples int) (*DirectIntegrator, error) {
	if emitterSamples < 0 || bsdfSamples < 0 || emitterSamples+bsdfSamples == 0 {
		return nil, errors.Wrapf(ErrInvalidConfig, "direct lighting needs samples, got emitter=%d bsdf=%d", emitterSamples, bsdfSamples)
	}
	return &DirectIntegrator{
		config:         config,
		emitterSamples: emitterSamples,
		bsdfSamples:    bsdfSamples,
	}, nil
}

// Sample implements Integrator
func (d *DirectIntegrator) Sample(scene Scene, sampler core.Sampler, ray core.Ray, active bool) (core.Vec3, bool) {
	sp := trace(scene, ray, d.config.HideEmitters, active)
	active = sp.active
	ctx := material.BSDFContext{}

	var result core.Vec3
	for i := 0; i < d.emitterSamples; i++ {
		ds, radiance := scene.SampleEmitterDirection(&sp.si, sampler.Get1D(), sampler.Get2D(), active)
		lit := active && ds.PDF > core.Epsilon
		occluded := scene.Occluded(&sp.si, ds.Point, lit)
		lit = lit && !occluded

		wo := sp.si.ToLocal(ds.Direction)
		f := sp.bsdf.Evaluate(ctx, &sp.si, wo, lit)
		bsdfPdf := sp.bsdf.PDF(ctx, &sp.si, wo, lit)
		mis := core.PowerHeuristic(d.emitterSamples, ds.PDF, d.bsdfSamples, bsdfPdf)

		contribution := f.MultiplyVec(radiance).Multiply(mis / (max(ds.PDF, core.Epsilon) * float64(d.emitterSamples)))
		result = result.Add(contribution.Select(lit))
	}

	for i := 0; i < d.bsdfSamples; i++ {
		bs, weight := sp.bsdf.Sample(ctx, &sp.si, sampler.Get1D(), sampler.Get2D(), active)
		scattered := active && bs.PDF > core.Epsilon && !weight.IsZero()

		hit := scene.Intersect(sp.si.SpawnRay(sp.si.ToWorld(bs.Wo)), scattered)
		scattered = scattered && hit.Valid && hit.Emitter != nil

		var emitted core.Vec3
		if hit.Emitter != nil {
			emitted = hit.Emitter.Evaluate(&hit, scattered)
		}
		emitterPdf := scene.PDFEmitterDirection(&sp.si, directionTo(&sp.si, &hit), scattered)
		mis := core.PowerHeuristic(d.bsdfSamples, bs.PDF, d.emitterSamples, emitterPdf)

		contribution := weight.MultiplyVec(emitted).Multiply(mis / float64(d.bsdfSamples))
		result = result.Add(contribution.Select(scattered))
	}

	return sp.emitted.Add(result.Select(active)), sp.valid
}

// directionTo describes the emitter point found by a BSDF ray as the
// direction sample emitter sampling would have produced for it
func directionTo(from, to *material.SurfaceInteraction) lights.DirectionSample {
	toPoint := to.Point.Subtract(from.Point)
	distance := toPoint.Length()
	ds := lights.DirectionSample{
		Point:        to.Point,
		Normal:       to.Normal,
		Distance:     distance,
		EmitterIndex: to.EmitterIndex,
	}
	if distance > 0 {
		ds.Direction = toPoint.Multiply(1 / distance)
	}
	return ds
}
