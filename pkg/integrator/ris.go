package integrator

import (
	"github.com/df07/go-ris-ltc/pkg/core"
	"github.com/df07/go-ris-ltc/pkg/lights"
	"github.com/df07/go-ris-ltc/pkg/material"
	"github.com/df07/go-ris-ltc/pkg/reservoir"
)

// RISIntegrator estimates direct lighting with resampled importance
// sampling: NumProposals emitter samples are streamed through a reservoir
// with target ‖f·L‖ and the survivor is shaded with its RIS weight.
type RISIntegrator struct {
	config Config
}

// NewRISIntegrator creates a RIS integrator
func NewRISIntegrator(config Config) *RISIntegrator {
	return &RISIntegrator{config: config}
}

// Sample implements Integrator
func (r *RISIntegrator) Sample(scene Scene, sampler core.Sampler, ray core.Ray, active bool) (core.Vec3, bool) {
	sp := trace(scene, ray, r.config.HideEmitters, active)
	active = sp.active
	ctx := material.BSDFContext{}

	res := reservoir.New(lights.DirectionSample{EmitterIndex: -1})
	for i := 0; i < r.config.NumProposals; i++ {
		ds, radiance := scene.SampleEmitterDirection(&sp.si, sampler.Get1D(), sampler.Get2D(), active)
		f := sp.bsdf.Evaluate(ctx, &sp.si, sp.si.ToLocal(ds.Direction), active)
		pHat := f.MultiplyVec(radiance).Length()

		weight := 0.0
		if active && ds.PDF > core.Epsilon {
			weight = pHat / ds.PDF
		}
		res.Update(weight, ds, sampler.Get1D(), pHat)
	}

	selected := res.Current()
	active = active && !res.Empty()

	if r.config.VisibilityTest {
		occluded := scene.Occluded(&sp.si, selected.Point, active)
		active = active && !occluded
	}

	f := sp.bsdf.Evaluate(ctx, &sp.si, sp.si.ToLocal(selected.Direction), active)
	radiance := scene.EvalEmitterDirection(&sp.si, selected, active)
	value := f.MultiplyVec(radiance)

	target := res.CurrentPDF()
	if !r.config.ReuseStreamPDF {
		target = value.Length()
	}
	weight := res.FinalizeSelectionWeight(target, r.config.NumProposals)

	return sp.emitted.Add(value.Multiply(weight).Select(active)), sp.valid
}
