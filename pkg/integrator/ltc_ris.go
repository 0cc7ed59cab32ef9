package integrator

import (
	"github.com/df07/go-ris-ltc/pkg/core"
	"github.com/df07/go-ris-ltc/pkg/ltc"
	"github.com/df07/go-ris-ltc/pkg/material"
	"github.com/df07/go-ris-ltc/pkg/reservoir"
)

// LTCRISIntegrator resamples which emitter receives the analytic LTC
// integral. Candidates are emitters chosen by the scene's emitter sampler;
// their target is a NumPDFSamples-sample Monte Carlo estimate of the
// unshadowed direct lighting they contribute.
type LTCRISIntegrator struct {
	config Config
	tables ltc.Tables
}

// NewLTCRISIntegrator creates an LTC-RIS integrator
func NewLTCRISIntegrator(config Config, tables ltc.Tables) (*LTCRISIntegrator, error) {
	if err := requireTables(tables); err != nil {
		return nil, err
	}
	return &LTCRISIntegrator{config: config, tables: tables}, nil
}

// Sample implements Integrator
func (l *LTCRISIntegrator) Sample(scene Scene, sampler core.Sampler, ray core.Ray, active bool) (core.Vec3, bool) {
	sp := trace(scene, ray, l.config.HideEmitters, active)
	bs, frame := prepareLTC(&sp, sampler, l.tables)
	active = sp.active

	res := reservoir.New(-1)
	for i := 0; i < l.config.NumProposals; i++ {
		index, invPdf := scene.SampleEmitter(sampler.Get1D(), active)
		pHat := l.EstimatePDF(scene, sampler, &sp.si, sp.bsdf, index, active)

		weight := 0.0
		if active && index >= 0 {
			weight = pHat * invPdf
		}
		res.Update(weight, index, sampler.Get1D(), pHat)
	}

	selected := res.Current()
	active = active && !res.Empty()

	target := res.CurrentPDF()
	if !l.config.ReuseStreamPDF {
		target = l.EstimatePDF(scene, sampler, &sp.si, sp.bsdf, selected, active)
	}
	weight := res.FinalizeSelectionWeight(target, l.config.NumProposals)

	var integral core.Vec3
	if emitter := emitterAt(scene, selected); emitter != nil {
		integral = polygonIntegral(emitter, &sp, frame, active)
	}

	return sp.emitted.Add(integral.MultiplyVec(bs.Reflectance).Multiply(weight).Select(active)), sp.valid
}

// EstimatePDF returns the average of ‖f·L‖/pdf over NumPDFSamples direction
// samples towards the emitter at index. It always draws NumPDFSamples 2D
// numbers, also for inactive lanes and invalid indices.
func (l *LTCRISIntegrator) EstimatePDF(scene Scene, sampler core.Sampler, si *material.SurfaceInteraction, bsdf material.BSDF, index int, active bool) float64 {
	emitter := emitterAt(scene, index)
	active = active && emitter != nil
	ctx := material.BSDFContext{}

	sum := 0.0
	for i := 0; i < l.config.NumPDFSamples; i++ {
		u := sampler.Get2D()
		if emitter == nil {
			continue
		}
		ds, radiance := emitter.SampleDirection(si, u, active)
		f := bsdf.Evaluate(ctx, si, si.ToLocal(ds.Direction), active)
		if active && ds.PDF > core.Epsilon {
			sum += f.MultiplyVec(radiance).Length() / ds.PDF
		}
	}
	return sum / float64(l.config.NumPDFSamples)
}
