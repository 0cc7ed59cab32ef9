package integrator

import (
	"github.com/df07/go-ris-ltc/pkg/core"
	"github.com/df07/go-ris-ltc/pkg/ltc"
)

// LTCMCIntegrator picks a single emitter per point and evaluates its LTC
// integral, scaled by the inverse selection probability
type LTCMCIntegrator struct {
	config Config
	tables ltc.Tables
}

// NewLTCMCIntegrator creates a one-emitter LTC integrator
func NewLTCMCIntegrator(config Config, tables ltc.Tables) (*LTCMCIntegrator, error) {
	if err := requireTables(tables); err != nil {
		return nil, err
	}
	return &LTCMCIntegrator{config: config, tables: tables}, nil
}

// Sample implements Integrator
func (l *LTCMCIntegrator) Sample(scene Scene, sampler core.Sampler, ray core.Ray, active bool) (core.Vec3, bool) {
	sp := trace(scene, ray, l.config.HideEmitters, active)
	bs, frame := prepareLTC(&sp, sampler, l.tables)

	index, invPdf := scene.SampleEmitter(sampler.Get1D(), sp.active)
	emitter := emitterAt(scene, index)
	active = sp.active && emitter != nil

	var integral core.Vec3
	if emitter != nil {
		integral = polygonIntegral(emitter, &sp, frame, active)
	}

	return sp.emitted.Add(integral.MultiplyVec(bs.Reflectance).Multiply(invPdf).Select(active)), sp.valid
}
