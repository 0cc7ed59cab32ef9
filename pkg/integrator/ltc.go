package integrator

import (
	"github.com/df07/go-ris-ltc/pkg/core"
	"github.com/df07/go-ris-ltc/pkg/ltc"
)

// LTCIntegrator evaluates the analytic LTC integral of the BSDF lobe
// against every polygonal emitter. It draws one BSDF sample per point to
// obtain the lobe parameters and is otherwise deterministic. Visibility is
// not accounted for.
type LTCIntegrator struct {
	config Config
	tables ltc.Tables
}

// NewLTCIntegrator creates an LTC integrator over the given tables
func NewLTCIntegrator(config Config, tables ltc.Tables) (*LTCIntegrator, error) {
	if err := requireTables(tables); err != nil {
		return nil, err
	}
	return &LTCIntegrator{config: config, tables: tables}, nil
}

// Sample implements Integrator
func (l *LTCIntegrator) Sample(scene Scene, sampler core.Sampler, ray core.Ray, active bool) (core.Vec3, bool) {
	sp := trace(scene, ray, l.config.HideEmitters, active)
	bs, frame := prepareLTC(&sp, sampler, l.tables)

	var sum core.Vec3
	for _, emitter := range scene.Emitters() {
		sum = sum.Add(polygonIntegral(emitter, &sp, frame, sp.active))
	}

	return sp.emitted.Add(sum.MultiplyVec(bs.Reflectance).Select(sp.active)), sp.valid
}
