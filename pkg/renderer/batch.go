package renderer

import (
	"github.com/df07/go-ris-ltc/pkg/core"
	"github.com/df07/go-ris-ltc/pkg/integrator"
)

// Lane is one camera sample evaluated as part of a batch. Each lane owns its
// random stream; inactive lanes are evaluated like the others and produce
// zero radiance.
type Lane struct {
	Ray     core.Ray
	Sampler core.Sampler
	Active  bool
}

// LaneResult is the estimate of one lane
type LaneResult struct {
	Radiance core.Vec3
	Valid    bool
}

// Batch is a fixed-width group of lanes evaluated in lock-step
type Batch []Lane

// Evaluate runs the integrator on every lane, active or not
func (b Batch) Evaluate(integ integrator.Integrator, scene integrator.Scene) []LaneResult {
	results := make([]LaneResult, len(b))
	for i, lane := range b {
		radiance, valid := integ.Sample(scene, lane.Sampler, lane.Ray, lane.Active)
		results[i] = LaneResult{Radiance: radiance, Valid: valid}
	}
	return results
}
