// Package reservoir implements single-slot weighted reservoir sampling, the
// streaming selection step behind resampled importance sampling.
package reservoir

import (
	"math"

	"github.com/df07/go-ris-ltc/pkg/core"
)

// Reservoir retains one candidate out of a weighted stream. After streaming
// x_1..x_n with weights w_1..w_n, Current() is x_i with probability
// w_i / Σw_j, provided every Update receives its own independent uniform draw.
// It stores values only and is meant to live for a single shading point.
type Reservoir[T any] struct {
	current    T
	currentPDF float64
	weightSum  float64
	count      int
}

// New creates an empty reservoir holding initial until a candidate wins
func New[T any](initial T) *Reservoir[T] {
	return &Reservoir[T]{current: initial}
}

// Update streams one candidate. targetEstimate is the target function value
// (p̂) of the candidate and is retained alongside it when it is selected.
// Negative and NaN weights count as zero.
func (r *Reservoir[T]) Update(weight float64, candidate T, u float64, targetEstimate float64) {
	if !(weight > 0) || math.IsInf(weight, 0) {
		weight = 0
	}
	r.weightSum += weight
	r.count++

	if u < weight/max(r.weightSum, core.Epsilon) {
		r.current = candidate
		r.currentPDF = targetEstimate
	}
}

// Merge streams the selection of another reservoir into this one, weighted by
// the other reservoir's total weight. targetAtOther is the target function of
// other.Current() as seen by this reservoir's shading point.
func (r *Reservoir[T]) Merge(other *Reservoir[T], u float64, targetAtOther float64) {
	count := r.count
	r.Update(other.weightSum, other.current, u, targetAtOther)
	r.count = count + other.count
}

// FinalizeSelectionWeight returns the unbiased contribution weight
// W = weightSum / (p̂(current) * sampleCount), or zero when the target estimate
// or the sample count is degenerate
func (r *Reservoir[T]) FinalizeSelectionWeight(finalTargetEstimate float64, sampleCount int) float64 {
	if !(finalTargetEstimate > core.Epsilon) || sampleCount <= 0 {
		return 0
	}
	return r.weightSum / (finalTargetEstimate * float64(sampleCount))
}

// Current returns the retained candidate
func (r *Reservoir[T]) Current() T {
	return r.current
}

// CurrentPDF returns the target estimate stored with the retained candidate
func (r *Reservoir[T]) CurrentPDF() float64 {
	return r.currentPDF
}

// WeightSum returns the sum of all streamed weights
func (r *Reservoir[T]) WeightSum() float64 {
	return r.weightSum
}

// Count returns the number of streamed candidates
func (r *Reservoir[T]) Count() int {
	return r.count
}

// Empty reports whether no candidate with positive weight has been streamed
func (r *Reservoir[T]) Empty() bool {
	return r.weightSum == 0
}
