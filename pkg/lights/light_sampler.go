package lights

import (
	"fmt"
	"math"
	"strings"

	"github.com/cockroachdb/errors"
)

// WeightedLightSampler selects lights with fixed probabilities
type WeightedLightSampler struct {
	weights []float64
}

// NewWeightedLightSampler creates a light sampler with the given weights,
// normalized to sum to one. All-zero weights select uniformly.
func NewWeightedLightSampler(weights []float64) (*WeightedLightSampler, error) {
	totalWeight := 0.0
	for i, weight := range weights {
		if weight < 0 || math.IsNaN(weight) {
			return nil, errors.Newf("light %d has invalid weight %v", i, weight)
		}
		totalWeight += weight
	}

	normalized := make([]float64, len(weights))
	for i, weight := range weights {
		if totalWeight == 0 {
			normalized[i] = 1.0 / float64(len(weights))
		} else {
			normalized[i] = weight / totalWeight
		}
	}
	return &WeightedLightSampler{weights: normalized}, nil
}

// NewUniformLightSampler selects each of count lights with equal probability
func NewUniformLightSampler(count int) *WeightedLightSampler {
	weights := make([]float64, max(0, count))
	for i := range weights {
		weights[i] = 1.0 / float64(count)
	}
	return &WeightedLightSampler{weights: weights}
}

// NewPowerLightSampler selects area lights proportionally to their emitted power
func NewPowerLightSampler(lights []*AreaLight) *WeightedLightSampler {
	weights := make([]float64, len(lights))
	for i, light := range lights {
		weights[i] = max(0, light.Power())
	}
	// weights are non-negative by construction
	sampler, _ := NewWeightedLightSampler(weights)
	return sampler
}

// SampleLight implements LightSampler using the cumulative distribution.
// Returns (-1, 0) when there are no lights.
func (s *WeightedLightSampler) SampleLight(u float64) (int, float64) {
	if len(s.weights) == 0 {
		return -1, 0
	}

	var cumulativeProbability float64
	for i, weight := range s.weights {
		cumulativeProbability += weight
		if u < cumulativeProbability && weight > 0 {
			return i, weight
		}
	}

	// rounding left u above the last cumulative value
	for i := len(s.weights) - 1; i >= 0; i-- {
		if s.weights[i] > 0 {
			return i, s.weights[i]
		}
	}
	return -1, 0
}

// Probability implements LightSampler
func (s *WeightedLightSampler) Probability(index int) float64 {
	if index < 0 || index >= len(s.weights) {
		return 0
	}
	return s.weights[index]
}

// Count implements LightSampler
func (s *WeightedLightSampler) Count() int {
	return len(s.weights)
}

// String returns a string representation for debugging
func (s *WeightedLightSampler) String() string {
	if len(s.weights) == 0 {
		return "WeightedLightSampler{no lights}"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "WeightedLightSampler{%d lights with fixed weights:\n", len(s.weights))
	for i, weight := range s.weights {
		fmt.Fprintf(&b, "  [%d] %.1f%%\n", i, weight*100)
	}
	b.WriteString("}")
	return b.String()
}
