package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestRandomSampler_Range(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))
	for i := 0; i < 1000; i++ {
		u := sampler.Get1D()
		if u < 0 || u >= 1 {
			t.Fatalf("Get1D out of range: %f", u)
		}
		uv := sampler.Get2D()
		if uv.X < 0 || uv.X >= 1 || uv.Y < 0 || uv.Y >= 1 {
			t.Fatalf("Get2D out of range: %v", uv)
		}
	}
}

func TestSeededSampler_Deterministic(t *testing.T) {
	a := NewSeededSampler(7)
	b := NewSeededSampler(7)
	for i := 0; i < 16; i++ {
		if a.Get1D() != b.Get1D() {
			t.Fatalf("samplers with equal seeds diverged at draw %d", i)
		}
	}
}

func TestSampleCosineHemisphere(t *testing.T) {
	random := rand.New(rand.NewSource(1))
	const n = 20000
	sumCos := 0.0
	for i := 0; i < n; i++ {
		d := SampleCosineHemisphere(NewVec2(random.Float64(), random.Float64()))
		if d.Z < 0 {
			t.Fatalf("direction below hemisphere: %v", d)
		}
		if math.Abs(d.Length()-1) > 1e-9 {
			t.Fatalf("direction not normalized: %v", d)
		}
		sumCos += d.Z
	}

	// E[cos] under a cos/pi density is 2/3
	mean := sumCos / n
	if math.Abs(mean-2.0/3.0) > 0.01 {
		t.Errorf("mean cosine: got %f, expected %f", mean, 2.0/3.0)
	}
}

func TestCosineHemispherePDF(t *testing.T) {
	if got := CosineHemispherePDF(-0.5); got != 0 {
		t.Errorf("expected zero pdf below the horizon, got %f", got)
	}
	if got := CosineHemispherePDF(1); math.Abs(got-1/math.Pi) > 1e-12 {
		t.Errorf("pdf at normal: got %f, expected %f", got, 1/math.Pi)
	}
}

func TestSampleUniformTriangle(t *testing.T) {
	random := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		b0, b1 := SampleUniformTriangle(NewVec2(random.Float64(), random.Float64()))
		if b0 < 0 || b1 < 0 || b0+b1 > 1+1e-12 {
			t.Fatalf("barycentrics outside triangle: %f %f", b0, b1)
		}
	}
}

func TestSafeDiv(t *testing.T) {
	if got := SafeDiv(0, 0); got != 0 {
		t.Errorf("0/0 should clamp to 0, got %f", got)
	}
	if got := SafeDiv(1, 0); math.IsInf(got, 0) || math.IsNaN(got) {
		t.Errorf("1/0 should be finite, got %f", got)
	}
	if got := SafeDiv(6, 3); got != 2 {
		t.Errorf("6/3: got %f", got)
	}
}

func TestPowerHeuristic(t *testing.T) {
	tests := []struct {
		name     string
		nf       int
		fPdf     float64
		ng       int
		gPdf     float64
		expected float64
	}{
		{
			name:     "Equal PDFs",
			nf:       1,
			fPdf:     0.5,
			ng:       1,
			gPdf:     0.5,
			expected: 0.5,
		},
		{
			name:     "First PDF zero",
			nf:       1,
			fPdf:     0.0,
			ng:       1,
			gPdf:     0.5,
			expected: 0.0,
		},
		{
			name:     "Second PDF zero",
			nf:       1,
			fPdf:     0.5,
			ng:       1,
			gPdf:     0.0,
			expected: 1.0,
		},
		{
			name:     "First PDF higher",
			nf:       1,
			fPdf:     0.8,
			ng:       1,
			gPdf:     0.2,
			expected: 0.941176, // (0.8²) / (0.8² + 0.2²)
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := PowerHeuristic(tt.nf, tt.fPdf, tt.ng, tt.gPdf)
			if math.Abs(result-tt.expected) > 1e-5 {
				t.Errorf("PowerHeuristic: got %f, expected %f", result, tt.expected)
			}
		})
	}
}
