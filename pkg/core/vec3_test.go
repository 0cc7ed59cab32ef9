package core

import (
	"math"
	"testing"
)

func TestVec3_Operations(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		result   Vec3
		expected Vec3
	}{
		{"Add", a.Add(b), NewVec3(5, -3, 9)},
		{"Subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"Multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"MultiplyVec", a.MultiplyVec(b), NewVec3(4, -10, 18)},
		{"Cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
		{"Negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"Abs", b.Abs(), NewVec3(4, 5, 6)},
		{"Clamp", b.Clamp(0, 5), NewVec3(4, 0, 5)},
		{"Select true", a.Select(true), a},
		{"Select false", a.Select(false), Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.result.Subtract(tt.expected).Length() > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.expected, tt.result)
			}
		})
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0).Normalize()
	if math.Abs(v.Length()-1) > 1e-12 {
		t.Errorf("Expected unit length, got %f", v.Length())
	}

	// Zero vector stays zero instead of becoming NaN
	zero := Vec3{}.Normalize()
	if !zero.IsZero() || !zero.IsFinite() {
		t.Errorf("Expected zero vector, got %v", zero)
	}
}

func TestVec3_IsFinite(t *testing.T) {
	if !NewVec3(1, 2, 3).IsFinite() {
		t.Error("Expected finite vector")
	}
	if NewVec3(math.NaN(), 0, 0).IsFinite() {
		t.Error("NaN component should not be finite")
	}
	if NewVec3(0, math.Inf(1), 0).IsFinite() {
		t.Error("Inf component should not be finite")
	}
}

func TestVec3_MaxComponentAndLuminance(t *testing.T) {
	v := NewVec3(0.2, 0.9, 0.4)
	if v.MaxComponent() != 0.9 {
		t.Errorf("MaxComponent: got %f", v.MaxComponent())
	}
	if lum := NewVec3(1, 1, 1).Luminance(); math.Abs(lum-1) > 1e-12 {
		t.Errorf("Luminance of white: got %f", lum)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 0, 0), NewVec3(0, 2, 0))
	if p := ray.At(1.5); p != NewVec3(1, 3, 0) {
		t.Errorf("Expected (1,3,0), got %v", p)
	}
}
