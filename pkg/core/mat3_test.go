package core

import (
	"math"
	"testing"
)

func TestMat3_FromRows(t *testing.T) {
	m := NewMat3FromRows(NewVec3(1, 2, 3), NewVec3(4, 5, 6), NewVec3(7, 8, 9))
	if m.Row(1) != NewVec3(4, 5, 6) {
		t.Errorf("Row(1): got %v", m.Row(1))
	}
	if m.Col(0) != NewVec3(1, 4, 7) {
		t.Errorf("Col(0): got %v", m.Col(0))
	}
	if m.Transpose().Row(0) != NewVec3(1, 4, 7) {
		t.Errorf("Transpose row 0: got %v", m.Transpose().Row(0))
	}
	if got := m.MulVec(NewVec3(1, 0, -1)); got != NewVec3(-2, -2, -2) {
		t.Errorf("MulVec: got %v", got)
	}
}

func TestMat3_Inverse(t *testing.T) {
	tests := []struct {
		name string
		m    Mat3
	}{
		{"identity", Identity3()},
		{"scale", Mat3{{2, 0, 0}, {0, 0.5, 0}, {0, 0, 4}}},
		{"ltc-like", Mat3{{0.4, 0, 0.1}, {0, 0.35, 0}, {-0.2, 0, 1}}},
		{"general", Mat3{{3, 1, 2}, {0, 2, -1}, {1, 0, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, ok := tt.m.Inverse()
			if !ok {
				t.Fatalf("expected invertible matrix")
			}
			if !tt.m.Mul(inv).ApproxEqual(Identity3(), 1e-9) {
				t.Errorf("M * M^-1 != I: %v", tt.m.Mul(inv))
			}
			if math.Abs(tt.m.Det()*inv.Det()-1) > 1e-9 {
				t.Errorf("det(M)*det(M^-1) != 1")
			}
		})
	}
}

func TestMat3_InverseSingular(t *testing.T) {
	singular := []Mat3{
		{},
		{{1, 2, 3}, {2, 4, 6}, {0, 0, 1}},
		{{1e-4, 0, 0}, {0, 1e-4, 0}, {0, 0, 1e-4}},
		{{math.NaN(), 0, 0}, {0, 1, 0}, {0, 0, 1}},
	}
	for i, m := range singular {
		inv, ok := m.Inverse()
		if ok {
			t.Errorf("case %d: expected singular matrix to be rejected", i)
		}
		if inv != Identity3() {
			t.Errorf("case %d: expected identity fallback, got %v", i, inv)
		}
	}
}
