package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-ris-ltc/pkg/core"
)

func TestTriangle_Hit(t *testing.T) {
	// Create a triangle in the XY plane
	v0 := core.NewVec3(0, 0, 0)
	v1 := core.NewVec3(1, 0, 0)
	v2 := core.NewVec3(0, 1, 0)
	triangle := NewTriangle(v0, v1, v2)

	tests := []struct {
		name      string
		ray       core.Ray
		tMin      float64
		tMax      float64
		shouldHit bool
		expectedT float64
	}{
		{
			name:      "Ray hits triangle center",
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, -1), core.NewVec3(0, 0, 1)),
			tMin:      0.001,
			tMax:      10.0,
			shouldHit: true,
			expectedT: 1.0,
		},
		{
			name:      "Ray hits triangle edge",
			ray:       core.NewRay(core.NewVec3(0.5, 0, -1), core.NewVec3(0, 0, 1)),
			tMin:      0.001,
			tMax:      10.0,
			shouldHit: true,
			expectedT: 1.0,
		},
		{
			name:      "Ray misses triangle",
			ray:       core.NewRay(core.NewVec3(1, 1, -1), core.NewVec3(0, 0, 1)),
			tMin:      0.001,
			tMax:      10.0,
			shouldHit: false,
		},
		{
			name:      "Ray parallel to triangle",
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(1, 0, 0)),
			tMin:      0.001,
			tMax:      10.0,
			shouldHit: false,
		},
		{
			name:      "Hit beyond tMax",
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, -5), core.NewVec3(0, 0, 1)),
			tMin:      0.001,
			tMax:      1.0,
			shouldHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := triangle.Hit(tt.ray, tt.tMin, tt.tMax)
			if isHit != tt.shouldHit {
				t.Fatalf("Expected hit=%v, got %v", tt.shouldHit, isHit)
			}
			if !tt.shouldHit {
				return
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, hit.T)
			}
			if hit.Normal.Subtract(core.NewVec3(0, 0, 1)).Length() > 1e-9 {
				t.Errorf("Expected outward normal +Z, got %v", hit.Normal)
			}
		})
	}
}

func TestTriangle_Area(t *testing.T) {
	triangle := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 3, 0))
	if math.Abs(triangle.Area()-3) > 1e-12 {
		t.Errorf("Expected area 3, got %f", triangle.Area())
	}
}

func TestTriangle_SamplePointInside(t *testing.T) {
	triangle := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0))
	random := rand.New(rand.NewSource(3))

	var mean core.Vec3
	const n = 20000
	for i := 0; i < n; i++ {
		p := triangle.SamplePoint(core.NewVec2(random.Float64(), random.Float64()))
		if p.X < -1e-12 || p.Y < -1e-12 || p.X+p.Y > 1+1e-12 {
			t.Fatalf("Sample %v outside triangle", p)
		}
		mean = mean.Add(p.Multiply(1.0 / n))
	}
	if mean.Subtract(core.NewVec3(1.0/3, 1.0/3, 0)).Length() > 0.01 {
		t.Errorf("Expected centroid (1/3, 1/3, 0), got %v", mean)
	}
}
