package geometry

import (
	"github.com/df07/go-ris-ltc/pkg/core"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3 // The three vertices
	normal     core.Vec3 // Cached normal vector
	area       float64
}

// NewTriangle creates a new triangle from three vertices. The front face is
// on the side of (V1-V0) × (V2-V0).
func NewTriangle(v0, v1, v2 core.Vec3) *Triangle {
	cross := v1.Subtract(v0).Cross(v2.Subtract(v0))
	return &Triangle{
		V0:     v0,
		V1:     v1,
		V2:     v2,
		normal: cross.Normalize(),
		area:   0.5 * cross.Length(),
	}
}

// Hit tests if a ray intersects with the triangle using the Möller-Trumbore algorithm
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (Hit, bool) {
	const epsilon = 1e-8

	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// Ray lies in the plane of the triangle
	if a > -epsilon && a < epsilon {
		return Hit{}, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return Hit{}, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return Hit{}, false
	}

	tHit := f * edge2.Dot(q)
	if tHit < tMin || tHit > tMax {
		return Hit{}, false
	}

	return Hit{
		T:      tHit,
		Point:  ray.At(tHit),
		Normal: t.normal,
		UV:     core.NewVec2(u, v),
	}, true
}

// Vertices implements Polygon
func (t *Triangle) Vertices() []core.Vec3 {
	return []core.Vec3{t.V0, t.V1, t.V2}
}

// Normal implements Polygon
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}

// Area implements Polygon
func (t *Triangle) Area() float64 {
	return t.area
}

// SamplePoint implements Polygon
func (t *Triangle) SamplePoint(sample core.Vec2) core.Vec3 {
	b0, b1 := core.SampleUniformTriangle(sample)
	return t.V0.Multiply(b0).Add(t.V1.Multiply(b1)).Add(t.V2.Multiply(1 - b0 - b1))
}
