package geometry

import (
	"math"

	"github.com/df07/go-ris-ltc/pkg/core"
)

// Quad represents a parallelogram defined by a corner and two edge vectors
type Quad struct {
	Corner core.Vec3 // One corner of the quad
	U      core.Vec3 // First edge vector
	V      core.Vec3 // Second edge vector
	D      float64   // Plane equation constant: ax + by + cz = d
	W      core.Vec3 // Cached n / (n · (u × v)) for planar coordinates
	normal core.Vec3
	area   float64
}

// NewQuad creates a new quad from a corner point and two edge vectors.
// The front face is on the side of U × V.
func NewQuad(corner, u, v core.Vec3) *Quad {
	cross := u.Cross(v)
	normal := cross.Normalize()

	return &Quad{
		Corner: corner,
		U:      u,
		V:      v,
		D:      normal.Dot(corner),
		W:      normal.Multiply(1.0 / normal.Dot(cross)),
		normal: normal,
		area:   cross.Length(),
	}
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, tMin, tMax float64) (Hit, bool) {
	denominator := ray.Direction.Dot(q.normal)

	// Ray parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return Hit{}, false
	}

	t := (q.D - ray.Origin.Dot(q.normal)) / denominator
	if t < tMin || t > tMax {
		return Hit{}, false
	}

	hitPoint := ray.At(t)
	hitVector := hitPoint.Subtract(q.Corner)

	alpha := q.W.Dot(hitVector.Cross(q.V))
	beta := q.W.Dot(q.U.Cross(hitVector))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return Hit{}, false
	}

	return Hit{
		T:      t,
		Point:  hitPoint,
		Normal: q.normal,
		UV:     core.NewVec2(alpha, beta),
	}, true
}

// Vertices implements Polygon
func (q *Quad) Vertices() []core.Vec3 {
	return []core.Vec3{
		q.Corner,
		q.Corner.Add(q.U),
		q.Corner.Add(q.U).Add(q.V),
		q.Corner.Add(q.V),
	}
}

// Normal implements Polygon
func (q *Quad) Normal() core.Vec3 {
	return q.normal
}

// Area implements Polygon
func (q *Quad) Area() float64 {
	return q.area
}

// SamplePoint implements Polygon
func (q *Quad) SamplePoint(sample core.Vec2) core.Vec3 {
	return q.Corner.Add(q.U.Multiply(sample.X)).Add(q.V.Multiply(sample.Y))
}
