package geometry

import (
	"github.com/df07/go-ris-ltc/pkg/core"
)

// Hit contains information about a ray-shape intersection
type Hit struct {
	T      float64   // Parameter t along the ray
	Point  core.Vec3 // Point of intersection
	Normal core.Vec3 // Outward (geometric) normal, not flipped towards the ray
	UV     core.Vec2 // Surface parameterization
}

// Shape interface for objects that can be hit by rays
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (Hit, bool)
}

// Polygon is a planar shape with straight edges. Polygon area lights sample
// points on it and integrate over its vertices.
type Polygon interface {
	Shape

	// Vertices returns the corners in counter-clockwise order around Normal
	Vertices() []core.Vec3
	Normal() core.Vec3
	Area() float64

	// SamplePoint returns a uniformly distributed point on the surface
	SamplePoint(sample core.Vec2) core.Vec3
}
