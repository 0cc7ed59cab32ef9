package lights

import (
	"math"

	"github.com/df07/go-ris-ltc/pkg/core"
	"github.com/df07/go-ris-ltc/pkg/geometry"
	"github.com/df07/go-ris-ltc/pkg/ltc"
	"github.com/df07/go-ris-ltc/pkg/material"
)

// grazingCosine is the emitter cosine below which a sample is treated as
// edge-on and given zero density
const grazingCosine = 1e-8

// AreaLight is a one-sided diffuse emitter over a planar polygon. It emits
// from the side its shape normal points to.
type AreaLight struct {
	polygon  geometry.Polygon
	Emission core.Vec3
}

// NewAreaLight creates an area light over any polygon
func NewAreaLight(polygon geometry.Polygon, emission core.Vec3) *AreaLight {
	return &AreaLight{polygon: polygon, Emission: emission}
}

// NewQuadLight creates a quad area light emitting towards u × v
func NewQuadLight(corner, u, v core.Vec3, emission core.Vec3) *AreaLight {
	return NewAreaLight(geometry.NewQuad(corner, u, v), emission)
}

// NewTriangleLight creates a triangle area light emitting towards (v1-v0) × (v2-v0)
func NewTriangleLight(v0, v1, v2 core.Vec3, emission core.Vec3) *AreaLight {
	return NewAreaLight(geometry.NewTriangle(v0, v1, v2), emission)
}

func (l *AreaLight) Type() LightType {
	return LightTypeArea
}

// Shape implements PolygonLight
func (l *AreaLight) Shape() geometry.Polygon {
	return l.polygon
}

// Radiance implements Light
func (l *AreaLight) Radiance() core.Vec3 {
	return l.Emission
}

// Power returns the total emitted flux, used for power-proportional light selection
func (l *AreaLight) Power() float64 {
	return l.Emission.Luminance() * l.polygon.Area() * math.Pi
}

// SampleDirection implements Light by sampling the polygon uniformly by area
// and converting the density to solid angle
func (l *AreaLight) SampleDirection(hit *material.SurfaceInteraction, u core.Vec2, active bool) (DirectionSample, core.Vec3) {
	point := l.polygon.SamplePoint(u)
	toLight := point.Subtract(hit.Point)
	distance := toLight.Length()

	ds := DirectionSample{
		Point:    point,
		Normal:   l.polygon.Normal(),
		Distance: distance,
	}
	if !active || distance == 0 {
		return ds, core.Vec3{}
	}
	ds.Direction = toLight.Multiply(1.0 / distance)
	ds.PDF = l.PDFDirection(hit, ds, active)

	return ds, l.EvaluateDirection(hit, ds, active && ds.PDF > 0)
}

// EvaluateDirection implements Light. Only the front face emits.
func (l *AreaLight) EvaluateDirection(hit *material.SurfaceInteraction, ds DirectionSample, active bool) core.Vec3 {
	return l.Emission.Select(active && ds.Direction.Dot(ds.Normal) < 0)
}

// PDFDirection implements Light: pdf_area · distance² / |cos θ_light|
func (l *AreaLight) PDFDirection(hit *material.SurfaceInteraction, ds DirectionSample, active bool) float64 {
	cosTheta := math.Abs(ds.Normal.Dot(ds.Direction))
	if !active || cosTheta < grazingCosine {
		return 0
	}
	return ds.Distance * ds.Distance / (cosTheta * l.polygon.Area())
}

// Evaluate implements Light and material.Emitter
func (l *AreaLight) Evaluate(si *material.SurfaceInteraction, active bool) core.Vec3 {
	return l.Emission.Select(active && si.Valid && si.FrontFace)
}

// EvaluatePolygonIntegral implements PolygonLight. The polygon is moved into
// the local shading space of hit and integrated through frame; points behind
// the emitting side see nothing.
func (l *AreaLight) EvaluatePolygonIntegral(hit *material.SurfaceInteraction, frame ltc.Frame, active bool) core.Vec3 {
	vertices := l.polygon.Vertices()
	facing := hit.Point.Subtract(vertices[0]).Dot(l.polygon.Normal()) > 0
	if !active || !facing {
		return core.Vec3{}
	}

	local := make([]core.Vec3, len(vertices))
	for i, v := range vertices {
		local[i] = hit.ToLocal(v.Subtract(hit.Point))
	}
	return l.Emission.Multiply(frame.Integrate(local))
}
