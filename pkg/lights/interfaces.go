package lights

import (
	"github.com/df07/go-ris-ltc/pkg/core"
	"github.com/df07/go-ris-ltc/pkg/geometry"
	"github.com/df07/go-ris-ltc/pkg/ltc"
	"github.com/df07/go-ris-ltc/pkg/material"
)

//go:generate mockgen -source interfaces.go -destination light_mock.go -package lights

type LightType string

const (
	LightTypeArea LightType = "area"
)

// DirectionSample describes a direction from a shading point towards a
// sampled point on an emitter
type DirectionSample struct {
	Point        core.Vec3 // Point on the emitter
	Normal       core.Vec3 // Emitter normal at Point
	Direction    core.Vec3 // Unit direction from the shading point to Point
	Distance     float64   // Distance to Point
	PDF          float64   // Solid angle density of Direction
	EmitterIndex int       // Index of the emitter in the scene
}

// Light is an emitter that can be sampled for direct lighting. Emitted
// values are unweighted radiance; callers divide by the pdf themselves.
type Light interface {
	Type() LightType

	// SampleDirection samples a point on the light as seen from hit and
	// returns the direction sample and the radiance arriving along it
	SampleDirection(hit *material.SurfaceInteraction, u core.Vec2, active bool) (DirectionSample, core.Vec3)

	// EvaluateDirection returns the radiance arriving at hit along ds
	EvaluateDirection(hit *material.SurfaceInteraction, ds DirectionSample, active bool) core.Vec3

	// PDFDirection returns the solid angle density SampleDirection assigns to ds
	PDFDirection(hit *material.SurfaceInteraction, ds DirectionSample, active bool) float64

	// Evaluate returns the radiance leaving the light towards si.Wi, where si
	// is an interaction on the light surface itself
	Evaluate(si *material.SurfaceInteraction, active bool) core.Vec3

	// Radiance returns the emitted radiance of the light
	Radiance() core.Vec3
}

// PolygonLight is a light with a polygonal shape whose cosine-lobe integral
// can be computed in closed form
type PolygonLight interface {
	Light

	Shape() geometry.Polygon

	// EvaluatePolygonIntegral returns the radiance times the integral of the
	// warped cosine lobe of frame over the light polygon, as seen from hit
	EvaluatePolygonIntegral(hit *material.SurfaceInteraction, frame ltc.Frame, active bool) core.Vec3
}

// LightSampler selects one light out of a scene's lights
type LightSampler interface {
	// SampleLight returns the selected index and its selection probability
	SampleLight(u float64) (int, float64)

	// Probability returns the selection probability of the light at index
	Probability(index int) float64

	Count() int
}
