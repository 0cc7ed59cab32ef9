package integrator

import (
	"github.com/df07/go-ris-ltc/pkg/core"
	"github.com/df07/go-ris-ltc/pkg/lights"
	"github.com/df07/go-ris-ltc/pkg/material"
)

//go:generate mockgen -source interfaces.go -destination scene_mock.go -package integrator

// Integrator estimates the radiance arriving along a camera ray. Sample
// returns the estimate and whether the ray hit a surface. Inactive lanes
// consume exactly the same random numbers as active ones and return zero.
type Integrator interface {
	Sample(scene Scene, sampler core.Sampler, ray core.Ray, active bool) (core.Vec3, bool)
}

// Scene is the ray query and emitter sampling interface the estimators
// work against
type Scene interface {
	// Intersect returns the closest interaction along ray
	Intersect(ray core.Ray, active bool) material.SurfaceInteraction

	// Occluded reports whether the segment from hit to target is blocked
	Occluded(hit *material.SurfaceInteraction, target core.Vec3, active bool) bool

	// SampleEmitter selects an emitter, returning its index and inverse selection probability
	SampleEmitter(u float64, active bool) (int, float64)

	// SampleEmitterDirection selects an emitter and samples a direction
	// towards it. The pdf includes the selection probability, the radiance
	// is unweighted.
	SampleEmitterDirection(hit *material.SurfaceInteraction, u1 float64, u2 core.Vec2, active bool) (lights.DirectionSample, core.Vec3)

	// EvalEmitterDirection returns the radiance arriving at hit along ds
	EvalEmitterDirection(hit *material.SurfaceInteraction, ds lights.DirectionSample, active bool) core.Vec3

	// PDFEmitterDirection returns the density SampleEmitterDirection assigns to ds
	PDFEmitterDirection(hit *material.SurfaceInteraction, ds lights.DirectionSample, active bool) float64

	Emitters() []lights.Light
}
