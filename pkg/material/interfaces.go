package material

import (
	"github.com/df07/go-ris-ltc/pkg/core"
)

// surfaceOffset pushes spawned rays off the surface to avoid self intersection
const surfaceOffset = 1e-4

// TransportMode tells a BSDF which quantity is being transported
type TransportMode int

const (
	Radiance TransportMode = iota
	Importance
)

// BSDFContext carries per-query options to BSDF calls
type BSDFContext struct {
	Mode TransportMode
}

// BSDFFlags describe the lobes of a BSDF
type BSDFFlags uint32

const (
	FlagDiffuse BSDFFlags = 1 << iota
	FlagGlossy
	FlagDelta
)

// Smooth reports whether the BSDF has a non-delta lobe that can be evaluated
// for arbitrary direction pairs. The direct lighting estimators only shade
// smooth surfaces.
func (f BSDFFlags) Smooth() bool {
	return f&(FlagDiffuse|FlagGlossy) != 0
}

// BSDFSample is the result of importance sampling a BSDF
type BSDFSample struct {
	Wo          core.Vec3 // Sampled direction in the local shading frame
	PDF         float64   // Solid angle density of Wo
	Roughness   float64   // Lobe roughness in [0,1]; 1 for a diffuse lobe
	Reflectance core.Vec3 // Directional albedo used to scale analytic (LTC) integrals
	Flags       BSDFFlags // Lobe that produced the sample
}

// BSDF is the material collaborator used by the estimators. All directions
// are expressed in the local shading frame of the interaction (normal = +Z).
type BSDF interface {
	Flags() BSDFFlags

	// Sample draws an outgoing direction. The returned color is the sample
	// weight f·cos/pdf (zero when the sample failed or the lane is inactive).
	Sample(ctx BSDFContext, si *SurfaceInteraction, u1 float64, u2 core.Vec2, active bool) (BSDFSample, core.Vec3)

	// Evaluate returns the cosine-weighted BSDF value f(wi, wo)·cos(wo)
	Evaluate(ctx BSDFContext, si *SurfaceInteraction, wo core.Vec3, active bool) core.Vec3

	// PDF returns the solid angle density Sample would produce for wo
	PDF(ctx BSDFContext, si *SurfaceInteraction, wo core.Vec3, active bool) float64
}

// Emitter is implemented by anything that emits radiance from a surface it
// is attached to. The scene stores it on interactions with that surface.
type Emitter interface {
	// Evaluate returns the radiance leaving the surface towards si.Wi
	Evaluate(si *SurfaceInteraction, active bool) core.Vec3
}

// SurfaceInteraction describes a ray-surface intersection. It is the
// per-lane state every estimator starts from.
type SurfaceInteraction struct {
	Valid     bool       // False for rays that left the scene
	Point     core.Vec3  // Point of intersection
	Normal    core.Vec3  // Surface normal, flipped to face the incoming ray
	T         float64    // Ray parameter of the intersection
	UV        core.Vec2  // Surface parameterization
	FrontFace bool       // Whether the ray hit the side the geometric normal points to
	Frame     core.Frame // Shading frame around Normal
	Wi        core.Vec3  // Direction towards the ray origin, in the local frame
	BSDF      BSDF       // Material at the hit point, nil for pure emitters
	Emitter   Emitter    // Emitter attached to the surface, nil if none

	EmitterIndex int // Index of Emitter among the scene lights, -1 if none
}

// NewSurfaceInteraction fills the shading frame and local incident direction
// for a hit of ray at parameter t
func NewSurfaceInteraction(ray core.Ray, t float64, point, outwardNormal core.Vec3, uv core.Vec2) SurfaceInteraction {
	si := SurfaceInteraction{
		Valid:        true,
		Point:        point,
		T:            t,
		UV:           uv,
		EmitterIndex: -1,
	}
	si.SetFaceNormal(ray, outwardNormal)
	si.Frame = core.NewFrame(si.Normal)
	si.Wi = si.Frame.ToLocal(ray.Direction.Normalize().Negate())
	return si
}

// SetFaceNormal sets the normal vector and determines front/back face
func (si *SurfaceInteraction) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	si.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if si.FrontFace {
		si.Normal = outwardNormal
	} else {
		si.Normal = outwardNormal.Negate()
	}
}

// ToLocal converts a world-space direction into the shading frame
func (si *SurfaceInteraction) ToLocal(v core.Vec3) core.Vec3 {
	return si.Frame.ToLocal(v)
}

// ToWorld converts a shading-frame direction into world space
func (si *SurfaceInteraction) ToWorld(v core.Vec3) core.Vec3 {
	return si.Frame.ToWorld(v)
}

// SpawnRay returns a ray leaving the surface in world direction d
func (si *SurfaceInteraction) SpawnRay(d core.Vec3) core.Ray {
	return core.NewRay(si.offsetOrigin(d), d)
}

// SpawnRayTo returns a ray leaving the surface towards target and the ray
// parameter at which target is reached (the direction is not normalized, so
// the parameter is just below 1)
func (si *SurfaceInteraction) SpawnRayTo(target core.Vec3) (core.Ray, float64) {
	d := target.Subtract(si.Point)
	origin := si.offsetOrigin(d)
	return core.NewRay(origin, target.Subtract(origin)), 1 - surfaceOffset
}

func (si *SurfaceInteraction) offsetOrigin(d core.Vec3) core.Vec3 {
	if d.Dot(si.Normal) < 0 {
		return si.Point.Subtract(si.Normal.Multiply(surfaceOffset))
	}
	return si.Point.Add(si.Normal.Multiply(surfaceOffset))
}
