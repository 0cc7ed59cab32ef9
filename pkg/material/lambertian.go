package material

import (
	"math"

	"github.com/df07/go-ris-ltc/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo ColorSource // Base color/reflectance (can be solid or textured)
}

// NewLambertian creates a new lambertian material with solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a new lambertian material with texture
func NewTexturedLambertian(albedoTexture ColorSource) *Lambertian {
	return &Lambertian{Albedo: albedoTexture}
}

// Flags implements BSDF
func (l *Lambertian) Flags() BSDFFlags {
	return FlagDiffuse
}

// Sample implements BSDF with cosine-weighted hemisphere sampling
func (l *Lambertian) Sample(ctx BSDFContext, si *SurfaceInteraction, u1 float64, u2 core.Vec2, active bool) (BSDFSample, core.Vec3) {
	albedo := l.Albedo.Evaluate(si.UV, si.Point)
	wo := core.SampleCosineHemisphere(u2)

	bs := BSDFSample{
		Wo:          wo,
		PDF:         core.CosineHemispherePDF(wo.Z),
		Roughness:   1,
		Reflectance: albedo,
		Flags:       FlagDiffuse,
	}

	active = active && si.Wi.Z > 0 && bs.PDF > 0
	// f·cos/pdf = (albedo/π)·cos / (cos/π)
	return bs, albedo.Select(active)
}

// Evaluate implements BSDF: albedo/π · cos(wo)
func (l *Lambertian) Evaluate(ctx BSDFContext, si *SurfaceInteraction, wo core.Vec3, active bool) core.Vec3 {
	if !active || si.Wi.Z <= 0 || wo.Z <= 0 {
		return core.Vec3{}
	}
	albedo := l.Albedo.Evaluate(si.UV, si.Point)
	return albedo.Multiply(wo.Z / math.Pi)
}

// PDF implements BSDF
func (l *Lambertian) PDF(ctx BSDFContext, si *SurfaceInteraction, wo core.Vec3, active bool) float64 {
	if !active || si.Wi.Z <= 0 {
		return 0
	}
	return core.CosineHemispherePDF(wo.Z)
}
