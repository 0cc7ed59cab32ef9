package material

import (
	"math"

	"github.com/df07/go-ris-ltc/pkg/core"
)

// deltaRoughness is the roughness below which a metal is treated as a perfect mirror
const deltaRoughness = 1e-3

// Metal is a rough conductor with an isotropic GGX (Trowbridge-Reitz)
// microfacet distribution and Schlick Fresnel
type Metal struct {
	Albedo    core.Vec3 // Reflectance at normal incidence (F0)
	Roughness float64   // GGX alpha in [0,1]; 0 = perfect mirror
}

// NewMetal creates a new metal material
func NewMetal(albedo core.Vec3, roughness float64) *Metal {
	return &Metal{Albedo: albedo, Roughness: max(0, min(1, roughness))}
}

// Flags implements BSDF
func (m *Metal) Flags() BSDFFlags {
	if m.Roughness < deltaRoughness {
		return FlagDelta
	}
	return FlagGlossy
}

// Sample implements BSDF by drawing GGX microfacet normals
// proportional to D(h)·cos(θh)
func (m *Metal) Sample(ctx BSDFContext, si *SurfaceInteraction, u1 float64, u2 core.Vec2, active bool) (BSDFSample, core.Vec3) {
	wi := si.Wi
	bs := BSDFSample{
		Roughness:   m.Roughness,
		Reflectance: m.Albedo,
		Flags:       m.Flags(),
	}
	if !active || wi.Z <= 0 {
		return bs, core.Vec3{}
	}

	if m.Flags() == FlagDelta {
		bs.Wo = core.NewVec3(-wi.X, -wi.Y, wi.Z)
		bs.PDF = 1
		return bs, m.fresnel(wi.Z)
	}

	alpha2 := m.Roughness * m.Roughness
	tan2Theta := alpha2 * u2.X / max(1-u2.X, core.Epsilon)
	cosThetaH := 1 / math.Sqrt(1+tan2Theta)
	sinThetaH := math.Sqrt(max(0, 1-cosThetaH*cosThetaH))
	phi := 2 * math.Pi * u2.Y
	h := core.NewVec3(sinThetaH*math.Cos(phi), sinThetaH*math.Sin(phi), cosThetaH)

	wo := h.Multiply(2 * wi.Dot(h)).Subtract(wi)
	bs.Wo = wo
	if wo.Z <= 0 {
		return bs, core.Vec3{}
	}
	bs.PDF = m.PDF(ctx, si, wo, true)
	if bs.PDF <= 0 {
		return bs, core.Vec3{}
	}
	return bs, m.Evaluate(ctx, si, wo, true).Multiply(1 / bs.PDF)
}

// Evaluate implements BSDF: D·G·F / (4 cos θi)
func (m *Metal) Evaluate(ctx BSDFContext, si *SurfaceInteraction, wo core.Vec3, active bool) core.Vec3 {
	wi := si.Wi
	if !active || m.Flags() == FlagDelta || wi.Z <= 0 || wo.Z <= 0 {
		return core.Vec3{}
	}
	h := wi.Add(wo).Normalize()
	d := m.distribution(h.Z)
	g := m.smithG1(wi.Z) * m.smithG1(wo.Z)
	f := m.fresnel(wo.Dot(h))
	return f.Multiply(d * g / (4 * wi.Z))
}

// PDF implements BSDF
func (m *Metal) PDF(ctx BSDFContext, si *SurfaceInteraction, wo core.Vec3, active bool) float64 {
	wi := si.Wi
	if !active || m.Flags() == FlagDelta || wi.Z <= 0 || wo.Z <= 0 {
		return 0
	}
	h := wi.Add(wo).Normalize()
	woDotH := wo.Dot(h)
	if woDotH <= 0 {
		return 0
	}
	return m.distribution(h.Z) * h.Z / (4 * woDotH)
}

// distribution evaluates the GGX normal distribution D(h)
func (m *Metal) distribution(cosThetaH float64) float64 {
	if cosThetaH <= 0 {
		return 0
	}
	alpha2 := m.Roughness * m.Roughness
	denom := cosThetaH*cosThetaH*(alpha2-1) + 1
	return alpha2 / (math.Pi * denom * denom)
}

// smithG1 is the GGX Smith masking term for one direction
func (m *Metal) smithG1(cosTheta float64) float64 {
	alpha2 := m.Roughness * m.Roughness
	return 2 * cosTheta / (cosTheta + math.Sqrt(alpha2+(1-alpha2)*cosTheta*cosTheta))
}

// fresnel is Schlick's approximation with F0 = Albedo
func (m *Metal) fresnel(cosTheta float64) core.Vec3 {
	k := math.Pow(1-max(0, min(1, cosTheta)), 5)
	return m.Albedo.Add(core.NewVec3(1, 1, 1).Subtract(m.Albedo).Multiply(k))
}
