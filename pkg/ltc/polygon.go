package ltc

import (
	"math"

	"github.com/df07/go-ris-ltc/pkg/core"
)

// smallEdgeAngle is the arc length below which θ/sin θ is taken as 1
const smallEdgeAngle = 1e-6

// IntegratePolygon integrates the normalized clamped cosine cos(θ)/π over
// the spherical projection of a polygon seen from the origin. Vertices are
// in the cosine frame (normal = +Z) and may be in either winding order. The
// polygon is clipped to the upper hemisphere first, so the result is the
// form factor of the visible part, in [0, 1].
func IntegratePolygon(vertices []core.Vec3) float64 {
	clipped := ClipToHemisphere(vertices)
	if len(clipped) < 3 {
		return 0
	}

	sum := 0.0
	for i := range clipped {
		v1 := clipped[i].Normalize()
		v2 := clipped[(i+1)%len(clipped)].Normalize()
		sum += edgeIntegral(v1, v2)
	}
	return min(1, math.Abs(sum)/(2*math.Pi))
}

// edgeIntegral is acos(v1·v2) · normalize(v1×v2).z for unit vectors
func edgeIntegral(v1, v2 core.Vec3) float64 {
	cosTheta := max(-1, min(1, v1.Dot(v2)))
	theta := math.Acos(cosTheta)
	cross := v1.Cross(v2)
	if theta < smallEdgeAngle {
		return cross.Z
	}
	sinTheta := cross.Length()
	if sinTheta < core.Epsilon {
		// antipodal vertices, the edge plane is undefined
		return 0
	}
	return theta / sinTheta * cross.Z
}

// ClipToHemisphere clips a polygon against the plane z = 0, keeping the
// part with z >= 0 (Sutherland-Hodgman)
func ClipToHemisphere(vertices []core.Vec3) []core.Vec3 {
	if len(vertices) == 0 {
		return nil
	}
	out := make([]core.Vec3, 0, len(vertices)+1)
	prev := vertices[len(vertices)-1]
	for _, cur := range vertices {
		prevInside := prev.Z >= 0
		curInside := cur.Z >= 0
		if curInside != prevInside {
			t := prev.Z / (prev.Z - cur.Z)
			out = append(out, prev.Add(cur.Subtract(prev).Multiply(t)))
		}
		if curInside {
			out = append(out, cur)
		}
		prev = cur
	}
	return out
}

// Frame is the complete warp of a shading point: the view-aligned shading
// frame followed by the inverse LTC transform
type Frame struct {
	Shading   core.ShadingFrame
	Transform Transform
}

// NewFrame builds the shading frame for wiLocal and fetches the transform for
// its view angle
func NewFrame(tables Tables, wiLocal core.Vec3, roughness float64, active bool) Frame {
	shading := core.BuildShadingFrame(wiLocal)
	return Frame{
		Shading:   shading,
		Transform: Fetch(tables, wiLocal.Z, roughness, active),
	}
}

// Apply maps a vector from the local shading space (normal = +Z) into the
// cosine space of the lobe
func (f Frame) Apply(local core.Vec3) core.Vec3 {
	return f.Transform.MInv.MulVec(f.Shading.ToFrame(local))
}

// Integrate maps local-space polygon vertices (relative to the shading
// point) through the warp and integrates the clamped cosine over them
func (f Frame) Integrate(local []core.Vec3) float64 {
	warped := make([]core.Vec3, len(local))
	for i, v := range local {
		warped[i] = f.Apply(v)
	}
	return IntegratePolygon(warped)
}
