package core

import "math"

// degenerateTangentLength is the tangent length below which the incident
// direction is considered to lie along the normal
const degenerateTangentLength = 1e-7

// ShadingFrame is the orthonormal basis (T1, T2, N) built from a local
// incident direction. N is always +Z of the local shading basis and T1 is the
// tangent-plane projection of the incident direction, so in this frame the
// incident direction has no T2 component.
type ShadingFrame struct {
	T1 Vec3
	T2 Vec3
	N  Vec3
}

// BuildShadingFrame builds the frame used to express light polygons relative to
// the view direction. When the incident direction is (numerically) the normal
// the tangent is undefined and the local X axis is used instead, which still
// gives a valid orthonormal frame.
func BuildShadingFrame(wiLocal Vec3) ShadingFrame {
	n := NewVec3(0, 0, 1)
	projected := NewVec3(wiLocal.X, wiLocal.Y, 0)

	var t1 Vec3
	if length := projected.Length(); length < degenerateTangentLength || math.IsNaN(length) {
		t1 = NewVec3(1, 0, 0)
	} else {
		t1 = projected.Multiply(1.0 / length)
	}
	t2 := n.Cross(t1).Normalize()

	return ShadingFrame{T1: t1, T2: t2, N: n}
}

// ToFrame returns the coordinates of v in this frame
func (f ShadingFrame) ToFrame(v Vec3) Vec3 {
	return NewVec3(f.T1.Dot(v), f.T2.Dot(v), f.N.Dot(v))
}

// Frame is an orthonormal basis around a world-space normal, used to move
// directions between world space and the local shading space (normal = +Z)
type Frame struct {
	S Vec3
	T Vec3
	N Vec3
}

// NewFrame builds a frame around the given unit normal
func NewFrame(normal Vec3) Frame {
	// Duff et al. branchless basis
	sign := math.Copysign(1.0, normal.Z)
	a := -1.0 / (sign + normal.Z)
	b := normal.X * normal.Y * a
	s := NewVec3(1.0+sign*normal.X*normal.X*a, sign*b, -sign*normal.X)
	t := NewVec3(b, sign+normal.Y*normal.Y*a, -normal.Y)
	return Frame{S: s, T: t, N: normal}
}

// ToLocal converts a world-space direction into the local frame
func (f Frame) ToLocal(v Vec3) Vec3 {
	return NewVec3(v.Dot(f.S), v.Dot(f.T), v.Dot(f.N))
}

// ToWorld converts a local direction into world space
func (f Frame) ToWorld(v Vec3) Vec3 {
	return f.S.Multiply(v.X).Add(f.T.Multiply(v.Y)).Add(f.N.Multiply(v.Z))
}
