package ltc

import (
	"math"

	"github.com/df07/go-ris-ltc/pkg/core"
)

// Roughness is clamped into this range before the table lookup
const (
	minRoughness = 0.01
	maxRoughness = 0.99
)

// Transform is the linear transform of a clamped cosine lobe. M maps cosine
// directions onto the lobe, MInv maps lobe-space geometry back into cosine
// space where the polygon integral is evaluated.
type Transform struct {
	M        core.Mat3
	MInv     core.Mat3
	Singular bool // M was not invertible and both matrices fell back to identity
}

// IdentityTransform returns the transform of the plain clamped cosine
func IdentityTransform() Transform {
	return Transform{M: core.Identity3(), MInv: core.Identity3()}
}

// TableCoordinates maps a view cosine and a roughness to table coordinates:
// u = 2/π·acos(cosθ), v = clamp(roughness, 0.01, 0.99)
func TableCoordinates(cosThetaView, roughness float64) core.Vec2 {
	cosTheta := max(0, min(1, cosThetaView))
	if math.IsNaN(cosThetaView) {
		cosTheta = 1
	}
	if math.IsNaN(roughness) {
		roughness = maxRoughness
	}
	return core.NewVec2(
		2/math.Pi*math.Acos(cosTheta),
		max(minRoughness, min(maxRoughness, roughness)),
	)
}

// Fetch builds the LTC transform for a view direction and roughness. The
// three tables hold the rows of M. Inactive lanes still perform the lookups
// and return the identity transform.
func Fetch(tables Tables, cosThetaView, roughness float64, active bool) Transform {
	uv := TableCoordinates(cosThetaView, roughness)
	r1 := tables.R1.Lookup(uv, active)
	r2 := tables.R2.Lookup(uv, active)
	r3 := tables.R3.Lookup(uv, active)
	if !active {
		return IdentityTransform()
	}

	m := core.NewMat3FromRows(r1, r2, r3)
	inv, ok := m.Inverse()
	if !ok {
		t := IdentityTransform()
		t.Singular = true
		return t
	}
	return Transform{M: m, MInv: inv}
}
