package material

import (
	"github.com/df07/go-ris-ltc/pkg/core"
)

// Emissive is a one-sided diffuse emitter
type Emissive struct {
	Emission core.Vec3 // Emitted radiance
}

// NewEmissive creates a new emissive material
func NewEmissive(emission core.Vec3) *Emissive {
	return &Emissive{Emission: emission}
}

// Evaluate implements Emitter. Only the front face emits.
func (e *Emissive) Evaluate(si *SurfaceInteraction, active bool) core.Vec3 {
	return e.Emission.Select(active && si.Valid && si.FrontFace)
}
