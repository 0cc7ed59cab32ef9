package material

import (
	"math"

	"github.com/df07/go-ris-ltc/pkg/core"
)

// ColorSource provides spatially-varying colors for materials
type ColorSource interface {
	// Evaluate returns color at given UV coordinates and 3D point
	Evaluate(uv core.Vec2, point core.Vec3) core.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of UV or position
func (s *SolidColor) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	return s.Color
}

// Checkerboard alternates two colors over a UV grid
type Checkerboard struct {
	Color1 core.Vec3
	Color2 core.Vec3
	Checks int // Number of checks along each UV axis
}

// NewCheckerboard creates a procedural checkerboard
func NewCheckerboard(checks int, color1, color2 core.Vec3) *Checkerboard {
	return &Checkerboard{Color1: color1, Color2: color2, Checks: max(1, checks)}
}

// Evaluate returns the color of the check containing uv
func (c *Checkerboard) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	n := float64(c.Checks)
	x := int(math.Floor(uv.X * n))
	y := int(math.Floor(uv.Y * n))
	if (x+y)%2 == 0 {
		return c.Color1
	}
	return c.Color2
}
