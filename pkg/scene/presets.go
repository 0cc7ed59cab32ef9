package scene

import (
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/df07/go-ris-ltc/pkg/core"
	"github.com/df07/go-ris-ltc/pkg/geometry"
	"github.com/df07/go-ris-ltc/pkg/material"
)

// ErrUnknownScene is returned by Load for names without a preset
var ErrUnknownScene = errors.New("unknown scene")

var presets = map[string]func() *Scene{
	"unit-square":   NewUnitSquareScene,
	"cornell":       NewCornellScene,
	"glossy-plates": NewGlossyPlatesScene,
}

// Names returns the preset names in sorted order
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load builds and preprocesses a preset scene
func Load(name string) (*Scene, error) {
	build, ok := presets[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownScene, "%q (available: %v)", name, Names())
	}
	s := build()
	if err := s.Preprocess(); err != nil {
		return nil, errors.Wrapf(err, "preparing scene %q", name)
	}
	return s, nil
}

// Unit square scene parameters. The floor point below the light centre
// receives L·ρ·F with F = 4·F_corner(0.5, 0.5) ≈ 0.2395.
var (
	UnitSquareAlbedo   = core.NewVec3(0.5, 0.5, 0.5)
	UnitSquareEmission = core.NewVec3(1, 1, 1)
)

// NewUnitSquareScene creates a Lambertian floor in the z=0 plane lit by a
// unit square light at height 1, centred above the origin and facing down
func NewUnitSquareScene() *Scene {
	s := New("unit-square")
	s.CameraConfig = geometry.CameraConfig{
		Center:      core.NewVec3(0, -3, 2.5),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 0, 1),
		Width:       256,
		AspectRatio: 1.0,
		VFov:        50.0,
	}
	s.SamplingConfig = SamplingConfig{Width: 256, Height: 256, SamplesPerPixel: 16}

	s.AddQuad(core.NewVec3(-5, -5, 0), core.NewVec3(10, 0, 0), core.NewVec3(0, 10, 0),
		material.NewLambertian(UnitSquareAlbedo))
	s.AddQuadLight(core.NewVec3(-0.5, -0.5, 1), core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0),
		UnitSquareEmission)
	return s
}

// NewCornellScene creates a classic Cornell box with quad walls, a ceiling
// area light, a diffuse short block and a rough metal tall block
func NewCornellScene() *Scene {
	s := New("cornell")
	s.CameraConfig = geometry.CameraConfig{
		Center:      core.NewVec3(278, 278, -800), // Position camera outside the box looking in
		LookAt:      core.NewVec3(278, 278, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 1.0,
		VFov:        40.0,
	}
	s.SamplingConfig = SamplingConfig{Width: 400, Height: 400, SamplesPerPixel: 32}

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	metal := material.NewMetal(core.NewVec3(0.8, 0.85, 0.88), 0.3)

	// Cornell box dimensions (standard 555x555x555 units)
	boxSize := 555.0

	s.AddQuad(core.NewVec3(0, 0, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white)       // floor
	s.AddQuad(core.NewVec3(0, boxSize, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white) // ceiling
	s.AddQuad(core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), white) // back wall
	s.AddQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, boxSize), core.NewVec3(0, boxSize, 0), red)         // left wall
	s.AddQuad(core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), core.NewVec3(0, boxSize, 0), green) // right wall

	// Ceiling light, slightly below the ceiling and facing down
	s.AddQuadLight(
		core.NewVec3(213, boxSize-1, 227),
		core.NewVec3(130, 0, 0),
		core.NewVec3(0, 0, 105),
		core.NewVec3(15, 15, 15),
	)

	s.addBox(core.NewVec3(130, 0, 65), core.NewVec3(295, 165, 230), white)
	s.addBox(core.NewVec3(265, 0, 295), core.NewVec3(430, 330, 460), metal)
	return s
}

// addBox adds the five visible faces of an axis-aligned box resting on the floor
func (s *Scene) addBox(lo, hi core.Vec3, bsdf material.BSDF) {
	dx := core.NewVec3(hi.X-lo.X, 0, 0)
	dy := core.NewVec3(0, hi.Y-lo.Y, 0)
	dz := core.NewVec3(0, 0, hi.Z-lo.Z)

	s.AddQuad(core.NewVec3(lo.X, hi.Y, lo.Z), dz, dx, bsdf) // top
	s.AddQuad(lo, dy, dz, bsdf)                             // left
	s.AddQuad(core.NewVec3(hi.X, lo.Y, lo.Z), dz, dy, bsdf) // right
	s.AddQuad(lo, dx, dy, bsdf)                             // front
	s.AddQuad(core.NewVec3(lo.X, lo.Y, hi.Z), dy, dx, bsdf) // back
}

// NewGlossyPlatesScene creates four rough metal plates of decreasing
// roughness lit by four square lights of equal power and increasing size,
// plus a small triangle light
func NewGlossyPlatesScene() *Scene {
	s := New("glossy-plates")
	s.CameraConfig = geometry.CameraConfig{
		Center:      core.NewVec3(0, 2, -8),
		LookAt:      core.NewVec3(0, 0.8, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       384,
		AspectRatio: 1.5,
		VFov:        35.0,
	}
	s.SamplingConfig = SamplingConfig{Width: 384, Height: 256, SamplesPerPixel: 16}

	checker := material.NewTexturedLambertian(material.NewCheckerboard(16,
		core.NewVec3(0.6, 0.6, 0.6), core.NewVec3(0.25, 0.25, 0.25)))
	s.AddQuad(core.NewVec3(-10, 0, -10), core.NewVec3(0, 0, 20), core.NewVec3(20, 0, 0), checker)

	// Plates rise towards the back and tilt towards the camera
	plates := []struct {
		y, z, roughness float64
	}{
		{0.10, -1.5, 0.5},
		{0.45, -0.6, 0.25},
		{0.90, 0.3, 0.1},
		{1.45, 1.2, 0.05},
	}
	for _, p := range plates {
		s.AddQuad(
			core.NewVec3(-2, p.y, p.z),
			core.NewVec3(0, 0.25, 0.7),
			core.NewVec3(4, 0, 0),
			material.NewMetal(core.NewVec3(0.9, 0.9, 0.9), p.roughness),
		)
	}

	lightColors := []core.Vec3{
		core.NewVec3(1, 0.3, 0.3),
		core.NewVec3(1, 1, 0.3),
		core.NewVec3(0.3, 1, 0.3),
		core.NewVec3(0.3, 0.5, 1),
	}
	for i, size := range []float64{0.1, 0.3, 0.6, 1.2} {
		x := -1.8 + 1.2*float64(i)
		s.AddQuadLight(
			core.NewVec3(x-size/2, 3, 1.5-size/2),
			core.NewVec3(size, 0, 0),
			core.NewVec3(0, 0, size),
			lightColors[i].Multiply(0.8/(size*size)),
		)
	}

	// Back light, a triangle facing the camera
	s.AddTriangleLight(
		core.NewVec3(-0.5, 1.5, 4),
		core.NewVec3(0, 2.3, 4),
		core.NewVec3(0.5, 1.5, 4),
		core.NewVec3(4, 4, 4),
	)
	return s
}
