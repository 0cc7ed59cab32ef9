package scene

import (
	"math"

	"github.com/cockroachdb/errors"

	"github.com/df07/go-ris-ltc/pkg/core"
	"github.com/df07/go-ris-ltc/pkg/geometry"
	"github.com/df07/go-ris-ltc/pkg/lights"
	"github.com/df07/go-ris-ltc/pkg/material"
)

// minHitDistance rejects self intersections of rays leaving a surface
const minHitDistance = 1e-9

// Primitive binds a shape to the material and emitter attached to it
type Primitive struct {
	Shape      geometry.Shape
	BSDF       material.BSDF    // nil for pure emitters
	Emitter    material.Emitter // nil for non-emissive surfaces
	LightIndex int              // Index of Emitter in Scene.Lights
}

// Scene contains all the elements needed for rendering. It answers the
// ray queries of the direct lighting estimators with a linear scan, which is
// plenty for the handful of primitives the presets use.
type Scene struct {
	Name           string
	Primitives     []Primitive
	Lights         []lights.Light      // Lights in the scene
	LightSampler   lights.LightSampler // Emitter selection, built by Preprocess if nil
	CameraConfig   geometry.CameraConfig
	SamplingConfig SamplingConfig
}

// SamplingConfig contains the preset's preferred image settings
type SamplingConfig struct {
	Width           int // Image width
	Height          int // Image height
	SamplesPerPixel int // Number of camera rays per pixel
}

// New creates an empty scene
func New(name string) *Scene {
	return &Scene{Name: name}
}

// Add adds a shape with a material
func (s *Scene) Add(shape geometry.Shape, bsdf material.BSDF) {
	s.Primitives = append(s.Primitives, Primitive{Shape: shape, BSDF: bsdf})
}

// AddQuad adds a quad with a material
func (s *Scene) AddQuad(corner, u, v core.Vec3, bsdf material.BSDF) *geometry.Quad {
	quad := geometry.NewQuad(corner, u, v)
	s.Add(quad, bsdf)
	return quad
}

// AddAreaLight adds an area light and its surface
func (s *Scene) AddAreaLight(light *lights.AreaLight) *lights.AreaLight {
	s.Primitives = append(s.Primitives, Primitive{Shape: light.Shape(), Emitter: light, LightIndex: len(s.Lights)})
	s.Lights = append(s.Lights, light)
	return light
}

// AddQuadLight adds a rectangular area light emitting towards u × v
func (s *Scene) AddQuadLight(corner, u, v core.Vec3, emission core.Vec3) *lights.AreaLight {
	return s.AddAreaLight(lights.NewQuadLight(corner, u, v, emission))
}

// AddTriangleLight adds a triangular area light emitting towards (v1-v0) × (v2-v0)
func (s *Scene) AddTriangleLight(v0, v1, v2 core.Vec3, emission core.Vec3) *lights.AreaLight {
	return s.AddAreaLight(lights.NewTriangleLight(v0, v1, v2, emission))
}

// Preprocess validates the scene and builds the light sampler. Area lights
// are selected proportionally to their power; any other light mix is
// selected uniformly.
func (s *Scene) Preprocess() error {
	for i, p := range s.Primitives {
		if p.Shape == nil {
			return errors.Newf("scene %q: primitive %d has no shape", s.Name, i)
		}
		if p.BSDF == nil && p.Emitter == nil {
			return errors.Newf("scene %q: primitive %d has neither material nor emitter", s.Name, i)
		}
	}

	if s.LightSampler == nil {
		areaLights := make([]*lights.AreaLight, 0, len(s.Lights))
		for _, light := range s.Lights {
			if area, ok := light.(*lights.AreaLight); ok {
				areaLights = append(areaLights, area)
			}
		}
		if len(areaLights) == len(s.Lights) {
			s.LightSampler = lights.NewPowerLightSampler(areaLights)
		} else {
			s.LightSampler = lights.NewUniformLightSampler(len(s.Lights))
		}
	}
	if s.LightSampler.Count() != len(s.Lights) {
		return errors.Newf("scene %q: light sampler covers %d lights, scene has %d",
			s.Name, s.LightSampler.Count(), len(s.Lights))
	}
	return nil
}

// Intersect finds the closest surface along ray. Inactive lanes and misses
// return an interaction with Valid unset.
func (s *Scene) Intersect(ray core.Ray, active bool) material.SurfaceInteraction {
	if !active {
		return material.SurfaceInteraction{}
	}

	closest := math.Inf(1)
	var hit geometry.Hit
	var primitive *Primitive
	for i := range s.Primitives {
		if h, ok := s.Primitives[i].Shape.Hit(ray, minHitDistance, closest); ok {
			closest = h.T
			hit = h
			primitive = &s.Primitives[i]
		}
	}
	if primitive == nil {
		return material.SurfaceInteraction{}
	}

	si := material.NewSurfaceInteraction(ray, hit.T, hit.Point, hit.Normal, hit.UV)
	si.BSDF = primitive.BSDF
	if primitive.Emitter != nil {
		si.Emitter = primitive.Emitter
		si.EmitterIndex = primitive.LightIndex
	}
	return si
}

// Occluded reports whether anything blocks the segment from hit to target
func (s *Scene) Occluded(hit *material.SurfaceInteraction, target core.Vec3, active bool) bool {
	if !active || !hit.Valid {
		return false
	}
	ray, tMax := hit.SpawnRayTo(target)
	for _, p := range s.Primitives {
		if _, ok := p.Shape.Hit(ray, minHitDistance, tMax); ok {
			return true
		}
	}
	return false
}

// Emitters returns the scene lights
func (s *Scene) Emitters() []lights.Light {
	return s.Lights
}

// SampleEmitter selects one light and returns its index and the inverse of
// its selection probability. Returns (-1, 0) for inactive lanes and
// scenes without lights.
func (s *Scene) SampleEmitter(u float64, active bool) (int, float64) {
	if !active || s.LightSampler == nil {
		return -1, 0
	}
	index, pdf := s.LightSampler.SampleLight(u)
	if index < 0 || pdf <= 0 {
		return -1, 0
	}
	return index, 1 / pdf
}

// SampleEmitterDirection selects a light with u1 and samples a direction
// towards it with u2. The returned pdf includes the selection probability;
// the radiance is unweighted.
func (s *Scene) SampleEmitterDirection(hit *material.SurfaceInteraction, u1 float64, u2 core.Vec2, active bool) (lights.DirectionSample, core.Vec3) {
	index, invPdf := s.SampleEmitter(u1, active)
	if index < 0 {
		return lights.DirectionSample{EmitterIndex: -1}, core.Vec3{}
	}

	ds, radiance := s.Lights[index].SampleDirection(hit, u2, active)
	ds.EmitterIndex = index
	ds.PDF /= invPdf
	return ds, radiance
}

// EvalEmitterDirection returns the radiance arriving at hit along ds from
// the light ds was sampled on
func (s *Scene) EvalEmitterDirection(hit *material.SurfaceInteraction, ds lights.DirectionSample, active bool) core.Vec3 {
	if !active || ds.EmitterIndex < 0 || ds.EmitterIndex >= len(s.Lights) {
		return core.Vec3{}
	}
	return s.Lights[ds.EmitterIndex].EvaluateDirection(hit, ds, active)
}

// PDFEmitterDirection returns the density SampleEmitterDirection assigns to
// ds, including the selection probability
func (s *Scene) PDFEmitterDirection(hit *material.SurfaceInteraction, ds lights.DirectionSample, active bool) float64 {
	if !active || s.LightSampler == nil || ds.EmitterIndex < 0 || ds.EmitterIndex >= len(s.Lights) {
		return 0
	}
	return s.LightSampler.Probability(ds.EmitterIndex) * s.Lights[ds.EmitterIndex].PDFDirection(hit, ds, active)
}
