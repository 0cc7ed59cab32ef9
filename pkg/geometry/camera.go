package geometry

import (
	"math"

	"github.com/df07/go-ris-ltc/pkg/core"
)

// CameraConfig describes a pinhole camera
type CameraConfig struct {
	Center      core.Vec3 // Camera position
	LookAt      core.Vec3 // Point the camera looks at
	Up          core.Vec3 // Up direction
	Width       int       // Image width in pixels
	AspectRatio float64   // Width / height
	VFov        float64   // Vertical field of view in degrees
}

// Camera generates primary rays for image pixels
type Camera struct {
	origin      core.Vec3
	upperLeft   core.Vec3
	horizontal  core.Vec3
	vertical    core.Vec3
	width       int
	height      int
	pixelDeltaU core.Vec3
	pixelDeltaV core.Vec3
}

// NewCamera creates a pinhole camera. The viewport sits at unit distance in
// front of the camera.
func NewCamera(config CameraConfig) *Camera {
	aspectRatio := config.AspectRatio
	if aspectRatio <= 0 {
		aspectRatio = 1
	}
	width := max(1, config.Width)
	height := max(1, int(float64(width)/aspectRatio))

	theta := config.VFov * math.Pi / 180
	viewportHeight := 2 * math.Tan(theta/2)
	viewportWidth := viewportHeight * float64(width) / float64(height)

	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Multiply(viewportWidth)
	vertical := v.Multiply(-viewportHeight)
	upperLeft := config.Center.Subtract(w).
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5))

	return &Camera{
		origin:      config.Center,
		upperLeft:   upperLeft,
		horizontal:  horizontal,
		vertical:    vertical,
		width:       width,
		height:      height,
		pixelDeltaU: horizontal.Multiply(1 / float64(width)),
		pixelDeltaV: vertical.Multiply(1 / float64(height)),
	}
}

// Width returns the image width in pixels
func (c *Camera) Width() int {
	return c.width
}

// Height returns the image height in pixels
func (c *Camera) Height() int {
	return c.height
}

// GetRay returns a ray through pixel (i, j), with j counted from the top
// row, jittered inside the pixel by sample
func (c *Camera) GetRay(i, j int, sample core.Vec2) core.Ray {
	target := c.upperLeft.
		Add(c.pixelDeltaU.Multiply(float64(i) + sample.X)).
		Add(c.pixelDeltaV.Multiply(float64(j) + sample.Y))
	return core.NewRay(c.origin, target.Subtract(c.origin).Normalize())
}
