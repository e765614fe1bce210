// Package camera provides the orbiting perspective camera used to view a
// solid: drag to orbit with damping, step or wheel zoom, and reset.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/solidnet/pkg/math"
)

// Setup is the initial placement and limits of a camera.
type Setup struct {
	Eye      math.Vec3
	Target   math.Vec3
	FovY     float32 // radians
	Near     float32
	Far      float32
	ZoomStep float32
	MinPolar float32
	MaxPolar float32
	Damping  float32
}

// polarMargin keeps the camera off the poles where LookAt degenerates.
const polarMargin = 1e-3

// OrbitCamera orbits around a target point. Angles are spherical: Polar is
// measured from +Y, Azimuth around +Y starting at +Z.
type OrbitCamera struct {
	Target   math.Vec3
	Distance float32
	Polar    float32
	Azimuth  float32

	// Projection
	FovY   float32
	Aspect float32
	Near   float32
	Far    float32

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPolar    float32
	MaxPolar    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
	ZoomStep        float32
	// Damping is the fraction of the orbit velocity applied per update.
	// Zero applies drags immediately.
	Damping float32

	velPolar   float32
	velAzimuth float32
	initial    Setup
}

// NewOrbitCamera creates a camera from its initial setup.
func NewOrbitCamera(s Setup) *OrbitCamera {
	c := &OrbitCamera{
		Aspect:          1,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		initial:         s,
	}
	c.apply(s)
	return c
}

func (c *OrbitCamera) apply(s Setup) {
	offset := s.Eye.Sub(s.Target)
	c.Target = s.Target
	c.Distance = offset.Length()
	c.Azimuth = math32.Atan2(offset.X, offset.Z)
	if c.Distance > 0 {
		c.Polar = math32.Acos(math.Clamp(offset.Y/c.Distance, -1, 1))
	}
	c.FovY, c.Near, c.Far = s.FovY, s.Near, s.Far
	c.ZoomStep = s.ZoomStep
	c.MinPolar, c.MaxPolar = s.MinPolar, s.MaxPolar
	c.Damping = s.Damping
	c.MinDistance = s.Near * 10
	c.MaxDistance = s.Far / 2
	c.velPolar, c.velAzimuth = 0, 0
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	sp, cp := math32.Sin(c.Polar), math32.Cos(c.Polar)
	sa, ca := math32.Sin(c.Azimuth), math32.Cos(c.Azimuth)
	return c.Target.Add(math.Vec3{
		X: c.Distance * sp * sa,
		Y: c.Distance * cp,
		Z: c.Distance * sp * ca,
	})
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Target, math.Vec3{Y: 1})
}

// ProjectionMatrix returns the perspective projection.
func (c *OrbitCamera) ProjectionMatrix() math.Mat4 {
	return math.Perspective(c.FovY, c.Aspect, c.Near, c.Far)
}

// ViewProj returns projection * view.
func (c *OrbitCamera) ViewProj() math.Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}

// SetViewport updates the aspect ratio. Zero sizes count as 1.
func (c *OrbitCamera) SetViewport(width, height int) {
	c.Aspect = float32(max(width, 1)) / float32(max(height, 1))
}

// HandleDrag adds orbit velocity from a mouse drag delta in pixels.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.velAzimuth -= deltaX * c.DragSensitivity
	c.velPolar -= deltaY * c.DragSensitivity
	if c.Damping <= 0 {
		c.Update()
	}
}

// HandleZoom scales the distance by a scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.setDistance(c.Distance - delta*c.Distance*c.ZoomSensitivity)
}

// ZoomIn moves the camera one step toward the target along its view
// direction.
func (c *OrbitCamera) ZoomIn() {
	c.setDistance(c.Distance - c.ZoomStep)
}

// ZoomOut moves the camera one step away from the target.
func (c *OrbitCamera) ZoomOut() {
	c.setDistance(c.Distance + c.ZoomStep)
}

func (c *OrbitCamera) setDistance(d float32) {
	c.Distance = math.Clamp(d, c.MinDistance, c.MaxDistance)
}

// Reset restores the initial pose and drops any orbit velocity.
func (c *OrbitCamera) Reset() {
	aspect := c.Aspect
	c.apply(c.initial)
	c.Aspect = aspect
}

// Update applies damped orbit velocity and clamps the polar angle. It
// reports whether the camera moved.
func (c *OrbitCamera) Update() bool {
	if c.velPolar == 0 && c.velAzimuth == 0 {
		return false
	}
	k := c.Damping
	if k <= 0 || k > 1 {
		k = 1
	}
	c.Azimuth += c.velAzimuth * k
	c.Polar += c.velPolar * k
	c.velAzimuth *= 1 - k
	c.velPolar *= 1 - k
	if math32.Abs(c.velAzimuth) < 1e-6 {
		c.velAzimuth = 0
	}
	if math32.Abs(c.velPolar) < 1e-6 {
		c.velPolar = 0
	}

	lo := max(c.MinPolar, polarMargin)
	hi := min(c.MaxPolar, math32.Pi-polarMargin)
	c.Polar = math.Clamp(c.Polar, lo, hi)
	return true
}
