package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// OrbitCamera circles a target point. Yaw and pitch describe the view
// direction, so the eye sits Distance behind the target along front.
type OrbitCamera struct {
	Target   mgl32.Vec3
	Distance float32

	MinDistance float32
	MaxDistance float32

	// Fraction of the current distance moved per scroll unit
	DistanceSensitivity float32

	yaw   float32
	pitch float32
	zoom  float32

	front, right, up mgl32.Vec3
	worldUp          mgl32.Vec3

	settings Settings
}

// NewOrbit creates an orbit camera looking at target from above.
func NewOrbit(target mgl32.Vec3, settings Settings) *OrbitCamera {
	c := &OrbitCamera{
		Target:              target,
		Distance:            20,
		MinDistance:         2,
		MaxDistance:         200,
		DistanceSensitivity: 0.1,
		yaw:                 -90,
		pitch:               settings.clampPitch(-35),
		zoom:                settings.MaxZoom,
		worldUp:             mgl32.Vec3{0, 1, 0},
		right:               mgl32.Vec3{1, 0, 0},
		settings:            settings,
	}
	c.updateVectors()
	return c
}

// Look rotates around the target. Positive dx turns right, positive dy looks up.
func (c *OrbitCamera) Look(dx, dy float32) {
	c.yaw += dx * c.settings.MouseSensitivity
	c.pitch = c.settings.clampPitch(c.pitch + dy*c.settings.MouseSensitivity)
	c.updateVectors()
}

// AdjustDistance dollies toward the target on positive delta.
func (c *OrbitCamera) AdjustDistance(delta float32) {
	c.Distance -= delta * c.Distance * c.DistanceSensitivity
	c.Distance = clamp(c.Distance, c.MinDistance, c.MaxDistance)
}

// AdjustZoom narrows the field of view on positive scroll.
func (c *OrbitCamera) AdjustZoom(delta float32) {
	c.zoom = c.settings.clampZoom(c.zoom - delta)
}

// SetTarget moves the orbit center.
func (c *OrbitCamera) SetTarget(target mgl32.Vec3) {
	c.Target = target
}

// Frame centers the orbit on a bounding box and backs off far enough to see it.
func (c *OrbitCamera) Frame(minCorner, maxCorner mgl32.Vec3) {
	c.Target = minCorner.Add(maxCorner).Mul(0.5)

	size := maxCorner.Sub(minCorner)
	extent := size.X()
	if size.Z() > extent {
		extent = size.Z()
	}
	c.Distance = clamp(extent*1.2, c.MinDistance, c.MaxDistance)
}

// ApplySettings swaps the tunables and re-clamps pitch and zoom.
func (c *OrbitCamera) ApplySettings(s Settings) {
	c.settings = s
	c.pitch = s.clampPitch(c.pitch)
	c.zoom = s.clampZoom(c.zoom)
	c.updateVectors()
}

// Position returns the eye position in world space.
func (c *OrbitCamera) Position() mgl32.Vec3 {
	return c.Target.Sub(c.front.Mul(c.Distance))
}

// ViewMatrix returns the view matrix looking at the target.
func (c *OrbitCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Target, c.up)
}

// Projection returns a perspective transform using zoom as the vertical FOV.
func (c *OrbitCamera) Projection(aspect, near, far float32) mgl32.Mat4 {
	return perspective(c.zoom, aspect, near, far)
}

// Yaw returns the horizontal angle in degrees.
func (c *OrbitCamera) Yaw() float32 { return c.yaw }

// Pitch returns the vertical angle in degrees.
func (c *OrbitCamera) Pitch() float32 { return c.pitch }

// Zoom returns the field of view in degrees.
func (c *OrbitCamera) Zoom() float32 { return c.zoom }

// Front returns the unit view direction.
func (c *OrbitCamera) Front() mgl32.Vec3 { return c.front }

func (c *OrbitCamera) updateVectors() {
	c.front, c.right, c.up = basis(c.yaw, c.pitch, c.worldUp, c.right)
}
