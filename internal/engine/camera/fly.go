package camera

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Options is the construction pose of a FlyCamera.
type Options struct {
	Position mgl32.Vec3
	WorldUp  mgl32.Vec3 // zero means +Y
	Yaw      float32    // degrees
	Pitch    float32    // degrees
	Zoom     float32    // degrees, zero means Settings.MaxZoom

	Logger *zap.Logger
}

// DefaultOptions returns the starting pose: standing on the ground looking down +Z.
func DefaultOptions() Options {
	return Options{
		Position: mgl32.Vec3{0, 1, 0},
		WorldUp:  mgl32.Vec3{0, 1, 0},
		Yaw:      90,
		Pitch:    0,
	}
}

// FlyCamera is a first-person camera with optional jump/gravity physics.
// It has a single owner and is not safe for concurrent use.
type FlyCamera struct {
	position mgl32.Vec3
	front    mgl32.Vec3
	right    mgl32.Vec3
	up       mgl32.Vec3
	worldUp  mgl32.Vec3

	yaw   float32
	pitch float32
	zoom  float32

	verticalVelocity float32
	airborne         bool

	settings Settings
	log      *zap.Logger
}

// NewFly creates a fly camera at the given pose.
func NewFly(opts Options, settings Settings) *FlyCamera {
	c := &FlyCamera{settings: settings}
	c.log = opts.Logger
	if c.log == nil {
		c.log = zap.NewNop()
	}
	c.Reset(opts)
	return c
}

// Reset puts the camera back at the given pose in the grounded state.
func (c *FlyCamera) Reset(opts Options) {
	c.worldUp = opts.WorldUp
	if c.worldUp.Len() < epsilon {
		c.worldUp = mgl32.Vec3{0, 1, 0}
	}
	c.worldUp = c.worldUp.Normalize()

	c.position = opts.Position
	c.yaw = opts.Yaw
	c.pitch = c.settings.clampPitch(opts.Pitch)

	c.zoom = opts.Zoom
	if c.zoom == 0 {
		c.zoom = c.settings.MaxZoom
	}
	c.zoom = c.settings.clampZoom(c.zoom)

	c.verticalVelocity = 0
	c.airborne = false

	// Seed right so a degenerate first basis still has an axis to fall back on.
	c.right = mgl32.Vec3{1, 0, 0}
	c.updateVectors()
}

// Move translates the camera for one held direction over dt seconds.
// Forward and Backward stay level regardless of pitch.
func (c *FlyCamera) Move(dir Direction, dt float32) {
	velocity := c.settings.MovementSpeed * dt

	switch dir {
	case Forward:
		c.position = c.position.Add(c.levelFront().Mul(velocity))
	case Backward:
		c.position = c.position.Sub(c.levelFront().Mul(velocity))
	case Left:
		c.position = c.position.Sub(c.right.Mul(velocity))
	case Right:
		c.position = c.position.Add(c.right.Mul(velocity))
	case Jump:
		c.Jump()
	}
}

// levelFront is front with its vertical component dropped.
// Looking straight up or down gives a zero vector.
func (c *FlyCamera) levelFront() mgl32.Vec3 {
	return normalizeOr(mgl32.Vec3{c.front.X(), 0, c.front.Z()}, mgl32.Vec3{})
}

// Jump launches the camera upward. It does nothing while airborne.
func (c *FlyCamera) Jump() {
	if c.airborne {
		return
	}
	c.verticalVelocity = c.settings.LaunchVelocity()
	c.airborne = true
	c.log.Debug("camera airborne", zap.Float32("velocity", c.verticalVelocity))
}

// ApplyGravity integrates vertical motion with semi-implicit Euler
// and clamps the camera to the ground height.
func (c *FlyCamera) ApplyGravity(dt float32) {
	dt = c.settings.clampDelta(dt)

	c.verticalVelocity += c.settings.Gravity * dt
	c.position[1] += c.verticalVelocity * dt

	if c.position[1] <= c.settings.GroundHeight {
		c.position[1] = c.settings.GroundHeight
		c.verticalVelocity = 0
		if c.airborne {
			c.airborne = false
			c.log.Debug("camera landed", zap.Float32("y", c.position[1]))
		}
	}
}

// Update advances per-frame physics. Call it after all input for the frame.
func (c *FlyCamera) Update(dt float32) {
	c.ApplyGravity(dt)
}

// Look rotates the camera by raw pointer deltas. Positive dx turns right,
// positive dy looks up.
func (c *FlyCamera) Look(dx, dy float32, constrainPitch bool) {
	c.yaw += dx * c.settings.MouseSensitivity
	c.pitch += dy * c.settings.MouseSensitivity

	if constrainPitch {
		c.pitch = c.settings.clampPitch(c.pitch)
	}
	c.updateVectors()
}

// AdjustZoom narrows the field of view on positive scroll.
func (c *FlyCamera) AdjustZoom(scrollDelta float32) {
	c.zoom = c.settings.clampZoom(c.zoom - scrollDelta)
}

// SetPosition teleports the camera without touching orientation or physics.
func (c *FlyCamera) SetPosition(p mgl32.Vec3) {
	c.position = p
}

// SetOrientation sets yaw and pitch in degrees.
func (c *FlyCamera) SetOrientation(yaw, pitch float32) {
	c.yaw = yaw
	c.pitch = c.settings.clampPitch(pitch)
	c.updateVectors()
}

// ApplySettings swaps the tunables and re-clamps state into the new bounds.
func (c *FlyCamera) ApplySettings(s Settings) {
	c.settings = s
	c.zoom = s.clampZoom(c.zoom)
	c.pitch = s.clampPitch(c.pitch)
	c.updateVectors()
}

// ViewMatrix returns the look-at transform for the current pose.
func (c *FlyCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

// Projection returns a perspective transform using zoom as the vertical FOV.
func (c *FlyCamera) Projection(aspect, near, far float32) mgl32.Mat4 {
	return perspective(c.zoom, aspect, near, far)
}

func (c *FlyCamera) updateVectors() {
	c.front, c.right, c.up = basis(c.yaw, c.pitch, c.worldUp, c.right)
}

// Position returns the eye position.
func (c *FlyCamera) Position() mgl32.Vec3 { return c.position }

// Front returns the unit view direction.
func (c *FlyCamera) Front() mgl32.Vec3 { return c.front }

// Right returns the unit right axis.
func (c *FlyCamera) Right() mgl32.Vec3 { return c.right }

// Up returns the unit camera up axis.
func (c *FlyCamera) Up() mgl32.Vec3 { return c.up }

// WorldUp returns the fixed reference up vector.
func (c *FlyCamera) WorldUp() mgl32.Vec3 { return c.worldUp }

// Yaw returns the horizontal angle in degrees.
func (c *FlyCamera) Yaw() float32 { return c.yaw }

// Pitch returns the vertical angle in degrees.
func (c *FlyCamera) Pitch() float32 { return c.pitch }

// Zoom returns the field of view in degrees.
func (c *FlyCamera) Zoom() float32 { return c.zoom }

// VerticalVelocity returns the current vertical speed.
func (c *FlyCamera) VerticalVelocity() float32 { return c.verticalVelocity }

// Airborne reports whether a jump is in progress.
func (c *FlyCamera) Airborne() bool { return c.airborne }

// State returns the physics state.
func (c *FlyCamera) State() PhysicsState {
	if c.airborne {
		return Airborne
	}
	return Grounded
}

// Settings returns the active tunables.
func (c *FlyCamera) Settings() Settings { return c.settings }
