package app

import (
	"time"

	"github.com/Faultbox/engine3d/internal/engine/camera"
)

// FrameInput is the camera input gathered over one frame.
type FrameInput struct {
	Directions []camera.Direction
	LookX      float32 // positive turns right
	LookY      float32 // positive looks up
	Scroll     float32
}

// Step applies one frame of input to a fly camera and then advances its
// physics, so a jump pressed this frame already moves the eye.
func Step(cam *camera.FlyCamera, in FrameInput, dt float32) {
	for _, dir := range in.Directions {
		cam.Move(dir, dt)
	}
	if in.LookX != 0 || in.LookY != 0 {
		cam.Look(in.LookX, in.LookY, true)
	}
	if in.Scroll != 0 {
		cam.AdjustZoom(in.Scroll)
	}
	cam.Update(dt)
}

// FrameClock measures the time between frames.
type FrameClock struct {
	now      func() time.Time
	maxDelta float32

	last    time.Time
	started bool

	frames   int
	fpsStart time.Time
	fps      float64
}

// NewFrameClock creates a clock that caps dt at maxDelta seconds
// (0 disables the cap).
func NewFrameClock(maxDelta float32) *FrameClock {
	return &FrameClock{now: time.Now, maxDelta: maxDelta}
}

// Tick marks the start of a frame and returns the elapsed seconds since the
// previous one. The first tick returns 0. fpsUpdated is true once per second
// when FPS has a fresh value.
func (c *FrameClock) Tick() (dt float32, fpsUpdated bool) {
	now := c.now()
	if !c.started {
		c.started = true
		c.last = now
		c.fpsStart = now
		return 0, false
	}

	dt = float32(now.Sub(c.last).Seconds())
	c.last = now
	if dt < 0 {
		dt = 0
	}
	if c.maxDelta > 0 && dt > c.maxDelta {
		dt = c.maxDelta
	}

	c.frames++
	if elapsed := now.Sub(c.fpsStart); elapsed >= time.Second {
		c.fps = float64(c.frames) / elapsed.Seconds()
		c.frames = 0
		c.fpsStart = now
		fpsUpdated = true
	}
	return dt, fpsUpdated
}

// FPS returns the frame rate measured over the last full second.
func (c *FrameClock) FPS() float64 {
	return c.fps
}

// SetMaxDelta changes the dt cap.
func (c *FrameClock) SetMaxDelta(maxDelta float32) {
	c.maxDelta = maxDelta
}

// Remaining returns how long to wait before the next frame to stay under
// limit frames per second. It is 0 when limit is not positive.
func (c *FrameClock) Remaining(limit int) time.Duration {
	if limit <= 0 || !c.started {
		return 0
	}
	budget := time.Second / time.Duration(limit)
	if spent := c.now().Sub(c.last); spent < budget {
		return budget - spent
	}
	return 0
}
