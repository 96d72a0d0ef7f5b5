package app

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/engine3d/internal/config"
	"github.com/Faultbox/engine3d/internal/engine/camera"
	"github.com/Faultbox/engine3d/internal/engine/input"
	"github.com/Faultbox/engine3d/internal/engine/scene"
)

// newHeadlessApp builds an App without a window or renderer.
func newHeadlessApp(mode string) *App {
	cfg := config.Default()
	cfg.Camera.Mode = mode

	a := &App{
		cfg:      cfg,
		log:      zap.NewNop(),
		input:    input.New(),
		bindings: input.DefaultBindings(),
		mouse:    input.NewMouseTracker(),
		mode:     mode,
		scene:    scene.New(),
		lights:   cfg.Lighting,
		clock:    NewFrameClock(cfg.Camera.MaxDeltaTime),
		fly:      camera.NewFly(cfg.CameraOptions(), cfg.Camera.Settings),
		orbit:    camera.NewOrbit(mgl32.Vec3{}, cfg.Camera.Settings),
	}
	a.orbit.Frame(a.scene.Chunk.Bounds())
	return a
}

func TestUpdateSelectsBlockUnderCrosshair(t *testing.T) {
	a := newHeadlessApp(config.ModeFly)
	a.fly.SetPosition(mgl32.Vec3{8.5, 3, 8.5})
	a.fly.SetOrientation(90, -89)

	a.update(FrameInput{}, 0)

	if !a.scene.HasSelected {
		t.Fatal("expected a block to be selected")
	}
	if a.scene.Selected != [3]int{8, 0, 8} {
		t.Errorf("selected %v, want [8 0 8]", a.scene.Selected)
	}
}

func TestUpdateNothingSelectedWhenLookingUp(t *testing.T) {
	a := newHeadlessApp(config.ModeFly)
	a.fly.SetOrientation(90, 60)

	a.update(FrameInput{}, 1.0/60)

	if a.scene.HasSelected {
		t.Errorf("looking at the sky should not select %v", a.scene.Selected)
	}
}

func TestUpdateSpotFollowsCamera(t *testing.T) {
	a := newHeadlessApp(config.ModeFly)

	a.update(FrameInput{Directions: []camera.Direction{camera.Right}}, 0.1)

	if a.lights.Spot.Position != a.fly.Position() {
		t.Errorf("spot at %v, camera at %v", a.lights.Spot.Position, a.fly.Position())
	}
	if a.lights.Spot.Direction != a.fly.Front() {
		t.Errorf("spot points %v, camera faces %v", a.lights.Spot.Direction, a.fly.Front())
	}
}

func TestUpdateOrbitMode(t *testing.T) {
	a := newHeadlessApp(config.ModeOrbit)
	a.scene.Select(1, 0, 1, true)
	a.fly.Jump()
	startDistance := a.orbit.Distance
	startFly := a.fly.Position()

	a.update(FrameInput{Directions: []camera.Direction{camera.Forward}, Scroll: 1}, 0.1)

	if a.scene.HasSelected {
		t.Error("orbit mode without a cursor ray should clear the selection")
	}
	if a.orbit.Distance >= startDistance {
		t.Errorf("scrolling should dolly in: %f -> %f", startDistance, a.orbit.Distance)
	}
	if a.fly.Position().Y() <= startFly.Y() {
		t.Error("the fly camera keeps its jump while inactive")
	}
	if a.fly.Position().Z() != startFly.Z() {
		t.Error("movement keys should not drive the inactive fly camera")
	}
	if a.lights.Spot.Position != a.orbit.Position() {
		t.Error("spot should follow the active orbit camera")
	}
}
