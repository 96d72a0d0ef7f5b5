// Package app wires the window, input, camera, scene and renderer into the
// frame loop.
package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/engine3d/internal/config"
	"github.com/Faultbox/engine3d/internal/engine/camera"
	"github.com/Faultbox/engine3d/internal/engine/debug"
	"github.com/Faultbox/engine3d/internal/engine/input"
	"github.com/Faultbox/engine3d/internal/engine/lighting"
	"github.com/Faultbox/engine3d/internal/engine/picking"
	"github.com/Faultbox/engine3d/internal/engine/renderer"
	"github.com/Faultbox/engine3d/internal/engine/scene"
	"github.com/Faultbox/engine3d/internal/engine/window"
	"github.com/Faultbox/engine3d/internal/logger"
)

const (
	title = "engine3d"

	// Blocks further than this are not selected.
	pickDistance = 8
)

// viewer is a camera the spot light can follow.
type viewer interface {
	camera.View
	Front() mgl32.Vec3
}

// App owns every subsystem of the running demo.
type App struct {
	cfg        *config.Config
	configPath string
	log        *zap.Logger

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	bindings input.Bindings
	mouse    *input.MouseTracker

	fly   *camera.FlyCamera
	orbit *camera.OrbitCamera
	mode  string

	scene  *scene.Scene
	lights lighting.Set

	watcher *config.Watcher
	shots   *debug.Screenshots
	clock   *FrameClock

	// Last cursor position in window coordinates
	cursorX, cursorY float32

	running bool
}

// New creates the window and renderer and sets up the scene. configPath is
// the file watched for hot reload; it may be empty.
func New(cfg *config.Config, configPath string) (*App, error) {
	a := &App{
		cfg:        cfg,
		configPath: configPath,
		log:        logger.Named("app"),
		input:      input.New(),
		bindings:   input.DefaultBindings(),
		mouse:      input.NewMouseTracker(),
		mode:       cfg.Camera.Mode,
		scene:      scene.New(),
		lights:     cfg.Lighting,
		shots:      debug.NewScreenshots(cfg.Debug.ScreenshotDir, title),
		clock:      NewFrameClock(cfg.Camera.MaxDeltaTime),
	}

	a.log.Info("initializing",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("camera", cfg.Camera.Mode),
	)

	var err error
	a.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	}, logger.Named("window"))
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer needs the GL context the window just created
	dw, dh := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:     dw,
		Height:    dh,
		Near:      cfg.Graphics.Near,
		Far:       cfg.Graphics.Far,
		Shininess: cfg.Graphics.Shininess,
		Sky:       cfg.Sky,
		Effect:    cfg.Effect(),

		ShadowResolution: cfg.Graphics.ShadowResolution,
	}, logger.Named("renderer"))
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.fly = camera.NewFly(a.cameraOptions(), cfg.Camera.Settings)
	a.orbit = camera.NewOrbit(mgl32.Vec3{}, cfg.Camera.Settings)
	a.orbit.Frame(a.scene.Chunk.Bounds())

	if cfg.Watch.Enabled && configPath != "" {
		a.watcher, err = config.Watch(configPath, cfg.Watch.Debounce, logger.Named("config"))
		if err != nil {
			// The demo still runs without hot reload
			a.log.Warn("config hot reload disabled", zap.Error(err))
		}
	}

	a.window.SetRelativeMouse(a.mode == config.ModeFly)

	a.log.Info("initialized")
	return a, nil
}

// Run starts the frame loop and returns when the user quits.
func (a *App) Run() error {
	a.running = true
	a.log.Info("starting frame loop")

	for a.running {
		// 1. Timing
		dt, fpsUpdated := a.clock.Tick()
		if fpsUpdated {
			a.reportFPS()
		}

		// 2. Config changes from disk
		a.pollConfig()

		// 3. Input
		if a.input.Update() {
			a.running = false
			break
		}
		in := a.handleEvents()

		// 4. Camera and scene
		a.update(in, dt)

		// 5. Render and present
		a.renderer.Render(renderer.Frame{
			Camera: a.active(),
			Lights: a.lights,
			Draws:  a.scene.DrawList(),
			Bounds: a.scene.Bounds(),
		})
		if a.input.Pressed(sdl.SCANCODE_F12) {
			a.screenshot()
		}
		a.window.SwapBuffers()

		if wait := a.clock.Remaining(a.cfg.Graphics.FPSLimit); wait > 0 {
			time.Sleep(wait)
		}
	}

	return nil
}

// Close cleans up every subsystem.
func (a *App) Close() {
	a.log.Info("closing")

	if a.watcher != nil {
		a.watcher.Close()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

func (a *App) active() viewer {
	if a.mode == config.ModeOrbit {
		return a.orbit
	}
	return a.fly
}

// handleEvents reacts to one-shot keys and gathers look and scroll input.
func (a *App) handleEvents() FrameInput {
	var in FrameInput

	for _, event := range a.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			a.renderer.Resize(a.window.DrawableSize())

		case input.EventFocusLost:
			a.mouse.Reset()

		case input.EventMouseMove:
			a.cursorX, a.cursorY = float32(event.MouseX), float32(event.MouseY)
			dx, dy := a.mouse.Relative(float32(event.RelX), float32(event.RelY))
			in.LookX += dx
			in.LookY += dy

		case input.EventMouseWheel:
			in.Scroll += event.Wheel

		case input.EventKeyDown:
			if event.Repeat {
				continue
			}
			switch event.Key {
			case sdl.SCANCODE_ESCAPE:
				a.running = false
			case sdl.SCANCODE_TAB:
				a.toggleMode()
			case sdl.SCANCODE_P:
				next := a.renderer.Effect().Next()
				a.renderer.SetEffect(next)
				a.log.Info("post effect", zap.Stringer("effect", next))
			case sdl.SCANCODE_R:
				a.fly.Reset(a.cameraOptions())
				a.mouse.Reset()
				a.log.Info("camera reset")
			}
		}
	}

	in.Directions = a.bindings.Directions(a.input.Keyboard)
	return in
}

func (a *App) cameraOptions() camera.Options {
	opts := a.cfg.CameraOptions()
	opts.Logger = logger.Named("camera")
	return opts
}

func (a *App) toggleMode() {
	if a.mode == config.ModeFly {
		a.mode = config.ModeOrbit
	} else {
		a.mode = config.ModeFly
	}
	a.mouse.Reset()
	a.window.SetRelativeMouse(a.mode == config.ModeFly)
	a.log.Info("camera mode", zap.String("mode", a.mode))
}

// update advances the cameras, scene and flashlight by one frame.
func (a *App) update(in FrameInput, dt float32) {
	if a.mode == config.ModeFly {
		Step(a.fly, in, dt)

		ray := picking.CenterRay(a.fly.Position(), a.fly.Front())
		x, y, z, ok := a.scene.Chunk.Pick(ray, pickDistance)
		a.scene.Select(x, y, z, ok)
	} else {
		a.orbit.Look(in.LookX, in.LookY)
		a.orbit.AdjustDistance(in.Scroll)
		// The fly camera keeps falling while it is not the active view
		a.fly.Update(dt)

		if ray, ok := a.cursorRay(); ok {
			x, y, z, hit := a.scene.Chunk.Pick(ray, a.orbit.Distance*2)
			a.scene.Select(x, y, z, hit)
		} else {
			a.scene.Select(0, 0, 0, false)
		}
	}

	a.scene.Update(dt)

	if a.lights.SpotEnabled {
		v := a.active()
		a.lights.Spot.Follow(v.Position(), v.Front())
	}
}

// cursorRay casts a ray from the orbit camera through the mouse cursor.
func (a *App) cursorRay() (picking.Ray, bool) {
	if a.renderer == nil || a.window == nil {
		return picking.Ray{}, false
	}
	w, h := a.window.GetSize()
	if w <= 0 || h <= 0 {
		return picking.Ray{}, false
	}
	inv := a.renderer.ViewProjection(a.orbit).Inv()
	return picking.ScreenToRay(a.cursorX, a.cursorY, float32(w), float32(h), inv), true
}

// pollConfig applies a reloaded config, if one is waiting.
func (a *App) pollConfig() {
	if a.watcher == nil {
		return
	}

	select {
	case cfg, ok := <-a.watcher.Updates:
		if ok {
			a.applyConfig(cfg)
		}
	case err, ok := <-a.watcher.Errors:
		if ok && !errors.Is(err, config.ErrInvalid) {
			a.log.Warn("config watcher", zap.Error(err))
		}
	default:
	}
}

func (a *App) applyConfig(cfg *config.Config) {
	a.cfg = cfg

	a.fly.ApplySettings(cfg.Camera.Settings)
	a.orbit.ApplySettings(cfg.Camera.Settings)
	a.clock.SetMaxDelta(cfg.Camera.MaxDeltaTime)

	// The flashlight pose is per-frame state, keep it
	spot := a.lights.Spot
	a.lights = cfg.Lighting
	a.lights.Spot.Position, a.lights.Spot.Direction = spot.Position, spot.Direction

	a.renderer.SetEffect(cfg.Effect())
	a.renderer.SetSky(cfg.Sky)
	a.renderer.SetClipPlanes(cfg.Graphics.Near, cfg.Graphics.Far)
	logger.SetLevel(cfg.Logging.Level)

	a.log.Info("config applied",
		zap.Float32("speed", cfg.Camera.MovementSpeed),
		zap.Float32("gravity", cfg.Camera.Gravity),
		zap.Stringer("effect", cfg.Effect()),
	)
}

func (a *App) screenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.shots.Capture(pixels, w, h)
	if err != nil {
		a.log.Error("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

func (a *App) reportFPS() {
	fps := a.clock.FPS()
	a.log.Debug("fps", zap.Float64("fps", fps))
	if a.cfg.Debug.ShowFPS {
		a.window.SetTitle(fmt.Sprintf("%s - %.0f FPS", title, fps))
	}
}
