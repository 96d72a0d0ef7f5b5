// Package config handles engine configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/engine3d/internal/engine/camera"
	"github.com/Faultbox/engine3d/internal/engine/framebuffer"
	"github.com/Faultbox/engine3d/internal/engine/lighting"
	"github.com/Faultbox/engine3d/internal/engine/skybox"
	"github.com/Faultbox/engine3d/internal/logger"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Camera modes.
const (
	ModeFly   = "fly"
	ModeOrbit = "orbit"
)

// Config holds all engine settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Lighting lighting.Set   `yaml:"lighting"`
	Sky      skybox.Colors  `yaml:"sky"`
	Post     PostConfig     `yaml:"post"`
	Debug    DebugConfig    `yaml:"debug"`
	Logging  LoggingConfig  `yaml:"logging"`
	Watch    WatchConfig    `yaml:"watch"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	FPSLimit   int     `yaml:"fps_limit"`
	Near       float32 `yaml:"near"`
	Far        float32 `yaml:"far"`
	Shininess  float32 `yaml:"shininess"`

	// ShadowResolution is the sun shadow map size in texels; 0 disables shadows.
	ShadowResolution int `yaml:"shadow_resolution"`
}

// CameraConfig holds the camera tuning and its starting pose.
type CameraConfig struct {
	camera.Settings `yaml:",inline"`

	Mode          string     `yaml:"mode"` // "fly" or "orbit"
	StartPosition mgl32.Vec3 `yaml:"start_position"`
	StartYaw      float32    `yaml:"start_yaw"`
	StartPitch    float32    `yaml:"start_pitch"`
}

// PostConfig selects the full-screen effect.
type PostConfig struct {
	Effect string `yaml:"effect"`
}

// DebugConfig holds developer tooling settings.
type DebugConfig struct {
	ShowFPS       bool   `yaml:"show_fps"`
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level    string         `yaml:"level"`
	LogFile  string         `yaml:"log_file"`
	Rotation RotationConfig `yaml:"rotation"`
}

// RotationConfig controls log file rotation.
type RotationConfig struct {
	MaxSizeMB  int  `yaml:"max_size_mb"`
	MaxBackups int  `yaml:"max_backups"`
	MaxAgeDays int  `yaml:"max_age_days"`
	Compress   bool `yaml:"compress"`
}

// WatchConfig controls config hot reload.
type WatchConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Debounce time.Duration `yaml:"debounce"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	opts := camera.DefaultOptions()
	rotation := logger.DefaultFileConfig("")

	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
			Near:       0.1,
			Far:        100,
			Shininess:  32,

			ShadowResolution: 2048,
		},
		Camera: CameraConfig{
			Settings:      camera.DefaultSettings(),
			Mode:          ModeFly,
			StartPosition: opts.Position,
			StartYaw:      opts.Yaw,
			StartPitch:    opts.Pitch,
		},
		Lighting: lighting.DefaultSet(),
		Sky:      skybox.DefaultColors(),
		Post: PostConfig{
			Effect: framebuffer.EffectNone.String(),
		},
		Debug: DebugConfig{
			ShowFPS:       false,
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
			Rotation: RotationConfig{
				MaxSizeMB:  rotation.MaxSizeMB,
				MaxBackups: rotation.MaxBackups,
				MaxAgeDays: rotation.MaxAgeDays,
				Compress:   rotation.Compress,
			},
		},
		Watch: WatchConfig{
			Enabled:  true,
			Debounce: 150 * time.Millisecond,
		},
	}
}

// Validate checks ranges across every section.
func (c *Config) Validate() error {
	g := c.Graphics
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, g.Width, g.Height)
	}
	if g.FPSLimit < 0 {
		return fmt.Errorf("%w: negative fps limit %d", ErrInvalid, g.FPSLimit)
	}
	if g.Near <= 0 || g.Far <= g.Near {
		return fmt.Errorf("%w: clip planes near=%g far=%g", ErrInvalid, g.Near, g.Far)
	}
	if g.Shininess <= 0 {
		return fmt.Errorf("%w: shininess must be positive", ErrInvalid)
	}
	if g.ShadowResolution < 0 || g.ShadowResolution > 8192 {
		return fmt.Errorf("%w: shadow resolution %d out of range [0, 8192]", ErrInvalid, g.ShadowResolution)
	}

	if err := c.Camera.Settings.Validate(); err != nil {
		return fmt.Errorf("%w: camera: %w", ErrInvalid, err)
	}
	if c.Camera.Mode != ModeFly && c.Camera.Mode != ModeOrbit {
		return fmt.Errorf("%w: unknown camera mode %q", ErrInvalid, c.Camera.Mode)
	}

	if err := c.Lighting.Validate(); err != nil {
		return fmt.Errorf("%w: lighting: %w", ErrInvalid, err)
	}

	if _, err := framebuffer.ParseEffect(c.Post.Effect); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalid, c.Logging.Level)
	}

	if c.Watch.Debounce < 0 {
		return fmt.Errorf("%w: negative watch debounce", ErrInvalid)
	}
	return nil
}

// CameraOptions returns the starting pose for a fly camera.
func (c *Config) CameraOptions() camera.Options {
	opts := camera.DefaultOptions()
	opts.Position = c.Camera.StartPosition
	opts.Yaw = c.Camera.StartYaw
	opts.Pitch = c.Camera.StartPitch
	return opts
}

// Effect returns the configured post effect, or none if the name is unknown.
func (c *Config) Effect() framebuffer.Effect {
	e, err := framebuffer.ParseEffect(c.Post.Effect)
	if err != nil {
		return framebuffer.EffectNone
	}
	return e
}

// LogFileConfig returns the rotation settings for the logger.
func (c *Config) LogFileConfig() logger.FileConfig {
	r := c.Logging.Rotation
	return logger.FileConfig{
		Path:       c.Logging.LogFile,
		MaxSizeMB:  r.MaxSizeMB,
		MaxBackups: r.MaxBackups,
		MaxAgeDays: r.MaxAgeDays,
		Compress:   r.Compress,
	}
}
