package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/engine3d/internal/engine/camera"
	"github.com/Faultbox/engine3d/internal/engine/framebuffer"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test graphics defaults
	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	// Test camera defaults
	if cfg.Camera.Settings != camera.DefaultSettings() {
		t.Errorf("expected default camera settings, got %+v", cfg.Camera.Settings)
	}
	if cfg.Camera.Mode != ModeFly {
		t.Errorf("expected fly camera, got %s", cfg.Camera.Mode)
	}
	if cfg.Camera.StartPosition != (mgl32.Vec3{0, 1, 0}) {
		t.Errorf("expected start position (0,1,0), got %v", cfg.Camera.StartPosition)
	}
	if cfg.Camera.StartYaw != 90 {
		t.Errorf("expected start yaw 90, got %f", cfg.Camera.StartYaw)
	}

	if cfg.Effect() != framebuffer.EffectNone {
		t.Errorf("expected no post effect, got %s", cfg.Effect())
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  fps_limit: 144
  far: 250

camera:
  mode: orbit
  movement_speed: 8
  gravity: -9.8
  start_position: [2, 3, 4]
  start_pitch: -10

lighting:
  spot_enabled: false
  directional:
    direction: [0, -1, 0]

post:
  effect: blur

logging:
  level: "debug"
  log_file: "engine.log"
  rotation:
    max_backups: 9

watch:
  debounce: 50ms
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.FPSLimit != 144 {
		t.Errorf("expected fps limit 144, got %d", cfg.Graphics.FPSLimit)
	}
	if cfg.Graphics.Far != 250 {
		t.Errorf("expected far plane 250, got %f", cfg.Graphics.Far)
	}
	if cfg.Graphics.Near != 0.1 {
		t.Errorf("near plane should keep its default, got %f", cfg.Graphics.Near)
	}

	if cfg.Camera.Mode != ModeOrbit {
		t.Errorf("expected orbit camera, got %s", cfg.Camera.Mode)
	}
	if cfg.Camera.MovementSpeed != 8 {
		t.Errorf("expected movement speed 8, got %f", cfg.Camera.MovementSpeed)
	}
	if cfg.Camera.Gravity != -9.8 {
		t.Errorf("expected gravity -9.8, got %f", cfg.Camera.Gravity)
	}
	if cfg.Camera.MouseSensitivity != 0.08 {
		t.Errorf("sensitivity should keep its default, got %f", cfg.Camera.MouseSensitivity)
	}
	opts := cfg.CameraOptions()
	if opts.Position != (mgl32.Vec3{2, 3, 4}) || opts.Pitch != -10 || opts.Yaw != 90 {
		t.Errorf("unexpected camera options %+v", opts)
	}

	if cfg.Lighting.SpotEnabled {
		t.Error("expected spot light to be disabled")
	}
	if cfg.Lighting.Directional.Direction != (mgl32.Vec3{0, -1, 0}) {
		t.Errorf("expected sun straight down, got %v", cfg.Lighting.Directional.Direction)
	}
	if len(cfg.Lighting.Points) != 4 {
		t.Errorf("point lights should keep their defaults, got %d", len(cfg.Lighting.Points))
	}

	if cfg.Effect() != framebuffer.EffectBlur {
		t.Errorf("expected blur effect, got %s", cfg.Effect())
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	fc := cfg.LogFileConfig()
	if fc.Path != "engine.log" || fc.MaxBackups != 9 || fc.MaxSizeMB != 50 {
		t.Errorf("unexpected log file config %+v", fc)
	}

	if cfg.Watch.Debounce != 50*time.Millisecond {
		t.Errorf("expected debounce 50ms, got %v", cfg.Watch.Debounce)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestLoadFileRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("camera:\n  max_pitch: 95\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := LoadFile(configPath)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
	if !errors.Is(err, camera.ErrInvalidSettings) {
		t.Errorf("expected the camera error to be wrapped too, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero width", func(c *Config) { c.Graphics.Width = 0 }},
		{"negative fps limit", func(c *Config) { c.Graphics.FPSLimit = -1 }},
		{"zero near plane", func(c *Config) { c.Graphics.Near = 0 }},
		{"far before near", func(c *Config) { c.Graphics.Far = 0.05 }},
		{"zero shininess", func(c *Config) { c.Graphics.Shininess = 0 }},
		{"huge shadow map", func(c *Config) { c.Graphics.ShadowResolution = 1 << 16 }},
		{"zero speed", func(c *Config) { c.Camera.MovementSpeed = 0 }},
		{"zoom range inverted", func(c *Config) { c.Camera.MaxZoom = 0.5 }},
		{"unknown camera mode", func(c *Config) { c.Camera.Mode = "walk" }},
		{"sun without direction", func(c *Config) { c.Lighting.Directional.Direction = mgl32.Vec3{} }},
		{"spot cones inverted", func(c *Config) { c.Lighting.Spot.OuterCutOff = 5 }},
		{"unknown effect", func(c *Config) { c.Post.Effect = "sepia" }},
		{"unknown log level", func(c *Config) { c.Logging.Level = "verbose" }},
		{"negative debounce", func(c *Config) { c.Watch.Debounce = -time.Second }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Graphics.Width = 1024
	cfg.Camera.Mode = ModeOrbit
	cfg.Post.Effect = framebuffer.EffectSharpen.String()

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, loaded) {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", loaded, cfg)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}

	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	// No config file exists - should return empty
	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile("config.yaml", []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				if !cfg.Debug.ShowFPS {
					t.Error("expected show_fps to be enabled with debug flag")
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "windowed flag",
			setup: func() { *flagWindowed = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() { *flagWindowed = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Graphics.Width)
				}
				if cfg.Graphics.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name:  "effect flag",
			setup: func() { *flagEffect = "edge" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Effect() != framebuffer.EffectEdgeDetect {
					t.Errorf("expected edge detect, got %s", cfg.Effect())
				}
			},
			teardown: func() { *flagEffect = "" },
		},
		{
			name:  "camera flag",
			setup: func() { *flagCamera = ModeOrbit },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Camera.Mode != ModeOrbit {
					t.Errorf("expected orbit camera, got %s", cfg.Camera.Mode)
				}
			},
			teardown: func() { *flagCamera = "" },
		},
		{
			name:  "no-watch flag",
			setup: func() { *flagNoWatch = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Watch.Enabled {
					t.Error("expected hot reload to be disabled")
				}
			},
			teardown: func() { *flagNoWatch = false },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set flag to override config file
	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, path, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if path != configPath {
		t.Errorf("expected path %s, got %s", configPath, path)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}

	// Height should be from file (900) since no flag override
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}
