package camera

import (
	"errors"
	"fmt"
)

// ErrInvalidSettings is wrapped by every Settings validation failure.
var ErrInvalidSettings = errors.New("invalid camera settings")

// Settings holds the tunable constants shared by all cameras.
// They are configuration, not per-instance state.
type Settings struct {
	MovementSpeed    float32 `yaml:"movement_speed"`
	MouseSensitivity float32 `yaml:"mouse_sensitivity"`
	MinZoom          float32 `yaml:"min_zoom"`
	MaxZoom          float32 `yaml:"max_zoom"`
	MaxPitch         float32 `yaml:"max_pitch"`

	// Vertical physics
	Gravity      float32 `yaml:"gravity"`
	JumpSpeed    float32 `yaml:"jump_speed"`
	JumpHeight   float32 `yaml:"jump_height"`
	GroundHeight float32 `yaml:"ground_height"`

	// MaxDeltaTime caps a single physics step (0 disables the cap).
	MaxDeltaTime float32 `yaml:"max_delta_time"`
}

// DefaultSettings returns the stock tuning of the demo.
func DefaultSettings() Settings {
	return Settings{
		MovementSpeed:    5.0,
		MouseSensitivity: 0.08,
		MinZoom:          1.0,
		MaxZoom:          70.0,
		MaxPitch:         89.0,
		Gravity:          -20.0,
		JumpSpeed:        1.0,
		JumpHeight:       7.0,
		GroundHeight:     1.0,
		MaxDeltaTime:     0.25,
	}
}

// LaunchVelocity is the vertical velocity set by a jump.
func (s Settings) LaunchVelocity() float32 {
	return s.JumpSpeed * s.JumpHeight
}

// Validate reports the first out-of-range value.
func (s Settings) Validate() error {
	switch {
	case s.MovementSpeed <= 0:
		return fmt.Errorf("%w: movement_speed must be positive, got %g", ErrInvalidSettings, s.MovementSpeed)
	case s.MouseSensitivity <= 0:
		return fmt.Errorf("%w: mouse_sensitivity must be positive, got %g", ErrInvalidSettings, s.MouseSensitivity)
	case s.MinZoom <= 0:
		return fmt.Errorf("%w: min_zoom must be positive, got %g", ErrInvalidSettings, s.MinZoom)
	case s.MaxZoom < s.MinZoom:
		return fmt.Errorf("%w: max_zoom %g is below min_zoom %g", ErrInvalidSettings, s.MaxZoom, s.MinZoom)
	case s.MaxZoom >= 180:
		return fmt.Errorf("%w: max_zoom must be below 180, got %g", ErrInvalidSettings, s.MaxZoom)
	case s.MaxPitch <= 0 || s.MaxPitch >= 90:
		// 90 itself makes front parallel to world-up
		return fmt.Errorf("%w: max_pitch must be in (0, 90), got %g", ErrInvalidSettings, s.MaxPitch)
	case s.MaxDeltaTime < 0:
		return fmt.Errorf("%w: max_delta_time must not be negative, got %g", ErrInvalidSettings, s.MaxDeltaTime)
	}
	return nil
}

func (s Settings) clampPitch(pitch float32) float32 {
	return clamp(pitch, -s.MaxPitch, s.MaxPitch)
}

func (s Settings) clampZoom(zoom float32) float32 {
	return clamp(zoom, s.MinZoom, s.MaxZoom)
}

func (s Settings) clampDelta(dt float32) float32 {
	if dt < 0 {
		return 0
	}
	if s.MaxDeltaTime > 0 && dt > s.MaxDeltaTime {
		return s.MaxDeltaTime
	}
	return dt
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
