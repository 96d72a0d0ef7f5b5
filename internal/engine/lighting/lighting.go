// Package lighting describes the scene lights and uploads them as shader uniforms.
package lighting

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxPointLights is the size of the point light array in the lit shader.
const MaxPointLights = 4

// ErrInvalidLight is wrapped by every light validation failure.
var ErrInvalidLight = errors.New("invalid light")

// Attenuation holds the distance falloff terms of a positional light.
type Attenuation struct {
	Constant  float32 `yaml:"constant"`
	Linear    float32 `yaml:"linear"`
	Quadratic float32 `yaml:"quadratic"`
}

// DefaultAttenuation covers roughly 50 units.
func DefaultAttenuation() Attenuation {
	return Attenuation{Constant: 1.0, Linear: 0.09, Quadratic: 0.032}
}

// Factor returns the light multiplier at the given distance.
func (a Attenuation) Factor(distance float32) float32 {
	denom := a.Constant + a.Linear*distance + a.Quadratic*distance*distance
	if denom <= 0 {
		return 1
	}
	return 1 / denom
}

// DirectionalLight is an infinitely distant light such as the sun.
type DirectionalLight struct {
	Direction mgl32.Vec3 `yaml:"direction"` // direction the light travels
	Ambient   mgl32.Vec3 `yaml:"ambient"`
	Diffuse   mgl32.Vec3 `yaml:"diffuse"`
	Specular  mgl32.Vec3 `yaml:"specular"`
}

// PointLight radiates in every direction from a position.
type PointLight struct {
	Position    mgl32.Vec3 `yaml:"position"`
	Ambient     mgl32.Vec3 `yaml:"ambient"`
	Diffuse     mgl32.Vec3 `yaml:"diffuse"`
	Specular    mgl32.Vec3 `yaml:"specular"`
	Attenuation `yaml:",inline"`
}

// SpotLight is a cone of light. Cutoffs are half-angles in degrees.
type SpotLight struct {
	Position    mgl32.Vec3 `yaml:"position"`
	Direction   mgl32.Vec3 `yaml:"direction"`
	Ambient     mgl32.Vec3 `yaml:"ambient"`
	Diffuse     mgl32.Vec3 `yaml:"diffuse"`
	Specular    mgl32.Vec3 `yaml:"specular"`
	CutOff      float32    `yaml:"cut_off"`
	OuterCutOff float32    `yaml:"outer_cut_off"`
	Attenuation `yaml:",inline"`
}

// Intensity returns the cone falloff in [0, 1] for a point in world space.
// Points inside CutOff get 1, points beyond OuterCutOff get 0.
func (s SpotLight) Intensity(point mgl32.Vec3) float32 {
	toLight := s.Position.Sub(point)
	if toLight.Len() == 0 || s.Direction.Len() == 0 {
		return 1
	}
	theta := toLight.Normalize().Dot(s.Direction.Normalize().Mul(-1))

	inner, outer := cosDeg(s.CutOff), cosDeg(s.OuterCutOff)
	if inner == outer {
		if theta >= inner {
			return 1
		}
		return 0
	}
	return mgl32.Clamp((theta-outer)/(inner-outer), 0, 1)
}

// Follow places the spot light at an eye looking along front.
func (s *SpotLight) Follow(position, front mgl32.Vec3) {
	s.Position = position
	s.Direction = front
}

// Validate checks the cone angles.
func (s SpotLight) Validate() error {
	if s.CutOff <= 0 || s.CutOff >= 90 {
		return fmt.Errorf("%w: spot cut_off must be in (0, 90), got %g", ErrInvalidLight, s.CutOff)
	}
	if s.OuterCutOff < s.CutOff || s.OuterCutOff >= 90 {
		return fmt.Errorf("%w: spot outer_cut_off must be in [cut_off, 90), got %g", ErrInvalidLight, s.OuterCutOff)
	}
	return nil
}

// SunDirection converts azimuth (around +Y) and elevation above the horizon,
// both in degrees, into the direction sunlight travels.
func SunDirection(azimuth, elevation float32) mgl32.Vec3 {
	az := float64(mgl32.DegToRad(azimuth))
	el := float64(mgl32.DegToRad(elevation))

	toSun := mgl32.Vec3{
		float32(math.Cos(el) * math.Sin(az)),
		float32(math.Sin(el)),
		float32(math.Cos(el) * math.Cos(az)),
	}
	return toSun.Mul(-1)
}

func cosDeg(deg float32) float32 {
	return float32(math.Cos(float64(mgl32.DegToRad(deg))))
}
