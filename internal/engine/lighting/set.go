package lighting

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Set is every light in the scene for one frame.
type Set struct {
	Directional DirectionalLight `yaml:"directional"`
	Points      []PointLight     `yaml:"points"`
	Spot        SpotLight        `yaml:"spot"`
	SpotEnabled bool             `yaml:"spot_enabled"`
}

// DefaultSet returns the demo lighting: a low sun, four colored lamps around
// the chunk and a flashlight.
func DefaultSet() Set {
	lamp := func(x, y, z float32, color mgl32.Vec3) PointLight {
		return PointLight{
			Position:    mgl32.Vec3{x, y, z},
			Ambient:     color.Mul(0.05),
			Diffuse:     color.Mul(0.8),
			Specular:    mgl32.Vec3{1, 1, 1},
			Attenuation: DefaultAttenuation(),
		}
	}

	return Set{
		Directional: DirectionalLight{
			Direction: SunDirection(210, 55),
			Ambient:   mgl32.Vec3{0.05, 0.05, 0.05},
			Diffuse:   mgl32.Vec3{0.4, 0.4, 0.4},
			Specular:  mgl32.Vec3{0.5, 0.5, 0.5},
		},
		Points: []PointLight{
			lamp(2, 2.5, 2, mgl32.Vec3{1, 0.6, 0.2}),
			lamp(14, 2.5, 2, mgl32.Vec3{0.2, 0.6, 1}),
			lamp(2, 2.5, 14, mgl32.Vec3{0.3, 1, 0.3}),
			lamp(14, 2.5, 14, mgl32.Vec3{1, 1, 1}),
		},
		Spot: SpotLight{
			Diffuse:     mgl32.Vec3{1, 1, 1},
			Specular:    mgl32.Vec3{1, 1, 1},
			CutOff:      12.5,
			OuterCutOff: 15.0,
			Attenuation: DefaultAttenuation(),
		},
		SpotEnabled: true,
	}
}

// ActivePoints returns at most MaxPointLights point lights.
func (s Set) ActivePoints() []PointLight {
	if len(s.Points) > MaxPointLights {
		return s.Points[:MaxPointLights]
	}
	return s.Points
}

// Validate checks every light in the set.
func (s Set) Validate() error {
	if s.Directional.Direction.Len() == 0 {
		return fmt.Errorf("%w: directional light has no direction", ErrInvalidLight)
	}
	if err := s.Spot.Validate(); err != nil {
		return err
	}
	return nil
}
