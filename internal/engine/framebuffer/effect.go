package framebuffer

import (
	"fmt"
	"strings"
)

// Effect is a full-screen post-process applied to the offscreen frame.
type Effect int

const (
	EffectNone Effect = iota
	EffectInvert
	EffectGrayscale
	EffectSharpen
	EffectBlur
	EffectEdgeDetect

	effectCount
)

var effectNames = [...]string{
	EffectNone:       "none",
	EffectInvert:     "invert",
	EffectGrayscale:  "grayscale",
	EffectSharpen:    "sharpen",
	EffectBlur:       "blur",
	EffectEdgeDetect: "edge",
}

// String returns the config name of the effect.
func (e Effect) String() string {
	if e < 0 || e >= effectCount {
		return fmt.Sprintf("effect(%d)", int(e))
	}
	return effectNames[e]
}

// ParseEffect maps a config name to an effect. The empty string is EffectNone.
func ParseEffect(name string) (Effect, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return EffectNone, nil
	}
	for i, n := range effectNames {
		if n == name {
			return Effect(i), nil
		}
	}
	return EffectNone, fmt.Errorf("unknown post effect %q", name)
}

// Next cycles to the following effect, wrapping around.
func (e Effect) Next() Effect {
	return (e + 1) % effectCount
}

// Shader mode values, matching post.frag.
const (
	modeNone      = 0
	modeInvert    = 1
	modeGrayscale = 2
	modeKernel    = 3
)

// mode returns the shader branch for the effect.
func (e Effect) mode() int32 {
	switch e {
	case EffectInvert:
		return modeInvert
	case EffectGrayscale:
		return modeGrayscale
	case EffectSharpen, EffectBlur, EffectEdgeDetect:
		return modeKernel
	default:
		return modeNone
	}
}

// Kernel returns the 3x3 convolution weights for kernel effects, row-major
// from the top-left texel. Non-kernel effects return the identity kernel.
func Kernel(e Effect) [9]float32 {
	switch e {
	case EffectSharpen:
		return [9]float32{
			-1, -1, -1,
			-1, 9, -1,
			-1, -1, -1,
		}
	case EffectBlur:
		return [9]float32{
			1.0 / 16, 2.0 / 16, 1.0 / 16,
			2.0 / 16, 4.0 / 16, 2.0 / 16,
			1.0 / 16, 2.0 / 16, 1.0 / 16,
		}
	case EffectEdgeDetect:
		return [9]float32{
			1, 1, 1,
			1, -8, 1,
			1, 1, 1,
		}
	default:
		return [9]float32{
			0, 0, 0,
			0, 1, 0,
			0, 0, 0,
		}
	}
}
