package framebuffer

import (
	"math"
	"testing"
)

func TestParseEffect(t *testing.T) {
	tests := []struct {
		in      string
		want    Effect
		wantErr bool
	}{
		{"", EffectNone, false},
		{"none", EffectNone, false},
		{"Invert", EffectInvert, false},
		{" grayscale ", EffectGrayscale, false},
		{"sharpen", EffectSharpen, false},
		{"blur", EffectBlur, false},
		{"edge", EffectEdgeDetect, false},
		{"sepia", EffectNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseEffect(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseEffect(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseEffect(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestEffectRoundTripsThroughName(t *testing.T) {
	for e := EffectNone; e < effectCount; e++ {
		got, err := ParseEffect(e.String())
		if err != nil || got != e {
			t.Errorf("ParseEffect(%q) = %v, %v", e.String(), got, err)
		}
	}
}

func TestEffectNextWraps(t *testing.T) {
	e := EffectNone
	for i := 0; i < int(effectCount); i++ {
		e = e.Next()
	}
	if e != EffectNone {
		t.Errorf("cycling through every effect should wrap to none, got %v", e)
	}
	if EffectEdgeDetect.Next() != EffectNone {
		t.Errorf("last effect should wrap to none")
	}
}

func TestKernelWeights(t *testing.T) {
	// Brightness-preserving kernels sum to 1, edge detection sums to 0.
	sums := map[Effect]float32{
		EffectNone:       1,
		EffectSharpen:    1,
		EffectBlur:       1,
		EffectEdgeDetect: 0,
	}
	for e, want := range sums {
		var sum float32
		for _, w := range Kernel(e) {
			sum += w
		}
		if math.Abs(float64(sum-want)) > 1e-6 {
			t.Errorf("Kernel(%v) sums to %f, want %f", e, sum, want)
		}
	}
}

func TestEffectMode(t *testing.T) {
	if EffectNone.mode() != modeNone || EffectInvert.mode() != modeInvert ||
		EffectGrayscale.mode() != modeGrayscale || EffectBlur.mode() != modeKernel {
		t.Error("effect to shader mode mapping is wrong")
	}
}
