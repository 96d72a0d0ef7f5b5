package debug

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFlipRGBA(t *testing.T) {
	// Two rows: bottom row red, top row blue (OpenGL order)
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	img, err := FlipRGBA(pixels, 1, 2)
	if err != nil {
		t.Fatalf("FlipRGBA: %v", err)
	}

	top := img.RGBAAt(0, 0)
	if top.B != 255 || top.R != 0 {
		t.Errorf("expected blue on top, got %+v", top)
	}
	bottom := img.RGBAAt(0, 1)
	if bottom.R != 255 || bottom.B != 0 {
		t.Errorf("expected red on bottom, got %+v", bottom)
	}
}

func TestFlipRGBASizeMismatch(t *testing.T) {
	if _, err := FlipRGBA(make([]byte, 7), 1, 2); err == nil {
		t.Error("expected error for short pixel buffer")
	}
	if _, err := FlipRGBA(nil, 0, 0); err == nil {
		t.Error("expected error for empty image")
	}
}

func TestCaptureWritesPNG(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	s := NewScreenshots(dir, "frame")
	s.now = func() time.Time { return time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC) }

	path, err := s.Capture(make([]byte, 4*3*2), 3, 2)
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if filepath.Base(path) != "frame_2024-05-01_12-30-00.000.png" {
		t.Errorf("unexpected filename %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Errorf("expected 3x2 image, got %v", b)
	}
}
