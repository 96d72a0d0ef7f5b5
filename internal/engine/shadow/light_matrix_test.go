package shadow

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/engine3d/internal/engine/picking"
)

func project(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	v := m.Mul4x1(p.Vec4(1))
	return v.Vec3().Mul(1 / v.W())
}

func inClip(p mgl32.Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < -1 || p[i] > 1 {
			return false
		}
	}
	return true
}

func TestCenterAndRadius(t *testing.T) {
	box := picking.AABB{Min: mgl32.Vec3{0, -1, 0}, Max: mgl32.Vec3{16, 0, 16}}

	if c := Center(box); c != (mgl32.Vec3{8, -0.5, 8}) {
		t.Errorf("Center = %v, want (8, -0.5, 8)", c)
	}
	want := mgl32.Vec3{16, 1, 16}.Len() / 2
	if r := Radius(box); r != want {
		t.Errorf("Radius = %f, want %f", r, want)
	}
}

func TestDirectionalLightMatrixCoversBounds(t *testing.T) {
	box := picking.AABB{Min: mgl32.Vec3{0, -1, 0}, Max: mgl32.Vec3{16, 3, 16}}

	dirs := []mgl32.Vec3{
		{0, -1, 0},        // straight down
		{-0.5, -0.7, 0.5}, // low sun
		{1, -0.2, 0},      // grazing
	}

	for _, dir := range dirs {
		m := DirectionalLightMatrix(dir, box)
		for i := 0; i < 8; i++ {
			corner := mgl32.Vec3{box.Min[0], box.Min[1], box.Min[2]}
			if i&1 != 0 {
				corner[0] = box.Max[0]
			}
			if i&2 != 0 {
				corner[1] = box.Max[1]
			}
			if i&4 != 0 {
				corner[2] = box.Max[2]
			}
			if p := project(m, corner); !inClip(p) {
				t.Errorf("light %v: corner %v maps outside clip space: %v", dir, corner, p)
			}
		}
	}
}

func TestDirectionalLightMatrixDepthOrder(t *testing.T) {
	box := picking.AABB{Min: mgl32.Vec3{-4, -4, -4}, Max: mgl32.Vec3{4, 4, 4}}
	m := DirectionalLightMatrix(mgl32.Vec3{0, -1, 0}, box)

	top := project(m, mgl32.Vec3{0, 3, 0})
	bottom := project(m, mgl32.Vec3{0, -3, 0})
	if top.Z() >= bottom.Z() {
		t.Errorf("points nearer the light should have smaller depth: top %f, bottom %f", top.Z(), bottom.Z())
	}
}

func TestDirectionalLightMatrixDegenerate(t *testing.T) {
	m := DirectionalLightMatrix(mgl32.Vec3{}, picking.AABB{})
	for i, v := range m {
		if v != v {
			t.Fatalf("element %d is NaN", i)
		}
	}
}
