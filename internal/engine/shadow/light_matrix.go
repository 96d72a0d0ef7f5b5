package shadow

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/engine3d/internal/engine/picking"
)

// Center returns the center point of the box.
func Center(b picking.AABB) mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Radius returns the distance from center to corner (half-diagonal).
func Radius(b picking.AABB) float32 {
	return b.Max.Sub(b.Min).Len() / 2
}

// DirectionalLightMatrix computes the view-projection used to render and
// sample the shadow map. lightDir is the direction the light travels, as
// stored in lighting.DirectionalLight; bounds is the region that casts and
// receives shadows.
func DirectionalLightMatrix(lightDir mgl32.Vec3, bounds picking.AABB) mgl32.Mat4 {
	center := Center(bounds)
	radius := Radius(bounds)
	if radius == 0 {
		radius = 1
	}

	toLight := lightDir.Mul(-1)
	if l := toLight.Len(); l > 0 {
		toLight = toLight.Mul(1 / l)
	} else {
		toLight = mgl32.Vec3{0, 1, 0}
	}

	// Far enough out that the whole box sits in front of the near plane
	lightDistance := radius * 2
	lightPos := center.Add(toLight.Mul(lightDistance))

	up := mgl32.Vec3{0, 1, 0}
	if abs32(toLight.Y()) > 0.99 {
		up = mgl32.Vec3{0, 0, 1}
	}
	view := mgl32.LookAtV(lightPos, center, up)

	// Padding keeps edge texels from clipping
	halfSize := radius * 1.1
	near := float32(0.1)
	far := lightDistance + halfSize

	proj := mgl32.Ortho(-halfSize, halfSize, -halfSize, halfSize, near, far)
	return proj.Mul4(view)
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
