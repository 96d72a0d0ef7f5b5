// Package camera provides the fly and orbit cameras used by the demo.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// View is what the renderer needs from a camera each frame.
type View interface {
	ViewMatrix() mgl32.Mat4
	Projection(aspect, near, far float32) mgl32.Mat4
	Position() mgl32.Vec3
}

// epsilon below which a vector is treated as zero length.
const epsilon = 1e-6

// basis derives front, right and up from yaw/pitch in degrees.
// prevRight is reused when front is parallel to worldUp.
func basis(yaw, pitch float32, worldUp, prevRight mgl32.Vec3) (front, right, up mgl32.Vec3) {
	yawRad := float64(mgl32.DegToRad(yaw))
	pitchRad := float64(mgl32.DegToRad(pitch))

	dir := mgl32.Vec3{
		float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		float32(math.Sin(pitchRad)),
		float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}

	front = normalizeOr(dir, dir)
	right = normalizeOr(front.Cross(worldUp), prevRight)
	up = normalizeOr(right.Cross(front), worldUp)
	return front, right, up
}

// normalizeOr returns v as a unit vector, or fallback if v has no length.
func normalizeOr(v, fallback mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l < epsilon {
		return fallback
	}
	return v.Mul(1 / l)
}

func perspective(zoom, aspect, near, far float32) mgl32.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return mgl32.Perspective(mgl32.DegToRad(zoom), aspect, near, far)
}
