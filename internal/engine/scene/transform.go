package scene

import "github.com/go-gl/mathgl/mgl32"

// Transform places an object in world space.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3 // radians around X, Y, Z
	Scale    mgl32.Vec3
}

// NewTransform returns a unit-scale transform at position.
func NewTransform(position mgl32.Vec3) Transform {
	return Transform{
		Position: position,
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// Model returns translate * rotX * rotY * rotZ * scale.
func (t Transform) Model() mgl32.Mat4 {
	m := mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	m = m.Mul4(mgl32.HomogRotate3DX(t.Rotation.X()))
	m = m.Mul4(mgl32.HomogRotate3DY(t.Rotation.Y()))
	m = m.Mul4(mgl32.HomogRotate3DZ(t.Rotation.Z()))
	return m.Mul4(mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z()))
}
