package renderer

import "github.com/go-gl/mathgl/mgl32"

// Vertex layout: position (3), color (3), uv (2), normal (3).
const (
	vertexFloats    = 11
	vertexStride    = vertexFloats * 4
	cubeVertexCount = 36
)

type face struct {
	normal, u, v mgl32.Vec3
}

// cubeFaces are oriented so u x v = normal, giving counter-clockwise
// triangles seen from outside.
var cubeFaces = [6]face{
	{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
	{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
	{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}},
}

var faceCorners = [6][2]float32{{0, 0}, {1, 0}, {1, 1}, {1, 1}, {0, 1}, {0, 0}}

// CubeVertices builds an interleaved unit cube centered on the origin.
// The vertex color follows the uv so each face shows a gradient.
func CubeVertices() []float32 {
	out := make([]float32, 0, cubeVertexCount*vertexFloats)
	for _, f := range cubeFaces {
		center := f.normal.Mul(0.5)
		for _, c := range faceCorners {
			s, t := c[0], c[1]
			p := center.Add(f.u.Mul(s - 0.5)).Add(f.v.Mul(t - 0.5))
			out = append(out,
				p[0], p[1], p[2],
				0.6+0.4*s, 0.6+0.4*t, 0.8,
				s, t,
				f.normal[0], f.normal[1], f.normal[2],
			)
		}
	}
	return out
}
