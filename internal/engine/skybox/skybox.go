// Package skybox draws a procedural gradient sky behind the scene.
package skybox

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/engine3d/internal/assets/shaders"
	"github.com/Faultbox/engine3d/internal/engine/shader"
)

// Colors is the sky gradient from straight up down to below the horizon.
type Colors struct {
	Zenith  mgl32.Vec3 `yaml:"zenith"`
	Horizon mgl32.Vec3 `yaml:"horizon"`
	Ground  mgl32.Vec3 `yaml:"ground"`
}

// DefaultColors is a clear daytime sky.
func DefaultColors() Colors {
	return Colors{
		Zenith:  mgl32.Vec3{0.18, 0.38, 0.78},
		Horizon: mgl32.Vec3{0.70, 0.82, 0.95},
		Ground:  mgl32.Vec3{0.32, 0.30, 0.28},
	}
}

// StripTranslation keeps only the rotation of a view matrix so the sky
// stays centered on the eye.
func StripTranslation(view mgl32.Mat4) mgl32.Mat4 {
	return view.Mat3().Mat4()
}

var cubeVertices = []float32{
	-1, 1, -1, -1, -1, -1, 1, -1, -1, 1, -1, -1, 1, 1, -1, -1, 1, -1,
	-1, -1, 1, -1, -1, -1, -1, 1, -1, -1, 1, -1, -1, 1, 1, -1, -1, 1,
	1, -1, -1, 1, -1, 1, 1, 1, 1, 1, 1, 1, 1, 1, -1, 1, -1, -1,
	-1, -1, 1, -1, 1, 1, 1, 1, 1, 1, 1, 1, 1, -1, 1, -1, -1, 1,
	-1, 1, -1, 1, 1, -1, 1, 1, 1, 1, 1, 1, -1, 1, 1, -1, 1, -1,
	-1, -1, -1, -1, -1, 1, 1, -1, -1, 1, -1, -1, -1, -1, 1, 1, -1, 1,
}

// Skybox is a unit cube drawn at the far plane.
type Skybox struct {
	program *shader.Program
	vao     uint32
	vbo     uint32
	Colors  Colors
}

// New compiles the sky program and uploads the cube.
func New(colors Colors) (*Skybox, error) {
	program, err := shader.New("sky", shaders.SkyVertexShader, shaders.SkyFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("skybox: %w", err)
	}

	s := &Skybox{program: program, Colors: colors}

	gl.GenVertexArrays(1, &s.vao)
	gl.GenBuffers(1, &s.vbo)
	gl.BindVertexArray(s.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(cubeVertices)*4, gl.Ptr(cubeVertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, gl.PtrOffset(0))
	gl.BindVertexArray(0)

	return s, nil
}

// Draw renders the sky. Call it after opaque geometry so the depth test
// rejects covered pixels.
func (s *Skybox) Draw(view, projection mgl32.Mat4) {
	gl.DepthFunc(gl.LEQUAL)
	gl.DepthMask(false)

	s.program.Use()
	s.program.SetMat4("skyVP", projection.Mul4(StripTranslation(view)))
	s.program.SetVec3("zenith", s.Colors.Zenith)
	s.program.SetVec3("horizon", s.Colors.Horizon)
	s.program.SetVec3("ground", s.Colors.Ground)

	gl.BindVertexArray(s.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(cubeVertices)/3))
	gl.BindVertexArray(0)

	gl.DepthMask(true)
	gl.DepthFunc(gl.LESS)
}

// Destroy frees GPU resources.
func (s *Skybox) Destroy() {
	gl.DeleteVertexArrays(1, &s.vao)
	gl.DeleteBuffers(1, &s.vbo)
	s.program.Delete()
}
