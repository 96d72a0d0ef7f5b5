package framebuffer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/engine3d/internal/assets/shaders"
	"github.com/Faultbox/engine3d/internal/engine/shader"
)

// quadVertices is a full-screen triangle pair: position (x, y) + uv.
var quadVertices = []float32{
	-1, 1, 0, 1,
	-1, -1, 0, 0,
	1, -1, 1, 0,

	-1, 1, 0, 1,
	1, -1, 1, 0,
	1, 1, 1, 1,
}

// PostProcess draws a framebuffer's color texture to the screen through an effect.
type PostProcess struct {
	program *shader.Program
	vao     uint32
	vbo     uint32
	Effect  Effect
}

// NewPostProcess compiles the post shader and uploads the screen quad.
func NewPostProcess(effect Effect) (*PostProcess, error) {
	program, err := shader.New("post", shaders.PostVertexShader, shaders.PostFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("post process: %w", err)
	}

	p := &PostProcess{program: program, Effect: effect}

	gl.GenVertexArrays(1, &p.vao)
	gl.GenBuffers(1, &p.vbo)
	gl.BindVertexArray(p.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(2*4))
	gl.BindVertexArray(0)

	return p, nil
}

// Draw presents src to the currently bound framebuffer.
func (p *PostProcess) Draw(src *Framebuffer) {
	w, h := src.Size()

	gl.Disable(gl.DEPTH_TEST)
	p.program.Use()
	p.program.SetInt("screen", 0)
	p.program.SetInt("mode", p.Effect.mode())
	kernel := Kernel(p.Effect)
	p.program.SetFloats("kernel", kernel[:])
	p.program.SetVec2("texelSize", 1/float32(w), 1/float32(h))

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, src.ColorTexture())
	gl.BindVertexArray(p.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
	gl.Enable(gl.DEPTH_TEST)
}

// Destroy frees the quad and program.
func (p *PostProcess) Destroy() {
	gl.DeleteVertexArrays(1, &p.vao)
	gl.DeleteBuffers(1, &p.vbo)
	p.program.Delete()
}
