// Package shader compiles GLSL programs and sets their uniforms.
package shader

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Program is a linked shader program with a uniform location cache.
// It implements lighting.UniformSetter.
type Program struct {
	id        uint32
	name      string
	locations map[string]int32
}

// New compiles and links a named program.
func New(name, vertexSrc, fragmentSrc string) (*Program, error) {
	id, err := CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("%s program: %w", name, err)
	}
	return &Program{
		id:        id,
		name:      name,
		locations: make(map[string]int32),
	}, nil
}

// ID returns the GL program object.
func (p *Program) ID() uint32 { return p.id }

// Name returns the program name given at creation.
func (p *Program) Name() string { return p.name }

// Use binds the program.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// Location returns the cached uniform location, or -1 if the uniform is inactive.
func (p *Program) Location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := GetUniform(p.id, name)
	p.locations[name] = loc
	return loc
}

// SetVec3 sets a vec3 uniform on the bound program.
func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3f(p.Location(name), v[0], v[1], v[2])
}

// SetVec2 sets a vec2 uniform on the bound program.
func (p *Program) SetVec2(name string, x, y float32) {
	gl.Uniform2f(p.Location(name), x, y)
}

// SetFloat sets a float uniform on the bound program.
func (p *Program) SetFloat(name string, f float32) {
	gl.Uniform1f(p.Location(name), f)
}

// SetInt sets an int or sampler uniform on the bound program.
func (p *Program) SetInt(name string, i int32) {
	gl.Uniform1i(p.Location(name), i)
}

// SetMat4 sets a mat4 uniform on the bound program.
func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(p.Location(name), 1, false, &m[0])
}

// SetFloats sets a float array uniform on the bound program.
func (p *Program) SetFloats(name string, values []float32) {
	if len(values) == 0 {
		return
	}
	gl.Uniform1fv(p.Location(name), int32(len(values)), &values[0])
}

// Delete releases the program object.
func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

// CompileProgram compiles vertex and fragment shaders and links them into a program.
func CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetProgramInfoLog(program, logLen, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", string(log[:logLen]))
	}

	return program, nil
}

func compileShader(source string, shaderType uint32, stage string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetShaderInfoLog(shader, logLen, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader: %s", stage, string(log[:logLen]))
	}

	return shader, nil
}

// GetUniform returns the uniform location for the given name, or -1.
func GetUniform(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}
