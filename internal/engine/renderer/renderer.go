// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/engine3d/internal/assets/shaders"
	"github.com/Faultbox/engine3d/internal/engine/camera"
	"github.com/Faultbox/engine3d/internal/engine/framebuffer"
	"github.com/Faultbox/engine3d/internal/engine/lighting"
	"github.com/Faultbox/engine3d/internal/engine/picking"
	"github.com/Faultbox/engine3d/internal/engine/scene"
	"github.com/Faultbox/engine3d/internal/engine/shader"
	"github.com/Faultbox/engine3d/internal/engine/shadow"
	"github.com/Faultbox/engine3d/internal/engine/skybox"
)

// Config holds renderer configuration. Width and Height are drawable pixels.
type Config struct {
	Width     int
	Height    int
	Near      float32
	Far       float32
	Shininess float32
	Sky       skybox.Colors
	Effect    framebuffer.Effect

	// ShadowResolution is the sun shadow map size; 0 disables shadows.
	ShadowResolution int
}

// Frame is everything needed to draw one frame.
type Frame struct {
	Camera camera.View
	Lights lighting.Set
	Draws  []scene.Draw

	// Bounds is the region covered by the sun shadow map.
	Bounds picking.AABB
}

// Renderer draws the scene into an offscreen target, then presents it through
// the post-process pass.
type Renderer struct {
	config Config
	log    *zap.Logger

	lit     *shader.Program
	cubeVAO uint32
	cubeVBO uint32

	depth   *shader.Program
	shadows *shadow.Map

	sky    *skybox.Skybox
	target *framebuffer.Framebuffer
	post   *framebuffer.PostProcess
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config, log *zap.Logger) (*Renderer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Renderer{config: cfg, log: log}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)

	var err error
	r.lit, err = shader.New("lit", shaders.LitVertexShader, shaders.LitFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	r.createCube()

	if cfg.ShadowResolution > 0 {
		if err := r.createShadows(int32(cfg.ShadowResolution)); err != nil {
			// Shading still works without the depth pass
			log.Warn("shadows disabled", zap.Error(err))
		}
	}

	if r.sky, err = skybox.New(cfg.Sky); err != nil {
		r.Close()
		return nil, err
	}
	if r.target, err = framebuffer.New(int32(cfg.Width), int32(cfg.Height)); err != nil {
		r.Close()
		return nil, err
	}
	if r.post, err = framebuffer.NewPostProcess(cfg.Effect); err != nil {
		r.Close()
		return nil, err
	}

	return r, nil
}

func (r *Renderer) createCube() {
	vertices := CubeVertices()

	gl.GenVertexArrays(1, &r.cubeVAO)
	gl.GenBuffers(1, &r.cubeVBO)
	gl.BindVertexArray(r.cubeVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.cubeVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	// position, color, uv, normal
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, vertexStride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, vertexStride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, vertexStride, gl.PtrOffset(6*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(3, 3, gl.FLOAT, false, vertexStride, gl.PtrOffset(8*4))
	gl.EnableVertexAttribArray(3)

	gl.BindVertexArray(0)
}

func (r *Renderer) createShadows(resolution int32) error {
	depth, err := shader.New("depth", shaders.DepthVertexShader, shaders.DepthFragmentShader)
	if err != nil {
		return err
	}
	shadows, err := shadow.NewMap(resolution)
	if err != nil {
		depth.Delete()
		return err
	}
	r.depth, r.shadows = depth, shadows
	return nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	if r.post != nil {
		r.post.Destroy()
	}
	if r.target != nil {
		r.target.Destroy()
	}
	if r.sky != nil {
		r.sky.Destroy()
	}
	if r.shadows != nil {
		r.shadows.Destroy()
	}
	if r.depth != nil {
		r.depth.Delete()
	}
	if r.cubeVAO != 0 {
		gl.DeleteVertexArrays(1, &r.cubeVAO)
	}
	if r.cubeVBO != 0 {
		gl.DeleteBuffers(1, &r.cubeVBO)
	}
	if r.lit != nil {
		r.lit.Delete()
	}
}

// Resize handles drawable size changes.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	r.target.Resize(int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Aspect returns the width/height ratio of the drawable.
func (r *Renderer) Aspect() float32 {
	if r.config.Height <= 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// SetEffect selects the post-process effect.
func (r *Renderer) SetEffect(e framebuffer.Effect) {
	r.post.Effect = e
}

// Effect returns the active post-process effect.
func (r *Renderer) Effect() framebuffer.Effect {
	return r.post.Effect
}

// SetSky replaces the sky gradient.
func (r *Renderer) SetSky(c skybox.Colors) {
	r.sky.Colors = c
}

// SetClipPlanes replaces the near and far projection planes.
func (r *Renderer) SetClipPlanes(near, far float32) {
	r.config.Near = near
	r.config.Far = far
}

// Render draws one frame and presents it to the default framebuffer.
func (r *Renderer) Render(f Frame) {
	view := f.Camera.ViewMatrix()
	projection := f.Camera.Projection(r.Aspect(), r.config.Near, r.config.Far)

	var lightSpace mgl32.Mat4
	if r.shadows != nil {
		lightSpace = shadow.DirectionalLightMatrix(f.Lights.Directional.Direction, f.Bounds)
		r.renderShadows(lightSpace, f.Draws)
	}

	r.target.Bind()
	r.target.Clear(0, 0, 0, 1)

	r.lit.Use()
	r.lit.SetMat4("view", view)
	r.lit.SetMat4("projection", projection)
	r.lit.SetVec3("viewPos", f.Camera.Position())
	r.lit.SetFloat("shininess", r.config.Shininess)
	lighting.Upload(r.lit, f.Lights)
	r.lit.SetMat4("lightSpace", lightSpace)
	r.lit.SetInt("shadowMap", 1)
	if r.shadows != nil {
		r.shadows.BindTexture(gl.TEXTURE1)
		r.lit.SetInt("shadowsEnabled", 1)
	} else {
		r.lit.SetInt("shadowsEnabled", 0)
	}

	gl.BindVertexArray(r.cubeVAO)
	for _, d := range f.Draws {
		r.lit.SetMat4("model", d.Model)
		r.lit.SetVec3("tint", d.Tint)
		r.lit.SetFloat("highlight", boolToFloat(d.Highlight))
		gl.DrawArrays(gl.TRIANGLES, 0, cubeVertexCount)
	}
	gl.BindVertexArray(0)

	r.sky.Draw(view, projection)

	r.target.Unbind()
	gl.Viewport(0, 0, int32(r.config.Width), int32(r.config.Height))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	r.post.Draw(r.target)
}

// renderShadows draws every cube's depth as seen from the sun.
func (r *Renderer) renderShadows(lightSpace mgl32.Mat4, draws []scene.Draw) {
	r.shadows.Bind()
	r.depth.Use()
	r.depth.SetMat4("lightSpace", lightSpace)

	gl.BindVertexArray(r.cubeVAO)
	for _, d := range draws {
		r.depth.SetMat4("model", d.Model)
		gl.DrawArrays(gl.TRIANGLES, 0, cubeVertexCount)
	}
	gl.BindVertexArray(0)

	r.shadows.Unbind()
}

// ReadPixels returns the last rendered frame before post-processing as
// bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.target.Size()
	return r.target.ReadPixels(), int(w), int(h)
}

// ViewProjection returns projection * view for the given camera.
func (r *Renderer) ViewProjection(cam camera.View) mgl32.Mat4 {
	return cam.Projection(r.Aspect(), r.config.Near, r.config.Far).Mul4(cam.ViewMatrix())
}

func boolToFloat(b bool) float32 {
	if b {
		return 1
	}
	return 0
}
