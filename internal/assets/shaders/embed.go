// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// LitVertexShader transforms cube vertices into world and clip space.
//
//go:embed lit.vert
var LitVertexShader string

// LitFragmentShader shades with one directional, up to four point and one spot light.
//
//go:embed lit.frag
var LitFragmentShader string

// SkyVertexShader draws the sky cube at the far plane.
//
//go:embed sky.vert
var SkyVertexShader string

// SkyFragmentShader paints the zenith/horizon/ground gradient.
//
//go:embed sky.frag
var SkyFragmentShader string

// PostVertexShader draws the full-screen quad.
//
//go:embed post.vert
var PostVertexShader string

// PostFragmentShader applies the selected post-process effect.
//
//go:embed post.frag
var PostFragmentShader string

// DepthVertexShader renders cube depth from the sun for the shadow map.
//
//go:embed depth.vert
var DepthVertexShader string

// DepthFragmentShader writes depth only.
//
//go:embed depth.frag
var DepthFragmentShader string
