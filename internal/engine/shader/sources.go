package shader

import _ "embed"

//go:embed glsl/basic.vert
var basicVertexShader string

//go:embed glsl/basic.frag
var basicFragmentShader string

//go:embed glsl/gouraud.vert
var gouraudVertexShader string

//go:embed glsl/gouraud.frag
var gouraudFragmentShader string

//go:embed glsl/phong.vert
var phongVertexShader string

//go:embed glsl/phong.frag
var phongFragmentShader string

// shadowLibrary defines shadowVisibility() for fragment shaders.
//
//go:embed glsl/shadow.glsl
var shadowLibrary string

const glslVersion = "#version 410 core\n"

// preamble builds the version line and feature defines for one variant.
func preamble(specular, shadow bool) string {
	p := glslVersion
	if specular {
		p += "#define SPECULAR\n"
	}
	if shadow {
		p += "#define SHADOW\n"
	}
	return p
}

// vertexSource returns the complete vertex shader text for a variant.
func vertexSource(body string, specular, shadow bool) string {
	return preamble(specular, shadow) + body
}

// fragmentSource returns the complete fragment shader text for a variant,
// with the shadow helpers linked in ahead of the body.
func fragmentSource(body string, specular, shadow bool) string {
	return preamble(specular, shadow) + shadowLibrary + "\n" + body
}
