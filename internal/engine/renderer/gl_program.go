package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// glProgram is a linked program and its uniform location cache.
type glProgram struct {
	id       uint32
	name     string
	uniforms map[string]int32
}

// uniform returns the location for name, -1 when the program lacks it.
func (p *glProgram) uniform(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.uniforms[name] = loc
	return loc
}

// compileProgram compiles vertex and fragment shaders and links them with
// the fixed attribute locations.
func compileProgram(name, vertexSrc, fragmentSrc string) (uint32, error) {
	vertShader, err := compileShader(name, vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(name, fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)

	gl.BindAttribLocation(program, LocCoords, gl.Str(AttribCoords+"\x00"))
	gl.BindAttribLocation(program, LocColor, gl.Str(AttribColor+"\x00"))
	gl.BindAttribLocation(program, LocNormal, gl.Str(AttribNormal+"\x00"))

	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetProgramInfoLog(program, logLen, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, &LinkError{Program: name, Log: gl.GoStr(&log[0])}
	}

	return program, nil
}

// compileShader compiles a single shader of the given type.
func compileShader(program, source string, shaderType uint32, stage string) (uint32, error) {
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
		return 0, &CompileError{Program: program, Stage: stage, Log: gl.GoStr(&log[0])}
	}

	return shader, nil
}
