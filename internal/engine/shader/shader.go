// Package shader provides OpenGL shader compilation and program management.
package shader

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// CompileProgram compiles vertex and fragment shaders and links them into a program.
// Returns the program ID or an error if compilation/linking fails.
func CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	return CompileFeedbackProgram(vertexSrc, fragmentSrc, nil)
}

// CompileFeedbackProgram is CompileProgram with transform feedback varyings
// captured interleaved. fragmentSrc may be empty for capture-only programs.
func CompileFeedbackProgram(vertexSrc, fragmentSrc string, varyings []string) (uint32, error) {
	vertShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)

	if fragmentSrc != "" {
		fragShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
		if err != nil {
			gl.DeleteProgram(program)
			return 0, err
		}
		defer gl.DeleteShader(fragShader)
		gl.AttachShader(program, fragShader)
	}

	if len(varyings) > 0 {
		cvaryings, free := gl.Strs(nulTerminated(varyings)...)
		gl.TransformFeedbackVaryings(program, int32(len(varyings)), cvaryings, gl.INTERLEAVED_ATTRIBS)
		free()
	}

	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetProgramInfoLog(program, logLen, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", strings.TrimRight(string(log), "\x00"))
	}

	return program, nil
}

func nulTerminated(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = n + "\x00"
	}
	return out
}

// compileShader compiles a single shader of the given type.
func compileShader(source string, shaderType uint32, name string) (uint32, error) {
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
		return 0, fmt.Errorf("%s shader: %s", name, strings.TrimRight(string(log), "\x00"))
	}

	return shader, nil
}

// GetUniform returns the uniform location for the given name, or -1 when the
// uniform is missing or was optimized out.
func GetUniform(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

// Compiler turns sources into GL programs. The GL implementation needs a
// current context; tests substitute their own.
type Compiler interface {
	Compile(src Source) (uint32, error)
	Delete(program uint32)
}

// GLCompiler compiles with the current OpenGL context.
type GLCompiler struct{}

// Compile implements Compiler.
func (GLCompiler) Compile(src Source) (uint32, error) {
	return CompileFeedbackProgram(src.Vertex, src.Fragment, src.Varyings)
}

// Delete implements Compiler.
func (GLCompiler) Delete(program uint32) {
	gl.DeleteProgram(program)
}
