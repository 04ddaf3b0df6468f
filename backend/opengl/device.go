// Package opengl implements shader.Device over an OpenGL 4.1 core context.
package opengl

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-gl-lab/shader"
)

// Device drives program compilation and uniform upload through OpenGL.
// It carries no state of its own; all state lives in the GL context,
// which must be current on the calling thread.
type Device struct{}

var _ shader.Device = Device{}

func (Device) CreateStage(stage shader.Stage) uint32 {
	return gl.CreateShader(glStage(stage))
}

func (Device) CompileStage(id uint32, source string) (bool, string) {
	csources, free := gl.Strs(terminate(source))
	gl.ShaderSource(id, 1, csources, nil)
	free()
	gl.CompileShader(id)

	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(id, logLength, nil, &log[0])
		return false, string(log)
	}
	return true, ""
}

func (Device) DeleteStage(id uint32) { gl.DeleteShader(id) }

func (Device) CreateProgram() uint32 { return gl.CreateProgram() }

func (Device) AttachStage(program, stage uint32) { gl.AttachShader(program, stage) }

func (Device) LinkProgram(program uint32) (bool, string) {
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		return false, string(log)
	}
	return true, ""
}

func (Device) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (Device) UseProgram(program uint32) { gl.UseProgram(program) }

func (Device) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (Device) SetFloat(location int32, v float32) { gl.Uniform1f(location, v) }

func (Device) SetInt(location int32, v int32) { gl.Uniform1i(location, v) }

func (Device) SetVec3(location int32, v mgl32.Vec3) {
	gl.Uniform3f(location, v.X(), v.Y(), v.Z())
}

func (Device) SetVec4(location int32, v mgl32.Vec4) {
	gl.Uniform4f(location, v.X(), v.Y(), v.Z(), v.W())
}

func (Device) SetMat4(location int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

// glStage maps a stage kind to its GL enum.
func glStage(stage shader.Stage) uint32 {
	switch stage {
	case shader.StageVertex:
		return gl.VERTEX_SHADER
	case shader.StageFragment:
		return gl.FRAGMENT_SHADER
	default:
		panic("opengl: unknown shader stage")
	}
}

// terminate appends the NUL terminator gl.Strs requires, if missing.
func terminate(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}
