// Package gl41 implements driver.Driver on top of OpenGL 4.1 core through go-gl.
//
// All calls must happen on the thread that owns the current OpenGL context.
package gl41

import (
	"fmt"

	"github.com/bloeys/learngl/assert"
	"github.com/bloeys/learngl/driver"
	"github.com/go-gl/gl/v4.1-core/gl"
)

var _ driver.Driver = &GL{}

type GL struct{}

// New loads the OpenGL function pointers for the current context.
// A window with a current 4.1+ context must exist before calling this.
func New() (*GL, error) {

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to init OpenGL bindings: %w", err)
	}

	return &GL{}, nil
}

func (g *GL) GenBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

func (g *GL) DeleteBuffer(id uint32) {
	gl.DeleteBuffers(1, &id)
}

func (g *GL) BindBuffer(target driver.BufTarget, id uint32) {
	gl.BindBuffer(bufTargetToGl(target), id)
}

func (g *GL) BufferData(target driver.BufTarget, data []byte, usage driver.BufUsage) {

	if len(data) == 0 {
		gl.BufferData(bufTargetToGl(target), 0, gl.Ptr(nil), bufUsageToGl(usage))
		return
	}

	gl.BufferData(bufTargetToGl(target), len(data), gl.Ptr(&data[0]), bufUsageToGl(usage))
}

func (g *GL) GenVertexArray() uint32 {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return id
}

func (g *GL) DeleteVertexArray(id uint32) {
	gl.DeleteVertexArrays(1, &id)
}

func (g *GL) BindVertexArray(id uint32) {
	gl.BindVertexArray(id)
}

func (g *GL) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (g *GL) VertexAttribPointer(index uint32, compCount int32, dataType driver.DataType, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, compCount, dataTypeToGl(dataType), normalized, stride, offset)
}

func (g *GL) CreateShader(shaderType driver.ShaderType) uint32 {
	return gl.CreateShader(shaderTypeToGl(shaderType))
}

func (g *GL) ShaderSource(id uint32, src string) {
	srcCStr, free := gl.Strs(src + "\x00")
	defer free()
	gl.ShaderSource(id, 1, srcCStr, nil)
}

func (g *GL) CompileShader(id uint32) {
	gl.CompileShader(id)
}

func (g *GL) GetShaderiv(id uint32, param driver.ShaderParam) int32 {

	var pname uint32
	switch param {
	case driver.ShaderParam_CompileStatus:
		pname = gl.COMPILE_STATUS
	case driver.ShaderParam_InfoLogLength:
		pname = gl.INFO_LOG_LENGTH
	default:
		assert.T(false, "Unknown shader param '%d'", param)
	}

	var v int32
	gl.GetShaderiv(id, pname, &v)
	return v
}

func (g *GL) GetShaderInfoLog(id uint32, logLength int32) string {

	if logLength <= 0 {
		return ""
	}

	var written int32
	buf := make([]byte, logLength)
	gl.GetShaderInfoLog(id, logLength, &written, &buf[0])
	return string(buf[:written])
}

func (g *GL) DeleteShader(id uint32) {
	gl.DeleteShader(id)
}

func (g *GL) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (g *GL) AttachShader(programId, shaderId uint32) {
	gl.AttachShader(programId, shaderId)
}

func (g *GL) LinkProgram(programId uint32) {
	gl.LinkProgram(programId)
}

func (g *GL) ValidateProgram(programId uint32) {
	gl.ValidateProgram(programId)
}

func (g *GL) GetProgramiv(programId uint32, param driver.ProgramParam) int32 {

	var pname uint32
	switch param {
	case driver.ProgramParam_LinkStatus:
		pname = gl.LINK_STATUS
	case driver.ProgramParam_ValidateStatus:
		pname = gl.VALIDATE_STATUS
	case driver.ProgramParam_InfoLogLength:
		pname = gl.INFO_LOG_LENGTH
	default:
		assert.T(false, "Unknown program param '%d'", param)
	}

	var v int32
	gl.GetProgramiv(programId, pname, &v)
	return v
}

func (g *GL) GetProgramInfoLog(programId uint32, logLength int32) string {

	if logLength <= 0 {
		return ""
	}

	var written int32
	buf := make([]byte, logLength)
	gl.GetProgramInfoLog(programId, logLength, &written, &buf[0])
	return string(buf[:written])
}

func (g *GL) DeleteProgram(programId uint32) {
	gl.DeleteProgram(programId)
}

func (g *GL) UseProgram(programId uint32) {
	gl.UseProgram(programId)
}

func (g *GL) GetUniformLocation(programId uint32, name string) int32 {
	return gl.GetUniformLocation(programId, gl.Str(name+"\x00"))
}

func (g *GL) ProgramUniform1i(programId uint32, loc int32, v int32) {
	gl.ProgramUniform1i(programId, loc, v)
}

func (g *GL) ProgramUniform1f(programId uint32, loc int32, v float32) {
	gl.ProgramUniform1f(programId, loc, v)
}

func (g *GL) ProgramUniform2fv(programId uint32, loc int32, v *[2]float32) {
	gl.ProgramUniform2fv(programId, loc, 1, &v[0])
}

func (g *GL) ProgramUniform3fv(programId uint32, loc int32, v *[3]float32) {
	gl.ProgramUniform3fv(programId, loc, 1, &v[0])
}

func (g *GL) ProgramUniform4fv(programId uint32, loc int32, v *[4]float32) {
	gl.ProgramUniform4fv(programId, loc, 1, &v[0])
}

func (g *GL) ProgramUniformMatrix4fv(programId uint32, loc int32, m *[4][4]float32) {
	gl.ProgramUniformMatrix4fv(programId, loc, 1, false, &m[0][0])
}

func (g *GL) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (g *GL) ClearColor(r, gr, b, a float32) {
	gl.ClearColor(r, gr, b, a)
}

func (g *GL) Clear(mask driver.ClearMask) {

	var glMask uint32
	if mask&driver.ClearMask_Color != 0 {
		glMask |= gl.COLOR_BUFFER_BIT
	}

	if mask&driver.ClearMask_Depth != 0 {
		glMask |= gl.DEPTH_BUFFER_BIT
	}

	if mask&driver.ClearMask_Stencil != 0 {
		glMask |= gl.STENCIL_BUFFER_BIT
	}

	gl.Clear(glMask)
}

func (g *GL) DrawArrays(mode driver.Primitive, first, count int32) {
	gl.DrawArrays(primitiveToGl(mode), first, count)
}

func (g *GL) DrawElements(mode driver.Primitive, count int32, indexType driver.DataType, offset uintptr) {
	gl.DrawElementsWithOffset(primitiveToGl(mode), count, dataTypeToGl(indexType), offset)
}

func (g *GL) GetError() driver.ErrorCode {
	return driver.ErrorCode(gl.GetError())
}

func (g *GL) GetString(name driver.StringName) string {

	var glName uint32
	switch name {
	case driver.StringName_Version:
		glName = gl.VERSION
	case driver.StringName_Vendor:
		glName = gl.VENDOR
	case driver.StringName_Renderer:
		glName = gl.RENDERER
	case driver.StringName_ShadingLanguageVersion:
		glName = gl.SHADING_LANGUAGE_VERSION
	default:
		assert.T(false, "Unknown string name '%d'", name)
	}

	return gl.GoStr(gl.GetString(glName))
}
