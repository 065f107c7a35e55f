// Package driver describes the boundary between learngl and the graphics driver.
//
// Every handle-producing or state-mutating call the rest of the code makes goes through
// the Driver interface, so the buffer and shader wrappers can run against the real
// OpenGL implementation (driver/gl41) or against the recording fake (driver/drivertest).
//
// The interface is deliberately close to the OpenGL calls it stands for. Handles are the raw
// driver ids (0 meaning 'none'), and status/log queries are split the same way OpenGL splits them
// (query the length, then fetch), so the callers keep the sequencing that OpenGL expects.
package driver

type Driver interface {
	// Buffers
	GenBuffer() uint32
	DeleteBuffer(id uint32)
	BindBuffer(target BufTarget, id uint32)
	BufferData(target BufTarget, data []byte, usage BufUsage)

	// Vertex arrays
	GenVertexArray() uint32
	DeleteVertexArray(id uint32)
	BindVertexArray(id uint32)
	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, compCount int32, dataType DataType, normalized bool, stride int32, offset uintptr)

	// Shaders
	CreateShader(shaderType ShaderType) uint32
	ShaderSource(id uint32, src string)
	CompileShader(id uint32)
	GetShaderiv(id uint32, param ShaderParam) int32
	GetShaderInfoLog(id uint32, logLength int32) string
	DeleteShader(id uint32)

	// Programs
	CreateProgram() uint32
	AttachShader(programId, shaderId uint32)
	LinkProgram(programId uint32)
	ValidateProgram(programId uint32)
	GetProgramiv(programId uint32, param ProgramParam) int32
	GetProgramInfoLog(programId uint32, logLength int32) string
	DeleteProgram(programId uint32)
	UseProgram(programId uint32)

	// Uniforms
	GetUniformLocation(programId uint32, name string) int32
	ProgramUniform1i(programId uint32, loc int32, v int32)
	ProgramUniform1f(programId uint32, loc int32, v float32)
	ProgramUniform2fv(programId uint32, loc int32, v *[2]float32)
	ProgramUniform3fv(programId uint32, loc int32, v *[3]float32)
	ProgramUniform4fv(programId uint32, loc int32, v *[4]float32)
	ProgramUniformMatrix4fv(programId uint32, loc int32, m *[4][4]float32)

	// Drawing
	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask ClearMask)
	DrawArrays(mode Primitive, first, count int32)
	DrawElements(mode Primitive, count int32, indexType DataType, offset uintptr)

	// Misc
	GetError() ErrorCode
	GetString(name StringName) string
}
