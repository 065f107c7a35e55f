// Package drivertest provides Fake, an in-memory driver.Driver that records what it was asked
// to do and emulates the parts of OpenGL state that learngl depends on.
//
// The fake is strict in the same places a core profile context is: binding names that were never
// generated, drawing without a vertex array or program, attaching shader 0 and so on set an error
// flag that GetError reports, exactly like glGetError would.
package drivertest

import (
	"regexp"
	"strings"

	"github.com/bloeys/learngl/driver"
)

var _ driver.Driver = &Fake{}

var uniformDeclRegex = regexp.MustCompile(`uniform\s+\w+\s+(\w+)\s*(\[\s*\d+\s*\])?\s*;`)

type Call struct {
	Name string
	Args []any
}

type Buffer struct {
	Id          uint32
	Data        []byte
	Usage       driver.BufUsage
	UploadCount int
	Deleted     bool
	DeleteCount int
}

type Attrib struct {
	Enabled    bool
	CompCount  int32
	DataType   driver.DataType
	Normalized bool
	Stride     int32
	Offset     uintptr
	Buffer     uint32
}

type VertexArray struct {
	Id            uint32
	Attribs       map[uint32]*Attrib
	ElementBuffer uint32
	Deleted       bool
}

type Shader struct {
	Id       uint32
	Type     driver.ShaderType
	Source   string
	Compiled bool
	Log      string
	// Deleted is set by DeleteShader. OpenGL only flags an attached shader for deletion,
	// but for the purpose of leak checks a flagged shader counts as released.
	Deleted     bool
	DeleteCount int
}

type Program struct {
	Id        uint32
	Attached  []uint32
	Linked    bool
	Validated bool
	Log       string
	Deleted   bool
	// UniformLocs maps active uniform names to their location
	UniformLocs map[string]int32
	// UniformVals holds the last value uploaded to each location
	UniformVals map[int32]any
}

type Draw struct {
	Mode      driver.Primitive
	First     int32
	Count     int32
	Indexed   bool
	IndexType driver.DataType
	Program   uint32
	Vao       uint32
}

type Fake struct {
	Calls []Call

	// CompileFunc decides whether a stage compiles. Defaults to DefaultCompile.
	CompileFunc func(shaderType driver.ShaderType, src string) (ok bool, log string)
	// ValidateFunc decides whether a linked program validates. When nil every linked program does.
	ValidateFunc func(p *Program) (ok bool, log string)

	Buffers      map[uint32]*Buffer
	VertexArrays map[uint32]*VertexArray
	Shaders      map[uint32]*Shader
	Programs     map[uint32]*Program

	BoundBuffers   map[driver.BufTarget]uint32
	BoundVao       uint32
	CurrentProgram uint32

	ViewportVal   [4]int32
	ClearColorVal [4]float32
	ClearCount    int
	Draws         []Draw

	nextId  uint32
	errFlag driver.ErrorCode
}

func NewFake() *Fake {
	return &Fake{
		Buffers:      map[uint32]*Buffer{},
		VertexArrays: map[uint32]*VertexArray{},
		Shaders:      map[uint32]*Shader{},
		Programs:     map[uint32]*Program{},
		BoundBuffers: map[driver.BufTarget]uint32{},
	}
}

// DefaultCompile accepts any stage that has a main function and does not contain the literal 'invalid_token'
func DefaultCompile(shaderType driver.ShaderType, src string) (ok bool, log string) {

	if strings.Contains(src, "invalid_token") {
		return false, "0:1(1): error: syntax error, unexpected IDENTIFIER 'invalid_token'"
	}

	if !strings.Contains(src, "void main") {
		return false, "0:0(0): error: " + shaderType.String() + " shader lacks `main'"
	}

	return true, ""
}

func (f *Fake) record(name string, args ...any) {
	f.Calls = append(f.Calls, Call{Name: name, Args: args})
}

// setErr keeps the first error until GetError is called, like OpenGL does for a single flag
func (f *Fake) setErr(code driver.ErrorCode) {
	if f.errFlag == driver.NoError {
		f.errFlag = code
	}
}

func (f *Fake) genId() uint32 {
	f.nextId++
	return f.nextId
}

// CallCount returns how many times the named driver method was called
func (f *Fake) CallCount(name string) int {

	n := 0
	for i := 0; i < len(f.Calls); i++ {
		if f.Calls[i].Name == name {
			n++
		}
	}

	return n
}

// LiveShaders returns the number of shader objects created but not yet deleted
func (f *Fake) LiveShaders() int {

	n := 0
	for _, s := range f.Shaders {
		if !s.Deleted {
			n++
		}
	}

	return n
}

// LiveBuffers returns the number of buffers generated but not yet deleted
func (f *Fake) LiveBuffers() int {

	n := 0
	for _, b := range f.Buffers {
		if !b.Deleted {
			n++
		}
	}

	return n
}

func (f *Fake) GenBuffer() uint32 {
	id := f.genId()
	f.Buffers[id] = &Buffer{Id: id}
	f.record("GenBuffer", id)
	return id
}

func (f *Fake) DeleteBuffer(id uint32) {

	f.record("DeleteBuffer", id)
	b, ok := f.Buffers[id]
	if !ok {
		return
	}

	b.DeleteCount++
	b.Deleted = true

	for target, bound := range f.BoundBuffers {
		if bound == id {
			f.BoundBuffers[target] = 0
		}
	}

	for _, vao := range f.VertexArrays {
		if vao.ElementBuffer == id {
			vao.ElementBuffer = 0
		}
	}
}

func (f *Fake) BindBuffer(target driver.BufTarget, id uint32) {

	f.record("BindBuffer", target, id)

	if target != driver.BufTarget_Array && target != driver.BufTarget_ElementArray {
		f.setErr(driver.InvalidEnum)
		return
	}

	if id != 0 {
		b, ok := f.Buffers[id]
		if !ok || b.Deleted {
			f.setErr(driver.InvalidOperation)
			return
		}
	}

	f.BoundBuffers[target] = id

	// Element array binding is part of vertex array state
	if target == driver.BufTarget_ElementArray && f.BoundVao != 0 {
		f.VertexArrays[f.BoundVao].ElementBuffer = id
	}
}

func (f *Fake) BufferData(target driver.BufTarget, data []byte, usage driver.BufUsage) {

	f.record("BufferData", target, len(data), usage)

	id := f.BoundBuffers[target]
	if id == 0 {
		f.setErr(driver.InvalidOperation)
		return
	}

	if usage == driver.BufUsage_Unknown {
		f.setErr(driver.InvalidEnum)
		return
	}

	b := f.Buffers[id]
	b.Data = append([]byte(nil), data...)
	b.Usage = usage
	b.UploadCount++
}

func (f *Fake) GenVertexArray() uint32 {
	id := f.genId()
	f.VertexArrays[id] = &VertexArray{Id: id, Attribs: map[uint32]*Attrib{}}
	f.record("GenVertexArray", id)
	return id
}

func (f *Fake) DeleteVertexArray(id uint32) {

	f.record("DeleteVertexArray", id)
	vao, ok := f.VertexArrays[id]
	if !ok {
		return
	}

	vao.Deleted = true
	if f.BoundVao == id {
		f.BoundVao = 0
	}
}

func (f *Fake) BindVertexArray(id uint32) {

	f.record("BindVertexArray", id)

	if id != 0 {
		vao, ok := f.VertexArrays[id]
		if !ok || vao.Deleted {
			f.setErr(driver.InvalidOperation)
			return
		}
	}

	f.BoundVao = id
}

func (f *Fake) EnableVertexAttribArray(index uint32) {

	f.record("EnableVertexAttribArray", index)

	if f.BoundVao == 0 {
		f.setErr(driver.InvalidOperation)
		return
	}

	f.vaoAttrib(index).Enabled = true
}

func (f *Fake) VertexAttribPointer(index uint32, compCount int32, dataType driver.DataType, normalized bool, stride int32, offset uintptr) {

	f.record("VertexAttribPointer", index, compCount, dataType, normalized, stride, offset)

	if f.BoundVao == 0 || f.BoundBuffers[driver.BufTarget_Array] == 0 {
		f.setErr(driver.InvalidOperation)
		return
	}

	if compCount < 1 || compCount > 4 || stride < 0 {
		f.setErr(driver.InvalidValue)
		return
	}

	a := f.vaoAttrib(index)
	a.CompCount = compCount
	a.DataType = dataType
	a.Normalized = normalized
	a.Stride = stride
	a.Offset = offset
	a.Buffer = f.BoundBuffers[driver.BufTarget_Array]
}

func (f *Fake) vaoAttrib(index uint32) *Attrib {

	vao := f.VertexArrays[f.BoundVao]
	a, ok := vao.Attribs[index]
	if !ok {
		a = &Attrib{}
		vao.Attribs[index] = a
	}

	return a
}

func (f *Fake) CreateShader(shaderType driver.ShaderType) uint32 {

	f.record("CreateShader", shaderType)

	if shaderType != driver.ShaderType_Vertex && shaderType != driver.ShaderType_Fragment {
		f.setErr(driver.InvalidEnum)
		return 0
	}

	id := f.genId()
	f.Shaders[id] = &Shader{Id: id, Type: shaderType}
	return id
}

func (f *Fake) shader(id uint32) *Shader {

	s, ok := f.Shaders[id]
	if !ok || s.Deleted {
		f.setErr(driver.InvalidValue)
		return nil
	}

	return s
}

func (f *Fake) ShaderSource(id uint32, src string) {

	f.record("ShaderSource", id, src)
	if s := f.shader(id); s != nil {
		s.Source = src
	}
}

func (f *Fake) CompileShader(id uint32) {

	f.record("CompileShader", id)
	s := f.shader(id)
	if s == nil {
		return
	}

	compile := f.CompileFunc
	if compile == nil {
		compile = DefaultCompile
	}

	s.Compiled, s.Log = compile(s.Type, s.Source)
}

func (f *Fake) GetShaderiv(id uint32, param driver.ShaderParam) int32 {

	f.record("GetShaderiv", id, param)
	s := f.shader(id)
	if s == nil {
		return 0
	}

	switch param {
	case driver.ShaderParam_CompileStatus:
		if s.Compiled {
			return driver.True
		}
		return driver.False

	case driver.ShaderParam_InfoLogLength:
		return logLen(s.Log)

	default:
		f.setErr(driver.InvalidEnum)
		return 0
	}
}

func (f *Fake) GetShaderInfoLog(id uint32, logLength int32) string {

	f.record("GetShaderInfoLog", id, logLength)
	s := f.shader(id)
	if s == nil {
		return ""
	}

	return truncLog(s.Log, logLength)
}

func (f *Fake) DeleteShader(id uint32) {

	f.record("DeleteShader", id)

	// Deleting 0 is silently ignored by OpenGL
	if id == 0 {
		return
	}

	s, ok := f.Shaders[id]
	if !ok {
		f.setErr(driver.InvalidValue)
		return
	}

	s.DeleteCount++
	s.Deleted = true
}

func (f *Fake) CreateProgram() uint32 {

	id := f.genId()
	f.Programs[id] = &Program{
		Id:          id,
		UniformLocs: map[string]int32{},
		UniformVals: map[int32]any{},
	}

	f.record("CreateProgram", id)
	return id
}

func (f *Fake) program(id uint32) *Program {

	p, ok := f.Programs[id]
	if !ok || p.Deleted {
		f.setErr(driver.InvalidValue)
		return nil
	}

	return p
}

func (f *Fake) AttachShader(programId, shaderId uint32) {

	f.record("AttachShader", programId, shaderId)

	p := f.program(programId)
	if p == nil {
		return
	}

	if f.shader(shaderId) == nil {
		return
	}

	for _, attached := range p.Attached {
		if attached == shaderId {
			f.setErr(driver.InvalidOperation)
			return
		}
	}

	p.Attached = append(p.Attached, shaderId)
}

func (f *Fake) LinkProgram(programId uint32) {

	f.record("LinkProgram", programId)
	p := f.program(programId)
	if p == nil {
		return
	}

	p.Linked = false
	p.Validated = false
	p.UniformLocs = map[string]int32{}
	p.UniformVals = map[int32]any{}

	hasVert, hasFrag := false, false
	var sources []string
	for _, sid := range p.Attached {

		s := f.Shaders[sid]
		if !s.Compiled {
			p.Log = "error: linking with uncompiled/unspecialized " + s.Type.String() + " shader"
			return
		}

		hasVert = hasVert || s.Type == driver.ShaderType_Vertex
		hasFrag = hasFrag || s.Type == driver.ShaderType_Fragment
		sources = append(sources, s.Source)
	}

	if !hasVert || !hasFrag {
		p.Log = "error: program requires both a vertex and a fragment shader"
		return
	}

	var nextLoc int32
	for _, src := range sources {
		for _, m := range uniformDeclRegex.FindAllStringSubmatch(src, -1) {
			if _, ok := p.UniformLocs[m[1]]; !ok {
				p.UniformLocs[m[1]] = nextLoc
				nextLoc++
			}
		}
	}

	p.Log = ""
	p.Linked = true
}

func (f *Fake) ValidateProgram(programId uint32) {

	f.record("ValidateProgram", programId)
	p := f.program(programId)
	if p == nil {
		return
	}

	if !p.Linked {
		p.Validated = false
		p.Log = "error: program is not successfully linked"
		return
	}

	p.Validated = true
	if f.ValidateFunc != nil {
		p.Validated, p.Log = f.ValidateFunc(p)
	}
}

func (f *Fake) GetProgramiv(programId uint32, param driver.ProgramParam) int32 {

	f.record("GetProgramiv", programId, param)
	p := f.program(programId)
	if p == nil {
		return 0
	}

	switch param {
	case driver.ProgramParam_LinkStatus:
		return boolToGl(p.Linked)
	case driver.ProgramParam_ValidateStatus:
		return boolToGl(p.Validated)
	case driver.ProgramParam_InfoLogLength:
		return logLen(p.Log)
	default:
		f.setErr(driver.InvalidEnum)
		return 0
	}
}

func (f *Fake) GetProgramInfoLog(programId uint32, logLength int32) string {

	f.record("GetProgramInfoLog", programId, logLength)
	p := f.program(programId)
	if p == nil {
		return ""
	}

	return truncLog(p.Log, logLength)
}

func (f *Fake) DeleteProgram(programId uint32) {

	f.record("DeleteProgram", programId)
	if programId == 0 {
		return
	}

	p, ok := f.Programs[programId]
	if !ok {
		f.setErr(driver.InvalidValue)
		return
	}

	p.Deleted = true
	if f.CurrentProgram == programId {
		f.CurrentProgram = 0
	}
}

func (f *Fake) UseProgram(programId uint32) {

	f.record("UseProgram", programId)

	if programId != 0 {

		p := f.program(programId)
		if p == nil {
			return
		}

		if !p.Linked {
			f.setErr(driver.InvalidOperation)
			return
		}
	}

	f.CurrentProgram = programId
}

func (f *Fake) GetUniformLocation(programId uint32, name string) int32 {

	f.record("GetUniformLocation", programId, name)
	p := f.program(programId)
	if p == nil {
		return -1
	}

	if !p.Linked {
		f.setErr(driver.InvalidOperation)
		return -1
	}

	loc, ok := p.UniformLocs[name]
	if !ok {
		return -1
	}

	return loc
}

func (f *Fake) setUniform(name string, programId uint32, loc int32, v any) {

	f.record(name, programId, loc, v)

	// Location -1 is silently ignored
	if loc == -1 {
		return
	}

	p := f.program(programId)
	if p == nil {
		return
	}

	found := false
	for _, l := range p.UniformLocs {
		if l == loc {
			found = true
			break
		}
	}

	if !found {
		f.setErr(driver.InvalidOperation)
		return
	}

	p.UniformVals[loc] = v
}

func (f *Fake) ProgramUniform1i(programId uint32, loc int32, v int32) {
	f.setUniform("ProgramUniform1i", programId, loc, v)
}

func (f *Fake) ProgramUniform1f(programId uint32, loc int32, v float32) {
	f.setUniform("ProgramUniform1f", programId, loc, v)
}

func (f *Fake) ProgramUniform2fv(programId uint32, loc int32, v *[2]float32) {
	f.setUniform("ProgramUniform2fv", programId, loc, *v)
}

func (f *Fake) ProgramUniform3fv(programId uint32, loc int32, v *[3]float32) {
	f.setUniform("ProgramUniform3fv", programId, loc, *v)
}

func (f *Fake) ProgramUniform4fv(programId uint32, loc int32, v *[4]float32) {
	f.setUniform("ProgramUniform4fv", programId, loc, *v)
}

func (f *Fake) ProgramUniformMatrix4fv(programId uint32, loc int32, m *[4][4]float32) {
	f.setUniform("ProgramUniformMatrix4fv", programId, loc, *m)
}

func (f *Fake) Viewport(x, y, width, height int32) {

	f.record("Viewport", x, y, width, height)
	if width < 0 || height < 0 {
		f.setErr(driver.InvalidValue)
		return
	}

	f.ViewportVal = [4]int32{x, y, width, height}
}

func (f *Fake) ClearColor(r, g, b, a float32) {
	f.record("ClearColor", r, g, b, a)
	f.ClearColorVal = [4]float32{r, g, b, a}
}

func (f *Fake) Clear(mask driver.ClearMask) {

	f.record("Clear", mask)
	if mask == 0 || mask&^(driver.ClearMask_Color|driver.ClearMask_Depth|driver.ClearMask_Stencil) != 0 {
		f.setErr(driver.InvalidValue)
		return
	}

	f.ClearCount++
}

func (f *Fake) canDraw(mode driver.Primitive, count int32) bool {

	if mode < driver.Primitive_Points || mode > driver.Primitive_TriangleStrip {
		f.setErr(driver.InvalidEnum)
		return false
	}

	if count < 0 {
		f.setErr(driver.InvalidValue)
		return false
	}

	if f.BoundVao == 0 || f.CurrentProgram == 0 {
		f.setErr(driver.InvalidOperation)
		return false
	}

	return true
}

func (f *Fake) DrawArrays(mode driver.Primitive, first, count int32) {

	f.record("DrawArrays", mode, first, count)
	if !f.canDraw(mode, count) {
		return
	}

	f.Draws = append(f.Draws, Draw{
		Mode:    mode,
		First:   first,
		Count:   count,
		Program: f.CurrentProgram,
		Vao:     f.BoundVao,
	})
}

func (f *Fake) DrawElements(mode driver.Primitive, count int32, indexType driver.DataType, offset uintptr) {

	f.record("DrawElements", mode, count, indexType, offset)
	if !f.canDraw(mode, count) {
		return
	}

	ebo := f.VertexArrays[f.BoundVao].ElementBuffer
	if ebo == 0 {
		f.setErr(driver.InvalidOperation)
		return
	}

	// Only 32-bit indices are produced by learngl
	if indexType != driver.DataType_Uint32 {
		f.setErr(driver.InvalidEnum)
		return
	}

	if int(offset)+int(count)*4 > len(f.Buffers[ebo].Data) {
		f.setErr(driver.InvalidOperation)
		return
	}

	f.Draws = append(f.Draws, Draw{
		Mode:      mode,
		First:     int32(offset / 4),
		Count:     count,
		Indexed:   true,
		IndexType: indexType,
		Program:   f.CurrentProgram,
		Vao:       f.BoundVao,
	})
}

func (f *Fake) GetError() driver.ErrorCode {
	e := f.errFlag
	f.errFlag = driver.NoError
	return e
}

func (f *Fake) GetString(name driver.StringName) string {

	switch name {
	case driver.StringName_Version:
		return "4.1 drivertest"
	case driver.StringName_Vendor:
		return "learngl"
	case driver.StringName_Renderer:
		return "drivertest.Fake"
	case driver.StringName_ShadingLanguageVersion:
		return "4.10"
	default:
		f.setErr(driver.InvalidEnum)
		return ""
	}
}

// logLen mirrors GL_INFO_LOG_LENGTH, which counts the null terminator and is 0 for an empty log
func logLen(log string) int32 {

	if log == "" {
		return 0
	}

	return int32(len(log)) + 1
}

func truncLog(log string, bufSize int32) string {

	if bufSize <= 1 {
		return ""
	}

	if int(bufSize-1) < len(log) {
		return log[:bufSize-1]
	}

	return log
}

func boolToGl(b bool) int32 {
	if b {
		return driver.True
	}
	return driver.False
}
