package materials

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/learngl/assert"
	"github.com/bloeys/learngl/driver"
	"github.com/bloeys/learngl/logging"
	"github.com/bloeys/learngl/shaders"
)

var (
	lastMatId uint32
)

type Material struct {
	Id         uint32
	Name       string
	ShaderProg *shaders.ShaderProgram

	UnifLocs map[string]int32

	drv driver.Driver
}

func (m *Material) Bind() {
	m.ShaderProg.Bind()
}

func (m *Material) UnBind() {
	m.ShaderProg.UnBind()
}

// GetUnifLoc returns the cached location of a uniform, asking the driver only the first time
func (m *Material) GetUnifLoc(uniformName string) int32 {

	loc, ok := m.UnifLocs[uniformName]
	if !ok {
		loc = m.ShaderProg.GetUniformLocation(uniformName)
		m.UnifLocs[uniformName] = loc
	}

	assert.T(loc != -1, "Uniform '%s' doesn't exist on material %s", uniformName, m.Name)
	return loc
}

// HasUnif reports whether the program has an active uniform with this name. Unlike GetUnifLoc
// a missing uniform is not an error. Drivers strip unused uniforms, so shaders being edited often hit this.
// Misses are cached as -1 like hits.
func (m *Material) HasUnif(uniformName string) bool {

	loc, ok := m.UnifLocs[uniformName]
	if !ok {
		loc = m.ShaderProg.GetUniformLocation(uniformName)
		m.UnifLocs[uniformName] = loc
	}

	return loc != -1
}

func (m *Material) SetUnifInt32(uniformName string, val int32) {
	m.drv.ProgramUniform1i(m.ShaderProg.Id, m.GetUnifLoc(uniformName), val)
}

func (m *Material) SetUnifFloat32(uniformName string, val float32) {
	m.drv.ProgramUniform1f(m.ShaderProg.Id, m.GetUnifLoc(uniformName), val)
}

func (m *Material) SetUnifVec2(uniformName string, vec2 *gglm.Vec2) {
	m.drv.ProgramUniform2fv(m.ShaderProg.Id, m.GetUnifLoc(uniformName), &vec2.Data)
}

func (m *Material) SetUnifVec3(uniformName string, vec3 *gglm.Vec3) {
	m.drv.ProgramUniform3fv(m.ShaderProg.Id, m.GetUnifLoc(uniformName), &vec3.Data)
}

func (m *Material) SetUnifVec4(uniformName string, vec4 *gglm.Vec4) {
	m.drv.ProgramUniform4fv(m.ShaderProg.Id, m.GetUnifLoc(uniformName), &vec4.Data)
}

func (m *Material) SetUnifMat4(uniformName string, mat4 *gglm.Mat4) {
	m.drv.ProgramUniformMatrix4fv(m.ShaderProg.Id, m.GetUnifLoc(uniformName), &mat4.Data)
}

func (m *Material) Delete() {
	m.ShaderProg.Delete()
}

func getNewMatId() uint32 {
	lastMatId++
	return lastMatId
}

func newMaterial(d driver.Driver, matName string, shdrProg *shaders.ShaderProgram) Material {
	return Material{
		Id:         getNewMatId(),
		Name:       matName,
		ShaderProg: shdrProg,
		UnifLocs:   make(map[string]int32),
		drv:        d,
	}
}

func NewMaterial(d driver.Driver, matName, shaderPath string) (Material, error) {

	shdrProg, err := shaders.LoadAndCompileCombinedShader(d, shaderPath)
	if err != nil {
		logging.ErrLog.Printf("Failed to create new material '%s'. Err: %s\n", matName, err.Error())
		return Material{}, err
	}

	return newMaterial(d, matName, shdrProg), nil
}

func NewMaterialSrc(d driver.Driver, matName string, shaderSrc []byte) (Material, error) {

	shdrProg, err := shaders.LoadAndCompileCombinedShaderSrc(d, shaderSrc)
	if err != nil {
		logging.ErrLog.Printf("Failed to create new material '%s'. Err: %s\n", matName, err.Error())
		return Material{}, err
	}

	return newMaterial(d, matName, shdrProg), nil
}
