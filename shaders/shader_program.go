package shaders

import (
	"github.com/bloeys/learngl/driver"
	"github.com/bloeys/learngl/logging"
)

type ShaderProgram struct {
	Id uint32
	// Stage ids are only set between AttachShader and Link
	VertShaderId uint32
	FragShaderId uint32
	drv          driver.Driver
}

func (sp *ShaderProgram) AttachShader(shader Shader) {

	sp.drv.AttachShader(sp.Id, shader.Id)
	switch shader.Type {
	case driver.ShaderType_Vertex:
		sp.VertShaderId = shader.Id
	case driver.ShaderType_Fragment:
		sp.FragShaderId = shader.Id
	default:
		logging.ErrLog.Panicf("Unknown shader type '%d' for shader id '%d'\n", shader.Type, shader.Id)
	}
}

// Link links and validates the program, then deletes the attached stages since the linked
// program keeps what it needs from them.
//
// A failed link deletes the program and returns a *LinkError. A failed validation is only
// logged, as its result depends on whatever state is bound at the time.
func (sp *ShaderProgram) Link() error {

	sp.drv.LinkProgram(sp.Id)
	sp.drv.ValidateProgram(sp.Id)

	if sp.VertShaderId != 0 {
		sp.drv.DeleteShader(sp.VertShaderId)
		sp.VertShaderId = 0
	}

	if sp.FragShaderId != 0 {
		sp.drv.DeleteShader(sp.FragShaderId)
		sp.FragShaderId = 0
	}

	if sp.drv.GetProgramiv(sp.Id, driver.ProgramParam_LinkStatus) != driver.True {

		linkErr := &LinkError{ProgramId: sp.Id, Log: sp.infoLog()}
		logging.ErrLog.Println(linkErr.Error())

		sp.Delete()
		return linkErr
	}

	if sp.drv.GetProgramiv(sp.Id, driver.ProgramParam_ValidateStatus) != driver.True {
		logging.WarnLog.Printf("Validation of shader program with id %d failed. Log: %s\n", sp.Id, sp.infoLog())
	}

	return nil
}

func (sp *ShaderProgram) infoLog() string {
	logLength := sp.drv.GetProgramiv(sp.Id, driver.ProgramParam_InfoLogLength)
	return sp.drv.GetProgramInfoLog(sp.Id, logLength)
}

// Bind makes this the program used by the following draw calls
func (sp *ShaderProgram) Bind() {
	sp.drv.UseProgram(sp.Id)
}

func (sp *ShaderProgram) UnBind() {
	sp.drv.UseProgram(0)
}

// GetUniformLocation returns the location of the named uniform, or -1 if the program has no active uniform with that name.
// Locations stay valid for the lifetime of the program so callers usually cache them.
func (sp *ShaderProgram) GetUniformLocation(name string) int32 {
	return sp.drv.GetUniformLocation(sp.Id, name)
}

func (sp *ShaderProgram) Delete() {

	if sp.Id == 0 {
		return
	}

	sp.drv.DeleteProgram(sp.Id)
	sp.Id = 0
}
