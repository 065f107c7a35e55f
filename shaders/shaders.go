package shaders

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/bloeys/learngl/driver"
	"github.com/bloeys/learngl/logging"
)

// Shader is a single compiled stage. It only lives until it is linked into a program.
type Shader struct {
	Id   uint32
	Type driver.ShaderType
	drv  driver.Driver
}

func (s *Shader) Delete() {

	if s.Id == 0 {
		return
	}

	s.drv.DeleteShader(s.Id)
	s.Id = 0
}

func NewShaderProgram(d driver.Driver) (*ShaderProgram, error) {

	id := d.CreateProgram()
	if id == 0 {
		return nil, ErrCreateProgram
	}

	return &ShaderProgram{Id: id, drv: d}, nil
}

func LoadAndCompileCombinedShader(d driver.Driver, shaderPath string) (*ShaderProgram, error) {

	src, err := ParseShaderFile(shaderPath)
	if err != nil {
		logging.ErrLog.Println("Failed to read shader. Err: ", err)
		return nil, err
	}

	return CreateShader(d, src)
}

func LoadAndCompileCombinedShaderSrc(d driver.Driver, shaderSrc []byte) (*ShaderProgram, error) {

	src, err := ParseShader(bytes.NewReader(shaderSrc))
	if err != nil {
		return nil, err
	}

	return CreateShader(d, src)
}

// CreateShader compiles both stages of src and links them into a new program.
//
// Both stages are always compiled so that every broken stage gets reported, but if any of them fails
// nothing is linked, all intermediate objects are released and the compile errors are returned.
// The stage objects never outlive this call.
func CreateShader(d driver.Driver, src ShaderProgramSource) (*ShaderProgram, error) {

	shdrProg, err := NewShaderProgram(d)
	if err != nil {
		return nil, err
	}

	vs, vsErr := CompileShader(d, driver.ShaderType_Vertex, src.VertexSource)
	fs, fsErr := CompileShader(d, driver.ShaderType_Fragment, src.FragmentSource)
	if vsErr != nil || fsErr != nil {
		vs.Delete()
		fs.Delete()
		shdrProg.Delete()
		return nil, errors.Join(vsErr, fsErr)
	}

	shdrProg.AttachShader(vs)
	shdrProg.AttachShader(fs)

	err = shdrProg.Link()
	if err != nil {
		return nil, err
	}

	return shdrProg, nil
}

// CompileShader compiles one stage.
//
// On failure the driver log is written to logging.ErrLog, the shader object is deleted, and
// a Shader with Id=0 is returned along with a *CompileError holding the log.
func CompileShader(d driver.Driver, shaderType driver.ShaderType, shaderSource string) (Shader, error) {

	shaderId := d.CreateShader(shaderType)
	if shaderId == 0 {
		return Shader{}, fmt.Errorf("%w of type %s. OpenGL Error=%s", ErrCreateShader, shaderType, d.GetError())
	}

	d.ShaderSource(shaderId, shaderSource)
	d.CompileShader(shaderId)

	if err := getShaderCompileErrors(d, shaderId, shaderType); err != nil {
		d.DeleteShader(shaderId)
		return Shader{}, err
	}

	return Shader{Id: shaderId, Type: shaderType, drv: d}, nil
}

func getShaderCompileErrors(d driver.Driver, shaderId uint32, shaderType driver.ShaderType) error {

	if d.GetShaderiv(shaderId, driver.ShaderParam_CompileStatus) == driver.True {
		return nil
	}

	logLength := d.GetShaderiv(shaderId, driver.ShaderParam_InfoLogLength)
	errMsg := d.GetShaderInfoLog(shaderId, logLength)

	logging.ErrLog.Printf("Failed to compile %s shader\n%s\n", shaderType, errMsg)
	return &CompileError{Type: shaderType, Log: errMsg}
}
