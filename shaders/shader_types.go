package shaders

import (
	"errors"
	"fmt"

	"github.com/bloeys/learngl/driver"
)

var (
	ErrCreateShader  = errors.New("failed to create OpenGL shader")
	ErrCreateProgram = errors.New("failed to create shader program")
)

// CompileError is returned when the driver rejects the source of one stage
type CompileError struct {
	Type driver.ShaderType
	// Log is the info log the driver produced for the failed compilation
	Log string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader: %s", e.Type, e.Log)
}

type LinkError struct {
	ProgramId uint32
	Log       string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("failed to link shader program with id %d: %s", e.ProgramId, e.Log)
}
