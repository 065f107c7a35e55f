package driver

import "fmt"

// ErrorCode is a driver error flag. The values match the OpenGL ones, so the
// real driver can pass glGetError results through untouched.
type ErrorCode uint32

const (
	NoError                     ErrorCode = 0
	InvalidEnum                 ErrorCode = 0x0500
	InvalidValue                ErrorCode = 0x0501
	InvalidOperation            ErrorCode = 0x0502
	OutOfMemory                 ErrorCode = 0x0505
	InvalidFramebufferOperation ErrorCode = 0x0506
)

func (e ErrorCode) String() string {
	switch e {
	case NoError:
		return "GL_NO_ERROR"
	case InvalidEnum:
		return "GL_INVALID_ENUM"
	case InvalidValue:
		return "GL_INVALID_VALUE"
	case InvalidOperation:
		return "GL_INVALID_OPERATION"
	case OutOfMemory:
		return "GL_OUT_OF_MEMORY"
	case InvalidFramebufferOperation:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	default:
		return fmt.Sprintf("GL_ERROR(0x%04X)", uint32(e))
	}
}

// Error is returned by CheckError when the driver reported a non-zero error flag
type Error struct {
	Code ErrorCode
}

func (e *Error) Error() string {
	return "driver reported error " + e.Code.String()
}

// CheckError drains a single error flag from the driver and returns it as a Go error,
// or nil if the driver reports NoError.
func CheckError(d Driver) error {

	code := d.GetError()
	if code == NoError {
		return nil
	}

	return &Error{Code: code}
}
