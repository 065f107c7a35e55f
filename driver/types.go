package driver

import "fmt"

type BufTarget int32

const (
	BufTarget_Unknown BufTarget = iota
	// Vertex attribute source (GL_ARRAY_BUFFER)
	BufTarget_Array
	// Index source (GL_ELEMENT_ARRAY_BUFFER)
	BufTarget_ElementArray
)

func (t BufTarget) String() string {
	switch t {
	case BufTarget_Array:
		return "array"
	case BufTarget_ElementArray:
		return "element_array"
	default:
		return "unknown"
	}
}

type BufUsage int

// Full docs for buffer usage can be found here: https://registry.khronos.org/OpenGL-Refpages/gl4/html/glBufferData.xhtml
const (
	BufUsage_Unknown BufUsage = iota

	//Buffer is set only once and used many times
	BufUsage_Static_Draw
	//Buffer is changed a lot and used many times
	BufUsage_Dynamic_Draw
	//Buffer is set only once and used by the GPU at most a few times
	BufUsage_Stream_Draw

	BufUsage_Static_Read
	BufUsage_Dynamic_Read
	BufUsage_Stream_Read

	BufUsage_Static_Copy
	BufUsage_Dynamic_Copy
	BufUsage_Stream_Copy
)

type ShaderType int32

const (
	ShaderType_Unknown ShaderType = iota
	ShaderType_Vertex
	ShaderType_Fragment
)

func (s ShaderType) String() string {
	switch s {
	case ShaderType_Vertex:
		return "vertex"
	case ShaderType_Fragment:
		return "fragment"
	default:
		return fmt.Sprintf("unknown(%d)", int32(s))
	}
}

type ShaderParam int32

const (
	ShaderParam_CompileStatus ShaderParam = iota + 1
	ShaderParam_InfoLogLength
)

type ProgramParam int32

const (
	ProgramParam_LinkStatus ProgramParam = iota + 1
	ProgramParam_ValidateStatus
	ProgramParam_InfoLogLength
)

// DataType is the type of a vertex attribute component or of an index
type DataType int32

const (
	DataType_Unknown DataType = iota
	DataType_Float32
	DataType_Int32
	DataType_Uint32
)

func (dt DataType) String() string {
	switch dt {
	case DataType_Float32:
		return "float32"
	case DataType_Int32:
		return "int32"
	case DataType_Uint32:
		return "uint32"
	default:
		return "unknown"
	}
}

type Primitive int32

const (
	Primitive_Unknown Primitive = iota
	Primitive_Points
	Primitive_Lines
	Primitive_Triangles
	Primitive_TriangleStrip
)

type ClearMask uint32

const (
	ClearMask_Color ClearMask = 1 << iota
	ClearMask_Depth
	ClearMask_Stencil
)

type StringName int32

const (
	StringName_Version StringName = iota + 1
	StringName_Vendor
	StringName_Renderer
	StringName_ShadingLanguageVersion
)

// Boolean values returned by the Get*iv status queries
const (
	False int32 = 0
	True  int32 = 1
)
