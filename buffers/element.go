package buffers

import (
	"github.com/bloeys/learngl/assert"
	"github.com/bloeys/learngl/driver"
)

// Element represents an element that makes up a vertex (e.g. Vec2 position at an offset of 0 bytes)
type Element struct {
	Offset int
	ElementType
}

// ElementType is the type of an element thats makes up a vertex (e.g. Vec3)
type ElementType uint8

const (
	DataTypeUnknown ElementType = iota

	DataTypeUint32
	DataTypeInt32
	DataTypeFloat32

	DataTypeVec2
	DataTypeVec3
	DataTypeVec4
)

// DriverType returns the type of a single component of the element as understood by the driver
func (dt ElementType) DriverType() driver.DataType {

	switch dt {

	case DataTypeUint32:
		return driver.DataType_Uint32
	case DataTypeInt32:
		return driver.DataType_Int32
	case DataTypeFloat32:
		fallthrough

	case DataTypeVec2:
		fallthrough
	case DataTypeVec3:
		fallthrough
	case DataTypeVec4:
		return driver.DataType_Float32

	default:
		assert.T(false, "Unknown data type passed. DataType '%d'", dt)
		return driver.DataType_Unknown
	}
}

// CompCount returns the number of components in the element (e.g. for Vec2 its 2)
func (dt ElementType) CompCount() int32 {

	switch dt {
	case DataTypeUint32:
		fallthrough
	case DataTypeFloat32:
		fallthrough
	case DataTypeInt32:
		return 1

	case DataTypeVec2:
		return 2
	case DataTypeVec3:
		return 3
	case DataTypeVec4:
		return 4

	default:
		assert.T(false, "Unknown data type passed. DataType '%d'", dt)
		return 0
	}
}

// Size returns the total size in bytes (e.g. for vec3 its 3*4=12 bytes)
func (dt ElementType) Size() int32 {
	// All supported components are 4 bytes
	return dt.CompCount() * 4
}

func (dt ElementType) String() string {

	switch dt {

	case DataTypeUint32:
		return "uint32"
	case DataTypeFloat32:
		return "float32"
	case DataTypeInt32:
		return "int32"

	case DataTypeVec2:
		return "Vec2"
	case DataTypeVec3:
		return "Vec3"
	case DataTypeVec4:
		return "Vec4"

	default:
		return "Unknown"
	}
}
