package gl41

import (
	"github.com/bloeys/learngl/assert"
	"github.com/bloeys/learngl/driver"
	"github.com/go-gl/gl/v4.1-core/gl"
)

func bufTargetToGl(t driver.BufTarget) uint32 {

	switch t {
	case driver.BufTarget_Array:
		return gl.ARRAY_BUFFER
	case driver.BufTarget_ElementArray:
		return gl.ELEMENT_ARRAY_BUFFER
	}

	assert.T(false, "Unexpected BufTarget value '%v'", t)
	return 0
}

func bufUsageToGl(b driver.BufUsage) uint32 {

	switch b {
	case driver.BufUsage_Static_Draw:
		return gl.STATIC_DRAW
	case driver.BufUsage_Dynamic_Draw:
		return gl.DYNAMIC_DRAW
	case driver.BufUsage_Stream_Draw:
		return gl.STREAM_DRAW

	case driver.BufUsage_Static_Read:
		return gl.STATIC_READ
	case driver.BufUsage_Dynamic_Read:
		return gl.DYNAMIC_READ
	case driver.BufUsage_Stream_Read:
		return gl.STREAM_READ

	case driver.BufUsage_Static_Copy:
		return gl.STATIC_COPY
	case driver.BufUsage_Dynamic_Copy:
		return gl.DYNAMIC_COPY
	case driver.BufUsage_Stream_Copy:
		return gl.STREAM_COPY
	}

	assert.T(false, "Unexpected BufUsage value '%v'", b)
	return 0
}

func shaderTypeToGl(s driver.ShaderType) uint32 {

	switch s {
	case driver.ShaderType_Vertex:
		return gl.VERTEX_SHADER
	case driver.ShaderType_Fragment:
		return gl.FRAGMENT_SHADER
	}

	assert.T(false, "Unknown shader type '%d'", s)
	return 0
}

func dataTypeToGl(dt driver.DataType) uint32 {

	switch dt {
	case driver.DataType_Float32:
		return gl.FLOAT
	case driver.DataType_Int32:
		return gl.INT
	case driver.DataType_Uint32:
		return gl.UNSIGNED_INT
	}

	assert.T(false, "Unknown data type '%d'", dt)
	return 0
}

func primitiveToGl(p driver.Primitive) uint32 {

	switch p {
	case driver.Primitive_Points:
		return gl.POINTS
	case driver.Primitive_Lines:
		return gl.LINES
	case driver.Primitive_Triangles:
		return gl.TRIANGLES
	case driver.Primitive_TriangleStrip:
		return gl.TRIANGLE_STRIP
	}

	assert.T(false, "Unknown primitive '%d'", p)
	return 0
}
