package buffers

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/bloeys/learngl/driver"
	"github.com/bloeys/learngl/driver/drivertest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	quadPositions = []float32{
		-0.5, -0.5,
		0.5, -0.5,
		0.5, 0.5,
		-0.5, 0.5,
	}

	quadIndices = []uint32{
		0, 1, 2,
		2, 3, 0,
	}
)

func TestNewVertexBuffer(t *testing.T) {

	d := drivertest.NewFake()
	vb := NewVertexBufferF32(d, quadPositions, Element{ElementType: DataTypeVec2})

	require.NotZero(t, vb.Id)
	assert.Equal(t, 1, d.CallCount("GenBuffer"))
	assert.Equal(t, 1, d.CallCount("BufferData"))
	assert.Equal(t, len(quadPositions)*4, vb.Size())
	assert.Equal(t, vb.Id, d.BoundBuffers[driver.BufTarget_Array])

	buf := d.Buffers[vb.Id]
	assert.Equal(t, driver.BufUsage_Static_Draw, buf.Usage)
	require.Len(t, buf.Data, len(quadPositions)*4)

	for i, want := range quadPositions {
		got := math.Float32frombits(binary.NativeEndian.Uint32(buf.Data[i*4:]))
		assert.Equal(t, want, got, "float at index %d", i)
	}

	assert.Equal(t, driver.NoError, d.GetError())
}

func TestNewVertexBufferRawBytes(t *testing.T) {

	d := drivertest.NewFake()
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	vb := NewVertexBuffer(d, data)

	assert.Equal(t, 8, vb.Size())
	assert.Equal(t, data, d.Buffers[vb.Id].Data)
	assert.Equal(t, int32(0), vb.Stride)
}

func TestVertexBufferLayout(t *testing.T) {

	d := drivertest.NewFake()
	vb := NewVertexBufferF32(d, nil,
		Element{ElementType: DataTypeVec3},
		Element{ElementType: DataTypeVec2},
		Element{ElementType: DataTypeFloat32},
	)

	assert.Equal(t, int32(3*4+2*4+4), vb.Stride)

	layout := vb.GetLayout()
	require.Len(t, layout, 3)
	assert.Equal(t, 0, layout[0].Offset)
	assert.Equal(t, 12, layout[1].Offset)
	assert.Equal(t, 20, layout[2].Offset)

	// GetLayout returns a copy
	layout[0].Offset = 99
	assert.Equal(t, 0, vb.GetLayout()[0].Offset)
}

func TestIndexBufferCount(t *testing.T) {

	d := drivertest.NewFake()
	ib := NewIndexBuffer(d, quadIndices)

	assert.Equal(t, int32(6), ib.Count())
	assert.Len(t, d.Buffers[ib.Id].Data, 6*4)
	assert.Equal(t, driver.BufUsage_Static_Draw, d.Buffers[ib.Id].Usage)

	ib.Bind()
	ib.UnBind()
	ib.Bind()
	ib.Bind()
	ib.UnBind()

	assert.Equal(t, int32(6), ib.Count())
	assert.Equal(t, driver.NoError, d.GetError())
}

func TestUnBindIsIdempotent(t *testing.T) {

	d := drivertest.NewFake()
	vb := NewVertexBufferF32(d, quadPositions, Element{ElementType: DataTypeVec2})
	ib := NewIndexBuffer(d, quadIndices)

	// Never explicitly bound wrappers created elsewhere
	otherVb := &VertexBuffer{Id: vb.Id, drv: d}
	otherVb.UnBind()
	otherVb.UnBind()

	vb.UnBind()
	vb.UnBind()
	ib.UnBind()
	ib.UnBind()

	assert.Zero(t, d.BoundBuffers[driver.BufTarget_Array])
	assert.Zero(t, d.BoundBuffers[driver.BufTarget_ElementArray])
	assert.Equal(t, driver.NoError, d.GetError())
	assert.Equal(t, 2, d.LiveBuffers())
}

func TestDeleteOnlyOnce(t *testing.T) {

	d := drivertest.NewFake()
	vb := NewVertexBufferF32(d, quadPositions, Element{ElementType: DataTypeVec2})
	ib := NewIndexBuffer(d, quadIndices)

	vbId, ibId := vb.Id, ib.Id

	vb.Delete()
	vb.Delete()
	ib.Delete()
	ib.Delete()

	assert.Zero(t, vb.Id)
	assert.Zero(t, ib.Id)
	assert.Equal(t, 1, d.Buffers[vbId].DeleteCount)
	assert.Equal(t, 1, d.Buffers[ibId].DeleteCount)
	assert.Equal(t, 0, d.LiveBuffers())

	// Count is unaffected by deletion
	assert.Equal(t, int32(6), ib.Count())

	// Handles are never reused
	vb2 := NewVertexBufferF32(d, quadPositions)
	assert.NotEqual(t, vbId, vb2.Id)
	assert.NotEqual(t, ibId, vb2.Id)
}

func TestVertexArray(t *testing.T) {

	d := drivertest.NewFake()
	vao := NewVertexArray(d)
	require.NotZero(t, vao.Id)

	posVb := NewVertexBufferF32(d, quadPositions, Element{ElementType: DataTypeVec2})
	colorVb := NewVertexBufferF32(d, make([]float32, 4*4), Element{ElementType: DataTypeVec4})
	ib := NewIndexBuffer(d, quadIndices)

	vao.AddVertexBuffer(posVb)
	vao.AddVertexBuffer(colorVb)
	vao.SetIndexBuffer(ib)

	require.Equal(t, driver.NoError, d.GetError())

	fakeVao := d.VertexArrays[vao.Id]
	require.Len(t, fakeVao.Attribs, 2)

	pos := fakeVao.Attribs[0]
	assert.True(t, pos.Enabled)
	assert.Equal(t, int32(2), pos.CompCount)
	assert.Equal(t, driver.DataType_Float32, pos.DataType)
	assert.Equal(t, int32(8), pos.Stride)
	assert.Equal(t, uintptr(0), pos.Offset)
	assert.Equal(t, posVb.Id, pos.Buffer)

	color := fakeVao.Attribs[1]
	assert.Equal(t, int32(4), color.CompCount)
	assert.Equal(t, int32(16), color.Stride)
	assert.Equal(t, colorVb.Id, color.Buffer)

	assert.Equal(t, ib.Id, fakeVao.ElementBuffer)
	assert.Same(t, ib, vao.IndexBuffer)

	vao.UnBind()
	vao.Delete()
	vao.Delete()
	assert.Zero(t, vao.Id)
	assert.Equal(t, 1, d.CallCount("DeleteVertexArray"))

	// Buffers are not owned by the vao
	assert.Equal(t, 3, d.LiveBuffers())
}

func TestElementType(t *testing.T) {

	tests := []struct {
		et        ElementType
		compCount int32
		size      int32
		drvType   driver.DataType
		str       string
	}{
		{DataTypeUint32, 1, 4, driver.DataType_Uint32, "uint32"},
		{DataTypeInt32, 1, 4, driver.DataType_Int32, "int32"},
		{DataTypeFloat32, 1, 4, driver.DataType_Float32, "float32"},
		{DataTypeVec2, 2, 8, driver.DataType_Float32, "Vec2"},
		{DataTypeVec3, 3, 12, driver.DataType_Float32, "Vec3"},
		{DataTypeVec4, 4, 16, driver.DataType_Float32, "Vec4"},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			assert.Equal(t, tt.compCount, tt.et.CompCount())
			assert.Equal(t, tt.size, tt.et.Size())
			assert.Equal(t, tt.drvType, tt.et.DriverType())
			assert.Equal(t, tt.str, tt.et.String())
		})
	}

	assert.Panics(t, func() { DataTypeUnknown.CompCount() })
}
