package rend3dgl

import (
	"testing"

	"github.com/bloeys/learngl/buffers"
	"github.com/bloeys/learngl/driver"
	"github.com/bloeys/learngl/driver/drivertest"
	"github.com/bloeys/learngl/materials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const basicShader = `#shader vertex
#version 410 core
layout(location = 0) in vec4 position;
void main()
{
    gl_Position = position;
}
#shader fragment
#version 410 core
layout(location = 0) out vec4 color;
uniform vec4 u_Color;
void main()
{
    color = u_Color;
}
`

func newQuad(t *testing.T, d driver.Driver) (materials.Material, *buffers.VertexArray) {

	mat, err := materials.NewMaterialSrc(d, "basic", []byte(basicShader))
	require.NoError(t, err)

	vao := buffers.NewVertexArray(d)
	vao.AddVertexBuffer(buffers.NewVertexBufferF32(d,
		[]float32{
			-0.5, -0.5,
			0.5, -0.5,
			0.5, 0.5,
			-0.5, 0.5,
		},
		buffers.Element{ElementType: buffers.DataTypeVec2},
	))
	vao.SetIndexBuffer(buffers.NewIndexBuffer(d, []uint32{0, 1, 2, 2, 3, 0}))

	return mat, vao
}

func TestDrawIndexed(t *testing.T) {

	d := drivertest.NewFake()
	mat, vao := newQuad(t, d)
	r := NewRend3DGL(d)

	r.Clear(0, 0, 0, 1)
	r.DrawIndexed(mat, vao)
	require.NoError(t, r.Err())

	assert.Equal(t, 1, d.ClearCount)
	assert.Equal(t, [4]float32{0, 0, 0, 1}, d.ClearColorVal)

	require.Len(t, d.Draws, 1)
	draw := d.Draws[0]
	assert.True(t, draw.Indexed)
	assert.Equal(t, int32(6), draw.Count)
	assert.Equal(t, driver.Primitive_Triangles, draw.Mode)
	assert.Equal(t, driver.DataType_Uint32, draw.IndexType)
	assert.Equal(t, mat.ShaderProg.Id, draw.Program)
	assert.Equal(t, vao.Id, draw.Vao)
}

func TestDrawVertexArray(t *testing.T) {

	d := drivertest.NewFake()
	mat, vao := newQuad(t, d)
	r := NewRend3DGL(d)

	r.DrawVertexArray(mat, vao, 0, 3)
	require.NoError(t, r.Err())

	require.Len(t, d.Draws, 1)
	assert.False(t, d.Draws[0].Indexed)
	assert.Equal(t, int32(3), d.Draws[0].Count)
}

func TestRedundantBindsAreSkipped(t *testing.T) {

	d := drivertest.NewFake()
	mat, vao := newQuad(t, d)
	r := NewRend3DGL(d)

	vaoBindsBefore := d.CallCount("BindVertexArray")
	for i := 0; i < 5; i++ {
		r.DrawIndexed(mat, vao)
	}

	require.NoError(t, r.Err())
	assert.Len(t, d.Draws, 5)
	assert.Equal(t, 1, d.CallCount("UseProgram"))
	assert.Equal(t, vaoBindsBefore+1, d.CallCount("BindVertexArray"))

	// Bindings are forgotten at the end of a frame
	r.FrameEnd()
	assert.Zero(t, r.BoundVaoId)
	assert.Zero(t, r.BoundMatId)

	r.DrawIndexed(mat, vao)
	assert.Equal(t, 2, d.CallCount("UseProgram"))
	assert.Equal(t, vaoBindsBefore+2, d.CallCount("BindVertexArray"))
}

func TestSwitchingMaterialRebinds(t *testing.T) {

	d := drivertest.NewFake()
	mat1, vao := newQuad(t, d)
	mat2, err := materials.NewMaterialSrc(d, "other", []byte(basicShader))
	require.NoError(t, err)

	r := NewRend3DGL(d)
	r.DrawIndexed(mat1, vao)
	r.DrawIndexed(mat2, vao)
	r.DrawIndexed(mat2, vao)
	require.NoError(t, r.Err())

	require.Len(t, d.Draws, 3)
	assert.Equal(t, mat1.ShaderProg.Id, d.Draws[0].Program)
	assert.Equal(t, mat2.ShaderProg.Id, d.Draws[1].Program)
	assert.Equal(t, 2, d.CallCount("UseProgram"))
}

func TestErrReportsDriverErrors(t *testing.T) {

	d := drivertest.NewFake()
	r := NewRend3DGL(d)

	// Nothing bound
	d.DrawArrays(driver.Primitive_Triangles, 0, 3)

	err := r.Err()
	var drvErr *driver.Error
	require.ErrorAs(t, err, &drvErr)
	assert.Equal(t, driver.InvalidOperation, drvErr.Code)

	// The flag is drained
	assert.NoError(t, r.Err())
}

func TestDrawIndexedWithoutIndexBuffer(t *testing.T) {

	d := drivertest.NewFake()
	mat, _ := newQuad(t, d)
	r := NewRend3DGL(d)

	assert.Panics(t, func() { r.DrawIndexed(mat, buffers.NewVertexArray(d)) })
}
