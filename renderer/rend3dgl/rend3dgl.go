package rend3dgl

import (
	"github.com/bloeys/learngl/assert"
	"github.com/bloeys/learngl/buffers"
	"github.com/bloeys/learngl/driver"
	"github.com/bloeys/learngl/materials"
	"github.com/bloeys/learngl/renderer"
)

var _ renderer.Render = &Rend3DGL{}

// Rend3DGL issues draw calls while remembering what is currently bound, so that drawing many
// times with the same vertex array or material does not rebind them every time.
//
// Anything that binds behind the renderer's back must be followed by FrameEnd.
type Rend3DGL struct {
	BoundVaoId uint32
	BoundMatId uint32

	drv driver.Driver
}

func (r *Rend3DGL) bind(mat *materials.Material, vao *buffers.VertexArray) {

	if vao.Id != r.BoundVaoId {
		vao.Bind()
		r.BoundVaoId = vao.Id
	}

	if mat.Id != r.BoundMatId {
		mat.Bind()
		r.BoundMatId = mat.Id
	}
}

func (r *Rend3DGL) Clear(red, green, blue, alpha float32) {
	r.drv.ClearColor(red, green, blue, alpha)
	r.drv.Clear(driver.ClearMask_Color | driver.ClearMask_Depth)
}

func (r *Rend3DGL) DrawVertexArray(mat materials.Material, vao *buffers.VertexArray, firstElement int32, elementCount int32) {
	r.bind(&mat, vao)
	r.drv.DrawArrays(driver.Primitive_Triangles, firstElement, elementCount)
}

// DrawIndexed draws all the indices of the index buffer set on vao as triangles
func (r *Rend3DGL) DrawIndexed(mat materials.Material, vao *buffers.VertexArray) {

	assert.T(vao.IndexBuffer != nil, "DrawIndexed called with vao=%d which has no index buffer", vao.Id)

	r.bind(&mat, vao)
	r.drv.DrawElements(driver.Primitive_Triangles, vao.IndexBuffer.Count(), driver.DataType_Uint32, 0)
}

func (r *Rend3DGL) FrameEnd() {
	r.BoundVaoId = 0
	r.BoundMatId = 0
}

// Err returns the pending driver error, if any, and clears it
func (r *Rend3DGL) Err() error {
	return driver.CheckError(r.drv)
}

func NewRend3DGL(d driver.Driver) *Rend3DGL {
	return &Rend3DGL{drv: d}
}
