package renderer

import (
	"github.com/bloeys/learngl/buffers"
	"github.com/bloeys/learngl/materials"
)

type Render interface {
	Clear(r, g, b, a float32)
	DrawVertexArray(mat materials.Material, vao *buffers.VertexArray, firstElement int32, count int32)
	DrawIndexed(mat materials.Material, vao *buffers.VertexArray)
	FrameEnd()
	Err() error
}
