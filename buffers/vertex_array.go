package buffers

import (
	"github.com/bloeys/learngl/driver"
	"github.com/bloeys/learngl/logging"
)

// VertexArray records how vertex buffers are laid out and which index buffer is used.
// It does not own the buffers added to it.
type VertexArray struct {
	Id          uint32
	Vbos        []*VertexBuffer
	IndexBuffer *IndexBuffer
	drv         driver.Driver
}

func (va *VertexArray) Bind() {
	va.drv.BindVertexArray(va.Id)
}

func (va *VertexArray) UnBind() {
	va.drv.BindVertexArray(0)
}

func (va *VertexArray) AddVertexBuffer(vbo *VertexBuffer) {

	// NOTE: VBOs are only bound at 'VertexAttribPointer' (and related) calls

	va.Bind()
	vbo.Bind()

	// Attribute locations continue after the ones used by previously added buffers
	firstLoc := 0
	for i := 0; i < len(va.Vbos); i++ {
		firstLoc += len(va.Vbos[i].layout)
	}

	for i := 0; i < len(vbo.layout); i++ {

		l := &vbo.layout[i]
		loc := uint32(firstLoc + i)

		va.drv.EnableVertexAttribArray(loc)
		va.drv.VertexAttribPointer(loc, l.ElementType.CompCount(), l.ElementType.DriverType(), false, vbo.Stride, uintptr(l.Offset))
	}

	va.Vbos = append(va.Vbos, vbo)
}

func (va *VertexArray) SetIndexBuffer(ib *IndexBuffer) {
	va.Bind()
	ib.Bind()
	va.IndexBuffer = ib
}

// Delete releases the vertex array object only, the buffers added to it stay alive
func (va *VertexArray) Delete() {

	if va.Id == 0 {
		return
	}

	va.drv.DeleteVertexArray(va.Id)
	va.Id = 0
}

func NewVertexArray(d driver.Driver) *VertexArray {

	vao := &VertexArray{drv: d}

	vao.Id = d.GenVertexArray()
	if vao.Id == 0 {
		logging.ErrLog.Println("Failed to create OpenGL vertex array object")
	}

	return vao
}
