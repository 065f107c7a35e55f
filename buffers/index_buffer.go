package buffers

import (
	"github.com/bloeys/learngl/driver"
	"github.com/bloeys/learngl/logging"
)

// IndexBuffer owns exactly one driver buffer of uint32 indices
type IndexBuffer struct {
	Id    uint32
	count int32
	drv   driver.Driver
}

func (ib *IndexBuffer) Bind() {
	ib.drv.BindBuffer(driver.BufTarget_ElementArray, ib.Id)
}

func (ib *IndexBuffer) UnBind() {
	ib.drv.BindBuffer(driver.BufTarget_ElementArray, 0)
}

// Count is the number of indices given at creation, used to size draw calls
func (ib *IndexBuffer) Count() int32 {
	return ib.count
}

func (ib *IndexBuffer) Delete() {

	if ib.Id == 0 {
		return
	}

	ib.drv.DeleteBuffer(ib.Id)
	ib.Id = 0
}

func NewIndexBuffer(d driver.Driver, indices []uint32) *IndexBuffer {

	ib := &IndexBuffer{
		drv:   d,
		count: int32(len(indices)),
	}

	ib.Id = d.GenBuffer()
	if ib.Id == 0 {
		logging.ErrLog.Println("Failed to create OpenGL buffer")
	}

	ib.Bind()
	d.BufferData(driver.BufTarget_ElementArray, u32sToBytes(indices), driver.BufUsage_Static_Draw)

	return ib
}
