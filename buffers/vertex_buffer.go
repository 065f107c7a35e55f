package buffers

import (
	"unsafe"

	"github.com/bloeys/learngl/driver"
	"github.com/bloeys/learngl/logging"
)

// VertexBuffer owns exactly one driver buffer that is used as a vertex attribute source.
//
// The data is uploaded once at creation with static usage. Always pass *VertexBuffer around,
// copying the struct would copy the ownership of the handle with it.
type VertexBuffer struct {
	Id     uint32
	Stride int32
	size   int
	layout []Element
	drv    driver.Driver
}

func (vb *VertexBuffer) Bind() {
	vb.drv.BindBuffer(driver.BufTarget_Array, vb.Id)
}

// UnBind clears the array buffer slot. Binding 'none' is always legal, so this can be called any number of times.
func (vb *VertexBuffer) UnBind() {
	vb.drv.BindBuffer(driver.BufTarget_Array, 0)
}

// Size is the number of bytes uploaded at creation
func (vb *VertexBuffer) Size() int {
	return vb.size
}

func (vb *VertexBuffer) GetLayout() []Element {
	e := make([]Element, len(vb.layout))
	copy(e, vb.layout)
	return e
}

func (vb *VertexBuffer) SetLayout(layout ...Element) {

	vb.Stride = 0
	vb.layout = layout

	for i := 0; i < len(vb.layout); i++ {

		vb.layout[i].Offset = int(vb.Stride)
		vb.Stride += vb.layout[i].Size()
	}
}

// Delete releases the driver buffer. Only the first call does anything.
func (vb *VertexBuffer) Delete() {

	if vb.Id == 0 {
		return
	}

	vb.drv.DeleteBuffer(vb.Id)
	vb.Id = 0
}

// NewVertexBuffer allocates a buffer and uploads all of data to it.
// The buffer is left bound to the array target.
func NewVertexBuffer(d driver.Driver, data []byte, layout ...Element) *VertexBuffer {

	vb := &VertexBuffer{
		drv:  d,
		size: len(data),
	}

	vb.Id = d.GenBuffer()
	if vb.Id == 0 {
		logging.ErrLog.Println("Failed to create OpenGL buffer")
	}

	vb.SetLayout(layout...)

	vb.Bind()
	d.BufferData(driver.BufTarget_Array, data, driver.BufUsage_Static_Draw)

	return vb
}

func NewVertexBufferF32(d driver.Driver, values []float32, layout ...Element) *VertexBuffer {
	return NewVertexBuffer(d, f32sToBytes(values), layout...)
}

// f32sToBytes reinterprets the floats as bytes in native order, which is what the driver expects
func f32sToBytes(values []float32) []byte {

	if len(values) == 0 {
		return nil
	}

	return unsafe.Slice((*byte)(unsafe.Pointer(&values[0])), len(values)*4)
}

func u32sToBytes(values []uint32) []byte {

	if len(values) == 0 {
		return nil
	}

	return unsafe.Slice((*byte)(unsafe.Pointer(&values[0])), len(values)*4)
}
