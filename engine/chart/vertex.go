package chart

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
)

const (
	// VertexSize is the byte stride of one Vertex in the GPU vertex buffer.
	VertexSize = 40

	// PositionOffset is the byte offset of Vertex.Position (shader location 0).
	PositionOffset = 0

	// ColorOffset is the byte offset of Vertex.Color (shader location 1).
	ColorOffset = 8

	// SizeOffset is the byte offset of Vertex.Size (shader location 2).
	SizeOffset = 24
)

// Vertex is the GPU-aligned representation of one scatter point.
// Matches the VertexInput struct of the scatter vertex shader.
// Size: 40 bytes (28 bytes of attributes + 12 bytes of padding, 4-byte aligned).
type Vertex struct {
	Position [2]float32 // offset  0: normalized x, y (8 bytes)
	Color    [4]float32 // offset  8: RGBA (16 bytes)
	Size     float32    // offset 24: point size in pixels (4 bytes)
	_        [3]float32 // offset 28: padding (12 bytes)
}

// Vertex must stay exactly VertexSize bytes; either array length goes negative otherwise.
var (
	_ [VertexSize - unsafe.Sizeof(Vertex{})]struct{}
	_ [unsafe.Sizeof(Vertex{}) - VertexSize]struct{}
)

// NewVertex builds a Vertex from a point, a color and a size.
//
// Parameters:
//   - p: the normalized position
//   - c: the point color
//   - size: the point size in pixels
//
// Returns:
//   - Vertex: the assembled vertex with zeroed padding
func NewVertex(p Point2D, c Color, size float32) Vertex {
	return Vertex{
		Position: [2]float32{p.X, p.Y},
		Color:    c.Array(),
		Size:     size,
	}
}

// Marshal serializes the vertex into a new VertexSize byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 40-byte little-endian buffer
func (v *Vertex) Marshal() []byte {
	buf := make([]byte, VertexSize)
	v.MarshalTo(buf)
	return buf
}

// MarshalTo writes the vertex into the first VertexSize bytes of buf, padding included.
// buf must be at least VertexSize bytes long.
//
// Parameters:
//   - buf: destination buffer
func (v *Vertex) MarshalTo(buf []byte) {
	_ = buf[VertexSize-1]
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(v.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(v.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(v.Color[0]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(v.Color[1]))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(v.Color[2]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(v.Color[3]))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(v.Size))
	clear(buf[28:VertexSize])
}

// VertexBufferLayout describes the Vertex record to the render pipeline.
// The attribute offsets and formats must match the shader's VertexInput struct.
//
// Returns:
//   - wgpu.VertexBufferLayout: stride 40, locations 0 (position), 1 (color), 2 (size)
func VertexBufferLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: VertexSize,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x2, Offset: PositionOffset, ShaderLocation: 0},
			{Format: wgpu.VertexFormatFloat32x4, Offset: ColorOffset, ShaderLocation: 1},
			{Format: wgpu.VertexFormatFloat32, Offset: SizeOffset, ShaderLocation: 2},
		},
	}
}
