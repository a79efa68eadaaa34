// Package renderer draws chart data into WebGPU render passes. Renderers either own their
// GPU resources directly (WindowRenderer) or borrow them from a backend (BackendRenderer).
package renderer

import (
	"errors"

	"github.com/Carmen-Shannon/helion-go/engine/chart"
	"github.com/cogentcore/webgpu/wgpu"
)

// ErrBackendNotReady is returned when a backend cannot supply a device, queue or configured surface.
var ErrBackendNotReady = errors.New("renderer: backend not ready")

// PassEncoder is the subset of *wgpu.RenderPassEncoder used to record draws.
type PassEncoder interface {
	SetPipeline(pipeline *wgpu.RenderPipeline)
	SetVertexBuffer(slot uint32, buffer *wgpu.Buffer, offset, size uint64)
	Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32)
}

var _ PassEncoder = &wgpu.RenderPassEncoder{}

// Backend is the GPU state a BackendRenderer borrows. *gpu.Backend implements it.
type Backend interface {
	Device() (*wgpu.Device, error)
	Queue() (*wgpu.Queue, error)
	Surface() (*wgpu.Surface, error)
	Config() (wgpu.SurfaceConfiguration, error)
}

// Renderer records draw commands into an already-begun render pass.
type Renderer interface {
	// RenderToPass records the renderer's draws into pass. It records nothing when
	// the renderer has no data.
	//
	// Parameters:
	//   - pass: the render pass to record into
	RenderToPass(pass PassEncoder)
}

// WindowRenderer is a Renderer for hosts that hold the device and queue themselves.
type WindowRenderer interface {
	Renderer

	// UpdateVertices replaces the vertex data wholesale, uploading to a new GPU buffer.
	// Empty data clears the buffer and the vertex count.
	//
	// Parameters:
	//   - device: the device to allocate the buffer on
	//   - queue: the queue to upload through
	//   - data: the new chart data
	//
	// Returns:
	//   - error: an error if the buffer could not be created
	UpdateVertices(device *wgpu.Device, queue *wgpu.Queue, data *chart.ChartData) error
}

// BackendRenderer is a Renderer for hosts that render through a Backend.
type BackendRenderer interface {
	Renderer

	// UpdateData replaces the vertex data using the backend's device and queue.
	//
	// Parameters:
	//   - backend: the backend supplying the device and queue
	//   - data: the new chart data
	//
	// Returns:
	//   - error: the backend's error, or an error if the buffer could not be created
	UpdateData(backend Backend, data *chart.ChartData) error

	// RenderWithBackend renders and presents one frame to the backend's surface.
	//
	// Parameters:
	//   - backend: the backend supplying the device, queue and surface
	//   - opts: per-frame options
	//
	// Returns:
	//   - error: the backend's error, or a frame acquisition or submission error
	RenderWithBackend(backend Backend, opts RenderOptions) error
}

// RenderOptions are per-frame options for RenderWithBackend.
type RenderOptions struct {
	// ClearColor fills the frame before points are drawn.
	ClearColor chart.Color

	// PointSize is reserved; point size comes from each vertex.
	PointSize float32
}

// DefaultRenderOptions returns an opaque white clear color and a point size of 2.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		ClearColor: chart.White,
		PointSize:  chart.DefaultPointSize,
	}
}
