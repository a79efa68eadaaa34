package renderer

import (
	"fmt"

	"github.com/Carmen-Shannon/helion-go/engine/chart"
	"github.com/Carmen-Shannon/helion-go/engine/gpu"
	"github.com/cogentcore/webgpu/wgpu"
)

// RenderFrame renders one frame to surface: it acquires the swapchain texture, clears it to
// clear, lets r record its draws, submits the commands and presents. Acquisition failures are
// classified by gpu.AcquireFrame so callers can recover from gpu.ErrSurfaceLost.
//
// Parameters:
//   - device: the device that owns surface's configuration
//   - queue: the queue to submit to
//   - surface: the configured surface
//   - clear: the clear color
//   - r: the renderer recording into the pass
//
// Returns:
//   - error: a classified acquisition error, or an encoding error
func RenderFrame(device *wgpu.Device, queue *wgpu.Queue, surface *wgpu.Surface, clear chart.Color, r Renderer) error {
	frame, err := gpu.AcquireFrame(surface)
	if err != nil {
		return err
	}
	defer frame.Release()

	view, err := frame.CreateView(nil)
	if err != nil {
		return fmt.Errorf("renderer: create frame view: %w", err)
	}
	defer view.Release()

	encoder, err := device.CreateCommandEncoder(nil)
	if err != nil {
		return fmt.Errorf("renderer: create command encoder: %w", err)
	}
	defer encoder.Release()

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: clearValue(clear),
			},
		},
	})
	r.RenderToPass(pass)
	pass.End()

	commandBuffer, err := encoder.Finish(nil)
	if err != nil {
		return fmt.Errorf("renderer: finish command encoder: %w", err)
	}
	defer commandBuffer.Release()

	queue.Submit(commandBuffer)
	surface.Present()
	return nil
}

func clearValue(c chart.Color) wgpu.Color {
	return wgpu.Color{
		R: float64(c.R),
		G: float64(c.G),
		B: float64(c.B),
		A: float64(c.A),
	}
}
