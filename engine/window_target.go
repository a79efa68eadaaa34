package engine

import (
	"fmt"

	"github.com/Carmen-Shannon/helion-go/common"
	"github.com/Carmen-Shannon/helion-go/engine/chart"
	"github.com/Carmen-Shannon/helion-go/engine/gpu"
	"github.com/Carmen-Shannon/helion-go/engine/renderer"
	"github.com/Carmen-Shannon/helion-go/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
)

// windowTarget owns the GPU objects created for one window.
type windowTarget struct {
	instance *wgpu.Instance
	surface  *wgpu.Surface
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue
	config   *wgpu.SurfaceConfiguration
	renderer *renderer.ScatterRenderer
}

var _ renderTarget = &windowTarget{}

// newWindowTarget creates the instance, surface, device and scatter renderer for w and
// uploads data.
func newWindowTarget(w window.Window, data *chart.ChartData) (renderTarget, error) {
	t := &windowTarget{instance: wgpu.CreateInstance(nil)}

	surface := t.instance.CreateSurface(w.SurfaceDescriptor())
	if surface == nil {
		t.release()
		return nil, fmt.Errorf("%w: create surface", gpu.ErrInitialization)
	}
	t.surface = surface

	adapter, device, queue, info, err := gpu.RequestDevice(t.instance, t.surface, nil)
	if err != nil {
		t.release()
		return nil, err
	}
	t.adapter, t.device, t.queue = adapter, device, queue

	caps := t.surface.GetCapabilities(t.adapter)
	t.config = gpu.NewSurfaceConfiguration(
		gpu.PreferredSurfaceFormat(caps.Formats),
		uint32(max(w.Width(), 1)),
		uint32(max(w.Height(), 1)),
	)
	if len(caps.AlphaModes) > 0 {
		t.config.AlphaMode = caps.AlphaModes[0]
	}
	t.surface.Configure(t.adapter, t.device, t.config)

	t.renderer = renderer.NewScatterRenderer(t.device, t.queue, t.config.Format, data)

	common.Logger().Info("engine: gpu ready",
		"adapter", info.Name,
		"backend", info.Backend,
		"preference", info.Preference,
		"format", t.config.Format,
	)
	return t, nil
}

func (t *windowTarget) render(clear chart.Color) error {
	return renderer.RenderFrame(t.device, t.queue, t.surface, clear, t.renderer)
}

func (t *windowTarget) resize(width, height int) error {
	if t.surface == nil || t.config == nil {
		return gpu.ErrSurfaceNotConfigured
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", gpu.ErrInvalidSurfaceSize, width, height)
	}
	t.config.Width = uint32(width)
	t.config.Height = uint32(height)
	t.surface.Configure(t.adapter, t.device, t.config)
	return nil
}

func (t *windowTarget) size() (int, int) {
	if t.config == nil {
		return 0, 0
	}
	return int(t.config.Width), int(t.config.Height)
}

// release frees the GPU objects in reverse order of creation.
func (t *windowTarget) release() {
	if t.renderer != nil {
		t.renderer.Release()
		t.renderer = nil
	}
	if t.queue != nil {
		t.queue.Release()
		t.queue = nil
	}
	if t.device != nil {
		t.device.Release()
		t.device = nil
	}
	if t.adapter != nil {
		t.adapter.Release()
		t.adapter = nil
	}
	if t.surface != nil {
		t.surface.Release()
		t.surface = nil
	}
	if t.instance != nil {
		t.instance.Release()
		t.instance = nil
	}
}
