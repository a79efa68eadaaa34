// Package gpu holds the WebGPU device state shared by hosts that render through a backend
// instead of owning their own window: adapter selection with a fallback chain, surface
// configuration and swapchain frame acquisition.
package gpu

import (
	"context"
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/helion-go/common"
	"github.com/cogentcore/webgpu/wgpu"
)

// State is the lifecycle stage of a Backend.
type State int

const (
	// StateUninitialized means no device exists yet.
	StateUninitialized State = iota

	// StateDeviceReady means the device and queue exist but no surface is configured.
	StateDeviceReady

	// StateSurfaceReady means a surface and its configuration are set.
	StateSurfaceReady
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateDeviceReady:
		return "device-ready"
	case StateSurfaceReady:
		return "surface-ready"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Backend owns a device and queue obtained without a window, plus an optional configured surface.
// The device and queue are always set together, as are the surface and its configuration.
type Backend struct {
	mu    sync.Mutex
	state State

	chain      []AdapterPreference
	inst       *wgpu.Instance
	compatible *wgpu.Surface
	source     adapterSource

	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue
	info     AdapterInfo

	surface *wgpu.Surface
	config  *wgpu.SurfaceConfiguration
}

// NewBackend creates an uninitialized Backend. Call Initialize before using it.
//
// Parameters:
//   - options: functional options to configure the Backend
//
// Returns:
//   - *Backend: the new Backend
func NewBackend(options ...BackendBuilderOption) *Backend {
	b := &Backend{
		chain: DefaultFallbackChain(),
	}
	for _, opt := range options {
		opt(b)
	}
	return b
}

// Initialize requests an adapter, device and queue, walking the fallback chain in order.
// It may only succeed once per Backend.
//
// Parameters:
//   - ctx: checked between adapter attempts
//
// Returns:
//   - error: ErrAlreadyInitialized, or an ErrInitialization-wrapped error when every attempt fails
func (b *Backend) Initialize(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state != StateUninitialized {
		return ErrAlreadyInitialized
	}

	if b.source == nil {
		b.source = newNativeSource(b.inst)
	}

	sel, err := walkChain(ctx, b.source, b.chain, b.compatible)
	if err != nil {
		return err
	}

	b.instance = b.source.instance()
	b.adapter = sel.adapter
	b.device = sel.device
	b.queue = sel.queue
	b.info = sel.info
	b.state = StateDeviceReady
	return nil
}

// CreateSurface creates a surface from a native window descriptor using the backend's instance.
//
// Parameters:
//   - descriptor: the platform surface descriptor, e.g. from wgpuglfw.GetSurfaceDescriptor
//
// Returns:
//   - *wgpu.Surface: the new surface
//   - error: ErrNotInitialized if Initialize has not succeeded
func (b *Backend) CreateSurface(descriptor *wgpu.SurfaceDescriptor) (*wgpu.Surface, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateUninitialized || b.instance == nil {
		return nil, ErrNotInitialized
	}
	return b.instance.CreateSurface(descriptor), nil
}

// ConfigureSurface configures surface for presentation with the fixed scatter configuration
// (SurfaceFormat, Fifo, opaque alpha) and makes it the backend's surface. Calling it again
// replaces the previous surface and configuration.
//
// Parameters:
//   - surface: the surface to configure
//   - width: surface width in pixels
//   - height: surface height in pixels
//
// Returns:
//   - error: ErrNotInitialized without a device, ErrInvalidSurfaceSize for a zero size
func (b *Backend) ConfigureSurface(surface *wgpu.Surface, width, height uint32) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateUninitialized {
		return ErrNotInitialized
	}
	if surface == nil {
		return fmt.Errorf("gpu: configure surface: %w", ErrSurfaceNotConfigured)
	}
	if width == 0 || height == 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSurfaceSize, width, height)
	}

	config := NewSurfaceConfiguration(SurfaceFormat, width, height)
	surface.Configure(b.adapter, b.device, config)

	b.surface = surface
	b.config = config
	b.state = StateSurfaceReady
	common.Logger().Debug("gpu: surface configured", "width", width, "height", height)
	return nil
}

// State returns the current lifecycle stage.
func (b *Backend) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Device returns the device, or ErrNotInitialized.
func (b *Backend) Device() (*wgpu.Device, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state == StateUninitialized {
		return nil, ErrNotInitialized
	}
	return b.device, nil
}

// Queue returns the queue, or ErrNotInitialized.
func (b *Backend) Queue() (*wgpu.Queue, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state == StateUninitialized {
		return nil, ErrNotInitialized
	}
	return b.queue, nil
}

// Surface returns the configured surface, or ErrSurfaceNotConfigured.
func (b *Backend) Surface() (*wgpu.Surface, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state != StateSurfaceReady {
		return nil, ErrSurfaceNotConfigured
	}
	return b.surface, nil
}

// Config returns a copy of the surface configuration, or ErrSurfaceNotConfigured.
func (b *Backend) Config() (wgpu.SurfaceConfiguration, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state != StateSurfaceReady {
		return wgpu.SurfaceConfiguration{}, ErrSurfaceNotConfigured
	}
	return *b.config, nil
}

// AdapterInfo describes the adapter chosen by Initialize, or ErrNotInitialized.
func (b *Backend) AdapterInfo() (AdapterInfo, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state == StateUninitialized {
		return AdapterInfo{}, ErrNotInitialized
	}
	return b.info, nil
}

// Release frees every GPU object the backend owns and returns it to StateUninitialized.
// Surfaces passed to ConfigureSurface are owned by the caller and are not released.
func (b *Backend) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.queue != nil {
		b.queue.Release()
	}
	if b.device != nil {
		b.device.Release()
	}
	if b.adapter != nil {
		b.adapter.Release()
	}
	if b.instance != nil && b.inst == nil {
		b.instance.Release()
	}

	b.surface = nil
	b.config = nil
	b.queue = nil
	b.device = nil
	b.adapter = nil
	b.instance = nil
	b.source = nil
	b.info = AdapterInfo{}
	b.state = StateUninitialized
}
