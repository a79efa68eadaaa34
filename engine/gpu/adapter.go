package gpu

import (
	"context"
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/helion-go/common"
	"github.com/cogentcore/webgpu/wgpu"
)

// DeviceLabel is the debug label given to every device the package requests.
const DeviceLabel = "Helion Device"

// AdapterPreference describes one attempt in the adapter fallback chain.
type AdapterPreference struct {
	// Name identifies the attempt in logs and AdapterInfo.
	Name string

	// PowerPreference is forwarded to the adapter request.
	PowerPreference wgpu.PowerPreference

	// ForceFallback requests the software fallback adapter.
	ForceFallback bool
}

// AdapterInfo describes the adapter chosen by Initialize or RequestDevice.
type AdapterInfo struct {
	Name        string
	Description string
	Backend     string
	AdapterType string
	Preference  string
}

// DefaultFallbackChain returns the default adapter order: a high-performance hardware adapter,
// then a low-power hardware adapter, then the software fallback adapter.
func DefaultFallbackChain() []AdapterPreference {
	return []AdapterPreference{
		{Name: "high-performance", PowerPreference: wgpu.PowerPreferenceHighPerformance},
		{Name: "low-power", PowerPreference: wgpu.PowerPreferenceLowPower},
		{Name: "software", ForceFallback: true},
	}
}

// adapterSource abstracts the native adapter and device requests so the fallback walk
// can run without a GPU.
type adapterSource interface {
	instance() *wgpu.Instance
	requestAdapter(pref AdapterPreference, surface *wgpu.Surface) (*wgpu.Adapter, error)
	requestDevice(adapter *wgpu.Adapter) (*wgpu.Device, *wgpu.Queue, error)
	describe(adapter *wgpu.Adapter, pref AdapterPreference) AdapterInfo
	release(adapter *wgpu.Adapter)
}

type nativeSource struct {
	inst *wgpu.Instance
}

var _ adapterSource = &nativeSource{}

func newNativeSource(inst *wgpu.Instance) *nativeSource {
	if inst == nil {
		inst = wgpu.CreateInstance(nil)
	}
	return &nativeSource{inst: inst}
}

func (s *nativeSource) instance() *wgpu.Instance {
	return s.inst
}

func (s *nativeSource) requestAdapter(pref AdapterPreference, surface *wgpu.Surface) (*wgpu.Adapter, error) {
	return s.inst.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: pref.ForceFallback,
		CompatibleSurface:    surface,
		PowerPreference:      pref.PowerPreference,
	})
}

func (s *nativeSource) requestDevice(adapter *wgpu.Adapter) (*wgpu.Device, *wgpu.Queue, error) {
	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: DeviceLabel,
		RequiredLimits: &wgpu.RequiredLimits{
			Limits: wgpu.DefaultLimits(),
		},
	})
	if err != nil {
		return nil, nil, err
	}
	return device, device.GetQueue(), nil
}

func (s *nativeSource) describe(adapter *wgpu.Adapter, pref AdapterPreference) AdapterInfo {
	info := adapter.GetInfo()
	return AdapterInfo{
		Name:        info.Name,
		Description: info.DriverDescription,
		Backend:     fmt.Sprint(info.BackendType),
		AdapterType: fmt.Sprint(info.AdapterType),
		Preference:  pref.Name,
	}
}

func (s *nativeSource) release(adapter *wgpu.Adapter) {
	adapter.Release()
}

// selection is the result of a successful walk of the fallback chain.
type selection struct {
	adapter *wgpu.Adapter
	device  *wgpu.Device
	queue   *wgpu.Queue
	info    AdapterInfo
}

// walkChain tries each preference in order until an adapter and device are obtained.
// Each failed attempt is logged at Warn and collected; when all fail the joined errors are
// wrapped in ErrInitialization. ctx is checked before every attempt.
func walkChain(ctx context.Context, src adapterSource, chain []AdapterPreference, surface *wgpu.Surface) (selection, error) {
	if len(chain) == 0 {
		return selection{}, fmt.Errorf("%w: empty adapter fallback chain", ErrInitialization)
	}

	var errs []error
	for _, pref := range chain {
		if err := ctx.Err(); err != nil {
			return selection{}, fmt.Errorf("%w: %w", ErrInitialization, err)
		}

		adapter, err := src.requestAdapter(pref, surface)
		if err == nil && adapter == nil {
			err = errors.New("no adapter returned")
		}
		if err != nil {
			common.Logger().Warn("gpu: adapter request failed", "preference", pref.Name, "error", err)
			errs = append(errs, fmt.Errorf("%s adapter: %w", pref.Name, err))
			continue
		}

		device, queue, err := src.requestDevice(adapter)
		if err != nil {
			common.Logger().Warn("gpu: device request failed", "preference", pref.Name, "error", err)
			errs = append(errs, fmt.Errorf("%s device: %w", pref.Name, err))
			src.release(adapter)
			continue
		}

		info := src.describe(adapter, pref)
		common.Logger().Info("gpu: adapter selected",
			"preference", pref.Name, "name", info.Name, "backend", info.Backend, "type", info.AdapterType)
		return selection{adapter: adapter, device: device, queue: queue, info: info}, nil
	}

	return selection{}, fmt.Errorf("%w: %w", ErrInitialization, errors.Join(errs...))
}

// RequestDevice obtains an adapter compatible with surface and a device and queue from it,
// walking chain in order. A nil chain uses DefaultFallbackChain.
//
// Parameters:
//   - instance: the wgpu instance that created surface
//   - surface: the surface the adapter must be able to present to
//   - chain: the adapter fallback chain
//
// Returns:
//   - *wgpu.Adapter: the chosen adapter
//   - *wgpu.Device: the requested device
//   - *wgpu.Queue: the device queue
//   - AdapterInfo: a description of the chosen adapter
//   - error: an ErrInitialization-wrapped error if every attempt fails
func RequestDevice(instance *wgpu.Instance, surface *wgpu.Surface, chain []AdapterPreference) (*wgpu.Adapter, *wgpu.Device, *wgpu.Queue, AdapterInfo, error) {
	if chain == nil {
		chain = DefaultFallbackChain()
	}
	sel, err := walkChain(context.Background(), newNativeSource(instance), chain, surface)
	if err != nil {
		return nil, nil, nil, AdapterInfo{}, err
	}
	return sel.adapter, sel.device, sel.queue, sel.info, nil
}
