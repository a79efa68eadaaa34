package gpu

import "github.com/cogentcore/webgpu/wgpu"

// BackendBuilderOption is a functional option applied to a Backend during construction via NewBackend.
type BackendBuilderOption func(*Backend)

// WithFallbackChain replaces the adapter fallback chain walked by Initialize.
//
// Parameters:
//   - chain: the adapter preferences to try, in order
//
// Returns:
//   - BackendBuilderOption: a function that applies the fallback chain option to a Backend
func WithFallbackChain(chain ...AdapterPreference) BackendBuilderOption {
	return func(b *Backend) {
		b.chain = chain
	}
}

// WithInstance supplies an existing wgpu instance instead of creating one during Initialize.
// Surfaces passed to ConfigureSurface must come from the same instance.
//
// Parameters:
//   - instance: the wgpu instance to use
//
// Returns:
//   - BackendBuilderOption: a function that applies the instance option to a Backend
func WithInstance(instance *wgpu.Instance) BackendBuilderOption {
	return func(b *Backend) {
		b.inst = instance
	}
}

// WithCompatibleSurface makes Initialize request adapters that can present to surface.
//
// Parameters:
//   - surface: the surface adapters must be compatible with
//
// Returns:
//   - BackendBuilderOption: a function that applies the compatible surface option to a Backend
func WithCompatibleSurface(surface *wgpu.Surface) BackendBuilderOption {
	return func(b *Backend) {
		b.compatible = surface
	}
}
