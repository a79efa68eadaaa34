package gpu

import "errors"

var (
	// ErrNotInitialized is returned when an operation needs a device and queue that do not exist yet.
	ErrNotInitialized = errors.New("gpu: backend not initialized")

	// ErrAlreadyInitialized is returned by a second call to Initialize on the same Backend.
	ErrAlreadyInitialized = errors.New("gpu: backend already initialized")

	// ErrSurfaceNotConfigured is returned when an operation needs a configured surface.
	ErrSurfaceNotConfigured = errors.New("gpu: surface not configured")

	// ErrInitialization wraps the joined adapter and device errors when every fallback attempt fails.
	ErrInitialization = errors.New("gpu: initialization failed")

	// ErrInvalidSurfaceSize is returned when a surface is configured with a zero width or height.
	ErrInvalidSurfaceSize = errors.New("gpu: surface size must be nonzero")

	// ErrSurfaceLost is returned when the swapchain is lost or outdated and must be reconfigured.
	ErrSurfaceLost = errors.New("gpu: surface lost or outdated")

	// ErrSurfaceOutOfMemory is returned when the GPU ran out of memory acquiring a frame.
	ErrSurfaceOutOfMemory = errors.New("gpu: out of memory acquiring surface texture")
)
