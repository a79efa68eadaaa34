package engine

import (
	"github.com/Carmen-Shannon/helion-go/engine/chart"
	"github.com/Carmen-Shannon/helion-go/engine/window"
)

// DriverBuilderOption is a functional option for configuring a Driver.
// Use the With* functions to create options that are applied directly to the driver instance.
type DriverBuilderOption func(*Driver)

// WithTitle sets the window title.
//
// Parameters:
//   - title: the window title text
//
// Returns:
//   - DriverBuilderOption: option function to apply
func WithTitle(title string) DriverBuilderOption {
	return func(d *Driver) {
		d.title = title
	}
}

// WithEventLoop supplies the host event loop. By default Run creates a GLFW loop.
//
// Parameters:
//   - loop: the event loop to consume
//
// Returns:
//   - DriverBuilderOption: option function to apply
func WithEventLoop(loop window.EventLoop) DriverBuilderOption {
	return func(d *Driver) {
		d.loop = loop
	}
}

// WithProfiling enables or disables per-frame profiling output.
//
// Parameters:
//   - enabled: if true, logs frame rate and memory statistics every second
//
// Returns:
//   - DriverBuilderOption: option function to apply
func WithProfiling(enabled bool) DriverBuilderOption {
	return func(d *Driver) {
		d.profilingEnabled = enabled
	}
}

// WithClearColor sets the background color each frame is cleared to. The default is opaque white.
//
// Parameters:
//   - c: the clear color
//
// Returns:
//   - DriverBuilderOption: option function to apply
func WithClearColor(c chart.Color) DriverBuilderOption {
	return func(d *Driver) {
		d.clearColor = c
	}
}
