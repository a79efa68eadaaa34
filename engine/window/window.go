// Package window provides the native GLFW window that scatter plots are presented in and the
// event loop that drives it.
package window

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// Window is a native window that a WebGPU surface can be created for.
type Window interface {
	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating a WebGPU surface.
	// The descriptor is platform-appropriate (Windows HWND, X11 Xlib, Wayland, macOS Metal, etc.)
	// and is created by the wgpuglfw bridge from the underlying GLFW window.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor, or nil if window is not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// Width returns the current framebuffer width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current framebuffer height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// engineWindow is the implementation of the Window interface.
type engineWindow struct {
	// title is the window title displayed in the title bar.
	title string

	// maxWidth and maxHeight bound resizing; 0 leaves the bound unset.
	maxWidth  int
	maxHeight int

	// minWidth and minHeight bound resizing; 0 leaves the bound unset.
	minWidth  int
	minHeight int

	// width is the current framebuffer width in pixels.
	width int

	// height is the current framebuffer height in pixels.
	height int

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	// onResize is called with the new framebuffer size.
	onResize func(width, height int)

	// onClose is called when the user asks to close the window.
	onClose func()
}

var _ Window = &engineWindow{}

// newEngineWindow applies default values first, then each option in order.
// The platform window is not created.
func newEngineWindow(options ...WindowBuilderOption) *engineWindow {
	w := &engineWindow{
		title:  "Helion",
		width:  800,
		height: 600,
	}
	for _, opt := range options {
		opt(w)
	}
	return w
}

// sizeLimits returns the min and max size with unset bounds mapped to unset.
func (w *engineWindow) sizeLimits(unset int) (minW, minH, maxW, maxH int) {
	orUnset := func(v int) int {
		if v <= 0 {
			return unset
		}
		return v
	}
	return orUnset(w.minWidth), orUnset(w.minHeight), orUnset(w.maxWidth), orUnset(w.maxHeight)
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}
