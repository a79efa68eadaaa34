package gpu

import (
	"fmt"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
)

const (
	// SurfaceFormat is the swapchain format used by Backend.ConfigureSurface.
	SurfaceFormat = wgpu.TextureFormatBGRA8UnormSrgb

	// MaxFrameLatency is the desired number of frames in flight. The binding's surface
	// configuration has no latency field, so the value is recorded for reference only.
	MaxFrameLatency = 2
)

// NewSurfaceConfiguration builds the fixed swapchain configuration used for scatter rendering:
// render-attachment usage, Fifo presentation and opaque alpha.
//
// Parameters:
//   - format: the swapchain texture format
//   - width: surface width in pixels
//   - height: surface height in pixels
//
// Returns:
//   - *wgpu.SurfaceConfiguration: the configuration to pass to Surface.Configure
func NewSurfaceConfiguration(format wgpu.TextureFormat, width, height uint32) *wgpu.SurfaceConfiguration {
	return &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      format,
		Width:       width,
		Height:      height,
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   wgpu.CompositeAlphaModeOpaque,
	}
}

// PreferredSurfaceFormat picks the first sRGB format from a surface's supported formats,
// falling back to the first format. It returns SurfaceFormat when formats is empty.
func PreferredSurfaceFormat(formats []wgpu.TextureFormat) wgpu.TextureFormat {
	for _, f := range formats {
		if isSrgb(f) {
			return f
		}
	}
	if len(formats) > 0 {
		return formats[0]
	}
	return SurfaceFormat
}

func isSrgb(f wgpu.TextureFormat) bool {
	switch f {
	case wgpu.TextureFormatRGBA8UnormSrgb, wgpu.TextureFormatBGRA8UnormSrgb:
		return true
	}
	return false
}

// AcquireFrame gets the next swapchain texture from surface. Failures are classified as
// ErrSurfaceLost, ErrSurfaceOutOfMemory, or returned wrapped as-is.
//
// Parameters:
//   - surface: the configured surface
//
// Returns:
//   - *wgpu.Texture: the frame texture; the caller releases it after presenting
//   - error: a classified acquisition error
func AcquireFrame(surface *wgpu.Surface) (*wgpu.Texture, error) {
	if surface == nil {
		return nil, ErrSurfaceNotConfigured
	}
	tex, err := surface.GetCurrentTexture()
	if err != nil {
		return nil, ClassifyFrameError(err)
	}
	return tex, nil
}

// ClassifyFrameError maps a surface texture acquisition error onto ErrSurfaceLost or
// ErrSurfaceOutOfMemory by matching its text. Unrecognized errors are wrapped unchanged.
// A nil error stays nil.
//
// Surface.GetCurrentTexture in cogentcore/webgpu reports only validation errors and drops the
// surface texture status, so lost, outdated and out-of-memory conditions rarely reach this
// function as error text. Callers should also reconfigure on resize rather than rely on
// ErrSurfaceLost alone.
func ClassifyFrameError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "outofmemory"), strings.Contains(msg, "out of memory"):
		return fmt.Errorf("%w: %w", ErrSurfaceOutOfMemory, err)
	case strings.Contains(msg, "lost"), strings.Contains(msg, "outdated"):
		return fmt.Errorf("%w: %w", ErrSurfaceLost, err)
	}
	return fmt.Errorf("gpu: acquire surface texture: %w", err)
}
