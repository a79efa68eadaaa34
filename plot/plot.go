// Package plot is the host-facing entry point: it builds scatter data from raw coordinates
// and shows it in a window or renders it through a caller-owned GPU backend.
package plot

import (
	"context"

	"github.com/Carmen-Shannon/helion-go/common"
	"github.com/Carmen-Shannon/helion-go/engine"
	"github.com/Carmen-Shannon/helion-go/engine/chart"
	"github.com/Carmen-Shannon/helion-go/engine/renderer"
)

// DefaultTitle is the window title Show uses when given an empty title.
const DefaultTitle = "Helion Scatter"

// Summary describes how a ScatterPlot was built from its inputs.
type Summary struct {
	// Points is the number of points that will be drawn.
	Points int

	// XLen and YLen are the lengths of the input slices.
	XLen, YLen int

	// Truncated is true when the inputs differed in length and the longer one was cut.
	Truncated bool
}

// backendRenderer is a BackendRenderer that owns GPU resources.
type backendRenderer interface {
	renderer.BackendRenderer
	Release()
}

// ScatterPlot is a normalized scatter dataset ready for display.
type ScatterPlot struct {
	data       *chart.ChartData
	xLen, yLen int

	renderer    backendRenderer
	newRenderer func(renderer.Backend) (backendRenderer, error)
}

// Scatter normalizes x and y into a ScatterPlot. When the slices differ in length the
// longer one is truncated and a warning is logged.
//
// Parameters:
//   - x: the x coordinates
//   - y: the y coordinates
//   - opts: scatter options such as color, size, viewport and output ranges
//
// Returns:
//   - *ScatterPlot: the plot
func Scatter(x, y []float64, opts ...chart.ScatterOption) *ScatterPlot {
	if len(x) != len(y) {
		common.Logger().Warn("plot: x and y lengths differ, truncating",
			"x", len(x), "y", len(y), "points", min(len(x), len(y)))
	}
	return &ScatterPlot{
		data:        chart.NewScatter(x, y, opts...),
		xLen:        len(x),
		yLen:        len(y),
		newRenderer: newScatterRenderer,
	}
}

func newScatterRenderer(backend renderer.Backend) (backendRenderer, error) {
	return renderer.NewBackendScatterRenderer(backend)
}

// PointCount returns the number of points that will be drawn.
func (p *ScatterPlot) PointCount() int {
	return p.data.Len()
}

// Summary returns the point count and input lengths.
func (p *ScatterPlot) Summary() Summary {
	return Summary{
		Points:    p.data.Len(),
		XLen:      p.xLen,
		YLen:      p.yLen,
		Truncated: p.xLen != p.yLen,
	}
}

// Data returns the normalized chart data.
func (p *ScatterPlot) Data() *chart.ChartData {
	return p.data
}

// Show opens a window titled title and renders the plot until the window is closed or ctx
// is done. It blocks and must be called from the main goroutine.
//
// Parameters:
//   - ctx: cancels the window loop
//   - title: the window title; empty means DefaultTitle
//   - opts: additional driver options
//
// Returns:
//   - error: nil when the window was closed, otherwise the cancellation or fatal error
func (p *ScatterPlot) Show(ctx context.Context, title string, opts ...engine.DriverBuilderOption) error {
	options := append([]engine.DriverBuilderOption{engine.WithTitle(common.Coalesce(title, DefaultTitle))}, opts...)
	return engine.NewDriver(p.data, options...).Run(ctx)
}

// RenderTo renders one frame of the plot to backend's surface. The renderer is created and
// the points uploaded on the first call; later calls reuse them.
//
// Parameters:
//   - backend: an initialized backend with a configured surface
//   - opts: per-frame options
//
// Returns:
//   - error: renderer.ErrBackendNotReady, a pipeline or upload error, or a frame error
func (p *ScatterPlot) RenderTo(backend renderer.Backend, opts renderer.RenderOptions) error {
	if p.renderer == nil {
		r, err := p.newRenderer(backend)
		if err != nil {
			return err
		}
		if err := r.UpdateData(backend, p.data); err != nil {
			r.Release()
			return err
		}
		p.renderer = r
	}
	return p.renderer.RenderWithBackend(backend, opts)
}

// Release frees the GPU resources created by RenderTo. The plot can render again afterwards.
func (p *ScatterPlot) Release() {
	if p.renderer != nil {
		p.renderer.Release()
		p.renderer = nil
	}
}
