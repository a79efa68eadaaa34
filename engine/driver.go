// Package engine runs a scatter plot in a native window: it reacts to host events, owns the
// GPU objects for the window and renders continuously until the window closes.
package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/helion-go/common"
	"github.com/Carmen-Shannon/helion-go/engine/chart"
	"github.com/Carmen-Shannon/helion-go/engine/gpu"
	"github.com/Carmen-Shannon/helion-go/engine/profiler"
	"github.com/Carmen-Shannon/helion-go/engine/window"
)

// State is the lifecycle stage of a Driver.
type State int

const (
	// StateUninitialized means no window or GPU objects exist.
	StateUninitialized State = iota

	// StateRunning means the window, surface, device and renderer exist.
	StateRunning
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRunning:
		return "running"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// renderTarget is everything the driver renders through once the window exists.
type renderTarget interface {
	render(clear chart.Color) error
	resize(width, height int) error
	size() (width, height int)
	release()
}

// targetFactory creates the render target for a newly created window.
type targetFactory func(w window.Window, data *chart.ChartData) (renderTarget, error)

// Driver shows one ChartData in a native window. It exclusively owns the window, surface,
// device, queue and renderer, and releases them when Run returns.
type Driver struct {
	data       *chart.ChartData
	title      string
	clearColor chart.Color

	loop             window.EventLoop
	profiler         *profiler.Profiler
	profilingEnabled bool
	newTarget        targetFactory

	state  State
	window window.Window
	target renderTarget
}

// NewDriver creates a Driver for data. Nothing is created until Run receives the resume event.
//
// Parameters:
//   - data: the chart data to display; its viewport sets the initial window size
//   - options: functional options for driver configuration
//
// Returns:
//   - *Driver: the driver
func NewDriver(data *chart.ChartData, options ...DriverBuilderOption) *Driver {
	d := &Driver{
		data:       data,
		title:      "Helion",
		clearColor: chart.White,
		profiler:   profiler.NewProfiler(),
		newTarget:  newWindowTarget,
	}
	for _, opt := range options {
		opt(d)
	}
	if d.data == nil {
		d.data = chart.NewChartData(chart.DefaultViewportWidth, chart.DefaultViewportHeight)
	}
	return d
}

// State returns the current lifecycle stage.
func (d *Driver) State() State {
	return d.state
}

// Run consumes host events until the window closes, a fatal render error occurs or ctx is
// done. It must be called from the goroutine that created the event loop. All GPU objects
// and the window are released before it returns.
//
// Parameters:
//   - ctx: cancels the loop
//
// Returns:
//   - error: nil on close, ctx.Err() on cancellation, or the fatal error
func (d *Driver) Run(ctx context.Context) error {
	if d.loop == nil {
		d.loop = window.NewEventLoop()
	}
	defer d.shutdown()

	stop := context.AfterFunc(ctx, d.loop.Wake)
	defer stop()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		e := d.loop.NextEvent()
		switch e.Type {
		case window.EventResume:
			if err := d.resume(); err != nil {
				return err
			}
		case window.EventResize:
			d.resize(e.Width, e.Height)
		case window.EventRedraw:
			if err := d.redraw(); err != nil {
				return err
			}
		case window.EventClose:
			common.Logger().Info("engine: window closed")
			return nil
		}
	}
}

// resume creates the window and render target on the first resume; later resumes are ignored.
func (d *Driver) resume() error {
	if d.state == StateRunning {
		return nil
	}

	w, err := d.loop.CreateWindow(
		window.WithTitle(d.title),
		window.WithWidth(int(d.data.ViewportWidth())),
		window.WithHeight(int(d.data.ViewportHeight())),
	)
	if err != nil {
		return fmt.Errorf("engine: create window: %w", err)
	}
	d.window = w

	target, err := d.newTarget(w, d.data)
	if err != nil {
		return fmt.Errorf("engine: create render target: %w", err)
	}
	d.target = target
	d.state = StateRunning

	common.Logger().Info("engine: running", "points", d.data.Len(), "width", w.Width(), "height", w.Height())
	d.loop.RequestRedraw()
	return nil
}

// redraw renders one frame and schedules the next. A lost surface is reconfigured at the
// current size and out-of-memory is fatal; other frame errors are logged and skipped.
func (d *Driver) redraw() error {
	if d.target == nil {
		return nil
	}

	err := d.target.render(d.clearColor)
	switch {
	case err == nil:
	case errors.Is(err, gpu.ErrSurfaceLost):
		width, height := d.target.size()
		common.Logger().Warn("engine: surface lost, reconfiguring", "width", width, "height", height)
		if rerr := d.target.resize(width, height); rerr != nil {
			common.Logger().Error("engine: reconfigure failed", "error", rerr)
		}
	case errors.Is(err, gpu.ErrSurfaceOutOfMemory):
		return fmt.Errorf("engine: render: %w", err)
	default:
		common.Logger().Error("engine: render failed", "error", err)
	}

	if d.profilingEnabled {
		d.profiler.Tick()
	}
	d.loop.RequestRedraw()
	return nil
}

// resize reconfigures the surface for a nonzero size; minimized windows report zero and are ignored.
func (d *Driver) resize(width, height int) {
	if width <= 0 || height <= 0 || d.target == nil {
		return
	}
	if err := d.target.resize(width, height); err != nil {
		common.Logger().Error("engine: resize failed", "width", width, "height", height, "error", err)
	}
}

func (d *Driver) shutdown() {
	if d.target != nil {
		d.target.release()
		d.target = nil
	}
	d.loop.Close()
	d.window = nil
	d.state = StateUninitialized
}
