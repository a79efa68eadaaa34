package engine

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/Carmen-Shannon/helion-go/engine/chart"
	"github.com/Carmen-Shannon/helion-go/engine/gpu"
	"github.com/Carmen-Shannon/helion-go/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
)

type fakeWindow struct {
	width, height int
}

func (w *fakeWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor { return nil }
func (w *fakeWindow) Close() error                               { return nil }
func (w *fakeWindow) Width() int                                 { return w.width }
func (w *fakeWindow) Height() int                                { return w.height }

// fakeLoop replays scripted events and reports Close once they run out.
type fakeLoop struct {
	events        []window.Event
	redraws       int
	windows       int
	closed        bool
	woken         atomic.Bool
	createErr     error
	onNext        func()
	windowOptions int
}

func (l *fakeLoop) NextEvent() window.Event {
	if l.onNext != nil {
		l.onNext()
	}
	if len(l.events) == 0 {
		return window.Event{Type: window.EventClose}
	}
	e := l.events[0]
	l.events = l.events[1:]
	return e
}

func (l *fakeLoop) RequestRedraw() { l.redraws++ }
func (l *fakeLoop) Wake()          { l.woken.Store(true) }
func (l *fakeLoop) Close()         { l.closed = true }

func (l *fakeLoop) CreateWindow(options ...window.WindowBuilderOption) (window.Window, error) {
	if l.createErr != nil {
		return nil, l.createErr
	}
	l.windows++
	l.windowOptions = len(options)
	return &fakeWindow{width: 800, height: 600}, nil
}

type fakeTarget struct {
	renderErrs []error
	renders    int
	clears     []chart.Color
	resizes    [][2]int
	released   int
	w, h       int
}

func (t *fakeTarget) render(clear chart.Color) error {
	t.renders++
	t.clears = append(t.clears, clear)
	if len(t.renderErrs) == 0 {
		return nil
	}
	err := t.renderErrs[0]
	t.renderErrs = t.renderErrs[1:]
	return err
}

func (t *fakeTarget) resize(width, height int) error {
	t.resizes = append(t.resizes, [2]int{width, height})
	t.w, t.h = width, height
	return nil
}

func (t *fakeTarget) size() (int, int) { return t.w, t.h }
func (t *fakeTarget) release()         { t.released++ }

func newTestDriver(loop *fakeLoop, target *fakeTarget, options ...DriverBuilderOption) (*Driver, *int) {
	created := 0
	d := NewDriver(chart.NewChartData(800, 600), append([]DriverBuilderOption{WithEventLoop(loop)}, options...)...)
	d.newTarget = func(w window.Window, data *chart.ChartData) (renderTarget, error) {
		created++
		target.w, target.h = w.Width(), w.Height()
		return target, nil
	}
	return d, &created
}

func events(types ...window.EventType) []window.Event {
	out := make([]window.Event, len(types))
	for i, t := range types {
		out[i] = window.Event{Type: t}
	}
	return out
}

func TestDriverResumeCreatesTarget(t *testing.T) {
	loop := &fakeLoop{events: events(window.EventResume)}
	target := &fakeTarget{}
	d, created := newTestDriver(loop, target)

	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if *created != 1 {
		t.Errorf("targets created = %d, want 1", *created)
	}
	if loop.windows != 1 {
		t.Errorf("windows created = %d, want 1", loop.windows)
	}
	if loop.windowOptions != 3 {
		t.Errorf("window options = %d, want 3", loop.windowOptions)
	}
	if loop.redraws != 1 {
		t.Errorf("redraw requests = %d, want 1", loop.redraws)
	}
	if target.released != 1 {
		t.Errorf("target released %d times, want 1", target.released)
	}
	if !loop.closed {
		t.Error("event loop was not closed")
	}
	if d.State() != StateUninitialized {
		t.Errorf("State() after Run = %v, want %v", d.State(), StateUninitialized)
	}
}

func TestDriverSecondResumeIgnored(t *testing.T) {
	loop := &fakeLoop{events: events(window.EventResume, window.EventResume)}
	target := &fakeTarget{}
	d, created := newTestDriver(loop, target)

	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if *created != 1 || loop.windows != 1 {
		t.Errorf("created targets = %d, windows = %d, want 1 and 1", *created, loop.windows)
	}
}

func TestDriverRedrawUsesClearColor(t *testing.T) {
	black := chart.Color{A: 1}
	tests := []struct {
		name    string
		options []DriverBuilderOption
		want    chart.Color
	}{
		{name: "default white", want: chart.White},
		{name: "custom", options: []DriverBuilderOption{WithClearColor(black)}, want: black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loop := &fakeLoop{events: events(window.EventResume, window.EventRedraw, window.EventRedraw)}
			target := &fakeTarget{}
			d, _ := newTestDriver(loop, target, tt.options...)

			if err := d.Run(context.Background()); err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if target.renders != 2 {
				t.Fatalf("renders = %d, want 2", target.renders)
			}
			for i, c := range target.clears {
				if c != tt.want {
					t.Errorf("clear[%d] = %+v, want %+v", i, c, tt.want)
				}
			}
			// one request on resume plus one per frame
			if loop.redraws != 3 {
				t.Errorf("redraw requests = %d, want 3", loop.redraws)
			}
		})
	}
}

func TestDriverRedrawBeforeResume(t *testing.T) {
	loop := &fakeLoop{events: events(window.EventRedraw)}
	target := &fakeTarget{}
	d, _ := newTestDriver(loop, target)

	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if target.renders != 0 {
		t.Errorf("renders = %d, want 0", target.renders)
	}
	if target.released != 0 {
		t.Errorf("released = %d, want 0", target.released)
	}
}

func TestDriverRenderErrors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantErr     error
		wantResizes int
		wantRenders int
	}{
		{name: "lost reconfigures", err: gpu.ErrSurfaceLost, wantResizes: 1, wantRenders: 2},
		{name: "wrapped lost reconfigures", err: fmt.Errorf("frame: %w", gpu.ErrSurfaceLost), wantResizes: 1, wantRenders: 2},
		{name: "out of memory is fatal", err: gpu.ErrSurfaceOutOfMemory, wantErr: gpu.ErrSurfaceOutOfMemory, wantRenders: 1},
		{name: "other errors continue", err: errors.New("timeout"), wantRenders: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loop := &fakeLoop{events: events(window.EventResume, window.EventRedraw, window.EventRedraw)}
			target := &fakeTarget{renderErrs: []error{tt.err}}
			d, _ := newTestDriver(loop, target)

			err := d.Run(context.Background())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Run() error = %v, want %v", err, tt.wantErr)
			}
			if len(target.resizes) != tt.wantResizes {
				t.Errorf("resizes = %d, want %d", len(target.resizes), tt.wantResizes)
			}
			if tt.wantResizes > 0 && target.resizes[0] != [2]int{800, 600} {
				t.Errorf("reconfigured at %v, want [800 600]", target.resizes[0])
			}
			if target.renders != tt.wantRenders {
				t.Errorf("renders = %d, want %d", target.renders, tt.wantRenders)
			}
			if target.released != 1 {
				t.Errorf("released = %d, want 1", target.released)
			}
		})
	}
}

func TestDriverResize(t *testing.T) {
	loop := &fakeLoop{events: []window.Event{
		{Type: window.EventResume},
		{Type: window.EventResize, Width: 0, Height: 0},
		{Type: window.EventResize, Width: 1024, Height: 0},
		{Type: window.EventResize, Width: 1024, Height: 768},
	}}
	target := &fakeTarget{}
	d, _ := newTestDriver(loop, target)

	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(target.resizes) != 1 {
		t.Fatalf("resizes = %v, want exactly one", target.resizes)
	}
	if target.resizes[0] != [2]int{1024, 768} {
		t.Errorf("resize = %v, want [1024 768]", target.resizes[0])
	}
}

func TestDriverWakeContinues(t *testing.T) {
	loop := &fakeLoop{events: events(window.EventResume, window.EventWake, window.EventRedraw)}
	target := &fakeTarget{}
	d, _ := newTestDriver(loop, target)

	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if target.renders != 1 {
		t.Errorf("renders = %d, want 1", target.renders)
	}
}

func TestDriverContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	loop := &fakeLoop{events: events(window.EventResume, window.EventRedraw, window.EventRedraw, window.EventRedraw)}
	target := &fakeTarget{}
	d, _ := newTestDriver(loop, target)
	loop.onNext = func() {
		if len(loop.events) == 2 {
			cancel()
		}
	}

	err := d.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() error = %v, want %v", err, context.Canceled)
	}
	if target.released != 1 {
		t.Errorf("released = %d, want 1", target.released)
	}
	if !loop.closed {
		t.Error("event loop was not closed")
	}
}

func TestDriverCreateFailures(t *testing.T) {
	t.Run("window", func(t *testing.T) {
		loop := &fakeLoop{events: events(window.EventResume), createErr: errors.New("no display")}
		d, created := newTestDriver(loop, &fakeTarget{})

		if err := d.Run(context.Background()); err == nil {
			t.Fatal("Run() error = nil, want window error")
		}
		if *created != 0 {
			t.Errorf("targets created = %d, want 0", *created)
		}
		if !loop.closed {
			t.Error("event loop was not closed")
		}
	})

	t.Run("target", func(t *testing.T) {
		loop := &fakeLoop{events: events(window.EventResume)}
		d := NewDriver(nil, WithEventLoop(loop))
		d.newTarget = func(window.Window, *chart.ChartData) (renderTarget, error) {
			return nil, gpu.ErrInitialization
		}

		err := d.Run(context.Background())
		if !errors.Is(err, gpu.ErrInitialization) {
			t.Fatalf("Run() error = %v, want %v", err, gpu.ErrInitialization)
		}
		if d.State() != StateUninitialized {
			t.Errorf("State() = %v, want %v", d.State(), StateUninitialized)
		}
	})
}

func TestDriverProfiling(t *testing.T) {
	loop := &fakeLoop{events: events(window.EventResume, window.EventRedraw)}
	target := &fakeTarget{}
	d, _ := newTestDriver(loop, target, WithProfiling(true), WithTitle("profiled"))

	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !d.profilingEnabled || d.title != "profiled" {
		t.Errorf("options not applied: profiling = %v, title = %q", d.profilingEnabled, d.title)
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		s    State
		want string
	}{
		{StateUninitialized, "uninitialized"},
		{StateRunning, "running"},
		{State(9), "State(9)"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", int(tt.s), got, tt.want)
		}
	}
}
