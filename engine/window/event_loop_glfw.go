package window

import (
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/Carmen-Shannon/helion-go/common"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// glfwEventLoop queues GLFW callbacks as Events. It blocks in WaitEvents while idle and
// only polls while a redraw is pending, so an idle window costs no CPU.
type glfwEventLoop struct {
	queue         []Event
	redrawPending bool
	closed        bool
	initialized   bool
	window        *engineWindow

	// woken is set by Wake; glfwReady guards PostEmptyEvent before Init and after Terminate.
	woken     atomic.Bool
	glfwReady atomic.Bool

	// wait and poll default to glfw.WaitEvents and glfw.PollEvents.
	wait func()
	poll func()
}

var _ EventLoop = &glfwEventLoop{}

// NewEventLoop creates a GLFW event loop. The first event it delivers is EventResume.
// The calling goroutine is locked to its OS thread, as GLFW requires, and every EventLoop
// method must be called from it.
//
// Returns:
//   - EventLoop: the event loop
func NewEventLoop() EventLoop {
	runtime.LockOSThread()
	return &glfwEventLoop{
		queue: []Event{{Type: EventResume}},
		wait:  glfw.WaitEvents,
		poll:  glfw.PollEvents,
	}
}

func (l *glfwEventLoop) push(e Event) {
	l.queue = append(l.queue, e)
}

func (l *glfwEventLoop) NextEvent() Event {
	for {
		if l.woken.CompareAndSwap(true, false) {
			return Event{Type: EventWake}
		}
		if len(l.queue) > 0 {
			e := l.queue[0]
			l.queue = l.queue[1:]
			if e.Type == EventClose {
				l.closed = true
			}
			return e
		}
		if l.closed || l.window == nil {
			return Event{Type: EventClose}
		}
		if l.redrawPending {
			l.poll()
			if len(l.queue) == 0 {
				l.redrawPending = false
				return Event{Type: EventRedraw}
			}
			continue
		}
		l.wait()
	}
}

func (l *glfwEventLoop) RequestRedraw() {
	l.redrawPending = true
}

func (l *glfwEventLoop) Wake() {
	l.woken.Store(true)
	if l.glfwReady.Load() {
		glfw.PostEmptyEvent()
	}
}

func (l *glfwEventLoop) CreateWindow(options ...WindowBuilderOption) (Window, error) {
	if l.window != nil {
		return nil, fmt.Errorf("window: event loop already has a window")
	}
	if !l.initialized {
		if err := glfw.Init(); err != nil {
			return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
		}
		l.initialized = true
		l.glfwReady.Store(true)
	}

	w := newEngineWindow(options...)
	w.onResize = func(width, height int) {
		l.push(Event{Type: EventResize, Width: width, Height: height})
	}
	w.onClose = func() {
		l.push(Event{Type: EventClose})
	}
	if err := newPlatformWindow(w); err != nil {
		return nil, err
	}
	l.window = w
	common.Logger().Info("window: created", "title", w.title, "width", w.width, "height", w.height)
	return w, nil
}

func (l *glfwEventLoop) Close() {
	if l.window != nil {
		if err := l.window.Close(); err != nil {
			common.Logger().Warn("window: close failed", "error", err)
		}
		l.window = nil
	}
	if l.initialized {
		l.glfwReady.Store(false)
		glfw.Terminate()
		l.initialized = false
	}
	l.closed = true
	l.queue = nil
}
