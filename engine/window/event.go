package window

import "fmt"

// EventType identifies a host event delivered by an EventLoop.
type EventType int

const (
	// EventResume is delivered once when the loop starts; the window should be created then.
	EventResume EventType = iota

	// EventResize carries the new framebuffer size in pixels.
	EventResize

	// EventRedraw asks for one frame to be drawn.
	EventRedraw

	// EventClose asks the application to stop.
	EventClose

	// EventWake is delivered after Wake and carries nothing.
	EventWake
)

func (t EventType) String() string {
	switch t {
	case EventResume:
		return "resume"
	case EventResize:
		return "resize"
	case EventRedraw:
		return "redraw"
	case EventClose:
		return "close"
	case EventWake:
		return "wake"
	}
	return fmt.Sprintf("EventType(%d)", int(t))
}

// Event is a single host event. Width and Height are set for EventResize only.
type Event struct {
	Type   EventType
	Width  int
	Height int
}

// EventLoop delivers host events one at a time on the calling thread.
type EventLoop interface {
	// NextEvent blocks until the next event is available.
	//
	// Returns:
	//   - Event: the next event; EventClose once the loop is closed
	NextEvent() Event

	// RequestRedraw schedules an EventRedraw after any pending events.
	RequestRedraw()

	// CreateWindow creates the native window whose events the loop delivers.
	//
	// Parameters:
	//   - options: functional options to configure the window
	//
	// Returns:
	//   - Window: the created window
	//   - error: an error if the platform window could not be created
	CreateWindow(options ...WindowBuilderOption) (Window, error)

	// Wake makes a blocked NextEvent return EventWake. It is safe to call from any goroutine.
	Wake()

	// Close destroys the window, if any, and releases the platform.
	Close()
}
