package profiler

import (
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestProfilerTick(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	p := NewProfiler(WithInterval(time.Second), WithClock(clock.now))

	for i := 0; i < 59; i++ {
		clock.advance(10 * time.Millisecond)
		if _, ok := p.Tick(); ok {
			t.Fatalf("Tick() sampled at frame %d, before the interval elapsed", i)
		}
	}

	clock.advance(410 * time.Millisecond)
	s, ok := p.Tick()
	if !ok {
		t.Fatalf("Tick() did not sample after the interval elapsed")
	}
	if s.Frames != 60 {
		t.Errorf("Frames = %d, want 60", s.Frames)
	}
	if s.FPS != 60 {
		t.Errorf("FPS = %v, want 60", s.FPS)
	}
	if s.SysMB <= 0 {
		t.Errorf("SysMB = %v, want > 0", s.SysMB)
	}

	clock.advance(10 * time.Millisecond)
	if _, ok := p.Tick(); ok {
		t.Errorf("Tick() sampled right after a sample, want a new window")
	}
}

func TestProfilerOptionsIgnoreInvalid(t *testing.T) {
	p := NewProfiler(WithInterval(0), WithClock(nil))
	if p.updateInterval != time.Second {
		t.Errorf("updateInterval = %v, want 1s", p.updateInterval)
	}
	if p.now == nil {
		t.Errorf("now = nil, want time.Now")
	}
}
