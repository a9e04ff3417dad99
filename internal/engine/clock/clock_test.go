package clock

import (
	"testing"
	"time"
)

type fakeTime struct{ t time.Time }

func (f *fakeTime) now() time.Time { return f.t }

func TestElapsed(t *testing.T) {
	ft := &fakeTime{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := NewWithSource(ft.now)

	if c.Elapsed() != 0 {
		t.Error("elapsed before Start should be 0")
	}

	c.Start()
	ft.t = ft.t.Add(1500 * time.Millisecond)
	if got := c.Elapsed(); got != 1.5 {
		t.Errorf("elapsed: got %v, want 1.5", got)
	}

	c.Start()
	if got := c.Elapsed(); got != 0 {
		t.Errorf("elapsed after restart: got %v, want 0", got)
	}
}

func TestWallClockMonotonic(t *testing.T) {
	c := New()
	c.Start()
	a := c.Elapsed()
	b := c.Elapsed()
	if b < a {
		t.Errorf("elapsed went backwards: %v then %v", a, b)
	}
}
