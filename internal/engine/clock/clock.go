// Package clock measures wall time since the app started.
package clock

import "time"

// Clock reports elapsed seconds since Start.
type Clock struct {
	now   func() time.Time
	start time.Time
}

// New returns a clock on the wall clock. Call Start before Elapsed.
func New() *Clock {
	return NewWithSource(time.Now)
}

// NewWithSource returns a clock driven by now.
func NewWithSource(now func() time.Time) *Clock {
	return &Clock{now: now}
}

// Start resets the origin to the current time.
func (c *Clock) Start() {
	c.start = c.now()
}

// Started reports whether Start was called.
func (c *Clock) Started() bool {
	return !c.start.IsZero()
}

// Elapsed returns seconds since Start, or 0 before Start.
func (c *Clock) Elapsed() float64 {
	if !c.Started() {
		return 0
	}
	return c.now().Sub(c.start).Seconds()
}
