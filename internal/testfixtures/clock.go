// Package testfixtures provides deterministic clocks, identifier
// generators, and domain value builders shared by the service and store
// tests.
package testfixtures

import (
	"sync"
	"time"

	"github.com/example/extension-assistant/internal/clock"
)

// ReferenceTime returns the shared test instant: Tuesday 05/03/2024 at
// 10:00 in Brasília time, a plain working day inside every fixture
// project's period.
func ReferenceTime() time.Time {
	return time.Date(2024, time.March, 5, 10, 0, 0, 0, clock.Location)
}

// Clock provides a controllable time source for tests. It implements
// clock.Clock.
type Clock struct {
	mu      sync.Mutex
	current time.Time
}

// NewClock returns a clock initialised to the supplied time. When start is
// the zero value, the shared ReferenceTime is used.
func NewClock(start time.Time) *Clock {
	if start.IsZero() {
		start = ReferenceTime()
	}
	return &Clock{current: start}
}

// Now returns the current instant tracked by the clock.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Today returns the calendar date of the tracked instant in Brasília time.
func (c *Clock) Today() clock.Date {
	return clock.DateOf(c.Now().In(clock.Location))
}

// Set updates the clock to the provided time.
func (c *Clock) Set(t time.Time) {
	c.mu.Lock()
	c.current = t
	c.mu.Unlock()
}

// Advance moves the clock forward by the provided duration and returns the
// updated time.
func (c *Clock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	c.current = c.current.Add(d)
	updated := c.current
	c.mu.Unlock()
	return updated
}
