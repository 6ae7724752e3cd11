// Package scheduler drives the assistant's recurring work. Its single
// citizen is a daily timer that fires a task once per local day at a fixed
// hour.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/example/extension-assistant/internal/clock"
)

// Task is the unit of work a Daily timer runs.
type Task func(ctx context.Context) error

// Daily fires a task once per local day at the configured hour. A process
// started after the hour fires immediately for that day; the task itself
// must be idempotent within a day, which lets a restart re-run it safely.
type Daily struct {
	hour   int
	task   Task
	clk    clock.Clock
	logger *slog.Logger

	lastFired clock.Date
}

// NewDaily builds a timer firing at hour (0..23) in Brasília time.
func NewDaily(hour int, task Task, clk clock.Clock, logger *slog.Logger) *Daily {
	if logger == nil {
		logger = slog.Default()
	}
	return &Daily{hour: hour, task: task, clk: clk, logger: logger}
}

// Run blocks until the context is cancelled, firing the task at each
// day's configured hour. Task failures are logged and do not stop the
// timer.
func (d *Daily) Run(ctx context.Context) error {
	for {
		wait := d.untilNextFiring()
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		today := d.clk.Today()
		if today == d.lastFired {
			continue
		}
		if err := d.task(ctx); err != nil {
			d.logger.ErrorContext(ctx, "daily task failed", "error", err)
		}
		d.lastFired = today
	}
}

// untilNextFiring returns the wait before the next run: zero when today's
// firing hour has passed and the task has not yet run today.
func (d *Daily) untilNextFiring() time.Duration {
	now := d.clk.Now().In(clock.Location)
	today := clock.DateOf(now)

	firing := time.Date(today.Year, time.Month(today.Month), today.Day, d.hour, 0, 0, 0, clock.Location)
	if now.Before(firing) {
		return firing.Sub(now)
	}
	if d.lastFired != today {
		return 0
	}
	return firing.AddDate(0, 0, 1).Sub(now)
}
