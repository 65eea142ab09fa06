package engine

import (
	"context"
	"time"

	"github.com/lixenwraith/ascii-portrait/parameter"
)

// Loop is the single-threaded cooperative frame loop
// Input goroutines never touch render state; they send closures on Events which run here between frames
type Loop struct {
	Interval time.Duration
	Queue    *FrameQueue
	Events   <-chan func()

	// AfterFrame runs after each non-empty Fire, typically a screen flush
	AfterFrame func()

	// Ticks overrides the interval ticker, for tests
	Ticks <-chan time.Time
}

// Run blocks until ctx is cancelled or Events is closed
func (l *Loop) Run(ctx context.Context) error {
	ticks := l.Ticks
	if ticks == nil {
		interval := l.Interval
		if interval <= 0 {
			interval = parameter.FrameInterval
		}
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		ticks = ticker.C
	}

	events := l.Events
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case fn, ok := <-events:
			if !ok {
				return nil
			}
			// Re-check so nothing runs after cancellation wins a tie
			if ctx.Err() != nil {
				return ctx.Err()
			}
			fn()

		case <-ticks:
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if l.Queue.Fire() > 0 && l.AfterFrame != nil {
				l.AfterFrame()
			}
		}
	}
}
