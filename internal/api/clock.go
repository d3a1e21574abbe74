package api

import (
	"context"
	"sync/atomic"
	"time"
)

// Clock holds the wall-clock string shown in the app chrome. It is updated
// on a fixed tick and read by the health endpoints; it has no interaction
// with any scheduling engine.
type Clock struct {
	now atomic.Value // string, "15:04:05"
}

func NewClock() *Clock {
	c := &Clock{}
	c.now.Store(time.Now().Format("15:04:05"))
	return c
}

// Run refreshes the display time until the context is cancelled.
func (c *Clock) Run(ctx context.Context, tick time.Duration) {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case t := <-ticker.C:
			c.now.Store(t.Format("15:04:05"))
		}
	}
}

// Now returns the last rendered display time.
func (c *Clock) Now() string {
	return c.now.Load().(string)
}
