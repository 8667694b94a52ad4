// Copyright (c) 2025, The Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"context"
	"log/slog"
	"time"
)

// Collector polls a data callback on a fixed interval and pushes the
// returned samples into a set. It runs on its own goroutine; the
// buffers' locking keeps it safe against the frame loop.
type Collector struct {

	// Set receives the samples, one buffer per returned name.
	Set *Set

	// Callback produces the next batch of samples, keyed by series
	// name. It is treated purely as an input source.
	Callback func() map[string]Sample

	// Interval is the polling period. Zero or less defaults to 100ms.
	Interval time.Duration
}

// Run polls until the context is cancelled. It always returns
// the context error.
func (c *Collector) Run(ctx context.Context) error {
	interval := c.Interval
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	if c.Set == nil || c.Callback == nil {
		slog.Error("series.Collector: missing set or callback")
		<-ctx.Done()
		return ctx.Err()
	}
	tick := time.NewTicker(interval)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick.C:
			for name, s := range c.Callback() {
				c.Set.Push(name, s.Time, s.Value)
			}
		}
	}
}
