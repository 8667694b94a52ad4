// Copyright (c) 2025, The Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package series provides bounded, time-ordered sample buffers that feed
// chart nodes. Buffers are safe for concurrent use: producers push from
// any goroutine while the frame loop snapshots them for painting.
package series

import (
	"slices"
	"sort"
	"sync"
)

// Sample is one data point: a timestamp in seconds and a value.
type Sample struct {
	Time  float64
	Value float32
}

// Buffer is a bounded buffer of samples ordered by time. When pushing
// past capacity, the oldest samples are evicted. This is a fixed-size
// ring, not a time window: bursty arrival can evict samples newer than
// capacity ticks ago.
type Buffer struct {
	mu      sync.RWMutex
	samples []Sample
	max     int
}

// NewBuffer returns a buffer holding at most max samples.
// A max of 0 or less means 1.
func NewBuffer(max int) *Buffer {
	if max < 1 {
		max = 1
	}
	return &Buffer{max: max, samples: make([]Sample, 0, max)}
}

// Max returns the buffer capacity.
func (b *Buffer) Max() int {
	return b.max
}

// Len returns the current number of samples.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.samples)
}

// Push inserts a sample, keeping the buffer ordered by time. The common
// case of a monotonic-or-equal timestamp is an append; an older
// timestamp is accepted and inserted at its ordered position. If the
// buffer is full, the oldest sample is evicted.
func (b *Buffer) Push(time float64, value float32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	s := Sample{Time: time, Value: value}
	n := len(b.samples)
	if n == 0 || time >= b.samples[n-1].Time {
		b.samples = append(b.samples, s)
	} else {
		i := sort.Search(n, func(i int) bool {
			return b.samples[i].Time > time
		})
		b.samples = slices.Insert(b.samples, i, s)
	}
	if len(b.samples) > b.max {
		b.samples = slices.Delete(b.samples, 0, len(b.samples)-b.max)
	}
}

// Clear removes all samples.
func (b *Buffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.samples = b.samples[:0]
}

// Snapshot returns a copy of the current samples. The copy is safe to
// read while producers keep pushing.
func (b *Buffer) Snapshot() []Sample {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.samples)
}

// Latest returns the newest sample and whether the buffer is non-empty.
func (b *Buffer) Latest() (Sample, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if len(b.samples) == 0 {
		return Sample{}, false
	}
	return b.samples[len(b.samples)-1], true
}

// Compact keeps every stride-th sample (and always the newest), halving
// storage pressure for long-lived, slowly changing signals.
func (b *Buffer) Compact(stride int) {
	if stride < 2 {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	n := len(b.samples)
	if n == 0 {
		return
	}
	kept := b.samples[:0]
	for i := 0; i < n; i += stride {
		kept = append(kept, b.samples[i])
	}
	if last := b.samples[n-1]; kept[len(kept)-1] != last {
		kept = append(kept, last)
	}
	b.samples = kept
}

// Bounds reports the time and value extents of the given samples, used
// for auto-scaling chart axes. ok is false when there are no samples.
func Bounds(samples []Sample) (tmin, tmax float64, vmin, vmax float32, ok bool) {
	if len(samples) == 0 {
		return 0, 0, 0, 0, false
	}
	tmin, tmax = samples[0].Time, samples[0].Time
	vmin, vmax = samples[0].Value, samples[0].Value
	for _, s := range samples[1:] {
		tmin = min(tmin, s.Time)
		tmax = max(tmax, s.Time)
		vmin = min(vmin, s.Value)
		vmax = max(vmax, s.Value)
	}
	return tmin, tmax, vmin, vmax, true
}
