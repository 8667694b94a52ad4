// Copyright (c) 2025, The Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"slices"
	"sync"
)

// Set is a named collection of buffers. Chart nodes reference buffers
// by name, so producers and the tree never share pointers directly.
type Set struct {
	mu      sync.RWMutex
	buffers map[string]*Buffer
	max     int
}

// NewSet returns a set whose buffers default to the given capacity.
func NewSet(max int) *Set {
	return &Set{buffers: map[string]*Buffer{}, max: max}
}

// Add creates the named buffer with the given capacity, replacing any
// existing buffer of that name, and returns it.
func (s *Set) Add(name string, capacity int) *Buffer {
	b := NewBuffer(capacity)
	s.mu.Lock()
	s.buffers[name] = b
	s.mu.Unlock()
	return b
}

// Buffer returns the named buffer, creating it at the set's default
// capacity if it does not exist yet.
func (s *Set) Buffer(name string) *Buffer {
	s.mu.RLock()
	b := s.buffers[name]
	s.mu.RUnlock()
	if b != nil {
		return b
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if b = s.buffers[name]; b == nil {
		b = NewBuffer(s.max)
		s.buffers[name] = b
	}
	return b
}

// Lookup returns the named buffer, or nil if it was never created.
func (s *Set) Lookup(name string) *Buffer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.buffers[name]
}

// Push adds a sample to the named buffer, creating it on first use.
func (s *Set) Push(name string, time float64, value float32) {
	s.Buffer(name).Push(time, value)
}

// Snapshot returns a copy of the named buffer's samples, or nil if the
// buffer was never created.
func (s *Set) Snapshot(name string) []Sample {
	if b := s.Lookup(name); b != nil {
		return b.Snapshot()
	}
	return nil
}

// Names returns the buffer names in sorted order.
func (s *Set) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.buffers))
	for name := range s.buffers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
