// Copyright (c) 2025, The Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferEvictsOldest(t *testing.T) {
	b := NewBuffer(2)
	b.Push(0, 10)
	b.Push(1, 20)
	b.Push(2, 30)
	assert.Equal(t, []Sample{{1, 20}, {2, 30}}, b.Snapshot())
}

func TestBufferCapacity(t *testing.T) {
	const n, k = 16, 5
	b := NewBuffer(n)
	for i := 0; i < n+k; i++ {
		b.Push(float64(i), float32(i))
	}
	got := b.Snapshot()
	require.Len(t, got, n)
	assert.Equal(t, float64(k), got[0].Time, "oldest k samples evicted")
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1].Time, got[i].Time)
	}
}

func TestBufferOutOfOrderInsert(t *testing.T) {
	b := NewBuffer(10)
	b.Push(1, 1)
	b.Push(3, 3)
	b.Push(2, 2)
	got := b.Snapshot()
	require.Len(t, got, 3)
	assert.Equal(t, []Sample{{1, 1}, {2, 2}, {3, 3}}, got)
}

func TestBufferEqualTimestampsAppend(t *testing.T) {
	b := NewBuffer(10)
	b.Push(1, 1)
	b.Push(1, 2)
	assert.Equal(t, []Sample{{1, 1}, {1, 2}}, b.Snapshot())
}

func TestBufferLatest(t *testing.T) {
	b := NewBuffer(4)
	_, ok := b.Latest()
	assert.False(t, ok)
	b.Push(1, 10)
	b.Push(2, 20)
	last, ok := b.Latest()
	require.True(t, ok)
	assert.Equal(t, Sample{2, 20}, last)
}

func TestBufferConcurrentPushSnapshot(t *testing.T) {
	b := NewBuffer(64)
	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		w := w
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				b.Push(float64(w*1000+i), float32(i))
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 200; j++ {
			got := b.Snapshot()
			assert.LessOrEqual(t, len(got), 64)
			for i := 1; i < len(got); i++ {
				assert.LessOrEqual(t, got[i-1].Time, got[i].Time)
			}
		}
	}()
	wg.Wait()
}

func TestBufferCompact(t *testing.T) {
	b := NewBuffer(100)
	for i := 0; i < 10; i++ {
		b.Push(float64(i), float32(i))
	}
	b.Compact(3)
	got := b.Snapshot()
	assert.Equal(t, []Sample{{0, 0}, {3, 3}, {6, 6}, {9, 9}}, got)
}

func TestBounds(t *testing.T) {
	_, _, _, _, ok := Bounds(nil)
	assert.False(t, ok)

	tmin, tmax, vmin, vmax, ok := Bounds([]Sample{{1, 5}, {3, -2}, {2, 9}})
	require.True(t, ok)
	assert.Equal(t, 1.0, tmin)
	assert.Equal(t, 3.0, tmax)
	assert.Equal(t, float32(-2), vmin)
	assert.Equal(t, float32(9), vmax)
}

func TestSetPushAndSnapshot(t *testing.T) {
	s := NewSet(8)
	s.Push("cpu", 1, 50)
	s.Push("cpu", 2, 60)
	s.Push("mem", 1, 30)

	assert.Equal(t, []Sample{{1, 50}, {2, 60}}, s.Snapshot("cpu"))
	assert.Equal(t, []string{"cpu", "mem"}, s.Names())
	assert.Nil(t, s.Snapshot("disk"))
}

func TestSetAddReplaces(t *testing.T) {
	s := NewSet(8)
	s.Push("cpu", 1, 50)
	b := s.Add("cpu", 2)
	assert.Zero(t, b.Len())
	assert.Equal(t, 2, s.Lookup("cpu").Max())
}
