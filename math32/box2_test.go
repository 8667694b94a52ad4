// Copyright (c) 2025, The Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBox2Size(t *testing.T) {
	b := B2(10, 20, 30, 60)
	assert.Equal(t, Vec2(20, 40), b.Size())
	assert.False(t, b.IsEmpty())

	var empty Box2
	empty.SetEmpty()
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, Vec2(0, 0), empty.Size(), "size clamps, never negative")
}

func TestBox2InsetClamps(t *testing.T) {
	b := B2(0, 0, 100, 100)
	assert.Equal(t, B2(10, 5, 80, 90), b.Inset(5, 20, 10, 10))

	// insets larger than the box collapse to the center, never invert
	small := B2(0, 0, 10, 10)
	in := small.Inset(20, 20, 20, 20)
	assert.False(t, in.Max.X < in.Min.X)
	assert.False(t, in.Max.Y < in.Min.Y)
}

func TestBox2ContainsAndUnion(t *testing.T) {
	b := B2(0, 0, 10, 10)
	assert.True(t, b.ContainsPoint(Vec2(5, 5)))
	assert.False(t, b.ContainsPoint(Vec2(15, 5)))

	u := b.Union(B2(5, 5, 20, 8))
	assert.Equal(t, B2(0, 0, 20, 10), u)
}

func TestBox2ToRect(t *testing.T) {
	assert.Equal(t, image.Rect(1, 2, 4, 6), B2(1.4, 2.4, 3.6, 5.6).ToRect())
}

func TestVector2Basics(t *testing.T) {
	v := Vec2(3, -4)
	assert.Equal(t, Vec2(4, -3), v.Add(Vec2(1, 1)))
	assert.Equal(t, Vec2(6, -8), v.MulScalar(2))
	assert.Equal(t, Vec2(3, 0), v.ClampZero())
	assert.Equal(t, float32(3), v.Dim(X))
	assert.Equal(t, float32(-4), v.Dim(Y))

	v.SetDim(Y, 7)
	assert.Equal(t, float32(7), v.Y)
	assert.Equal(t, Y, X.Other())
}

func TestScalarHelpers(t *testing.T) {
	assert.Equal(t, float32(5), Clamp(7, 0, 5))
	assert.Equal(t, float32(0), Clamp01(-2))
	assert.Equal(t, float32(1), Clamp01(2))
	assert.Equal(t, float32(5), Lerp(0, 10, 0.5))
	assert.Equal(t, float32(2), Ceil(1.2))
}
