// Copyright (c) 2025, The Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"image"
)

// Vector2 is a 2D vector or point with X and Y components.
type Vector2 struct {
	X float32
	Y float32
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float32) Vector2 {
	return Vector2{x, y}
}

// Vector2Scalar returns a new [Vector2] with all components set to the given scalar.
func Vector2Scalar(s float32) Vector2 {
	return Vector2{s, s}
}

// FromPoint returns a new [Vector2] from the given [image.Point].
func FromPoint(pt image.Point) Vector2 {
	return Vec2(float32(pt.X), float32(pt.Y))
}

// String implements the fmt.Stringer interface.
func (v Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// Add returns the vector sum of v and other.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vec2(v.X+other.X, v.Y+other.Y)
}

// Sub returns v minus other.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vec2(v.X-other.X, v.Y-other.Y)
}

// Mul returns the component-wise product of v and other.
func (v Vector2) Mul(other Vector2) Vector2 {
	return Vec2(v.X*other.X, v.Y*other.Y)
}

// MulScalar returns v with each component multiplied by the scalar s.
func (v Vector2) MulScalar(s float32) Vector2 {
	return Vec2(v.X*s, v.Y*s)
}

// Max returns the component-wise maximum of v and other.
func (v Vector2) Max(other Vector2) Vector2 {
	return Vec2(Max(v.X, other.X), Max(v.Y, other.Y))
}

// Min returns the component-wise minimum of v and other.
func (v Vector2) Min(other Vector2) Vector2 {
	return Vec2(Min(v.X, other.X), Min(v.Y, other.Y))
}

// ClampZero clamps any negative component to zero.
// Layout sizes are never negative.
func (v Vector2) ClampZero() Vector2 {
	return Vec2(Max(v.X, 0), Max(v.Y, 0))
}

// ToPoint returns an [image.Point] version of v, truncating components.
func (v Vector2) ToPoint() image.Point {
	return image.Point{int(v.X), int(v.Y)}
}

// ToPointFloor returns an [image.Point] version of v, flooring components.
func (v Vector2) ToPointFloor() image.Point {
	return image.Point{int(Floor(v.X)), int(Floor(v.Y))}
}

// ToPointCeil returns an [image.Point] version of v, ceiling components.
func (v Vector2) ToPointCeil() image.Point {
	return image.Point{int(Ceil(v.X)), int(Ceil(v.Y))}
}

// Dim is a 2D dimension (axis): X or Y.
type Dim int32

const (
	// X is the horizontal axis.
	X Dim = iota

	// Y is the vertical axis.
	Y
)

// Other returns the other dimension.
func (d Dim) Other() Dim {
	if d == X {
		return Y
	}
	return X
}

// Dim returns the component of v along dimension d.
func (v Vector2) Dim(d Dim) float32 {
	if d == X {
		return v.X
	}
	return v.Y
}

// SetDim sets the component of v along dimension d.
func (v *Vector2) SetDim(d Dim, value float32) {
	if d == X {
		v.X = value
	} else {
		v.Y = value
	}
}
