// Copyright (c) 2025, The Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 provides the float32 scalar and 2D geometry support
// used by the lumen layout and rendering engine. Scalar functions are
// mostly thin wrappers around chewxy/math32, which has optimized
// implementations.
package math32

import (
	"math"

	"github.com/chewxy/math32"
)

// Mathematical constants.
const (
	Pi = math.Pi

	// Infinity is the value used for empty bounding box extents.
	Infinity = float32(math.MaxFloat32)
)

// Abs returns the absolute value of x.
func Abs(x float32) float32 { return math32.Abs(x) }

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 { return math32.Sqrt(x) }

// Sin returns the sine of the radian argument x.
func Sin(x float32) float32 { return math32.Sin(x) }

// Cos returns the cosine of the radian argument x.
func Cos(x float32) float32 { return math32.Cos(x) }

// Pow returns x**y, the base-x exponential of y.
func Pow(x, y float32) float32 { return math32.Pow(x, y) }

// Floor returns the greatest integer value less than or equal to x.
func Floor(x float32) float32 { return math32.Floor(x) }

// Ceil returns the least integer value greater than or equal to x.
func Ceil(x float32) float32 { return math32.Ceil(x) }

// Round returns the nearest integer, rounding half away from zero.
func Round(x float32) float32 { return math32.Round(x) }

// Max returns the larger of x or y.
func Max(x, y float32) float32 { return math32.Max(x, y) }

// Min returns the smaller of x or y.
func Min(x, y float32) float32 { return math32.Min(x, y) }

// Clamp clamps x to the closed interval [a, b].
func Clamp(x, a, b float32) float32 {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

// Clamp01 clamps x to the unit interval [0, 1].
func Clamp01(x float32) float32 { return Clamp(x, 0, 1) }

// Lerp returns the linear interpolation between start and end by amount t.
func Lerp(start, end, t float32) float32 {
	return start + (end-start)*t
}
