// Copyright (c) 2025, The Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "image"

// Box2 represents a 2D bounding box defined by two points:
// the point with minimum coordinates and the point with maximum coordinates.
type Box2 struct {
	Min Vector2
	Max Vector2
}

// B2 returns a new [Box2] from the given minimum and maximum x and y coordinates.
func B2(x0, y0, x1, y1 float32) Box2 {
	return Box2{Vec2(x0, y0), Vec2(x1, y1)}
}

// B2Size returns a new [Box2] from the given position and size.
func B2Size(pos, size Vector2) Box2 {
	return Box2{pos, pos.Add(size)}
}

// B2Empty returns a new [Box2] with empty minimum and maximum values,
// ready to be expanded by points.
func B2Empty() Box2 {
	b := Box2{}
	b.SetEmpty()
	return b
}

// SetEmpty sets this bounding box to empty (min / max +/- Infinity).
func (b *Box2) SetEmpty() {
	b.Min = Vector2Scalar(Infinity)
	b.Max = Vector2Scalar(-Infinity)
}

// IsEmpty returns whether this bounding box is empty
// (max < min on any coordinate).
func (b Box2) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y
}

// Size returns the size of this box (width, height), clamped to be non-negative.
func (b Box2) Size() Vector2 {
	if b.IsEmpty() {
		return Vector2{}
	}
	return b.Max.Sub(b.Min).ClampZero()
}

// ExpandByPoint expands this bounding box to include the given point.
func (b *Box2) ExpandByPoint(point Vector2) {
	b.Min = b.Min.Min(point)
	b.Max = b.Max.Max(point)
}

// ExpandByBox expands this bounding box to include the given box.
func (b *Box2) ExpandByBox(box Box2) {
	if box.IsEmpty() {
		return
	}
	b.ExpandByPoint(box.Min)
	b.ExpandByPoint(box.Max)
}

// Union returns the union of this box with the given box.
func (b Box2) Union(box Box2) Box2 {
	u := b
	u.ExpandByBox(box)
	return u
}

// ContainsPoint returns whether the given point is inside or on the
// boundary of this box.
func (b Box2) ContainsPoint(point Vector2) bool {
	return point.X >= b.Min.X && point.X <= b.Max.X &&
		point.Y >= b.Min.Y && point.Y <= b.Max.Y
}

// Inset returns this box shrunk inward by the given amounts per side.
// The result never inverts: sides are clamped at the box center.
func (b Box2) Inset(top, right, bottom, left float32) Box2 {
	r := Box2{
		Min: b.Min.Add(Vec2(left, top)),
		Max: b.Max.Sub(Vec2(right, bottom)),
	}
	r.Max = r.Max.Max(r.Min)
	return r
}

// ToRect returns an [image.Rectangle] version of this box,
// using floor for min and ceil for max.
func (b Box2) ToRect() image.Rectangle {
	return image.Rectangle{Min: b.Min.ToPointFloor(), Max: b.Max.ToPointCeil()}
}
