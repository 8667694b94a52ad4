// Copyright (c) 2025, The Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import "fmt"

// Sides contains a float32 value for each side of a box, in pixels.
// It is used for padding and margin.
type Sides struct {
	Top    float32
	Right  float32
	Bottom float32
	Left   float32
}

// NewSides returns new [Sides] set from the given list of 0 to 4 values,
// following the CSS multi-side syntax: one value sets all sides, two set
// vertical then horizontal, three set top, horizontal, bottom, and four
// set top, right, bottom, left.
func NewSides(vals ...float32) Sides {
	s := Sides{}
	s.Set(vals...)
	return s
}

// Set sets the side values from the given list of 0 to 4 values,
// per the CSS multi-side syntax (see [NewSides]).
func (s *Sides) Set(vals ...float32) {
	switch len(vals) {
	case 0:
		s.SetAll(0)
	case 1:
		s.SetAll(vals[0])
	case 2:
		s.Top, s.Bottom = vals[0], vals[0]
		s.Right, s.Left = vals[1], vals[1]
	case 3:
		s.Top = vals[0]
		s.Right, s.Left = vals[1], vals[1]
		s.Bottom = vals[2]
	default:
		s.Top, s.Right, s.Bottom, s.Left = vals[0], vals[1], vals[2], vals[3]
	}
}

// SetAll sets all sides to the given value.
func (s *Sides) SetAll(v float32) {
	s.Top, s.Right, s.Bottom, s.Left = v, v, v, v
}

// Horizontal returns the sum of the left and right values.
func (s Sides) Horizontal() float32 {
	return s.Left + s.Right
}

// Vertical returns the sum of the top and bottom values.
func (s Sides) Vertical() float32 {
	return s.Top + s.Bottom
}

func (s Sides) String() string {
	return fmt.Sprintf("top: %g, right: %g, bottom: %g, left: %g", s.Top, s.Right, s.Bottom, s.Left)
}
