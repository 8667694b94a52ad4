// Copyright (c) 2025, The Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package styles defines the resolved, flattened style properties for
// lumen nodes. A [Style] is produced by the utility-class resolver in
// [github.com/lumen-ui/lumen/styles/tokens] and consumed by the layout
// engine and the paint pass.
package styles

import (
	"image/color"

	"github.com/lumen-ui/lumen/math32"
)

// Style is the resolved, flattened property set for one node.
// Resolution from a class string is pure: the same class string always
// produces the same Style value.
type Style struct {

	// Display controls how children are laid out: stacked flow ([Block],
	// the default), [Flex] distribution, or a fixed-column [Grid].
	Display Displays

	// Direction is the main axis along which children are laid out,
	// for both Block and Flex display.
	Direction Directions

	// Justify is the distribution of children along the main axis,
	// applied after natural sizing for Flex display.
	Justify Aligns

	// Align is the cross-axis alignment of children for Flex display.
	Align Aligns

	// Columns is the number of equal-width tracks for Grid display.
	Columns int

	// Gap is the fixed spacing inserted between adjacent children,
	// on the main axis for Flex and on both axes for Grid.
	Gap float32

	// Padding is the space between the node's box and its content box,
	// included in the node's rendered box.
	Padding Sides

	// Margin is the outermost transparent space around the node's box,
	// excluded from the rendered box.
	Margin Sides

	// Min is the explicit size of the node; a zero component means the
	// size on that axis is derived from content and layout.
	Min math32.Vector2

	// Background is the fill color of the node's box.
	Background color.RGBA

	// Color is the foreground (text) color.
	Color color.RGBA

	// Border is the color and width of the rendered border.
	Border       color.RGBA
	BorderWidth  float32
	BorderRadius float32

	// FontSize is the text size in pixels.
	FontSize float32

	// FontWeight is the text weight.
	FontWeight Weights

	// Opacity scales the transparency of this node and, multiplicatively,
	// of everything below it. Animatable; paint-only.
	Opacity float32

	// Translate is a visual position offset applied at paint time only;
	// it does not participate in layout. Animatable.
	Translate math32.Vector2

	// Scale is a visual scale factor about the box center, applied at
	// paint time only. Animatable.
	Scale math32.Vector2
}

// Defaults sets the default style values.
func (s *Style) Defaults() {
	*s = Style{}
	s.Display = Block
	s.Direction = Column
	s.Justify = Start
	s.Align = Start
	s.Color = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	s.FontSize = 16
	s.FontWeight = WeightNormal
	s.Opacity = 1
	s.Scale = math32.Vec2(1, 1)
}

// NewStyle returns a new [Style] with default values.
func NewStyle() Style {
	s := Style{}
	s.Defaults()
	return s
}

// Displays are the layout modes for how a node arranges its children.
type Displays int32

const (
	// Block stacks children along [Style.Direction] at their natural or
	// explicit size plus margin.
	Block Displays = iota

	// Flex distributes children along the main axis with [Style.Gap]
	// spacing and Justify / Align rules.
	Flex

	// Grid places children in equal-width column tracks in row-major
	// order, wrapping after [Style.Columns] columns.
	Grid
)

func (d Displays) String() string {
	switch d {
	case Block:
		return "block"
	case Flex:
		return "flex"
	case Grid:
		return "grid"
	}
	return "invalid"
}

// Directions is the main layout axis.
type Directions int32

const (
	// Row lays children out horizontally.
	Row Directions = iota

	// Column lays children out vertically.
	Column
)

func (d Directions) String() string {
	if d == Row {
		return "row"
	}
	return "column"
}

// Dim returns the [math32.Dim] for this direction.
func (d Directions) Dim() math32.Dim {
	if d == Row {
		return math32.X
	}
	return math32.Y
}

// Aligns are the main-axis distribution and cross-axis alignment modes.
type Aligns int32

const (
	// Start aligns items to the start (top, left).
	Start Aligns = iota

	// Center aligns items around the center.
	Center

	// End aligns items to the end (bottom, right).
	End

	// Stretch stretches items to fill the cross axis (cross axis only).
	Stretch

	// SpaceBetween puts the first and last items flush with the edges and
	// equal space between the rest (main axis only).
	SpaceBetween
)

func (a Aligns) String() string {
	switch a {
	case Start:
		return "start"
	case Center:
		return "center"
	case End:
		return "end"
	case Stretch:
		return "stretch"
	case SpaceBetween:
		return "space-between"
	}
	return "invalid"
}

// Weights are the font weights.
type Weights int32

const (
	WeightNormal Weights = iota
	WeightMedium
	WeightBold
)

func (w Weights) String() string {
	switch w {
	case WeightNormal:
		return "normal"
	case WeightMedium:
		return "medium"
	case WeightBold:
		return "bold"
	}
	return "invalid"
}
