// Copyright (c) 2025, The Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tokens implements the utility-class style resolver. A class
// string such as "bg-blue-500 text-white p-4" is resolved against an
// immutable [Table] of token effects into a [styles.Style] value.
// The table is configuration data injected at construction, not
// process-wide state; [Default] provides the standard table.
package tokens

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/lumen-ui/lumen/styles"
)

// Prop is the fixed enum of style properties a token can write.
// Tokens are parsed into Prop effects rather than free-form string keys,
// so applying an effect is an exhaustive switch.
type Prop int32

const (
	Background Prop = iota
	Color
	Border
	Padding
	Margin
	FontSize
	FontWeight
	BorderWidth
	BorderRadius
	Display
	Direction
	Gap
	Columns
	Justify
	Align
	Width
	Height
	Opacity
)

func (p Prop) String() string {
	switch p {
	case Background:
		return "background"
	case Color:
		return "color"
	case Border:
		return "border"
	case Padding:
		return "padding"
	case Margin:
		return "margin"
	case FontSize:
		return "font-size"
	case FontWeight:
		return "font-weight"
	case BorderWidth:
		return "border-width"
	case BorderRadius:
		return "border-radius"
	case Display:
		return "display"
	case Direction:
		return "direction"
	case Gap:
		return "gap"
	case Columns:
		return "columns"
	case Justify:
		return "justify"
	case Align:
		return "align"
	case Width:
		return "width"
	case Height:
		return "height"
	case Opacity:
		return "opacity"
	}
	return "invalid"
}

// Effect is one property write produced by a token. Exactly one of the
// value fields is meaningful, depending on the [Prop].
type Effect struct {
	Prop  Prop
	Num   float32
	Color color.RGBA
	Enum  int32
}

// Apply writes this effect into the given style.
func (e Effect) Apply(s *styles.Style) {
	switch e.Prop {
	case Background:
		s.Background = e.Color
	case Color:
		s.Color = e.Color
	case Border:
		s.Border = e.Color
		if s.BorderWidth == 0 {
			s.BorderWidth = 1
		}
	case Padding:
		s.Padding.SetAll(e.Num)
	case Margin:
		s.Margin.SetAll(e.Num)
	case FontSize:
		s.FontSize = e.Num
	case FontWeight:
		s.FontWeight = styles.Weights(e.Enum)
	case BorderWidth:
		s.BorderWidth = e.Num
	case BorderRadius:
		s.BorderRadius = e.Num
	case Display:
		s.Display = styles.Displays(e.Enum)
	case Direction:
		s.Direction = styles.Directions(e.Enum)
	case Gap:
		s.Gap = e.Num
	case Columns:
		s.Columns = int(e.Num)
	case Justify:
		s.Justify = styles.Aligns(e.Enum)
	case Align:
		s.Align = styles.Aligns(e.Enum)
	case Width:
		s.Min.X = e.Num
	case Height:
		s.Min.Y = e.Num
	case Opacity:
		s.Opacity = e.Num
	}
}

// NumericRule handles a family of tokens with a required numeric suffix,
// such as p-4 or grid-cols-3. The parsed number indexes the lookup table
// when LUT is non-nil, and is otherwise multiplied by Scale.
type NumericRule struct {
	Prefix string
	Prop   Prop
	Scale  float32
	LUT    map[int]float32
}

// Table is the static token→effect mapping consumed by a [Resolver].
// Static holds exact-match tokens; Numeric holds prefix families with
// required numeric suffixes, ordered longest prefix first.
type Table struct {
	Static  map[string][]Effect
	Numeric []NumericRule
}

// Clone returns a deep copy of the table, so extensions never mutate
// a shared table value.
func (t Table) Clone() Table {
	c := Table{
		Static:  make(map[string][]Effect, len(t.Static)),
		Numeric: make([]NumericRule, len(t.Numeric)),
	}
	for k, v := range t.Static {
		c.Static[k] = append([]Effect(nil), v...)
	}
	copy(c.Numeric, t.Numeric)
	return c
}

// sortNumeric orders prefix rules longest first, so gap- wins over g-
// style overlaps when matching.
func (t *Table) sortNumeric() {
	sort.SliceStable(t.Numeric, func(i, j int) bool {
		return len(t.Numeric[i].Prefix) > len(t.Numeric[j].Prefix)
	})
}

// spacingScale is the spacing step table shared by padding, margin and
// gap tokens: p-4 means 16 pixels.
var spacingScale = map[int]float32{
	0: 0, 1: 4, 2: 8, 3: 12, 4: 16, 5: 20, 6: 24,
	8: 32, 10: 40, 12: 48, 16: 64,
}

// textSizes maps text size suffixes to pixel sizes.
var textSizes = map[string]float32{
	"xs": 12, "sm": 14, "base": 16, "lg": 18, "xl": 20,
	"2xl": 24, "3xl": 30, "4xl": 36, "5xl": 48, "6xl": 64,
}

// palette holds the named color shades available to bg-, text- and
// border- tokens. The bare color name maps to the 500 shade.
var palette = map[string]map[int]string{
	"gray":   {100: "#F3F4F6", 300: "#D1D5DB", 500: "#6B7280", 700: "#374151", 900: "#111827"},
	"red":    {100: "#FEE2E2", 300: "#FCA5A5", 500: "#EF4444", 700: "#B91C1C", 900: "#7F1D1D"},
	"green":  {100: "#DCFCE7", 300: "#86EFAC", 500: "#22C55E", 700: "#15803D", 900: "#14532D"},
	"blue":   {100: "#DBEAFE", 300: "#93C5FD", 500: "#3B82F6", 700: "#1D4ED8", 900: "#1E3A8A"},
	"yellow": {100: "#FEF9C3", 300: "#FDE047", 500: "#EAB308", 700: "#A16207", 900: "#713F12"},
	"purple": {100: "#F3E8FF", 300: "#D8B4FE", 500: "#A855F7", 700: "#7E22CE", 900: "#581C87"},
	"pink":   {100: "#FCE7F3", 300: "#F9A8D4", 500: "#EC4899", 700: "#BE185D", 900: "#831843"},
}

// Default returns the standard token table. The value is built fresh on
// each call so callers can extend their copy freely.
func Default() Table {
	t := Table{Static: map[string][]Effect{}}

	// layout modes
	t.Static["block"] = []Effect{{Prop: Display, Enum: int32(styles.Block)}}
	t.Static["flex"] = []Effect{{Prop: Display, Enum: int32(styles.Flex)}}
	t.Static["grid"] = []Effect{{Prop: Display, Enum: int32(styles.Grid)}}
	t.Static["flex-row"] = []Effect{
		{Prop: Display, Enum: int32(styles.Flex)},
		{Prop: Direction, Enum: int32(styles.Row)},
	}
	t.Static["flex-col"] = []Effect{
		{Prop: Display, Enum: int32(styles.Flex)},
		{Prop: Direction, Enum: int32(styles.Column)},
	}

	// alignment
	for name, a := range map[string]styles.Aligns{
		"start": styles.Start, "center": styles.Center, "end": styles.End,
	} {
		t.Static["items-"+name] = []Effect{{Prop: Align, Enum: int32(a)}}
		t.Static["justify-"+name] = []Effect{{Prop: Justify, Enum: int32(a)}}
	}
	t.Static["items-stretch"] = []Effect{{Prop: Align, Enum: int32(styles.Stretch)}}
	t.Static["justify-between"] = []Effect{{Prop: Justify, Enum: int32(styles.SpaceBetween)}}

	// typography
	for suffix, size := range textSizes {
		t.Static["text-"+suffix] = []Effect{{Prop: FontSize, Num: size}}
	}
	t.Static["font-normal"] = []Effect{{Prop: FontWeight, Enum: int32(styles.WeightNormal)}}
	t.Static["font-medium"] = []Effect{{Prop: FontWeight, Enum: int32(styles.WeightMedium)}}
	t.Static["font-bold"] = []Effect{{Prop: FontWeight, Enum: int32(styles.WeightBold)}}

	// borders and corners
	t.Static["border"] = []Effect{{Prop: BorderWidth, Num: 1}}
	for _, w := range []int{0, 2, 4, 8} {
		t.Static[fmt.Sprintf("border-%d", w)] = []Effect{{Prop: BorderWidth, Num: float32(w)}}
	}
	for tok, r := range map[string]float32{
		"rounded": 4, "rounded-sm": 2, "rounded-md": 6,
		"rounded-lg": 8, "rounded-xl": 12, "rounded-full": 9999,
	} {
		t.Static[tok] = []Effect{{Prop: BorderRadius, Num: r}}
	}

	// colors
	addColor := func(name string, c color.RGBA) {
		t.Static["bg-"+name] = []Effect{{Prop: Background, Color: c}}
		t.Static["text-"+name] = []Effect{{Prop: Color, Color: c}}
		t.Static["border-"+name] = []Effect{{Prop: Border, Color: c}}
	}
	for hue, shades := range palette {
		for shade, hex := range shades {
			addColor(fmt.Sprintf("%s-%d", hue, shade), MustHex(hex))
		}
		addColor(hue, MustHex(shades[500]))
	}
	addColor("white", color.RGBA{0xff, 0xff, 0xff, 0xff})
	addColor("black", color.RGBA{0, 0, 0, 0xff})

	// numeric families
	t.Numeric = []NumericRule{
		{Prefix: "p-", Prop: Padding, LUT: spacingScale},
		{Prefix: "m-", Prop: Margin, LUT: spacingScale},
		{Prefix: "gap-", Prop: Gap, LUT: spacingScale},
		{Prefix: "grid-cols-", Prop: Columns, Scale: 1},
		{Prefix: "w-", Prop: Width, Scale: 4},
		{Prefix: "h-", Prop: Height, Scale: 4},
		{Prefix: "opacity-", Prop: Opacity, Scale: 0.01},
	}
	t.sortNumeric()
	return t
}

// MustHex returns the color for a #RRGGBB hex string, panicking on a
// malformed value. It is intended for static table constants; use
// [ParseHex] for config file input.
func MustHex(hex string) color.RGBA {
	c, err := ParseHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseHex parses a #RRGGBB or #RRGGBBAA hex color string.
func ParseHex(hex string) (color.RGBA, error) {
	c := color.RGBA{A: 0xff}
	var err error
	switch len(hex) {
	case 7:
		_, err = fmt.Sscanf(hex, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	case 9:
		_, err = fmt.Sscanf(hex, "#%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
	default:
		err = fmt.Errorf("tokens: hex color %q must be #RRGGBB or #RRGGBBAA", hex)
	}
	if err != nil {
		return color.RGBA{}, err
	}
	return c, nil
}
