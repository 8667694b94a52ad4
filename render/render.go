// Copyright (c) 2025, The Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render defines the draw-command contract between the lumen
// frame coordinator and a GPU (or software) rendering backend. The
// coordinator emits a [Render] list in paint order; backends must
// composite the items in that exact order to preserve the painter's
// algorithm overlap semantics.
package render

import (
	"image"
	"image/color"

	"github.com/lumen-ui/lumen/math32"
	"github.com/lumen-ui/lumen/styles"
)

// Render is an ordered collection of render [Item]s for one frame.
type Render []Item

// Item is a union interface for render items: [Rect], [Text], [Image],
// or [Path].
type Item interface {
	IsRenderItem()
}

// Add adds item(s) to the render list.
func (r *Render) Add(item ...Item) Render {
	*r = append(*r, item...)
	return *r
}

// Reset resets back to an empty Render state, preserving the existing
// slice memory for re-use.
func (r *Render) Reset() Render {
	*r = (*r)[:0]
	return *r
}

// Renderer is a rendering backend that composites one frame's render
// list into a target of the given pixel size. Implementations must
// draw items strictly in list order.
type Renderer interface {
	Render(r Render, size image.Point) error
}

// Rect is a filled, optionally bordered and rounded rectangle:
// the standard box of a Container node.
type Rect struct {
	Box          math32.Box2
	Background   color.RGBA
	Border       color.RGBA
	BorderWidth  float32
	BorderRadius float32

	// Opacity is the effective opacity: the product of the node's own
	// opacity and all of its ancestors'.
	Opacity float32
}

func (r *Rect) IsRenderItem() {}

// Text is a single text run placed in a box.
type Text struct {
	Box     math32.Box2
	Content string
	Color   color.RGBA
	Size    float32
	Weight  styles.Weights
	Opacity float32
}

func (t *Text) IsRenderItem() {}

// Image is a raster image scaled into a box.
type Image struct {
	Box     math32.Box2
	Source  image.Image
	Opacity float32
}

func (i *Image) IsRenderItem() {}

// Path is a stroked polyline in absolute pixel coordinates, used for
// chart series and vector content.
type Path struct {
	Points  []math32.Vector2
	Color   color.RGBA
	Width   float32
	Opacity float32
}

func (p *Path) IsRenderItem() {}
