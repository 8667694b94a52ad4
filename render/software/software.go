// Copyright (c) 2025, The Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package software is the reference software rendering backend: it
// composites a render list into an in-memory RGBA image. It exists for
// tests, headless rendering, and as the behavioral reference for GPU
// backends; it trades fidelity for simplicity (square corners, a fixed
// bitmap font face).
package software

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/lumen-ui/lumen/math32"
	"github.com/lumen-ui/lumen/render"
)

// Renderer composites render lists into [Renderer.Image].
type Renderer struct {

	// Image is the target, reallocated when the frame size changes.
	Image *image.RGBA
}

// New returns a new software [Renderer].
func New() *Renderer {
	return &Renderer{}
}

// Render composites the items, in order, into the target image,
// clearing it first. It implements [render.Renderer].
func (rd *Renderer) Render(r render.Render, size image.Point) error {
	bounds := image.Rectangle{Max: size}
	if rd.Image == nil || rd.Image.Bounds() != bounds {
		rd.Image = image.NewRGBA(bounds)
	} else {
		clear(rd.Image.Pix)
	}
	for _, item := range r {
		switch it := item.(type) {
		case *render.Rect:
			rd.rect(it)
		case *render.Text:
			rd.text(it)
		case *render.Image:
			rd.image(it)
		case *render.Path:
			rd.path(it)
		}
	}
	return nil
}

// withOpacity scales a premultiplied color by the given opacity.
func withOpacity(c color.RGBA, opacity float32) color.RGBA {
	o := math32.Clamp01(opacity)
	return color.RGBA{
		R: uint8(float32(c.R) * o),
		G: uint8(float32(c.G) * o),
		B: uint8(float32(c.B) * o),
		A: uint8(float32(c.A) * o),
	}
}

func (rd *Renderer) fill(rect image.Rectangle, c color.RGBA) {
	if c.A == 0 {
		return
	}
	draw.Draw(rd.Image, rect, &image.Uniform{c}, image.Point{}, draw.Over)
}

func (rd *Renderer) rect(it *render.Rect) {
	box := it.Box.ToRect()
	rd.fill(box, withOpacity(it.Background, it.Opacity))
	if it.BorderWidth <= 0 || it.Border.A == 0 {
		return
	}
	bc := withOpacity(it.Border, it.Opacity)
	w := int(math32.Ceil(it.BorderWidth))
	rd.fill(image.Rect(box.Min.X, box.Min.Y, box.Max.X, box.Min.Y+w), bc)
	rd.fill(image.Rect(box.Min.X, box.Max.Y-w, box.Max.X, box.Max.Y), bc)
	rd.fill(image.Rect(box.Min.X, box.Min.Y+w, box.Min.X+w, box.Max.Y-w), bc)
	rd.fill(image.Rect(box.Max.X-w, box.Min.Y+w, box.Max.X, box.Max.Y-w), bc)
}

func (rd *Renderer) text(it *render.Text) {
	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  rd.Image,
		Src:  &image.Uniform{withOpacity(it.Color, it.Opacity)},
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(int(it.Box.Min.X)),
			Y: fixed.I(int(it.Box.Min.Y) + face.Ascent),
		},
	}
	d.DrawString(it.Content)
}

func (rd *Renderer) image(it *render.Image) {
	if it.Source == nil {
		return
	}
	box := it.Box.ToRect()
	if it.Opacity >= 1 {
		xdraw.ApproxBiLinear.Scale(rd.Image, box, it.Source, it.Source.Bounds(), xdraw.Over, nil)
		return
	}
	// scale into a scratch image, then composite through an alpha mask
	scratch := image.NewRGBA(box)
	xdraw.ApproxBiLinear.Scale(scratch, box, it.Source, it.Source.Bounds(), xdraw.Src, nil)
	alpha := uint8(math32.Clamp01(it.Opacity) * 0xff)
	mask := &image.Uniform{color.Alpha{A: alpha}}
	draw.DrawMask(rd.Image, box, scratch, box.Min, mask, image.Point{}, draw.Over)
}

// path strokes the polyline by stamping Width-sized squares along each
// segment, the same approach as the reference line plotter.
func (rd *Renderer) path(it *render.Path) {
	if len(it.Points) < 2 {
		return
	}
	c := withOpacity(it.Color, it.Opacity)
	w := int(math32.Max(it.Width, 1))
	for i := 0; i < len(it.Points)-1; i++ {
		p0, p1 := it.Points[i], it.Points[i+1]
		d := p1.Sub(p0)
		steps := int(math32.Ceil(math32.Max(math32.Abs(d.X), math32.Abs(d.Y))))
		if steps == 0 {
			steps = 1
		}
		for j := 0; j <= steps; j++ {
			t := float32(j) / float32(steps)
			p := p0.Add(d.MulScalar(t)).ToPoint()
			rd.fill(image.Rect(p.X, p.Y, p.X+w, p.Y+w), c)
		}
	}
}
