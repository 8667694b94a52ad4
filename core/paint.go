// Copyright (c) 2025, The Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"image"

	"github.com/lumen-ui/lumen/layout"
	"github.com/lumen-ui/lumen/math32"
	"github.com/lumen-ui/lumen/render"
	"github.com/lumen-ui/lumen/series"
	"github.com/lumen-ui/lumen/styles"
	"github.com/lumen-ui/lumen/tree"
)

// paint emits draw items for a node and then its children, so document
// order is paint order and later siblings composite on top. off is the
// accumulated translation of the ancestors; opacity is the accumulated
// opacity product. A node with zero effective opacity or zero size
// emits nothing itself, but its children are still visited: layout
// already ran for them and a child can outlive its parent's fade.
func (sc *Scene) paint(id tree.NodeID, off math32.Vector2, opacity float32, results layout.Results, r *render.Render) {
	n := sc.Tree.Node(id)
	if n == nil {
		return
	}
	res := results[id]
	eff := opacity * math32.Clamp01(n.Style.Opacity)
	box := paintBox(res.Box, &n.Style, off)

	size := box.Size()
	if eff > 0 && size.X > 0 && size.Y > 0 {
		sc.paintNode(n, box, res, off, eff, r)
	}
	sc.Tree.ClearDirty(id, tree.DirtyPaint)

	childOff := off.Add(n.Style.Translate)
	for _, child := range n.Children {
		sc.paint(child, childOff, eff, results, r)
	}
}

func (sc *Scene) paintNode(n *tree.Node, box math32.Box2, res layout.Result, off math32.Vector2, eff float32, r *render.Render) {
	if bg := rectVisible(n); bg {
		r.Add(&render.Rect{
			Box:          box,
			Background:   n.Style.Background,
			Border:       n.Style.Border,
			BorderWidth:  n.Style.BorderWidth,
			BorderRadius: n.Style.BorderRadius,
			Opacity:      eff,
		})
	}
	content := paintBox(res.Content, &n.Style, off)
	switch n.Kind {
	case tree.Text:
		if n.Text != "" {
			r.Add(&render.Text{
				Box:     content,
				Content: n.Text,
				Color:   n.Style.Color,
				Size:    n.Style.FontSize,
				Weight:  n.Style.FontWeight,
				Opacity: eff,
			})
		}
	case tree.Image:
		if src, ok := n.Data.(image.Image); ok && src != nil {
			r.Add(&render.Image{Box: box, Source: src, Opacity: eff})
		}
	case tree.Path:
		if pts, ok := n.Data.([]math32.Vector2); ok && len(pts) >= 2 {
			moved := make([]math32.Vector2, len(pts))
			for i, p := range pts {
				moved[i] = p.Add(content.Min)
			}
			r.Add(&render.Path{
				Points:  moved,
				Color:   n.Style.Color,
				Width:   max(n.Style.BorderWidth, 1),
				Opacity: eff,
			})
		}
	case tree.Chart:
		if pts := sc.chartPoints(n, content); len(pts) >= 2 {
			r.Add(&render.Path{
				Points:  pts,
				Color:   n.Style.Color,
				Width:   max(n.Style.BorderWidth, 2),
				Opacity: eff,
			})
		}
	}
}

// rectVisible reports whether the node paints its own background rect.
func rectVisible(n *tree.Node) bool {
	return n.Style.Background.A > 0 || (n.Style.BorderWidth > 0 && n.Style.Border.A > 0)
}

// paintBox applies the node's visual transform to a layout box: scale
// about the box center, then the node and ancestor translation.
func paintBox(b math32.Box2, s *styles.Style, off math32.Vector2) math32.Box2 {
	if s.Scale.X != 1 || s.Scale.Y != 1 {
		center := b.Min.Add(b.Max).MulScalar(0.5)
		half := b.Max.Sub(b.Min).MulScalar(0.5).Mul(s.Scale)
		b = math32.Box2{Min: center.Sub(half), Max: center.Add(half)}
	}
	delta := off.Add(s.Translate)
	b.Min = b.Min.Add(delta)
	b.Max = b.Max.Add(delta)
	return b
}

// chartPoints maps the node's series buffer into its content box,
// auto-scaling both axes to the sample extents, newest sample at the
// right edge. It reads the frame's series snapshot, never the live
// buffer, so every chart in a pass sees the same data.
func (sc *Scene) chartPoints(n *tree.Node, content math32.Box2) []math32.Vector2 {
	name, _ := n.Data.(string)
	if name == "" {
		name = n.Name
	}
	samples := sc.seriesSnap[name]
	if len(samples) < 2 {
		return nil
	}
	tmin, tmax, vmin, vmax, _ := series.Bounds(samples)
	tspan := tmax - tmin
	if tspan <= 0 {
		tspan = 1
	}
	vspan := vmax - vmin
	if vspan <= 0 {
		vspan = 1
	}
	size := content.Size()
	pts := make([]math32.Vector2, len(samples))
	for i, s := range samples {
		x := content.Min.X + float32((s.Time-tmin)/tspan)*size.X
		y := content.Max.Y - (s.Value-vmin)/vspan*size.Y
		pts[i] = math32.Vec2(x, y)
	}
	return pts
}
