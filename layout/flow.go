// Copyright (c) 2025, The Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"github.com/lumen-ui/lumen/math32"
	"github.com/lumen-ui/lumen/styles"
	"github.com/lumen-ui/lumen/tree"
)

// marginLead returns the leading margin (top or left) along d.
func marginLead(m styles.Sides, d math32.Dim) float32 {
	if d == math32.X {
		return m.Left
	}
	return m.Top
}

// marginSize returns the total margin along d.
func marginSize(m styles.Sides, d math32.Dim) float32 {
	if d == math32.X {
		return m.Horizontal()
	}
	return m.Vertical()
}

// flowBlock stacks children along the style direction at their natural
// or explicit size plus margin, and returns the content extent.
func (e *Engine) flowBlock(n *tree.Node, origin, inner math32.Vector2, res Results) math32.Vector2 {
	dim := n.Style.Direction.Dim()
	cross := dim.Other()
	var cursor, crossExtent float32
	for _, cid := range n.Children {
		cn := e.Tree.Node(cid)
		if cn == nil {
			continue
		}
		m := cn.Style.Margin
		avail := inner.Sub(math32.Vec2(m.Horizontal(), m.Vertical())).ClampZero()
		co := origin.Add(cn.Pos).Add(math32.Vec2(m.Left, m.Top))
		co.SetDim(dim, co.Dim(dim)+cursor)
		sz := e.layoutNode(cid, co, avail, math32.Vector2{}, res)
		cursor += sz.Dim(dim) + marginSize(m, dim)
		crossExtent = math32.Max(crossExtent, sz.Dim(cross)+marginSize(m, cross))
	}
	var content math32.Vector2
	content.SetDim(dim, cursor)
	content.SetDim(cross, crossExtent)
	return content
}

// flowFlex distributes children along the main axis with gap spacing,
// then applies Justify on the main axis and Align on the cross axis.
// Children are laid out at their natural size first; alignment shifts
// whole subtrees afterwards.
func (e *Engine) flowFlex(n *tree.Node, origin, inner math32.Vector2, res Results) math32.Vector2 {
	st := &n.Style
	dim := st.Direction.Dim()
	cross := dim.Other()
	gap := st.Gap

	type flexChild struct {
		id   tree.NodeID
		size math32.Vector2 // box size plus margins
	}
	var kids []flexChild
	var total, crossExtent float32
	for _, cid := range n.Children {
		cn := e.Tree.Node(cid)
		if cn == nil {
			continue
		}
		m := cn.Style.Margin
		avail := inner.Sub(math32.Vec2(m.Horizontal(), m.Vertical())).ClampZero()
		var force math32.Vector2
		if st.Align == styles.Stretch {
			force.SetDim(cross, math32.Max(inner.Dim(cross)-marginSize(m, cross), 0))
		}
		co := origin.Add(cn.Pos).Add(math32.Vec2(m.Left, m.Top))
		sz := e.layoutNode(cid, co, avail, force, res)
		outer := sz.Add(math32.Vec2(m.Horizontal(), m.Vertical()))
		kids = append(kids, flexChild{id: cid, size: outer})
		total += outer.Dim(dim)
		crossExtent = math32.Max(crossExtent, outer.Dim(cross))
	}
	if len(kids) == 0 {
		return math32.Vector2{}
	}

	gaps := gap * float32(len(kids)-1)
	leftover := math32.Max(inner.Dim(dim)-total-gaps, 0)
	lead, between := float32(0), gap
	switch st.Justify {
	case styles.Center:
		lead = leftover / 2
	case styles.End:
		lead = leftover
	case styles.SpaceBetween:
		if len(kids) > 1 {
			between = gap + leftover/float32(len(kids)-1)
		}
	}

	cursor := lead
	for i, k := range kids {
		if i > 0 {
			cursor += between
		}
		var crossOff float32
		switch st.Align {
		case styles.Center:
			crossOff = (inner.Dim(cross) - k.size.Dim(cross)) / 2
		case styles.End:
			crossOff = inner.Dim(cross) - k.size.Dim(cross)
		}
		crossOff = math32.Max(crossOff, 0)

		// children were measured at the flow origin; shift into place
		cur, ok := res[k.id]
		if !ok {
			continue
		}
		cn := e.Tree.Node(k.id)
		m := cn.Style.Margin
		want := origin.Add(cn.Pos).Add(math32.Vec2(m.Left, m.Top))
		want.SetDim(dim, want.Dim(dim)+cursor)
		want.SetDim(cross, want.Dim(cross)+crossOff)
		e.shift(k.id, want.Sub(cur.Box.Min), res)

		cursor += k.size.Dim(dim)
	}

	var content math32.Vector2
	content.SetDim(dim, math32.Max(total+gaps, inner.Dim(dim)))
	content.SetDim(cross, crossExtent)
	return content
}

// flowGrid places children in row-major order across equal-width column
// tracks, wrapping after the last column, with gap applied between both
// rows and columns.
func (e *Engine) flowGrid(n *tree.Node, origin, inner math32.Vector2, res Results) math32.Vector2 {
	st := &n.Style
	cols := st.Columns
	if cols < 1 {
		cols = 1
	}
	gap := st.Gap
	track := (inner.X - gap*float32(cols-1)) / float32(cols)
	track = math32.Max(track, 0)

	var y, rowHeight float32
	col := 0
	for _, cid := range n.Children {
		cn := e.Tree.Node(cid)
		if cn == nil {
			continue
		}
		if col == cols {
			col = 0
			y += rowHeight + gap
			rowHeight = 0
		}
		m := cn.Style.Margin
		x := float32(col) * (track + gap)
		co := origin.Add(cn.Pos).Add(math32.Vec2(x+m.Left, y+m.Top))
		force := math32.Vec2(math32.Max(track-m.Horizontal(), 0), 0)
		avail := math32.Vec2(force.X, math32.Max(inner.Y-y-m.Vertical(), 0))
		sz := e.layoutNode(cid, co, avail, force, res)
		rowHeight = math32.Max(rowHeight, sz.Y+m.Vertical())
		col++
	}
	return math32.Vec2(inner.X, y+rowHeight)
}

// shift moves the recorded geometry of a whole subtree by delta.
func (e *Engine) shift(id tree.NodeID, delta math32.Vector2, res Results) {
	if delta == (math32.Vector2{}) {
		return
	}
	e.Tree.WalkDown(id, func(n *tree.Node) bool {
		if r, ok := res[n.ID]; ok {
			r.Box.Min = r.Box.Min.Add(delta)
			r.Box.Max = r.Box.Max.Add(delta)
			r.Content.Min = r.Content.Min.Add(delta)
			r.Content.Max = r.Content.Max.Add(delta)
			res[n.ID] = r
		}
		return tree.Continue
	})
}
