// Copyright (c) 2025, The Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layout converts a lumen component tree plus resolved styles
// into absolute pixel geometry. It is a recursive box-model pass with
// three child-flow modes (block stacking, flex distribution, and fixed
// column grids), computed top-down: a parent's box is always resolved
// before any child's. Results are written into a side buffer map so a
// reader never observes a half-updated pass.
package layout

import (
	"github.com/lumen-ui/lumen/math32"
	"github.com/lumen-ui/lumen/styles"
	"github.com/lumen-ui/lumen/tree"
)

// Result is the resolved geometry of one node: the absolute box
// (including padding and border, excluding margin) and the content box
// that children and content are placed within.
type Result struct {
	Box     math32.Box2
	Content math32.Box2
}

// Size returns the box size.
func (r Result) Size() math32.Vector2 {
	return r.Box.Size()
}

// Results maps node ids to resolved geometry for one complete pass.
type Results map[tree.NodeID]Result

// Engine computes layout for one [tree.Tree].
type Engine struct {
	Tree *tree.Tree
}

// New returns a new layout [Engine] for the given tree.
func New(t *tree.Tree) *Engine {
	return &Engine{Tree: t}
}

// Layout does a full layout pass of the tree within the given viewport
// and returns a fresh result map. The root always fills the viewport.
func (e *Engine) Layout(viewport math32.Box2) Results {
	res := Results{}
	e.layoutNode(e.Tree.Root(), viewport.Min, viewport.Size(), viewport.Size(), res)
	return res
}

// LayoutDirty recomputes only the dirty subtrees, starting from the
// previous pass results, and returns a new results map; prev is never
// mutated. A dirty node relays itself and all descendants; if its size
// changed, the recomputation propagates one level up so the parent can
// reflow its children. Entries for nodes deleted since the previous
// pass are dropped. With no previous results it does a full pass.
func (e *Engine) LayoutDirty(prev Results, viewport math32.Box2) Results {
	if len(prev) == 0 {
		return e.Layout(viewport)
	}
	next := make(Results, len(prev))
	for id, r := range prev {
		if e.Tree.Node(id) == nil {
			continue
		}
		next[id] = r
	}
	roots := e.dirtyRoots()
	for _, id := range roots {
		e.relayout(id, next, viewport)
	}
	return next
}

// dirtyRoots returns the topmost layout-dirty nodes: descendants of a
// dirty node are covered by its recomputation.
func (e *Engine) dirtyRoots() []tree.NodeID {
	var roots []tree.NodeID
	e.Tree.WalkDown(e.Tree.Root(), func(n *tree.Node) bool {
		if n.IsDirty(tree.DirtyLayout) {
			roots = append(roots, n.ID)
			return tree.Break
		}
		return tree.Continue
	})
	return roots
}

// relayout recomputes the subtree at id in place within the result map,
// walking up one level whenever the node's size changed.
func (e *Engine) relayout(id tree.NodeID, res Results, viewport math32.Box2) {
	for {
		n := e.Tree.Node(id)
		if n == nil {
			return
		}
		if id == e.Tree.Root() || n.Parent == tree.Nil {
			e.layoutNode(id, viewport.Min, viewport.Size(), viewport.Size(), res)
			return
		}
		prev, ok := res[id]
		parent, pok := res[n.Parent]
		if !ok || !pok {
			// no anchor from the previous pass: redo the parent
			id = n.Parent
			continue
		}
		oldSize := prev.Size()
		margin := n.Style.Margin
		origin := prev.Box.Min
		avail := parent.Content.Size().Sub(math32.Vec2(margin.Horizontal(), margin.Vertical())).ClampZero()
		newSize := e.layoutNode(id, origin, avail, math32.Vector2{}, res)
		if newSize == oldSize {
			return
		}
		// size changed: the parent must reflow its children
		id = n.Parent
	}
}

// explicitSize returns the per-axis explicit size of a node: the
// property-set size wins over the style minimum; zero means derived.
func explicitSize(n *tree.Node) math32.Vector2 {
	sz := n.Size
	if sz.X == 0 {
		sz.X = n.Style.Min.X
	}
	if sz.Y == 0 {
		sz.Y = n.Style.Min.Y
	}
	return sz
}

// layoutNode computes the box for the node at the given absolute origin
// within the given available space, lays out its children, records the
// result, clears the node's layout-dirty flag, and returns the box size
// (excluding margin). A positive force component pins the size on that
// axis (used for grid tracks and flex cross-axis stretch).
func (e *Engine) layoutNode(id tree.NodeID, origin, avail, force math32.Vector2, res Results) math32.Vector2 {
	n := e.Tree.Node(id)
	if n == nil {
		return math32.Vector2{}
	}
	st := &n.Style
	edge := math32.Vec2(
		st.Padding.Horizontal()+2*st.BorderWidth,
		st.Padding.Vertical()+2*st.BorderWidth,
	)

	size := explicitSize(n)
	if force.X > 0 {
		size.X = force.X
	}
	if force.Y > 0 {
		size.Y = force.Y
	}

	// inner space available to content
	inner := avail
	if size.X > 0 {
		inner.X = size.X
	}
	if size.Y > 0 {
		inner.Y = size.Y
	}
	inner = inner.Sub(edge).ClampZero()

	contentOrigin := origin.Add(math32.Vec2(st.Padding.Left+st.BorderWidth, st.Padding.Top+st.BorderWidth))

	var content math32.Vector2
	if len(n.Children) > 0 {
		switch st.Display {
		case styles.Flex:
			content = e.flowFlex(n, contentOrigin, inner, res)
		case styles.Grid:
			content = e.flowGrid(n, contentOrigin, inner, res)
		default:
			content = e.flowBlock(n, contentOrigin, inner, res)
		}
	} else {
		content = e.measureLeaf(n, inner)
	}

	if size.X == 0 {
		size.X = content.X + edge.X
	}
	if size.Y == 0 {
		size.Y = content.Y + edge.Y
	}
	size = size.ClampZero()

	box := math32.B2Size(origin, size)
	res[id] = Result{
		Box: box,
		Content: box.Inset(
			st.Padding.Top+st.BorderWidth,
			st.Padding.Right+st.BorderWidth,
			st.Padding.Bottom+st.BorderWidth,
			st.Padding.Left+st.BorderWidth,
		),
	}
	e.Tree.ClearDirty(id, tree.DirtyLayout)
	return size
}

// measureLeaf returns the natural content size of a childless node.
func (e *Engine) measureLeaf(n *tree.Node, inner math32.Vector2) math32.Vector2 {
	switch n.Kind {
	case tree.Text:
		return measureText(n.Text, n.Style.FontSize)
	case tree.Chart:
		// charts fill the space they are given unless sized explicitly
		return inner
	default:
		return math32.Vector2{}
	}
}

// measureText approximates the pixel extent of a single text run.
// Real glyph metrics are the renderer's concern; layout only needs a
// stable box for flow purposes.
func measureText(text string, fontSize float32) math32.Vector2 {
	if text == "" || fontSize <= 0 {
		return math32.Vector2{}
	}
	runes := float32(len([]rune(text)))
	return math32.Vec2(math32.Ceil(runes*fontSize*0.6), math32.Ceil(fontSize*1.25))
}
