// Copyright (c) 2025, The Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-ui/lumen/math32"
	"github.com/lumen-ui/lumen/styles"
	"github.com/lumen-ui/lumen/tree"
)

func viewport(w, h float32) math32.Box2 {
	return math32.B2Size(math32.Vector2{}, math32.Vec2(w, h))
}

// newChild adds a sized container child. Node pointers are only valid
// until the next allocation, so tests restyle via fresh Node lookups
// after the whole tree is built.
func newChild(t *tree.Tree, parent tree.NodeID, name string, w, h float32) tree.NodeID {
	id := t.NewNode(tree.Container, name)
	t.SetProperty(id, "width", w)
	t.SetProperty(id, "height", h)
	if err := t.AddChild(parent, id); err != nil {
		panic(err)
	}
	return id
}

func flexRow(t *tree.Tree, id tree.NodeID) *styles.Style {
	st := &t.Node(id).Style
	st.Display = styles.Flex
	st.Direction = styles.Row
	return st
}

func TestRootFillsViewport(t *testing.T) {
	tr := tree.New("root")
	res := New(tr).Layout(viewport(800, 600))
	assert.Equal(t, math32.B2(0, 0, 800, 600), res[tr.Root()].Box)
}

func TestBlockStacksColumn(t *testing.T) {
	tr := tree.New("root")
	a := newChild(tr, tr.Root(), "a", 100, 50)
	b := newChild(tr, tr.Root(), "b", 200, 30)

	res := New(tr).Layout(viewport(800, 600))
	assert.Equal(t, math32.B2(0, 0, 100, 50), res[a].Box)
	assert.Equal(t, math32.B2(0, 50, 200, 80), res[b].Box)
}

func TestBlockRespectsPaddingAndMargin(t *testing.T) {
	tr := tree.New("root")
	a := newChild(tr, tr.Root(), "a", 100, 50)
	b := newChild(tr, tr.Root(), "b", 100, 50)
	tr.Node(tr.Root()).Style.Padding.SetAll(10)
	tr.Node(a).Style.Margin.SetAll(5)

	res := New(tr).Layout(viewport(800, 600))
	assert.Equal(t, math32.Vec2(15, 15), res[a].Box.Min, "padding plus margin offset")
	assert.Equal(t, float32(70), res[b].Box.Min.Y, "stack advances past margin")
}

func TestBlockAutoSizesToContent(t *testing.T) {
	tr := tree.New("root")
	box := newChild(tr, tr.Root(), "box", 0, 0)
	newChild(tr, box, "inner", 50, 20)
	tr.Node(box).Style.Padding.SetAll(10)

	res := New(tr).Layout(viewport(800, 600))
	assert.Equal(t, math32.Vec2(70, 40), res[box].Size(), "content plus padding on both axes")
}

func TestTextMeasure(t *testing.T) {
	tr := tree.New("root")
	id := tr.NewNode(tree.Text, "label")
	tr.SetProperty(id, "text", "Hello")
	require.NoError(t, tr.AddChild(tr.Root(), id))

	res := New(tr).Layout(viewport(800, 600))
	// 5 runes at 16px: ceil(5*16*0.6) x ceil(16*1.25)
	assert.Equal(t, math32.Vec2(48, 20), res[id].Size())
}

func TestExplicitSizeWinsOverStyleMin(t *testing.T) {
	tr := tree.New("root")
	a := newChild(tr, tr.Root(), "a", 0, 0)
	b := newChild(tr, tr.Root(), "b", 100, 0)
	tr.Node(a).Style.Min = math32.Vec2(30, 40)
	tr.Node(b).Style.Min = math32.Vec2(30, 40)

	res := New(tr).Layout(viewport(800, 600))
	assert.Equal(t, math32.Vec2(30, 40), res[a].Size())
	assert.Equal(t, math32.Vec2(100, 40), res[b].Size())
}

func TestContentBoxInsetByPaddingAndBorder(t *testing.T) {
	tr := tree.New("root")
	a := newChild(tr, tr.Root(), "a", 100, 100)
	st := &tr.Node(a).Style
	st.Padding.SetAll(10)
	st.BorderWidth = 2

	res := New(tr).Layout(viewport(800, 600))
	assert.Equal(t, math32.B2(12, 12, 88, 88), res[a].Content)
}

func TestFlexRowGap(t *testing.T) {
	tr := tree.New("root")
	a := newChild(tr, tr.Root(), "a", 50, 20)
	b := newChild(tr, tr.Root(), "b", 50, 20)
	flexRow(tr, tr.Root()).Gap = 10

	res := New(tr).Layout(viewport(300, 100))
	assert.Equal(t, float32(0), res[a].Box.Min.X)
	assert.Equal(t, float32(60), res[b].Box.Min.X)
}

func TestFlexJustifyCenter(t *testing.T) {
	tr := tree.New("root")
	a := newChild(tr, tr.Root(), "a", 50, 20)
	b := newChild(tr, tr.Root(), "b", 50, 20)
	st := flexRow(tr, tr.Root())
	st.Gap = 10
	st.Justify = styles.Center

	res := New(tr).Layout(viewport(300, 100))
	// leftover = 300 - (50+50+10) = 190, lead = 95
	assert.Equal(t, float32(95), res[a].Box.Min.X)
	assert.Equal(t, float32(155), res[b].Box.Min.X)
}

func TestFlexJustifyEnd(t *testing.T) {
	tr := tree.New("root")
	a := newChild(tr, tr.Root(), "a", 50, 20)
	flexRow(tr, tr.Root()).Justify = styles.End

	res := New(tr).Layout(viewport(300, 100))
	assert.Equal(t, float32(250), res[a].Box.Min.X)
}

func TestFlexSpaceBetween(t *testing.T) {
	tr := tree.New("root")
	a := newChild(tr, tr.Root(), "a", 50, 20)
	b := newChild(tr, tr.Root(), "b", 50, 20)
	st := flexRow(tr, tr.Root())
	st.Gap = 10
	st.Justify = styles.SpaceBetween

	res := New(tr).Layout(viewport(300, 100))
	assert.Equal(t, float32(0), res[a].Box.Min.X)
	assert.Equal(t, float32(250), res[b].Box.Min.X, "pushed to the far edge")
}

func TestFlexAlignCenterAndEnd(t *testing.T) {
	tr := tree.New("root")
	a := newChild(tr, tr.Root(), "a", 50, 20)
	flexRow(tr, tr.Root()).Align = styles.Center

	res := New(tr).Layout(viewport(300, 100))
	assert.Equal(t, float32(40), res[a].Box.Min.Y)

	flexRow(tr, tr.Root()).Align = styles.End
	res = New(tr).Layout(viewport(300, 100))
	assert.Equal(t, float32(80), res[a].Box.Min.Y)
}

func TestFlexAlignStretch(t *testing.T) {
	tr := tree.New("root")
	a := newChild(tr, tr.Root(), "a", 50, 0)
	flexRow(tr, tr.Root()).Align = styles.Stretch

	res := New(tr).Layout(viewport(300, 100))
	assert.Equal(t, float32(100), res[a].Size().Y, "cross axis stretches to the container")
}

func TestFlexShiftMovesSubtree(t *testing.T) {
	tr := tree.New("root")
	a := newChild(tr, tr.Root(), "a", 50, 50)
	inner := newChild(tr, a, "inner", 20, 20)
	flexRow(tr, tr.Root()).Justify = styles.Center

	res := New(tr).Layout(viewport(300, 100))
	assert.Equal(t, res[a].Box.Min, res[inner].Box.Min, "descendants move with the aligned child")
}

func TestGridRowMajor(t *testing.T) {
	tr := tree.New("root")
	var kids []tree.NodeID
	for j := 0; j < 5; j++ {
		kids = append(kids, newChild(tr, tr.Root(), "cell", 0, 20))
	}
	st := &tr.Node(tr.Root()).Style
	st.Display = styles.Grid
	st.Columns = 3
	st.Gap = 10

	res := New(tr).Layout(viewport(320, 200))
	// track = (320 - 2*10) / 3 = 100
	for i, id := range kids {
		col, row := i%3, i/3
		b := res[id].Box
		assert.Equal(t, float32(col)*110, b.Min.X, "cell %d column", i)
		assert.Equal(t, float32(row)*30, b.Min.Y, "cell %d row", i)
		assert.Equal(t, float32(100), b.Size().X, "cell %d width forced to track", i)
	}
}

func TestGridNeverNegative(t *testing.T) {
	tr := tree.New("root")
	a := newChild(tr, tr.Root(), "a", 0, 20)
	st := &tr.Node(tr.Root()).Style
	st.Display = styles.Grid
	st.Columns = 4
	st.Gap = 50

	res := New(tr).Layout(viewport(100, 100))
	assert.GreaterOrEqual(t, res[a].Size().X, float32(0))
	assert.GreaterOrEqual(t, res[a].Size().Y, float32(0))
}

func TestLayoutDirtySubtreeOnly(t *testing.T) {
	tr := tree.New("root")
	a := newChild(tr, tr.Root(), "a", 100, 50)
	b := newChild(tr, tr.Root(), "b", 100, 50)
	e := New(tr)

	prev := e.Layout(viewport(800, 600))
	require.Equal(t, float32(50), prev[b].Box.Min.Y)

	// growing a reflows the parent, so b moves down
	tr.SetProperty(a, "height", 80)
	next := e.LayoutDirty(prev, viewport(800, 600))
	assert.Equal(t, float32(80), next[b].Box.Min.Y)
	assert.Equal(t, float32(50), prev[b].Box.Min.Y, "previous results are never mutated")
}

func TestLayoutDirtyNoChangeKeepsGeometry(t *testing.T) {
	tr := tree.New("root")
	a := newChild(tr, tr.Root(), "a", 100, 50)
	b := newChild(tr, tr.Root(), "b", 100, 50)
	e := New(tr)

	prev := e.Layout(viewport(800, 600))
	// a repaint-level change: same size, no reflow of siblings
	tr.SetProperty(a, "width", 100)
	next := e.LayoutDirty(prev, viewport(800, 600))
	assert.Equal(t, prev[a].Box, next[a].Box)
	assert.Equal(t, prev[b].Box, next[b].Box)
}

func TestLayoutDirtyAppliesPositionOffset(t *testing.T) {
	tr := tree.New("root")
	a := newChild(tr, tr.Root(), "a", 100, 50)
	e := New(tr)

	prev := e.Layout(viewport(800, 600))
	tr.SetProperty(a, "x", 30)
	next := e.LayoutDirty(prev, viewport(800, 600))
	assert.Equal(t, float32(30), next[a].Box.Min.X)
}

func TestLayoutDirtyDropsDeletedNodes(t *testing.T) {
	tr := tree.New("root")
	a := newChild(tr, tr.Root(), "a", 100, 50)
	b := newChild(tr, tr.Root(), "b", 100, 50)
	e := New(tr)

	prev := e.Layout(viewport(800, 600))
	require.Contains(t, prev, a)

	tr.Delete(a)
	next := e.LayoutDirty(prev, viewport(800, 600))
	assert.NotContains(t, next, a, "dead ids carry no geometry forward")
	assert.Equal(t, float32(0), next[b].Box.Min.Y, "b reflows into a's place")
}

func TestLayoutDirtyFallsBackToFullPass(t *testing.T) {
	tr := tree.New("root")
	newChild(tr, tr.Root(), "a", 100, 50)
	e := New(tr)
	res := e.LayoutDirty(nil, viewport(800, 600))
	assert.Len(t, res, 2)
}
