// Copyright (c) 2025, The Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T) (*Tree, NodeID, NodeID, NodeID) {
	t.Helper()
	tr := New("root")
	a := tr.NewNode(Container, "a")
	b := tr.NewNode(Container, "b")
	c := tr.NewNode(Text, "c")
	require.NoError(t, tr.AddChild(tr.Root(), a))
	require.NoError(t, tr.AddChild(tr.Root(), b))
	require.NoError(t, tr.AddChild(a, c))
	return tr, a, b, c
}

func TestAddChildOrder(t *testing.T) {
	tr, a, b, c := build(t)
	root := tr.Node(tr.Root())
	assert.Equal(t, []NodeID{a, b}, root.Children)
	assert.Equal(t, a, tr.Node(c).Parent)
	assert.Equal(t, "/root/a/c", tr.Path(c))

	var visited []string
	tr.WalkDown(tr.Root(), func(n *Node) bool {
		visited = append(visited, n.Name)
		return Continue
	})
	assert.Equal(t, []string{"root", "a", "c", "b"}, visited, "document order is depth-first pre-order")
}

func TestAddChildRejectsCycles(t *testing.T) {
	tr, a, _, c := build(t)

	err := tr.AddChild(c, a)
	var cerr *CycleError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, c, cerr.Parent)
	assert.Equal(t, a, cerr.Child)

	err = tr.AddChild(a, a)
	require.ErrorAs(t, err, &cerr)

	// the failed mutations left the tree unchanged
	assert.Equal(t, []NodeID{c}, tr.Node(a).Children)
	assert.Equal(t, tr.Root(), tr.Node(a).Parent)
	assert.Equal(t, "/root/a/c", tr.Path(c))
}

func TestAddChildMissingNode(t *testing.T) {
	tr, a, _, _ := build(t)
	var cerr *CycleError
	assert.ErrorAs(t, tr.AddChild(a, NodeID(99)), &cerr)
	assert.ErrorAs(t, tr.AddChild(NodeID(99), a), &cerr)
}

func TestAddChildReparents(t *testing.T) {
	tr, a, b, c := build(t)
	require.NoError(t, tr.AddChild(b, c))
	assert.Empty(t, tr.Node(a).Children)
	assert.Equal(t, []NodeID{c}, tr.Node(b).Children)
	assert.Equal(t, b, tr.Node(c).Parent)
}

func TestReparentDirtiesBothParents(t *testing.T) {
	tr, a, b, c := build(t)
	tr.ClearDirty(a, DirtyStyle|DirtyLayout|DirtyPaint)
	tr.ClearDirty(b, DirtyStyle|DirtyLayout|DirtyPaint)

	require.NoError(t, tr.AddChild(b, c))
	assert.True(t, tr.Node(a).IsDirty(DirtyLayout), "the old parent lost a child")
	assert.True(t, tr.Node(b).IsDirty(DirtyLayout), "the new parent gained one")
}

func TestInsertChildIndex(t *testing.T) {
	tr, _, b, _ := build(t)
	d := tr.NewNode(Container, "d")
	require.NoError(t, tr.InsertChild(tr.Root(), d, 1))
	root := tr.Node(tr.Root())
	assert.Equal(t, "d", tr.Node(root.Children[1]).Name)
	assert.Equal(t, b, root.Children[2])
}

func TestRemoveChildKeepsSubtree(t *testing.T) {
	tr, a, _, c := build(t)
	tr.RemoveChild(tr.Root(), a)
	require.NotNil(t, tr.Node(a), "detached subtree stays alive")
	assert.Equal(t, Nil, tr.Node(a).Parent)
	assert.Equal(t, a, tr.Node(c).Parent)
}

func TestDeleteFreesSubtreeAndReusesSlots(t *testing.T) {
	tr, a, _, c := build(t)
	tr.Delete(a)
	assert.Nil(t, tr.Node(a))
	assert.Nil(t, tr.Node(c))

	// freed arena slots are recycled
	d := tr.NewNode(Container, "d")
	assert.Contains(t, []NodeID{a, c}, d)
	assert.True(t, tr.Node(d).IsDirty(DirtyStyle|DirtyLayout|DirtyPaint))
}

func TestDeleteRootRejected(t *testing.T) {
	tr := New("root")
	tr.Delete(tr.Root())
	assert.NotNil(t, tr.Node(tr.Root()))
}

func TestSetClassesDirtiesStyle(t *testing.T) {
	tr, a, _, _ := build(t)
	tr.ClearDirty(a, DirtyStyle|DirtyLayout|DirtyPaint)

	tr.SetClasses(a, "flex p-4")
	n := tr.Node(a)
	assert.True(t, n.IsDirty(DirtyStyle))
	assert.True(t, n.IsDirty(DirtyLayout))

	// same value coalesces to a no-op
	tr.ClearDirty(a, DirtyStyle|DirtyLayout|DirtyPaint)
	tr.SetClasses(a, "flex p-4")
	assert.False(t, n.IsDirty(DirtyStyle))
}

func TestSetPropertyTypedKeys(t *testing.T) {
	tr, a, _, c := build(t)
	tr.ClearDirty(a, DirtyStyle|DirtyLayout|DirtyPaint)
	tr.ClearDirty(tr.Root(), DirtyStyle|DirtyLayout|DirtyPaint)

	tr.SetProperty(a, "width", 120)
	tr.SetProperty(a, "height", 40.0)
	n := tr.Node(a)
	assert.Equal(t, float32(120), n.Size.X)
	assert.Equal(t, float32(40), n.Size.Y)
	assert.True(t, n.IsDirty(DirtyLayout))
	assert.False(t, tr.Node(tr.Root()).IsDirty(DirtyLayout),
		"the layout pass reflows the parent only on an actual size change")

	tr.SetProperty(a, "x", float32(5))
	assert.Equal(t, float32(5), n.Pos.X)
	assert.True(t, tr.Node(tr.Root()).IsDirty(DirtyLayout),
		"position offsets are applied by the parent's flow")

	tr.SetProperty(c, "text", "hello")
	assert.Equal(t, "hello", tr.Node(c).Text)

	tr.ClearDirty(a, DirtyLayout|DirtyPaint)
	tr.SetProperty(a, "opacity", 2.5)
	assert.Equal(t, float32(1), n.Style.Opacity, "opacity clamps to [0,1]")
	assert.True(t, n.IsDirty(DirtyPaint))
	assert.False(t, n.IsDirty(DirtyLayout), "opacity is paint-only")

	tr.SetProperty(a, "badge", 7)
	assert.Equal(t, 7, n.Props["badge"])
}

func TestWalkDownBreakPrunesSubtree(t *testing.T) {
	tr, a, _, _ := build(t)
	var visited []string
	tr.WalkDown(tr.Root(), func(n *Node) bool {
		visited = append(visited, n.Name)
		if n.ID == a {
			return Break
		}
		return Continue
	})
	assert.Equal(t, []string{"root", "a", "b"}, visited, "break skips the subtree, not the siblings")
}

func TestWalkUp(t *testing.T) {
	tr, _, _, c := build(t)
	var visited []string
	tr.WalkUp(c, func(n *Node) bool {
		visited = append(visited, n.Name)
		return Continue
	})
	assert.Equal(t, []string{"c", "a", "root"}, visited)
}
