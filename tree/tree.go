// Copyright (c) 2025, The Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"log/slog"
	"slices"

	"github.com/lumen-ui/lumen/math32"
)

// Tree owns the node arena for one window. It is not safe for
// concurrent use: all mutation goes through the frame coordinator's
// intent queue, which serializes access onto the render goroutine.
type Tree struct {
	nodes []Node
	root  NodeID
	free  []NodeID
}

// New returns a new [Tree] with a Container root of the given name.
func New(rootName string) *Tree {
	t := &Tree{}
	t.root = t.NewNode(Container, rootName)
	return t
}

// Root returns the root node id.
func (t *Tree) Root() NodeID {
	return t.root
}

// Node returns the node for the given id, or nil if the id is not a
// live node of this tree.
func (t *Tree) Node(id NodeID) *Node {
	if id < 0 || int(id) >= len(t.nodes) {
		return nil
	}
	n := &t.nodes[id]
	if !n.alive {
		return nil
	}
	return n
}

// NewNode allocates a new detached node of the given kind and name,
// reusing a freed arena slot when one is available.
func (t *Tree) NewNode(kind Kind, name string) NodeID {
	var id NodeID
	if ln := len(t.free); ln > 0 {
		id = t.free[ln-1]
		t.free = t.free[:ln-1]
	} else {
		id = NodeID(len(t.nodes))
		t.nodes = append(t.nodes, Node{})
	}
	n := &t.nodes[id]
	*n = Node{ID: id, Name: name, Kind: kind, Parent: Nil, alive: true}
	n.Style.Defaults()
	n.setDirty(DirtyStyle | DirtyLayout | DirtyPaint)
	return id
}

// AddChild appends child at the end of parent's children. It returns a
// [*CycleError], leaving the tree unchanged, if the mutation would
// create a cycle (the child is the parent or one of its ancestors).
// A child already on the tree is moved from its previous parent.
func (t *Tree) AddChild(parent, child NodeID) error {
	return t.InsertChild(parent, child, -1)
}

// InsertChild adds child at the given position in parent's children;
// a negative index appends. See [Tree.AddChild] for cycle semantics.
func (t *Tree) InsertChild(parent, child NodeID, index int) error {
	pn := t.Node(parent)
	cn := t.Node(child)
	if pn == nil || cn == nil {
		return &CycleError{Parent: parent, Child: child, missing: true}
	}
	if child == parent || t.IsAncestor(child, parent) {
		return &CycleError{Parent: parent, Child: child}
	}
	if cn.Parent != Nil {
		t.detach(child)
	}
	if index < 0 || index > len(pn.Children) {
		index = len(pn.Children)
	}
	pn.Children = slices.Insert(pn.Children, index, child)
	cn.Parent = parent
	// the parent's child flow changed, so its whole subtree reflows
	t.markLayout(parent)
	return nil
}

// RemoveChild detaches child from parent, keeping the child alive as a
// detached subtree. It is a no-op if child is not a child of parent.
func (t *Tree) RemoveChild(parent, child NodeID) {
	cn := t.Node(child)
	if cn == nil || cn.Parent != parent {
		return
	}
	t.detach(child)
	t.markLayout(parent)
}

// detach removes the node from its parent's child list.
func (t *Tree) detach(id NodeID) {
	n := t.Node(id)
	if n == nil || n.Parent == Nil {
		return
	}
	pn := t.Node(n.Parent)
	if pn != nil {
		if i := slices.Index(pn.Children, id); i >= 0 {
			pn.Children = slices.Delete(pn.Children, i, i+1)
		}
		t.markLayout(n.Parent)
	}
	n.Parent = Nil
}

// Delete detaches the node and recursively frees it and all of its
// descendants. Deleting the root is rejected.
func (t *Tree) Delete(id NodeID) {
	if id == t.root {
		slog.Error("tree: cannot delete the root node", "node", t.Node(id))
		return
	}
	n := t.Node(id)
	if n == nil {
		return
	}
	t.detach(id)
	t.destroy(id)
}

func (t *Tree) destroy(id NodeID) {
	n := t.Node(id)
	if n == nil {
		return
	}
	kids := n.Children
	n.Children = nil
	for _, kid := range kids {
		t.destroy(kid)
	}
	n.alive = false
	n.Data = nil
	n.Props = nil
	t.free = append(t.free, id)
}

// IsAncestor reports whether ancestor is an ancestor of id (not
// counting id itself).
func (t *Tree) IsAncestor(ancestor, id NodeID) bool {
	n := t.Node(id)
	for n != nil && n.Parent != Nil {
		if n.Parent == ancestor {
			return true
		}
		n = t.Node(n.Parent)
	}
	return false
}

// SetClasses sets the node's utility-class string and marks it for
// restyle and relayout. Setting the same value again is a no-op, so
// repeated calls within a frame coalesce.
func (t *Tree) SetClasses(id NodeID, classes string) {
	n := t.Node(id)
	if n == nil || n.Classes == classes {
		return
	}
	n.Classes = classes
	n.setDirty(DirtyStyle)
	t.markLayout(id)
}

// SetProperty sets a keyed property on the node. Recognized keys write
// typed fields ("text", "x", "y", "width", "height", "opacity", "data");
// any other key is stored in the node's payload map. Geometry keys mark
// the node layout-dirty; paint-only keys mark it paint-dirty. The last
// write within a frame wins.
func (t *Tree) SetProperty(id NodeID, key string, value any) {
	n := t.Node(id)
	if n == nil {
		return
	}
	switch key {
	case "text":
		s, _ := value.(string)
		if n.Text == s {
			return
		}
		n.Text = s
		t.markLayout(id)
	case "x":
		n.Pos.X = toFloat32(value)
		// position offsets are applied by the parent's flow
		t.markLayout(id)
		t.markLayout(n.Parent)
	case "y":
		n.Pos.Y = toFloat32(value)
		t.markLayout(id)
		t.markLayout(n.Parent)
	case "width":
		n.Size.X = toFloat32(value)
		t.markLayout(id)
	case "height":
		n.Size.Y = toFloat32(value)
		t.markLayout(id)
	case "opacity":
		n.Style.Opacity = math32.Clamp01(toFloat32(value))
		n.setDirty(DirtyPaint)
	case "data":
		n.Data = value
		n.setDirty(DirtyPaint)
	default:
		if n.Props == nil {
			n.Props = map[string]any{}
		}
		n.Props[key] = value
		n.setDirty(DirtyPaint)
	}
}

// markLayout marks the node layout- and paint-dirty. The parent is not
// eagerly dirtied: the layout pass walks one level up only when the
// recomputed size actually changed, so same-size mutations never
// reflow siblings.
func (t *Tree) markLayout(id NodeID) {
	n := t.Node(id)
	if n == nil {
		return
	}
	n.setDirty(DirtyLayout | DirtyPaint)
}

// MarkDirty adds the given dirty flags to the node.
func (t *Tree) MarkDirty(id NodeID, d Dirty) {
	if n := t.Node(id); n != nil {
		n.setDirty(d)
	}
}

// ClearDirty removes the given dirty flags from the node.
func (t *Tree) ClearDirty(id NodeID, d Dirty) {
	if n := t.Node(id); n != nil {
		n.clearDirty(d)
	}
}

func toFloat32(value any) float32 {
	switch v := value.(type) {
	case float32:
		return v
	case float64:
		return float32(v)
	case int:
		return float32(v)
	default:
		slog.Warn("tree: numeric property value has unsupported type", "value", value)
		return 0
	}
}
