// Copyright (c) 2025, The Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

const (
	// Continue can be returned from tree walking functions to continue
	// processing down the tree.
	Continue = true

	// Break can be returned from tree walking functions to stop
	// processing this branch of the tree.
	Break = false
)

// WalkDown calls the given function on the node and all of its
// descendants, depth-first and pre-order, visiting children in
// insertion (document) order. This is the canonical layout and paint
// order. Returning [Break] stops descent into that branch.
func (t *Tree) WalkDown(id NodeID, fun func(n *Node) bool) {
	n := t.Node(id)
	if n == nil {
		return
	}
	if !fun(n) {
		return
	}
	// children may be mutated by fun; index access stays valid
	for i := 0; i < len(n.Children); i++ {
		t.WalkDown(n.Children[i], fun)
	}
}

// WalkUp calls the given function on the node and each of its parents
// up to the root. Returning [Break] stops the walk.
func (t *Tree) WalkUp(id NodeID, fun func(n *Node) bool) {
	for n := t.Node(id); n != nil; n = t.Node(n.Parent) {
		if !fun(n) {
			return
		}
		if n.Parent == Nil {
			return
		}
	}
}

// Path returns the /-separated names from the root to this node.
func (t *Tree) Path(id NodeID) string {
	n := t.Node(id)
	if n == nil {
		return ""
	}
	if n.Parent == Nil {
		return "/" + n.Name
	}
	return t.Path(n.Parent) + "/" + n.Name
}
