// Copyright (c) 2025, The Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import "fmt"

// CycleError is returned by [Tree.AddChild] and [Tree.InsertChild] when
// the requested mutation would create a cycle, or when either node does
// not exist. The tree is left unchanged.
type CycleError struct {
	Parent NodeID
	Child  NodeID

	missing bool
}

func (e *CycleError) Error() string {
	if e.missing {
		return fmt.Sprintf("tree: add child %d to %d: no such node", e.Child, e.Parent)
	}
	return fmt.Sprintf("tree: adding node %d as a child of %d would create a cycle", e.Child, e.Parent)
}
