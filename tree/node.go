// Copyright (c) 2025, The Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tree implements the retained component tree at the heart of
// lumen. Nodes live in an arena owned by a [Tree] and are addressed by
// [NodeID] indexes, with the parent stored as an index rather than an
// owning reference, so there are no ownership cycles. Children are kept
// in insertion (document) order, which is also layout and paint order.
package tree

import (
	"fmt"

	"github.com/lumen-ui/lumen/math32"
	"github.com/lumen-ui/lumen/styles"
)

// NodeID is the opaque identifier of a node within its [Tree].
// The zero of the type is not valid; Nil marks no node.
type NodeID int32

// Nil is the NodeID of no node.
const Nil NodeID = -1

// Kind is the widget kind of a node, which determines the draw command
// it emits and which properties can be animated on it.
type Kind int32

const (
	// Container is a box that lays out children; it emits a Rect.
	Container Kind = iota

	// Text displays its Text content; its size derives from the content.
	Text

	// Image displays an image payload.
	Image

	// Path displays a polyline payload.
	Path

	// Chart displays data series as polylines within its content box.
	Chart
)

func (k Kind) String() string {
	switch k {
	case Container:
		return "container"
	case Text:
		return "text"
	case Image:
		return "image"
	case Path:
		return "path"
	case Chart:
		return "chart"
	}
	return "invalid"
}

// Dirty is a bitflag set marking which frame passes a node needs.
type Dirty int32

const (
	// DirtyStyle means the class string changed and the style must be
	// re-resolved this frame.
	DirtyStyle Dirty = 1 << iota

	// DirtyLayout means geometry must be recomputed for this node and
	// its descendants.
	DirtyLayout

	// DirtyPaint means the node must re-emit its draw commands.
	DirtyPaint
)

// Node is one component instance in the retained tree. Nodes are
// created and owned by a [Tree]; do not copy them.
type Node struct {

	// ID is the node's identifier within its tree.
	ID NodeID

	// Name is an optional human-readable name, used in errors and paths.
	Name string

	// Kind is the widget kind.
	Kind Kind

	// Parent is the parent node, or Nil for the root.
	Parent NodeID

	// Children are the owned children in insertion (document) order.
	Children []NodeID

	// Classes is the raw utility-class string; the resolver turns it
	// into Style when the node is style-dirty.
	Classes string

	// Style is the resolved style.
	Style styles.Style

	// Pos is an explicit position offset within the parent's content
	// box, added to the flow position. Animatable.
	Pos math32.Vector2

	// Size is the explicit size; a zero component means the size on
	// that axis is derived from layout. Animatable.
	Size math32.Vector2

	// Text is the text content for Text nodes.
	Text string

	// Data is the opaque widget payload (chart data reference,
	// image source, callback handles).
	Data any

	// Props holds any other keyed payload values set via SetProperty.
	Props map[string]any

	dirty Dirty
	alive bool
}

// IsDirty reports whether all of the given dirty flags are set.
func (n *Node) IsDirty(d Dirty) bool {
	return n.dirty&d == d
}

// setDirty adds the given dirty flags.
func (n *Node) setDirty(d Dirty) {
	n.dirty |= d
}

// clearDirty removes the given dirty flags.
func (n *Node) clearDirty(d Dirty) {
	n.dirty &^= d
}

// String implements the fmt.Stringer interface.
func (n *Node) String() string {
	if n == nil {
		return "nil"
	}
	return fmt.Sprintf("%s(%s#%d)", n.Name, n.Kind, n.ID)
}
