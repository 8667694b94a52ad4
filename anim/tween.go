// Copyright (c) 2025, The Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"fmt"
	"time"

	"github.com/lumen-ui/lumen/tree"
)

// Prop is the animatable property of a node targeted by a [Tween].
type Prop int32

const (
	// Opacity animates [styles.Style.Opacity]; paint-only.
	Opacity Prop = iota

	// TranslateX and TranslateY animate the visual translate offset;
	// paint-only.
	TranslateX
	TranslateY

	// ScaleX and ScaleY animate the visual scale factor; paint-only.
	ScaleX
	ScaleY

	// Width and Height animate the explicit node size; relayout.
	Width
	Height

	// X and Y animate the explicit position offset; relayout.
	X
	Y
)

func (p Prop) String() string {
	switch p {
	case Opacity:
		return "opacity"
	case TranslateX:
		return "translate-x"
	case TranslateY:
		return "translate-y"
	case ScaleX:
		return "scale-x"
	case ScaleY:
		return "scale-y"
	case Width:
		return "width"
	case Height:
		return "height"
	case X:
		return "x"
	case Y:
		return "y"
	}
	return "invalid"
}

// Layout reports whether the property affects geometry, requiring a
// relayout when it changes; other properties are paint-only.
func (p Prop) Layout() bool {
	switch p {
	case Width, Height, X, Y:
		return true
	}
	return false
}

// States are the lifecycle states of a [Tween].
type States int32

const (
	// Pending means scheduled but not yet ticked.
	Pending States = iota

	// Running means actively advancing.
	Running

	// Completed means the end value has been applied and the completion
	// callback queued; the tween is dropped on the following tick.
	Completed

	// Cancelled means the tween was dropped without firing completion.
	Cancelled
)

func (s States) String() string {
	switch s {
	case Pending:
		return "pending"
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	}
	return "invalid"
}

// Tween is one scheduled property animation: it interpolates a node
// property from Start to End over Duration, shaping progress with the
// Easing function. Schedule it with [Scheduler.Schedule].
type Tween struct {

	// Node is the target node.
	Node tree.NodeID

	// Prop is the target property.
	Prop Prop

	// Start and End are the interpolation endpoints. On the final tick
	// the value is clamped exactly to End.
	Start float32
	End   float32

	// Duration is the total animation time. A non-positive duration
	// completes on the first tick.
	Duration time.Duration

	// Elapsed is the time advanced so far.
	Elapsed time.Duration

	// Easing is the progress-shaping curve.
	Easing Easing

	// Mirror plays the tween out and back: the value runs Start→End
	// over the first half of Duration and back again over the second,
	// finishing clamped exactly at Start.
	Mirror bool

	// OnComplete, if set, is queued as a completion event when the tween
	// reaches its end value. It is invoked by the frame coordinator
	// after the tick pass, never mid-tick, and never if the tween is
	// cancelled or superseded.
	OnComplete func()

	// State is the lifecycle state.
	State States

	cancelRequested bool
}

func (tw *Tween) String() string {
	return fmt.Sprintf("tween(%d.%s %g→%g over %v, %s)", tw.Node, tw.Prop, tw.Start, tw.End, tw.Duration, tw.Easing)
}

// NewTween returns a new pending tween for the given node property.
func NewTween(node tree.NodeID, prop Prop, start, end float32, duration time.Duration, easing Easing) *Tween {
	return &Tween{Node: node, Prop: prop, Start: start, End: end, Duration: duration, Easing: easing}
}

// Convenience constructors matching the common transition patterns.

// FadeIn animates opacity from 0 to 1.
func FadeIn(node tree.NodeID, duration time.Duration) *Tween {
	return NewTween(node, Opacity, 0, 1, duration, CubicOut)
}

// FadeOut animates opacity from 1 to 0.
func FadeOut(node tree.NodeID, duration time.Duration) *Tween {
	return NewTween(node, Opacity, 1, 0, duration, CubicIn)
}

// SlideInLeft slides the node in from the given distance to the left.
func SlideInLeft(node tree.NodeID, distance float32, duration time.Duration) *Tween {
	return NewTween(node, TranslateX, -distance, 0, duration, CubicOut)
}

// SlideInRight slides the node in from the given distance to the right.
func SlideInRight(node tree.NodeID, distance float32, duration time.Duration) *Tween {
	return NewTween(node, TranslateX, distance, 0, duration, CubicOut)
}

// ScaleIn grows the node from zero scale to full size.
func ScaleIn(node tree.NodeID, duration time.Duration) []*Tween {
	return []*Tween{
		NewTween(node, ScaleX, 0, 1, duration, BackOut),
		NewTween(node, ScaleY, 0, 1, duration, BackOut),
	}
}

// Pulse scales the node up to peak and back down to its resting size,
// as an attention cue. The mirrored tweens end back at scale 1.
func Pulse(node tree.NodeID, peak float32, duration time.Duration) []*Tween {
	x := NewTween(node, ScaleX, 1, peak, duration, SineInOut)
	y := NewTween(node, ScaleY, 1, peak, duration, SineInOut)
	x.Mirror = true
	y.Mirror = true
	return []*Tween{x, y}
}
