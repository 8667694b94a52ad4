// Copyright (c) 2025, The Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"fmt"
	"time"

	"github.com/lumen-ui/lumen/math32"
	"github.com/lumen-ui/lumen/tree"
)

// TargetError is returned by [Scheduler.Schedule] when the tween
// references a node that does not exist or a property the node's kind
// does not support. The tween is dropped and never enters Running.
type TargetError struct {
	Node tree.NodeID
	Prop Prop
	Kind tree.Kind

	missing bool
}

func (e *TargetError) Error() string {
	if e.missing {
		return fmt.Sprintf("anim: no such node %d for property %s", e.Node, e.Prop)
	}
	return fmt.Sprintf("anim: node kind %s does not support animating %s", e.Kind, e.Prop)
}

// tweenKey identifies the one active tween per (node, property) pair.
type tweenKey struct {
	node tree.NodeID
	prop Prop
}

// Scheduler advances the active tweens of one tree. It runs entirely on
// the render goroutine: the frame coordinator calls [Scheduler.Tick]
// once per frame and drains the queued completion events afterwards.
type Scheduler struct {
	tree        *tree.Tree
	active      []*Tween
	byKey       map[tweenKey]*Tween
	completions []func()
	paused      bool
}

// NewScheduler returns a new [Scheduler] for the given tree.
func NewScheduler(t *tree.Tree) *Scheduler {
	return &Scheduler{tree: t, byKey: map[tweenKey]*Tween{}}
}

// Schedule adds the tween to the active set. An active tween on the
// same (node, property) pair is superseded: it is silently cancelled
// without firing its completion callback, since applying both would
// produce an undefined composite value. Returns a [*TargetError] if the
// node does not exist or its kind cannot animate the property.
func (s *Scheduler) Schedule(tw *Tween) error {
	n := s.tree.Node(tw.Node)
	if n == nil {
		return &TargetError{Node: tw.Node, Prop: tw.Prop, missing: true}
	}
	if !supports(n.Kind, tw.Prop) {
		return &TargetError{Node: tw.Node, Prop: tw.Prop, Kind: n.Kind}
	}
	k := tweenKey{tw.Node, tw.Prop}
	if prior, ok := s.byKey[k]; ok {
		prior.State = Cancelled
	}
	tw.State = Pending
	s.byKey[k] = tw
	s.active = append(s.active, tw)
	return nil
}

// supports reports whether the node kind can animate the property.
// Text nodes derive their size from content, so their geometry cannot
// be animated directly; visual transform properties work everywhere.
func supports(k tree.Kind, p Prop) bool {
	if !p.Layout() {
		return true
	}
	return k != tree.Text
}

// Cancel requests cancellation of the active tween on the given
// (node, property) pair. It takes effect at the next tick boundary; an
// in-flight tick completes its current pass. The completion callback is
// not fired.
func (s *Scheduler) Cancel(node tree.NodeID, prop Prop) {
	if tw, ok := s.byKey[tweenKey{node, prop}]; ok {
		tw.cancelRequested = true
	}
}

// CancelNode requests cancellation of every active tween on the node.
func (s *Scheduler) CancelNode(node tree.NodeID) {
	for k, tw := range s.byKey {
		if k.node == node {
			tw.cancelRequested = true
		}
	}
}

// IsAnimating reports whether the node has an active tween, on any
// property or on the specific given properties.
func (s *Scheduler) IsAnimating(node tree.NodeID, props ...Prop) bool {
	if len(props) == 0 {
		for k := range s.byKey {
			if k.node == node {
				return true
			}
		}
		return false
	}
	for _, p := range props {
		if _, ok := s.byKey[tweenKey{node, p}]; ok {
			return true
		}
	}
	return false
}

// Active returns the number of tweens in the active set.
func (s *Scheduler) Active() int {
	return len(s.active)
}

// Pause stops advancing tweens until [Scheduler.Resume]; elapsed time
// does not accumulate while paused.
func (s *Scheduler) Pause() { s.paused = true }

// Resume resumes advancing tweens.
func (s *Scheduler) Resume() { s.paused = false }

// Tick advances every running tween by dt, applying the eased,
// interpolated value to the target node and marking it dirty for the
// appropriate pass. Cancellations requested since the last tick are
// honored first; tweens completed on the previous tick are removed.
func (s *Scheduler) Tick(dt time.Duration) {
	if s.paused {
		return
	}
	out := s.active[:0]
	for _, tw := range s.active {
		k := tweenKey{tw.Node, tw.Prop}
		switch {
		case tw.State == Cancelled:
			continue
		case tw.cancelRequested:
			tw.State = Cancelled
			if s.byKey[k] == tw {
				delete(s.byKey, k)
			}
			continue
		case tw.State == Completed:
			// removed on the tick after completion
			continue
		}
		if s.tree.Node(tw.Node) == nil {
			// target was deleted out from under the animation
			tw.State = Cancelled
			if s.byKey[k] == tw {
				delete(s.byKey, k)
			}
			continue
		}
		tw.State = Running
		tw.Elapsed += dt

		progress := float32(1)
		if tw.Duration > 0 {
			progress = math32.Clamp01(float32(tw.Elapsed) / float32(tw.Duration))
		}
		eased := progress
		if tw.Mirror {
			// fold progress so the value returns to Start at the end
			eased = 1 - math32.Abs(2*progress-1)
		}
		value := math32.Lerp(tw.Start, tw.End, tw.Easing.Func()(eased))
		if progress >= 1 {
			value = tw.End
			if tw.Mirror {
				value = tw.Start
			}
		}
		s.apply(tw, value)

		if progress >= 1 {
			tw.State = Completed
			if tw.OnComplete != nil {
				s.completions = append(s.completions, tw.OnComplete)
			}
			if s.byKey[k] == tw {
				delete(s.byKey, k)
			}
		}
		out = append(out, tw)
	}
	// zero dropped tail so finished tweens are collectable
	for i := len(out); i < len(s.active); i++ {
		s.active[i] = nil
	}
	s.active = out
}

// apply writes the interpolated value into the target node and marks
// it dirty: transform properties are paint-only, geometry properties
// go through the property write path and trigger relayout.
func (s *Scheduler) apply(tw *Tween, value float32) {
	n := s.tree.Node(tw.Node)
	switch tw.Prop {
	case Opacity:
		s.tree.SetProperty(tw.Node, "opacity", value)
	case TranslateX:
		n.Style.Translate.X = value
		s.tree.MarkDirty(tw.Node, tree.DirtyPaint)
	case TranslateY:
		n.Style.Translate.Y = value
		s.tree.MarkDirty(tw.Node, tree.DirtyPaint)
	case ScaleX:
		n.Style.Scale.X = value
		s.tree.MarkDirty(tw.Node, tree.DirtyPaint)
	case ScaleY:
		n.Style.Scale.Y = value
		s.tree.MarkDirty(tw.Node, tree.DirtyPaint)
	case Width:
		s.tree.SetProperty(tw.Node, "width", value)
	case Height:
		s.tree.SetProperty(tw.Node, "height", value)
	case X:
		s.tree.SetProperty(tw.Node, "x", value)
	case Y:
		s.tree.SetProperty(tw.Node, "y", value)
	}
}

// DrainCompletions returns and clears the completion callbacks queued
// by completed tweens. The frame coordinator invokes them after the
// tick pass so user code never runs from inside the scheduler.
func (s *Scheduler) DrainCompletions() []func() {
	c := s.completions
	s.completions = nil
	return c
}
