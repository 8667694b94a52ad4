// Copyright (c) 2025, The Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package core coordinates the frame pipeline. A [Scene] owns the
// component tree and its supporting systems (style resolver, layout
// engine, tween scheduler, data series) and turns them into an ordered
// render list once per frame. All tree mutation funnels through the
// scene's intent queue, so only the goroutine calling [Scene.Frame]
// ever touches the tree.
package core

import (
	"image"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lumen-ui/lumen/anim"
	"github.com/lumen-ui/lumen/layout"
	"github.com/lumen-ui/lumen/math32"
	"github.com/lumen-ui/lumen/render"
	"github.com/lumen-ui/lumen/series"
	"github.com/lumen-ui/lumen/styles/tokens"
	"github.com/lumen-ui/lumen/tree"
)

// DefaultBudget is the per-frame wall-time budget, one frame at 60Hz.
const DefaultBudget = 16670 * time.Microsecond

// Stats are cumulative frame statistics.
type Stats struct {
	FrameCount    uint64
	Overruns      uint64
	LastFrameTime time.Duration
}

// Scene owns a component tree and the systems that drive it, and
// produces one render list per [Scene.Frame] call.
type Scene struct {

	// Tree is the component tree. Mutate it only from the frame
	// goroutine or through the scene's intent methods.
	Tree *tree.Tree

	// Resolver turns class strings into styles.
	Resolver *tokens.Resolver

	// Engine computes layout geometry.
	Engine *layout.Engine

	// Scheduler advances property tweens.
	Scheduler *anim.Scheduler

	// Series holds the data buffers that chart nodes read.
	Series *series.Set

	// Budget is the wall-time budget per frame; exceeding it counts an
	// overrun. Defaults to [DefaultBudget].
	Budget time.Duration

	mu      sync.Mutex
	intents []func(sc *Scene)
	size    image.Point

	live     atomic.Pointer[layout.Results]
	lastSize image.Point

	// seriesSnap is the per-frame snapshot of every series buffer,
	// taken right after the intent drain. Charts paint from it, so all
	// charts in one frame observe the same data even while collectors
	// keep pushing from other goroutines. Frame goroutine only.
	seriesSnap map[string][]series.Sample

	statsMu sync.Mutex
	stats   Stats
}

// NewScene returns a scene with a fresh tree, the default token table,
// and the given frame size.
func NewScene(size image.Point) *Scene {
	t := tree.New("root")
	sc := &Scene{
		Tree:      t,
		Resolver:  tokens.NewResolver(tokens.Default()),
		Engine:    layout.New(t),
		Scheduler: anim.NewScheduler(t),
		Series:    series.NewSet(100),
		Budget:    DefaultBudget,
		size:      size,

		seriesSnap: map[string][]series.Sample{},
	}
	return sc
}

// Do enqueues fun to run on the frame goroutine at the start of the
// next frame. It is safe to call from any goroutine.
func (sc *Scene) Do(fun func(sc *Scene)) {
	sc.mu.Lock()
	sc.intents = append(sc.intents, fun)
	sc.mu.Unlock()
}

// SetClasses replaces a node's class string at the next frame.
func (sc *Scene) SetClasses(id tree.NodeID, classes string) {
	sc.Do(func(sc *Scene) {
		sc.Tree.SetClasses(id, classes)
	})
}

// SetProperty sets a node property at the next frame.
func (sc *Scene) SetProperty(id tree.NodeID, key string, value any) {
	sc.Do(func(sc *Scene) {
		sc.Tree.SetProperty(id, key, value)
	})
}

// Schedule starts a tween at the next frame. A tween that fails
// validation then (missing node, unsupported property) is dropped
// with a logged warning.
func (sc *Scene) Schedule(tw *anim.Tween) {
	sc.Do(func(sc *Scene) {
		if err := sc.Scheduler.Schedule(tw); err != nil {
			slog.Warn("core: tween dropped", "err", err)
		}
	})
}

// Cancel cancels the active tween on a node property at the next frame.
func (sc *Scene) Cancel(id tree.NodeID, prop anim.Prop) {
	sc.Do(func(sc *Scene) {
		sc.Scheduler.Cancel(id, prop)
	})
}

// Push adds a sample to the named series buffer. Buffers synchronize
// internally, so this takes effect immediately from any goroutine;
// charts read a per-frame snapshot taken at the intent drain, so a
// sample pushed mid-frame paints on the following frame.
func (sc *Scene) Push(name string, time float64, value float32) {
	sc.Series.Push(name, time, value)
}

// SetSize changes the frame size; the next frame does a full layout.
func (sc *Scene) SetSize(size image.Point) {
	sc.mu.Lock()
	sc.size = size
	sc.mu.Unlock()
}

// Size returns the current frame size.
func (sc *Scene) Size() image.Point {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.size
}

// Results returns the layout results of the most recent frame. The map
// must be treated as read-only; each frame publishes a fresh one.
func (sc *Scene) Results() layout.Results {
	if r := sc.live.Load(); r != nil {
		return *r
	}
	return nil
}

// Stats returns cumulative frame statistics.
func (sc *Scene) Stats() Stats {
	sc.statsMu.Lock()
	defer sc.statsMu.Unlock()
	return sc.stats
}

// Frame advances the scene by dt and returns the render list for the
// resulting state: drain intents, tick tweens, restyle dirty nodes,
// re-lay dirty subtrees, then paint in document order. The pass always
// completes; exceeding the budget is counted and logged, not aborted.
// The resolver memo is flushed when the pass ends, so dynamic class
// strings never accumulate across frames.
func (sc *Scene) Frame(dt time.Duration) render.Render {
	start := time.Now()
	size := sc.drain()
	sc.snapshotSeries()

	sc.Scheduler.Tick(dt)
	for _, done := range sc.Scheduler.DrainCompletions() {
		done()
	}

	sc.restyle()
	results := sc.layout(size)
	sc.live.Store(&results)

	var r render.Render
	sc.paint(sc.Tree.Root(), math32.Vector2{}, 1, results, &r)
	sc.Resolver.FlushCache()

	elapsed := time.Since(start)
	sc.statsMu.Lock()
	sc.stats.FrameCount++
	sc.stats.LastFrameTime = elapsed
	if elapsed > sc.Budget {
		sc.stats.Overruns++
		slog.Warn("core: frame budget exceeded",
			"elapsed", elapsed, "budget", sc.Budget, "overruns", sc.stats.Overruns)
	}
	sc.statsMu.Unlock()
	return r
}

// snapshotSeries captures every series buffer once for this frame.
func (sc *Scene) snapshotSeries() {
	clear(sc.seriesSnap)
	for _, name := range sc.Series.Names() {
		sc.seriesSnap[name] = sc.Series.Snapshot(name)
	}
}

// drain runs queued intents and returns the current frame size.
func (sc *Scene) drain() image.Point {
	sc.mu.Lock()
	intents := sc.intents
	sc.intents = nil
	size := sc.size
	sc.mu.Unlock()
	for _, fun := range intents {
		fun(sc)
	}
	return size
}

// restyle re-resolves classes for style-dirty nodes. A restyled node is
// re-laid and repainted, since any style field can affect geometry.
func (sc *Scene) restyle() {
	sc.Tree.WalkDown(sc.Tree.Root(), func(n *tree.Node) bool {
		if n.IsDirty(tree.DirtyStyle) {
			n.Style = sc.Resolver.Resolve(n.Classes)
			sc.Tree.ClearDirty(n.ID, tree.DirtyStyle)
			sc.Tree.MarkDirty(n.ID, tree.DirtyLayout|tree.DirtyPaint)
		}
		return tree.Continue
	})
	for _, w := range sc.Resolver.Warnings() {
		slog.Warn("core: style token skipped", "err", w)
	}
}

// layout recomputes geometry into a fresh results map: a full pass on
// the first frame or after a resize, a dirty-subtree pass otherwise.
func (sc *Scene) layout(size image.Point) layout.Results {
	viewport := math32.B2Size(math32.Vector2{}, math32.Vec2(float32(size.X), float32(size.Y)))
	prev := sc.live.Load()
	if prev == nil || size != sc.lastSize {
		sc.lastSize = size
		return sc.Engine.Layout(viewport)
	}
	return sc.Engine.LayoutDirty(*prev, viewport)
}
