// Copyright (c) 2025, The Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lumen-ui/lumen/render"
	"github.com/lumen-ui/lumen/series"
)

// App runs a scene on a fixed-tick frame loop, delivering each frame's
// render list to a backend. An optional collector feeds the scene's
// series buffers from its own goroutine.
type App struct {

	// Scene is the scene to drive.
	Scene *Scene

	// Renderer receives each frame's render list.
	Renderer render.Renderer

	// FPS is the frame rate. Zero or less defaults to 60.
	FPS int

	// Collector, if non-nil, runs alongside the frame loop.
	Collector *series.Collector

	// OnFrame, if non-nil, is called on the frame goroutine after each
	// frame renders, with the frame number. Used by examples to drive
	// scripted changes and stop after a fixed number of frames.
	OnFrame func(frame uint64) error
}

// Run drives the frame loop until the context is cancelled, the
// renderer fails, or OnFrame returns an error. Cancellation is a clean
// shutdown and returns nil.
func (a *App) Run(ctx context.Context) error {
	if a.Scene == nil || a.Renderer == nil {
		return errors.New("core: App needs a Scene and a Renderer")
	}
	fps := a.FPS
	if fps <= 0 {
		fps = 60
	}
	g, ctx := errgroup.WithContext(ctx)
	if a.Collector != nil {
		g.Go(func() error {
			return a.Collector.Run(ctx)
		})
	}
	g.Go(func() error {
		tick := time.NewTicker(time.Second / time.Duration(fps))
		defer tick.Stop()
		last := time.Now()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case now := <-tick.C:
				dt := now.Sub(last)
				last = now
				r := a.Scene.Frame(dt)
				if err := a.Renderer.Render(r, a.Scene.Size()); err != nil {
					return fmt.Errorf("core: render: %w", err)
				}
				if a.OnFrame != nil {
					if err := a.OnFrame(a.Scene.Stats().FrameCount); err != nil {
						return err
					}
				}
			}
		}
	})
	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		slog.Info("core: app stopped", "frames", a.Scene.Stats().FrameCount)
		return nil
	}
	return err
}
