// Copyright (c) 2025, The Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"context"
	"errors"
	"image"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-ui/lumen/render"
	"github.com/lumen-ui/lumen/series"
)

type countingRenderer struct {
	frames atomic.Int64
	size   image.Point
}

func (c *countingRenderer) Render(r render.Render, size image.Point) error {
	c.frames.Add(1)
	c.size = size
	return nil
}

func TestAppRunsUntilOnFrameStops(t *testing.T) {
	errDone := errors.New("done")
	rd := &countingRenderer{}
	app := &App{
		Scene:    NewScene(image.Pt(64, 64)),
		Renderer: rd,
		FPS:      200,
		OnFrame: func(frame uint64) error {
			if frame >= 3 {
				return errDone
			}
			return nil
		},
	}
	err := app.Run(context.Background())
	assert.ErrorIs(t, err, errDone)
	assert.GreaterOrEqual(t, rd.frames.Load(), int64(3))
	assert.Equal(t, image.Pt(64, 64), rd.size)
}

func TestAppCancelIsCleanShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		Scene:    NewScene(image.Pt(64, 64)),
		Renderer: &countingRenderer{},
		FPS:      200,
	}
	go func() {
		time.Sleep(30 * time.Millisecond)
		cancel()
	}()
	assert.NoError(t, app.Run(ctx))
}

func TestAppCollectorFeedsSeries(t *testing.T) {
	errDone := errors.New("done")
	sc := NewScene(image.Pt(64, 64))
	app := &App{
		Scene:    sc,
		Renderer: &countingRenderer{},
		FPS:      200,
		Collector: &series.Collector{
			Set:      sc.Series,
			Interval: time.Millisecond,
			Callback: func() map[string]series.Sample {
				return map[string]series.Sample{
					"load": {Time: float64(time.Now().UnixNano()) / 1e9, Value: 1},
				}
			},
		},
		OnFrame: func(frame uint64) error {
			if frame >= 10 {
				return errDone
			}
			return nil
		},
	}
	require.ErrorIs(t, app.Run(context.Background()), errDone)
	assert.NotEmpty(t, sc.Series.Snapshot("load"))
}

func TestAppRequiresSceneAndRenderer(t *testing.T) {
	assert.Error(t, (&App{}).Run(context.Background()))
}
