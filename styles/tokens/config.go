// Copyright (c) 2025, The Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tokens

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// fileTable is the on-disk form of token table extensions:
//
//	[tokens."bg-brand"]
//	prop = "background"
//	color = "#0F172A"
//
//	[tokens."p-huge"]
//	prop = "padding"
//	num = 128.0
type fileTable struct {
	Tokens map[string]fileEffect `toml:"tokens" yaml:"tokens"`
}

type fileEffect struct {
	Prop  string  `toml:"prop" yaml:"prop"`
	Num   float32 `toml:"num" yaml:"num"`
	Color string  `toml:"color" yaml:"color"`
}

// propNames maps config file property names to [Prop] values.
var propNames = map[string]Prop{
	"background":    Background,
	"color":         Color,
	"border":        Border,
	"padding":       Padding,
	"margin":        Margin,
	"font-size":     FontSize,
	"border-width":  BorderWidth,
	"border-radius": BorderRadius,
	"gap":           Gap,
	"columns":       Columns,
	"width":         Width,
	"height":        Height,
	"opacity":       Opacity,
}

// OpenFile loads token table extensions from a TOML or YAML file
// (chosen by extension) and returns a copy of base with the extensions
// merged in. File entries override base entries with the same token.
func OpenFile(base Table, filename string) (Table, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Table{}, err
	}
	ft := fileTable{}
	switch ext := filepath.Ext(filename); strings.ToLower(ext) {
	case ".toml":
		err = toml.Unmarshal(data, &ft)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &ft)
	default:
		err = fmt.Errorf("tokens: unsupported table file extension %q", ext)
	}
	if err != nil {
		return Table{}, err
	}
	return extend(base, ft)
}

// extend merges the file entries into a clone of base.
func extend(base Table, ft fileTable) (Table, error) {
	t := base.Clone()
	for tok, fe := range ft.Tokens {
		prop, ok := propNames[fe.Prop]
		if !ok {
			return Table{}, fmt.Errorf("tokens: token %q: unknown property %q", tok, fe.Prop)
		}
		e := Effect{Prop: prop, Num: fe.Num}
		if fe.Color != "" {
			c, err := ParseHex(fe.Color)
			if err != nil {
				return Table{}, fmt.Errorf("tokens: token %q: %w", tok, err)
			}
			e.Color = c
		}
		t.Static[tok] = []Effect{e}
	}
	return t, nil
}

// Watch hot-reloads the given token table file into the resolver
// whenever it changes, merging it over base. Load errors keep the
// previous table and are logged. Close the returned watcher to stop.
func Watch(r *Resolver, base Table, filename string) (*fsnotify.Watcher, error) {
	t, err := OpenFile(base, filename)
	if err != nil {
		return nil, err
	}
	r.SetTable(t)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filename); err != nil {
		w.Close()
		return nil, err
	}
	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				t, err := OpenFile(base, filename)
				if err != nil {
					slog.Error("tokens: reloading table file", "file", filename, "err", err)
					continue
				}
				r.SetTable(t)
				slog.Info("tokens: reloaded table file", "file", filename)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				slog.Error("tokens: watching table file", "file", filename, "err", err)
			}
		}
	}()
	return w, nil
}
