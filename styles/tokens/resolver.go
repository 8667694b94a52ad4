// Copyright (c) 2025, The Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tokens

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/lumen-ui/lumen/styles"
)

// ParseWarning is a non-fatal diagnostic for a malformed utility token.
// The token is skipped; the rest of the class string still applies.
type ParseWarning struct {
	Class string
	Token string
	Err   error
}

func (w *ParseWarning) Error() string {
	return fmt.Sprintf("tokens: %q in class %q: %v", w.Token, w.Class, w.Err)
}

func (w *ParseWarning) Unwrap() error { return w.Err }

// Resolver resolves whitespace-separated utility-class strings into
// [styles.Style] values against an injected [Table]. Resolution is pure
// and deterministic; distinct class strings are memoized until
// [Resolver.FlushCache] is called (once per frame by the coordinator).
type Resolver struct {
	mu       sync.Mutex
	table    Table
	cache    map[string]styles.Style
	warnings []*ParseWarning
}

// NewResolver returns a new [Resolver] using the given token table.
func NewResolver(table Table) *Resolver {
	return &Resolver{table: table, cache: map[string]styles.Style{}}
}

// Resolve resolves the given class string into a style. Tokens apply in
// order; when two tokens write the same property, the last one wins.
// Unknown tokens are ignored. Malformed numeric suffixes are recorded
// as [ParseWarning]s and skipped.
func (r *Resolver) Resolve(class string) styles.Style {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.cache[class]; ok {
		return s
	}
	s := styles.NewStyle()
	for _, tok := range strings.Fields(class) {
		r.applyToken(&s, class, tok)
	}
	r.cache[class] = s
	return s
}

// applyToken applies a single token to the style. Must hold the mutex.
func (r *Resolver) applyToken(s *styles.Style, class, tok string) {
	if effects, ok := r.table.Static[tok]; ok {
		for _, e := range effects {
			e.Apply(s)
		}
		return
	}
	for _, rule := range r.table.Numeric {
		if !strings.HasPrefix(tok, rule.Prefix) {
			continue
		}
		suffix := tok[len(rule.Prefix):]
		n, err := strconv.Atoi(suffix)
		if err != nil {
			r.warnings = append(r.warnings, &ParseWarning{
				Class: class,
				Token: tok,
				Err:   fmt.Errorf("numeric suffix required after %q: %w", rule.Prefix, err),
			})
			return
		}
		e := Effect{Prop: rule.Prop}
		if rule.LUT != nil {
			v, ok := rule.LUT[n]
			if !ok {
				return // off-scale step: unknown token, ignored
			}
			e.Num = v
		} else {
			e.Num = float32(n) * rule.Scale
		}
		e.Apply(s)
		return
	}
	// unknown token: ignored, never fatal
}

// Warnings returns and clears the accumulated parse warnings.
func (r *Resolver) Warnings() []*ParseWarning {
	r.mu.Lock()
	defer r.mu.Unlock()
	w := r.warnings
	r.warnings = nil
	return w
}

// FlushCache drops the memoized class strings. The frame coordinator
// calls this at frame boundaries so a table swap takes effect and the
// cache does not grow without bound across dynamic class strings.
func (r *Resolver) FlushCache() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.cache)
}

// CacheLen returns the number of memoized class strings.
func (r *Resolver) CacheLen() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.cache)
}

// SetTable atomically swaps the token table and invalidates the cache.
func (r *Resolver) SetTable(table Table) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.table = table
	clear(r.cache)
}
