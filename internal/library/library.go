// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package library loads precomputed behaviors for functions whose source is not explored.
package library

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"log/slog"
	"maps"
	"path"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/behave/internal/behavior"
	"fillmore-labs.com/behave/internal/codec"
)

// ErrDuplicate is returned when two resources define the same signature.
var ErrDuplicate = errors.New("duplicate behavior")

// resourcePattern matches summary resources below the sentinel's directory.
const resourcePattern = "**/*.{yaml,yml,json}"

// Library is an immutable mapping from signature to completed behavior.
type Library struct {
	behaviors map[string]*behavior.MethodBehavior
}

// Empty returns a library without behaviors.
func Empty() *Library {
	return &Library{}
}

// Lookup returns the behavior for sig.
func (l *Library) Lookup(sig string) (*behavior.MethodBehavior, bool) {
	mb, ok := l.behaviors[sig]

	return mb, ok
}

// Len returns the number of behaviors.
func (l *Library) Len() int { return len(l.behaviors) }

// All iterates over the behaviors sorted by signature.
func (l *Library) All() iter.Seq2[string, *behavior.MethodBehavior] {
	return func(yield func(string, *behavior.MethodBehavior) bool) {
		for _, sig := range slices.Sorted(maps.Keys(l.behaviors)) {
			if !yield(sig, l.behaviors[sig]) {
				return
			}
		}
	}
}

// Load reads the resources colocated with sentinel.
//
// A missing sentinel yields an empty library. Any malformed resource discards the whole
// library, since partial summaries would silently weaken the analysis.
func Load(ctx context.Context, fsys fs.FS, sentinel string, logger *slog.Logger) *Library {
	if logger == nil {
		logger = slog.Default()
	}

	if _, err := fs.Stat(fsys, sentinel); err != nil {
		logger.LogAttrs(ctx, slog.LevelDebug, "Behavior library not available",
			slog.String("sentinel", sentinel), slog.Any("error", err))

		return Empty()
	}

	l, err := Parse(ctx, fsys, path.Dir(sentinel))
	if err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "Can't load behavior library",
			slog.String("sentinel", sentinel), slog.Any("error", err))

		return Empty()
	}

	logger.LogAttrs(ctx, slog.LevelDebug, "Behavior library loaded",
		slog.String("sentinel", sentinel), slog.Int("behaviors", l.Len()))

	return l
}

// Parse decodes every resource below dir and merges them into one library.
func Parse(ctx context.Context, fsys fs.FS, dir string) (*Library, error) {
	files, err := doublestar.Glob(fsys, path.Join(dir, resourcePattern), doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("can't list %s: %w", dir, err)
	}

	slices.Sort(files)

	decoded := make([][]*behavior.MethodBehavior, len(files))

	g, gctx := errgroup.WithContext(ctx)
	for i, file := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			f, err := fsys.Open(file)
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()

			mbs, err := codec.Decode(f)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}

			decoded[i] = mbs

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	behaviors := make(map[string]*behavior.MethodBehavior)
	for i, mbs := range decoded {
		for _, mb := range mbs {
			sig := mb.Signature()
			if _, ok := behaviors[sig]; ok {
				return nil, fmt.Errorf("%s: %w %q", files[i], ErrDuplicate, sig)
			}

			behaviors[sig] = mb
		}
	}

	return &Library{behaviors: behaviors}, nil
}
