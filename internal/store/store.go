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

// Package store caches method behaviors by signature for one analysis run.
package store

import (
	"context"
	"errors"
	"iter"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"fillmore-labs.com/behave/internal/behavior"
	"fillmore-labs.com/behave/internal/library"
	"fillmore-labs.com/behave/internal/persist"
)

// Owner is the declaration behind a signature.
type Owner interface {
	// Overridable reports whether calls may dispatch to a different implementation.
	Overridable() bool
	// HasBody reports whether the declaration has source to explore.
	HasBody() bool
}

// Explorer explores the body of owner synchronously.
//
// It must register the resulting behavior with [Store.CreateOrGet] and finish it with
// [Store.Complete] when exploration succeeds.
type Explorer interface {
	Explore(ctx context.Context, s *Store, owner Owner)
}

// Option configures a [Store].
type Option func(*Store)

// WithLibrary sets the hardcoded behavior library. The default is [library.Default].
func WithLibrary(l *library.Library) Option {
	return func(s *Store) { s.library = l }
}

// WithPersister consults and updates p for behaviors not found in the cache.
func WithPersister(p persist.Persister) Option {
	return func(s *Store) { s.persister = p }
}

// WithLogger sets the logger. The default is [slog.Default].
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// Store is an insertion-ordered cache from signature to behavior.
//
// A Store is not safe for concurrent use; it belongs to one analysis pass.
type Store struct {
	explorer  Explorer
	library   *library.Library
	persister persist.Persister
	logger    *slog.Logger

	behaviors map[string]*behavior.MethodBehavior
	order     []string
}

// New creates an empty store exploring missing behaviors with explorer.
func New(explorer Explorer, opts ...Option) *Store {
	s := &Store{explorer: explorer}
	for _, opt := range opts {
		opt(s)
	}

	if s.library == nil {
		s.library = library.Default()
	}

	if s.logger == nil {
		s.logger = slog.Default()
	}

	s.Reset()

	return s
}

// BehaviorFor returns the behavior of sig, exploring owner when it is known and not overridable.
//
// Otherwise it falls back to persisted summaries and the hardcoded library. The result is nil
// when no source knows sig.
func (s *Store) BehaviorFor(ctx context.Context, sig string, owner Owner) *behavior.MethodBehavior {
	if mb, ok := s.behaviors[sig]; ok {
		recordLookup(ctx, sourceCache)

		return mb
	}

	if s.explorer != nil && owner != nil && !owner.Overridable() && owner.HasBody() {
		if mb, ok := s.explore(ctx, sig, owner); ok {
			recordLookup(ctx, sourceExplored)

			return mb
		}
	}

	if mb := s.loadPersisted(ctx, sig); mb != nil {
		recordLookup(ctx, sourcePersisted)

		return mb
	}

	if mb, ok := s.library.Lookup(sig); ok {
		recordLookup(ctx, sourceLibrary)

		return mb
	}

	recordLookup(ctx, sourceMissing)

	return nil
}

func (s *Store) explore(ctx context.Context, sig string, owner Owner) (*behavior.MethodBehavior, bool) {
	ctx, span := startExploreSpan(ctx, sig)
	defer span.End()

	recordExploration(ctx)
	s.explorer.Explore(ctx, s, owner)

	mb, ok := s.behaviors[sig]
	if !ok {
		span.SetStatus(codes.Error, "no behavior registered")
	}

	return mb, ok
}

func (s *Store) loadPersisted(ctx context.Context, sig string) *behavior.MethodBehavior {
	if s.persister == nil {
		return nil
	}

	mb, err := s.persister.Load(ctx, sig)
	if err != nil {
		if !errors.Is(err, persist.ErrNotFound) {
			otel.Handle(err)
			s.logger.LogAttrs(ctx, slog.LevelWarn, "Can't load persisted behavior",
				slog.String("signature", sig), slog.Any("error", err))
		}

		return nil
	}

	s.put(mb)

	return mb
}

// Peek returns a cached or hardcoded behavior without exploring.
func (s *Store) Peek(sig string) *behavior.MethodBehavior {
	if mb, ok := s.behaviors[sig]; ok {
		return mb
	}

	if mb, ok := s.library.Lookup(sig); ok {
		return mb
	}

	return nil
}

// CreateOrGet returns the cached behavior of sig, creating an empty one on first use.
func (s *Store) CreateOrGet(sig string, varArgs bool) (*behavior.MethodBehavior, error) {
	if mb, ok := s.behaviors[sig]; ok {
		return mb, nil
	}

	mb, err := behavior.New(sig, varArgs)
	if err != nil {
		return nil, err
	}

	s.put(mb)

	return mb, nil
}

// Register caches an externally built behavior unless sig is already known.
func (s *Store) Register(mb *behavior.MethodBehavior) {
	if _, ok := s.behaviors[mb.Signature()]; ok {
		return
	}

	s.put(mb)
}

// Complete finishes mb and saves it to the persister.
func (s *Store) Complete(ctx context.Context, mb *behavior.MethodBehavior) {
	mb.Completed()

	if s.persister == nil {
		return
	}

	if err := s.persister.Save(ctx, mb); err != nil {
		otel.Handle(err)
		s.logger.LogAttrs(ctx, slog.LevelWarn, "Can't persist behavior",
			slog.String("signature", mb.Signature()), slog.Any("error", err))
	}
}

// Reset forgets all cached behaviors.
func (s *Store) Reset() {
	s.behaviors = make(map[string]*behavior.MethodBehavior)
	s.order = nil
}

// Len returns the number of cached behaviors.
func (s *Store) Len() int { return len(s.order) }

// All iterates over the cached behaviors in insertion order.
func (s *Store) All() iter.Seq2[string, *behavior.MethodBehavior] {
	return func(yield func(string, *behavior.MethodBehavior) bool) {
		for _, sig := range s.order {
			if !yield(sig, s.behaviors[sig]) {
				return
			}
		}
	}
}

func (s *Store) put(mb *behavior.MethodBehavior) {
	sig := mb.Signature()
	s.behaviors[sig] = mb
	s.order = append(s.order, sig)
}
