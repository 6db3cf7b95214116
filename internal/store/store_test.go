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

package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fillmore-labs.com/behave/internal/behavior"
	"fillmore-labs.com/behave/internal/constraint"
	"fillmore-labs.com/behave/internal/library"
	"fillmore-labs.com/behave/internal/persist"
	. "fillmore-labs.com/behave/internal/store"
)

const sig = "test.Find(Lstring;)L*test.T;"

type owner struct {
	sig         string
	overridable bool
	body        bool
}

func (o owner) Overridable() bool { return o.overridable }
func (o owner) HasBody() bool     { return o.body }

// explorer records calls and registers a fixed behavior for each explored owner.
type explorer struct {
	t        *testing.T
	calls    int
	register bool
}

func (e *explorer) Explore(ctx context.Context, s *Store, o Owner) {
	e.calls++

	if !e.register {
		return
	}

	mb, err := s.CreateOrGet(o.(owner).sig, false)
	require.NoError(e.t, err)

	mb.Visit()
	mb.AddHappyPathYield([]constraint.Constraints{{}}, behavior.FreshResult, constraint.Of(constraint.NotNull))
	s.Complete(ctx, mb)
}

func TestBehaviorForExplores(t *testing.T) {
	t.Parallel()

	e := &explorer{t: t, register: true}
	s := New(e, WithLibrary(library.Empty()))

	mb := s.BehaviorFor(t.Context(), sig, owner{sig: sig, body: true})
	require.NotNil(t, mb)
	assert.True(t, mb.Complete())
	assert.Len(t, mb.Yields(), 1)

	again := s.BehaviorFor(t.Context(), sig, owner{sig: sig, body: true})
	assert.Same(t, mb, again)
	assert.Equal(t, 1, e.calls, "cached behavior explored again")
}

func TestBehaviorForSkipsOverridable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		owner Owner
	}{
		{"overridable", owner{sig: sig, overridable: true, body: true}},
		{"no body", owner{sig: sig}},
		{"unknown", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := &explorer{t: t, register: true}
			s := New(e, WithLibrary(library.Empty()))

			assert.Nil(t, s.BehaviorFor(t.Context(), sig, tt.owner))
			assert.Zero(t, e.calls)
		})
	}
}

func TestBehaviorForFallsBackToLibrary(t *testing.T) {
	t.Parallel()

	const sig = "errors.New(Lstring;)Lerror;"

	e := &explorer{t: t}
	s := New(e)

	mb := s.BehaviorFor(t.Context(), sig, nil)
	require.NotNil(t, mb)
	assert.Equal(t, sig, mb.Signature())
	assert.Zero(t, s.Len(), "library behaviors are not cached")

	assert.Same(t, mb, s.Peek(sig))
}

func TestBehaviorForExplorationWithoutResult(t *testing.T) {
	t.Parallel()

	e := &explorer{t: t}
	s := New(e, WithLibrary(library.Empty()))

	assert.Nil(t, s.BehaviorFor(t.Context(), sig, owner{sig: sig, body: true}))
	assert.Equal(t, 1, e.calls)
}

func TestPersistedBehaviors(t *testing.T) {
	t.Parallel()

	p, err := persist.Open("badger:memory", nil)
	require.NoError(t, err)
	defer func() { assert.NoError(t, p.Close()) }()

	first := New(&explorer{t: t, register: true}, WithLibrary(library.Empty()), WithPersister(p))
	explored := first.BehaviorFor(t.Context(), sig, owner{sig: sig, body: true})
	require.NotNil(t, explored)

	e := &explorer{t: t}
	second := New(e, WithLibrary(library.Empty()), WithPersister(p))

	loaded := second.BehaviorFor(t.Context(), sig, owner{sig: sig, overridable: true})
	require.NotNil(t, loaded)
	assert.True(t, loaded.Equal(explored), "loaded %v, want %v", loaded, explored)
	assert.Zero(t, e.calls)
	assert.Equal(t, 1, second.Len(), "persisted behaviors are cached")
}

func TestCreateOrGet(t *testing.T) {
	t.Parallel()

	s := New(nil, WithLibrary(library.Empty()))

	a, err := s.CreateOrGet(sig, false)
	require.NoError(t, err)

	b, err := s.CreateOrGet(sig, false)
	require.NoError(t, err)
	assert.Same(t, a, b)

	_, err = s.CreateOrGet("test.F(", false)
	require.Error(t, err)

	_, err = s.CreateOrGet("test.F()V", true)
	require.ErrorIs(t, err, behavior.ErrNoVarArgs)
}

func TestRegisterKeepsFirst(t *testing.T) {
	t.Parallel()

	s := New(nil, WithLibrary(library.Empty()))

	first, err := behavior.New(sig, false)
	require.NoError(t, err)

	second, err := behavior.New(sig, false)
	require.NoError(t, err)

	s.Register(first)
	s.Register(second)

	assert.Same(t, first, s.Peek(sig))
}

func TestAllInInsertionOrder(t *testing.T) {
	t.Parallel()

	s := New(nil, WithLibrary(library.Empty()))

	sigs := []string{"test.C()V", "test.A()V", "test.B()V"}
	for _, sig := range sigs {
		_, err := s.CreateOrGet(sig, false)
		require.NoError(t, err)
	}

	var got []string
	for sig := range s.All() {
		got = append(got, sig)
	}

	assert.Equal(t, sigs, got)

	s.Reset()
	assert.Zero(t, s.Len())
	assert.Nil(t, s.Peek("test.A()V"))
}
