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

package behavior_test

import (
	"testing"

	. "fillmore-labs.com/behave/internal/behavior"
	"fillmore-labs.com/behave/internal/constraint"
	"fillmore-labs.com/behave/internal/state"
)

type node struct {
	id NodeID
	st *state.State
}

func (n node) ID() NodeID          { return n.id }
func (n node) State() *state.State { return n.st }

type supplier struct{ f *state.Factory }

func (s supplier) NewValue() *state.SymbolicValue { return s.f.NewValue() }

func (s supplier) NewException(name string) *state.SymbolicValue {
	var t state.ExceptionType
	if name != "" {
		t = state.Named(name)
	}

	return s.f.NewException(t)
}

type localType struct {
	name  string
	super state.ExceptionType
}

func (l localType) QualifiedName() string      { return l.name }
func (localType) Local() bool                  { return true }
func (l localType) Super() state.ExceptionType { return l.super }

func newBehavior(tb testing.TB, sig string, varArgs bool) *MethodBehavior {
	tb.Helper()

	mb, err := New(sig, varArgs)
	if err != nil {
		tb.Fatalf("Can't create behavior %s: %v", sig, err)
	}

	return mb
}

// constrained returns st with cs imposed on sv, failing when infeasible.
func constrained(tb testing.TB, st *state.State, sv *state.SymbolicValue, cs ...constraint.Constraint) *state.State {
	tb.Helper()

	states := st.SetConstraints(sv, constraint.Of(cs...))
	if len(states) != 1 {
		tb.Fatalf("Got %d states constraining %v with %v, want 1", len(states), sv, cs)
	}

	return states[0]
}

func params(cs ...constraint.Constraints) []constraint.Constraints { return cs }
