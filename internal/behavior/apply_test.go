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
	"slices"
	"testing"

	. "fillmore-labs.com/behave/internal/behavior"
	"fillmore-labs.com/behave/internal/constraint"
	"fillmore-labs.com/behave/internal/state"
)

func TestVarArgsApplicability(t *testing.T) {
	t.Parallel()

	mb := newBehavior(t, "f(Lx;Lx;[Lx;)V", true)
	y := mb.AddHappyPathYield(params(none, none, notNull), FreshResult, none)

	var f state.Factory

	a0, a1, a2, a3 := f.NewValue(), f.NewValue(), f.NewValue(), f.NewValue()
	st := constrained(t, state.Empty(), a2, constraint.Null)

	tests := []struct {
		name  string
		args  []*state.SymbolicValue
		kinds []ArgKind
		want  int
	}{
		{"two variadic elements", []*state.SymbolicValue{a0, a1, a2, a3}, []ArgKind{ArgValue, ArgValue, ArgValue, ArgValue}, 1},
		{"array argument", []*state.SymbolicValue{a0, a1, a2}, []ArgKind{ArgValue, ArgValue, ArgArray}, 0},
		{"nil argument", []*state.SymbolicValue{a0, a1, a2}, []ArgKind{ArgValue, ArgValue, ArgNull}, 0},
		{"single element", []*state.SymbolicValue{a0, a1, a2}, []ArgKind{ArgValue, ArgValue, ArgValue}, 1},
		{"no variadic element", []*state.SymbolicValue{a0, a1}, []ArgKind{ArgValue, ArgValue}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			states := slices.Collect(y.StatesAfterInvocation(tt.args, tt.kinds, st, supplier{new(state.Factory)}))
			if len(states) != tt.want {
				t.Errorf("Got %d states, want %d", len(states), tt.want)
			}
		})
	}
}

func TestResultAlias(t *testing.T) {
	t.Parallel()

	mb := newBehavior(t, "f(Lx;)Lx;", false)
	y := mb.AddHappyPathYield(params(none), 0, notNull)

	var f state.Factory
	arg := f.NewValue()

	states := slices.Collect(y.StatesAfterInvocation([]*state.SymbolicValue{arg}, []ArgKind{ArgValue}, state.Empty(), supplier{&f}))
	if len(states) != 1 {
		t.Fatalf("Got %d states, want 1", len(states))
	}

	if top := states[0].Peek(); top != arg {
		t.Errorf("Got %v on top, want %v", top, arg)
	}

	if cs, _ := states[0].Constraints(arg); !cs.Has(constraint.NotNull) {
		t.Errorf("Got %v, want result constraint on argument", cs)
	}

	null := constrained(t, state.Empty(), arg, constraint.Null)
	if states := slices.Collect(y.StatesAfterInvocation([]*state.SymbolicValue{arg}, []ArgKind{ArgValue}, null, supplier{&f})); len(states) != 0 {
		t.Errorf("Got %v, want infeasible result constraint", states)
	}
}

func TestFreshResultWithoutArguments(t *testing.T) {
	t.Parallel()

	mb := newBehavior(t, "f()Z", false)
	y := mb.AddHappyPathYield(nil, FreshResult, isTrue)

	var f state.Factory

	states := slices.Collect(y.StatesAfterInvocation(nil, nil, state.Empty(), supplier{&f}))
	if len(states) != 1 {
		t.Fatalf("Got %d states, want 1", len(states))
	}

	if cs, _ := states[0].Constraints(states[0].Peek()); !cs.Has(constraint.True) {
		t.Errorf("Got %v, want TRUE result", cs)
	}
}

func TestExceptionalApplication(t *testing.T) {
	t.Parallel()

	mb := newBehavior(t, "f(Lx;)V", false)
	y := mb.AddExceptionalYield(params(null), "E")

	var f state.Factory
	arg := f.NewValue()

	states := slices.Collect(y.StatesAfterInvocation([]*state.SymbolicValue{arg}, []ArgKind{ArgValue}, state.Empty(), supplier{&f}))
	if len(states) != 1 {
		t.Fatalf("Got %d states, want 1", len(states))
	}

	top := states[0].Peek()
	if !top.IsException() || top.ExceptionType().QualifiedName() != "E" {
		t.Errorf("Got %v, want exception E", top)
	}

	if cs, _ := states[0].Constraints(arg); !cs.Has(constraint.Null) {
		t.Errorf("Got %v, want NULL on argument", cs)
	}
}

func TestCheckYieldExactMatch(t *testing.T) {
	t.Parallel()

	mb := newBehavior(t, "f(Lx;)V", false)
	y := mb.AddCheckYield(params(null), "runtime.Error", "nilderef")

	var f state.Factory
	arg := f.NewValue()
	args, kinds := []*state.SymbolicValue{arg}, []ArgKind{ArgValue}

	tests := []struct {
		name string
		st   *state.State
		want int
	}{
		{"unconstrained", state.Empty(), 0},
		{"null", constrained(t, state.Empty(), arg, constraint.Null), 1},
		{"null and known", constrained(t, state.Empty(), arg, constraint.Null, constraint.Known), 1},
		{"null and true", constrained(t, state.Empty(), arg, constraint.Null, constraint.True), 0},
		{"not null", constrained(t, state.Empty(), arg, constraint.NotNull), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			states := slices.Collect(y.StatesAfterInvocation(args, kinds, tt.st, supplier{new(state.Factory)}))
			if len(states) != tt.want {
				t.Errorf("Got %d states, want %d", len(states), tt.want)
			}
		})
	}
}

func TestCheckYieldStrictVarArgs(t *testing.T) {
	t.Parallel()

	mb := newBehavior(t, "f([Lx;)V", true)
	y := mb.AddCheckYield(params(null), "", "check")

	var f state.Factory
	a, b := f.NewValue(), f.NewValue()
	st := constrained(t, state.Empty(), a, constraint.Null)

	if states := slices.Collect(y.StatesAfterInvocation([]*state.SymbolicValue{a, b}, []ArgKind{ArgValue, ArgValue}, st, supplier{&f})); len(states) != 0 {
		t.Errorf("Got %v, want no states for spread variadic call", states)
	}

	if states := slices.Collect(y.StatesAfterInvocation([]*state.SymbolicValue{a}, []ArgKind{ArgArray}, st, supplier{&f})); len(states) != 1 {
		t.Errorf("Got %v, want one state for array call", states)
	}
}
