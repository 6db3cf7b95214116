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

package behavior

import (
	"iter"

	"fillmore-labs.com/behave/internal/constraint"
	"fillmore-labs.com/behave/internal/state"
)

// StatesAfterInvocation projects the yield onto a call site.
//
// args are the symbolic values of the actual arguments and kinds their static shapes. The
// returned sequence holds the caller states after the call, deduplicated, with the result or
// exception marker pushed. It is empty when the yield does not apply to the call.
func (y *Yield) StatesAfterInvocation(args []*state.SymbolicValue, kinds []ArgKind, st *state.State, sup Supplier) iter.Seq[*state.State] {
	return func(yield func(*state.State) bool) {
		for _, s := range y.statesAfterInvocation(args, kinds, st, sup) {
			if !yield(s) {
				return
			}
		}
	}
}

func (y *Yield) statesAfterInvocation(args []*state.SymbolicValue, kinds []ArgKind, st *state.State, sup Supplier) []*state.State {
	if y.kind == CheckException && !y.matchesExactly(args, kinds, st) {
		return nil
	}

	var states []*state.State
	for i, arg := range args {
		cs, ok := y.constraintFor(i, kinds)
		if !ok || cs.IsEmpty() {
			continue
		}

		if states == nil {
			states = []*state.State{st}
		}

		states = constrainAll(states, arg, cs)
		if len(states) == 0 {
			return nil
		}
	}

	if states == nil {
		states = []*state.State{st}
	}

	switch y.kind {
	case HappyPath:
		result := y.resultValue(args, kinds, sup)

		var next []*state.State
		for _, s := range states {
			pushed := s.Push(result)
			if y.result.IsEmpty() {
				next = append(next, pushed)

				continue
			}

			next = append(next, pushed.SetConstraints(result, y.result)...)
		}
		states = next

	default:
		ex := sup.NewException(y.exception)
		for i, s := range states {
			states[i] = s.Push(ex)
		}
	}

	return dedupe(states)
}

// constraintFor returns the yield's constraint for actual argument i, false when it does not apply.
func (y *Yield) constraintFor(i int, kinds []ArgKind) (constraint.Constraints, bool) {
	if i >= len(y.params) || !y.applicable(i, kinds) {
		return constraint.Constraints{}, false
	}

	return y.params[i], true
}

// applicable decides whether the constraint of parameter i can be matched against the actual argument.
//
// The variadic slot aggregates all trailing arguments. It only corresponds to a single actual
// argument when that argument is an array or nil.
func (y *Yield) applicable(i int, kinds []ArgKind) bool {
	arity := len(y.params)
	if !y.varArgs || i < arity-1 || len(kinds) < arity {
		return true
	}

	if len(kinds) == arity {
		switch kinds[arity-1] {
		case ArgArray, ArgNull:
			return true
		}
	}

	return y.params[arity-1].IsEmpty()
}

// matchesExactly requires every non-empty parameter constraint to equal the caller's knowledge.
func (y *Yield) matchesExactly(args []*state.SymbolicValue, kinds []ArgKind, st *state.State) bool {
	for i, want := range y.params {
		if want.IsEmpty() {
			continue
		}

		if i >= len(args) || !y.applicable(i, kinds) {
			return false
		}

		have, _ := st.Constraints(args[i])
		if have.Remove(constraint.Bookkeeping) != want {
			return false
		}
	}

	return true
}

func (y *Yield) resultValue(args []*state.SymbolicValue, kinds []ArgKind, sup Supplier) *state.SymbolicValue {
	i := y.resultIndex
	if i < 0 || i >= len(args) || i >= len(y.params) {
		return sup.NewValue()
	}

	if y.varArgs && i == len(y.params)-1 && !y.applicable(i, kinds) {
		return sup.NewValue()
	}

	return args[i]
}

func constrainAll(states []*state.State, sv *state.SymbolicValue, cs constraint.Constraints) []*state.State {
	var next []*state.State
	for _, s := range states {
		next = append(next, s.SetConstraints(sv, cs)...)
	}

	return next
}

func dedupe(states []*state.State) []*state.State {
	var unique []*state.State

outer:
	for _, s := range states {
		for _, u := range unique {
			if s.Equal(u) {
				continue outer
			}
		}
		unique = append(unique, s)
	}

	return unique
}
