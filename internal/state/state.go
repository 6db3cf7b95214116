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

package state

import (
	"maps"
	"slices"
	"strings"

	"fillmore-labs.com/behave/internal/constraint"
)

// State is an immutable symbolic program state.
//
// All methods returning a *State leave the receiver unchanged.
type State struct {
	constraints map[*SymbolicValue]constraint.Constraints
	stack       []*SymbolicValue
	exit        *SymbolicValue
}

// Empty returns a state without constraints and with an empty stack.
func Empty() *State {
	return &State{}
}

// Constraints returns the constraints known for sv.
func (s *State) Constraints(sv *SymbolicValue) (constraint.Constraints, bool) {
	cs, ok := s.constraints[sv]

	return cs, ok
}

// SetConstraint imposes c on sv.
//
// The result is empty when c contradicts what is known, otherwise it holds the successor states.
func (s *State) SetConstraint(sv *SymbolicValue, c constraint.Constraint) []*State {
	cs := s.constraints[sv]
	if old, ok := cs.Get(c.Domain()); ok {
		if old == c {
			return []*State{s}
		}

		return nil
	}

	return []*State{s.with(sv, cs.Put(c))}
}

// SetConstraints imposes every constraint of cs on sv.
func (s *State) SetConstraints(sv *SymbolicValue, cs constraint.Constraints) []*State {
	states := []*State{s}
	for c := range cs.All() {
		var next []*State
		for _, st := range states {
			next = append(next, st.SetConstraint(sv, c)...)
		}

		if len(next) == 0 {
			return nil
		}

		states = next
	}

	return states
}

// Forget returns a state without constraints for sv.
func (s *State) Forget(sv *SymbolicValue) *State {
	if _, ok := s.constraints[sv]; !ok {
		return s
	}

	c := s.clone()
	delete(c.constraints, sv)

	return c
}

func (s *State) with(sv *SymbolicValue, cs constraint.Constraints) *State {
	c := s.clone()
	if c.constraints == nil {
		c.constraints = make(map[*SymbolicValue]constraint.Constraints, 1)
	}
	c.constraints[sv] = cs

	return c
}

func (s *State) clone() *State {
	return &State{
		constraints: maps.Clone(s.constraints),
		stack:       s.stack,
		exit:        s.exit,
	}
}

// Push returns a state with sv on top of the stack.
func (s *State) Push(sv *SymbolicValue) *State {
	return &State{
		constraints: s.constraints,
		stack:       append(slices.Clip(s.stack), sv),
		exit:        s.exit,
	}
}

// Peek returns the top of the stack, nil when the stack is empty.
func (s *State) Peek() *SymbolicValue {
	if len(s.stack) == 0 {
		return nil
	}

	return s.stack[len(s.stack)-1]
}

// Pop removes the top of the stack.
func (s *State) Pop() (*State, *SymbolicValue) {
	n := len(s.stack)
	if n == 0 {
		return s, nil
	}

	return &State{constraints: s.constraints, stack: s.stack[:n-1:n-1], exit: s.exit}, s.stack[n-1]
}

// StackSize returns the number of values on the stack.
func (s *State) StackSize() int { return len(s.stack) }

// ExitValue returns the value the path exited with, nil while the path is running.
func (s *State) ExitValue() *SymbolicValue { return s.exit }

// WithExit returns a state that exited with sv.
func (s *State) WithExit(sv *SymbolicValue) *State {
	return &State{constraints: s.constraints, stack: s.stack, exit: sv}
}

// Equal reports structural equality of two states.
func (s *State) Equal(o *State) bool {
	if s == o {
		return true
	}

	if s == nil || o == nil {
		return false
	}

	return s.exit == o.exit &&
		slices.Equal(s.stack, o.stack) &&
		maps.Equal(s.constraints, o.constraints)
}

func (s *State) String() string {
	var b strings.Builder

	keys := slices.SortedFunc(maps.Keys(s.constraints), func(a, b *SymbolicValue) int { return a.id - b.id })

	b.WriteString("{")
	for i, sv := range keys {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(sv.String())
		b.WriteString("=")
		b.WriteString(s.constraints[sv].String())
	}
	b.WriteString("} stack=[")
	for i, sv := range s.stack {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(sv.String())
	}
	b.WriteString("]")

	if s.exit != nil {
		b.WriteString(" exit=")
		b.WriteString(s.exit.String())
	}

	return b.String()
}
