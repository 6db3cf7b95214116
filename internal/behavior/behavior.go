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
	"errors"
	"fmt"
	"iter"
	"slices"

	"fillmore-labs.com/behave/internal/constraint"
	"fillmore-labs.com/behave/internal/signature"
	"fillmore-labs.com/behave/internal/state"
)

// ErrNoVarArgs is returned for variadic behaviors without parameters.
var ErrNoVarArgs = errors.New("variadic method without parameters")

// MethodBehavior is the summary of one method: the yields discovered for its signature.
//
// A behavior is built incrementally during exploration and becomes immutable once
// [MethodBehavior.Completed] has been called.
type MethodBehavior struct {
	signature          string
	desc               signature.Descriptor
	varArgs            bool
	declaredExceptions []string
	parameters         []*state.SymbolicValue
	yields             []*Yield
	complete           bool
	visited            bool
}

// New creates an empty, incomplete behavior for sig.
func New(sig string, varArgs bool) (*MethodBehavior, error) {
	desc, err := signature.Parse(sig)
	if err != nil {
		return nil, err
	}

	if varArgs && desc.Arity() == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoVarArgs, sig)
	}

	return &MethodBehavior{signature: sig, desc: desc, varArgs: varArgs}, nil
}

// Signature returns the identity of the behavior.
func (mb *MethodBehavior) Signature() string { return mb.signature }

// Descriptor returns the parsed signature.
func (mb *MethodBehavior) Descriptor() signature.Descriptor { return mb.desc }

// Arity returns the number of formal parameters.
func (mb *MethodBehavior) Arity() int { return mb.desc.Arity() }

// VarArgs reports whether the last parameter is variadic.
func (mb *MethodBehavior) VarArgs() bool { return mb.varArgs }

// DeclaredExceptions returns the declared exception type names.
func (mb *MethodBehavior) DeclaredExceptions() []string { return slices.Clone(mb.declaredExceptions) }

// SetDeclaredExceptions records the declared exception type names.
func (mb *MethodBehavior) SetDeclaredExceptions(names []string) {
	mb.declaredExceptions = slices.Clone(names)
}

// AddParameter appends the placeholder value of the next formal parameter.
func (mb *MethodBehavior) AddParameter(sv *state.SymbolicValue) {
	if len(mb.yields) > 0 {
		panic(fmt.Sprintf("behavior %s: parameter added after yields", mb.signature))
	}

	if len(mb.parameters) >= mb.Arity() {
		panic(fmt.Sprintf("behavior %s: more than %d parameters", mb.signature, mb.Arity()))
	}

	mb.parameters = append(mb.parameters, sv)
}

// Parameters returns the parameter placeholders in declaration order.
func (mb *MethodBehavior) Parameters() []*state.SymbolicValue { return slices.Clone(mb.parameters) }

// CreateYield derives a yield from the terminal node of a path and adds it to the behavior.
//
// An exception marker as exit value creates an exceptional yield, anything else a happy path.
func (mb *MethodBehavior) CreateYield(node Node, keepNode bool) *Yield {
	st := node.State()
	exit := st.ExitValue()

	y := mb.newYield(node, keepNode)

	if exit.IsException() {
		y.kind = Exceptional
		y.exception = exceptionName(exit.ExceptionType())

		return mb.AddYield(y)
	}

	y.kind = HappyPath
	y.resultIndex = FreshResult

	if ret := mb.desc.Return; exit != nil && !ret.Void() && !mb.desc.Constructor() {
		y.resultIndex = slices.Index(mb.parameters, exit)
		cs, _ := st.Constraints(exit)
		y.result = cleanup(cs, ret)
	}

	return mb.AddYield(y)
}

// CreateCheckYield derives an exceptional yield raised by check on the value culprit.
func (mb *MethodBehavior) CreateCheckYield(node Node, check string, culprit *state.SymbolicValue, keepNode bool) *Yield {
	y := mb.newYield(node, keepNode)
	y.kind = CheckException
	y.exception = exceptionName(node.State().ExitValue().ExceptionType())
	y.check = check
	y.culprit = culprit

	return mb.AddYield(y)
}

func (mb *MethodBehavior) newYield(node Node, keepNode bool) *Yield {
	if len(mb.parameters) != mb.Arity() {
		panic(fmt.Sprintf("behavior %s: %d of %d parameters registered", mb.signature, len(mb.parameters), mb.Arity()))
	}

	st := node.State()

	params := make([]constraint.Constraints, len(mb.parameters))
	for i, p := range mb.parameters {
		cs, _ := st.Constraints(p)
		params[i] = cleanup(cs, mb.desc.Params[i])
	}

	id := NoNode
	if keepNode {
		id = node.ID()
	}

	return &Yield{owner: mb.signature, varArgs: mb.varArgs, params: params, node: id, resultIndex: FreshResult}
}

// AddHappyPathYield adds a happy path yield with the given constraints.
func (mb *MethodBehavior) AddHappyPathYield(params []constraint.Constraints, resultIndex int, result constraint.Constraints) *Yield {
	if resultIndex < FreshResult || resultIndex > mb.Arity() {
		panic(fmt.Sprintf("behavior %s: result index %d out of range", mb.signature, resultIndex))
	}

	return mb.AddYield(&Yield{
		kind: HappyPath, owner: mb.signature, varArgs: mb.varArgs, params: slices.Clone(params), node: NoNode,
		resultIndex: resultIndex, result: result,
	})
}

// AddExceptionalYield adds an exceptional yield throwing exceptionType.
func (mb *MethodBehavior) AddExceptionalYield(params []constraint.Constraints, exceptionType string) *Yield {
	return mb.AddYield(&Yield{
		kind: Exceptional, owner: mb.signature, varArgs: mb.varArgs, params: slices.Clone(params), node: NoNode,
		resultIndex: FreshResult, exception: exceptionType,
	})
}

// AddCheckYield adds an exceptional yield raised by check.
func (mb *MethodBehavior) AddCheckYield(params []constraint.Constraints, exceptionType, check string) *Yield {
	return mb.AddYield(&Yield{
		kind: CheckException, owner: mb.signature, varArgs: mb.varArgs, params: slices.Clone(params), node: NoNode,
		resultIndex: FreshResult, exception: exceptionType, check: check,
	})
}

// AddYield adds y unless an equal yield exists and returns the yield held by the behavior.
func (mb *MethodBehavior) AddYield(y *Yield) *Yield {
	if mb.complete {
		panic(fmt.Sprintf("behavior %s: yield added to complete behavior", mb.signature))
	}

	if y.owner != mb.signature {
		panic(fmt.Sprintf("behavior %s: yield owned by %s", mb.signature, y.owner))
	}

	if len(y.params) != mb.Arity() {
		panic(fmt.Sprintf("behavior %s: yield with %d parameters, want %d", mb.signature, len(y.params), mb.Arity()))
	}

	for _, e := range mb.yields {
		if e.Equal(y) {
			return e
		}
	}

	mb.yields = append(mb.yields, y)

	return y
}

// Completed marks the behavior complete and visited, then reduces its yields.
func (mb *MethodBehavior) Completed() {
	if mb.complete {
		return
	}

	mb.visited = true
	mb.yields = reduceYields(mb.yields)
	mb.complete = true
}

// Complete reports whether exploration finished and the yields are final.
func (mb *MethodBehavior) Complete() bool { return mb.complete }

// Visit marks the start of exploration.
func (mb *MethodBehavior) Visit() { mb.visited = true }

// Visited reports whether exploration has started.
func (mb *MethodBehavior) Visited() bool { return mb.visited }

// Yields returns all yields.
func (mb *MethodBehavior) Yields() []*Yield { return slices.Clone(mb.yields) }

// HappyPathYields iterates over the yields of normal returns.
func (mb *MethodBehavior) HappyPathYields() iter.Seq[*Yield] {
	return mb.filter(func(y *Yield) bool { return y.kind == HappyPath })
}

// ExceptionalPathYields iterates over the yields of thrown exceptions.
func (mb *MethodBehavior) ExceptionalPathYields() iter.Seq[*Yield] {
	return mb.filter((*Yield).IsExceptional)
}

func (mb *MethodBehavior) filter(pred func(*Yield) bool) iter.Seq[*Yield] {
	return func(yield func(*Yield) bool) {
		for _, y := range mb.yields {
			if pred(y) && !yield(y) {
				return
			}
		}
	}
}

// Equal compares identity, attributes and yield sets.
func (mb *MethodBehavior) Equal(o *MethodBehavior) bool {
	if mb == o {
		return true
	}

	if mb.signature != o.signature || mb.varArgs != o.varArgs || mb.complete != o.complete ||
		!slices.Equal(mb.declaredExceptions, o.declaredExceptions) || len(mb.yields) != len(o.yields) {
		return false
	}

	for _, y := range mb.yields {
		if !slices.ContainsFunc(o.yields, y.Equal) {
			return false
		}
	}

	return true
}

func (mb *MethodBehavior) String() string {
	return fmt.Sprintf("%s complete=%t yields=%v", mb.signature, mb.complete, mb.yields)
}

// cleanup keeps only the domains meaningful for a value of type t.
func cleanup(cs constraint.Constraints, t signature.Type) constraint.Constraints {
	cs = cs.Remove(constraint.Bookkeeping)
	if t.Boolean() {
		return cs.Remove(constraint.Zeroness)
	}

	return cs.Remove(constraint.Truth)
}

// exceptionName resolves the nearest type usable outside its compilation unit.
func exceptionName(t state.ExceptionType) string {
	for t != nil && t.Local() {
		t = t.Super()
	}

	if t == nil {
		return ""
	}

	return t.QualifiedName()
}
