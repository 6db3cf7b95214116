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
	"slices"
	"strconv"
	"strings"

	"fillmore-labs.com/behave/internal/constraint"
	"fillmore-labs.com/behave/internal/state"
)

// FreshResult is the result index of a yield returning a value that aliases no parameter.
const FreshResult = -1

// Yield is one observed outcome of a method: constraints on each parameter and either a
// returned value or a thrown exception.
//
// Yields are immutable.
type Yield struct {
	kind    Kind
	owner   string // Signature of the owning behavior
	varArgs bool
	params  []constraint.Constraints
	node    NodeID

	// HappyPath
	resultIndex int
	result      constraint.Constraints

	// Exceptional and CheckException
	exception string

	// CheckException
	check   string
	culprit *state.SymbolicValue
}

// Kind returns the yield variant.
func (y *Yield) Kind() Kind { return y.kind }

// Owner returns the signature of the owning behavior.
func (y *Yield) Owner() string { return y.owner }

// Arity returns the number of parameter constraint entries.
func (y *Yield) Arity() int { return len(y.params) }

// Param returns the constraints of parameter i.
func (y *Yield) Param(i int) constraint.Constraints { return y.params[i] }

// Params returns a copy of the parameter constraints in declaration order.
func (y *Yield) Params() []constraint.Constraints { return slices.Clone(y.params) }

// Node returns the originating exploration node, [NoNode] if it was not kept.
func (y *Yield) Node() NodeID { return y.node }

// ResultIndex returns the parameter aliased by the result, [FreshResult] for a fresh value.
func (y *Yield) ResultIndex() int { return y.resultIndex }

// Result returns the constraints on the returned value.
func (y *Yield) Result() constraint.Constraints { return y.result }

// ExceptionType returns the qualified name of the thrown type, empty when unknown.
func (y *Yield) ExceptionType() string { return y.exception }

// Check returns the name of the check that raised the exception.
func (y *Yield) Check() string { return y.check }

// Culprit returns the value that caused a check exception, nil when unknown.
func (y *Yield) Culprit() *state.SymbolicValue { return y.culprit }

// IsExceptional reports whether the yield describes a thrown exception.
func (y *Yield) IsExceptional() bool { return y.kind != HappyPath }

// Equal reports structural equality. The originating node and culprit are ignored.
func (y *Yield) Equal(o *Yield) bool {
	if y == o {
		return true
	}

	if y.kind != o.kind || y.owner != o.owner || y.varArgs != o.varArgs || !slices.Equal(y.params, o.params) {
		return false
	}

	switch y.kind {
	case HappyPath:
		return y.resultIndex == o.resultIndex && y.result == o.result

	case Exceptional:
		return y.exception == o.exception

	case CheckException:
		return y.exception == o.exception && y.check == o.check

	default:
		return false
	}
}

func (y *Yield) String() string {
	var b strings.Builder

	b.WriteString(y.kind.String())
	b.WriteString("{params=[")
	for i, p := range y.params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteByte(']')

	switch y.kind {
	case HappyPath:
		b.WriteString(" result=")
		b.WriteString(strconv.Itoa(y.resultIndex))
		if !y.result.IsEmpty() {
			b.WriteByte(' ')
			b.WriteString(y.result.String())
		}

	case CheckException:
		b.WriteString(" check=")
		b.WriteString(y.check)

		fallthrough

	case Exceptional:
		b.WriteString(" exception=")
		if y.exception != "" {
			b.WriteString(y.exception)
		} else {
			b.WriteString("?")
		}
	}
	b.WriteByte('}')

	return b.String()
}

func (y *Yield) withParam(i int, cs constraint.Constraints) *Yield {
	c := *y
	c.params = slices.Clone(y.params)
	c.params[i] = cs
	c.node = NoNode

	return &c
}

func (y *Yield) withResult(cs constraint.Constraints) *Yield {
	c := *y
	c.result = cs
	c.node = NoNode

	return &c
}
