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

package constraint

import (
	"iter"
	"strings"
)

// Constraints maps each [Domain] to at most one [Constraint].
//
// The zero value is the empty set. Values are immutable and comparable with ==.
type Constraints struct {
	byDomain [domainCount]Constraint
}

// Of builds a set from the given constraints. Later entries replace earlier ones of the same domain.
func Of(cs ...Constraint) Constraints {
	var s Constraints
	for _, c := range cs {
		s.byDomain[c.Domain()] = c
	}

	return s
}

// IsEmpty reports whether no domain is constrained.
func (s Constraints) IsEmpty() bool {
	return s == Constraints{}
}

// Get returns the constraint for domain d, if any.
func (s Constraints) Get(d Domain) (Constraint, bool) {
	c := s.byDomain[d]

	return c, c != 0
}

// Has reports whether c is a member of the set.
func (s Constraints) Has(c Constraint) bool {
	return s.byDomain[c.Domain()] == c
}

// Put returns a copy of s with c replacing any constraint of the same domain.
func (s Constraints) Put(c Constraint) Constraints {
	s.byDomain[c.Domain()] = c

	return s
}

// Remove returns a copy of s without a constraint for domain d.
func (s Constraints) Remove(d Domain) Constraints {
	s.byDomain[d] = 0

	return s
}

// All iterates over the constraints in domain order.
func (s Constraints) All() iter.Seq[Constraint] {
	return func(yield func(Constraint) bool) {
		for _, c := range s.byDomain {
			if c == 0 {
				continue
			}

			if !yield(c) {
				return
			}
		}
	}
}

// Len returns the number of constrained domains.
func (s Constraints) Len() int {
	n := 0
	for _, c := range s.byDomain {
		if c != 0 {
			n++
		}
	}

	return n
}

func (s Constraints) String() string {
	var b strings.Builder

	b.WriteByte('{')
	first := true
	for c := range s.All() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(c.Name())
	}
	b.WriteByte('}')

	return b.String()
}
