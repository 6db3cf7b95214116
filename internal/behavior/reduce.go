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
	"fmt"
	"maps"
	"slices"

	"fillmore-labs.com/behave/internal/constraint"
)

// reduceYields generalizes happy path yields that differ in exactly one position.
//
// Yields are grouped by result index and each group is reduced to a fixpoint. Exceptional
// yields are kept unchanged after the happy paths.
func reduceYields(yields []*Yield) []*Yield {
	groups := make(map[int][]*Yield)

	var exceptional []*Yield
	for _, y := range yields {
		if y.kind != HappyPath {
			exceptional = append(exceptional, y)

			continue
		}

		groups[y.resultIndex] = append(groups[y.resultIndex], y)
	}

	reduced := make([]*Yield, 0, len(yields))
	for _, idx := range slices.Sorted(maps.Keys(groups)) {
		reduced = append(reduced, reduceGroup(groups[idx])...)
	}

	return append(reduced, exceptional...)
}

// reduceGroup repeats merge passes until the size stays the same.
func reduceGroup(yields []*Yield) []*Yield {
	for {
		next := reducePass(yields)
		if len(next) == len(yields) {
			return next
		}

		yields = next
	}
}

// reducePass merges every yield with the first later yield it differs from in one position.
func reducePass(queue []*Yield) []*Yield {
	next := make([]*Yield, 0, len(queue))

	for len(queue) > 0 {
		a, rest := queue[0], queue[1:]

		j, merged := -1, (*Yield)(nil)
		for k, b := range rest {
			if m, ok := merge(a, b); ok {
				j, merged = k, m

				break
			}
		}

		if merged == nil {
			next = appendUnique(next, a)
			queue = rest

			continue
		}

		next = appendUnique(next, merged)
		queue = slices.Concat(rest[:j], rest[j+1:])
	}

	return next
}

// merge generalizes a and b when they differ in exactly one of their parameters or result.
func merge(a, b *Yield) (*Yield, bool) {
	if len(a.params) != len(b.params) {
		panic(fmt.Sprintf("reducing yields of %s: %d and %d parameters", a.owner, len(a.params), len(b.params)))
	}

	arity := len(a.params)

	diff := -1
	for i := range arity + 1 {
		if slot(a, i) == slot(b, i) {
			continue
		}

		if diff >= 0 {
			return nil, false
		}

		diff = i
	}

	switch {
	case diff < 0:
		return a, true

	case diff < arity:
		return a.withParam(diff, constraint.Constraints{}), true

	case irreducible(a.result) || irreducible(b.result):
		return nil, false

	default:
		return a.withResult(constraint.Constraints{}), true
	}
}

func slot(y *Yield, i int) constraint.Constraints {
	if i < len(y.params) {
		return y.params[i]
	}

	return y.result
}

// irreducible result constraints are guarantees callers rely on.
func irreducible(cs constraint.Constraints) bool {
	return cs.Has(constraint.NotNull) || cs.Has(constraint.Zero)
}

func appendUnique(yields []*Yield, y *Yield) []*Yield {
	if slices.ContainsFunc(yields, y.Equal) {
		return yields
	}

	return append(yields, y)
}
