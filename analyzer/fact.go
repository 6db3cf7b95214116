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

package analyzer

import (
	"go/types"
	"iter"
	"reflect"
	"strconv"

	"fillmore-labs.com/behave/internal/behavior"
	"fillmore-labs.com/behave/internal/signature"
	"fillmore-labs.com/behave/internal/store"
)

// Fact is the exported summary of a function with complete behavior.
type Fact struct {
	// Summary is the encoded behavior.
	Summary []byte
	// Yields is the number of yields of the behavior.
	Yields int
}

// AFact implements [analysis.Fact].
func (*Fact) AFact() {}

func (f *Fact) String() string {
	return "yields=" + strconv.Itoa(f.Yields)
}

// Summaries is the result of the behave analyzer, the behaviors known while analyzing a package.
type Summaries struct {
	store *store.Store
}

var summariesType = reflect.TypeFor[*Summaries]()

// Lookup returns the complete behavior of fn, from this package or imported.
func (s *Summaries) Lookup(fn *types.Func) (*behavior.MethodBehavior, bool) {
	mb := s.store.Peek(signature.Of(fn.Origin()))
	if mb == nil || !mb.Complete() {
		return nil, false
	}

	return mb, true
}

// All iterates over the complete behaviors of the package and its imports.
func (s *Summaries) All() iter.Seq[*behavior.MethodBehavior] {
	return func(yield func(*behavior.MethodBehavior) bool) {
		for _, mb := range s.store.All() {
			if mb.Complete() && !yield(mb) {
				return
			}
		}
	}
}

// Len returns the number of known behaviors, complete or not.
func (s *Summaries) Len() int {
	return s.store.Len()
}
