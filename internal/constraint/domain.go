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

// Package constraint defines the constraint domains tracked for symbolic values.
//
// A domain is a small lattice of mutually exclusive facts about a value. A value carries at most
// one [Constraint] per [Domain], collected in an immutable [Constraints] set.
package constraint

// Domain identifies a family of mutually exclusive constraints.
type Domain uint8

//go:generate go tool stringer -type Domain -linecomment
const (
	// Nullness tracks whether a reference is nil.
	Nullness Domain = iota // object

	// Truth tracks the value of a boolean.
	Truth // boolean

	// Zeroness tracks whether a number is zero.
	Zeroness // zero

	// Bookkeeping is internal to the explorer and never part of a summary.
	Bookkeeping // typed
)

// domainCount is the number of known domains.
const domainCount = int(Bookkeeping) + 1

// Domains returns all domains in declaration order.
func Domains() []Domain {
	return []Domain{Nullness, Truth, Zeroness, Bookkeeping}
}

// ParseDomain returns the [Domain] with the given name.
func ParseDomain(name string) (Domain, bool) {
	for _, d := range Domains() {
		if d.String() == name {
			return d, true
		}
	}

	return 0, false
}
