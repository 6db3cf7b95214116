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
	"errors"
	"fmt"
	"strings"
)

// Constraint is a single fact about a symbolic value in one [Domain].
type Constraint uint8

//go:generate go tool stringer -type Constraint -linecomment
const (
	// Null states that a reference is nil.
	Null Constraint = iota + 1 // NULL

	// NotNull states that a reference is not nil.
	NotNull // NOT_NULL

	// True states that a boolean is true.
	True // TRUE

	// False states that a boolean is false.
	False // FALSE

	// Zero states that a number is zero.
	Zero // ZERO

	// NonZero states that a number is not zero.
	NonZero // NON_ZERO

	// Known marks a value whose dynamic type is tracked by the explorer.
	Known // KNOWN
)

var domains = [...]Domain{
	Null:    Nullness,
	NotNull: Nullness,
	True:    Truth,
	False:   Truth,
	Zero:    Zeroness,
	NonZero: Zeroness,
	Known:   Bookkeeping,
}

var inverses = [...]Constraint{
	Null:    NotNull,
	NotNull: Null,
	True:    False,
	False:   True,
	Zero:    NonZero,
	NonZero: Zero,
}

// Domain returns the domain this constraint belongs to.
func (c Constraint) Domain() Domain {
	return domains[c]
}

// Inverse returns the complementary constraint in the same domain, if there is one.
func (c Constraint) Inverse() (Constraint, bool) {
	if int(c) >= len(inverses) || inverses[c] == 0 {
		return 0, false
	}

	return inverses[c], true
}

// Name returns the qualified "<domain>.<constraint>" form used in persisted summaries.
func (c Constraint) Name() string {
	return c.Domain().String() + "." + c.String()
}

// Errors returned by [Parse].
var (
	ErrUnknownDomain     = errors.New("unknown constraint domain")
	ErrUnknownConstraint = errors.New("unknown constraint")
)

// Parse converts a qualified "<domain>.<constraint>" name back to a [Constraint].
func Parse(name string) (Constraint, error) {
	domainName, constraintName, ok := strings.Cut(name, ".")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownConstraint, name)
	}

	domain, ok := ParseDomain(domainName)
	if !ok {
		return 0, fmt.Errorf("%w %q in %q", ErrUnknownDomain, domainName, name)
	}

	for c := Null; c <= Known; c++ {
		if c.Domain() == domain && c.String() == constraintName {
			return c, nil
		}
	}

	return 0, fmt.Errorf("%w %q in domain %s", ErrUnknownConstraint, constraintName, domain)
}
