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

// Package state provides the immutable symbolic program state explored along a path.
package state

import "strconv"

// ExceptionType describes the type of a thrown value.
type ExceptionType interface {
	// QualifiedName is the name used in persisted summaries.
	QualifiedName() string
	// Local reports whether the type is only visible inside one compilation unit.
	Local() bool
	// Super returns the nearest enclosing type, nil if there is none.
	Super() ExceptionType
}

// Named returns a non-local [ExceptionType] without supertype.
func Named(name string) ExceptionType {
	return namedType(name)
}

type namedType string

func (n namedType) QualifiedName() string { return string(n) }

func (namedType) Local() bool { return false }

func (namedType) Super() ExceptionType { return nil }

// SymbolicValue is an opaque token compared by identity.
type SymbolicValue struct {
	id        int
	exception bool
	thrown    ExceptionType
}

// ID returns a number unique within the [Factory] that created the value.
func (v *SymbolicValue) ID() int { return v.id }

// IsException reports whether the value marks a thrown exception.
func (v *SymbolicValue) IsException() bool { return v != nil && v.exception }

// ExceptionType returns the thrown type, nil when unknown or not an exception.
func (v *SymbolicValue) ExceptionType() ExceptionType {
	if v == nil {
		return nil
	}

	return v.thrown
}

func (v *SymbolicValue) String() string {
	if v == nil {
		return "<nil>"
	}

	s := "SV_" + strconv.Itoa(v.id)
	if v.exception {
		s += "!"
		if v.thrown != nil {
			s += v.thrown.QualifiedName()
		}
	}

	return s
}

// Factory creates symbolic values with increasing IDs.
//
// A Factory is not safe for concurrent use.
type Factory struct {
	next int
}

// NewValue returns a fresh symbolic value.
func (f *Factory) NewValue() *SymbolicValue {
	f.next++

	return &SymbolicValue{id: f.next}
}

// NewException returns a fresh exception marker of type t. t may be nil for an unknown type.
func (f *Factory) NewException(t ExceptionType) *SymbolicValue {
	f.next++

	return &SymbolicValue{id: f.next, exception: true, thrown: t}
}
