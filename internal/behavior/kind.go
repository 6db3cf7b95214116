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

import "fillmore-labs.com/behave/internal/state"

// Kind distinguishes the closed set of yield variants.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// HappyPath is a normal return.
	HappyPath Kind = iota // happy

	// Exceptional is a thrown exception.
	Exceptional // exceptional

	// CheckException is an exception raised by a check, applied only on exact constraint matches.
	CheckException // check
)

// NodeID is an index into the explorer's node arena.
type NodeID int32

// NoNode is the [NodeID] of yields that do not keep their originating node.
const NoNode NodeID = -1

// Valid reports whether n refers to a node.
func (n NodeID) Valid() bool {
	return n != NoNode
}

// Node is a terminal exploration node.
type Node interface {
	ID() NodeID
	State() *state.State
}

// ArgKind describes the static shape of an actual argument at a call site.
type ArgKind uint8

const (
	// ArgValue is an ordinary argument.
	ArgValue ArgKind = iota
	// ArgArray is an array or slice passed in a variadic position.
	ArgArray
	// ArgNull is the nil literal.
	ArgNull
)

// Supplier creates the values pushed by applied yields.
type Supplier interface {
	// NewValue returns a fresh symbolic value for a method result.
	NewValue() *state.SymbolicValue
	// NewException returns a fresh exception marker. typeName is empty for unknown types.
	NewException(typeName string) *state.SymbolicValue
}
