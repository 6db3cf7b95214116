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

package explore

import (
	"go/token"

	"fillmore-labs.com/behave/internal/behavior"
	"fillmore-labs.com/behave/internal/state"
)

// Node is a terminal node of an explored path.
type Node struct {
	id  behavior.NodeID
	pos token.Pos
	st  *state.State
}

var _ behavior.Node = (*Node)(nil)

// ID returns the index of the node in its [Arena].
func (n *Node) ID() behavior.NodeID { return n.id }

// Pos returns the source position of the statement ending the path.
func (n *Node) Pos() token.Pos { return n.pos }

// State returns the program state at the end of the path.
func (n *Node) State() *state.State { return n.st }

// Arena creates and manages [Node]s in a [slab list].
//
// [slab list]: https://en.wikipedia.org/wiki/Slab_allocation
type Arena struct {
	chunks []*chunk
	count  int
}

// chunk is a fixed-size array of Nodes.
type chunk [chunkSize]Node

// chunkSize defines the number of Nodes stored in a single chunk.
const chunkSize = 127

// New creates a node for st at pos.
func (a *Arena) New(pos token.Pos, st *state.State) *Node {
	if a.count%chunkSize == 0 {
		a.chunks = append(a.chunks, new(chunk))
	}

	id := behavior.NodeID(a.count)
	a.count++

	n := &a.chunks[len(a.chunks)-1][int(id)%chunkSize]
	n.id, n.pos, n.st = id, pos, st

	return n
}

// At returns the node with the given ID, nil when id is out of range.
func (a *Arena) At(id behavior.NodeID) *Node {
	if !id.Valid() || int(id) >= a.count {
		return nil
	}

	return &a.chunks[int(id)/chunkSize][int(id)%chunkSize]
}

// Len returns the number of nodes created.
func (a *Arena) Len() int { return a.count }
