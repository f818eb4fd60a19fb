// Copyright 2025 Florian Zenker (flo@znkr.io)
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

// Package patharena is an append-only store of path-graph coordinates used to
// build linked lists of shortest-edit-path nodes without per-node allocation.
package patharena

// Idx indexes into an Arena. The zero Idx is the reserved null sentinel: it
// denotes the empty list and must never be dereferenced with Get.
type Idx int32

// Null is the reserved empty-list sentinel.
const Null Idx = 0

// Node is a single coordinate on a shortest edit path, optionally linked to
// the next node in the path.
//
// Once Next is assigned a non-zero value, it is never reassigned for the
// lifetime of the Arena that owns the node.
type Node struct {
	X, Y int64
	Next Idx
}

// Arena is a growable, append-only vector of Nodes. Index 0 is reserved so
// that "empty list" can be represented as the plain zero value of Idx.
type Arena struct {
	nodes []Node
}

// New returns an Arena with its null sentinel already reserved.
func New() *Arena {
	return &Arena{nodes: make([]Node, 1, 16)}
}

// Push appends a zero-initialized node and returns its index, which is always
// >= 1, along with a pointer the caller can fill in immediately.
func (a *Arena) Push() (Idx, *Node) {
	a.nodes = append(a.nodes, Node{})
	idx := Idx(len(a.nodes) - 1)
	return idx, &a.nodes[idx]
}

// Get returns the node at idx. idx must not be Null.
func (a *Arena) Get(idx Idx) *Node {
	return &a.nodes[idx]
}

// Reset discards all nodes but keeps the backing storage for reuse, leaving
// the null sentinel in place.
func (a *Arena) Reset() {
	a.nodes = a.nodes[:1]
}
