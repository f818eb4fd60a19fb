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

// Package walker turns a path built by internal/pathbuild into a stream of
// events, decoupling path construction from whatever consumes it.
package walker

import "github.com/tokdiff/tokdiff/internal/patharena"

// Callback receives the events of one walk. Start is called exactly once
// before the first segment, Finish exactly once after the last, regardless
// of how many (if any) segments the path contains.
type Callback interface {
	Start()
	Equal(oldStart, newStart, n int)
	Delete(oldStart, n int)
	Insert(newStart, n int)
	Finish()
}

// Walk traverses the linked list rooted at head, classifying each consecutive
// pair of nodes as a diagonal (Equal), horizontal (Delete) or vertical
// (Insert) segment and reporting it to cb.
func Walk(arena *patharena.Arena, head patharena.Idx, cb Callback) {
	cb.Start()
	defer cb.Finish()

	cur := head
	for {
		node := arena.Get(cur)
		next := node.Next
		if next == patharena.Null {
			return
		}
		nn := arena.Get(next)
		dx, dy := nn.X-node.X, nn.Y-node.Y

		switch {
		case dx > 0 && dx == dy:
			cb.Equal(int(node.X), int(node.Y), int(dx))
		case dx > 0 && dy == 0:
			cb.Delete(int(node.X), int(dx))
		case dy > 0 && dx == 0:
			cb.Insert(int(node.Y), int(dy))
		default:
			panic("walker: malformed path segment")
		}
		cur = next
	}
}
