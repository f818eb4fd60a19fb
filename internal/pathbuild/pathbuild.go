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

// Package pathbuild turns a box of the edit graph into a linked list of
// breakpoints describing one shortest edit path through it, by repeatedly
// splitting on the snake internal/midpoint finds.
package pathbuild

import (
	"github.com/tokdiff/tokdiff/internal/box"
	"github.com/tokdiff/tokdiff/internal/midpoint"
	"github.com/tokdiff/tokdiff/internal/patharena"
	"github.com/tokdiff/tokdiff/internal/view"
)

type taskKind int

const (
	taskBox taskKind = iota
	taskSnake
)

// task is either a sub-box still needing a midpoint split, or a snake edge
// ready to be appended as-is. Keeping both kinds on one stack lets the
// traversal stay in-order (left sub-box, snake, right sub-box) without
// recursive function calls.
type task struct {
	kind taskKind
	b    box.Box
	s    midpoint.Snake
}

// Build returns the head of a linked list of patharena.Nodes describing a
// shortest edit path through b: the first node is (b.Left, b.Top), the last
// is (b.Right, b.Bottom), and every node in between marks a point where the
// path's move type changes (diagonal match, horizontal delete, or vertical
// insert).
//
// This is the iterative counterpart to Myers' recursive compare: instead of
// a call per sub-box, sub-boxes and snakes are pushed onto an explicit stack
// in the order they must be emitted, which bounds stack depth by the number
// of pending siblings rather than by recursion depth.
func Build(arena *patharena.Arena, b box.Box, old, new view.View) patharena.Idx {
	head, headNode := arena.Push()
	headNode.X, headNode.Y = int64(b.Left), int64(b.Top)
	tail := head
	prev := patharena.Null

	// emit extends the path to (x, y). A segment that continues the previous
	// one's move type moves the tail node instead of adding a new one.
	emit := func(x, y int) {
		if prev != patharena.Null {
			p, t := arena.Get(prev), arena.Get(tail)
			dx1, dy1 := t.X-p.X, t.Y-p.Y
			dx2, dy2 := int64(x)-t.X, int64(y)-t.Y
			if (dy1 == 0 && dy2 == 0) || (dx1 == 0 && dx2 == 0) || (dx1 == dy1 && dx2 == dy2) {
				t.X, t.Y = int64(x), int64(y)
				return
			}
		}
		idx, n := arena.Push()
		n.X, n.Y = int64(x), int64(y)
		arena.Get(tail).Next = idx
		prev, tail = tail, idx
	}

	stack := []task{{kind: taskBox, b: b}}
	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch t.kind {
		case taskSnake:
			s := t.s
			if s.X2 != s.X1 || s.Y2 != s.Y1 {
				emit(s.X2, s.Y2)
			}

		case taskBox:
			bb := t.b
			if bb.Width() == 0 || bb.Height() == 0 {
				if bb.Width() != 0 || bb.Height() != 0 {
					emit(bb.Right, bb.Bottom)
				}
				continue
			}

			snake, ok := midpoint.Find(bb, old, new)
			if !ok {
				continue
			}
			left := box.Box{Left: bb.Left, Top: bb.Top, Right: snake.X1, Bottom: snake.Y1}
			right := box.Box{Left: snake.X2, Top: snake.Y2, Right: bb.Right, Bottom: bb.Bottom}

			// Pushed in reverse so the left sub-box pops (and fully drains)
			// before the snake, which drains before the right sub-box.
			stack = append(stack, task{kind: taskBox, b: right})
			stack = append(stack, task{kind: taskSnake, s: snake})
			stack = append(stack, task{kind: taskBox, b: left})
		}
	}

	return head
}
