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

// Package midpoint finds a snake straddling the middle of some shortest edit
// path through a rectangle of the edit graph, using Myers' forward/backward
// breadth-first expansion on diagonals.
//
// This is the O((N+M)D) time, O(N+M) space half of Myers' algorithm (section
// 4b of his paper): rather than growing a quadratic table of candidate paths,
// two searches — one from the rectangle's top-left, one from its
// bottom-right — expand diagonal-by-diagonal until they meet. The diagonal
// where they meet contains a snake (a run of matches) that splits the
// rectangle into two smaller subproblems for the caller to recurse into.
package midpoint

import (
	"github.com/tokdiff/tokdiff/internal/box"
	"github.com/tokdiff/tokdiff/internal/view"
)

// Snake is a diagonal run discovered by the search: the path goes from
// (X1,Y1) to (X2,Y2) via zero or more diagonal (match) steps. It is never
// stored past the call that produced it.
type Snake struct {
	X1, Y1, X2, Y2 int
}

// scratch holds the two v-arrays shared across every diagonal explored during
// one Find call. Each v-array stores, per diagonal, the furthest-reaching
// x-coordinate reached so far: vf is indexed by k = x-y, vb by the mirrored
// k = delta-(x-y) around the backward search's center, so y is implied by the
// index. Diagonals are addressed with a modular wrap
// (VGET/VSET below) so a single fixed-size slice can address negative k.
type scratch struct {
	vf, vb []int
	vlen   int
}

func newScratch(size int) *scratch {
	maxD := (size + 1) / 2
	vlen := 2*maxD + 1
	return &scratch{
		vf:   make([]int, vlen),
		vb:   make([]int, vlen),
		vlen: vlen,
	}
}

func (s *scratch) idx(i int) int {
	i %= s.vlen
	if i < 0 {
		i += s.vlen
	}
	return i
}

func (s *scratch) vget(v []int, k int) int { return v[s.idx(k)] }
func (s *scratch) vset(v []int, k, x int)  { v[s.idx(k)] = x }

// Find searches box for a midpoint snake. It reports ok=false only when box
// is empty (zero size), in which case the path through it is empty.
func Find(b box.Box, old, new view.View) (Snake, bool) {
	left, top, right, bottom := b.Left, b.Top, b.Right, b.Bottom
	N, M := right-left, bottom-top
	size := N + M
	if size == 0 {
		return Snake{}, false
	}

	s := newScratch(size)
	maxD := (size + 1) / 2
	delta := N - M
	odd := delta%2 != 0

	eq := func(x, y int) bool { return view.Equal(old, left+x, new, top+y) }

	// d=0 sentinels: a furthest reaching (-1)-path that reaches nowhere, so
	// the d=0 iteration's boundary cases (k==-d and k==d coincide at k=0)
	// pick the only available direction.
	s.vset(s.vf, 1, 0)
	s.vset(s.vb, 1, N)

	for d := 0; d <= maxD; d++ {
		// Forward search, centered on diagonal 0.
		for k := -d; k <= d; k += 2 {
			var x int
			if k == -d || (k != d && s.vget(s.vf, k-1) < s.vget(s.vf, k+1)) {
				x = s.vget(s.vf, k+1)
			} else {
				x = s.vget(s.vf, k-1) + 1
			}
			y := x - k
			x0, y0 := x, y
			for x < N && y < M && eq(x, y) {
				x++
				y++
			}
			s.vset(s.vf, k, x)

			// Overlap check: has the backward search (centered on delta)
			// already reached diagonal k?
			if odd && delta-(d-1) <= k && k <= delta+(d-1) {
				if bx := s.vget(s.vb, delta-k); x >= bx {
					if x0 == N && y0 == M {
						// A single edit as the path's last move: report the
						// common prefix, the path's only snake, so the caller
						// is not handed back the whole box.
						p := min(N, M)
						return Snake{left, top, left + p, top + p}, true
					}
					return Snake{left + x0, top + y0, left + x, top + y}, true
				}
			}
		}

		// Backward search, centered on diagonal delta.
		for k := -d; k <= d; k += 2 {
			c := delta - k // absolute diagonal, local coordinate k mirrored around delta
			var x int
			if k == -d || (k != d && s.vget(s.vb, k+1) < s.vget(s.vb, k-1)) {
				x = s.vget(s.vb, k+1)
			} else {
				x = s.vget(s.vb, k-1) - 1
			}
			y := x - c
			x0, y0 := x, y
			for x > 0 && y > 0 && eq(x-1, y-1) {
				x--
				y--
			}
			s.vset(s.vb, k, x)

			if !odd && -d <= c && c <= d {
				if fx := s.vget(s.vf, c); fx >= x {
					return Snake{left + x, top + y, left + x0, top + y0}, true
				}
			}
		}
	}

	panic("midpoint: no overlap found within maxD iterations, box invariants violated")
}
