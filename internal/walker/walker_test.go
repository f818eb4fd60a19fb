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

package walker

import (
	"reflect"
	"testing"

	"github.com/tokdiff/tokdiff/internal/patharena"
)

type event struct {
	kind    string
	a, b, n int
}

type recorder struct {
	events []event
}

func (r *recorder) Start()  { r.events = append(r.events, event{kind: "start"}) }
func (r *recorder) Finish() { r.events = append(r.events, event{kind: "finish"}) }
func (r *recorder) Equal(o, n, c int) {
	r.events = append(r.events, event{kind: "equal", a: o, b: n, n: c})
}
func (r *recorder) Delete(o, c int) {
	r.events = append(r.events, event{kind: "delete", a: o, n: c})
}
func (r *recorder) Insert(n, c int) {
	r.events = append(r.events, event{kind: "insert", b: n, n: c})
}

func link(arena *patharena.Arena, coords [][2]int) patharena.Idx {
	var head, prev patharena.Idx
	for i, xy := range coords {
		idx, n := arena.Push()
		n.X, n.Y = int64(xy[0]), int64(xy[1])
		if i == 0 {
			head = idx
		} else {
			arena.Get(prev).Next = idx
		}
		prev = idx
	}
	return head
}

func TestWalkEmptyPath(t *testing.T) {
	arena := patharena.New()
	head := link(arena, [][2]int{{0, 0}})

	r := &recorder{}
	Walk(arena, head, r)

	want := []event{{kind: "start"}, {kind: "finish"}}
	if !reflect.DeepEqual(r.events, want) {
		t.Errorf("events = %+v, want %+v", r.events, want)
	}
}

func TestWalkMixedSegments(t *testing.T) {
	// equal run (0,0)->(3,3), delete (3,3)->(5,3), insert (5,3)->(5,4)
	arena := patharena.New()
	head := link(arena, [][2]int{{0, 0}, {3, 3}, {5, 3}, {5, 4}})

	r := &recorder{}
	Walk(arena, head, r)

	want := []event{
		{kind: "start"},
		{kind: "equal", a: 0, b: 0, n: 3},
		{kind: "delete", a: 3, n: 2},
		{kind: "insert", b: 3, n: 1},
		{kind: "finish"},
	}
	if !reflect.DeepEqual(r.events, want) {
		t.Errorf("events = %+v, want %+v", r.events, want)
	}
}

func TestWalkMalformedSegmentPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Walk did not panic on a non-axis-aligned, non-diagonal segment")
		}
	}()
	arena := patharena.New()
	head := link(arena, [][2]int{{0, 0}, {2, 3}})
	Walk(arena, head, &recorder{})
}
