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

package patharena

import "testing"

func TestPushReturnsNonNullIndices(t *testing.T) {
	a := New()
	for i := 0; i < 5; i++ {
		idx, n := a.Push()
		if idx == Null {
			t.Fatalf("Push() returned the null sentinel on iteration %d", i)
		}
		n.X, n.Y = int64(i), int64(i*2)
	}
}

func TestGetReflectsWrites(t *testing.T) {
	a := New()
	idx1, n1 := a.Push()
	n1.X, n1.Y = 1, 2
	idx2, n2 := a.Push()
	n2.X, n2.Y = 3, 4
	n1.Next = idx2

	got1 := a.Get(idx1)
	if got1.X != 1 || got1.Y != 2 || got1.Next != idx2 {
		t.Errorf("Get(idx1) = %+v, want X=1 Y=2 Next=%v", got1, idx2)
	}
	got2 := a.Get(idx2)
	if got2.X != 3 || got2.Y != 4 {
		t.Errorf("Get(idx2) = %+v, want X=3 Y=4", got2)
	}
}

func TestReset(t *testing.T) {
	a := New()
	for i := 0; i < 3; i++ {
		a.Push()
	}
	a.Reset()
	idx, n := a.Push()
	n.X = 42
	if idx != 1 {
		t.Errorf("after Reset, first Push index = %d, want 1", idx)
	}
	if got := a.Get(1).X; got != 42 {
		t.Errorf("after Reset, Get(1).X = %d, want 42", got)
	}
}
