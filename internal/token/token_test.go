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

package token

import "testing"

func TestEqual(t *testing.T) {
	bufA := []byte("foo bar baz")
	bufB := []byte("xxx bar yyy")

	tests := []struct {
		name string
		a    Token
		b    Token
		want bool
	}{
		{
			name: "equal",
			a:    Token{Start: 4, End: 7},
			b:    Token{Start: 4, End: 7},
			want: true,
		},
		{
			name: "different-length",
			a:    Token{Start: 0, End: 3},
			b:    Token{Start: 0, End: 2},
			want: false,
		},
		{
			name: "same-length-different-bytes",
			a:    Token{Start: 0, End: 3},
			b:    Token{Start: 0, End: 3},
			want: false,
		},
		{
			name: "empty-tokens-equal",
			a:    Token{Start: 3, End: 3},
			b:    Token{Start: 8, End: 8},
			want: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, bufA, tt.b, bufB); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestLen(t *testing.T) {
	tok := Token{Start: 10, End: 17}
	if got, want := tok.Len(), 7; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
}

func TestEqualIgnoresOpaqueFields(t *testing.T) {
	buf := []byte("same")
	a := Token{Start: 0, End: 4, NodeID: 1, Tree: 0xdead, BeforeNewline: true}
	b := Token{Start: 0, End: 4, NodeID: 99, Tree: 0xbeef, Implicit: true}
	if !Equal(a, buf, b, buf) {
		t.Errorf("Equal should ignore opaque provenance fields, got false")
	}
}
