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

// Package view provides an immutable view over one side of a comparison: a
// contiguous array of tokens plus the backing byte buffer they index into.
package view

import "github.com/tokdiff/tokdiff/internal/token"

// View pairs a byte buffer with the tokens that index into it.
//
// Invariant: every token's byte range lies within Bytes. A View is constructed
// once per side at the start of a diff and discarded at the end.
type View struct {
	Bytes  []byte
	Tokens []token.Token
}

// New constructs a View, bounds-checking every token against bytes.
//
// ok is false if any token's range falls outside bytes or start > end.
func New(bytes []byte, tokens []token.Token) (v View, ok bool) {
	n := len(bytes)
	for _, t := range tokens {
		if t.Start > t.End || int(t.End) > n {
			return View{}, false
		}
	}
	return View{Bytes: bytes, Tokens: tokens}, true
}

// Len returns the number of tokens in the view.
func (v View) Len() int { return len(v.Tokens) }

// At returns the i-th token.
func (v View) At(i int) token.Token { return v.Tokens[i] }

// Equal reports whether v's i-th token and w's j-th token denote
// byte-identical substrings.
func Equal(v View, i int, w View, j int) bool {
	return token.Equal(v.Tokens[i], v.Bytes, w.Tokens[j], w.Bytes)
}

// Text returns the substring a token denotes within this view's buffer.
func (v View) Text(t token.Token) string {
	return string(v.Bytes[t.Start:t.End])
}
