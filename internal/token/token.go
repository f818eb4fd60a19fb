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

// Package token defines the smallest unit the diff engine operates on: a byte
// range into one side's source buffer, plus opaque provenance fields the engine
// never interprets.
package token

// Token is an immutable byte range into a source buffer, with opaque payload
// fields carried through for a caller's own use.
//
// A Token never owns the bytes it denotes; the buffer it indexes into must
// outlive every Token derived from it.
type Token struct {
	Start, End uint32 // Start <= End

	// NodeID and Tree are opaque syntax-tree provenance: a caller who tokenized
	// from a syntax tree can stash a node identity and a tree handle here to
	// re-materialize the token later. The engine copies these fields verbatim
	// and never reads them.
	NodeID int32
	Tree   uintptr

	// BeforeNewline and Implicit are opaque flags carried through unchanged.
	// They exist for a caller's tie-breaking heuristics; the diff core never
	// consults them.
	BeforeNewline bool
	Implicit      bool
}

// Len returns the number of bytes the token spans.
func (t Token) Len() int { return int(t.End - t.Start) }

// Equal reports whether a and b denote byte-identical substrings of bufA and
// bufB respectively. Equal does not establish an ordering, only equality.
func Equal(a Token, bufA []byte, b Token, bufB []byte) bool {
	if a.Len() != b.Len() {
		return false
	}
	sa := bufA[a.Start:a.End]
	sb := bufB[b.Start:b.End]
	for i := range sa {
		if sa[i] != sb[i] {
			return false
		}
	}
	return true
}
