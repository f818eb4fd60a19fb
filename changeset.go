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

package tokdiff

import (
	"fmt"

	"github.com/tokdiff/tokdiff/internal/token"
)

// Token is a byte range into one side's source buffer, with opaque fields a
// Tokenizer may use to carry syntax-tree provenance through the diff.
type Token = token.Token

// Kind identifies the nature of a ChangeSet.
type Kind int

const (
	// Equal marks a run of tokens unchanged between old and new.
	Equal Kind = iota
	// Insert marks a run of tokens present only in new.
	Insert
	// Delete marks a run of tokens present only in old.
	Delete
	// Substitute marks a run of tokens replaced: old tokens removed, new
	// tokens added in their place, as a single unit.
	Substitute
)

func (k Kind) String() string {
	switch k {
	case Equal:
		return "equal"
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Substitute:
		return "substitute"
	default:
		return fmt.Sprint(int(k))
	}
}

// ChangeSet is one contiguous unit of change (or of sameness) between two
// token sequences: a run of old tokens, a run of new tokens, and a Kind that
// says how the two relate.
//
// For Equal, OldTokens and NewTokens have the same length. For Substitute,
// both are non-empty and their lengths may differ. For Delete, NewTokens is
// empty. For Insert, OldTokens is empty.
type ChangeSet struct {
	kind      Kind
	oldTokens []Token
	newTokens []Token
	oldView   TokenView
	newView   TokenView
}

// Kind reports what kind of change this change set represents.
func (c ChangeSet) Kind() Kind { return c.kind }

// Len returns max(len(OldTokens()), len(NewTokens())).
func (c ChangeSet) Len() int {
	return max(len(c.oldTokens), len(c.newTokens))
}

// ChangeCount returns len(oldTokens)+len(newTokens), the number of tokens
// actually touched by this change set.
func (c ChangeSet) ChangeCount() int {
	return len(c.oldTokens) + len(c.newTokens)
}

// Index returns the i-th pair of (old, new) tokens this change set covers.
// Whichever side doesn't have an i-th token returns ok=false for that side.
// Index panics with an *IndexOutOfRangeError if i is outside
// [0, Len()) — callers that want a recoverable error should check i against
// Len() first.
func (c ChangeSet) Index(i int) (oldTok Token, oldOK bool, newTok Token, newOK bool) {
	if i < 0 || i >= c.Len() {
		panic(&IndexOutOfRangeError{Index: i, Len: c.Len()})
	}
	if i < len(c.oldTokens) {
		oldTok, oldOK = c.oldTokens[i], true
	}
	if i < len(c.newTokens) {
		newTok, newOK = c.newTokens[i], true
	}
	return
}

// OldTokens returns the old-side tokens this change set covers. Empty for
// Insert.
// Unpadded: length is len(c.oldTokens), not Len(). Reconstruction
// (internal/validate) and callers that only want "what was actually on this
// side" rely on that; there's no natural zero Token to pad a short side with.
func (c ChangeSet) OldTokens() []Token { return c.oldTokens }

// NewTokens returns the new-side tokens this change set covers. Empty for
// Delete. Unpadded, see OldTokens.
func (c ChangeSet) NewTokens() []Token { return c.newTokens }

// OldText returns the source text of the i-th old token, or "" if this
// change set has no old token at i.
func (c ChangeSet) OldText(i int) string {
	if i < 0 || i >= len(c.oldTokens) {
		return ""
	}
	return c.oldView.text(c.oldTokens[i])
}

// NewText returns the source text of the i-th new token, or "" if this
// change set has no new token at i.
func (c ChangeSet) NewText(i int) string {
	if i < 0 || i >= len(c.newTokens) {
		return ""
	}
	return c.newView.text(c.newTokens[i])
}

// Pair is one (old, new) token slot yielded by All, with ok flags for
// whichever side is present.
type Pair struct {
	Old, New     Token
	OldOK, NewOK bool
}

// All yields every (old, new) pair in the change set in order, suitable for
// range-over-func iteration: for i, p := range cs.All() { ... }.
func (c ChangeSet) All() func(yield func(int, Pair) bool) {
	return func(yield func(int, Pair) bool) {
		for i := 0; i < c.Len(); i++ {
			o, ook, n, nok := c.Index(i)
			if !yield(i, Pair{Old: o, New: n, OldOK: ook, NewOK: nok}) {
				return
			}
		}
	}
}
