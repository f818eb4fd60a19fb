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

// Package validate reconstructs the original token sequences from a set of
// change sets and checks them against the inputs a diff was computed from.
//
// It plays the role the upstream module's internal/unixpatch fills for
// line-oriented diffs (shelling out to the OS patch tool and diffing the
// result against the expected file): here there is no text format a patch
// tool could apply a token-granularity change set to, so the round trip is
// done in process by walking the change sets directly.
package validate

import "github.com/tokdiff/tokdiff"

// ReconstructOld concatenates, in order, the old-side tokens of every change
// set that isn't an Insert and the old-side half of every Substitute,
// recovering the original old token sequence a diff was computed from.
func ReconstructOld(changesets []tokdiff.ChangeSet) []tokdiff.Token {
	var out []tokdiff.Token
	for _, cs := range changesets {
		out = append(out, cs.OldTokens()...)
	}
	return out
}

// ReconstructNew is ReconstructOld's mirror image for the new side.
func ReconstructNew(changesets []tokdiff.ChangeSet) []tokdiff.Token {
	var out []tokdiff.Token
	for _, cs := range changesets {
		out = append(out, cs.NewTokens()...)
	}
	return out
}

// SameTokens reports whether a and b denote the same sequence of byte
// ranges. It compares positions, not text, since that's what Completeness
// is about: every input token must reappear exactly once on its side.
func SameTokens(a, b []tokdiff.Token) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Start != b[i].Start || a[i].End != b[i].End {
			return false
		}
	}
	return true
}

// NoAdjacentDeleteInsert reports whether changesets satisfies grouping
// maximality: it returns false if two consecutive change sets are both
// Delete/Insert (in either order), which the collector should have merged.
func NoAdjacentDeleteInsert(changesets []tokdiff.ChangeSet) bool {
	for i := 1; i < len(changesets); i++ {
		prev, cur := changesets[i-1].Kind(), changesets[i].Kind()
		if isEdge(prev) && isEdge(cur) {
			return false
		}
	}
	return true
}

func isEdge(k tokdiff.Kind) bool {
	return k == tokdiff.Delete || k == tokdiff.Insert
}
