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

// Package tokdiff computes a structured edit script between two token
// sequences and returns it as an ordered list of [ChangeSet] values. It is
// the core of a programming-language-aware diff: given two inputs it
// produces an optimal-length sequence of insertions, deletions, equalities,
// and (optionally) substitutions at token granularity, using Myers'
// O(ND) linear-space algorithm.
//
// tokdiff never tokenizes on its own behalf beyond the default [Tokenizer]
// in a subpackage; callers either supply a [Tokenizer] or hand over
// pre-tokenized [TokenView]s derived from their own syntax tree.
package tokdiff

import (
	"bytes"

	"github.com/tokdiff/tokdiff/internal/box"
	"github.com/tokdiff/tokdiff/internal/collector"
	"github.com/tokdiff/tokdiff/internal/config"
	"github.com/tokdiff/tokdiff/internal/patharena"
	"github.com/tokdiff/tokdiff/internal/pathbuild"
	"github.com/tokdiff/tokdiff/internal/view"
	"github.com/tokdiff/tokdiff/internal/walker"
)

// Diff tokenizes old and new with tok and returns the change sets that
// transform old's token sequence into new's. The returned slice is nil
// (not empty-but-non-nil) when old and new are byte-identical or, after
// tokenization, token-identical.
func Diff(old, new Source, tok Tokenizer, opts ...Option) ([]ChangeSet, error) {
	oldBytes, newBytes := old.Bytes(), new.Bytes()
	if bytes.Equal(oldBytes, newBytes) {
		return nil, nil
	}

	cfg := config.FromOptions(opts)
	topts := TokenizeOptions{
		IgnoreWhitespace: cfg.IgnoreWhitespace,
		IgnoreComments:   cfg.IgnoreComments,
	}

	oldToks, err := tok.Tokenize(oldBytes, topts)
	if err != nil {
		return nil, err
	}
	newToks, err := tok.Tokenize(newBytes, topts)
	if err != nil {
		return nil, err
	}

	return diffTokens(oldBytes, oldToks, newBytes, newToks, cfg)
}

// DiffViews compares two already-tokenized sides directly, for callers that
// derive tokens from their own syntax tree rather than through a Tokenizer.
func DiffViews(old, new TokenView, opts ...Option) ([]ChangeSet, error) {
	cfg := config.FromOptions(opts)
	return diffTokens(old.Bytes, old.Tokens, new.Bytes, new.Tokens, cfg)
}

func diffTokens(oldBytes []byte, oldToks []Token, newBytes []byte, newToks []Token, cfg config.Config) ([]ChangeSet, error) {
	// rangeErr reports the first token of toks that falls outside buf.
	rangeErr := func(buf []byte, toks []Token) error {
		e := &TextRangeExceedsInputError{BufLen: len(buf)}
		for _, t := range toks {
			if t.Start > t.End || int(t.End) > len(buf) {
				e.Start, e.End = t.Start, t.End
				break
			}
		}
		return e
	}

	oldV, ok := view.New(oldBytes, oldToks)
	if !ok {
		return nil, rangeErr(oldBytes, oldToks)
	}
	newV, ok := view.New(newBytes, newToks)
	if !ok {
		return nil, rangeErr(newBytes, newToks)
	}

	n, m := oldV.Len(), newV.Len()
	limit := min(n, m)

	prefix := 0
	for prefix < limit && view.Equal(oldV, prefix, newV, prefix) {
		prefix++
	}
	if prefix == n && prefix == m {
		return nil, nil
	}

	suffix := 0
	for suffix < limit-prefix && view.Equal(oldV, n-1-suffix, newV, m-1-suffix) {
		suffix++
	}

	pubOld := TokenView{Bytes: oldBytes, Tokens: oldToks}
	pubNew := TokenView{Bytes: newBytes, Tokens: newToks}

	var out []ChangeSet

	if cfg.EmitEqual && prefix > 0 {
		out = append(out, ChangeSet{
			kind:      Equal,
			oldTokens: oldToks[:prefix],
			newTokens: newToks[:prefix],
			oldView:   pubOld,
			newView:   pubNew,
		})
	}

	interiorOld := view.View{Bytes: oldBytes, Tokens: oldToks[prefix : n-suffix]}
	interiorNew := view.View{Bytes: newBytes, Tokens: newToks[prefix : m-suffix]}

	arena := patharena.New()
	b := box.Box{Left: 0, Top: 0, Right: interiorOld.Len(), Bottom: interiorNew.Len()}
	head := pathbuild.Build(arena, b, interiorOld, interiorNew)

	coll := collector.New(cfg.EmitEqual, cfg.EmitSubstitute)
	walker.Walk(arena, head, coll)

	for _, g := range coll.Groups() {
		cs := ChangeSet{oldView: pubOld, newView: pubNew}
		switch g.Kind {
		case collector.KindEqual:
			cs.kind = Equal
			cs.oldTokens = interiorOld.Tokens[g.OldStart : g.OldStart+g.OldCount]
			cs.newTokens = interiorNew.Tokens[g.NewStart : g.NewStart+g.NewCount]
		case collector.KindDelete:
			cs.kind = Delete
			cs.oldTokens = interiorOld.Tokens[g.OldStart : g.OldStart+g.OldCount]
		case collector.KindInsert:
			cs.kind = Insert
			cs.newTokens = interiorNew.Tokens[g.NewStart : g.NewStart+g.NewCount]
		case collector.KindSubstitute:
			cs.kind = Substitute
			cs.oldTokens = interiorOld.Tokens[g.OldStart : g.OldStart+g.OldCount]
			cs.newTokens = interiorNew.Tokens[g.NewStart : g.NewStart+g.NewCount]
		}
		out = append(out, cs)
	}

	if cfg.EmitEqual && suffix > 0 {
		out = append(out, ChangeSet{
			kind:      Equal,
			oldTokens: oldToks[n-suffix:],
			newTokens: newToks[m-suffix:],
			oldView:   pubOld,
			newView:   pubNew,
		})
	}

	return out, nil
}
