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

// Package lexer implements a general-purpose character-class tokenizer:
// tokdiff's default Tokenizer for plain text, used when a caller has no
// syntax tree of their own to tokenize from.
//
// It has no notion of any particular programming language. Runs of
// identifier characters become one token, runs of whitespace become one
// token, and every other character is its own token. Callers who need
// language-aware tokenization (string literals, multi-byte operators,
// real comment syntax) should implement their own [tokdiff.Tokenizer].
package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/tokdiff/tokdiff"
)

// Lexer is the zero-value-usable default tokenizer.
type Lexer struct {
	// CommentPrefix, if non-empty, marks the rest of a line starting with
	// this byte sequence as a comment token, honored when
	// TokenizeOptions.IgnoreComments is set.
	CommentPrefix string
}

// class identifies which run a byte (or rune) belongs to.
type class int

const (
	classOther class = iota
	classWord
	classSpace
	classNewline
)

func classify(r rune) class {
	switch {
	case r == '\n':
		return classNewline
	case unicode.IsSpace(r):
		return classSpace
	case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
		return classWord
	default:
		return classOther
	}
}

// Tokenize implements tokdiff.Tokenizer.
func (l Lexer) Tokenize(src []byte, opts tokdiff.TokenizeOptions) ([]tokdiff.Token, error) {
	if !utf8.Valid(src) {
		return nil, errors.New("lexer: source is not valid UTF-8")
	}

	var toks []tokdiff.Token
	i := 0
	for i < len(src) {
		if l.CommentPrefix != "" && hasPrefixAt(src, i, l.CommentPrefix) {
			start := i
			for i < len(src) && src[i] != '\n' {
				i++
			}
			if !opts.IgnoreComments {
				toks = append(toks, tokdiff.Token{
					Start: uint32(start),
					End:   uint32(i),
				})
			}
			continue
		}

		r, size := utf8.DecodeRune(src[i:])
		if r == utf8.RuneError && size <= 1 {
			return nil, errors.Errorf("lexer: invalid UTF-8 at byte offset %d", i)
		}
		c := classify(r)

		start := i
		i += size
		for i < len(src) {
			r2, size2 := utf8.DecodeRune(src[i:])
			if classify(r2) != c || c == classNewline || c == classOther {
				break
			}
			i += size2
		}

		if c == classSpace && opts.IgnoreWhitespace {
			continue
		}

		tok := tokdiff.Token{Start: uint32(start), End: uint32(i)}
		if i < len(src) {
			if nr, _ := utf8.DecodeRune(src[i:]); nr == '\n' {
				tok.BeforeNewline = true
			}
		}
		toks = append(toks, tok)
	}
	return toks, nil
}

func hasPrefixAt(src []byte, i int, prefix string) bool {
	if i+len(prefix) > len(src) {
		return false
	}
	return string(src[i:i+len(prefix)]) == prefix
}
