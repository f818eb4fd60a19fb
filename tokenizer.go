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

// TokenizeOptions carries the option flags a Tokenizer should honor.
type TokenizeOptions struct {
	IgnoreWhitespace bool
	IgnoreComments   bool
}

// Tokenizer splits a source buffer into Tokens. A Tokenizer's returned
// Tokens must have non-overlapping, non-decreasing byte ranges that lie
// within src.
//
// Diff and DiffViews never call back into a Tokenizer once tokenization is
// complete; the diff core only ever compares byte ranges of the buffer it
// was handed.
type Tokenizer interface {
	Tokenize(src []byte, opts TokenizeOptions) ([]Token, error)
}

// Source supplies the raw bytes of one side of a comparison.
type Source interface {
	Bytes() []byte
}

// BytesSource adapts a plain byte slice to Source.
type BytesSource []byte

// Bytes returns s itself.
func (s BytesSource) Bytes() []byte { return s }

// TokenView is a pre-tokenized side of a comparison: the token array plus
// the byte buffer it indexes into. Use DiffViews when tokens have already
// been produced by an external syntax tree rather than by a Tokenizer.
type TokenView struct {
	Bytes  []byte
	Tokens []Token
}

func (v TokenView) text(t Token) string {
	return string(v.Bytes[t.Start:t.End])
}
