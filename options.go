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

import "github.com/tokdiff/tokdiff/internal/config"

// Option configures the behavior of Diff and DiffViews.
type Option = config.Option

// EmitEqual controls whether unchanged runs of tokens are included in the
// output as Equal change sets. The default is true.
func EmitEqual(v bool) Option {
	return func(cfg *config.Config) {
		cfg.EmitEqual = v
	}
}

// EmitSubstitute controls whether a deletion immediately followed by an
// insertion (or vice versa) is merged into a single Substitute change set.
// When false, the two are reported separately as Delete and Insert. The
// default is true.
func EmitSubstitute(v bool) Option {
	return func(cfg *config.Config) {
		cfg.EmitSubstitute = v
	}
}

// IgnoreWhitespace forwards to the Tokenizer, asking it to skip
// whitespace-only tokens.
func IgnoreWhitespace(v bool) Option {
	return func(cfg *config.Config) {
		cfg.IgnoreWhitespace = v
	}
}

// IgnoreComments forwards to the Tokenizer, asking it to skip tokens it
// classifies as comments.
func IgnoreComments(v bool) Option {
	return func(cfg *config.Config) {
		cfg.IgnoreComments = v
	}
}
