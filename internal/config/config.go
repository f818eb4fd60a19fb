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

// Package config provides the shared configuration mechanism for this
// module.
//
// This package is an implementation detail; the configuration surface for
// users is provided via tokdiff.Option.
package config

// Config collects all configurable parameters for the comparison driver.
type Config struct {
	// EmitEqual includes unchanged runs of tokens as Equal change sets.
	// When false, only the changed runs are reported.
	EmitEqual bool

	// EmitSubstitute merges a deletion immediately followed by an insertion
	// (or vice versa) into a single Substitute change set. When false, the
	// two are reported as separate Delete and Insert change sets.
	EmitSubstitute bool

	// IgnoreWhitespace is forwarded to the Tokenizer by Diff, asking it to
	// leave out whitespace-only tokens. DiffViews does not consult it.
	IgnoreWhitespace bool

	// IgnoreComments is forwarded to the Tokenizer by Diff, asking it to
	// leave out comment tokens. DiffViews does not consult it.
	IgnoreComments bool
}

// Default is the default configuration.
var Default = Config{
	EmitEqual:      true,
	EmitSubstitute: true,
}

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config)

// FromOptions builds a Config from Default by applying opts in order.
func FromOptions(opts []Option) Config {
	cfg := Default
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
