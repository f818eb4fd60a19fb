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

package config_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tokdiff/tokdiff"
	"github.com/tokdiff/tokdiff/internal/config"
)

func TestFromOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []config.Option
		want config.Config
	}{
		{
			name: "default",
			opts: nil,
			want: config.Default,
		},
		{
			name: "disable-equal",
			opts: []config.Option{tokdiff.EmitEqual(false)},
			want: config.Config{
				EmitEqual:      false,
				EmitSubstitute: config.Default.EmitSubstitute,
			},
		},
		{
			name: "disable-substitute",
			opts: []config.Option{tokdiff.EmitSubstitute(false)},
			want: config.Config{
				EmitEqual:      config.Default.EmitEqual,
				EmitSubstitute: false,
			},
		},
		{
			name: "ignore-whitespace-and-comments",
			opts: []config.Option{tokdiff.IgnoreWhitespace(true), tokdiff.IgnoreComments(true)},
			want: config.Config{
				EmitEqual:        config.Default.EmitEqual,
				EmitSubstitute:   config.Default.EmitSubstitute,
				IgnoreWhitespace: true,
				IgnoreComments:   true,
			},
		},
		{
			name: "last-option-wins",
			opts: []config.Option{tokdiff.EmitEqual(false), tokdiff.EmitEqual(true)},
			want: config.Config{
				EmitEqual:      true,
				EmitSubstitute: config.Default.EmitSubstitute,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := config.FromOptions(tt.opts)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FromOptions(...) result differs (-want +got):\n%s", diff)
			}
		})
	}
}
