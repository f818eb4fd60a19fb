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

// Command tokdiff prints a token-granularity diff of two files.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tokdiff/tokdiff"
	"github.com/tokdiff/tokdiff/internal/lexer"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		ignoreWhitespace bool
		ignoreComments   bool
		noEqual          bool
		noSubstitute     bool
		commentPrefix    string
		verbose          bool
	)

	cmd := &cobra.Command{
		Use:           "tokdiff <old> <new>",
		Short:         "Print a token-granularity diff of two files",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(verbose)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			opts := []tokdiff.Option{
				tokdiff.EmitEqual(!noEqual),
				tokdiff.EmitSubstitute(!noSubstitute),
				tokdiff.IgnoreWhitespace(ignoreWhitespace),
				tokdiff.IgnoreComments(ignoreComments),
			}

			return run(cmd.OutOrStdout(), logger, args[0], args[1], commentPrefix, opts)
		},
	}

	cmd.Flags().BoolVar(&ignoreWhitespace, "ignore-whitespace", false, "ignore whitespace-only tokens")
	cmd.Flags().BoolVar(&ignoreComments, "ignore-comments", false, "ignore comment tokens")
	cmd.Flags().BoolVar(&noEqual, "no-equal", false, "omit unchanged runs from the output")
	cmd.Flags().BoolVar(&noSubstitute, "no-substitute", false, "report substitutions as separate deletes and inserts")
	cmd.Flags().StringVar(&commentPrefix, "comment-prefix", "", "byte sequence that starts a line comment")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.DisableStacktrace = true
	return cfg.Build()
}

func run(w io.Writer, logger *zap.Logger, oldPath, newPath, commentPrefix string, opts []tokdiff.Option) error {
	oldBytes, err := os.ReadFile(oldPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", oldPath, err)
	}
	newBytes, err := os.ReadFile(newPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", newPath, err)
	}

	logger.Debug("tokenizing", zap.String("old", oldPath), zap.String("new", newPath))

	tok := lexer.Lexer{CommentPrefix: commentPrefix}
	changes, err := tokdiff.Diff(tokdiff.BytesSource(oldBytes), tokdiff.BytesSource(newBytes), tok, opts...)
	if err != nil {
		return fmt.Errorf("diffing %s and %s: %w", oldPath, newPath, err)
	}

	logger.Debug("diff complete", zap.Int("change_sets", len(changes)))

	for _, cs := range changes {
		printChangeSet(w, cs)
	}
	return nil
}

func printChangeSet(w io.Writer, cs tokdiff.ChangeSet) {
	for i := 0; i < cs.Len(); i++ {
		_, oldOK, _, newOK := cs.Index(i)
		switch cs.Kind() {
		case tokdiff.Equal:
			fmt.Fprintf(w, "  %s\n", cs.OldText(i))
		case tokdiff.Delete:
			fmt.Fprintf(w, "- %s\n", cs.OldText(i))
		case tokdiff.Insert:
			fmt.Fprintf(w, "+ %s\n", cs.NewText(i))
		case tokdiff.Substitute:
			if oldOK {
				fmt.Fprintf(w, "- %s\n", cs.OldText(i))
			}
			if newOK {
				fmt.Fprintf(w, "+ %s\n", cs.NewText(i))
			}
		}
	}
}
