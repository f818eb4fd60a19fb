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

package midpoint

import (
	"crypto/sha256"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/tokdiff/tokdiff/internal/box"
	"github.com/tokdiff/tokdiff/internal/token"
	"github.com/tokdiff/tokdiff/internal/view"
)

// buildView turns a list of words into a view.View, one token per word,
// separated by single spaces in the backing buffer.
func buildView(words []string) view.View {
	var b strings.Builder
	toks := make([]token.Token, len(words))
	for i, w := range words {
		if i > 0 {
			b.WriteByte(' ')
		}
		start := b.Len()
		b.WriteString(w)
		toks[i] = token.Token{Start: uint32(start), End: uint32(b.Len())}
	}
	v, ok := view.New([]byte(b.String()), toks)
	if !ok {
		panic("buildView: constructed an invalid view")
	}
	return v
}

func TestFindEmptyBox(t *testing.T) {
	v := buildView([]string{"a", "b"})
	_, ok := Find(box.Box{Left: 1, Top: 1, Right: 1, Bottom: 1}, v, v)
	if ok {
		t.Errorf("Find on an empty box reported ok=true, want false")
	}
}

func TestFindSnakeIsAMatch(t *testing.T) {
	tests := []struct {
		name string
		x, y []string
	}{
		{"identical", []string{"foo", "bar", "baz"}, []string{"foo", "bar", "baz"}},
		{"x-empty", nil, []string{"foo", "bar", "baz"}},
		{"y-empty", []string{"foo", "bar", "baz"}, nil},
		{"same-prefix", []string{"foo", "bar"}, []string{"foo", "baz"}},
		{"same-suffix", []string{"foo", "bar"}, []string{"loo", "bar"}},
		{"ABCABBA-to-CBABAC", strings.Split("A B C A B B A", " "), strings.Split("C B A B A C", " ")},
		{"disjoint", []string{"a", "b", "c"}, []string{"x", "y", "z"}},
		{"single-mismatch", []string{"a"}, []string{"b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xv, yv := buildView(tt.x), buildView(tt.y)
			b := box.Box{Left: 0, Top: 0, Right: xv.Len(), Bottom: yv.Len()}
			if b.Empty() {
				t.Skip("identical-empty box, nothing to search")
			}
			snake, ok := Find(b, xv, yv)
			if !ok {
				t.Fatalf("Find(%v) reported ok=false for a non-empty box", b)
			}
			if snake.X1 < b.Left || snake.X2 > b.Right || snake.Y1 < b.Top || snake.Y2 > b.Bottom {
				t.Fatalf("snake %+v escapes box %+v", snake, b)
			}
			n := snake.X2 - snake.X1
			if n != snake.Y2-snake.Y1 {
				t.Fatalf("snake %+v is not diagonal", snake)
			}
			for i := 0; i < n; i++ {
				if !view.Equal(xv, snake.X1+i, yv, snake.Y1+i) {
					t.Errorf("snake %+v claims a match at offset %d that isn't one", snake, i)
				}
			}
		})
	}
}

func TestFindRandomized(t *testing.T) {
	for i := 0; i < 30; i++ {
		seed := sha256.Sum256(fmt.Appendf(nil, "midpoint-%d", i))
		t.Run(fmt.Sprintf("seed=%x", seed[:4]), func(t *testing.T) {
			rng := rand.New(rand.NewChaCha8(seed))
			n := 4 + rng.IntN(40)
			m := 4 + rng.IntN(40)
			x := randomTokens(rng, n, 5)
			y := randomTokens(rng, m, 5)

			xv, ok := view.New(x.buf, x.toks)
			if !ok {
				t.Fatal("invalid generated view")
			}
			yv, ok := view.New(y.buf, y.toks)
			if !ok {
				t.Fatal("invalid generated view")
			}

			b := box.Box{Left: 0, Top: 0, Right: xv.Len(), Bottom: yv.Len()}
			if b.Empty() {
				return
			}
			snake, ok := Find(b, xv, yv)
			if !ok {
				t.Fatalf("Find reported ok=false for non-empty box %+v", b)
			}
			if snake.X1 < b.Left || snake.X2 > b.Right || snake.Y1 < b.Top || snake.Y2 > b.Bottom {
				t.Fatalf("snake %+v escapes box %+v", snake, b)
			}
			if snake.X2-snake.X1 != snake.Y2-snake.Y1 {
				t.Fatalf("snake %+v is not diagonal", snake)
			}
			for i := 0; i < snake.X2-snake.X1; i++ {
				if !view.Equal(xv, snake.X1+i, yv, snake.Y1+i) {
					t.Errorf("snake %+v claims a match at offset %d that isn't one", snake, i)
				}
			}
		})
	}
}

type generated struct {
	buf  []byte
	toks []token.Token
}

// randomTokens builds n single-byte tokens drawn from an alphabet of size
// alphabet, so that collisions (and hence snakes) are likely.
func randomTokens(rng *rand.Rand, n, alphabet int) generated {
	buf := make([]byte, n)
	toks := make([]token.Token, n)
	for i := range buf {
		buf[i] = byte('a' + rng.IntN(alphabet))
		toks[i] = token.Token{Start: uint32(i), End: uint32(i + 1)}
	}
	return generated{buf: buf, toks: toks}
}
