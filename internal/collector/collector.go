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

// Package collector implements a internal/walker.Callback that groups the
// elementary Equal/Delete/Insert events of a walk into runs a caller can
// render as hunks.
package collector

// Kind identifies what a Group represents.
type Kind int

const (
	KindEqual Kind = iota
	KindInsert
	KindDelete
	KindSubstitute
)

// Group is a run of one or more consecutive tokens on one or both sides that
// the collector has classified as a single unit of change.
//
// For KindEqual and KindSubstitute both OldCount and NewCount are nonzero.
// For KindInsert, OldCount is zero and OldStart is meaningless. For
// KindDelete, NewCount is zero and NewStart is meaningless.
type Group struct {
	Kind               Kind
	OldStart, OldCount int
	NewStart, NewCount int
}

// Collector accumulates Delete/Insert events into pending runs and flushes
// them into a Group as soon as an Equal event or the end of the walk breaks
// the run. EmitEqual and EmitSubstitute mirror the same-named diff options:
// when EmitSubstitute is false, a run that saw both deletions and insertions
// is flushed as two groups (KindDelete then KindInsert) instead of being
// merged into one KindSubstitute group.
type Collector struct {
	EmitEqual      bool
	EmitSubstitute bool

	groups []Group

	pendingOld, pendingNew pending
}

type pending struct {
	start, count int
	has          bool
}

// New returns a Collector ready to pass to walker.Walk.
func New(emitEqual, emitSubstitute bool) *Collector {
	return &Collector{EmitEqual: emitEqual, EmitSubstitute: emitSubstitute}
}

// Groups returns the groups accumulated since the last Start.
func (c *Collector) Groups() []Group { return c.groups }

func (c *Collector) Start() {
	c.groups = c.groups[:0]
	c.pendingOld = pending{}
	c.pendingNew = pending{}
}

func (c *Collector) Delete(oldStart, n int) {
	if !c.pendingOld.has {
		c.pendingOld.start = oldStart
		c.pendingOld.has = true
	}
	c.pendingOld.count += n
}

func (c *Collector) Insert(newStart, n int) {
	if !c.pendingNew.has {
		c.pendingNew.start = newStart
		c.pendingNew.has = true
	}
	c.pendingNew.count += n
}

func (c *Collector) Equal(oldStart, newStart, n int) {
	c.flush()
	if c.EmitEqual {
		c.groups = append(c.groups, Group{
			Kind:     KindEqual,
			OldStart: oldStart, OldCount: n,
			NewStart: newStart, NewCount: n,
		})
	}
}

func (c *Collector) Finish() {
	c.flush()
}

// flush emits the pending delete/insert run, if any, as one or two groups
// and resets the pending state.
func (c *Collector) flush() {
	switch {
	case c.pendingOld.has && c.pendingNew.has:
		if c.EmitSubstitute {
			c.groups = append(c.groups, Group{
				Kind:     KindSubstitute,
				OldStart: c.pendingOld.start, OldCount: c.pendingOld.count,
				NewStart: c.pendingNew.start, NewCount: c.pendingNew.count,
			})
		} else {
			c.groups = append(c.groups,
				Group{Kind: KindDelete, OldStart: c.pendingOld.start, OldCount: c.pendingOld.count},
				Group{Kind: KindInsert, NewStart: c.pendingNew.start, NewCount: c.pendingNew.count},
			)
		}
	case c.pendingOld.has:
		c.groups = append(c.groups, Group{Kind: KindDelete, OldStart: c.pendingOld.start, OldCount: c.pendingOld.count})
	case c.pendingNew.has:
		c.groups = append(c.groups, Group{Kind: KindInsert, NewStart: c.pendingNew.start, NewCount: c.pendingNew.count})
	default:
		return
	}
	c.pendingOld = pending{}
	c.pendingNew = pending{}
}
