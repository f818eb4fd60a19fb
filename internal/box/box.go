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

// Package box describes a rectangle of the edit graph that the Myers midpoint
// search and the path builder recurse over.
package box

// Box bounds a sub-rectangle of the edit graph.
//
// Invariant: Left <= Right and Top <= Bottom.
type Box struct {
	Left, Top, Right, Bottom int
}

// Width is the extent along the old-side axis.
func (b Box) Width() int { return b.Right - b.Left }

// Height is the extent along the new-side axis.
func (b Box) Height() int { return b.Bottom - b.Top }

// Size is Width+Height, the quantity the Myers search bounds its diagonal
// count by.
func (b Box) Size() int { return b.Width() + b.Height() }

// Delta is Width-Height; its parity decides whether the forward or the
// backward scan detects the meeting point.
func (b Box) Delta() int { return b.Width() - b.Height() }

// Empty reports whether the box spans no area.
func (b Box) Empty() bool { return b.Size() == 0 }
