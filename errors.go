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

import "fmt"

// IndexOutOfRangeError is the value ChangeSet.Index panics with when i is
// outside [0, Len()).
type IndexOutOfRangeError struct {
	Index, Len int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("tokdiff: index %d out of range for change set of length %d", e.Index, e.Len)
}

// TextRangeExceedsInputError is returned when a Tokenizer produces a token
// whose byte range falls outside the buffer it was tokenized from.
type TextRangeExceedsInputError struct {
	Start, End uint32
	BufLen     int
}

func (e *TextRangeExceedsInputError) Error() string {
	return fmt.Sprintf("tokdiff: token range [%d,%d) exceeds input of length %d", e.Start, e.End, e.BufLen)
}

// InvariantViolationError indicates an internal assertion failed. It always
// indicates a defect in tokdiff itself or in a Tokenizer implementation, not
// a user input error.
type InvariantViolationError struct {
	Msg string
}

func (e *InvariantViolationError) Error() string {
	return "tokdiff: invariant violation: " + e.Msg
}
