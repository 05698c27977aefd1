/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package identifier

import (
	"cmp"
	"fmt"
	"unicode/utf8"

	"dirpx.dev/nck/apis"
)

// String identifies by text. It also acts as a character sequence whose
// indices count runes.
type String struct {
	v string
}

var (
	_ apis.Identifier[string] = String{}
	_ apis.CharSequence       = String{}
)

// NewString wraps v.
func NewString(v string) String { return String{v: v} }

// Original returns the wrapped text.
func (s String) Original() string { return s.v }

// Compare orders lexicographically by bytes.
func (s String) Compare(other string) int { return cmp.Compare(s.v, other) }

// CompareTo orders s against other's original text.
func (s String) CompareTo(other apis.Identifier[string]) int { return s.Compare(other.Original()) }

// Equal reports whether s and other wrap the same text.
func (s String) Equal(other apis.Identifier[string]) bool { return s.CompareTo(other) == 0 }

// String returns "string:<text>".
func (s String) String() string { return format(TagString, s.v) }

// Len returns the number of runes.
func (s String) Len() int { return utf8.RuneCountInString(s.v) }

// CharAt returns the rune at index i.
func (s String) CharAt(i int) (rune, error) {
	if i >= 0 {
		n := 0
		for _, r := range s.v {
			if n == i {
				return r, nil
			}
			n++
		}
	}
	return 0, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, s.Len())
}

// SubSequence returns the runes in [start, end). It fails when start > end
// or either bound lies outside [0, Len()].
func (s String) SubSequence(start, end int) (string, error) {
	n := s.Len()
	if start < 0 || end > n || start > end {
		return "", fmt.Errorf("%w: range [%d, %d), length %d", ErrIndexOutOfRange, start, end, n)
	}
	return string([]rune(s.v)[start:end]), nil
}
