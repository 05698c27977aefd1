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

package apis

import "fmt"

// Identifier is a comparable, equatable wrapper around an original value.
//
// Ordering is entirely delegated to T: two identifiers are equal iff their
// originals compare as equal. Implementations are immutable and therefore
// safe to share between goroutines without synchronization.
type Identifier[T any] interface {
	fmt.Stringer

	// Original returns the exact wrapped value.
	Original() T

	// Compare returns a negative number, zero, or a positive number when the
	// wrapped value is less than, equal to, or greater than other.
	Compare(other T) int

	// CompareTo is Compare(other.Original()).
	CompareTo(other Identifier[T]) int

	// Equal reports whether CompareTo(other) == 0.
	Equal(other Identifier[T]) bool
}

// Numeric is implemented by identifiers wrapping a number. Widening
// projections are exact; narrowing projections either truncate toward zero
// (floating point sources) or fail (integer sources that do not fit).
type Numeric interface {
	// Int32 projects the value onto 32 bits. It returns an error when an
	// integer source does not fit instead of wrapping around.
	Int32() (int32, error)
	// Int64 projects the value onto 64 bits.
	Int64() int64
	// Float32 projects the value onto a 32-bit float.
	Float32() float32
	// Float64 projects the value onto a 64-bit float.
	Float64() float64
}

// CharSequence is an indexable sequence of characters.
// Indices count runes, not bytes.
type CharSequence interface {
	// Len returns the number of characters.
	Len() int
	// CharAt returns the character at index i.
	CharAt(i int) (rune, error)
	// SubSequence returns the characters in [start, end).
	SubSequence(start, end int) (string, error)
}
