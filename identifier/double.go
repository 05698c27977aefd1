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
	"strconv"

	"dirpx.dev/nck/apis"
)

// Double identifies by a 64-bit float.
//
// Ordering follows cmp.Compare: NaN is equal to NaN and less than any other
// value, and -0 equals +0. It is not the bitwise total order used by some
// comparators, which sorts NaN after every other value and -0 before +0.
// Use Equal rather than == when NaN may occur.
type Double struct {
	v float64
}

var (
	_ apis.Identifier[float64] = Double{}
	_ apis.Numeric             = Double{}
)

// NewDouble wraps v.
func NewDouble(v float64) Double { return Double{v: v} }

// Original returns the wrapped value.
func (d Double) Original() float64 { return d.v }

// Compare orders by the numeric value.
func (d Double) Compare(other float64) int { return cmp.Compare(d.v, other) }

// CompareTo orders d against other's original value.
func (d Double) CompareTo(other apis.Identifier[float64]) int { return d.Compare(other.Original()) }

// Equal reports whether d and other compare as equal.
func (d Double) Equal(other apis.Identifier[float64]) bool { return d.CompareTo(other) == 0 }

// String returns "double:<value>" using the shortest exact representation.
func (d Double) String() string { return format(TagDouble, strconv.FormatFloat(d.v, 'g', -1, 64)) }

// Int32 truncates toward zero, saturating at the int32 bounds. It never fails.
func (d Double) Int32() (int32, error) { return truncInt32(d.v), nil }

// Int64 truncates toward zero, saturating at the int64 bounds.
func (d Double) Int64() int64 { return truncInt64(d.v) }

// Float32 rounds to the nearest float32.
func (d Double) Float32() float32 { return float32(d.v) }

func (d Double) Float64() float64 { return d.v }
