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

// Long identifies by a 64-bit signed integer.
type Long struct {
	v int64
}

var (
	_ apis.Identifier[int64] = Long{}
	_ apis.Numeric           = Long{}
)

// NewLong wraps v.
func NewLong(v int64) Long { return Long{v: v} }

// Original returns the wrapped value.
func (l Long) Original() int64 { return l.v }

// Compare orders by the numeric value.
func (l Long) Compare(other int64) int { return cmp.Compare(l.v, other) }

// CompareTo orders l against other's original value.
func (l Long) CompareTo(other apis.Identifier[int64]) int { return l.Compare(other.Original()) }

// Equal reports whether l and other wrap the same value.
func (l Long) Equal(other apis.Identifier[int64]) bool { return l.CompareTo(other) == 0 }

// String returns "long:<value>".
func (l Long) String() string { return format(TagLong, strconv.FormatInt(l.v, 10)) }

// Int32 returns the value as int32, or ErrOutOfRange when it does not fit.
func (l Long) Int32() (int32, error) { return narrowInt64(l.v) }

func (l Long) Int64() int64     { return l.v }
func (l Long) Float32() float32 { return float32(l.v) }
func (l Long) Float64() float64 { return float64(l.v) }
