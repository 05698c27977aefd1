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

// Int identifies by a 32-bit signed integer.
type Int struct {
	v int32
}

var (
	_ apis.Identifier[int32] = Int{}
	_ apis.Numeric           = Int{}
)

// NewInt wraps v.
func NewInt(v int32) Int { return Int{v: v} }

// Original returns the wrapped value.
func (i Int) Original() int32 { return i.v }

// Compare orders by the numeric value.
func (i Int) Compare(other int32) int { return cmp.Compare(i.v, other) }

// CompareTo orders i against other's original value.
func (i Int) CompareTo(other apis.Identifier[int32]) int { return i.Compare(other.Original()) }

// Equal reports whether i and other wrap the same value.
func (i Int) Equal(other apis.Identifier[int32]) bool { return i.CompareTo(other) == 0 }

// String returns "int:<value>".
func (i Int) String() string { return format(TagInt, strconv.FormatInt(int64(i.v), 10)) }

func (i Int) Int32() (int32, error) { return i.v, nil }
func (i Int) Int64() int64          { return int64(i.v) }
func (i Int) Float32() float32      { return float32(i.v) }
func (i Int) Float64() float64      { return float64(i.v) }
