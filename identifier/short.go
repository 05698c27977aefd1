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

// Short identifies by a 16-bit signed integer. All of its numeric
// projections are lossless.
type Short struct {
	v int16
}

var (
	_ apis.Identifier[int16] = Short{}
	_ apis.Numeric           = Short{}
)

func NewShort(v int16) Short { return Short{v: v} }

func (s Short) Original() int16 { return s.v }

func (s Short) Compare(other int16) int { return cmp.Compare(s.v, other) }

func (s Short) CompareTo(other apis.Identifier[int16]) int { return s.Compare(other.Original()) }

func (s Short) Equal(other apis.Identifier[int16]) bool { return s.CompareTo(other) == 0 }

// String returns "short:<value>".
func (s Short) String() string { return format(TagShort, strconv.FormatInt(int64(s.v), 10)) }

func (s Short) Int32() (int32, error) { return int32(s.v), nil }
func (s Short) Int64() int64          { return int64(s.v) }
func (s Short) Float32() float32      { return float32(s.v) }
func (s Short) Float64() float64      { return float64(s.v) }
