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
	"errors"
	"fmt"
	"math"
)

var (
	// ErrOutOfRange is returned when a numeric identifier cannot be narrowed
	// into a smaller integer representation without losing its value.
	ErrOutOfRange = errors.New("nck(identifier): value out of range")
	// ErrIndexOutOfRange is returned by character access outside the bounds
	// of a String identifier.
	ErrIndexOutOfRange = errors.New("nck(identifier): index out of range")
)

// Tags used as the prefix of the textual form.
const (
	TagInt    = "int"
	TagLong   = "long"
	TagShort  = "short"
	TagDouble = "double"
	TagString = "string"
	TagUUID   = "uuid"
	TagULID   = "ulid"
)

// format renders the "<tag>:<value>" textual form.
func format(tag, value string) string {
	return tag + ":" + value
}

// narrowInt64 converts v to int32 or reports ErrOutOfRange.
func narrowInt64(v int64) (int32, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %d does not fit in int32", ErrOutOfRange, v)
	}
	return int32(v), nil
}

// truncInt32 truncates f toward zero, saturating at the int32 bounds.
func truncInt32(f float64) int32 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	}
	return int32(f)
}

// truncInt64 truncates f toward zero, saturating at the int64 bounds.
func truncInt64(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= float64(math.MaxInt64):
		return math.MaxInt64
	case f <= float64(math.MinInt64):
		return math.MinInt64
	}
	return int64(f)
}
