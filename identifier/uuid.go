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
	"encoding/binary"

	"github.com/google/uuid"

	"dirpx.dev/nck/apis"
)

// UUID identifies by a 128-bit universally unique value.
//
// Ordering compares the most significant 64 bits, then the least significant
// 64 bits, each read as a signed two's-complement integer. This differs from
// the lexicographic order of the canonical string when the top bit is set.
type UUID struct {
	v uuid.UUID
}

var _ apis.Identifier[uuid.UUID] = UUID{}

// NewUUID wraps v.
func NewUUID(v uuid.UUID) UUID { return UUID{v: v} }

// NewRandomUUID wraps a fresh version 4 UUID.
func NewRandomUUID() (UUID, error) {
	v, err := uuid.NewRandom()
	if err != nil {
		return UUID{}, err
	}
	return UUID{v: v}, nil
}

// ParseUUID parses s in any form accepted by uuid.Parse.
func ParseUUID(s string) (UUID, error) {
	v, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, err
	}
	return UUID{v: v}, nil
}

// Original returns the wrapped UUID.
func (u UUID) Original() uuid.UUID { return u.v }

// Compare orders by the signed (msb, lsb) interpretation.
func (u UUID) Compare(other uuid.UUID) int {
	if c := cmp.Compare(msb(u.v), msb(other)); c != 0 {
		return c
	}
	return cmp.Compare(lsb(u.v), lsb(other))
}

// CompareTo orders u against other's original value.
func (u UUID) CompareTo(other apis.Identifier[uuid.UUID]) int { return u.Compare(other.Original()) }

// Equal reports whether u and other wrap the same UUID.
func (u UUID) Equal(other apis.Identifier[uuid.UUID]) bool { return u.CompareTo(other) == 0 }

// String returns "uuid:<canonical form>".
func (u UUID) String() string { return format(TagUUID, u.v.String()) }

func msb(v uuid.UUID) int64 { return int64(binary.BigEndian.Uint64(v[:8])) }
func lsb(v uuid.UUID) int64 { return int64(binary.BigEndian.Uint64(v[8:])) }
