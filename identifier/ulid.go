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
	"github.com/oklog/ulid/v2"

	"dirpx.dev/nck/apis"
)

// ULID identifies by a lexicographically sortable unique value. Its order
// matches both creation time and the canonical string order.
type ULID struct {
	v ulid.ULID
}

var _ apis.Identifier[ulid.ULID] = ULID{}

// NewULID wraps v.
func NewULID(v ulid.ULID) ULID { return ULID{v: v} }

// MakeULID wraps a fresh ULID using the current time and monotonic entropy.
func MakeULID() ULID { return ULID{v: ulid.Make()} }

// ParseULID parses the 26-character canonical form.
func ParseULID(s string) (ULID, error) {
	v, err := ulid.ParseStrict(s)
	if err != nil {
		return ULID{}, err
	}
	return ULID{v: v}, nil
}

func (u ULID) Original() ulid.ULID { return u.v }

func (u ULID) Compare(other ulid.ULID) int { return u.v.Compare(other) }

func (u ULID) CompareTo(other apis.Identifier[ulid.ULID]) int { return u.Compare(other.Original()) }

func (u ULID) Equal(other apis.Identifier[ulid.ULID]) bool { return u.CompareTo(other) == 0 }

// String returns "ulid:<canonical form>".
func (u ULID) String() string { return format(TagULID, u.v.String()) }
