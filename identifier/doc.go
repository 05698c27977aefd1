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

// Package identifier provides immutable identifier variants implementing
// apis.Identifier for small and large integers, floating point numbers,
// text and universally unique values.
//
// Every variant is a small comparable struct, so identifiers can be used as
// map keys and shared between goroutines without locking. Ordering and
// equality are delegated to the wrapped type:
//
//	a := identifier.NewLong(7)
//	b := identifier.NewLong(9)
//	a.CompareTo(b) // < 0
//	a.Equal(b)     // false
//
// # Textual form
//
// All variants render as "<tag>:<value>", for example "int:42",
// "string:user" or "uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8". The form is
// meant for logs and debugging; there is no parse-back contract.
//
// # Numeric projections
//
// Int, Long, Short and Double implement apis.Numeric. Widening projections
// are exact. Double truncates toward zero when projected onto an integer and
// saturates at the bounds of the target (NaN becomes zero). Long.Int32 fails
// with ErrOutOfRange instead of wrapping around.
package identifier
