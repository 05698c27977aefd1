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

package result

import "errors"

var (
	// ErrNilValue is the panic value of Success when given an absent value.
	ErrNilValue = errors.New("nck(result): Success called with a nil value; use OfNullable")
	// ErrNoSuchValue is returned by Get and Expect when there is no value.
	ErrNoSuchValue = errors.New("nck(result): no such value")
	// ErrEmpty is the cause passed to Recover handlers, and chained by Get
	// and Expect, when the result is empty.
	ErrEmpty = errors.New("result is empty")
	// ErrNoCause stands in for the cause of a failure created without one.
	ErrNoCause = errors.New("result failed without a cause")
)

// DefaultUnwrapMessage is the message of the error returned by Unwrap.
const DefaultUnwrapMessage = "unwrap a result with an error"

// UnwrapError is returned by Unwrap and UnwrapMsg on a failed result.
// Its cause is the original failure cause and may be nil.
type UnwrapError struct {
	Msg   string
	Cause error
}

func (e *UnwrapError) Error() string {
	if e.Cause == nil {
		return e.Msg
	}
	return e.Msg + ": " + e.Cause.Error()
}

// Unwrap returns the original failure cause.
func (e *UnwrapError) Unwrap() error { return e.Cause }
