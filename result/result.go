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

// Package result provides Result, a value that is exactly one of a success
// holding a present value, a failure holding an error cause, or empty.
//
// Result lets expected failure paths travel as values and be resolved with
// Recover or OrElse instead of being checked at every step:
//
//	r := result.From(strconv.Atoi(s))
//	n := r.OrElse(0)
//
// Results are immutable and safe to share between goroutines.
package result

import (
	"fmt"
	"reflect"
	"sync"
)

type kind uint8

const (
	kindEmpty kind = iota
	kindSuccess
	kindFailure
)

// Result is a success, a failure or empty. Results are always handled
// through a pointer; the zero Result is not valid.
type Result[T any] struct {
	kind  kind
	value T
	cause error
}

// empties holds the shared empty sentinel of each instantiated T.
var empties sync.Map // map[reflect.Type]any (*Result[T])

// Empty returns the shared empty result for T. Every call with the same T
// returns the same pointer.
func Empty[T any]() *Result[T] {
	key := reflect.TypeFor[T]()
	if r, ok := empties.Load(key); ok {
		return r.(*Result[T])
	}
	r, _ := empties.LoadOrStore(key, &Result[T]{kind: kindEmpty})
	return r.(*Result[T])
}

// Success returns a result holding v. It panics with ErrNilValue when v is
// absent (a nil pointer, interface, func, chan or unsafe pointer); callers
// holding a possibly absent value should use OfNullable.
func Success[T any](v T) *Result[T] {
	if isNil(v) {
		panic(ErrNilValue)
	}
	return &Result[T]{kind: kindSuccess, value: v}
}

// OfNullable returns Empty when v is absent and a success otherwise.
func OfNullable[T any](v T) *Result[T] {
	if isNil(v) {
		return Empty[T]()
	}
	return &Result[T]{kind: kindSuccess, value: v}
}

// Failure returns a failed result. cause may be nil.
func Failure[T any](cause error) *Result[T] {
	return &Result[T]{kind: kindFailure, cause: cause}
}

// From converts a (value, error) pair: a non-nil err yields a failure,
// otherwise the value goes through OfNullable.
func From[T any](v T, err error) *Result[T] {
	if err != nil {
		return Failure[T](err)
	}
	return OfNullable(v)
}

// Value returns the held value, or the zero value when there is none.
func (r *Result[T]) Value() T { return r.value }

// Cause returns the failure cause, or nil.
func (r *Result[T]) Cause() error { return r.cause }

// Unwrap returns the value of a success. A failure yields an *UnwrapError
// chaining the original cause.
//
// An empty result returns the zero value and a nil error. Use Get or Expect
// when absence must be reported as an error.
func (r *Result[T]) Unwrap() (T, error) {
	return r.UnwrapMsg(DefaultUnwrapMessage)
}

// UnwrapMsg is Unwrap with a custom error message.
func (r *Result[T]) UnwrapMsg(msg string) (T, error) {
	if r.kind == kindFailure {
		var zero T
		return zero, &UnwrapError{Msg: msg, Cause: r.cause}
	}
	return r.value, nil
}

// Get returns the value of a success. Failures and empty results yield an
// error matching ErrNoSuchValue and chaining the cause (or ErrEmpty).
func (r *Result[T]) Get() (T, error) {
	var zero T
	switch r.kind {
	case kindSuccess:
		return r.value, nil
	case kindFailure:
		return zero, fmt.Errorf("%w: result contains an error: %w", ErrNoSuchValue, r.failureCause())
	default:
		return zero, fmt.Errorf("%w: %w", ErrNoSuchValue, ErrEmpty)
	}
}

// Expect is Get with msg included in the error.
func (r *Result[T]) Expect(msg string) (T, error) {
	var zero T
	switch r.kind {
	case kindSuccess:
		return r.value, nil
	case kindFailure:
		return zero, fmt.Errorf("%w: %s: %w", ErrNoSuchValue, msg, r.failureCause())
	default:
		return zero, fmt.Errorf("%w: %s: %w", ErrNoSuchValue, msg, ErrEmpty)
	}
}

// Recover returns the value of a success. Otherwise it returns handler's
// result for the failure cause, or for ErrEmpty when the result is empty.
func (r *Result[T]) Recover(handler func(error) T) T {
	switch r.kind {
	case kindSuccess:
		return r.value
	case kindFailure:
		return handler(r.failureCause())
	default:
		return handler(ErrEmpty)
	}
}

// OrElse returns the value of a success, or v.
func (r *Result[T]) OrElse(v T) T {
	return r.Recover(func(error) T { return v })
}

// OrElseGet returns the value of a success, or the result of supplier.
func (r *Result[T]) OrElseGet(supplier func() T) T {
	return r.Recover(func(error) T { return supplier() })
}

// IsEmpty reports whether r is the shared empty result for T.
func (r *Result[T]) IsEmpty() bool { return r == Empty[T]() }

// IsSuccessful reports whether r is not a failure. An empty result counts
// as successful even though it holds no value.
func (r *Result[T]) IsSuccessful() bool { return r.kind != kindFailure }

// AsOptional returns the value and true for a success, and false for
// failures and empty results.
func (r *Result[T]) AsOptional() (T, bool) {
	if r.kind != kindSuccess {
		var zero T
		return zero, false
	}
	return r.value, true
}

func (r *Result[T]) String() string {
	switch r.kind {
	case kindSuccess:
		return fmt.Sprintf("Result{value=%v}", r.value)
	case kindFailure:
		return fmt.Sprintf("Result{error=%v}", r.cause)
	default:
		return "Result{empty}"
	}
}

func (r *Result[T]) failureCause() error {
	if r.cause == nil {
		return ErrNoCause
	}
	return r.cause
}

// isNil reports whether v holds an absent value. Nil slices and maps are
// usable values in Go and are not treated as absent.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
