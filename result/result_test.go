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

package result_test

import (
	"errors"
	"io"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/nck/result"
)

var errBoom = errors.New("boom")

func TestSuccess(t *testing.T) {
	r := result.Success("x")

	got, err := r.Get()
	require.NoError(t, err)
	assert.Equal(t, "x", got)
	assert.True(t, r.IsSuccessful())
	assert.False(t, r.IsEmpty())
	assert.Equal(t, "x", r.OrElse("y"))
	assert.Equal(t, "Result{value=x}", r.String())
}

func TestSuccessPanicsOnNil(t *testing.T) {
	assert.PanicsWithValue(t, result.ErrNilValue, func() {
		result.Success[*int](nil)
	})
	assert.PanicsWithValue(t, result.ErrNilValue, func() {
		result.Success[error](nil)
	})
	assert.NotPanics(t, func() {
		result.Success[[]int](nil)
	})
}

func TestEmpty(t *testing.T) {
	r := result.Empty[string]()

	assert.True(t, r.IsEmpty())
	assert.True(t, r.IsSuccessful(), "empty counts as successful")
	assert.Equal(t, "y", r.OrElse("y"))
	assert.Same(t, r, result.Empty[string]())
	assert.Equal(t, "Result{empty}", r.String())

	_, ok := r.AsOptional()
	assert.False(t, ok)
}

func TestEmptyIsPerType(t *testing.T) {
	assert.True(t, result.Empty[int]().IsEmpty())
	assert.True(t, result.Empty[string]().IsEmpty())
}

func TestOfNullable(t *testing.T) {
	assert.Same(t, result.Empty[*int](), result.OfNullable[*int](nil))
	assert.True(t, result.OfNullable[*int](nil).IsEmpty())

	z := result.OfNullable("z")
	s := result.Success("z")
	assert.False(t, z.IsEmpty())
	zv, zerr := z.Get()
	sv, serr := s.Get()
	assert.Equal(t, sv, zv)
	assert.Equal(t, serr, zerr)
	assert.Equal(t, s.String(), z.String())
}

func TestFailure(t *testing.T) {
	r := result.Failure[string](errBoom)

	assert.False(t, r.IsSuccessful())
	assert.False(t, r.IsEmpty())
	assert.Equal(t, "fallback", r.OrElse("fallback"))
	assert.Equal(t, "Result{error=boom}", r.String())

	_, err := r.Unwrap()
	require.Error(t, err)
	assert.Same(t, errBoom, errors.Unwrap(err))

	var uerr *result.UnwrapError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, result.DefaultUnwrapMessage, uerr.Msg)
}

func TestUnwrapMsg(t *testing.T) {
	_, err := result.Failure[int](errBoom).UnwrapMsg("loading config")
	require.ErrorIs(t, err, errBoom)
	assert.EqualError(t, err, "loading config: boom")
}

func TestUnwrapOnEmptyReturnsZero(t *testing.T) {
	v, err := result.Empty[int]().Unwrap()
	require.NoError(t, err)
	assert.Zero(t, v)
}

func TestGetAndExpect(t *testing.T) {
	tests := []struct {
		name      string
		r         *result.Result[int]
		wantCause error
	}{
		{"failure", result.Failure[int](errBoom), errBoom},
		{"failure without cause", result.Failure[int](nil), result.ErrNoCause},
		{"empty", result.Empty[int](), result.ErrEmpty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.r.Get()
			require.ErrorIs(t, err, result.ErrNoSuchValue)
			require.ErrorIs(t, err, tt.wantCause)

			_, err = tt.r.Expect("need port")
			require.ErrorIs(t, err, result.ErrNoSuchValue)
			require.ErrorIs(t, err, tt.wantCause)
			assert.Contains(t, err.Error(), "need port")
		})
	}

	v, err := result.Success(8080).Expect("need port")
	require.NoError(t, err)
	assert.Equal(t, 8080, v)
}

func TestRecover(t *testing.T) {
	var seen error
	handler := func(err error) int {
		seen = err
		return -1
	}

	assert.Equal(t, 3, result.Success(3).Recover(handler))
	assert.Nil(t, seen)

	assert.Equal(t, -1, result.Failure[int](errBoom).Recover(handler))
	assert.Same(t, errBoom, seen)

	assert.Equal(t, -1, result.Empty[int]().Recover(handler))
	assert.ErrorIs(t, seen, result.ErrEmpty)
}

func TestOrElseGetIsLazy(t *testing.T) {
	calls := 0
	supplier := func() string {
		calls++
		return "lazy"
	}

	assert.Equal(t, "x", result.Success("x").OrElseGet(supplier))
	assert.Zero(t, calls)

	assert.Equal(t, "lazy", result.Empty[string]().OrElseGet(supplier))
	assert.Equal(t, 1, calls)
}

func TestAsOptional(t *testing.T) {
	v, ok := result.Success(5).AsOptional()
	assert.True(t, ok)
	assert.Equal(t, 5, v)

	_, ok = result.Failure[int](errBoom).AsOptional()
	assert.False(t, ok)
}

func TestFailureWithoutCause(t *testing.T) {
	r := result.Failure[int](nil)
	assert.False(t, r.IsSuccessful())
	assert.Nil(t, r.Cause())

	_, err := r.Unwrap()
	require.Error(t, err)
	assert.Nil(t, errors.Unwrap(err))
}

func TestFrom(t *testing.T) {
	n := result.From(strconv.Atoi("12"))
	assert.Equal(t, 12, n.OrElse(0))

	bad := result.From(strconv.Atoi("twelve"))
	assert.False(t, bad.IsSuccessful())
	assert.Equal(t, 0, bad.OrElse(0))

	var numErr *strconv.NumError
	assert.ErrorAs(t, bad.Cause(), &numErr)

	assert.True(t, result.From[io.Reader](nil, nil).IsEmpty())
}
