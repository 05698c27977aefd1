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

package registry

import (
	"reflect"

	"dirpx.dev/nck/naming"
)

// Key identifies a registry slot. It is built from a compile-time type
// witness, so one slot exists per distinct Go type.
//
// Keys are comparable and may be used as map keys. The zero Key is invalid.
type Key struct {
	t reflect.Type
}

// KeyOf returns the key for T. T is usually an interface describing a
// capability ("Logger") or a concrete component type.
func KeyOf[T any]() Key {
	return Key{t: reflect.TypeFor[T]()}
}

// KeyFor returns the key for t.
func KeyFor(t reflect.Type) Key {
	return Key{t: t}
}

// Type returns the type the key was built from.
func (k Key) Type() reflect.Type { return k.t }

// IsZero reports whether the key is incomplete.
func (k Key) IsZero() bool { return k.t == nil }

// String returns a human-readable name such as "logging.Logger".
func (k Key) String() string {
	if k.t == nil {
		return "<empty>"
	}
	return naming.OfType(k.t)
}

// accepts reports whether an instance of dynamic type it can be stored
// under k.
func (k Key) accepts(it reflect.Type) bool {
	if k.t.Kind() == reflect.Interface {
		return it.Implements(k.t)
	}
	return it == k.t
}
