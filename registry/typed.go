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
	"fmt"

	"dirpx.dev/nck/apis"
	"dirpx.dev/nck/naming"
)

// Register stores inst under KeyOf[T]. Pass T explicitly to register under
// an interface type:
//
//	registry.Register[Logger](reg, console)
func Register[T apis.Initializable](r *Registry, inst T) error {
	return r.Register(KeyOf[T](), inst)
}

// Get returns the instance stored under KeyOf[T].
func Get[T apis.Initializable](r *Registry) (T, error) {
	return Lookup[T](r, KeyOf[T]())
}

// Lookup returns the instance stored under key as a T. Keys may be coarser
// than T (an interface key holding a concrete component); ErrTypeMismatch
// is returned when the stored instance is not a T.
func Lookup[T apis.Initializable](r *Registry, key Key) (T, error) {
	var zero T
	inst, err := r.Lookup(key)
	if err != nil {
		return zero, err
	}
	v, ok := inst.(T)
	if !ok {
		return zero, fmt.Errorf("%w: instance under %s is %s, not %s", ErrTypeMismatch, key, naming.Of(inst), KeyOf[T]())
	}
	return v, nil
}

// Has reports whether KeyOf[T] holds an instance.
func Has[T any](r *Registry) bool {
	return r.Has(KeyOf[T]())
}

// Unregister uninstalls and removes the instance stored under KeyOf[T].
func Unregister[T any](r *Registry) error {
	return r.Unregister(KeyOf[T]())
}

// ComputeIfAbsent returns the instance under KeyOf[T], creating and
// installing one with factory when the key is empty.
func ComputeIfAbsent[T apis.Initializable](r *Registry, factory func() (T, error)) (T, error) {
	var zero T
	if factory == nil {
		return zero, ErrNilFactory
	}
	key := KeyOf[T]()
	inst, err := r.ComputeIfAbsent(key, func(Key) (apis.Initializable, error) {
		v, err := factory()
		if err != nil {
			return nil, err
		}
		return v, nil
	})
	if err != nil {
		return zero, err
	}
	v, ok := inst.(T)
	if !ok {
		return zero, fmt.Errorf("%w: instance under %s is %s", ErrTypeMismatch, key, naming.Of(inst))
	}
	return v, nil
}
