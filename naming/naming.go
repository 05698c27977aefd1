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

// Package naming derives stable, human-readable names for registry keys and
// components. Names are used in error messages, log fields and metrics; they
// are not identities.
//
// Resolution order for values:
//  1. If the value implements apis.Namer, use v.EntityName().
//  2. Otherwise, derive "pkg.Type" from the dynamic type.
package naming

import (
	"path"
	"reflect"
	"strings"
	"sync"

	"dirpx.dev/nck/apis"
)

// typeNames caches resolved names by type.
var typeNames sync.Map // map[reflect.Type]string

// Of returns the name of v. Nil yields "<nil>".
func Of(v any) string {
	if v == nil {
		return "<nil>"
	}
	if n, ok := v.(apis.Namer); ok {
		if name := n.EntityName(); name != "" {
			return name
		}
	}
	return OfType(reflect.TypeOf(v))
}

// OfType returns "pkg.Type" for named types, with one "*" per pointer level
// and generic instantiation parameters stripped. Builtin types keep their
// bare name ("int") and unnamed composite types use reflect's spelling.
func OfType(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	if v, ok := typeNames.Load(t); ok {
		return v.(string)
	}
	name := byType(t)
	typeNames.Store(t, name)
	return name
}

func byType(t reflect.Type) string {
	var stars strings.Builder
	for t.Kind() == reflect.Pointer && t.Name() == "" {
		stars.WriteByte('*')
		t = t.Elem()
	}
	if t.Name() == "" {
		return stars.String() + t.String()
	}
	name := stripTypeParams(t.Name())
	if p := t.PkgPath(); p != "" {
		name = path.Base(p) + "." + name
	}
	return stars.String() + name
}

// stripTypeParams removes generic type instantiation suffix: "T[int,string]" -> "T".
func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}
