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

// Package nck provides small, interlocking primitives shared across a host
// application:
//
//   - identifier: immutable, comparable wrappers around integers, floats,
//     text, UUIDs and ULIDs with a stable "<tag>:<value>" textual form.
//   - result: a Result that is a success, a failure or empty, so expected
//     failure paths travel as values and are resolved with Recover/OrElse.
//   - registry: a table holding at most one live instance per type key, with
//     install/uninstall hooks run in step with membership.
//
// This package owns the process-wide registry and the configuration around
// it.
//
// # Design
//
// The core of nck is a read-mostly global snapshot (state). The snapshot
// holds four things:
//
//   - Config: logging and metrics knobs (apis.Config), loaded from
//     defaults, functional options or a TOML file.
//
//   - Logger: a zerolog.Logger built from Config. The registry logs
//     installs and uninstalls at debug level and hook failures at warn.
//
//   - Registry: the process-wide *registry.Registry. Components are
//     registered under a key derived from a Go type at compile time:
//
//     nck.Register[Logger](console)
//     l, err := nck.Instance[Logger]()
//
//   - Builder: a pluggable factory that builds the Logger and Registry for
//     a given Config. When the configuration changes, the builder moves
//     registered instances into the new Registry without running their
//     hooks again.
//
// All of these live inside a single immutable struct. The package holds an
// atomic pointer to the current state. Readers load that pointer and never
// mutate it; writers build a brand-new state under a build mutex and swap
// it in.
//
// # Lifecycle
//
// The global state is initialized with defaults at process start. A binary
// typically calls Configure or SetConfig once, registers its components,
// and optionally seals the registry:
//
//	if err := nck.Configure("/etc/host/nck.toml"); err != nil {
//	    return err
//	}
//	if err := nck.Register[Cache](newCache()); err != nil {
//	    return err
//	}
//	nck.Registry().Seal()
//
// Tests call Reset to uninstall everything between cases.
//
// # Pinning
//
// SetRegistry installs a caller-owned registry and pins it: SetConfig and
// SetBuilder stop rebuilding it until UnpinRegistry is called.
//
// # Scope
//
// nck is not a dependency-injection container. It does no constructor
// wiring and knows no scope other than "one instance per type key".
package nck
