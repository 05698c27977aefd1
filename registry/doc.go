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

// Package registry provides a concurrency-safe table holding at most one
// live apis.Initializable instance per Key, with install and uninstall hooks
// run in step with membership.
//
// Typical usage with the typed helpers:
//
//	reg := registry.New(registry.WithLogger(log))
//	if err := registry.Register[Logger](reg, newConsoleLogger()); err != nil {
//	    return err
//	}
//	l, err := registry.Get[Logger](reg)
//
// # Concurrency
//
// All methods are safe for concurrent use. Register, Unregister,
// ComputeIfAbsent and Reset hold the write lock while lifecycle hooks run,
// so a hook observes a stable table and ComputeIfAbsent is atomic end to
// end. Hooks must therefore not call back into the same registry.
//
// # Sealing
//
// Seal prevents further registrations once a process is fully configured.
// Lookups and Unregister keep working on a sealed registry.
package registry
