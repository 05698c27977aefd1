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

package nck

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"dirpx.dev/nck/apis"
	"dirpx.dev/nck/builder"
	"dirpx.dev/nck/config"
	"dirpx.dev/nck/registry"
)

// init initializes the global nck state.
func init() {
	// Initialize state with default cfg, log, and reg.
	s := &state{cfg: config.DefaultConfig(), bld: builder.New()}
	s.log = s.bld.BuildLogger(s.cfg)
	reg, err := s.bld.BuildRegistry(s.cfg, s.log, nil)
	if err != nil {
		panic(err)
	}
	s.reg = reg
	// Store the initial state atomically.
	st.Store(s)
}

var (
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("nck: builder returned nil registry")
)

// Builder composes the logger and registry of the global state.
// *builder.Builder is the default implementation.
type Builder interface {
	// BuildLogger constructs the logger for cfg.
	BuildLogger(cfg apis.Config) zerolog.Logger
	// BuildRegistry returns the registry for cfg. prev is the registry
	// currently published (nil on first build); other goroutines keep using
	// it until the result is published, so implementations should
	// reconfigure prev in place rather than move its entries.
	BuildRegistry(cfg apis.Config, log zerolog.Logger, prev *registry.Registry) (*registry.Registry, error)
}

// Register stores inst in the global registry under the key of T.
// This is a convenience wrapper around registry.Register.
func Register[T apis.Initializable](inst T) error {
	return registry.Register(st.Load().reg, inst)
}

// Instance returns the instance registered under the key of T.
// This is a convenience wrapper around registry.Get.
func Instance[T apis.Initializable]() (T, error) {
	return registry.Get[T](st.Load().reg)
}

// MustInstance is Instance that panics when no T is registered.
func MustInstance[T apis.Initializable]() T {
	v, err := Instance[T]()
	if err != nil {
		panic(err)
	}
	return v
}

// HasInstance reports whether an instance is registered under the key of T.
func HasInstance[T any]() bool {
	return registry.Has[T](st.Load().reg)
}

// Unregister uninstalls and removes the instance registered under the key of T.
func Unregister[T any]() error {
	return registry.Unregister[T](st.Load().reg)
}

// ComputeIfAbsent returns the instance registered under the key of T,
// creating and installing one with factory when there is none.
func ComputeIfAbsent[T apis.Initializable](factory func() (T, error)) (T, error) {
	return registry.ComputeIfAbsent(st.Load().reg, factory)
}

// Reset uninstalls every instance of the global registry in reverse
// registration order. Tests call it to start from an empty registry.
func Reset() error {
	return st.Load().reg.Reset()
}

// Config returns the global nck configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global nck configuration to cfg.
// It rebuilds the logger and, unless pinned, reconfigures the registry.
// Registered instances stay registered and their hooks do not run again.
func SetConfig(cfg apis.Config) error {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	return publish(old, cfg, old.bld, old.reg, old.preg)
}

// Configure loads a TOML configuration file and applies it with SetConfig.
func Configure(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	return SetConfig(cfg)
}

// Logger returns the global nck logger.
func Logger() zerolog.Logger {
	return st.Load().log
}

// Registry returns the global nck registry.
func Registry() *registry.Registry {
	return st.Load().reg
}

// SetRegistry sets the global registry to reg and pins it, so later
// configuration changes do not rebuild it. Instances of the previous
// registry stay there; callers own their teardown.
func SetRegistry(reg *registry.Registry) {
	if reg == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(&state{cfg: old.cfg, log: old.log, reg: reg, bld: old.bld, preg: true})
}

// SetBuilder sets the global builder to b and rebuilds the logger and,
// unless pinned, reconfigures the registry.
func SetBuilder(b Builder) error {
	if b == nil {
		return nil
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	return publish(old, old.cfg, b, old.reg, old.preg)
}

// IsRegistryPinned returns whether the global registry is pinned.
func IsRegistryPinned() bool {
	return st.Load().preg
}

// UnpinRegistry lets configuration changes rebuild the global registry again.
func UnpinRegistry() {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(&state{cfg: old.cfg, log: old.log, reg: old.reg, bld: old.bld, preg: false})
}

// publish builds a new state from cfg and b and stores it. buildMu must be held.
func publish(old *state, cfg apis.Config, b Builder, reg *registry.Registry, pinned bool) error {
	log := b.BuildLogger(cfg)
	nreg := reg
	if !pinned {
		var err error
		if nreg, err = b.BuildRegistry(cfg, log, old.reg); err != nil {
			return err
		}
		if nreg == nil {
			return ErrNilRegistry
		}
	}

	// Store the new state atomically.
	st.Store(&state{cfg: cfg, log: log, reg: nreg, bld: b, preg: pinned})
	return nil
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global nck state.
var st atomic.Pointer[state]

// state is the global nck state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global configuration.
	cfg apis.Config
	// log is the global logger.
	log zerolog.Logger
	// reg is the global registry.
	reg *registry.Registry
	// bld is the global builder.
	bld Builder
	// preg indicates whether the registry is pinned.
	preg bool
}
