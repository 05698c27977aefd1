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
	"cmp"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"dirpx.dev/nck/apis"
	"dirpx.dev/nck/metrics"
	"dirpx.dev/nck/naming"
)

var (
	// ErrAlreadyRegistered is returned when a key already holds an instance.
	ErrAlreadyRegistered = errors.New("nck(registry): instance already registered")
	// ErrNotFound is returned when a key holds no instance.
	ErrNotFound = errors.New("nck(registry): no instance registered")
	// ErrTypeMismatch is returned when an instance does not satisfy the
	// requested type.
	ErrTypeMismatch = errors.New("nck(registry): instance type mismatch")
	// ErrSealed is returned when registering into a sealed registry.
	ErrSealed = errors.New("nck(registry): sealed registry")
	// ErrZeroKey is returned for the zero Key.
	ErrZeroKey = errors.New("nck(registry): zero key")
	// ErrNilInstance is returned when a nil instance is registered or
	// produced by a factory.
	ErrNilInstance = errors.New("nck(registry): nil instance")
	// ErrNilFactory is returned when ComputeIfAbsent is given a nil factory.
	ErrNilFactory = errors.New("nck(registry): nil factory")
	// ErrInstallFailed wraps an OnInstall error. Nothing was stored.
	ErrInstallFailed = errors.New("nck(registry): install hook failed")
	// ErrUninstallFailed wraps an OnUninstall error. The instance stays registered.
	ErrUninstallFailed = errors.New("nck(registry): uninstall hook failed")
)

// Factory produces an instance for key in ComputeIfAbsent. It runs while
// the registry holds its write lock and must not call back into the same
// registry; resolve dependencies before calling ComputeIfAbsent.
type Factory func(key Key) (apis.Initializable, error)

// Entry is a single (key, instance) association in a Registry snapshot.
type Entry struct {
	Key      Key
	Instance apis.Initializable
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for lifecycle events.
func WithLogger(log zerolog.Logger) Option {
	return func(r *Registry) { r.log.Store(&log) }
}

// WithMetrics sets the collectors updated on lifecycle events.
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Registry) { r.metrics.Store(m) }
}

// Registry maps keys to live instances.
type Registry struct {
	// mu guards data and seq; hooks run under the write lock.
	mu sync.RWMutex
	// data maps a key to its slot.
	data map[Key]slot
	// seq orders slots by registration.
	seq uint64
	// sealed rejects further registrations when true.
	sealed atomic.Bool

	// log and metrics are swapped by Instrument while the registry is live.
	log     atomic.Pointer[zerolog.Logger]
	metrics atomic.Pointer[metrics.Metrics]
}

type slot struct {
	inst apis.Initializable
	seq  uint64
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{data: make(map[Key]slot)}
	nop := zerolog.Nop()
	r.log.Store(&nop)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register runs inst.OnInstall and stores inst under key.
//
// It fails with ErrAlreadyRegistered when key is occupied, ErrTypeMismatch
// when inst is not assignable to the key type, and ErrInstallFailed when
// the hook fails; in every failure case nothing is stored.
func (r *Registry) Register(key Key, inst apis.Initializable) error {
	if err := validate(key, inst); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.data[key]; ok {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, key)
	}
	return r.installLocked(key, inst)
}

// Lookup returns the instance stored under key.
func (r *Registry) Lookup(key Key) (apis.Initializable, error) {
	r.mu.RLock()
	s, ok := r.data[key]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return s.inst, nil
}

// Has reports whether key holds an instance.
func (r *Registry) Has(key Key) bool {
	r.mu.RLock()
	_, ok := r.data[key]
	r.mu.RUnlock()
	return ok
}

// Unregister runs the stored instance's OnUninstall and removes it.
// When the hook fails the instance stays registered.
func (r *Registry) Unregister(key Key) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.data[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return r.uninstallLocked(key, s.inst)
}

// ComputeIfAbsent returns the instance under key, or produces one with
// factory, installs it exactly like Register and returns it. The check,
// factory call, install hook and insertion happen in one critical section,
// so concurrent callers for the same key observe a single instance and the
// factory runs at most once per successful install.
//
// factory runs under the write lock. A factory that looks up another
// instance in the same registry deadlocks.
func (r *Registry) ComputeIfAbsent(key Key, factory Factory) (apis.Initializable, error) {
	if key.IsZero() {
		return nil, ErrZeroKey
	}
	if factory == nil {
		return nil, ErrNilFactory
	}
	if inst, ok := r.lookup(key); ok {
		return inst, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if s, ok := r.data[key]; ok {
		return s.inst, nil
	}
	if r.Sealed() {
		return nil, fmt.Errorf("%w: %s", ErrSealed, key)
	}

	inst, err := factory(key)
	if err != nil {
		return nil, fmt.Errorf("nck(registry): factory for %s: %w", key, err)
	}
	if err := validate(key, inst); err != nil {
		return nil, err
	}
	if err := r.installLocked(key, inst); err != nil {
		return nil, err
	}
	return inst, nil
}

// Keys returns the registered keys in registration order.
func (r *Registry) Keys() []Key {
	entries := r.Entries()
	keys := make([]Key, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
	}
	return keys
}

// Entries returns a snapshot of all entries in registration order.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.entriesLocked()
}

// entriesLocked returns the entries in registration order. r.mu must be held.
func (r *Registry) entriesLocked() []Entry {
	type ordered struct {
		Entry
		seq uint64
	}
	items := make([]ordered, 0, len(r.data))
	for k, s := range r.data {
		items = append(items, ordered{Entry: Entry{Key: k, Instance: s.inst}, seq: s.seq})
	}
	slices.SortFunc(items, func(a, b ordered) int { return cmp.Compare(a.seq, b.seq) })

	out := make([]Entry, len(items))
	for i, it := range items {
		out[i] = it.Entry
	}
	return out
}

// Count returns the number of registered instances.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.data)
}

// Sealed reports whether the registry is sealed (no further registrations allowed).
func (r *Registry) Sealed() bool { return r.sealed.Load() }

// Seal prevents further registrations. It is idempotent and safe for concurrent use.
// Returns true if this call changed the state from unsealed to sealed.
func (r *Registry) Seal() bool { return !r.sealed.Swap(true) }

// Reset uninstalls every instance in reverse registration order. Instances
// whose hook fails stay registered; their errors are joined.
func (r *Registry) Reset() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := r.entriesLocked()
	var errs []error
	for i := len(entries) - 1; i >= 0; i-- {
		if err := r.uninstallLocked(entries[i].Key, entries[i].Instance); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Adopt moves every entry of prev into r without running hooks, keeping
// prev's registration order after r's own entries, then seals prev so late
// writers to it fail instead of being lost. Keys already present in r are
// left in prev.
//
// Readers of prev see it emptied before r holds the entries, so Adopt is
// for registries other goroutines no longer use. To change the logger or
// metrics of a live registry use Instrument.
func (r *Registry) Adopt(prev *Registry) {
	if prev == nil || prev == r {
		return
	}
	moved := prev.drain(r)

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range moved {
		r.seq++
		r.data[e.Key] = slot{inst: e.Instance, seq: r.seq}
	}
	r.meter().SetLive(len(r.data))
}

// Instrument replaces the logger and metrics of r. Entries and hooks are
// untouched, so it is safe while other goroutines use r. A nil m stops
// recording metrics.
func (r *Registry) Instrument(log zerolog.Logger, m *metrics.Metrics) {
	r.log.Store(&log)
	r.metrics.Store(m)
	m.SetLive(r.Count())
}

// drain seals r and removes the entries whose keys dst does not hold.
func (r *Registry) drain(dst *Registry) []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sealed.Store(true)

	entries := r.entriesLocked()
	moved := entries[:0]
	for _, e := range entries {
		if dst.Has(e.Key) {
			continue
		}
		delete(r.data, e.Key)
		moved = append(moved, e)
	}
	r.meter().SetLive(len(r.data))
	return moved
}

func (r *Registry) logger() *zerolog.Logger { return r.log.Load() }

func (r *Registry) meter() *metrics.Metrics { return r.metrics.Load() }

func (r *Registry) lookup(key Key) (apis.Initializable, bool) {
	r.mu.RLock()
	s, ok := r.data[key]
	r.mu.RUnlock()
	return s.inst, ok
}

// installLocked runs the install hook and stores inst. r.mu must be held.
func (r *Registry) installLocked(key Key, inst apis.Initializable) error {
	if r.Sealed() {
		return fmt.Errorf("%w: %s", ErrSealed, key)
	}
	if err := inst.OnInstall(); err != nil {
		r.meter().HookFailed(metrics.HookInstall)
		r.logger().Warn().Err(err).Str("key", key.String()).Str("component", naming.Of(inst)).Msg("install hook failed")
		return fmt.Errorf("%w: %s: %w", ErrInstallFailed, key, err)
	}
	r.seq++
	r.data[key] = slot{inst: inst, seq: r.seq}
	r.meter().Installed()
	r.logger().Debug().Str("key", key.String()).Str("component", naming.Of(inst)).Msg("instance installed")
	return nil
}

// uninstallLocked runs the uninstall hook and removes key. r.mu must be held.
func (r *Registry) uninstallLocked(key Key, inst apis.Initializable) error {
	if err := inst.OnUninstall(); err != nil {
		r.meter().HookFailed(metrics.HookUninstall)
		r.logger().Warn().Err(err).Str("key", key.String()).Str("component", naming.Of(inst)).Msg("uninstall hook failed")
		return fmt.Errorf("%w: %s: %w", ErrUninstallFailed, key, err)
	}
	delete(r.data, key)
	r.meter().Uninstalled()
	r.logger().Debug().Str("key", key.String()).Str("component", naming.Of(inst)).Msg("instance uninstalled")
	return nil
}

// validate checks key and inst before any lock is taken.
func validate(key Key, inst apis.Initializable) error {
	if key.IsZero() {
		return ErrZeroKey
	}
	if inst == nil || isNilPointer(inst) {
		return fmt.Errorf("%w: %s", ErrNilInstance, key)
	}
	if it := reflect.TypeOf(inst); !key.accepts(it) {
		return fmt.Errorf("%w: %s cannot be stored under %s", ErrTypeMismatch, naming.OfType(it), key)
	}
	return nil
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
