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

package builder

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"dirpx.dev/nck/apis"
	"dirpx.dev/nck/logging"
	"dirpx.dev/nck/metrics"
	"dirpx.dev/nck/registry"
)

// Builder composes loggers and registries from an apis.Config.
type Builder struct {
	// registerer receives registry collectors when metrics are enabled.
	registerer prometheus.Registerer
	// out is the log destination; nil means os.Stderr.
	out io.Writer
}

// Option configures a Builder.
type Option func(*Builder)

// WithRegisterer sets where registry collectors are registered.
// Defaults to prometheus.DefaultRegisterer.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(b *Builder) { b.registerer = reg }
}

// WithOutput sets the log destination.
func WithOutput(w io.Writer) Option {
	return func(b *Builder) { b.out = w }
}

// New creates a Builder.
func New(opts ...Option) *Builder {
	b := &Builder{registerer: prometheus.DefaultRegisterer}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// BuildLogger builds the logger for cfg.
func (b *Builder) BuildLogger(cfg apis.Config) zerolog.Logger {
	return logging.New(cfg, b.out)
}

// BuildRegistry returns the registry to use for cfg.
//
// A live prev is reconfigured in place with the new logger and metrics and
// returned, so callers holding it never observe a half-migrated registry.
// When prev is nil a new registry is built; when prev is sealed its entries
// move to a new registry without re-running lifecycle hooks.
func (b *Builder) BuildRegistry(cfg apis.Config, log zerolog.Logger, prev *registry.Registry) (*registry.Registry, error) {
	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New(cfg.MetricsNamespace)
		if err := m.Register(b.registerer); err != nil {
			return nil, fmt.Errorf("nck(builder): register metrics: %w", err)
		}
	}

	if prev != nil && !prev.Sealed() {
		prev.Instrument(log, m)
		return prev, nil
	}

	nreg := registry.New(registry.WithLogger(log), registry.WithMetrics(m))
	nreg.Adopt(prev)
	return nreg, nil
}
