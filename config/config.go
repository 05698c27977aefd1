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

package config

import (
	"dirpx.dev/nck/apis"
)

const (
	// DefaultLogLevel represents the default for LogLevel.
	DefaultLogLevel = "info"
	// DefaultLogFormat represents the default for LogFormat.
	DefaultLogFormat = FormatConsole
	// DefaultMetricsEnabled represents the default for MetricsEnabled.
	// Collectors are only registered when a binary opts in.
	DefaultMetricsEnabled = false
	// DefaultMetricsNamespace represents the default for MetricsNamespace.
	DefaultMetricsNamespace = "nck"
)

// Log formats understood by the logging package.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return normalize(cfg)
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		LogLevel:         DefaultLogLevel,
		LogFormat:        DefaultLogFormat,
		MetricsEnabled:   DefaultMetricsEnabled,
		MetricsNamespace: DefaultMetricsNamespace,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithLogLevel sets the LogLevel option.
func WithLogLevel(level string) Option {
	return func(c *apis.Config) {
		c.LogLevel = level
	}
}

// WithLogFormat sets the LogFormat option.
// Unknown formats reset to the default.
func WithLogFormat(format string) Option {
	return func(c *apis.Config) {
		c.LogFormat = format
	}
}

// WithMetrics enables registry metrics under namespace.
// An empty namespace keeps the current one.
func WithMetrics(namespace string) Option {
	return func(c *apis.Config) {
		c.MetricsEnabled = true
		if namespace != "" {
			c.MetricsNamespace = namespace
		}
	}
}

// WithoutMetrics disables registry metrics.
func WithoutMetrics() Option {
	return func(c *apis.Config) {
		c.MetricsEnabled = false
	}
}

// normalize replaces blank or unknown values with defaults.
func normalize(cfg apis.Config) apis.Config {
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	switch cfg.LogFormat {
	case FormatConsole, FormatJSON:
	default:
		cfg.LogFormat = DefaultLogFormat
	}
	if cfg.MetricsNamespace == "" {
		cfg.MetricsNamespace = DefaultMetricsNamespace
	}
	return cfg
}
