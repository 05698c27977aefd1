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

// Package metrics exposes instance registry lifecycle as prometheus
// collectors. A nil *Metrics is valid and records nothing.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Hook label values.
const (
	HookInstall   = "install"
	HookUninstall = "uninstall"
)

// Metrics holds the registry collectors.
type Metrics struct {
	installs     prometheus.Counter
	uninstalls   prometheus.Counter
	hookFailures *prometheus.CounterVec
	live         prometheus.Gauge
}

// New creates unregistered collectors under namespace.
func New(namespace string) *Metrics {
	return &Metrics{
		installs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "registry",
			Name:      "installs_total",
			Help:      "Instances installed into the registry.",
		}),
		uninstalls: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "registry",
			Name:      "uninstalls_total",
			Help:      "Instances uninstalled from the registry.",
		}),
		hookFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "registry",
			Name:      "hook_failures_total",
			Help:      "Lifecycle hooks that returned an error.",
		}, []string{"hook"}),
		live: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "registry",
			Name:      "instances",
			Help:      "Instances currently registered.",
		}),
	}
}

// Register registers the collectors with reg. Collectors already registered
// by an earlier Metrics with the same namespace are adopted, so rebuilding a
// registry keeps counting into the same series.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	var err error
	m.installs = register(reg, m.installs, &err)
	m.uninstalls = register(reg, m.uninstalls, &err)
	m.hookFailures = register(reg, m.hookFailures, &err)
	m.live = register(reg, m.live, &err)
	return err
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C, errp *error) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		*errp = errors.Join(*errp, err)
	}
	return c
}

// Installed records a successful install.
func (m *Metrics) Installed() {
	if m == nil {
		return
	}
	m.installs.Inc()
	m.live.Inc()
}

// Uninstalled records a successful uninstall.
func (m *Metrics) Uninstalled() {
	if m == nil {
		return
	}
	m.uninstalls.Inc()
	m.live.Dec()
}

// HookFailed records a hook returning an error.
func (m *Metrics) HookFailed(hook string) {
	if m == nil {
		return
	}
	m.hookFailures.WithLabelValues(hook).Inc()
}

// SetLive overwrites the live instance gauge.
func (m *Metrics) SetLive(n int) {
	if m == nil {
		return
	}
	m.live.Set(float64(n))
}
