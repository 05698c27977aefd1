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

package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/nck/metrics"
)

func TestMetrics_CountLifecycle(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	m := metrics.New("test")
	require.NoError(t, m.Register(reg))

	m.Installed()
	m.Installed()
	m.Uninstalled()
	m.HookFailed(metrics.HookInstall)

	n, err := testutil.GatherAndCount(reg,
		"test_registry_installs_total",
		"test_registry_uninstalls_total",
		"test_registry_hook_failures_total",
		"test_registry_instances",
	)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	families, err := reg.Gather()
	require.NoError(t, err)
	values := map[string]float64{}
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			switch {
			case metric.GetCounter() != nil:
				values[mf.GetName()] += metric.GetCounter().GetValue()
			case metric.GetGauge() != nil:
				values[mf.GetName()] += metric.GetGauge().GetValue()
			}
		}
	}
	assert.Equal(t, 2.0, values["test_registry_installs_total"])
	assert.Equal(t, 1.0, values["test_registry_uninstalls_total"])
	assert.Equal(t, 1.0, values["test_registry_hook_failures_total"])
	assert.Equal(t, 1.0, values["test_registry_instances"])
}

func TestMetrics_RegisterTwiceAdoptsExisting(t *testing.T) {
	reg := prometheus.NewRegistry()
	first := metrics.New("test")
	require.NoError(t, first.Register(reg))
	first.Installed()

	second := metrics.New("test")
	require.NoError(t, second.Register(reg))
	second.Installed()

	n, err := testutil.GatherAndCount(reg, "test_registry_installs_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == "test_registry_installs_total" {
			assert.Equal(t, 2.0, mf.GetMetric()[0].GetCounter().GetValue())
		}
	}
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.Installed()
		m.Uninstalled()
		m.HookFailed(metrics.HookUninstall)
		m.SetLive(3)
	})
}
