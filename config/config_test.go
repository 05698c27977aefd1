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

package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dirpx.dev/nck/apis"
	"dirpx.dev/nck/config"
)

func TestDefaultConfigValues(t *testing.T) {
	got := config.DefaultConfig()

	if got.LogLevel != config.DefaultLogLevel {
		t.Fatalf("LogLevel = %q, want %q", got.LogLevel, config.DefaultLogLevel)
	}
	if got.LogFormat != config.DefaultLogFormat {
		t.Fatalf("LogFormat = %q, want %q", got.LogFormat, config.DefaultLogFormat)
	}
	if got.MetricsEnabled != config.DefaultMetricsEnabled {
		t.Fatalf("MetricsEnabled = %v, want %v", got.MetricsEnabled, config.DefaultMetricsEnabled)
	}
	if got.MetricsNamespace != config.DefaultMetricsNamespace {
		t.Fatalf("MetricsNamespace = %q, want %q", got.MetricsNamespace, config.DefaultMetricsNamespace)
	}
}

func TestNewConfig_NoOptions_EqualsDefault(t *testing.T) {
	def := config.DefaultConfig()
	got := config.NewConfig()
	if got != def {
		t.Fatalf("NewConfig() = %+v, want default %+v", got, def)
	}
}

func TestWithMetrics(t *testing.T) {
	c := config.NewConfig(config.WithMetrics("host"))
	if !c.MetricsEnabled || c.MetricsNamespace != "host" {
		t.Fatalf("WithMetrics(host) = %+v", c)
	}

	c2 := config.NewConfig(config.WithMetrics(""))
	if !c2.MetricsEnabled || c2.MetricsNamespace != config.DefaultMetricsNamespace {
		t.Fatalf("WithMetrics('') = %+v, want default namespace", c2)
	}

	c3 := config.NewConfig(config.WithMetrics("host"), config.WithoutMetrics())
	if c3.MetricsEnabled {
		t.Fatalf("MetricsEnabled = true after WithoutMetrics")
	}
}

func TestWithLogFormat_Unknown_ResetsToDefault(t *testing.T) {
	c := config.NewConfig(config.WithLogFormat("xml"))
	if c.LogFormat != config.DefaultLogFormat {
		t.Fatalf("LogFormat = %q, want default %q", c.LogFormat, config.DefaultLogFormat)
	}
	c2 := config.NewConfig(config.WithLogFormat(config.FormatJSON))
	if c2.LogFormat != config.FormatJSON {
		t.Fatalf("LogFormat = %q, want json", c2.LogFormat)
	}
}

func TestOptionsOrder_LastWins(t *testing.T) {
	c := config.NewConfig(
		config.WithLogLevel("debug"),
		config.WithLogLevel("warn"),
		config.WithLogFormat(config.FormatJSON),
		config.WithLogFormat(config.FormatConsole),
	)
	if c.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn (last option wins)", c.LogLevel)
	}
	if c.LogFormat != config.FormatConsole {
		t.Errorf("LogFormat = %q, want console (last option wins)", c.LogFormat)
	}
}

func TestLoad_AppliesDefinedKeysOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nck.toml")
	data := "log_level = \"DEBUG\"\nmetrics_enabled = true\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := apis.Config{
		LogLevel:         "debug",
		LogFormat:        config.DefaultLogFormat,
		MetricsEnabled:   true,
		MetricsNamespace: config.DefaultMetricsNamespace,
	}
	if got != want {
		t.Fatalf("Load = %+v, want %+v", got, want)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("Load(absent) = nil error, want failure")
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", "log_level = "},
		{"unknown key", "log_levle = \"debug\""},
		{"bad format", "log_format = \"xml\""},
		{"bad level", "log_level = \"loud\""},
		{"blank level", "log_level = \"  \""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := config.Parse(tt.data); err == nil {
				t.Fatalf("Parse(%q) = nil error, want failure", tt.data)
			}
		})
	}
}

func TestParse_LevelAliases(t *testing.T) {
	for _, level := range []string{"trace", "Warn", "warning", "fatal", "off", "disabled"} {
		got, err := config.Parse("log_level = \"" + level + "\"")
		if err != nil {
			t.Fatalf("Parse(log_level=%q): %v", level, err)
		}
		if got.LogLevel != strings.ToLower(level) {
			t.Fatalf("LogLevel = %q, want %q", got.LogLevel, strings.ToLower(level))
		}
	}
}

func TestParse_Empty_EqualsDefault(t *testing.T) {
	got, err := config.Parse("")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got != config.DefaultConfig() {
		t.Fatalf("Parse('') = %+v, want default", got)
	}
}
