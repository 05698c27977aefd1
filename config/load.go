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
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"dirpx.dev/nck/apis"
)

// fileConfig is the on-disk TOML shape:
//
//	log_level         = "debug"
//	log_format        = "json"
//	metrics_enabled   = true
//	metrics_namespace = "host"
type fileConfig struct {
	LogLevel         string `toml:"log_level"`
	LogFormat        string `toml:"log_format"`
	MetricsEnabled   bool   `toml:"metrics_enabled"`
	MetricsNamespace string `toml:"metrics_namespace"`
}

// Load reads a TOML file and applies the keys it defines on top of
// DefaultConfig. Keys absent from the file keep their defaults.
func Load(path string) (apis.Config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return apis.Config{}, fmt.Errorf("nck(config): load %s: %w", path, err)
	}
	return apply(meta, raw)
}

// Parse is Load for in-memory TOML.
func Parse(data string) (apis.Config, error) {
	var raw fileConfig
	meta, err := toml.Decode(data, &raw)
	if err != nil {
		return apis.Config{}, fmt.Errorf("nck(config): parse: %w", err)
	}
	return apply(meta, raw)
}

func apply(meta toml.MetaData, raw fileConfig) (apis.Config, error) {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return apis.Config{}, fmt.Errorf("nck(config): unknown key %q", undecoded[0].String())
	}

	cfg := DefaultConfig()
	if meta.IsDefined("log_level") {
		level := strings.ToLower(strings.TrimSpace(raw.LogLevel))
		if !validLevel(level) {
			return apis.Config{}, fmt.Errorf("nck(config): log_level %q: unknown level", raw.LogLevel)
		}
		cfg.LogLevel = level
	}
	if meta.IsDefined("log_format") {
		format := strings.ToLower(strings.TrimSpace(raw.LogFormat))
		if format != FormatConsole && format != FormatJSON {
			return apis.Config{}, fmt.Errorf("nck(config): log_format %q: want %q or %q", raw.LogFormat, FormatConsole, FormatJSON)
		}
		cfg.LogFormat = format
	}
	if meta.IsDefined("metrics_enabled") {
		cfg.MetricsEnabled = raw.MetricsEnabled
	}
	if meta.IsDefined("metrics_namespace") {
		cfg.MetricsNamespace = strings.TrimSpace(raw.MetricsNamespace)
	}
	return normalize(cfg), nil
}

// levelAliases are accepted in addition to zerolog level names.
var levelAliases = map[string]bool{"warning": true, "off": true, "none": true}

// validLevel reports whether level names a zerolog level or an alias.
// The empty string is rejected even though zerolog maps it to NoLevel.
func validLevel(level string) bool {
	if level == "" {
		return false
	}
	if levelAliases[level] {
		return true
	}
	_, err := zerolog.ParseLevel(level)
	return err == nil
}
