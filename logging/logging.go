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

// Package logging builds the zerolog logger used by nck infrastructure.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"dirpx.dev/nck/apis"
	"dirpx.dev/nck/config"
)

// EnvLogLevel overrides apis.Config.LogLevel when set to a known level.
const EnvLogLevel = "NCK_LOG_LEVEL"

// New returns a logger writing to w (os.Stderr when nil) at the level and
// in the format selected by cfg.
func New(cfg apis.Config, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	level, ok := ParseLevel(os.Getenv(EnvLogLevel))
	if !ok {
		level, _ = ParseLevel(cfg.LogLevel)
	}

	out := w
	if cfg.LogFormat != config.FormatJSON {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Str("lib", "nck").Logger()
}

// ParseLevel maps a level name to a zerolog level. Unknown or blank names
// report false and yield InfoLevel.
func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "off", "none":
		return zerolog.Disabled, true
	case "":
		return zerolog.InfoLevel, false
	}
	if level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(raw))); err == nil {
		return level, true
	}
	return zerolog.InfoLevel, false
}
