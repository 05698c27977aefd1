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

package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/nck/config"
	"dirpx.dev/nck/logging"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in     string
		want   zerolog.Level
		wantOK bool
	}{
		{"debug", zerolog.DebugLevel, true},
		{" WARN ", zerolog.WarnLevel, true},
		{"warning", zerolog.WarnLevel, true},
		{"off", zerolog.Disabled, true},
		{"fatal", zerolog.FatalLevel, true},
		{"", zerolog.InfoLevel, false},
		{"loud", zerolog.InfoLevel, false},
	}
	for _, tt := range tests {
		got, ok := logging.ParseLevel(tt.in)
		assert.Equal(t, tt.want, got, "ParseLevel(%q)", tt.in)
		assert.Equal(t, tt.wantOK, ok, "ParseLevel(%q)", tt.in)
	}
}

func TestNew_JSONAtConfiguredLevel(t *testing.T) {
	t.Setenv(logging.EnvLogLevel, "")

	var buf bytes.Buffer
	cfg := config.NewConfig(config.WithLogFormat(config.FormatJSON), config.WithLogLevel("warn"))
	log := logging.New(cfg, &buf)

	log.Info().Msg("dropped")
	assert.Zero(t, buf.Len())

	log.Warn().Str("key", "k").Msg("kept")
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "kept", rec["message"])
	assert.Equal(t, "nck", rec["lib"])
	assert.Equal(t, "k", rec["key"])
}

func TestNew_EnvOverridesConfig(t *testing.T) {
	t.Setenv(logging.EnvLogLevel, "debug")

	var buf bytes.Buffer
	cfg := config.NewConfig(config.WithLogFormat(config.FormatJSON), config.WithLogLevel("error"))
	log := logging.New(cfg, &buf)

	log.Debug().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestNew_ConsoleFormat(t *testing.T) {
	t.Setenv(logging.EnvLogLevel, "")

	var buf bytes.Buffer
	log := logging.New(config.DefaultConfig(), &buf)
	log.Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}
