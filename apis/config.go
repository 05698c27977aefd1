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

package apis

// Config carries the process-wide knobs for nck infrastructure.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// LogLevel is the minimum zerolog level for registry lifecycle logs
	// ("trace", "debug", "info", "warn", "error", "disabled").
	LogLevel string

	// LogFormat selects the log encoding: "console" for human-readable
	// output, "json" for structured output.
	LogFormat string

	// MetricsEnabled controls whether registry lifecycle collectors are
	// registered with the builder's prometheus.Registerer.
	MetricsEnabled bool

	// MetricsNamespace prefixes every collector name.
	MetricsNamespace string
}
