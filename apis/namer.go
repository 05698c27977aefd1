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

// Namer lets a component choose the name it is reported under in logs,
// metrics and error messages.
//
// EntityName must be non-empty, deterministic for a given concrete type and
// safe for concurrent calls. It must not perform I/O.
type Namer interface {
	EntityName() string
}

// NamerFunc adapts a plain function to the Namer interface.
type NamerFunc func() string

// EntityName implements Namer for NamerFunc.
func (f NamerFunc) EntityName() string {
	return f()
}
