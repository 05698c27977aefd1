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

// Initializable is implemented by components stored in an instance registry.
//
// The registry calls OnInstall before the instance becomes visible and
// OnUninstall before it is removed, so components can acquire and release
// external resources in step with registry membership. A non-nil error from
// OnInstall aborts the registration; a non-nil error from OnUninstall keeps
// the instance registered.
//
// Hooks run while the registry holds its write lock. They must not call back
// into the same registry.
type Initializable interface {
	OnInstall() error
	OnUninstall() error
}

// NopInitializable provides no-op lifecycle hooks. Embed it in components
// that have nothing to acquire or release.
type NopInitializable struct{}

// OnInstall does nothing.
func (NopInitializable) OnInstall() error { return nil }

// OnUninstall does nothing.
func (NopInitializable) OnUninstall() error { return nil }

// Ensure NopInitializable implements Initializable.
var _ Initializable = NopInitializable{}
