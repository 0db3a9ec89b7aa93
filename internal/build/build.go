// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package build holds the version string cmd/corvid reports on
// startup, overridden at link time with
// -ldflags "-X github.com/corvidchess/corvid/internal/build.Version=...",
// the way the teacher's own scripts/build injects it.
package build

// Version is the build's version string; "dev" unless overridden by a
// release build's ldflags.
var Version = "dev"
