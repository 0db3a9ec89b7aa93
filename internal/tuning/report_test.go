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

package tuning_test

import (
	"io"
	"testing"

	"github.com/corvidchess/corvid/internal/tuning"
)

// TestRenderWeights only checks that rendering the weight chart does
// not error; skipped under -short since it is an offline inspection aid,
// not a correctness check of the evaluation itself.
func TestRenderWeights(t *testing.T) {
	if testing.Short() {
		t.Skip("offline diagnostics, not a correctness check")
	}

	if err := tuning.RenderWeights(io.Discard); err != nil {
		t.Fatalf("RenderWeights: %v", err)
	}
}
