// Copyright © 2022 Rak Laptudirm <rak@laptudirm.com>
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

package position_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/position"
)

// Transposing move orders that reach the same placement/rights/ep/side
// must hash identically: the incremental Key0 update has no memory of
// the path taken to get there, same as a from-scratch hash wouldn't.
func TestZobristKeyTransposes(t *testing.T) {
	direct, err := position.FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 4 3")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}

	knightsOut := position.New()
	for _, lan := range []string{"g1f3", "g8f6", "f3g1", "f6g8"} {
		m, err := knightsOut.MoveFromLAN(lan)
		if err != nil {
			t.Fatalf("MoveFromLAN(%s): %v", lan, err)
		}
		knightsOut.MakeMove(m)
	}

	if direct.Key0 != knightsOut.Key0 {
		t.Errorf("Key0 mismatch after a transposing move order: %d != %d", direct.Key0, knightsOut.Key0)
	}
	if direct.FEN() != knightsOut.FEN() {
		t.Errorf("FEN mismatch after a transposing move order: %s != %s", direct.FEN(), knightsOut.FEN())
	}
}

// MakeMove followed by UnmakeMove must restore Key0 exactly, not just
// an equivalent-looking position.
func TestZobristKeyRestoredByUnmakeMove(t *testing.T) {
	pos := position.New()
	before := pos.Key0

	for _, m := range pos.Generate() {
		pos.MakeMove(m)
		pos.UnmakeMove(m)
		if pos.Key0 != before {
			t.Fatalf("UnmakeMove(%s): Key0 = %d, want %d", m, pos.Key0, before)
		}
	}
}
