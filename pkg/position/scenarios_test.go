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

// A lone pawn one square from promotion must generate all four
// promotion pieces.
func TestGeneratePromotionChoices(t *testing.T) {
	pos, err := position.FromFEN("8/8/8/8/8/3k4/3p4/3K4 b - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}

	want := map[string]bool{"d2d1q": false, "d2d1r": false, "d2d1b": false, "d2d1n": false}
	for _, m := range pos.Generate() {
		lan := pos.LAN(m)
		if _, ok := want[lan]; ok {
			want[lan] = true
		}
	}

	for lan, seen := range want {
		if !seen {
			t.Errorf("Generate: missing promotion choice %s", lan)
		}
	}
}

// En passant that would expose the mover's own king to a horizontal
// pin through the square vacated by both pawns must not be generated,
// even though neither pawn is individually pinned.
func TestEnPassantHorizontalPinIsExcluded(t *testing.T) {
	pos, err := position.FromFEN("8/8/8/K2Pp2r/8/8/8/4k3 w - e6 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}

	for _, m := range pos.Generate() {
		if pos.LAN(m) == "d5e6" {
			t.Fatal("Generate: en passant d5e6 exposes the king to the rook on h5, must not be legal")
		}
	}
}
