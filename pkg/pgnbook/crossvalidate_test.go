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

package pgnbook_test

import (
	"testing"

	"github.com/notnil/chess"

	"github.com/corvidchess/corvid/pkg/position"
)

// TestCrossValidateStartingMoves checks this module's move generator
// and SAN encoder from the standard starting position against an
// entirely independent implementation, notnil/chess, the way the
// teacher's own tuner/datagen uses it as ground truth for generated
// training data (here, as ground truth for move legality and notation
// instead of evaluation labels).
func TestCrossValidateStartingMoves(t *testing.T) {
	ours := position.New()
	theirs := chess.NewGame()

	ourMoves := ours.Generate()
	theirMoves := theirs.ValidMoves()

	if len(ourMoves) != len(theirMoves) {
		t.Fatalf("move count mismatch: ours=%d theirs=%d", len(ourMoves), len(theirMoves))
	}

	notation := chess.AlgebraicNotation{}
	theirSAN := make(map[string]bool, len(theirMoves))
	for _, m := range theirMoves {
		theirSAN[notation.Encode(theirs.Position(), m)] = true
	}

	for _, m := range ourMoves {
		san := ours.SAN(m)
		if !theirSAN[san] {
			t.Errorf("SAN %q from our generator not recognized by notnil/chess", san)
		}
	}
}
