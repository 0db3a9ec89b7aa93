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

package eval_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/position"
)

// An undefended pawn capture nets exactly a pawn: satisfies every
// threshold up to and including 100, fails above it.
func TestSEEUndefendedCapture(t *testing.T) {
	const fen = "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1"
	pos, err := position.FromFEN(fen)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	m, err := pos.MoveFromLAN("e4d5")
	if err != nil {
		t.Fatalf("MoveFromLAN: %v", err)
	}

	if !eval.SEE(pos, m, 100) {
		t.Error("SEE(..., 100) = false, want true for an undefended pawn capture")
	}
	if eval.SEE(pos, m, 101) {
		t.Error("SEE(..., 101) = true, want false: only a pawn was won")
	}
}

// A pawn capturing a pawn defended by another pawn is an even trade:
// satisfies threshold 0 (no material lost), fails any positive
// threshold (nothing is actually won once recaptured).
func TestSEEEvenTrade(t *testing.T) {
	const fen = "4k3/8/2p5/3p4/4P3/8/8/4K3 w - - 0 1"
	pos, err := position.FromFEN(fen)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	m, err := pos.MoveFromLAN("e4d5")
	if err != nil {
		t.Fatalf("MoveFromLAN: %v", err)
	}

	if !eval.SEE(pos, m, 0) {
		t.Error("SEE(..., 0) = false, want true: an even trade loses nothing")
	}
	if eval.SEE(pos, m, 1) {
		t.Error("SEE(..., 1) = true, want false: the pawn is recaptured, netting nothing")
	}
}
