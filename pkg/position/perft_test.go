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

// Standard perft reference counts (Chess Programming Wiki), the usual
// move generator correctness benchmark the teacher's board.Perft was
// tested against too.
func TestPerftStartingPosition(t *testing.T) {
	if testing.Short() {
		t.Skip("perft to depth 5 is slow")
	}

	want := []int{1, 20, 400, 8902, 197281, 4865609}

	for depth, n := range want {
		pos := position.New()
		if got := pos.Perft(depth); got != n {
			t.Errorf("Perft(%d) = %d, want %d", depth, got, n)
		}
	}
}

// Kiwipete, the standard second perft position exercising castling,
// en passant, and promotions together.
func TestPerftKiwipete(t *testing.T) {
	const fen = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

	want := []int{1, 48, 2039}
	for depth, n := range want {
		pos, err := position.FromFEN(fen)
		if err != nil {
			t.Fatalf("FromFEN: %v", err)
		}
		if got := pos.Perft(depth); got != n {
			t.Errorf("Perft(%d) = %d, want %d", depth, got, n)
		}
	}
}

// Endgame position 3, the standard third perft reference position.
func TestPerftEndgame3(t *testing.T) {
	if testing.Short() {
		t.Skip("perft to depth 5 is slow")
	}

	const fen = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"

	want := []int{1, 14, 191, 2812, 43238, 674624}
	for depth, n := range want {
		pos, err := position.FromFEN(fen)
		if err != nil {
			t.Fatalf("FromFEN: %v", err)
		}
		if got := pos.Perft(depth); got != n {
			t.Errorf("Perft(%d) = %d, want %d", depth, got, n)
		}
	}
}

// "Position 4" mirrored, the standard fourth perft reference position,
// exercising castling rights lost to rook captures and under-promotion.
func TestPerftPosition4Mirrored(t *testing.T) {
	if testing.Short() {
		t.Skip("perft to depth 4 is slow")
	}

	const fen = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"

	want := []int{1, 6, 264, 9467, 422333}
	for depth, n := range want {
		pos, err := position.FromFEN(fen)
		if err != nil {
			t.Fatalf("FromFEN: %v", err)
		}
		if got := pos.Perft(depth); got != n {
			t.Errorf("Perft(%d) = %d, want %d", depth, got, n)
		}
	}
}

func TestPerftDivideSumsToPerft(t *testing.T) {
	pos := position.New()

	divide := pos.PerftDivide(3)
	total := pos.Perft(3)

	sum := 0
	for _, n := range divide {
		sum += n
	}

	if sum != total {
		t.Errorf("PerftDivide sums to %d, Perft(3) = %d", sum, total)
	}
}

func TestUnmakeMoveRestoresPosition(t *testing.T) {
	pos := position.New()
	before := pos.FEN()

	for _, m := range pos.Generate() {
		pos.MakeMove(m)
		pos.UnmakeMove(m)
		if got := pos.FEN(); got != before {
			t.Fatalf("UnmakeMove(%s): got %s, want %s", m, got, before)
		}
	}
}
