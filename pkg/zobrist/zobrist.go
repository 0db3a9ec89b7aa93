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

// Package zobrist holds the random keys used to incrementally hash a
// position. Because positions are kept side-relative and flipped every
// ply, a position tracks two keys (Key0, Key1) built from the same
// tables but swapped on every flip; this package only owns the tables
// themselves.
package zobrist

import (
	"github.com/corvidchess/corvid/internal/util"
	"github.com/corvidchess/corvid/pkg/castling"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// Key is a single zobrist hash value.
type Key uint64

// PieceSquare holds a random key per piece-code/square pair.
// EnPassant holds a random key per file, used when an en passant
// capture is possible on it. Castling holds a random key per distinct
// castling rights bitset. SideToMove is xored into the key of
// whichever parity currently represents the side not to move.
var (
	PieceSquare [piece.N][square.N]Key
	EnPassant   [square.FileN]Key
	Castling    [castling.N]Key
	SideToMove  Key
)

func init() {
	var rng util.PRNG
	rng.Seed(1070372) // seed used from Stockfish

	for p := 0; p < piece.N; p++ {
		for s := square.Square(0); s < square.N; s++ {
			PieceSquare[p][s] = Key(rng.Uint64())
		}
	}

	for f := square.FileA; f <= square.FileH; f++ {
		EnPassant[f] = Key(rng.Uint64())
	}

	for r := castling.Rights(0); r < castling.N; r++ {
		Castling[r] = Key(rng.Uint64())
	}

	SideToMove = Key(rng.Uint64())
}
