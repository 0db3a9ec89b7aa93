// Copyright © 2022 Rak Laptudirm <raklaptudirm@gmail.com>
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

// Package attacks precomputes non-sliding piece attack bitboards at
// init time and, for sliding pieces, exposes occupancy-dependent
// lookups computed with the hyperbola quintessence algorithm. Tables
// are built lazily rather than generated offline, the same pattern
// pkg/zobrist uses for its key tables.
package attacks

import (
	"github.com/corvidchess/corvid/pkg/bitboard"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// King and Knight hold the precomputed step-attack bitboard for every
// square. Pawn holds the precomputed pawn-capture bitboard for every
// square, indexed by the attacking pawn's colour: a piece.Us pawn
// attacks towards higher ranks, a piece.Them pawn towards lower ones,
// since positions are always held relative to the side to move.
var (
	King   [square.N]bitboard.Board
	Knight [square.N]bitboard.Board
	Pawn   [piece.NColor][square.N]bitboard.Board
)

func init() {
	for s := square.Square(0); s < square.N; s++ {
		King[s] = kingAttacksFrom(s)
		Knight[s] = knightAttacksFrom(s)
		Pawn[piece.Us][s] = pawnAttacksFrom(s, piece.Us)
		Pawn[piece.Them][s] = pawnAttacksFrom(s, piece.Them)
	}
}

// addTo sets the square at (origin.File()+df, origin.Rank()+dr) in b,
// provided that square lies on the board.
func addTo(b *bitboard.Board, origin square.Square, df, dr int) {
	f := int(origin.File()) + df
	r := int(origin.Rank()) + dr
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return
	}
	b.Set(square.Make(square.File(f), square.Rank(r)))
}

func kingAttacksFrom(s square.Square) bitboard.Board {
	var b bitboard.Board
	for df := -1; df <= 1; df++ {
		for dr := -1; dr <= 1; dr++ {
			if df == 0 && dr == 0 {
				continue
			}
			addTo(&b, s, df, dr)
		}
	}
	return b
}

var knightDeltas = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

func knightAttacksFrom(s square.Square) bitboard.Board {
	var b bitboard.Board
	for _, d := range knightDeltas {
		addTo(&b, s, d[0], d[1])
	}
	return b
}

func pawnAttacksFrom(s square.Square, c piece.Color) bitboard.Board {
	var b bitboard.Board
	dr := 1
	if c == piece.Them {
		dr = -1
	}
	addTo(&b, s, -1, dr)
	addTo(&b, s, 1, dr)
	return b
}
