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

package position

import (
	"github.com/corvidchess/corvid/pkg/attacks"
	"github.com/corvidchess/corvid/pkg/bitboard"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// pieceValue mirrors the engine-wide material scale used for hanging
// detection. pkg/eval keeps its own copy for evaluation and SEE move
// ordering, since letting it import pkg/position's unexported table
// would not help here: the hanging cache has to live on Position
// itself (it is refreshed lazily per square, across calls), so the
// exchange walk it needs has to live here too, not in a package that
// imports position.
var pieceValue = [piece.TypeN]int{
	piece.NoType: 0,
	piece.Pawn:   100,
	piece.Knight: 300,
	piece.Bishop: 300,
	piece.Rook:   500,
	piece.Queen:  930,
	piece.King:   0,
}

// Hanging returns how much material Us stands to lose if Them captures
// first on s, zero if s holds no Us piece or the full capture exchange
// favours Us. The result is cached until the next Flip (MakeMove always
// flips, so the cache is naturally invalidated every ply).
func (p *Position) Hanging(s square.Square) int {
	if p.hangingSet[s] {
		return int(p.hanging[s])
	}

	loss := p.computeHanging(s)
	p.hanging[s] = int16(loss)
	p.hangingSet[s] = true
	return loss
}

func (p *Position) computeHanging(s square.Square) int {
	pc := p.PieceAt(s)
	if pc == piece.None || pc.Color() != piece.Us {
		return 0
	}
	if !p.IsAttacked(s, piece.Them) {
		return 0
	}

	swing := p.exchange(s, piece.Them)
	if swing <= 0 {
		return 0
	}
	return swing
}

// exchange simulates the full capture sequence on s, started by the
// cheapest attacker of colour side, with each side always recapturing
// with its cheapest remaining piece, and returns the net material swing
// in side's favour under best play by both sides (the classic gain-array
// static exchange evaluation).
func (p *Position) exchange(s square.Square, side piece.Color) int {
	occ := p.Occupied()

	var gain [32]int
	depth := 0
	gain[0] = pieceValue[p.PieceAt(s).Type()]

	for depth < len(gain)-1 {
		from, ok := p.smallestAttacker(occ, side, s)
		if !ok {
			break
		}

		depth++
		gain[depth] = pieceValue[p.PieceAt(from).Type()] - gain[depth-1]

		occ.Unset(from)
		side = side.Other()
	}

	for depth > 0 {
		if -gain[depth] < gain[depth-1] {
			gain[depth-1] = -gain[depth]
		}
		depth--
	}

	return gain[0]
}

// smallestAttacker finds the least valuable piece of colour by that
// attacks s given the (possibly already partially captured-through)
// occupancy occ.
func (p *Position) smallestAttacker(occ bitboard.Board, by piece.Color, s square.Square) (square.Square, bool) {
	if bb := p.Pawns(by) & occ & attacks.Pawn[by.Other()][s]; bb != bitboard.Empty {
		return bb.LSB(), true
	}
	if bb := p.Knights(by) & occ & attacks.Knight[s]; bb != bitboard.Empty {
		return bb.LSB(), true
	}

	bishopAttacks := attacks.Bishop(s, occ)
	if bb := p.Bishops(by) & occ & bishopAttacks; bb != bitboard.Empty {
		return bb.LSB(), true
	}

	rookAttacks := attacks.Rook(s, occ)
	if bb := p.Rooks(by) & occ & rookAttacks; bb != bitboard.Empty {
		return bb.LSB(), true
	}

	if bb := p.Queens(by) & occ & (bishopAttacks | rookAttacks); bb != bitboard.Empty {
		return bb.LSB(), true
	}

	if bb := p.King(by) & occ & attacks.King[s]; bb != bitboard.Empty {
		return bb.LSB(), true
	}

	return square.None, false
}
