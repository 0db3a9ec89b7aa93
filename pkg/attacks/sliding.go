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

package attacks

import (
	"math/bits"

	"github.com/corvidchess/corvid/pkg/bitboard"
	"github.com/corvidchess/corvid/pkg/square"
)

// line masks per square, used by the hyperbola quintessence sliding
// attack computation: every square's rank, file, diagonal and
// anti-diagonal line, excluding no bits (the formula below subtracts
// the slider's own bit out automatically).
var (
	rankMask [square.N]bitboard.Board
	fileMask [square.N]bitboard.Board
	diagMask [square.N]bitboard.Board
	antiMask [square.N]bitboard.Board
)

func init() {
	var diagonals, antiDiagonals [15]bitboard.Board
	for s := square.Square(0); s < square.N; s++ {
		diagonals[s.Diagonal()].Set(s)
		antiDiagonals[s.AntiDiagonal()].Set(s)
	}

	for s := square.Square(0); s < square.N; s++ {
		rankMask[s] = bitboard.Ranks[s.Rank()]
		fileMask[s] = bitboard.Files[s.File()]
		diagMask[s] = diagonals[s.Diagonal()]
		antiMask[s] = antiDiagonals[s.AntiDiagonal()]
	}
}

// slide computes the sliding attack set of a piece on s along the
// given line mask, given the board's occupancy, using hyperbola
// quintessence: o-2s subtracts the slider's bit out of the occupancy
// to produce the forward ray, and the same trick run on the
// bit-reversed board produces the backward ray. The 64-bit bit
// reversal performs a point-reflection of the whole board (square i
// maps to square 63-i, which under this package's square numbering is
// the square with both file and rank mirrored), so running the
// subtraction trick on the reversed occupancy and reversing the
// result back gives exactly the ray in the opposite direction.
func slide(occupied bitboard.Board, s square.Square, line bitboard.Board) bitboard.Board {
	slider := bitboard.FromSquare(s)
	o := occupied & line

	forward := o - 2*slider

	ro := bitboard.Board(bits.Reverse64(uint64(o)))
	rs := bitboard.Board(bits.Reverse64(uint64(slider)))
	backward := bitboard.Board(bits.Reverse64(uint64(ro - 2*rs)))

	return (forward ^ backward) & line
}

// Bishop returns the attack set of a bishop on s given the board's
// full occupancy.
func Bishop(s square.Square, occupied bitboard.Board) bitboard.Board {
	return slide(occupied, s, diagMask[s]) | slide(occupied, s, antiMask[s])
}

// Rook returns the attack set of a rook on s given the board's full
// occupancy.
func Rook(s square.Square, occupied bitboard.Board) bitboard.Board {
	return slide(occupied, s, rankMask[s]) | slide(occupied, s, fileMask[s])
}

// Queen returns the attack set of a queen on s given the board's full
// occupancy.
func Queen(s square.Square, occupied bitboard.Board) bitboard.Board {
	return Bishop(s, occupied) | Rook(s, occupied)
}

// Ray returns the set of squares strictly between from and to along a
// shared rank, file, or diagonal, empty if they do not share one.
// Used for pin and discovered-check detection.
func Ray(from, to square.Square) bitboard.Board {
	switch {
	case from.Rank() == to.Rank():
		return between(from, to, rankMask[from])
	case from.File() == to.File():
		return between(from, to, fileMask[from])
	case from.Diagonal() == to.Diagonal():
		return between(from, to, diagMask[from])
	case from.AntiDiagonal() == to.AntiDiagonal():
		return between(from, to, antiMask[from])
	default:
		return bitboard.Empty
	}
}

// between returns the bits of line strictly between from and to,
// assuming both lie on line.
func between(from, to square.Square, line bitboard.Board) bitboard.Board {
	lo, hi := from, to
	if lo > hi {
		lo, hi = hi, lo
	}

	var mask bitboard.Board
	for s := lo + 1; s < hi; s++ {
		mask.Set(s)
	}
	return mask & line
}
