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

// Package bitboard implements a 64-bit bitboard and related shift,
// mask, and iteration helpers, built on the pkg/square index
// convention (square = rank*8 + (7-file)).
package bitboard

import (
	"math/bits"

	"github.com/corvidchess/corvid/pkg/square"
)

// Board is a 64-bit set of squares.
type Board uint64

// Empty and All are the two extremal bitboards.
const (
	Empty Board = 0
	All   Board = 0xffffffffffffffff
)

// Squares holds a singular bitboard for every square, indexed by it.
var Squares [square.N]Board

func init() {
	for s := square.Square(0); s < square.N; s++ {
		Squares[s] = 1 << s
	}
}

// FromSquare returns the singular bitboard containing only s.
func FromSquare(s square.Square) Board {
	if s == square.None {
		return Empty
	}
	return Squares[s]
}

// String renders the bitboard as an 8x8 grid of 1s and 0s, rank 8 on
// the first line.
func (b Board) String() string {
	var str string
	for r := square.Rank8; r >= square.Rank1; r-- {
		for f := square.FileA; f <= square.FileH; f++ {
			if b.IsSet(square.Make(f, r)) {
				str += "1"
			} else {
				str += "0"
			}
			if f != square.FileH {
				str += " "
			}
		}
		str += "\n"
	}
	return str
}

// North shifts the board towards higher ranks (rank+1).
func (b Board) North() Board { return b << 8 }

// South shifts the board towards lower ranks (rank-1).
func (b Board) South() Board { return b >> 8 }

// East shifts the board towards higher files (file+1), which is a
// decreasing square index under this package's convention.
func (b Board) East() Board { return (b &^ FileH) >> 1 }

// West shifts the board towards lower files (file-1).
func (b Board) West() Board { return (b &^ FileA) << 1 }

// NorthEast, NorthWest, SouthEast, SouthWest are the diagonal shifts.
func (b Board) NorthEast() Board { return b.North().East() }
func (b Board) NorthWest() Board { return b.North().West() }
func (b Board) SouthEast() Board { return b.South().East() }
func (b Board) SouthWest() Board { return b.South().West() }

// Flip mirrors the board vertically (rank 1 with rank 8, and so on),
// keeping file order within each rank unchanged. Because this
// package's square index packs file into the low 3 bits of each
// rank's byte, a full byte-reversal of the 64-bit word is exactly
// this mirror: it permutes the 8 rank-bytes back to front while
// leaving each byte's internal bit order, i.e. file layout, alone.
func (b Board) Flip() Board {
	return Board(bits.ReverseBytes64(uint64(b)))
}

// Pop removes and returns the least significant set square.
func (b *Board) Pop() square.Square {
	sq := b.LSB()
	*b &= *b - 1
	return sq
}

// Count returns the number of set squares.
func (b Board) Count() int {
	return bits.OnesCount64(uint64(b))
}

// LSB returns the least significant set square, or square.None if b
// is empty.
func (b Board) LSB() square.Square {
	if b == Empty {
		return square.None
	}
	return square.Square(bits.TrailingZeros64(uint64(b)))
}

// IsSet reports whether s is set in b.
func (b Board) IsSet(s square.Square) bool {
	return b&Squares[s] != 0
}

// Set sets s in b. Setting square.None is a no-op.
func (b *Board) Set(s square.Square) {
	if s == square.None {
		return
	}
	*b |= Squares[s]
}

// Unset clears s in b. Clearing square.None is a no-op.
func (b *Board) Unset(s square.Square) {
	if s == square.None {
		return
	}
	*b &^= Squares[s]
}

// file and rank masks, indexed by square.File/square.Rank.
var (
	FileA, FileB, FileC, FileD, FileE, FileF, FileG, FileH Board
	Rank1, Rank2, Rank3, Rank4, Rank5, Rank6, Rank7, Rank8  Board

	Files [square.FileN]Board
	Ranks [square.RankN]Board
)

func init() {
	for f := square.FileA; f <= square.FileH; f++ {
		for r := square.Rank1; r <= square.Rank8; r++ {
			Files[f].Set(square.Make(f, r))
		}
	}
	for r := square.Rank1; r <= square.Rank8; r++ {
		for f := square.FileA; f <= square.FileH; f++ {
			Ranks[r].Set(square.Make(f, r))
		}
	}

	FileA, FileB, FileC, FileD = Files[square.FileA], Files[square.FileB], Files[square.FileC], Files[square.FileD]
	FileE, FileF, FileG, FileH = Files[square.FileE], Files[square.FileF], Files[square.FileG], Files[square.FileH]

	Rank1, Rank2, Rank3, Rank4 = Ranks[square.Rank1], Ranks[square.Rank2], Ranks[square.Rank3], Ranks[square.Rank4]
	Rank5, Rank6, Rank7, Rank8 = Ranks[square.Rank5], Ranks[square.Rank6], Ranks[square.Rank7], Ranks[square.Rank8]
}
