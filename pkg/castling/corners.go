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

package castling

import "github.com/corvidchess/corvid/pkg/square"

// RookMove describes the rook relocation that accompanies a king's
// castling move, indexed by the king's destination square.
type RookMove struct {
	From, To square.Square
}

// Rooks maps a castling king's destination square to the rook move
// that accompanies it. Squares that are not a castling destination
// hold the zero RookMove.
var Rooks [square.N]RookMove

// Home squares for kings and rooks, relative to Us/Them, under this
// package's own square indexing.
var (
	UsKingHome    = square.Make(square.FileE, square.Rank1)
	UsRookHomeK   = square.Make(square.FileH, square.Rank1)
	UsRookHomeQ   = square.Make(square.FileA, square.Rank1)
	UsKingTargetK = square.Make(square.FileG, square.Rank1)
	UsKingTargetQ = square.Make(square.FileC, square.Rank1)

	ThemKingHome    = square.Make(square.FileE, square.Rank8)
	ThemRookHomeK   = square.Make(square.FileH, square.Rank8)
	ThemRookHomeQ   = square.Make(square.FileA, square.Rank8)
	ThemKingTargetK = square.Make(square.FileG, square.Rank8)
	ThemKingTargetQ = square.Make(square.FileC, square.Rank8)
)

// RightUpdates maps a square to the castling rights that are lost the
// moment any move touches it, whether as the move's origin (the king
// or rook standing there moved away) or its destination (a piece,
// typically a rook, sitting there was captured). This single table
// handles both "the rook moved" and "the rook was captured on its
// home square" uniformly: both cases touch the corner square.
var RightUpdates [square.N]Rights

func init() {
	Rooks[UsKingTargetK] = RookMove{From: UsRookHomeK, To: square.Make(square.FileF, square.Rank1)}
	Rooks[UsKingTargetQ] = RookMove{From: UsRookHomeQ, To: square.Make(square.FileD, square.Rank1)}
	Rooks[ThemKingTargetK] = RookMove{From: ThemRookHomeK, To: square.Make(square.FileF, square.Rank8)}
	Rooks[ThemKingTargetQ] = RookMove{From: ThemRookHomeQ, To: square.Make(square.FileD, square.Rank8)}

	RightUpdates[UsKingHome] = Us
	RightUpdates[UsRookHomeK] = UsKingside
	RightUpdates[UsRookHomeQ] = UsQueenside
	RightUpdates[ThemKingHome] = Them
	RightUpdates[ThemRookHomeK] = ThemKingside
	RightUpdates[ThemRookHomeQ] = ThemQueenside
}
