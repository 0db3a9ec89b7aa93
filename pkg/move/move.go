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

// Package move implements the engine's packed move descriptor: a move
// is a single 32-bit integer carrying the from/to squares, the moving
// (or promoted-to) piece, the captured piece if any, and a small type
// tag distinguishing the moves that need special handling when they
// are made or unmade.
package move

import (
	"fmt"

	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// Tag classifies a move into one of the kinds that need dedicated
// make/unmake handling beyond "lift this piece, drop it elsewhere".
type Tag uint8

const (
	General         Tag = iota // a normal move, not covered by the tags below
	PawnDoublePush             // a pawn push of two squares
	CastleKingSide             // kingside castling
	CastleQueenSide            // queenside castling
	EnPassant                  // an en passant capture
	Promotion                  // a pawn promoting on the last rank

	TagN = 6
)

// Move is a packed move descriptor:
//
//	bits 0-5:   From square
//	bits 6-11:  To square
//	bits 12-15: Piece (the moving piece, or the promoted-to piece for
//	            a promotion move)
//	bits 16-19: Captured (the captured piece, piece.None if none)
//	bits 20-22: Tag
//
// The zero Move (from=to=0, Piece=piece.None) is the null move: every
// legal move carries a non-empty Piece, so the zero value is a safe
// sentinel.
type Move uint32

const (
	fromShift     = 0
	toShift       = 6
	pieceShift    = 12
	capturedShift = 16
	tagShift      = 20

	squareMask = 0x3f
	pieceMask  = 0xf
	tagMask    = 0x7
)

// New builds a Move from its constituent fields.
func New(from, to square.Square, p, captured piece.Piece, tag Tag) Move {
	return Move(from)<<fromShift |
		Move(to)<<toShift |
		Move(p)<<pieceShift |
		Move(captured)<<capturedShift |
		Move(tag)<<tagShift
}

// Null is the null (no-op) move, used for null-move pruning.
const Null Move = 0

// From returns the move's origin square.
func (m Move) From() square.Square {
	return square.Square((m >> fromShift) & squareMask)
}

// To returns the move's destination square.
func (m Move) To() square.Square {
	return square.Square((m >> toShift) & squareMask)
}

// Piece returns the piece making the move, or, for a promotion, the
// piece it promotes to.
func (m Move) Piece() piece.Piece {
	return piece.Piece((m >> pieceShift) & pieceMask)
}

// Captured returns the captured piece, or piece.None if the move does
// not capture onto its To square (an en passant capture reports
// piece.None here since the captured pawn is not on the To square;
// use IsCapture to test for captures in general).
func (m Move) Captured() piece.Piece {
	return piece.Piece((m >> capturedShift) & pieceMask)
}

// Tag returns the move's type tag.
func (m Move) Tag() Tag {
	return Tag((m >> tagShift) & tagMask)
}

// IsNull reports whether m is the null move.
func (m Move) IsNull() bool {
	return m == Null
}

// IsCapture reports whether the move captures a piece, including en
// passant captures.
func (m Move) IsCapture() bool {
	return m.Tag() == EnPassant || m.Captured() != piece.None
}

// IsPromotion reports whether the move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Tag() == Promotion
}

// IsCastle reports whether the move is a castling move.
func (m Move) IsCastle() bool {
	switch m.Tag() {
	case CastleKingSide, CastleQueenSide:
		return true
	default:
		return false
	}
}

// IsPawnMove reports whether the move is made by a pawn.
func (m Move) IsPawnMove() bool {
	switch m.Tag() {
	case PawnDoublePush, EnPassant, Promotion:
		return true
	default:
		return m.Piece().Type() == piece.Pawn
	}
}

// String renders the move in coordinate/LAN notation (e.g. "e2e4",
// "e7e8q") on its stored, side-relative squares; Position.LAN gives
// the board's real squares for a Black move. SAN rendering lives in
// Position.SAN, which needs the full position to disambiguate.
func (m Move) String() string {
	if m.IsNull() {
		return "0000"
	}

	str := fmt.Sprintf("%s%s", m.From(), m.To())
	if m.IsPromotion() {
		str += m.Piece().Type().String()
	}
	return str
}
