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
	"github.com/corvidchess/corvid/pkg/castling"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// MakeMove plays a legal move, leaving the position flipped so that it
// is once again Us's turn. Recompute is called at the end, so the
// check/pin state is always current after MakeMove returns.
func (p *Position) MakeMove(m move.Move) {
	var u undo
	u.Move = m
	u.CastlingRights = p.CastlingRights
	u.EnPassantTarget = p.EnPassantTarget
	u.HalfMoveClock = p.HalfMoveClock
	u.Key0, u.Key1 = p.Key0, p.Key1
	u.Captured = piece.None
	u.CaptureSquare = square.None

	from, to := m.From(), m.To()

	p.setEnPassantTarget(square.None)

	p.HalfMoveClock++
	if m.IsPawnMove() || m.IsCapture() {
		p.HalfMoveClock = 0
	}

	switch m.Tag() {
	case move.CastleKingSide, move.CastleQueenSide:
		rook := castling.Rooks[to]
		p.clear(from)
		p.fill(to, m.Piece())
		p.clear(rook.From)
		p.fill(rook.To, piece.New(piece.Rook, piece.Us))

	case move.EnPassant:
		capturedSq := to - 8
		u.Captured = p.PieceAt(capturedSq)
		u.CaptureSquare = capturedSq
		p.clear(capturedSq)
		p.clear(from)
		p.fill(to, m.Piece())

	case move.PawnDoublePush:
		if captured := p.PieceAt(to); captured != piece.None {
			u.Captured = captured
			u.CaptureSquare = to
		}
		p.clear(from)
		p.fill(to, m.Piece())

		passedSquare := to - 8
		if attacks.Pawn[piece.Us][passedSquare]&p.Pawns(piece.Them) != 0 {
			p.setEnPassantTarget(passedSquare)
		}

	default: // General, Promotion
		if captured := p.PieceAt(to); captured != piece.None {
			u.Captured = captured
			u.CaptureSquare = to
			p.clear(to)
		}
		p.clear(from)
		p.fill(to, m.Piece())
	}

	updates := castling.RightUpdates[from] | castling.RightUpdates[to]
	if p.CastlingRights&updates != 0 {
		p.setCastlingRights(p.CastlingRights &^ updates)
	}

	wasWhite := p.WhiteToMove
	p.WhiteToMove = !wasWhite
	if !wasWhite {
		p.FullMoveNumber++
	}

	p.Flip()
	p.history = append(p.history, u)
	p.Recompute()
}

// UnmakeMove reverses the last move played by MakeMove. The caller
// must pass the same move it gave to MakeMove.
func (p *Position) UnmakeMove(m move.Move) {
	n := len(p.history) - 1
	u := p.history[n]
	p.history = p.history[:n]

	if p.WhiteToMove {
		p.FullMoveNumber--
	}
	p.WhiteToMove = !p.WhiteToMove

	p.Flip()

	from, to := m.From(), m.To()

	switch m.Tag() {
	case move.CastleKingSide, move.CastleQueenSide:
		rook := castling.Rooks[to]
		p.clear(rook.To)
		p.fill(rook.From, piece.New(piece.Rook, piece.Us))
		p.clear(to)
		p.fill(from, m.Piece())

	case move.EnPassant:
		p.clear(to)
		p.fill(from, m.Piece())
		p.fill(u.CaptureSquare, u.Captured)

	case move.Promotion:
		p.clear(to)
		p.fill(from, piece.New(piece.Pawn, piece.Us))
		if u.Captured != piece.None {
			p.fill(u.CaptureSquare, u.Captured)
		}

	default: // General, PawnDoublePush
		p.clear(to)
		p.fill(from, m.Piece())
		if u.Captured != piece.None {
			p.fill(u.CaptureSquare, u.Captured)
		}
	}

	p.CastlingRights = u.CastlingRights
	p.EnPassantTarget = u.EnPassantTarget
	p.HalfMoveClock = u.HalfMoveClock
	p.Key0, p.Key1 = u.Key0, u.Key1

	p.Recompute()
}

// MakeNullMove plays a null move: it changes nothing about the board
// except whose turn it is and the en passant target, used by the
// search's null-move pruning. UnmakeNullMove reverses it.
func (p *Position) MakeNullMove() {
	var u undo
	u.Move = move.Null
	u.CastlingRights = p.CastlingRights
	u.EnPassantTarget = p.EnPassantTarget
	u.HalfMoveClock = p.HalfMoveClock
	u.Key0, u.Key1 = p.Key0, p.Key1
	u.Captured = piece.None
	u.CaptureSquare = square.None

	p.setEnPassantTarget(square.None)

	wasWhite := p.WhiteToMove
	p.WhiteToMove = !wasWhite
	if !wasWhite {
		p.FullMoveNumber++
	}

	p.Flip()
	p.history = append(p.history, u)
	p.Recompute()
}

// UnmakeNullMove reverses MakeNullMove.
func (p *Position) UnmakeNullMove() {
	n := len(p.history) - 1
	u := p.history[n]
	p.history = p.history[:n]

	if p.WhiteToMove {
		p.FullMoveNumber--
	}
	p.WhiteToMove = !p.WhiteToMove

	p.Flip()

	p.CastlingRights = u.CastlingRights
	p.EnPassantTarget = u.EnPassantTarget
	p.HalfMoveClock = u.HalfMoveClock
	p.Key0, p.Key1 = u.Key0, u.Key1

	p.Recompute()
}

// IsMoveIrreversible reports whether m can never be undone by a
// sequence of further moves, which is what the fifty-move and
// repetition rules need: pawn moves and captures are the classic
// cases, but losing a castling right is irreversible too even when
// the move itself is a quiet rook or king move, and capturing a rook
// on its untouched home square revokes that right exactly the way
// moving the rook away does, since both touch the same corner square.
func (p *Position) IsMoveIrreversible(m move.Move) bool {
	if m.IsNull() {
		return false
	}
	if m.IsCapture() || m.IsPawnMove() || m.IsCastle() {
		return true
	}
	updates := castling.RightUpdates[m.From()] | castling.RightUpdates[m.To()]
	return p.CastlingRights&updates != 0
}

// IsLegalMove reports whether m is a legal move in the current
// position. Generate already produces only legal moves, so this is a
// membership test against it, used to validate externally supplied
// moves (e.g. from the command interface) rather than a separate
// legality algorithm.
func (p *Position) IsLegalMove(m move.Move) bool {
	for _, legal := range p.Generate() {
		if legal == m {
			return true
		}
	}
	return false
}
