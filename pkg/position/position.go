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

// Package position implements the board representation the rest of
// the engine operates on. A Position is always held from the
// perspective of the side to move: piece.Us is always "whoever moves
// next" and piece.Them the opponent, and MakeMove leaves the position
// flipped so that it is once again Us's turn to move. This removes
// almost every white/black branch a conventional board needs: pawns
// always push towards higher ranks, castling rights always live on
// the same two bits, and so on.
package position

import (
	"fmt"

	"github.com/corvidchess/corvid/pkg/attacks"
	"github.com/corvidchess/corvid/pkg/bitboard"
	"github.com/corvidchess/corvid/pkg/castling"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
	"github.com/corvidchess/corvid/pkg/zobrist"
)

// Position holds the full state of a chess position.
type Position struct {
	Placement [square.N]piece.Piece
	PieceBB   [piece.TypeN]bitboard.Board
	ColorBB   [piece.NColor]bitboard.Board
	Kings     [piece.NColor]square.Square

	CastlingRights  castling.Rights
	EnPassantTarget square.Square // raw ep square, square.None if not applicable

	// Key0 is this position's hash; Key1 is the hash this position
	// would have if it were flipped. MakeMove maintains both
	// incrementally and swaps them on Flip, so that a position and its
	// mirror always agree on which of the pair is "the" hash.
	Key0, Key1 zobrist.Key

	HalfMoveClock  int // moves since the last capture or pawn push
	FullMoveNumber int

	// WhiteToMove records which absolute colour Us currently is, purely
	// for FEN/display purposes; movegen and search never consult it.
	WhiteToMove bool

	// Hanging holds a cached SEE-loss estimate per square: how much
	// material Us stands to lose if Them captures first on that
	// square. It is refreshed lazily by Hanging(), not incrementally,
	// and is consumed by evaluation's threats term and by move
	// ordering's strong-capture classification.
	hanging    [square.N]int16
	hangingSet [square.N]bool

	// check/pin state for the side to move, computed by Recompute.
	CheckN    int
	CheckMask bitboard.Board
	PinnedD   bitboard.Board
	PinnedHV  bitboard.Board
	SeenByThem bitboard.Board

	history []undo
}

// undo holds what MakeMove needs to restore in UnmakeMove, plus what
// repetition detection needs from every played ply.
type undo struct {
	Move            move.Move
	CastlingRights  castling.Rights
	EnPassantTarget square.Square
	HalfMoveClock   int
	Key0, Key1      zobrist.Key
	Captured        piece.Piece
	CaptureSquare   square.Square
}

// New returns the standard starting position.
func New() *Position {
	p, err := FromFEN(StartFEN)
	if err != nil {
		panic("position.New: " + err.Error())
	}
	return p
}

// StartFEN is the FEN of the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Occupied returns the bitboard of every occupied square.
func (p *Position) Occupied() bitboard.Board {
	return p.ColorBB[piece.Us] | p.ColorBB[piece.Them]
}

// Pieces returns the bitboard of pieces of type t and colour c.
func (p *Position) Pieces(t piece.Type, c piece.Color) bitboard.Board {
	return p.PieceBB[t] & p.ColorBB[c]
}

func (p *Position) Pawns(c piece.Color) bitboard.Board   { return p.Pieces(piece.Pawn, c) }
func (p *Position) Knights(c piece.Color) bitboard.Board { return p.Pieces(piece.Knight, c) }
func (p *Position) Bishops(c piece.Color) bitboard.Board { return p.Pieces(piece.Bishop, c) }
func (p *Position) Rooks(c piece.Color) bitboard.Board   { return p.Pieces(piece.Rook, c) }
func (p *Position) Queens(c piece.Color) bitboard.Board  { return p.Pieces(piece.Queen, c) }
func (p *Position) King(c piece.Color) bitboard.Board    { return p.Pieces(piece.King, c) }

// PieceAt returns the piece on s, piece.None if it is empty.
func (p *Position) PieceAt(s square.Square) piece.Piece {
	return p.Placement[s]
}

// clear removes whatever piece sits on s, updating every derived
// bitboard and both hash keys.
func (p *Position) clear(s square.Square) {
	pc := p.Placement[s]
	if pc == piece.None {
		return
	}

	c := pc.Color()
	p.ColorBB[c].Unset(s)
	p.PieceBB[pc.Type()].Unset(s)
	p.Placement[s] = piece.None

	p.Key0 ^= zobrist.PieceSquare[pc][s]
	p.Key1 ^= zobrist.PieceSquare[pc.Flip()][s.Flip()]
}

// fill places pc on s, updating every derived bitboard and both hash
// keys. s must currently be empty.
func (p *Position) fill(s square.Square, pc piece.Piece) {
	c := pc.Color()
	p.ColorBB[c].Set(s)
	p.PieceBB[pc.Type()].Set(s)
	p.Placement[s] = pc

	if pc.Type() == piece.King {
		p.Kings[c] = s
	}

	p.Key0 ^= zobrist.PieceSquare[pc][s]
	p.Key1 ^= zobrist.PieceSquare[pc.Flip()][s.Flip()]
}

// relocate moves whatever piece sits on from to to, clearing to first.
func (p *Position) relocate(from, to square.Square) {
	pc := p.Placement[from]
	p.clear(from)
	p.clear(to)
	p.fill(to, pc)
}

// setCastlingRights replaces the current castling rights, maintaining
// both hash keys. Castling[r] contributes to Key0 directly and to
// Key1 via the flipped rights, the same pattern clear/fill use for
// piece placement.
func (p *Position) setCastlingRights(r castling.Rights) {
	p.Key0 ^= zobrist.Castling[p.CastlingRights]
	p.Key1 ^= zobrist.Castling[p.CastlingRights.Flip()]
	p.CastlingRights = r
	p.Key0 ^= zobrist.Castling[p.CastlingRights]
	p.Key1 ^= zobrist.Castling[p.CastlingRights.Flip()]
}

// setEnPassantTarget replaces the en passant target square, maintaining
// both hash keys. The en passant key is keyed by file alone, and file
// is unaffected by Flip, so it contributes identically to both keys.
func (p *Position) setEnPassantTarget(s square.Square) {
	if p.EnPassantTarget != square.None {
		p.Key0 ^= zobrist.EnPassant[p.EnPassantTarget.File()]
		p.Key1 ^= zobrist.EnPassant[p.EnPassantTarget.File()]
	}
	p.EnPassantTarget = s
	if p.EnPassantTarget != square.None {
		p.Key0 ^= zobrist.EnPassant[p.EnPassantTarget.File()]
		p.Key1 ^= zobrist.EnPassant[p.EnPassantTarget.File()]
	}
}

// IsAttacked reports whether s is attacked by a piece of colour by.
func (p *Position) IsAttacked(s square.Square, by piece.Color) bool {
	occ := p.Occupied()

	if attacks.Pawn[by.Other()][s]&p.Pawns(by) != bitboard.Empty {
		return true
	}
	if attacks.Knight[s]&p.Knights(by) != bitboard.Empty {
		return true
	}
	if attacks.King[s]&p.King(by) != bitboard.Empty {
		return true
	}

	queens := p.Queens(by)
	if attacks.Bishop(s, occ)&(p.Bishops(by)|queens) != bitboard.Empty {
		return true
	}
	return attacks.Rook(s, occ)&(p.Rooks(by)|queens) != bitboard.Empty
}

// InCheck reports whether the side to move (Us) is in check.
func (p *Position) InCheck() bool {
	return p.CheckN > 0
}

func (p *Position) String() string {
	var s string
	for r := square.Rank8; r >= square.Rank1; r-- {
		for f := square.FileA; f <= square.FileH; f++ {
			s += p.Placement[square.Make(f, r)].String()
			if f != square.FileH {
				s += " "
			}
		}
		s += "\n"
	}
	return fmt.Sprintf("%sfen: %s\nkey: %016x\n", s, p.FEN(), uint64(p.Key0))
}
