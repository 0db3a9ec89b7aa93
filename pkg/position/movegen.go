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
	"github.com/corvidchess/corvid/pkg/castling"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// Castling transit masks for Us's own king, the only side whose
// castling moves a Generate call ever produces (Them's rights only
// ever matter for rights bookkeeping, never movegen, since a Position
// is always read as "Us to move").
var (
	usKingsideTransit  = bitboard.FromSquare(square.Make(square.FileF, square.Rank1)) | bitboard.FromSquare(square.Make(square.FileG, square.Rank1))
	usQueensideEmpty   = bitboard.FromSquare(square.Make(square.FileB, square.Rank1)) | bitboard.FromSquare(square.Make(square.FileC, square.Rank1)) | bitboard.FromSquare(square.Make(square.FileD, square.Rank1))
	usQueensideTransit = bitboard.FromSquare(square.Make(square.FileC, square.Rank1)) | bitboard.FromSquare(square.Make(square.FileD, square.Rank1))
)

// Generate returns every legal move in the position.
func (p *Position) Generate() []move.Move {
	return p.generate(false)
}

// GenerateCaptures returns every legal capturing move (including
// capture-promotions and en passant), used by quiescence search.
func (p *Position) GenerateCaptures() []move.Move {
	return p.generate(true)
}

func (p *Position) generate(capturesOnly bool) []move.Move {
	moves := make([]move.Move, 0, 31)

	friends := p.ColorBB[piece.Us]
	enemies := p.ColorBB[piece.Them]
	occupied := friends | enemies

	var target, kingTarget bitboard.Board
	if capturesOnly {
		target = enemies & p.CheckMask
		kingTarget = enemies &^ p.SeenByThem
	} else {
		target = ^friends & p.CheckMask
		kingTarget = ^friends &^ p.SeenByThem
	}

	p.appendKingMoves(&moves, kingTarget, capturesOnly)

	if p.CheckN >= 2 {
		// only the king can move out of a double check
		return moves
	}

	p.appendKnightMoves(&moves, target)
	p.appendBishopMoves(&moves, target, p.Bishops(piece.Us))
	p.appendRookMoves(&moves, target, p.Rooks(piece.Us))
	p.appendBishopMoves(&moves, target, p.Queens(piece.Us))
	p.appendRookMoves(&moves, target, p.Queens(piece.Us))
	p.appendPawnMoves(&moves, occupied, capturesOnly)

	return moves
}

func (p *Position) appendKingMoves(moves *[]move.Move, kingTarget bitboard.Board, capturesOnly bool) {
	king := piece.New(piece.King, piece.Us)
	kingSq := p.Kings[piece.Us]

	for toBB := attacks.King[kingSq] & kingTarget; toBB != bitboard.Empty; {
		to := toBB.Pop()
		*moves = append(*moves, move.New(kingSq, to, king, p.PieceAt(to), move.General))
	}

	if capturesOnly || p.CheckN != 0 {
		return
	}

	occAndSeen := p.Occupied() | p.SeenByThem
	if p.CastlingRights&castling.UsKingside != 0 && occAndSeen&usKingsideTransit == bitboard.Empty {
		to := square.Make(square.FileG, square.Rank1)
		*moves = append(*moves, move.New(kingSq, to, king, piece.None, move.CastleKingSide))
	}
	if p.CastlingRights&castling.UsQueenside != 0 &&
		p.Occupied()&usQueensideEmpty == bitboard.Empty &&
		p.SeenByThem&usQueensideTransit == bitboard.Empty {
		to := square.Make(square.FileC, square.Rank1)
		*moves = append(*moves, move.New(kingSq, to, king, piece.None, move.CastleQueenSide))
	}
}

func (p *Position) appendKnightMoves(moves *[]move.Move, target bitboard.Board) {
	knight := piece.New(piece.Knight, piece.Us)
	for knights := p.Knights(piece.Us) &^ (p.PinnedD | p.PinnedHV); knights != bitboard.Empty; {
		from := knights.Pop()
		for toBB := attacks.Knight[from] & target; toBB != bitboard.Empty; {
			to := toBB.Pop()
			*moves = append(*moves, move.New(from, to, knight, p.PieceAt(to), move.General))
		}
	}
}

func (p *Position) appendBishopMoves(moves *[]move.Move, target bitboard.Board, bishops bitboard.Board) {
	bishops &^= p.PinnedHV

	// bishops also carries the queens' diagonal moves, so each move
	// takes the piece actually standing on its origin square.
	for pinned := bishops & p.PinnedD; pinned != bitboard.Empty; {
		from := pinned.Pop()
		for toBB := attacks.Bishop(from, p.Occupied()) & target & p.PinnedD; toBB != bitboard.Empty; {
			to := toBB.Pop()
			*moves = append(*moves, move.New(from, to, p.PieceAt(from), p.PieceAt(to), move.General))
		}
	}
	for unpinned := bishops &^ p.PinnedD; unpinned != bitboard.Empty; {
		from := unpinned.Pop()
		for toBB := attacks.Bishop(from, p.Occupied()) & target; toBB != bitboard.Empty; {
			to := toBB.Pop()
			*moves = append(*moves, move.New(from, to, p.PieceAt(from), p.PieceAt(to), move.General))
		}
	}
}

func (p *Position) appendRookMoves(moves *[]move.Move, target bitboard.Board, rooks bitboard.Board) {
	rooks &^= p.PinnedD

	for pinned := rooks & p.PinnedHV; pinned != bitboard.Empty; {
		from := pinned.Pop()
		for toBB := attacks.Rook(from, p.Occupied()) & target & p.PinnedHV; toBB != bitboard.Empty; {
			to := toBB.Pop()
			*moves = append(*moves, move.New(from, to, p.PieceAt(from), p.PieceAt(to), move.General))
		}
	}
	for unpinned := rooks &^ p.PinnedHV; unpinned != bitboard.Empty; {
		from := unpinned.Pop()
		for toBB := attacks.Rook(from, p.Occupied()) & target; toBB != bitboard.Empty; {
			to := toBB.Pop()
			*moves = append(*moves, move.New(from, to, p.PieceAt(from), p.PieceAt(to), move.General))
		}
	}
}

// appendPawnMoves uses raw bitboard shifts rather than per-pawn attack
// lookups: since Us always pushes towards higher ranks in this
// side-relative model, pawns.North()/.NorthWest()/.NorthEast() compute
// every push/capture target in one step, with the origin of a given
// target bit recovered as to-8 (push), to-9 (capture towards file a),
// or to-7 (capture towards file h).
func (p *Position) appendPawnMoves(moves *[]move.Move, occupied bitboard.Board, capturesOnly bool) {
	pawn := piece.New(piece.Pawn, piece.Us)
	pawns := p.Pawns(piece.Us)

	captureTarget := p.ColorBB[piece.Them] & p.CheckMask

	pawnsThatAttack := pawns &^ p.PinnedHV
	unpinnedAttackers := pawnsThatAttack &^ p.PinnedD
	pinnedAttackers := pawnsThatAttack & p.PinnedD

	attacksW := unpinnedAttackers.NorthWest()&captureTarget | pinnedAttackers.NorthWest()&captureTarget&p.PinnedD
	attacksE := unpinnedAttackers.NorthEast()&captureTarget | pinnedAttackers.NorthEast()&captureTarget&p.PinnedD

	p.appendPawnTargets(moves, attacksW&^bitboard.Rank8, 9)
	p.appendPawnTargets(moves, attacksE&^bitboard.Rank8, 7)
	p.appendPromotionTargets(moves, attacksW&bitboard.Rank8, 9)
	p.appendPromotionTargets(moves, attacksE&bitboard.Rank8, 7)

	if !capturesOnly {
		pawnsThatPush := pawns &^ p.PinnedD
		unpinnedPushers := pawnsThatPush &^ p.PinnedHV
		pinnedPushers := pawnsThatPush & p.PinnedHV

		pushSingle := (unpinnedPushers.North()&^occupied | pinnedPushers.North()&^occupied&p.PinnedHV)
		pushDouble := (pushSingle & bitboard.Rank3).North() &^ occupied & p.CheckMask
		pushSingle &= p.CheckMask

		p.appendPawnTargets(moves, pushSingle&^bitboard.Rank8, 8)
		p.appendPromotionTargets(moves, pushSingle&bitboard.Rank8, 8)

		for toBB := pushDouble; toBB != bitboard.Empty; {
			to := toBB.Pop()
			*moves = append(*moves, move.New(to-16, to, pawn, piece.None, move.PawnDoublePush))
		}
	}

	if p.EnPassantTarget == square.None {
		return
	}
	p.appendEnPassantMoves(moves, pawnsThatAttack)
}

func (p *Position) appendPawnTargets(moves *[]move.Move, targets bitboard.Board, delta square.Square) {
	pawn := piece.New(piece.Pawn, piece.Us)
	for toBB := targets; toBB != bitboard.Empty; {
		to := toBB.Pop()
		from := to - delta
		*moves = append(*moves, move.New(from, to, pawn, p.PieceAt(to), move.General))
	}
}

func (p *Position) appendPromotionTargets(moves *[]move.Move, targets bitboard.Board, delta square.Square) {
	for toBB := targets; toBB != bitboard.Empty; {
		to := toBB.Pop()
		from := to - delta
		captured := p.PieceAt(to)
		for _, t := range piece.Promotions {
			*moves = append(*moves, move.New(from, to, piece.New(t, piece.Us), captured, move.Promotion))
		}
	}
}

// appendEnPassantMoves handles the one capture whose target square is
// not the captured piece's square, and the classic "horizontal pin
// through both captured pawns" exclusion: removing both the capturing
// and captured pawn from the board at once can expose Us's king to a
// rook or queen along the en passant rank in a way the ordinary
// pin-mask, computed one piece at a time, cannot see.
func (p *Position) appendEnPassantMoves(moves *[]move.Move, pawnsThatAttack bitboard.Board) {
	target := p.EnPassantTarget
	capturedSq := target - 8

	epMask := bitboard.Squares[target] | bitboard.Squares[capturedSq]
	if p.CheckMask&epMask == bitboard.Empty {
		return
	}

	kingSq := p.Kings[piece.Us]
	kingOnRank := bitboard.Squares[kingSq] & bitboard.Rank5
	enemyRooksQueens := (p.Rooks(piece.Them) | p.Queens(piece.Them)) & bitboard.Rank5
	possibleRookPin := kingOnRank != bitboard.Empty && enemyRooksQueens != bitboard.Empty

	pawn := piece.New(piece.Pawn, piece.Us)

	for fromBB := attacks.Pawn[piece.Them][target] & pawnsThatAttack; fromBB != bitboard.Empty; {
		from := fromBB.Pop()

		if p.PinnedD.IsSet(from) && !p.PinnedD.IsSet(target) {
			continue // pinned diagonally away from the ep capture's own diagonal
		}

		if possibleRookPin {
			withoutPawns := p.Occupied() &^ (bitboard.Squares[from] | bitboard.Squares[capturedSq])
			if attacks.Rook(kingSq, withoutPawns)&enemyRooksQueens != bitboard.Empty {
				continue
			}
		}

		*moves = append(*moves, move.New(from, target, pawn, piece.None, move.EnPassant))
	}
}
