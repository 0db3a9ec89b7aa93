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
)

// Recompute refreshes the check and pin state used by Generate and
// IsAttacked-based legality checks. It must be called whenever the
// position changes outside of MakeMove's own bookkeeping, e.g. right
// after FromFEN builds a position from scratch. MakeMove and UnmakeMove
// call it themselves.
func (p *Position) Recompute() {
	p.calculateCheckmask()
	p.calculatePinmask()
	p.SeenByThem = p.seenSquares(piece.Them)
}

// calculateCheckmask finds every piece currently checking Us's king and
// computes the check-mask: the set of squares a friendly piece can
// move to in order to block every check. It is bitboard.All when the
// king is not in check, and empty under double check, since no single
// move can block two checks at once.
func (p *Position) calculateCheckmask() {
	p.CheckN = 0
	p.CheckMask = bitboard.Empty

	kingSq := p.Kings[piece.Us]
	occ := p.Occupied()

	pawns := p.Pawns(piece.Them) & attacks.Pawn[piece.Us][kingSq]
	knights := p.Knights(piece.Them) & attacks.Knight[kingSq]
	bishops := (p.Bishops(piece.Them) | p.Queens(piece.Them)) & attacks.Bishop(kingSq, occ)
	rooks := (p.Rooks(piece.Them) | p.Queens(piece.Them)) & attacks.Rook(kingSq, occ)

	switch {
	case pawns != bitboard.Empty:
		p.CheckMask |= pawns
		p.CheckN++
	case knights != bitboard.Empty:
		p.CheckMask |= knights
		p.CheckN++
	}

	if bishops != bitboard.Empty {
		bishopSq := bishops.LSB()
		p.CheckMask |= attacks.Ray(kingSq, bishopSq) | bitboard.Squares[bishopSq]
		p.CheckN++
	}

	if p.CheckN < 2 && rooks != bitboard.Empty {
		if p.CheckN == 0 && rooks.Count() > 1 {
			// double check by two rooks/queens; no move blocks both
			p.CheckN++
		} else {
			rookSq := rooks.LSB()
			p.CheckMask |= attacks.Ray(kingSq, rookSq) | bitboard.Squares[rookSq]
			p.CheckN++
		}
	}

	if p.CheckN == 0 {
		p.CheckMask = bitboard.All
	}
}

// calculatePinmask finds every friendly piece pinned to Us's king along
// a diagonal (PinnedD) or a rank/file (PinnedHV).
func (p *Position) calculatePinmask() {
	kingSq := p.Kings[piece.Us]

	friends := p.ColorBB[piece.Us]
	enemies := p.ColorBB[piece.Them]

	p.PinnedD = bitboard.Empty
	p.PinnedHV = bitboard.Empty

	for rooks := (p.Rooks(piece.Them) | p.Queens(piece.Them)) & attacks.Rook(kingSq, enemies); rooks != bitboard.Empty; {
		rookSq := rooks.Pop()
		possiblePin := attacks.Ray(kingSq, rookSq) | bitboard.Squares[rookSq]
		if (possiblePin & friends).Count() == 1 {
			p.PinnedHV |= possiblePin
		}
	}

	for bishops := (p.Bishops(piece.Them) | p.Queens(piece.Them)) & attacks.Bishop(kingSq, enemies); bishops != bitboard.Empty; {
		bishopSq := bishops.Pop()
		possiblePin := attacks.Ray(kingSq, bishopSq) | bitboard.Squares[bishopSq]
		if (possiblePin & friends).Count() == 1 {
			p.PinnedD |= possiblePin
		}
	}
}

// seenSquares returns every square attacked by pieces of colour by. The
// by-side king is not treated as a sliding-ray blocker, since it has to
// move off the ray rather than being able to stay and block it.
func (p *Position) seenSquares(by piece.Color) bitboard.Board {
	pawns := p.Pawns(by)
	knights := p.Knights(by)
	bishops := p.Bishops(by)
	rooks := p.Rooks(by)
	queens := p.Queens(by)
	kingSq := p.Kings[by]

	blockers := p.Occupied() &^ p.King(by.Other())

	var seen bitboard.Board
	for pawnBB := pawns; pawnBB != bitboard.Empty; {
		from := pawnBB.Pop()
		seen |= attacks.Pawn[by][from]
	}
	for knights != bitboard.Empty {
		from := knights.Pop()
		seen |= attacks.Knight[from]
	}
	for bishops != bitboard.Empty {
		from := bishops.Pop()
		seen |= attacks.Bishop(from, blockers)
	}
	for rooks != bitboard.Empty {
		from := rooks.Pop()
		seen |= attacks.Rook(from, blockers)
	}
	for queens != bitboard.Empty {
		from := queens.Pop()
		seen |= attacks.Queen(from, blockers)
	}
	seen |= attacks.King[kingSq]

	return seen
}
