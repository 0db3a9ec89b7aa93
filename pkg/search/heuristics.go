// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
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

package search

import (
	"github.com/corvidchess/corvid/pkg/attacks"
	"github.com/corvidchess/corvid/pkg/bitboard"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// mvvLva scores a capture by victim value first, attacker value
// second ("most valuable victim, least valuable attacker"), so that
// PxQ sorts ahead of QxP regardless of either move's absolute gain.
// Table and offset lifted from the teacher's pkg/search/eval/move.go;
// non-capturing promotions (attacker column 0, "no piece") use the
// pawn-victim row, since every promotion is itself a pawn move.
//
//	                  attacker: -   P   N   B   R   Q   K
var mvvLva = [7][7]int32{
	1: {16, 15, 14, 13, 12, 11, 10}, // victim: pawn
	2: {26, 25, 24, 23, 22, 21, 20}, // victim: knight
	3: {36, 35, 34, 33, 32, 31, 30}, // victim: bishop
	4: {46, 45, 44, 43, 42, 41, 40}, // victim: rook
	5: {56, 55, 54, 53, 52, 51, 50}, // victim: queen
}

// scoreCapture orders captures and promotions by mvvLva; a promotion
// that isn't also a capture is still worth ordering ahead of a plain
// quiet move, so it is scored as an attacker-less pawn capture. A move
// that is neither (reachable only from quiescence's in-check move
// list, which is unfiltered) sorts to the bottom, below every real
// capture.
func scoreCapture(m move.Move) int32 {
	switch {
	case m.Captured() != piece.None:
		return mvvLva[m.Captured().Type()][m.Piece().Type()]
	case m.IsPromotion():
		// a non-capturing promotion: m.Piece() is the promoted-to
		// piece, not an attacker, so score it attacker-less.
		return mvvLva[1][piece.NoType]
	case m.IsCapture():
		// en passant (captured pawn isn't on the To square): score as a
		// pawn-victim capture by the capturing pawn.
		return mvvLva[1][m.Piece().Type()]
	default:
		return 0
	}
}

// isStrongCapture singles out the capture tier most likely to refute a
// line outright, per spec §4.7: queen captures, en passant, queen
// promotions, and rook captures are strong unconditionally except for
// the one case where a rook capture is itself immediately recouped by
// a pawn recapture that promotes; anything else strong-or-even by
// static exchange evaluation.
func (c *Context) isStrongCapture(m move.Move) bool {
	switch {
	case m.Captured().Type() == piece.Queen:
		return true
	case m.Tag() == move.EnPassant:
		return true
	case m.IsPromotion() && m.Piece().Type() == piece.Queen:
		return true
	case m.Captured().Type() == piece.Rook:
		return !c.pawnRecapturePromotes(m.To())
	default:
		return eval.SEE(c.pos, m, 0)
	}
}

// pawnRecapturePromotes reports whether one of Them's pawns attacks s
// and, by recapturing there, would promote: the one case in which
// winning a rook on s is not actually a clean gain, since the reply
// both recoups the material and creates a new queen.
func (c *Context) pawnRecapturePromotes(s square.Square) bool {
	return s.Rank() == square.Rank1 &&
		attacks.Pawn[piece.Us][s]&c.pos.Pawns(piece.Them) != bitboard.Empty
}

// killerBonus separates a killer's score range from the plain history
// table, so a killer never loses to a high-history quiet and vice
// versa: killers always sort above history, matching every mainstream
// engine's tiering.
const killerBonus = 1 << 20

// storeKiller records killer as one of the two killer moves for plys,
// bumping the previous first killer down to second. A capture is
// never stored: it is already ordered by mvvLva, so a killer slot on
// it would just waste one of the two slots.
func (c *Context) storeKiller(plys int, killer move.Move) {
	if !killer.IsCapture() && killer != c.killers[plys][0] {
		c.killers[plys][1] = c.killers[plys][0]
		c.killers[plys][0] = killer
	}
}

// updateHistory adds bonus to the quiet move's history score, using
// the same decaying update as the teacher's: the step shrinks the
// closer the entry already is to the ±32768 limit on bonus's side,
// which keeps scores bounded and keeps the table from being dominated
// by whichever move was rewarded most recently.
func (c *Context) updateHistory(m move.Move, bonus int32) {
	if m.IsCapture() {
		return
	}
	entry := &c.history[m.Piece().Type()][m.To()]
	*entry += bonus - *entry*abs32(bonus)/32768
}

// historyScore reads back the quiet move's history entry for move
// ordering.
func (c *Context) historyScore(m move.Move) int32 {
	return c.history[m.Piece().Type()][m.To()]
}

// depthBonus is the history bonus awarded to a move that caused a
// beta cutoff at the given depth: deeper cutoffs are stronger
// evidence, so they move the history table further, capped so one
// huge cutoff can't saturate the whole table.
func depthBonus(depth int) int32 {
	return int32(min(2000, depth*155))
}

func abs32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}

// scoreQuiet orders a quiet move by killer tier first, history second.
func (c *Context) scoreQuiet(plys int) func(move.Move) int32 {
	return func(m move.Move) int32 {
		switch m {
		case c.killers[plys][0]:
			return killerBonus + 1
		case c.killers[plys][1]:
			return killerBonus
		default:
			return c.historyScore(m)
		}
	}
}
