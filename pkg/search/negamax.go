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
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/eval/classical"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/order"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/tt"
)

// lateMovePruningCounts[depth] is how many quiet moves a non-PV,
// not-in-check node searches at that depth before giving up on the
// rest of the quiet tail, when the position already looks no better
// than alpha. Index 0 is unused (depth 0 never reaches the move
// loop); depths beyond the table's range are never late-move-pruned.
var lateMovePruningCounts = [...]int{0, 2, 2, 6, 6, 18, 18, 18, 18}

// isMateScore reports whether e is already a forced-mate bound, used
// to keep the in-check extension from re-searching once a mate has
// been found (there is nothing left for the extra ply to refute).
func isMateScore(e eval.Eval) bool {
	return e > eval.WinInMaxPly || e < eval.LoseInMaxPly
}

// negamax is a single recursive function for both sides of the search
// tree: since a Position is always read "Us to move", the side that
// benefits from a higher score is always whoever negamax is being
// called for, so there is no separate maximizing/minimizing branch to
// write out.
// https://www.chessprogramming.org/Negamax
//
// Alpha-beta pruning cuts branches a single refutation has already
// proven worse than an alternative found elsewhere in the tree.
// https://www.chessprogramming.org/Alpha-Beta
func (c *Context) negamax(plys, depth int, alpha, beta eval.Eval, pv *move.Variation) eval.Eval {
	c.nodes++
	if plys > c.seldepth {
		c.seldepth = plys
	}

	isRoot := plys == 0
	isPVNode := beta-alpha != 1 // beta = alpha + 1 during a PVS null-window search

	switch {
	case c.shouldStop():
		return 0
	case !isRoot && c.isRepetition():
		return c.draw()
	case depth <= 0 || plys >= MaxPly:
		return c.quiescence(plys, alpha, beta)
	}

	originalAlpha := alpha

	bestMove := move.Null
	bestEval := -eval.Inf

	// a transposition hit may shortcut the node entirely (non-PV, deep
	// enough entry) or at least seed the hash move for ordering.
	entry, hit := c.table.Probe(c.pos)
	if hit {
		if m, ok := entry.Hint(c.pos); ok {
			bestMove = m
		}

		if !isPVNode && entry.Depth >= depth {
			c.ttHits++
			value := entry.Value.Eval(plys)

			switch entry.Bound {
			case tt.Exact:
				return value
			case tt.LowerBound:
				alpha = max(alpha, value)
			case tt.UpperBound:
				beta = min(beta, value)
			}

			if alpha >= beta {
				return value
			}
		}
	}

	inCheck := c.pos.InCheck()

	// staticEval backs both null-move pruning's margin check and
	// late-move pruning's "position already looks fine" gate; neither
	// applies while in check, so it is left unset (and unused) there.
	var staticEval eval.Eval
	if !inCheck {
		staticEval = eval.Eval(classical.Evaluate(c.pos))
	}

	// noNullMove is recorded into this node's TT entry when a null-move
	// search was attempted here and failed to reach beta, so a later
	// probe of the same position skips straight past the attempt.
	noNullMove := false

	// null-move pruning: pass the move entirely and ask whether the
	// opponent, given a free tempo, can still not beat beta. If even
	// doing nothing holds, the real position is assumed to hold too.
	// Skipped in check (no null move exists), in a PV node (the whole
	// point of a PV node is to find the exact score, not prune it),
	// right after another null move (two in a row proves nothing a
	// single one didn't), too close to the horizon to trust a reduced
	// search, when the static eval does not already reach beta, with too
	// little non-pawn material to rule out zugzwang, or when this
	// exact node already tried a null move and failed per the
	// transposition table.
	if !isRoot && !isPVNode && !inCheck && !c.nullMoveSearch &&
		depth > 4 && staticEval >= beta &&
		c.nonPawnPieceCount() > 1 &&
		!(hit && entry.NoNullMove) &&
		!(hit && entry.HasMove && bestMove.IsCapture() && c.isStrongCapture(bestMove)) {

		reduced := max(depth-4, 1)

		c.pos.MakeNullMove()
		c.pushHistory()
		c.nullMoveSearch = true

		var nullPV move.Variation
		nullScore := -c.negamax(plys+1, reduced, -beta, -beta+1, &nullPV)

		c.nullMoveSearch = false
		c.popHistory()
		c.pos.UnmakeNullMove()

		if nullScore >= beta && !isMateScore(nullScore) {
			return nullScore
		}
		noNullMove = true
	}

	moves := c.pos.Generate()
	if len(moves) == 0 {
		if inCheck {
			return eval.MatedIn(plys)
		}
		return eval.Draw
	}

	picker := order.NewPicker(moves, bestMove, move.Move.IsCapture, c.isStrongCapture, scoreCapture, c.scoreQuiet(plys))

	// late-move pruning only kicks in once the position already looks
	// no better than alpha: a cutoff is unlikely to come from one of
	// the remaining, worse-ordered quiets.
	canLMP := !isPVNode && !inCheck && depth > 0 && depth < len(lateMovePruningCounts) && staticEval <= alpha

	movesSearched := 0
	for {
		m, ok := picker.Next()
		if !ok {
			break
		}

		isQuiet := !m.IsCapture() && !m.IsPromotion()
		if isQuiet && movesSearched > 0 && canLMP && picker.QuietIndex() > lateMovePruningCounts[depth] {
			picker.SkipQuiets()
			continue
		}

		var childPV move.Variation

		c.pos.MakeMove(m)
		c.pushHistory()
		givesCheck := c.pos.InCheck()

		var score eval.Eval
		if movesSearched == 0 {
			score = -c.negamax(plys+1, depth-1, -beta, -alpha, &childPV)
		} else {
			// late move reduction: search later quiets with a reduced
			// depth first, re-searching at full depth only if that
			// beats alpha and looks worth confirming.
			reduced := depth - 1
			if depth >= 3 && movesSearched >= 3 && !m.IsCapture() && !m.IsPromotion() {
				reduced -= reduction(depth, movesSearched)
				reduced = max(reduced, 0)
			}

			score = -c.negamax(plys+1, reduced, -alpha-1, -alpha, &childPV)
			if score > alpha && (reduced < depth-1 || isPVNode) {
				score = -c.negamax(plys+1, depth-1, -beta, -alpha, &childPV)
			}
		}

		// in-check extension: a quiet checking move that already beat
		// alpha at the normal depth is re-searched one ply deeper
		// before being trusted, since a check restricts the replies
		// enough that the extra ply is cheap and checking moves are
		// disproportionately likely to refute a line. Bounded to a
		// narrow depth window and skipped once a mate score is already
		// in hand or inside a null-move sub-search, where the extra
		// ply either cannot matter or would corrupt the null-move
		// verification itself.
		if score > alpha && givesCheck && !m.IsCapture() && !m.IsPromotion() && !m.IsCastle() &&
			depth >= 1 && depth <= 10 && !c.nullMoveSearch &&
			!isMateScore(alpha) && !isMateScore(beta) {
			score = -c.negamax(plys+1, depth, -beta, -alpha, &childPV)
		}

		c.popHistory()
		c.pos.UnmakeMove(m)
		movesSearched++

		if score > bestEval {
			bestMove = m
			bestEval = score

			if score > alpha {
				alpha = score
				pv.Update(m, childPV)

				if alpha >= beta {
					if !m.IsCapture() {
						c.storeKiller(plys, m)
						c.updateHistory(m, depthBonus(depth))
					}
					break
				}
			}
		}
	}

	if !c.stopped {
		var bound tt.Bound
		switch {
		case bestEval <= originalAlpha:
			bound = tt.UpperBound
		case bestEval >= beta:
			bound = tt.LowerBound
		default:
			bound = tt.Exact
		}

		c.table.Store(c.pos, tt.Entry{
			Value:      tt.EvalFrom(bestEval, plys),
			Depth:      depth,
			Bound:      bound,
			HasMove:    !bestMove.IsNull(),
			From:       bestMove.From(),
			To:         bestMove.To(),
			NoNullMove: noNullMove,
		})
	}

	return bestEval
}

// nonPawnPieceCount counts Us's knights, bishops, rooks, and queens:
// null-move pruning refuses to run with too few of them, since a
// position down to king and pawns (or nearly so) is exactly where
// zugzwang makes "a free tempo still holds" an unsound assumption.
func (c *Context) nonPawnPieceCount() int {
	return c.pos.Knights(piece.Us).Count() + c.pos.Bishops(piece.Us).Count() +
		c.pos.Rooks(piece.Us).Count() + c.pos.Queens(piece.Us).Count()
}
