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
)

// quiescence is a depth-limited search of only "noisy" moves
// (captures, including en passant and capturing promotions to any
// piece), resolving a leaf's tactics before trusting its static
// evaluation and thereby avoiding the horizon effect a plain depth-0
// cutoff would suffer from. A promotion that captures nothing is not
// searched here: GenerateCaptures does not produce one.
// https://www.chessprogramming.org/Quiescence_Search
//
// No corresponding lowercase quiescence exists anywhere in the
// teacher's pkg/search snapshot (its 2023-generation negamax.go calls
// search.quiescence, but only the older, differently-typed
// Quiescence/evaluation.Rel version is actually present in the
// pack — see DESIGN.md). This function is newly authored, following
// that older version's algorithm shape (stand-pat, then only
// captures, normal move generation when in check so a
// forced evasion is never missed) while using this package's current
// types (eval.Eval, classical.Evaluate) throughout.
func (c *Context) quiescence(plys int, alpha, beta eval.Eval) eval.Eval {
	c.nodes++
	if plys > c.seldepth {
		c.seldepth = plys
	}

	if c.shouldStop() {
		return 0
	}
	if c.isRepetition() {
		return c.draw()
	}
	if plys >= MaxPly {
		return eval.Eval(classical.Evaluate(c.pos))
	}

	inCheck := c.pos.InCheck()

	var standPat eval.Eval
	if !inCheck {
		standPat = eval.Eval(classical.Evaluate(c.pos))
		if standPat >= beta {
			return standPat
		}
		alpha = max(alpha, standPat)
	}

	var moves []move.Move
	if inCheck {
		// a forced evasion may be a quiet move (a block or king step),
		// so every legal move must be considered, not just captures.
		moves = c.pos.Generate()
	} else {
		moves = c.pos.GenerateCaptures()
	}

	if len(moves) == 0 {
		if inCheck {
			return eval.MatedIn(plys)
		}
		return standPat
	}

	best := standPat
	if inCheck {
		best = -eval.Inf
	}

	list := order.NewList(moves, scoreCapture)
	for i := 0; i < list.Len(); i++ {
		m := list.PickNext(i)
		if !inCheck && !m.IsCapture() && !m.IsPromotion() {
			continue
		}

		c.pos.MakeMove(m)
		c.pushHistory()
		score := -c.quiescence(plys+1, -beta, -alpha)
		c.popHistory()
		c.pos.UnmakeMove(m)

		if score > best {
			best = score
			if score > alpha {
				alpha = score
				if alpha >= beta {
					break
				}
			}
		}
	}

	return best
}
