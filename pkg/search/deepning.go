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
	"time"

	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/move"
)

// iterativeDeepening calls negamax at successively greater depths
// until the depth limit is reached or the time/node budget runs out,
// returning the last fully completed iteration's line and score.
// Searching shallow depths first is not wasted work: they populate
// the transposition table with scores and a move-ordering hint that
// make the next, deeper iteration converge far faster than searching
// straight to it would.
// https://www.chessprogramming.org/Iterative_Deepening
func (c *Context) iterativeDeepening() (move.Variation, eval.Eval) {
	var score eval.Eval
	var pv move.Variation

	start := time.Now()

	for c.depth = 1; c.depth <= c.limits.Depth; c.depth++ {
		c.seldepth = 0

		var childPV move.Variation
		var childScore eval.Eval
		if c.depth >= 2 {
			childScore, childPV = c.aspirationWindow(c.depth, score)
		} else {
			childScore = c.negamax(0, c.depth, -eval.Inf, eval.Inf, &childPV)
		}

		if c.stopped {
			// the unfinished iteration's line may be garbage (cut off
			// mid-search), so the previous, complete iteration's pv is
			// reported instead.
			break
		}

		pv, score = childPV, childScore

		c.report(Report{
			Depth:    c.depth,
			SelDepth: c.seldepth,
			Nodes:    c.nodes,
			Time:     time.Since(start),
			Score:    score,
			PV:       pv,
		})

		if score > eval.WinInMaxPly || score < eval.LoseInMaxPly {
			// a forced mate has been found; searching deeper cannot
			// improve on delivering it as fast as possible.
			break
		}
	}

	return pv, score
}
