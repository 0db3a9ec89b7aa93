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

// Package search implements the alpha-beta search driver: negamax
// with PVS, quiescence, the standard pruning/reduction heuristics, and
// iterative deepening under a time or node budget. Grounded file for
// file on the teacher's 2023-generation pkg/search (negamax.go,
// quiescence.go, aspiration.go, deepning.go, heuristics.go,
// reductions.go, stats.go), adapted throughout from the teacher's
// absolute board.Board to this module's side-relative
// *position.Position: a search node's "Us"/"Them" already match the
// position's own, so there is no separate side-to-move bookkeeping to
// negate scores by at the root the way an absolute-board engine needs.
package search

import (
	"errors"
	"fmt"

	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/position"
	"github.com/corvidchess/corvid/pkg/timecontrol"
	"github.com/corvidchess/corvid/pkg/tt"
	"github.com/corvidchess/corvid/pkg/zobrist"
)

// MaxPly is the maximum depth, in plies, any search branch can reach;
// it bounds the killer table and caps iterative deepening and any
// extension from pushing past it.
const MaxPly = 128

// NewContext creates a search Context sharing the given transposition
// table; reusing a table across Contexts/games is how it stays useful
// across a GUI's sequence of "position"/"go" commands. Start a fresh
// Context (and a cleared table) for a new game, so stale killers and
// history never leak across games.
//
// report is called once per completed iterative-deepening iteration;
// a nil report prints the iteration to stdout directly, matching the
// teacher's own deepning.go before a driver wired a callback in.
func NewContext(table *tt.Table, report func(Report)) *Context {
	if report == nil {
		report = func(r Report) { fmt.Println(r.String()) }
	}
	return &Context{table: table, stopped: true, report: report}
}

// Context holds all of one search's mutable state: the position being
// searched, its shared transposition table, move-ordering heuristics,
// and the repetition history needed to detect draws.
type Context struct {
	pos   *position.Position
	table *tt.Table

	// repetition holds the zobrist keys (Key0) of the position reached
	// by each move of the game and of the search line, oldest first;
	// since a key is appended after its move is made, the last entry is
	// the position currently being searched; isRepetition scans it backwards
	// instead of hashing a separate set, since a draw only ever needs
	// the ancestor path, not arbitrary membership.
	repetition []zobrist.Key

	killers [MaxPly][2]move.Move
	// history drops the side dimension the teacher's table needs
	// (board.SideToMove): since a Position is always viewed as "Us to
	// move", the same [piece, to-square] slot applies regardless of
	// which real colour is moving, exactly like classical.Weights'
	// single-sided PieceSquare table.
	history [7][64]int32

	// nullMoveSearch is true while a null-move search (and everything
	// beneath it) is in progress, so a descendant node never tries a
	// second null move back to back.
	nullMoveSearch bool

	time timecontrol.Manager

	// report is invoked once per completed iterative-deepening
	// iteration; set once by NewContext, never nil.
	report func(Report)

	limits  Limits
	stopped bool

	nodes    int
	ttHits   int
	seldepth int
	depth    int
}

// Limits bounds how long and how deep a search may run.
type Limits struct {
	Nodes int // 0 means unbounded
	Depth int // 0 means MaxPly

	Infinite bool
	Time     timecontrol.Manager
}

// SetPosition points the context at pos for the next search; pos is
// used (and mutated via MakeMove/UnmakeMove) in place, not copied.
// history is the Key0 of the position reached by each move played so
// far, oldest first (so it ends with pos's own key once a move has been
// played), used for repetition detection.
func (c *Context) SetPosition(pos *position.Position, history []zobrist.Key) {
	c.pos = pos
	c.repetition = history
}

// Search runs iterative deepening under limits and returns the best
// line found and its evaluation.
func (c *Context) Search(limits Limits) (move.Variation, eval.Eval, error) {
	if c.pos == nil {
		return move.Variation{}, 0, errors.New("search: no position set")
	}
	them := c.pos.King(piece.Them)
	if them != 0 && c.pos.IsAttacked(them.LSB(), piece.Us) {
		// the side not to move is in check: reachable only by setting
		// up a FEN by hand, since MakeMove/Generate never produce it.
		return move.Variation{}, eval.Inf, errors.New("search: position is illegal")
	}

	c.start(limits)
	defer c.Stop()

	pv, score := c.iterativeDeepening()
	return pv, score, nil
}

// InProgress reports whether a search is currently running.
func (c *Context) InProgress() bool { return !c.stopped }

// Stop ends any search in progress as soon as the next node-count
// checkpoint is reached.
func (c *Context) Stop() { c.stopped = true }

func (c *Context) start(limits Limits) {
	if limits.Depth <= 0 || limits.Depth > MaxPly {
		limits.Depth = MaxPly
	}
	c.limits = limits
	c.time = limits.Time
	if c.time == nil {
		c.time = &timecontrol.Infinite{}
	}

	c.nodes, c.ttHits, c.seldepth = 0, 0, 0
	c.stopped = false
	c.time.GetDeadline()
}

// shouldStop is polled at every node; checking the clock is relatively
// expensive, so it is only actually consulted once every 2048 nodes
// (the low bits of the node counter are as good a sampling clock as
// any and cost nothing extra to compute).
func (c *Context) shouldStop() bool {
	switch {
	case c.stopped:
		return true
	case c.nodes&2047 != 0, c.limits.Infinite:
		return false
	case c.limits.Nodes != 0 && c.nodes > c.limits.Nodes, c.time.Expired():
		c.Stop()
		return true
	default:
		return false
	}
}

// draw returns the score for a position this search has judged drawn,
// nudged away from exactly zero and varied by node count so that the
// search does not get stuck always preferring the same repetition
// path purely by move-ordering accident.
func (c *Context) draw() eval.Eval {
	return eval.Eval(4 - (c.nodes & 7))
}

// isRepetition reports whether the current position's hash already
// occurred earlier in the game or search line, or the fifty-move
// counter alone forces a draw.
func (c *Context) isRepetition() bool {
	if c.pos.HalfMoveClock >= 100 {
		return true
	}
	if c.pos.HalfMoveClock < 4 {
		return false
	}
	hash := c.pos.Key0
	n := len(c.repetition)
	// the stack's last entry is the current position itself, so the
	// position d plies back is at n-1-d. A repeat needs an even number
	// of plies back (the recurring position must have the same side to
	// move); HalfMoveClock bounds how far back one could possibly be,
	// since a capture or pawn move resets it and can never repeat
	// across that reset.
	for i := 3; i <= c.pos.HalfMoveClock+1 && i <= n; i += 2 {
		if c.repetition[n-i] == hash {
			return true
		}
	}
	return false
}

// pushHistory/popHistory extend/retract the repetition ancestor stack
// as the search descends through MakeMove and backtracks through
// UnmakeMove.
func (c *Context) pushHistory() { c.repetition = append(c.repetition, c.pos.Key0) }
func (c *Context) popHistory()  { c.repetition = c.repetition[:len(c.repetition)-1] }
