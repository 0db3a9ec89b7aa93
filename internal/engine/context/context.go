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

// Package context holds the state internal/engine/cmd's commands share:
// the position being played, its game history, the clocks and depth/
// time limits set by sd/st/level/time/otim, and the search context
// itself. Grounded on the teacher's internal/engine/context, adapted
// from UCI's Searching/Pondering/OptionSchema model to spec §6.3's
// xboard-ish new/force/go surface, which has no pondering (an explicit
// Non-goal) and no generic setoption verb.
package context

import (
	"github.com/corvidchess/corvid/pkg/console"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/position"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/corvidchess/corvid/pkg/timecontrol"
	"github.com/corvidchess/corvid/pkg/tt"
	"github.com/corvidchess/corvid/pkg/zobrist"
)

// Engine is the shared state of every command in internal/engine/cmd.
type Engine struct {
	// Client is the console dispatch loop this Engine is wired into.
	Client *console.Client

	Table  *tt.Table
	Search *search.Context

	// Pos is the position commands operate on. Search.SetPosition is
	// kept in sync with it on every Reset/Play/Undo/Redo, since the
	// search context keeps its own pointer and repetition slice.
	Pos *position.Position

	// History is every move played since the last "new"/"setboard",
	// oldest first, parallel to repetition (one Key0 per played ply).
	// Redo is what "undo" popped off it, in the order needed to replay
	// it back with "redo".
	History     []move.Move
	repetition  []zobrist.Key
	Redo        []move.Move
	redoKeys    []zobrist.Key

	// Force disables automatic move-making: while true, a move applied
	// to Pos (by a bare move command or "go") is never answered by a
	// search of its own. Reset (and so "setboard") turns it on; "new"
	// and "go" clear it.
	Force bool

	// Thinking is true for the duration of an in-progress search.
	Thinking bool

	// HashMB is the transposition table's current size, set by the
	// "memory" command.
	HashMB int

	// DepthLimit is the iterative-deepening depth cap set by "sd"; 0
	// means unset (search.Context fills in its own default).
	DepthLimit int

	// MoveTimeMS, if nonzero, is the fixed per-move budget set by "st",
	// which overrides the clock-derived budget entirely.
	MoveTimeMS int

	// Clock is Us's own remaining time and per-move increment ("time"/
	// "level"); Opponent is Them's, tracked only for display ("otim").
	Clock, Opponent timecontrol.Clock

	// MovesToGo is the tournament time control's move count set by
	// "level"'s MPS field; 0 means sudden death (Normal estimates one).
	MovesToGo int

	// BestMove is the most recent search's chosen move, reported by
	// "hint" and replayed onto Pos by "go" or an auto-reply.
	BestMove move.Move
}

// Reset replaces Pos (and Search's view of it) with pos, clearing game
// history: used by both "new" and "setboard".
func (e *Engine) Reset(pos *position.Position) {
	e.Pos = pos
	e.History = nil
	e.repetition = nil
	e.Redo = nil
	e.redoKeys = nil
	e.Force = true
	e.BestMove = move.Null
	e.Search.SetPosition(e.Pos, nil)
}

// Play applies m to Pos, appends it to History, and clears Redo: any
// move played forks away from whatever had been undone.
func (e *Engine) Play(m move.Move) {
	e.Pos.MakeMove(m)
	e.History = append(e.History, m)
	e.repetition = append(e.repetition, e.Pos.Key0)
	e.Redo = nil
	e.redoKeys = nil
	e.Search.SetPosition(e.Pos, e.repetition)
}

// Undo reverses the last played move, moving it onto Redo. It reports
// false if there is no move to undo.
func (e *Engine) Undo() bool {
	n := len(e.History) - 1
	if n < 0 {
		return false
	}

	m := e.History[n]
	e.History = e.History[:n]

	e.Redo = append(e.Redo, m)
	e.redoKeys = append(e.redoKeys, e.repetition[n])
	e.repetition = e.repetition[:n]

	e.Pos.UnmakeMove(m)
	e.Search.SetPosition(e.Pos, e.repetition)
	return true
}

// ReplayRedo replays the last move Undo reversed. It reports false if there
// is nothing to redo.
func (e *Engine) ReplayRedo() bool {
	n := len(e.Redo) - 1
	if n < 0 {
		return false
	}

	m := e.Redo[n]
	key := e.redoKeys[n]
	e.Redo = e.Redo[:n]
	e.redoKeys = e.redoKeys[:n]

	e.Pos.MakeMove(m)
	e.History = append(e.History, m)
	e.repetition = append(e.repetition, key)
	e.Search.SetPosition(e.Pos, e.repetition)
	return true
}
