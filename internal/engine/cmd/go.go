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

package cmd

import (
	"errors"
	"time"

	"github.com/corvidchess/corvid/internal/engine/context"
	"github.com/corvidchess/corvid/pkg/console/cmd"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/corvidchess/corvid/pkg/timecontrol"
)

// Command go
//
// Enable move-making for the side to move and start thinking on the
// current position. Adapted from the teacher's UCI "go": spec §6.3
// carries no ponder/searchmoves/mate-in-N flags (pondering is an
// explicit Non-goal), so the time control comes entirely from the
// state sd/st/level/time/otim have already accumulated on engine
// rather than from flags on the command itself.
func NewGo(engine *context.Engine) cmd.Command {
	return cmd.Command{
		Name: "go",
		Run: func(interaction cmd.Interaction) error {
			engine.Force = false
			return think(engine, &interaction)
		},
	}
}

// replier is whatever think/autoReply need to announce a move or
// outcome back to the driver: both cmd.Interaction (a command-issued
// "go") and clientReplier (a bare move typed with no command at all)
// satisfy it.
type replier interface {
	Reply(a ...any) (int, error)
	Replyf(format string, a ...any) (int, error)
}

// think launches one search over the current position and, once it
// completes, plays the chosen move and announces it, on its own
// goroutine so the dispatch loop stays free to accept "ping" and
// other commands meanwhile, the way the teacher's own "go" command does.
func think(engine *context.Engine, interaction replier) error {
	if engine.Search.InProgress() {
		return errors.New("go: search already in progress")
	}

	limits := buildLimits(engine)

	engine.Thinking = true
	go func() {
		defer func() { engine.Thinking = false }()

		pv, _, err := engine.Search.Search(limits)
		if err != nil {
			interaction.Reply(err)
			return
		}

		best := pv.Move(0)
		if best.IsNull() {
			// no legal move: checkmate or stalemate on the side to move
			interaction.Reply(outcome(engine))
			return
		}

		engine.BestMove = best
		interaction.Replyf("move %s", engine.Pos.LAN(best))

		engine.Play(best)

		if len(engine.Pos.Generate()) == 0 {
			interaction.Reply(outcome(engine))
			return
		}

		if !engine.Force {
			autoReply(engine, interaction)
		}
	}()

	return nil
}

// autoReply starts a fresh search to answer a move just played on the
// board, unless the game has already ended or Force re-engaged since.
func autoReply(engine *context.Engine, interaction replier) {
	if engine.Force || engine.Search.InProgress() {
		return
	}
	_ = think(engine, interaction)
}

// outcome reports the game-end annotation for the current position,
// which has no legal moves for the side to move.
func outcome(engine *context.Engine) string {
	if engine.Pos.InCheck() {
		if engine.Pos.WhiteToMove {
			return "0-1 {Black mates}"
		}
		return "1-0 {White mates}"
	}
	return "1/2-1/2 {Stalemate}"
}

// buildLimits turns the clock/depth/movetime state sd/st/level/time/
// otim have accumulated into a search.Limits.
func buildLimits(engine *context.Engine) search.Limits {
	limits := search.Limits{Depth: engine.DepthLimit}

	switch {
	case engine.MoveTimeMS > 0:
		limits.Time = &timecontrol.Fixed{Duration: time.Duration(engine.MoveTimeMS) * time.Millisecond}

	case engine.Clock.Time > 0:
		limits.Time = &timecontrol.Normal{
			Us:        engine.Clock,
			MovesToGo: engine.MovesToGo,
		}

	default:
		limits.Time = &timecontrol.Infinite{}
	}

	return limits
}
