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

package order

import "github.com/corvidchess/corvid/pkg/move"

// stage identifies which tier of the priority order a Picker is
// currently handing out moves from.
type stage int

const (
	stageHash stage = iota
	stageStrongCaptures
	stageCaptures
	stageQuiets
	stageDone
)

// Picker hands out the moves of a position in search order: the
// transposition table's hash move first, then "strong" captures (as
// judged by isStrongCapture — winning or at-worst-even exchanges, the
// tier most likely to refute a line outright), then the remaining
// captures from strongest to weakest (by whatever score function the
// caller supplies, typically SEE/MVV-LVA), then quiet moves ordered by
// killer and history scores. It does not itself decide late-move
// reductions or late-move pruning of the quiet tail; the search
// driver, which knows the move index and current depth, is
// responsible for cutting the quiet tier short or reducing the
// moves it pulls from it.
type Picker struct {
	hash    move.Move
	hasHash bool

	strong   List[int32]
	captures List[int32]
	quiets   List[int32]

	stage stage
	index int
}

// NewPicker partitions moves (excluding hashMove, which is handed out
// first regardless of where it appears in moves) into strong
// captures, remaining captures, and quiets using isCapture and
// isStrongCapture, and scores each capture tier with scoreCapture and
// the quiet tier with scoreQuiet.
func NewPicker(
	moves []move.Move,
	hashMove move.Move,
	isCapture, isStrongCapture func(move.Move) bool,
	scoreCapture, scoreQuiet func(move.Move) int32,
) *Picker {
	strong := make([]move.Move, 0, len(moves))
	captures := make([]move.Move, 0, len(moves))
	quiets := make([]move.Move, 0, len(moves))

	for _, m := range moves {
		if m == hashMove {
			continue
		}
		switch {
		case isCapture(m) && isStrongCapture(m):
			strong = append(strong, m)
		case isCapture(m):
			captures = append(captures, m)
		default:
			quiets = append(quiets, m)
		}
	}

	return &Picker{
		hash:     hashMove,
		hasHash:  !hashMove.IsNull(),
		strong:   NewList(strong, scoreCapture),
		captures: NewList(captures, scoreCapture),
		quiets:   NewList(quiets, scoreQuiet),
	}
}

// QuietIndex returns how many quiet moves have already been picked,
// the index the search driver uses to decide late-move reductions and
// late-move pruning against its schedules.
func (p *Picker) QuietIndex() int {
	if p.stage < stageQuiets {
		return 0
	}
	return p.index
}

// Next returns the next move in priority order, and false once the
// list is exhausted.
func (p *Picker) Next() (move.Move, bool) {
	switch p.stage {
	case stageHash:
		p.stage = stageStrongCaptures
		if p.hasHash {
			return p.hash, true
		}
		fallthrough
	case stageStrongCaptures:
		if p.index < p.strong.Len() {
			m := p.strong.PickNext(p.index)
			p.index++
			return m, true
		}
		p.stage = stageCaptures
		p.index = 0
		fallthrough
	case stageCaptures:
		if p.index < p.captures.Len() {
			m := p.captures.PickNext(p.index)
			p.index++
			return m, true
		}
		p.stage = stageQuiets
		p.index = 0
		fallthrough
	case stageQuiets:
		if p.index < p.quiets.Len() {
			m := p.quiets.PickNext(p.index)
			p.index++
			return m, true
		}
		p.stage = stageDone
		fallthrough
	default:
		return move.Null, false
	}
}

// SkipQuiets causes every subsequent Next call to skip directly to
// done, used once the search driver decides to late-move-prune the
// remainder of the quiet tier.
func (p *Picker) SkipQuiets() {
	if p.stage == stageQuiets || p.stage == stageCaptures {
		p.stage = stageDone
	}
}
