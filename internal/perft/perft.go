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

// Package perft drives position.Position's move-tree leaf count with a
// per-root-move progress bar, the interactive companion to the "perft"
// console command. Grounded on the teacher's
// pkg/search/eval/classical/tuner.Tuner's progressbar usage, the only
// place in the pack that reports progress over a batch of expensive
// per-item work the way a perft divide does over its root moves.
package perft

import (
	"github.com/schollz/progressbar/v3"

	"github.com/corvidchess/corvid/pkg/position"
)

// Divide runs PerftDivide at depth, reporting progress over the root
// moves on a bar as each one's subtree finishes.
func Divide(pos *position.Position, depth int) (map[string]int, int) {
	if depth <= 0 {
		return map[string]int{}, 1
	}

	moves := pos.Generate()

	bar := progressbar.NewOptions(
		len(moves),
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionSetItsString("move"),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
	)

	counts := make(map[string]int, len(moves))
	total := 0

	for _, m := range moves {
		pos.MakeMove(m)
		n := pos.Perft(depth - 1)
		pos.UnmakeMove(m)

		counts[m.String()] = n
		total += n
		_ = bar.Add(1)
	}

	return counts, total
}
