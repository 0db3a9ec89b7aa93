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

import "math/bits"

// reductions is the late-move-reduction table indexed by [depth][move
// index], precomputed once at package init instead of recomputed
// per-node.
var reductions [MaxPly + 1][128]int

func init() {
	log := func(n int) int {
		return 63 - bits.LeadingZeros64(uint64(n))
	}

	for depth := 1; depth <= MaxPly; depth++ {
		for moves := 1; moves < 128; moves++ {
			reductions[depth][moves] = 1 + log(depth)*log(moves)/2
		}
	}
}

// reduction returns the LMR reduction, in plies, for the movesSearched-th
// move (0-indexed) at the given remaining depth, clamped so it never
// reduces depth below zero itself.
func reduction(depth, movesSearched int) int {
	d := min(depth, MaxPly)
	m := min(movesSearched, 127)
	r := reductions[d][m]
	if r > depth-1 {
		r = depth - 1
	}
	return r
}
