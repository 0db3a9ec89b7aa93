// Copyright © 2022 Rak Laptudirm <rak@laptudirm.com>
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

package position

// Perft walks the full legal move tree to the given depth and returns
// the leaf count, the standard move generator correctness/speed
// benchmark. Unlike the teacher's board.Perft, there is no
// post-make legality filter: Generate already returns only legal
// moves, so every generated move is played.
func (p *Position) Perft(depth int) int {
	if depth == 0 {
		return 1
	}

	var nodes int
	for _, m := range p.Generate() {
		p.MakeMove(m)
		nodes += p.Perft(depth - 1)
		p.UnmakeMove(m)
	}
	return nodes
}

// PerftDivide is Perft broken down by root move, the usual tool for
// finding which branch a perft mismatch against a reference count
// lives in: run it at successively shallower depths until the
// mismatched branch narrows down to a single wrong move.
func (p *Position) PerftDivide(depth int) map[string]int {
	counts := make(map[string]int)
	if depth == 0 {
		return counts
	}

	for _, m := range p.Generate() {
		p.MakeMove(m)
		counts[m.String()] = p.Perft(depth - 1)
		p.UnmakeMove(m)
	}
	return counts
}
