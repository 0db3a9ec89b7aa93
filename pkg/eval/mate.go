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

package eval

import "fmt"

// Eval is a relative centipawn evaluation: positive favours the side
// to move, negative the other side. Search works in Eval throughout;
// classical.Evaluate's plain centipawn int gets wrapped into one at
// the leaves.
//
// Unlike the teacher, which sizes Inf/Mate as math.MaxInt32/2 (its
// tt.Entry stores a full-width Eval field, so headroom is free), this
// module's transposition table (pkg/tt) packs a score into a 16-bit
// slot field per spec §4.6. Inf and Mate are therefore kept small
// enough to round-trip through int16 with room to spare for the
// ply-distance adjustment added at the extremes.
type Eval int

const (
	Inf  Eval = 32001
	Mate Eval = Inf - 1 // Inf itself is reserved for "king capture"
	Draw Eval = 0

	// MaxMatePly bounds how many plies deep a forced mate can be
	// found at; WinInMaxPly/LoseInMaxPly mark the mate-score window
	// so that every ordinary evaluation classical.Evaluate can
	// produce stays well inside it (spec §4.5's "never returns
	// ±max_value"), and a search result outside the window is
	// unambiguously a forced mate.
	MaxMatePly   = 246
	WinInMaxPly  Eval = Mate - 2*MaxMatePly
	LoseInMaxPly Eval = -WinInMaxPly
)

// MatedIn is the score for being checkmated in the given number of
// plies from the current node: longer lines score higher so the
// search prefers to delay an inevitable mate.
func MatedIn(plies int) Eval {
	return -Mate + Eval(plies)
}

// MateIn is the score for delivering checkmate in the given number of
// plies from the current node.
func MateIn(plies int) Eval {
	return Mate - Eval(plies)
}

// String renders a UCI-style "cp N" or "mate N" score string.
func (e Eval) String() string {
	switch {
	case e > WinInMaxPly:
		plies := Mate - e
		return fmt.Sprintf("mate %d", (plies+1)/2)
	case e < LoseInMaxPly:
		plies := -Mate - e
		return fmt.Sprintf("mate %d", (plies+1)/2)
	default:
		return fmt.Sprintf("cp %d", e)
	}
}
