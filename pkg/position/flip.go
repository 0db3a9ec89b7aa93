// Copyright © 2022 Rak Laptudirm <raklaptudirm@gmail.com>
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

import (
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// Flip mirrors the position vertically and swaps every piece's
// colour, turning "Us to move" into "Us to move" again but from the
// other player's point of view. This is a pure rank mirror: file
// order within a rank does not change, which is exactly what
// Bitboard.Flip (a byte reversal) and Square.Flip (mirror the rank,
// keep the file) compute.
//
// Every move flips the position after being made, which is what lets
// the rest of the engine assume "Us" always means "whoever is about
// to move" instead of branching on colour everywhere. Check/pin state
// is left stale by Flip; callers must call Recompute afterwards.
func (p *Position) Flip() {
	var placement [square.N]piece.Piece
	for s := square.Square(0); s < square.N; s++ {
		placement[s] = p.Placement[s.Flip()].Flip()
	}
	p.Placement = placement

	for t := piece.NoType; t < piece.TypeN; t++ {
		p.PieceBB[t] = p.PieceBB[t].Flip()
	}

	usBB, themBB := p.ColorBB[piece.Us], p.ColorBB[piece.Them]
	p.ColorBB[piece.Us] = themBB.Flip()
	p.ColorBB[piece.Them] = usBB.Flip()

	usKing, themKing := p.Kings[piece.Us], p.Kings[piece.Them]
	p.Kings[piece.Us] = themKing.Flip()
	p.Kings[piece.Them] = usKing.Flip()

	p.CastlingRights = p.CastlingRights.Flip()
	p.EnPassantTarget = p.EnPassantTarget.Flip()

	p.Key0, p.Key1 = p.Key1, p.Key0

	p.hangingSet = [square.N]bool{}
}
