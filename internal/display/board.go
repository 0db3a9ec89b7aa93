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

// Package display renders a Position for a human reading the console
// output of the "d" debug command, layered over *position.Position's
// own plain-text String grid.
package display

import (
	"strings"

	"github.com/mitchellh/colorstring"

	"github.com/corvidchess/corvid/pkg/position"
)

// Board colorizes pos.String()'s rank-8-to-1 grid: "Us" pieces (the
// uppercase half of piece.Piece.String(), regardless of which side is
// actually white) are cyan, "Them" pieces are red, empty squares dim,
// so the reader never has to case-shift between White/Black and
// Us/Them while debugging the side-relative board.
func Board(pos *position.Position) string {
	lines := strings.SplitN(pos.String(), "\n", 9)

	var b strings.Builder
	for i := 0; i < 8 && i < len(lines); i++ {
		b.WriteString(colorizeRank(lines[i]))
		b.WriteByte('\n')
	}
	for _, tail := range lines[min(8, len(lines)):] {
		if tail == "" {
			continue
		}
		b.WriteString(tail)
		b.WriteByte('\n')
	}

	return colorstring.Color(b.String())
}

// colorizeRank colorizes one line of pos.String()'s grid: eight
// one-character squares separated by single spaces, so square i sits
// at byte offset i*2 — Fields can't be used here since an empty
// square's own character is itself a space (piece.None.String()),
// indistinguishable from a separator once split.
func colorizeRank(rank string) string {
	var b strings.Builder
	for i := 0; i < 8 && i*2 < len(rank); i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		s := string(rank[i*2])
		switch {
		case s == " ":
			b.WriteString("[dim].[reset]")
		case s == strings.ToUpper(s):
			b.WriteString("[cyan]" + s + "[reset]")
		default:
			b.WriteString("[red]" + s + "[reset]")
		}
	}
	return b.String()
}
