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

import (
	"fmt"
	"strings"

	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// LAN renders m in coordinate notation (e.g. "e2e4", "e7e8q") on the
// board's real squares. Moves are stored relative to the side to move,
// so a Black move's squares are flipped back before rendering.
func (p *Position) LAN(m move.Move) string {
	if p.WhiteToMove || m.IsNull() {
		return m.String()
	}
	return move.New(m.From().Flip(), m.To().Flip(), m.Piece(), m.Captured(), m.Tag()).String()
}

// SAN renders m in standard algebraic notation relative to the current
// position, including the check ('+') and checkmate ('#') suffixes
// determined by playing the move out. p is left unchanged.
func (p *Position) SAN(m move.Move) string {
	var san string

	switch m.Tag() {
	case move.CastleKingSide:
		san = "O-O"
	case move.CastleQueenSide:
		san = "O-O-O"
	default:
		san = p.sanBody(m)
	}

	p.MakeMove(m)
	switch {
	case p.CheckN > 0 && len(p.Generate()) == 0:
		san += "#"
	case p.CheckN > 0:
		san += "+"
	}
	p.UnmakeMove(m)

	return san
}

func (p *Position) sanBody(m move.Move) string {
	from, to := m.From(), m.To()
	if !p.WhiteToMove {
		to = to.Flip()
	}
	movingType := m.Piece().Type()
	// A promotion's m.Piece() reports the promoted-to type, not Pawn,
	// but SAN still treats the move as a pawn move: no piece letter,
	// and disambiguation (if any) is by origin file alone.
	isPawn := movingType == piece.Pawn || m.Tag() == move.Promotion

	var sb strings.Builder

	if !isPawn {
		sb.WriteString(movingType.String())
		sb.WriteString(p.disambiguate(m))
	} else if m.IsCapture() {
		sb.WriteString(from.File().String())
	}

	if m.IsCapture() {
		sb.WriteString("x")
	}

	sb.WriteString(to.String())

	if m.Tag() == move.Promotion {
		sb.WriteString("=")
		sb.WriteString(m.Piece().Type().String())
	}

	return sb.String()
}

// disambiguate returns the file, rank, or full square qualifier SAN
// needs when more than one legal move of the same piece type can
// reach m's destination square.
func (p *Position) disambiguate(m move.Move) string {
	from := m.From()
	movingType := m.Piece().Type()

	sameFile, sameRank, ambiguous := false, false, false
	for _, other := range p.Generate() {
		if other == m || other.To() != m.To() || other.Piece().Type() != movingType {
			continue
		}
		ambiguous = true
		if other.From().File() == from.File() {
			sameFile = true
		}
		if other.From().Rank() == from.Rank() {
			sameRank = true
		}
	}

	if !p.WhiteToMove {
		from = from.Flip()
	}

	switch {
	case !ambiguous:
		return ""
	case !sameFile:
		return from.File().String()
	case !sameRank:
		return from.Rank().String()
	default:
		return from.String()
	}
}

// MoveFromLAN parses coordinate notation (e.g. "e2e4", "e7e8q") into
// the matching legal move.
func (p *Position) MoveFromLAN(s string) (move.Move, error) {
	if len(s) < 4 {
		return move.Null, fmt.Errorf("position: invalid lan move %q", s)
	}

	from := square.New(s[0:2])
	to := square.New(s[2:4])
	if !p.WhiteToMove {
		from, to = from.Flip(), to.Flip()
	}

	for _, m := range p.Generate() {
		if m.From() != from || m.To() != to {
			continue
		}
		if m.Tag() == move.Promotion {
			if len(s) != 5 || !strings.EqualFold(m.Piece().Type().String(), string(s[4])) {
				continue
			}
		} else if len(s) != 4 {
			continue
		}
		return m, nil
	}

	return move.Null, fmt.Errorf("position: illegal lan move %q", s)
}

// MoveFromSAN parses standard algebraic notation into the matching
// legal move by rendering every legal move's own SAN and comparing,
// rather than re-implementing SAN's grammar as a parser.
func (p *Position) MoveFromSAN(s string) (move.Move, error) {
	s = strings.TrimRight(s, "+#!?")
	for _, m := range p.Generate() {
		candidate := strings.TrimRight(p.SAN(m), "+#")
		if candidate == s {
			return m, nil
		}
	}
	return move.Null, fmt.Errorf("position: illegal san move %q", s)
}
