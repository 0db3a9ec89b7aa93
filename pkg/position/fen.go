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
	"strconv"
	"strings"

	"github.com/corvidchess/corvid/pkg/castling"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// FromFEN parses a FEN string into a Position. FEN is always written
// from White's point of view, so the board is parsed as if White were
// Us and then, if the side to move is actually Black, flipped once to
// bring it to this engine's side-relative convention. This reuses
// Flip's placement/rights/en-passant/key handling instead of
// duplicating it for the "parse as Black" case.
func FromFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("position.FromFEN: invalid fen %q", fen)
	}
	for len(fields) < 6 {
		fields = append(fields, "0")
	}

	p := &Position{EnPassantTarget: square.None}
	p.Kings[piece.Us] = square.None
	p.Kings[piece.Them] = square.None

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("position.FromFEN: invalid piece placement %q", fields[0])
	}

	for i, rankData := range ranks {
		r := square.Rank(7 - i) // ranks[0] is the FEN's top rank, rank 8
		f := square.FileA
		for _, id := range rankData {
			if id >= '1' && id <= '8' {
				f += square.File(id - '0')
				continue
			}
			if f > square.FileH {
				return nil, fmt.Errorf("position.FromFEN: rank %q overflows the board", rankData)
			}
			pc := piece.NewFromString(string(id))
			p.fill(square.Make(f, r), pc)
			f++
		}
	}

	p.setCastlingRights(castling.NewRights(fields[2]))

	if ep := square.New(fields[3]); ep != square.None {
		p.setEnPassantTarget(ep)
	}

	var err error
	if p.HalfMoveClock, err = strconv.Atoi(fields[4]); err != nil {
		return nil, fmt.Errorf("position.FromFEN: invalid half-move clock %q", fields[4])
	}
	if p.FullMoveNumber, err = strconv.Atoi(fields[5]); err != nil {
		return nil, fmt.Errorf("position.FromFEN: invalid full-move number %q", fields[5])
	}

	p.WhiteToMove = fields[1] != "b"
	if !p.WhiteToMove {
		p.Flip()
	}

	p.Recompute()
	return p, nil
}

// FEN renders the position back into FEN, in absolute White-oriented
// notation regardless of whose turn it currently is.
func (p *Position) FEN() string {
	placement := p.Placement
	rights := p.CastlingRights
	ep := p.EnPassantTarget

	if !p.WhiteToMove {
		var flipped [square.N]piece.Piece
		for s := square.Square(0); s < square.N; s++ {
			flipped[s] = placement[s.Flip()].Flip()
		}
		placement = flipped
		rights = rights.Flip()
		ep = ep.Flip()
	}

	var sb strings.Builder
	for r := square.Rank8; ; r-- {
		empty := 0
		for f := square.FileA; f <= square.FileH; f++ {
			pc := placement[square.Make(f, r)]
			if pc == piece.None {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r == square.Rank1 {
			break
		}
		sb.WriteByte('/')
	}

	side := "b"
	if p.WhiteToMove {
		side = "w"
	}

	return fmt.Sprintf("%s %s %s %s %d %d", sb.String(), side, rights.String(), ep.String(), p.HalfMoveClock, p.FullMoveNumber)
}
