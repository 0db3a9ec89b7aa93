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

// Package pgnbook is a PGN-keyed opening book: a concrete shape for the
// "book oracle" spec §6.4 leaves optional and format-unspecified,
// replaying a PGN game's move list through a *position.Position via
// MakeMove and indexing every position it passes through by its own
// zobrist key. It is not wired into internal/engine, the same way
// spec §6.4 keeps book lookup a responsibility external to the core
// command surface.
package pgnbook

import (
	"fmt"
	"io"

	pgn "gopkg.in/freeeve/pgn.v1"

	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/position"
	"github.com/corvidchess/corvid/pkg/zobrist"
)

// Book maps a position's zobrist key to every move seen played from it
// across every game loaded into the book, with how many games played
// it — the natural "most popular continuation" ranking over a PGN
// corpus.
type Book struct {
	moves map[zobrist.Key]map[move.Move]int
}

// New returns an empty Book.
func New() *Book {
	return &Book{moves: make(map[zobrist.Key]map[move.Move]int)}
}

// Load reads every game PGN-encoded in r and folds its moves into the
// book, replaying each game from the standard starting position.
func (b *Book) Load(r io.Reader) error {
	scanner := pgn.NewPGNScanner(r)

	for scanner.Next() {
		game, err := scanner.Scan()
		if err != nil {
			return fmt.Errorf("pgnbook: scan game: %w", err)
		}
		if err := b.loadGame(game); err != nil {
			return fmt.Errorf("pgnbook: load game: %w", err)
		}
	}
	return nil
}

func (b *Book) loadGame(game *pgn.Game) error {
	pos := position.New()

	for _, san := range game.Moves {
		m, err := pos.MoveFromSAN(san)
		if err != nil {
			return fmt.Errorf("move %q: %w", san, err)
		}

		key := pos.Key0
		if b.moves[key] == nil {
			b.moves[key] = make(map[move.Move]int)
		}
		b.moves[key][m]++

		pos.MakeMove(m)
	}
	return nil
}

// Probe returns the most-played move recorded for pos, and whether the
// book has any entry for it at all.
func (b *Book) Probe(pos *position.Position) (move.Move, bool) {
	entries, ok := b.moves[pos.Key0]
	if !ok || len(entries) == 0 {
		return move.Null, false
	}

	var best move.Move
	var bestN int
	for m, n := range entries {
		if n > bestN {
			best, bestN = m, n
		}
	}
	return best, true
}
