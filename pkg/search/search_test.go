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

package search_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/position"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/corvidchess/corvid/pkg/tt"
)

func newContext() *search.Context {
	return search.NewContext(tt.NewTable(1), func(search.Report) {})
}

func TestSearchFindsMateInOne(t *testing.T) {
	// Black to move, Qh4# is the only mating move: fool's mate position
	// after 1. f3 e5 2. g4.
	pos, err := position.FromFEN("rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq - 0 2")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}

	c := newContext()
	c.SetPosition(pos, nil)

	pv, score, err := c.Search(search.Limits{Depth: 3})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if pv.Len() == 0 {
		t.Fatalf("Search returned an empty PV")
	}

	want := pos.LAN(pv.Move(0))
	if want != "d8h4" {
		t.Errorf("best move = %s, want d8h4 (Qh4#)", want)
	}

	if score <= eval.Mate-100 {
		t.Errorf("score = %d, want a near-mate score", score)
	}
}

// KQ vs K, the spec's concrete mate-in-1 scenario: b6b7 boxes the
// black king into a back-rank mate against its own corner.
func TestSearchFindsKQKMateInOne(t *testing.T) {
	pos, err := position.FromFEN("k7/8/KQ6/8/8/8/8/8 w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}

	c := newContext()
	c.SetPosition(pos, nil)

	pv, score, err := c.Search(search.Limits{Depth: 3})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if pv.Len() == 0 {
		t.Fatalf("Search returned an empty PV")
	}
	if want := pos.LAN(pv.Move(0)); want != "b6b7" {
		t.Errorf("best move = %s, want b6b7", want)
	}
	if score <= eval.Mate-100 {
		t.Errorf("score = %d, want a near-mate score", score)
	}
}

func TestSearchRejectsIllegalPosition(t *testing.T) {
	// White to move, with Black's king already in check along rank 8
	// from a white rook: unreachable through normal play (Black would
	// have had to leave itself in check), but a hand-written FEN can
	// still produce it.
	pos, err := position.FromFEN("R3k3/8/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}

	c := newContext()
	c.SetPosition(pos, nil)

	if _, _, err := c.Search(search.Limits{Depth: 1}); err == nil {
		t.Error("Search: expected an error on an illegal position, got nil")
	}
}

func TestSearchStop(t *testing.T) {
	pos := position.New()

	c := newContext()
	c.SetPosition(pos, nil)

	if c.InProgress() {
		t.Fatal("InProgress before Search: expected false")
	}

	if _, _, err := c.Search(search.Limits{Depth: 1}); err != nil {
		t.Fatalf("Search: %v", err)
	}

	if c.InProgress() {
		t.Error("InProgress after Search returns: expected false")
	}
}
