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

package context_test

import (
	"testing"

	"github.com/corvidchess/corvid/internal/engine/context"
	"github.com/corvidchess/corvid/pkg/position"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/corvidchess/corvid/pkg/tt"
)

func newEngine() *context.Engine {
	pos := position.New()
	table := tt.NewTable(1)
	e := &context.Engine{
		Table: table,
		Pos:   pos,
		Force: true,
	}
	e.Search = search.NewContext(table, func(search.Report) {})
	e.Search.SetPosition(e.Pos, nil)
	return e
}

func TestPlayUndoRedo(t *testing.T) {
	e := newEngine()

	moves := e.Pos.Generate()
	m := moves[0]
	fenBefore := e.Pos.FEN()

	e.Play(m)
	if len(e.History) != 1 || e.History[0] != m {
		t.Fatalf("History after Play = %v, want [%s]", e.History, m)
	}
	if e.Pos.FEN() == fenBefore {
		t.Fatal("Play: position unchanged")
	}

	if !e.Undo() {
		t.Fatal("Undo: expected true")
	}
	if len(e.History) != 0 {
		t.Fatalf("History after Undo = %v, want empty", e.History)
	}
	if got := e.Pos.FEN(); got != fenBefore {
		t.Fatalf("Undo: position = %s, want %s", got, fenBefore)
	}

	if e.Undo() {
		t.Fatal("Undo with empty history: expected false")
	}

	if !e.ReplayRedo() {
		t.Fatal("ReplayRedo: expected true")
	}
	if len(e.History) != 1 || e.History[0] != m {
		t.Fatalf("History after ReplayRedo = %v, want [%s]", e.History, m)
	}
	if e.Pos.FEN() == fenBefore {
		t.Fatal("ReplayRedo: position unchanged")
	}

	if e.ReplayRedo() {
		t.Fatal("ReplayRedo with empty redo stack: expected false")
	}
}

func TestPlayClearsRedo(t *testing.T) {
	e := newEngine()

	moves := e.Pos.Generate()
	e.Play(moves[0])
	e.Undo()

	if len(e.Redo) != 1 {
		t.Fatalf("Redo after Undo = %v, want 1 entry", e.Redo)
	}

	e.Play(e.Pos.Generate()[0])
	if len(e.Redo) != 0 {
		t.Fatalf("Redo after a fresh Play = %v, want empty", e.Redo)
	}
	if e.ReplayRedo() {
		t.Fatal("ReplayRedo after Play forked history: expected false")
	}
}

func TestResetClearsHistory(t *testing.T) {
	e := newEngine()

	e.Play(e.Pos.Generate()[0])
	e.Force = false

	e.Reset(position.New())

	if len(e.History) != 0 || len(e.Redo) != 0 {
		t.Fatalf("Reset: History=%v Redo=%v, want both empty", e.History, e.Redo)
	}
	if !e.Force {
		t.Error("Reset: Force = false, want true")
	}
	if got, want := e.Pos.FEN(), position.StartFEN; got != want {
		t.Errorf("Reset: FEN = %s, want %s", got, want)
	}
}
