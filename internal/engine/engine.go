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

// Package engine wires spec §6.3's xboard-style command surface onto a
// console.Client: construction and command registration live here,
// command bodies in internal/engine/cmd, shared mutable state in
// internal/engine/context. Grounded on the teacher's internal/engine
// (engine.go/cmdGo.go/cmdOthers.go/cmdPosition.go/cmdUci.go), which did
// the same job for UCI's command table.
package engine

import (
	"github.com/corvidchess/corvid/internal/display"
	"github.com/corvidchess/corvid/internal/engine/cmd"
	"github.com/corvidchess/corvid/internal/engine/context"
	"github.com/corvidchess/corvid/pkg/console"
	enginecmd "github.com/corvidchess/corvid/pkg/console/cmd"
	"github.com/corvidchess/corvid/pkg/position"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/corvidchess/corvid/pkg/tt"
)

// DefaultHashMB is the transposition table size a fresh Engine starts
// with, before any "memory" command resizes it.
const DefaultHashMB = 16

// New builds an Engine ready to Start: the standard opening position,
// force mode on (xboard starts every session in force mode until "new"
// or "go"), and every command of spec §6.3 registered.
func New() *Engine {
	table := tt.NewTable(DefaultHashMB)

	e := &context.Engine{
		Table:  table,
		HashMB: DefaultHashMB,
		Pos:    position.New(),
		Force:  true,
	}

	client := console.NewClient()
	e.Client = &client
	e.Search = search.NewContext(table, func(r search.Report) {
		e.Client.Println(display.Report(r))
	})
	e.Search.SetPosition(e.Pos, nil)

	for _, c := range []enginecmd.Command{
		cmd.NewNew(e),
		cmd.NewSetBoard(e),
		cmd.NewForce(e),
		cmd.NewGo(e),
		cmd.NewUndo(e),
		cmd.NewRedo(e),
		cmd.NewSD(e),
		cmd.NewST(e),
		cmd.NewLevel(e),
		cmd.NewTime(e),
		cmd.NewOTim(e),
		cmd.NewHint(e),
		cmd.NewPing(e),
		cmd.NewMemory(e),
		cmd.NewPerft(e),
		cmd.NewD(e),
	} {
		e.Client.AddCommand(c)
	}

	e.Client.Default = cmd.Move(e)

	return e
}

// Engine is internal/engine/context.Engine, re-exported under this
// package's own name so cmd/corvid's only import is internal/engine.
type Engine = context.Engine

// Start runs the engine's read-eval-print loop until quit or a read
// error on stdin.
func Start() error {
	return New().Client.Start()
}
