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

// Package timecontrol implements the search driver's time budgeting,
// grounded on the teacher's pkg/search/time/manager.go. A Position is
// always side-relative (piece.Us/piece.Them), but a time control is
// stated in absolute wtime/btime terms by whatever is driving the
// engine (a CLI command, a GUI protocol), so Manager deals in the two
// absolute clocks directly rather than in piece.Color.
package timecontrol

import "time"

// Manager decides how long the current search is allowed to run.
type Manager interface {
	// GetDeadline computes the optimal time budget for this search and
	// sets an internal deadline.
	GetDeadline()

	// ExtendDeadline is called when the search driver wants to keep
	// searching past the current deadline, e.g. because the previous
	// iteration's best move just changed. Extension may be a no-op.
	ExtendDeadline()

	// Expired reports whether the deadline has passed.
	Expired() bool
}

// Clock is a side's remaining time and increment, in milliseconds, the
// raw form a UCI/CECP "go" command supplies.
type Clock struct {
	Time      int
	Increment int
}

// Normal is the standard time manager: it derives a per-move budget
// from the moving side's own remaining clock and the moves left to the
// next time control, the way essentially every tournament time
// control (including "N moves in M minutes" and "M minutes + increment
// per move") reduces to.
type Normal struct {
	Us        Clock
	MovesToGo int // moves left to the next time control; 0 means "estimate"

	deadline time.Time
	budget   time.Duration
}

var _ Manager = (*Normal)(nil)

// GetDeadline splits the remaining time across the estimated moves
// left to the time control, plus a share of the increment, and leaves
// a safety margin so the engine reliably returns a move before
// actually running out of clock.
func (m *Normal) GetDeadline() {
	movesToGo := m.MovesToGo
	if movesToGo == 0 {
		movesToGo = 30 // no stated time control: assume a long game
	}

	const safetyMargin = 30 * time.Millisecond

	remaining := time.Duration(m.Us.Time) * time.Millisecond
	increment := time.Duration(m.Us.Increment) * time.Millisecond

	budget := remaining/time.Duration(movesToGo) + increment/2 - safetyMargin
	if budget <= 0 {
		budget = safetyMargin
	}

	m.budget = budget
	m.deadline = time.Now().Add(budget)
}

// ExtendDeadline grants another third of the original budget, used
// when the position looks unstable (e.g. the root best move just
// changed) and iterative deepening wants to confirm it before
// committing.
func (m *Normal) ExtendDeadline() {
	m.deadline = m.deadline.Add(m.budget / 3)
}

func (m *Normal) Expired() bool {
	return time.Now().After(m.deadline)
}

// Fixed allocates exactly Duration to the search (UCI's "movetime"),
// with no extension possible since the time control is itself the
// constraint being tested.
type Fixed struct {
	Duration time.Duration
	deadline time.Time
}

var _ Manager = (*Fixed)(nil)

func (m *Fixed) GetDeadline() {
	m.deadline = time.Now().Add(m.Duration)
}

func (m *Fixed) ExtendDeadline() {}

func (m *Fixed) Expired() bool {
	return time.Now().After(m.deadline)
}

// Infinite never expires on its own; the search driver stops it only
// via an explicit command (CECP "?"/UCI "stop") or a node/depth limit.
type Infinite struct{}

var _ Manager = (*Infinite)(nil)

func (m *Infinite) GetDeadline()   {}
func (m *Infinite) ExtendDeadline() {}
func (m *Infinite) Expired() bool  { return false }
