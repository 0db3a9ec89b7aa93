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

package search

import (
	"fmt"
	"time"

	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/move"
)

// Report is a snapshot of one iterative deepening iteration's
// statistics, in the shape a UCI/CECP frontend wants to display.
type Report struct {
	Depth    int // completed iterative depth
	SelDepth int // maximum plies reached by quiescence below it

	Nodes int
	Time  time.Duration

	Score eval.Eval
	PV    move.Variation
}

// Nps is nodes searched per second over Time.
func (r Report) Nps() float64 {
	seconds := r.Time.Seconds()
	if seconds < 0.001 {
		seconds = 0.001
	}
	return float64(r.Nodes) / seconds
}

// String renders a UCI-style "info" line.
func (r Report) String() string {
	return fmt.Sprintf(
		"info depth %d seldepth %d score %s nodes %d nps %.f time %d pv %s",
		r.Depth, r.SelDepth, r.Score, r.Nodes, r.Nps(),
		r.Time.Milliseconds(), r.PV,
	)
}
