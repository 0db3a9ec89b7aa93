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

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/corvidchess/corvid/internal/engine/context"
	"github.com/corvidchess/corvid/pkg/console/cmd"
	"github.com/corvidchess/corvid/pkg/console/flag"
)

// Command level MPS BASE INC
//
// Set the tournament time control: MPS moves per session (0 means the
// whole game), BASE minutes or "minutes:seconds" of starting time, and
// INC seconds added to the clock after every move. Clears any fixed
// per-move budget a previous "st" set, since a level supersedes it.
func NewLevel(engine *context.Engine) cmd.Command {
	schema := flag.NewSchema()
	schema.Positional("level")

	return cmd.Command{
		Name: "level",
		Run: func(interaction cmd.Interaction) error {
			args, err := positionalArgs(interaction, "level")
			if err != nil {
				return err
			}
			if len(args) != 3 {
				return fmt.Errorf("level: expected 3 arguments, got %d", len(args))
			}

			mps, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("level: bad MPS: %w", err)
			}

			baseMS, err := parseBase(args[1])
			if err != nil {
				return fmt.Errorf("level: bad BASE: %w", err)
			}

			incSec, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("level: bad INC: %w", err)
			}

			engine.MovesToGo = mps
			engine.MoveTimeMS = 0
			engine.Clock.Time = baseMS
			engine.Clock.Increment = incSec * 1000
			return nil
		},
		Flags: schema,
	}
}

// parseBase parses xboard's BASE field, either plain minutes ("5") or
// "minutes:seconds" ("5:15"), into milliseconds.
func parseBase(s string) (int, error) {
	minutes, seconds, hasSeconds := strings.Cut(s, ":")

	m, err := strconv.Atoi(minutes)
	if err != nil {
		return 0, err
	}

	var sec int
	if hasSeconds {
		sec, err = strconv.Atoi(seconds)
		if err != nil {
			return 0, err
		}
	}

	return (m*60+sec) * 1000, nil
}
