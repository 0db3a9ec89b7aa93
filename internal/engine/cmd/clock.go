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
	"github.com/corvidchess/corvid/internal/engine/context"
	"github.com/corvidchess/corvid/pkg/console/cmd"
	"github.com/corvidchess/corvid/pkg/console/flag"
)

// Command time N
//
// Set our own remaining time to N centiseconds, as xboard reports it;
// timecontrol.Clock works in milliseconds, so N is scaled by 10.
func NewTime(engine *context.Engine) cmd.Command {
	schema := flag.NewSchema()
	schema.Positional("centiseconds")

	return cmd.Command{
		Name: "time",
		Run: func(interaction cmd.Interaction) error {
			n, err := positionalInt(interaction, "centiseconds")
			if err != nil {
				return err
			}
			engine.Clock.Time = n * 10
			return nil
		},
		Flags: schema,
	}
}

// Command otim N
//
// Set the opponent's remaining time to N centiseconds; tracked only for
// display, since the search never budgets off the opponent's clock.
func NewOTim(engine *context.Engine) cmd.Command {
	schema := flag.NewSchema()
	schema.Positional("centiseconds")

	return cmd.Command{
		Name: "otim",
		Run: func(interaction cmd.Interaction) error {
			n, err := positionalInt(interaction, "centiseconds")
			if err != nil {
				return err
			}
			engine.Opponent.Time = n * 10
			return nil
		},
		Flags: schema,
	}
}
