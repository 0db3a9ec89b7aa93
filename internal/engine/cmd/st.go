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

// Command st N
//
// Set a fixed N seconds per move, overriding whatever budget the clock
// ("level"/"time") would otherwise derive.
func NewST(engine *context.Engine) cmd.Command {
	schema := flag.NewSchema()
	schema.Positional("seconds")

	return cmd.Command{
		Name: "st",
		Run: func(interaction cmd.Interaction) error {
			n, err := positionalInt(interaction, "seconds")
			if err != nil {
				return err
			}
			engine.MoveTimeMS = n * 1000
			return nil
		},
		Flags: schema,
	}
}
