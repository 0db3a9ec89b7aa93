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
	"github.com/corvidchess/corvid/internal/perft"
	"github.com/corvidchess/corvid/pkg/console/cmd"
	"github.com/corvidchess/corvid/pkg/console/flag"
)

// Command perft N
//
// Count the legal-move tree from the current position to depth N,
// broken down by root move, with a progress bar over the root moves
// since a deep perft can run for minutes.
func NewPerft(engine *context.Engine) cmd.Command {
	schema := flag.NewSchema()
	schema.Positional("depth")

	return cmd.Command{
		Name: "perft",
		Run: func(interaction cmd.Interaction) error {
			depth, err := positionalInt(interaction, "depth")
			if err != nil {
				return err
			}

			counts, total := perft.Divide(engine.Pos, depth)
			for move, n := range counts {
				interaction.Replyf("%s: %d", move, n)
			}
			interaction.Replyf("\nNodes searched: %d", total)
			return nil
		},
		Flags: schema,
	}
}
