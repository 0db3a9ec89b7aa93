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
	"errors"
	"strings"

	"github.com/corvidchess/corvid/internal/engine/context"
	"github.com/corvidchess/corvid/pkg/console/cmd"
	"github.com/corvidchess/corvid/pkg/console/flag"
	"github.com/corvidchess/corvid/pkg/position"
)

// Command setboard <FEN>
//
// Replace the position from the given FEN string, discarding game
// history. The FEN's fields arrive as bare positional tokens (no
// leading keyword), so the whole argument list is rejoined into one
// string.
func NewSetBoard(engine *context.Engine) cmd.Command {
	schema := flag.NewSchema()
	schema.Positional("fen")

	return cmd.Command{
		Name: "setboard",
		Run: func(interaction cmd.Interaction) error {
			fenValue, ok := interaction.Values["fen"]
			if !ok || !fenValue.Set {
				return errors.New("setboard: no fen given")
			}

			fen := strings.Join(fenValue.Value.([]string), " ")
			pos, err := position.FromFEN(fen)
			if err != nil {
				return err
			}

			engine.Reset(pos)
			return nil
		},
		Flags: schema,
	}
}
