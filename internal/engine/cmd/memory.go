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

// Command memory N
//
// Resize the transposition table to N megabytes; Table.Resize already
// rounds down to the largest power-of-two bucket count that fits, so
// there is nothing extra to do here.
func NewMemory(engine *context.Engine) cmd.Command {
	schema := flag.NewSchema()
	schema.Positional("mb")

	return cmd.Command{
		Name: "memory",
		Run: func(interaction cmd.Interaction) error {
			n, err := positionalInt(interaction, "mb")
			if err != nil {
				return err
			}
			engine.HashMB = n
			engine.Table.Resize(n)
			return nil
		},
		Flags: schema,
	}
}
