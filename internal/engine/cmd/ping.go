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

// Command ping <tok>
//
// Echo tok back as "pong <tok>"; a GUI uses this to confirm the engine
// has drained its input queue (e.g. after a "?" move-now request), not
// as a liveness check on its own.
func NewPing(engine *context.Engine) cmd.Command {
	schema := flag.NewSchema()
	schema.Positional("tok")

	return cmd.Command{
		Name: "ping",
		Run: func(interaction cmd.Interaction) error {
			args, err := positionalArgs(interaction, "tok")
			if err != nil {
				interaction.Reply("pong")
				return nil
			}
			interaction.Replyf("pong %s", args[0])
			return nil
		},
		Flags: schema,
	}
}
