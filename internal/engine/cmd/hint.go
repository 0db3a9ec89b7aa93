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
)

// Command hint
//
// Report the best move found by the most recent search, without
// playing it.
func NewHint(engine *context.Engine) cmd.Command {
	return cmd.Command{
		Name: "hint",
		Run: func(interaction cmd.Interaction) error {
			if engine.BestMove.IsNull() {
				return nil
			}
			interaction.Replyf("Hint: %s", engine.Pos.LAN(engine.BestMove))
			return nil
		},
	}
}
