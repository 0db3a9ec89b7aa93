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

	"github.com/corvidchess/corvid/internal/engine/context"
)

// clientReplier adapts a console.Client to the replier interface think
// and autoReply need, for the case where a move arrives as bare text
// with no cmd.Interaction of its own.
type clientReplier struct{ engine *context.Engine }

func (r clientReplier) Reply(a ...any) (int, error) { return r.engine.Client.Println(a...) }
func (r clientReplier) Replyf(format string, a ...any) (int, error) {
	return r.engine.Client.Printf(format+"\n", a...)
}

// Move handles a line whose first token is not a registered command:
// xboard feeds moves as bare text ("e2e4" or SAN like "Nf3"), never
// through a dedicated verb. Wired as the console.Client's Default.
func Move(engine *context.Engine) func(token string, args []string) error {
	return func(token string, args []string) error {
		if len(args) != 0 {
			return fmt.Errorf("%s: command not found", token)
		}

		m, err := engine.Pos.MoveFromLAN(token)
		if err != nil {
			m, err = engine.Pos.MoveFromSAN(token)
		}
		if err != nil {
			return fmt.Errorf("illegal move: %s", token)
		}

		engine.Play(m)

		if len(engine.Pos.Generate()) == 0 {
			engine.Client.Println(outcome(engine))
			return nil
		}

		if !engine.Force && !engine.Search.InProgress() {
			_ = think(engine, clientReplier{engine})
		}
		return nil
	}
}
