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
	"github.com/corvidchess/corvid/pkg/position"
)

// Command new
//
// Reset to the standard opening position; the computer plays black;
// clear game history and the depth cap set by a previous "sd".
func NewNew(engine *context.Engine) cmd.Command {
	return cmd.Command{
		Name: "new",
		Run: func(cmd.Interaction) error {
			engine.Reset(position.New())
			engine.Force = false
			engine.DepthLimit = 0
			return nil
		},
	}
}
