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

package console

import (
	"errors"

	"github.com/corvidchess/corvid/pkg/console/cmd"
)

// errQuit unwinds Client.Start's loop cleanly.
var errQuit = errors.New("console: quit")

// cmdQuit exits the program as soon as possible, per spec §6.3's exit
// code contract (0 on clean quit).
var cmdQuit = cmd.Command{
	Name: "quit",
	Run: func(cmd.Interaction) error {
		return errQuit
	},
}
