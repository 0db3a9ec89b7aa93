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
	"strconv"

	"github.com/corvidchess/corvid/pkg/console/cmd"
)

// positionalArgs fetches the raw token list a flag.Positional schema
// collected under name, erroring if none were given.
func positionalArgs(interaction cmd.Interaction, name string) ([]string, error) {
	value, ok := interaction.Values[name]
	if !ok || !value.Set {
		return nil, fmt.Errorf("%s: no %s given", interaction.Name, name)
	}
	return value.Value.([]string), nil
}

// positionalInt fetches a single positional argument and parses it as
// an integer, the shape every N-argument command (sd, st, time, otim,
// memory, perft) shares.
func positionalInt(interaction cmd.Interaction, name string) (int, error) {
	args, err := positionalArgs(interaction, name)
	if err != nil {
		return 0, err
	}
	if len(args) != 1 {
		return 0, fmt.Errorf("%s: expected 1 argument, got %d", interaction.Name, len(args))
	}
	return strconv.Atoi(args[0])
}
