// Copyright © 2022 Rak Laptudirm <rak@laptudirm.com>
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

// Package cmd implements the command/flag schema the console dispatch
// loop is built on, direct port of the teacher's pkg/uci/cmd.
package cmd

import (
	"fmt"
	"io"

	"github.com/corvidchess/corvid/pkg/console/flag"
)

// NewSchema initializes a new command schema replying on replyWriter.
func NewSchema(replyWriter io.Writer) Schema {
	return Schema{
		replyWriter: replyWriter,
		commands:    make(map[string]Command),
	}
}

// Schema holds the set of commands a console.Client understands.
type Schema struct {
	replyWriter io.Writer
	commands    map[string]Command
}

// Add registers c under its own Name.
func (s *Schema) Add(c Command) {
	s.commands[c.Name] = c
}

// Get looks a command up by name.
func (s *Schema) Get(name string) (Command, bool) {
	c, found := s.commands[name]
	return c, found
}

// Command is one line of the protocol's command surface.
type Command struct {
	// Name is the token that selects this command.
	Name string

	// Run does the command's work. A command that wants to keep
	// running after replying (the "go" command's search) spawns its
	// own goroutine; the dispatch loop itself never blocks past Run
	// returning.
	Run func(Interaction) error

	// Flags is this command's argument schema, parsed from the
	// remaining tokens of the line before Run is called.
	Flags flag.Schema
}

// RunWith parses args against c's flag schema and invokes Run.
func (c Command) RunWith(args []string, schema Schema) error {
	values, err := c.Flags.Parse(args)
	if err != nil {
		return err
	}

	return c.Run(Interaction{
		stdout:  schema.replyWriter,
		Command: c,
		Values:  values,
	})
}

// Interaction carries everything a running Command needs to read its
// arguments and reply to the driver.
type Interaction struct {
	stdout io.Writer

	Command

	Values flag.Values
}

// Reply writes a to the driver, fmt.Println-style.
func (i *Interaction) Reply(a ...any) (int, error) {
	return fmt.Fprintln(i.stdout, a...)
}

// Replyf writes a formatted line to the driver, newline-terminated.
func (i *Interaction) Replyf(format string, a ...any) (int, error) {
	return fmt.Fprintf(i.stdout, format+"\n", a...)
}
