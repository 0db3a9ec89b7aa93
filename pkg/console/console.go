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

// Package console implements a textual, line-oriented command dispatch
// loop: read a line from stdin, split it into a command name and
// arguments, find the matching Command and run it, write replies to
// stdout. It is protocol-agnostic; internal/engine is what gives it an
// xboard-shaped command surface. Direct port of the teacher's pkg/uci,
// renamed since the command surface this module dispatches is not
// UCI's.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/corvidchess/corvid/pkg/console/cmd"
)

// NewClient creates a Client reading from stdin and writing to stdout,
// with the default quit command already added.
func NewClient() Client {
	client := Client{
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}

	client.commands = cmd.NewSchema(client.stdout)
	client.AddCommand(cmdQuit)

	return client
}

// Client is a console dispatch loop.
type Client struct {
	stdin  io.Reader
	stdout io.Writer

	commands cmd.Schema

	// Default, if set, handles any line whose first token does not
	// name a registered Command. internal/engine uses this for bare
	// move text (e.g. "e2e4"), which the command surface of §6.3
	// otherwise has no dedicated verb for.
	Default func(token string, args []string) error
}

// AddCommand registers c on the client's schema.
func (c *Client) AddCommand(command cmd.Command) {
	c.commands.Add(command)
}

// Start runs the read-eval-print loop against the client's stdin until
// a read error, or quit is received.
func (c *Client) Start() error {
	reader := bufio.NewReader(c.stdin)

	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}

		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}

		switch err := c.RunWith(args); err {
		case nil:
			// continue the loop
		case errQuit:
			return nil
		default:
			c.Println(err)
		}
	}
}

// Run parses args as a single command invocation.
func (c *Client) Run(args ...string) error {
	return c.RunWith(args)
}

// RunWith finds the command named by args[0] and runs it with the
// remaining tokens. If no command has that name, it is handed to
// Default, if any.
func (c *Client) RunWith(args []string) error {
	name, rest := args[0], args[1:]

	command, found := c.commands.Get(name)
	if !found {
		if c.Default != nil {
			return c.Default(name, rest)
		}
		return fmt.Errorf("%s: command not found", name)
	}

	return command.RunWith(rest, c.commands)
}

// Print acts as fmt.Print on the client's stdout.
func (c *Client) Print(a ...any) (int, error) {
	return fmt.Fprint(c.stdout, a...)
}

// Printf acts as fmt.Printf on the client's stdout.
func (c *Client) Printf(format string, a ...any) (int, error) {
	return fmt.Fprintf(c.stdout, format, a...)
}

// Println acts as fmt.Println on the client's stdout.
func (c *Client) Println(a ...any) (int, error) {
	return fmt.Fprintln(c.stdout, a...)
}
