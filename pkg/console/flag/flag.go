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

// Package flag implements the flag schema a command command's argument
// list is parsed against, direct port of the teacher's pkg/uci/flag.
package flag

import "fmt"

// NewSchema initializes a new flag Schema.
func NewSchema() Schema {
	return Schema{flags: make(map[string]Flag)}
}

// Schema contains the flag schema for a command.
type Schema struct {
	flags      map[string]Flag
	positional string // set by Positional; "" means keyword-dispatched
}

// Positional marks the whole schema as taking its arguments directly,
// with no leading keyword to select a flag: the entire argument list
// becomes name's value. xboard-style commands like "setboard <FEN>" or
// "level MPS BASE INC" read this way, unlike UCI's keyword-tagged
// "position fen <fen> moves <move>...". A schema using Positional
// declares no other flags.
func (s *Schema) Positional(name string) {
	s.positional = name
}

// Parse parses args according to the schema, returning the value
// collected for each flag that was present.
func (s Schema) Parse(args []string) (Values, error) {
	values := make(Values)

	if s.positional != "" {
		values[s.positional] = Value{Set: len(args) > 0, Value: args}
		return values, nil
	}

	if s.flags == nil {
		if len(args) > 0 {
			return values, fmt.Errorf("parse flags: unknown flag %q", args[0])
		}
		return values, nil
	}

	for len(args) > 0 {
		name := args[0]

		collect, isFlag := s.flags[name]
		if !isFlag {
			return values, fmt.Errorf("parse flags: unknown flag %q", name)
		}

		if values[name].Set {
			return values, fmt.Errorf("parse flags: flag %q already set", name)
		}

		value, newArgs, err := collect(args[1:])
		if err != nil {
			return values, err
		}
		args = newArgs

		values[name] = Value{Set: true, Value: value}
	}

	return values, nil
}

// Button adds a flag with no argument of its own: it is either present
// or absent.
func (s Schema) Button(name string) {
	s.flags[name] = func(args []string) (any, []string, error) {
		return nil, args, nil
	}
}

// Single adds a flag taking exactly one string argument.
func (s Schema) Single(name string) {
	s.flags[name] = func(args []string) (any, []string, error) {
		if len(args) == 0 {
			return nil, nil, argNumErr(name, 1, 0)
		}
		return args[0], args[1:], nil
	}
}

// Array adds a flag taking a fixed number of string arguments.
func (s Schema) Array(name string, argN int) {
	s.flags[name] = func(args []string) (any, []string, error) {
		value := make([]string, argN)
		if collected := copy(value, args); collected != argN {
			return nil, nil, argNumErr(name, argN, collected)
		}
		return value, args[argN:], nil
	}
}

// Variadic adds a flag that collects every remaining argument.
func (s Schema) Variadic(name string) {
	s.flags[name] = func(args []string) (any, []string, error) {
		return args, []string{}, nil
	}
}

// Flag collects its arguments off the front of args, returning its
// value and whatever of args it did not consume.
type Flag func([]string) (any, []string, error)

// Values maps a flag's name to the value collected for it.
type Values map[string]Value

// Value is the value collected for one flag.
type Value struct {
	Set   bool
	Value any
}

func argNumErr(flag string, expected, collected int) error {
	return fmt.Errorf("flag %s: expected %d args, collected %d args", flag, expected, collected)
}
