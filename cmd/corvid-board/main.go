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

// Command corvid-board is a standalone terminal UI companion: it runs
// its own engine in-process and renders the live position and search
// PV as it thinks, reading moves from stdin the way a GUI would drive
// xboard. It is deliberately not part of the core — spec §1 frames
// CLI/UI front-ends as external collaborators the core merely feeds,
// not its own responsibility.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"golang.org/x/term"

	"github.com/corvidchess/corvid/internal/display"
	"github.com/corvidchess/corvid/internal/engine"
	"github.com/corvidchess/corvid/pkg/search"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// termui.Init() (backed by termbox-go) takes over the terminal
	// before a size query is possible through it, so the starting
	// window size comes from x/term directly.
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80
	}

	if err := termui.Init(); err != nil {
		return fmt.Errorf("corvid-board: init terminal: %w", err)
	}
	defer termui.Close()

	e := engine.New()

	board := widgets.NewParagraph()
	board.Title = "Position"
	board.SetRect(0, 0, width, 12)

	pv := widgets.NewParagraph()
	pv.Title = "Search"
	pv.SetRect(0, 12, width, 18)

	render := func() {
		termui.Render(padLines(board, display.Board(e.Pos), width), pv)
	}
	render()

	// Replace the engine's default report callback (plain stdout text)
	// with one that redraws the PV widget instead, now that a terminal
	// UI owns the screen.
	e.Search = search.NewContext(e.Table, func(r search.Report) {
		pv.Text = runewidth.Truncate(r.String(), width, "…")
		render()
	})
	e.Search.SetPosition(e.Pos, nil)

	events := termui.PollEvents()
	lines := readLines(os.Stdin)

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev.Type == termui.KeyboardEvent && (ev.ID == "q" || ev.ID == "<C-c>") {
				return nil
			}

		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if err := e.Client.Run(strings.Fields(line)...); err != nil {
				pv.Text = err.Error()
			}
			render()
		}
	}
}

// padLines right-pads every line of board.Text to width display
// columns, measured in grapheme clusters rather than bytes or runes,
// so a board whose lines carry colorstring ANSI escapes still lines up
// evenly inside termui's box.
func padLines(board *widgets.Paragraph, text string, width int) *widgets.Paragraph {
	var out strings.Builder
	for _, line := range strings.Split(text, "\n") {
		visible := uniseg.GraphemeClusterCount(stripANSI(line))
		out.WriteString(line)
		if pad := width - visible; pad > 0 {
			out.WriteString(strings.Repeat(" ", pad))
		}
		out.WriteByte('\n')
	}
	board.Text = out.String()
	return board
}

// stripANSI removes the "\x1b[...m" SGR sequences colorstring.Color
// emits, so the clusters left are exactly what the terminal renders.
func stripANSI(s string) string {
	var out []byte
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '[' {
			i += 2
			for i < len(s) && s[i] != 'm' {
				i++
			}
			continue
		}
		out = append(out, s[i])
	}
	return string(out)
}

func readLines(f *os.File) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()
	return lines
}
