/*
Package display renders groves to consoles.

The renderer prints one node per line, roots first, children indented below
their parent in left-to-right order. On interactive terminals, interior
nodes are colorized and lines are clipped to the terminal width.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package display

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/grove"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/term"
)

// tracer writes to trace with key 'grove'
func tracer() tracing.Trace {
	return tracing.Select("grove")
}

// Config controls the rendering of a grove to a console.
type Config struct {
	Width    int    // line width in character cells; lines are clipped beyond it
	Indent   string // indentation prepended per nesting level
	Colorize bool   // colorize interior nodes
}

// ConfigFromTerminal creates a config from the current terminal's
// properties if stdout is interactive, and a conservative default
// otherwise.
func ConfigFromTerminal() *Config {
	cfg := &Config{Indent: "  ", Width: 80}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		cfg.Colorize = true
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			cfg.Width = w
		} else if err != nil {
			tracer().Debugf("display: cannot read terminal size: %v", err)
		}
	}
	return cfg
}

// Print renders a grove to stdout. If config is nil, a heuristic will
// create one from the current terminal's properties.
func Print[T any](g grove.Grove[T], config *Config) error {
	return Render(g, os.Stdout, config)
}

// Render writes a line-per-node rendering of g, trees in left-to-right
// order. If config is nil, ConfigFromTerminal supplies one.
func Render[T any](g grove.Grove[T], w io.Writer, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
	}
	var tops []grove.Tree[T]
	for tree := range g.TreesRev() {
		tops = append(tops, tree)
	}
	for i := len(tops) - 1; i >= 0; i-- {
		if err := renderTree(w, tops[i], 0, config); err != nil {
			return err
		}
	}
	return nil
}

var innerColor = color.New(color.FgCyan, color.Bold)

func renderTree[T any](w io.Writer, t grove.Tree[T], depth int, cfg *Config) error {
	line := clip(strings.Repeat(cfg.Indent, depth)+fmt.Sprint(t.Root()), cfg.Width)
	if cfg.Colorize && t.Len() > 1 {
		line = innerColor.Sprint(line)
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}
	var children []grove.Tree[T]
	for child := range t.ChildrenRev() {
		children = append(children, child)
	}
	for i := len(children) - 1; i >= 0; i-- {
		if err := renderTree(w, children[i], depth+1, cfg); err != nil {
			return err
		}
	}
	return nil
}

// clip cuts a line to width character cells, marking the cut with an
// ellipsis. Widths are approximated by rune count.
func clip(line string, width int) string {
	if width <= 0 || utf8.RuneCountInString(line) <= width {
		return line
	}
	runes := []rune(line)
	return string(runes[:width-1]) + "…"
}
