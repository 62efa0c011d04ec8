/*
Package report writes puzzle results to a console.

Results are printed one per line, with the labels padded to a common column.
Padding is computed from the display width of a label, not from its byte or
rune count, so labels containing check marks or East Asian characters line
up as well. If the output is an interactive terminal, answers and marks are
colored.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package report

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/npillmayer/aoc"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// tracer writes to trace with key 'aoc'
func tracer() tracing.Trace {
	return tracing.Select("aoc")
}

// DefaultColumn is the display width labels are padded to.
const DefaultColumn = 22

const checkMark = "✓"

var setupGraphemes sync.Once

// Console is an aoc.Reporter printing to a writer, usually stdout.
type Console struct {
	Column  int            // labels are padded to this display width
	Context *uax11.Context // context for ambiguous character widths
	w       io.Writer
	answer  *color.Color
	mark    *color.Color
}

var _ aoc.Reporter = (*Console)(nil)

// NewConsole creates a reporter writing to w. Output will be colored if w is
// a terminal. A nil w writes to stdout.
func NewConsole(w io.Writer) *Console {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	if w == nil {
		w = os.Stdout
	}
	c := &Console{
		Column:  DefaultColumn,
		Context: uax11.LatinContext,
		w:       w,
		answer:  color.New(color.FgYellow, color.Bold),
		mark:    color.New(color.FgGreen),
	}
	if IsTerminal(w) {
		c.Context = uax11.ContextFromEnvironment()
		c.answer.EnableColor()
		c.mark.EnableColor()
	} else {
		c.answer.DisableColor()
		c.mark.DisableColor()
	}
	return c
}

// IsTerminal reports whether w is a file connected to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// ExampleChecked prints a check mark for a verified example answer.
// (Part of interface aoc.Reporter)
func (c *Console) ExampleChecked(example int, result aoc.Result) {
	label := c.pad(fmt.Sprintf("%s example %d part %d:", checkMark, example, result.Part))
	c.line(c.mark.Sprint(checkMark)+strings.TrimPrefix(label, checkMark), result)
}

// Solved prints the solution of a puzzle part.
// (Part of interface aoc.Reporter)
func (c *Console) Solved(result aoc.Result) {
	c.line(c.pad(fmt.Sprintf("Part %d solution:", result.Part)), result)
}

func (c *Console) line(label string, result aoc.Result) {
	_, err := fmt.Fprintf(c.w, "%s %s (%v)\n", label, c.answer.Sprint(result.Answer),
		Round(result.Elapsed))
	if err != nil {
		tracer().Errorf("report: %v", err)
	}
}

// pad appends spaces to an uncolored label until it reaches the console's
// column.
func (c *Console) pad(s string) string {
	w := DisplayWidth(s, c.Context)
	if w >= c.Column {
		return s
	}
	return s + strings.Repeat(" ", c.Column-w)
}

// DisplayWidth returns the number of fixed-width positions s occupies on a
// console. A nil context is treated as a Latin context.
func DisplayWidth(s string, context *uax11.Context) int {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	if context == nil {
		context = uax11.LatinContext
	}
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

// Round shortens a duration for display.
func Round(d time.Duration) time.Duration {
	switch {
	case d > time.Second:
		return d.Round(time.Millisecond)
	case d > time.Millisecond:
		return d.Round(time.Microsecond)
	}
	return d
}
