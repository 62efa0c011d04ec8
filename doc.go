/*
Package aoc is a small harness for daily programming puzzles of the
“Advent of Code” kind.

Every puzzle is solved in two parts. A solver implements both parts as
functions from the raw puzzle text to an answer. Puzzles declare examples,
i.e. pieces of text from the puzzle description together with the answers
given there. Before a solver is ever run on the real puzzle input, all declared
examples are checked, and a single mismatch aborts the run:

	puzzle := &aoc.Puzzle{
	    Year: 2021, Day: 18,
	    Solver: day18.Solver{},
	    Examples: []aoc.Example{
	        {Input: homework, Part1: 4140, Part2: 3993},
	    },
	}
	results, err := puzzle.Run(ctx, loader, report.NewConsole(os.Stdout))

The real input is acquired from an InputSource (see package input for a
loader which caches puzzle inputs locally and fetches them if needed). Both
parts are timed and reported to a Reporter.

Part 2 of a puzzle is usually unlocked only after part 1 has been solved. A
puzzle without any example declaring a part 2 answer is therefore run for
part 1 only.

_________________________________________________________________________

# BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package aoc

import (
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global tracer with key 'aoc'.
func T() tracing.Trace {
	return tracing.Select("aoc")
}

// Error is an error type for the aoc module.
type Error string

func (e Error) Error() string {
	return string(e)
}

// ErrNoSolver is flagged if a puzzle is run without a solver.
const ErrNoSolver = Error("aoc: puzzle has no solver")

// ErrNoInput is flagged if a puzzle is run without an input source.
const ErrNoInput = Error("aoc: puzzle has no input source")
