package aoc

/*
BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"context"
	"fmt"
	"time"

	"github.com/guiguan/caster"
)

// Answer is the solution of one part of a puzzle. Most puzzles are answered by
// an integer, but some ask for a string or even a float. Answers are compared
// by their fmt.Sprint representation.
type Answer = any

// Solver solves both parts of a puzzle. Solvers receive the complete puzzle
// text, with common indentation and surrounding white space removed, and have
// to be deterministic.
type Solver interface {
	SolvePart1(input string) (Answer, error)
	SolvePart2(input string) (Answer, error)
}

// Example is a piece of puzzle text together with the answers the puzzle
// description states for it. A nil answer is not checked.
type Example struct {
	Input string
	Part1 Answer
	Part2 Answer
}

// InputSource provides the puzzle text for a given day.
type InputSource interface {
	Input(ctx context.Context, year, day int) (string, error)
}

// Result is the answer for one part of a puzzle, together with the time it
// took to compute it.
type Result struct {
	Part    int
	Answer  Answer
	Elapsed time.Duration
}

// Reporter receives the outcome of example checks and of puzzle parts as
// soon as they are available.
type Reporter interface {
	ExampleChecked(example int, result Result)
	Solved(result Result)
}

// Puzzle is a puzzle for a given day, together with its solver and the
// examples to check the solver against.
type Puzzle struct {
	Year     int
	Day      int
	Solver   Solver
	Examples []Example

	events *caster.Caster // broadcaster for run events, if observed
}

// String returns the puzzle's name, e.g. "2021/day18".
func (p *Puzzle) String() string {
	return fmt.Sprintf("%d/day%02d", p.Year, p.Day)
}

// HasPart2 reports whether any example declares an answer for part 2.
func (p *Puzzle) HasPart2() bool {
	for _, ex := range p.Examples {
		if ex.Part2 != nil {
			return true
		}
	}
	return false
}

// CheckExamples runs the solver on every declared example. It stops at the
// first answer differing from the declared one, returning an
// *ExampleMismatchError. Parts without a declared answer are not run.
func (p *Puzzle) CheckExamples() error {
	return p.checkExamples(nil)
}

func (p *Puzzle) checkExamples(rep Reporter) error {
	if p.Solver == nil {
		return ErrNoSolver
	}
	for i, ex := range p.Examples {
		input := Prepare(ex.Input)
		for part, want := range []Answer{ex.Part1, ex.Part2} {
			if want == nil {
				continue
			}
			result, err := p.solve(part+1, input)
			if err != nil {
				return fmt.Errorf("%s: example %d: %w", p, i+1, err)
			}
			if !SameAnswer(want, result.Answer) {
				return &ExampleMismatchError{
					Example:  i + 1,
					Part:     part + 1,
					Expected: want,
					Actual:   result.Answer,
				}
			}
			T().Debugf("%s: example %d part %d ok", p, i+1, part+1)
			if rep != nil {
				rep.ExampleChecked(i+1, result)
			}
			p.publish(ExampleChecked{Puzzle: p.String(), Example: i + 1, Result: result})
		}
	}
	return nil
}

// Run checks all examples and then solves the puzzle for the text provided
// by src. Part 2 is solved only if an example declares an answer for it.
// Results are handed to rep (which may be nil) as soon as they are
// available, and returned in order of the parts.
//
// Every error is fatal: Run will not solve any part after an example
// mismatch or after the input could not be acquired.
func (p *Puzzle) Run(ctx context.Context, src InputSource, rep Reporter) ([]Result, error) {
	defer p.closeEvents()
	if src == nil {
		return nil, ErrNoInput
	}
	if err := p.checkExamples(rep); err != nil {
		T().Errorf("%s: %v", p, err)
		return nil, err
	}
	raw, err := src.Input(ctx, p.Year, p.Day)
	if err != nil {
		return nil, fmt.Errorf("%s: acquiring input: %w", p, err)
	}
	input := Prepare(raw)
	parts := 1
	if p.HasPart2() {
		parts = 2
	}
	results := make([]Result, 0, parts)
	for part := 1; part <= parts; part++ {
		result, err := p.solve(part, input)
		if err != nil {
			return results, fmt.Errorf("%s: %w", p, err)
		}
		T().Infof("%s: part %d solution: %v (%v)", p, part, result.Answer, result.Elapsed)
		results = append(results, result)
		if rep != nil {
			rep.Solved(result)
		}
		p.publish(PartSolved{Puzzle: p.String(), Result: result})
	}
	return results, nil
}

// solve runs one part of the solver and measures wall-clock time.
func (p *Puzzle) solve(part int, input string) (Result, error) {
	var answer Answer
	var err error
	start := time.Now()
	switch part {
	case 1:
		answer, err = p.Solver.SolvePart1(input)
	case 2:
		answer, err = p.Solver.SolvePart2(input)
	default:
		panic(fmt.Sprintf("aoc: puzzle has no part %d", part))
	}
	elapsed := time.Since(start)
	if err != nil {
		return Result{}, fmt.Errorf("part %d: %w", part, err)
	}
	return Result{Part: part, Answer: answer, Elapsed: elapsed}, nil
}

// SameAnswer reports whether two answers are equal by their textual
// representation, so that e.g. int 42 and int64 42 are the same answer.
func SameAnswer(a, b Answer) bool {
	return fmt.Sprint(a) == fmt.Sprint(b)
}

// ExampleMismatchError is returned if a solver does not reproduce the answer
// declared for an example.
type ExampleMismatchError struct {
	Example  int // 1-based index into the puzzle's examples
	Part     int
	Expected Answer
	Actual   Answer
}

func (e *ExampleMismatchError) Error() string {
	return fmt.Sprintf("example %d part %d: expected %v, got %v",
		e.Example, e.Part, e.Expected, e.Actual)
}
