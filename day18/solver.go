/*
Package day18 solves the snailfish homework of Advent of Code 2021, day 18.

The puzzle input is a list of snailfish numbers, one per line. Part 1 asks for
the magnitude of the sum of all numbers, in the order given. Part 2 asks for
the largest magnitude of any sum of two different numbers of the list.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package day18

import (
	"github.com/npillmayer/aoc"
	"github.com/npillmayer/aoc/snail"
)

// Year and Day of this puzzle.
const (
	Year = 2021
	Day  = 18
)

// Solver is the aoc.Solver for day 18.
type Solver struct{}

var _ aoc.Solver = Solver{}

// ParseInput reads the homework list.
func ParseInput(input string) ([]*snail.Number, error) {
	return snail.ParseLines(input)
}

// SolvePart1 returns the magnitude of the final sum.
func (Solver) SolvePart1(input string) (aoc.Answer, error) {
	numbers, err := ParseInput(input)
	if err != nil {
		return nil, err
	}
	sum, err := snail.Sum(numbers)
	if err != nil {
		return nil, err
	}
	aoc.T().Debugf("day 18: sum of %d numbers = %s", len(numbers), sum)
	return sum.Magnitude(), nil
}

// SolvePart2 returns the largest magnitude of any sum of two different
// numbers.
func (Solver) SolvePart2(input string) (aoc.Answer, error) {
	numbers, err := ParseInput(input)
	if err != nil {
		return nil, err
	}
	return snail.MaxPairMagnitude(numbers)
}

// Puzzle returns the puzzle for day 18 with the example from the puzzle
// description.
func Puzzle() *aoc.Puzzle {
	return &aoc.Puzzle{
		Year:   Year,
		Day:    Day,
		Solver: Solver{},
		Examples: []aoc.Example{
			{
				Input: `
					[[[0,[5,8]],[[1,7],[9,6]]],[[4,[1,2]],[[1,4],2]]]
					[[[5,[2,8]],4],[5,[[9,9],0]]]
					[6,[[[6,2],[5,6]],[[7,6],[4,7]]]]
					[[[6,[0,7]],[0,9]],[4,[9,[9,0]]]]
					[[[7,[6,4]],[3,[1,3]]],[[[5,5],1],9]]
					[[6,[[7,3],[3,2]]],[[[3,8],[5,7]],4]]
					[[[[5,4],[7,7]],8],[[8,3],8]]
					[[9,3],[[9,9],[6,[4,9]]]]
					[[2,[[7,7],7]],[[5,8],[[9,3],[0,2]]]]
					[[[[5,2],5],[8,[3,7]]],[[5,[7,5]],[4,4]]]
				`,
				Part1: 4140,
				Part2: 3993,
			},
		},
	}
}
