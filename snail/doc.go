/*
Package snail implements arithmetic on snailfish numbers.

A snailfish number is a binary tree: every inner node is a pair of exactly two
elements, every leaf is a plain, non-negative integer. Numbers are written as
nested brackets,

	[[1,2],[[3,4],5]]

Adding two numbers builds a new pair from both and reduces the result to normal
form. Reduction repeatedly applies two local rewrite rules:

  - explode: the leftmost pair nested inside four other pairs is replaced by 0;
    its left value is added to the nearest leaf to its left, its right value to
    the nearest leaf to its right (if such leaves exist),
  - split: the leftmost leaf with a value of 10 or greater is replaced by a pair
    of its halves, rounding down on the left and up on the right.

Explodes always take priority over splits. A number in normal form is
summarized by its magnitude, 3 times the magnitude of the left element plus 2
times the magnitude of the right element.

Trees do not carry parent links. Walking "up" the tree, which the explode rule
needs for finding neighbor leaves, is done with an explicit cursor, a path of
(pair, direction) steps from the root.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package snail

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'aoc'
func tracer() tracing.Trace {
	return tracing.Select("aoc")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
