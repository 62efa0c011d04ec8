/*
Command aoc runs puzzle solvers.

Usage:

	aoc run <day>        check the examples of a puzzle, then solve it
	aoc examples <day>   print the example blocks of a puzzle description

Settings are read from a file .aoc.yaml in the working directory or one of
its parents. Puzzle inputs are fetched using a session token from a file
.aoc-session, searched for in the same way, and are cached locally.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
