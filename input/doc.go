/*
Package input acquires puzzle texts.

Puzzle inputs are personal: every participant gets a different input, which
is served only to a logged-in session. A Loader therefore first looks into a
local cache. Only if the input is not cached, it will fetch it from the puzzle
site, authenticating with a session token read from a credentials file. The
credentials file is searched for in the working directory and all of its
parents, so one file at the top of a puzzle repository serves all days.
Fetched inputs are stored in the cache before they are returned, thus every
input is fetched at most once.

Fetching is rate limited and transient failures (network errors, server
errors) are retried with exponential backoff. Client errors are not retried;
they usually indicate an expired session token.

For tests and ad-hoc runs, Literal provides a fixed text.

_________________________________________________________________________

# BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package input

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'aoc'
func tracer() tracing.Trace {
	return tracing.Select("aoc")
}
