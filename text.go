package aoc

import (
	"fmt"
	"strconv"
	"strings"
)

// Prepare normalizes puzzle text: common indentation is removed from all
// lines, then leading and trailing white space is stripped. Examples embedded
// as indented raw strings in Go code thus compare to the real puzzle input.
func Prepare(text string) string {
	return strings.TrimSpace(Dedent(text))
}

// Dedent removes any whitespace prefix common to all non-blank lines of
// text. Lines consisting of white space only are normalized to empty lines.
func Dedent(text string) string {
	lines := strings.Split(text, "\n")
	margin := ""
	first := true
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""
			continue
		}
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if first {
			margin, first = indent, false
			continue
		}
		margin = commonPrefix(margin, indent)
	}
	if margin == "" {
		return strings.Join(lines, "\n")
	}
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, margin)
	}
	return strings.Join(lines, "\n")
}

func commonPrefix(a, b string) string {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[:i]
		}
	}
	return a[:n]
}

// Lines splits puzzle text into lines.
func Lines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// Ints interprets every line of puzzle text as an integer.
func Ints(text string) ([]int, error) {
	lines := Lines(text)
	ints := make([]int, len(lines))
	for i, line := range lines {
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		ints[i] = n
	}
	return ints, nil
}
