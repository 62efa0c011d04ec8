package snail

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParseError is returned for text which is not a well-formed snailfish number.
type ParseError struct {
	Input  string // the (trimmed) text which failed to parse
	Line   int    // 1-based line number for multi-line input, 0 otherwise
	Offset int    // byte offset of the offending character within Input
	Msg    string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("snail: line %d, offset %d: %s", e.Line, e.Offset, e.Msg)
	}
	return fmt.Sprintf("snail: offset %d: %s", e.Offset, e.Msg)
}

// Parse reads a snailfish number from its bracket notation, e.g. "[[1,2],3]".
// Leading and trailing white space is ignored. The top-level element has to
// be a pair.
func Parse(s string) (*Number, error) {
	p := parser{input: strings.TrimSpace(s)}
	if p.input == "" {
		return nil, p.errorf("empty input")
	}
	if p.peek() != '[' {
		return nil, p.errorf("number has to start with '[', have %q", p.peek())
	}
	root, err := p.element()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.input) {
		return nil, p.errorf("unexpected trailing input %q", p.input[p.pos:])
	}
	return &Number{root: root}, nil
}

// MustParse is like Parse, but panics if s cannot be parsed.
// It is intended for tests and for literal numbers in code.
func MustParse(s string) *Number {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

// ParseLines parses one snailfish number per line. Lines are trimmed and empty
// lines are skipped. Errors report the 1-based line number.
func ParseLines(s string) ([]*Number, error) {
	var numbers []*Number
	for i, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n, err := Parse(line)
		if err != nil {
			var perr *ParseError
			if errors.As(err, &perr) {
				perr.Line = i + 1
			}
			return nil, err
		}
		numbers = append(numbers, n)
	}
	tracer().Debugf("parsed %d snailfish numbers", len(numbers))
	return numbers, nil
}

// parser is a recursive descent parser for
//
//	pair    := '[' element ',' element ']'
//	element := integer | pair
//
// Blanks and tabs are allowed between tokens, but not within an integer.
type parser struct {
	input string
	pos   int
}

const eof = byte(0)

func (p *parser) peek() byte {
	if p.pos >= len(p.input) {
		return eof
	}
	return p.input[p.pos]
}

// skipSpace moves over blanks and tabs between tokens.
func (p *parser) skipSpace() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

func (p *parser) expect(c byte) error {
	p.skipSpace()
	if p.peek() != c {
		if p.peek() == eof {
			return p.errorf("expected %q, have end of input", c)
		}
		return p.errorf("expected %q, have %q", c, p.peek())
	}
	p.pos++
	return nil
}

func (p *parser) element() (Node, error) {
	p.skipSpace()
	c := p.peek()
	switch {
	case c == '[':
		return p.pair()
	case isDigit(c):
		return p.integer()
	case c == eof:
		return nil, p.errorf("unexpected end of input")
	default:
		return nil, p.errorf("expected '[' or digit, have %q", c)
	}
}

func (p *parser) pair() (Node, error) {
	if err := p.expect('['); err != nil {
		return nil, err
	}
	l, err := p.element()
	if err != nil {
		return nil, err
	}
	if err = p.expect(','); err != nil {
		return nil, err
	}
	r, err := p.element()
	if err != nil {
		return nil, err
	}
	if err = p.expect(']'); err != nil {
		return nil, err
	}
	return &Pair{Left: l, Right: r}, nil
}

func (p *parser) integer() (Node, error) {
	start := p.pos
	for isDigit(p.peek()) {
		p.pos++
	}
	text := p.input[start:p.pos]
	v, err := strconv.Atoi(text)
	if err != nil {
		p.pos = start
		return nil, p.errorf("invalid regular number %q", text)
	}
	return &Leaf{Value: v}, nil
}

func (p *parser) errorf(format string, args ...any) *ParseError {
	return &ParseError{
		Input:  p.input,
		Offset: p.pos,
		Msg:    fmt.Sprintf(format, args...),
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
