package snail

import (
	"strconv"
	"strings"
)

// Node is an element of a snailfish number, either a *Leaf or a *Pair.
//
// The set of node types is closed: clients cannot implement Node.
type Node interface {
	isLeaf() bool
	appendTo(sb *strings.Builder)
}

// Leaf is a regular number within a snailfish number.
type Leaf struct {
	Value int
}

// Pair holds two elements of a snailfish number.
type Pair struct {
	Left, Right Node
}

func (l *Leaf) isLeaf() bool { return true }
func (p *Pair) isLeaf() bool { return false }

// NewLeaf creates a leaf node. v must not be negative.
func NewLeaf(v int) *Leaf {
	assert(v >= 0, "snail leaf value must not be negative")
	return &Leaf{Value: v}
}

// NewPair creates a pair node from two elements. Neither may be nil.
func NewPair(left, right Node) *Pair {
	assert(left != nil && right != nil, "snail pair requires two elements")
	return &Pair{Left: left, Right: right}
}

// SplitValue creates the pair a leaf with value v is split into:
// [floor(v/2),ceil(v/2)].
func SplitValue(v int) *Pair {
	half := v / 2
	return NewPair(NewLeaf(half), NewLeaf(v-half))
}

func (l *Leaf) String() string {
	return strconv.Itoa(l.Value)
}

func (p *Pair) String() string {
	var sb strings.Builder
	p.appendTo(&sb)
	return sb.String()
}

func (l *Leaf) appendTo(sb *strings.Builder) {
	sb.WriteString(strconv.Itoa(l.Value))
}

func (p *Pair) appendTo(sb *strings.Builder) {
	sb.WriteByte('[')
	p.Left.appendTo(sb)
	sb.WriteByte(',')
	p.Right.appendTo(sb)
	sb.WriteByte(']')
}

// child returns the element of p in direction d.
func (p *Pair) child(d direction) Node {
	if d == left {
		return p.Left
	}
	return p.Right
}

// setChild replaces the element of p in direction d.
func (p *Pair) setChild(d direction, n Node) {
	assert(n != nil, "snail pair element must not be nil")
	if d == left {
		p.Left = n
	} else {
		p.Right = n
	}
}

// --- Folds over nodes ------------------------------------------------------

// magnitude folds a subtree into its magnitude.
func magnitude(n Node) int {
	switch n := n.(type) {
	case *Leaf:
		return n.Value
	case *Pair:
		return 3*magnitude(n.Left) + 2*magnitude(n.Right)
	default:
		panic("snail: unknown node type")
	}
}

// clone deep-copies a subtree.
func clone(n Node) Node {
	switch n := n.(type) {
	case *Leaf:
		return &Leaf{Value: n.Value}
	case *Pair:
		return &Pair{Left: clone(n.Left), Right: clone(n.Right)}
	default:
		panic("snail: unknown node type")
	}
}

// depth returns the number of pair levels of a subtree. A leaf has depth 0.
func depth(n Node) int {
	switch n := n.(type) {
	case *Leaf:
		return 0
	case *Pair:
		return 1 + max(depth(n.Left), depth(n.Right))
	default:
		panic("snail: unknown node type")
	}
}

// Equal reports whether two subtrees have identical shape and leaf values.
func Equal(a, b Node) bool {
	switch a := a.(type) {
	case *Leaf:
		bl, ok := b.(*Leaf)
		return ok && a.Value == bl.Value
	case *Pair:
		bp, ok := b.(*Pair)
		return ok && Equal(a.Left, bp.Left) && Equal(a.Right, bp.Right)
	case nil:
		return b == nil
	default:
		panic("snail: unknown node type")
	}
}
