package snail

import (
	"strings"
)

// Number is a snailfish number, i.e. a tree of pairs and regular numbers.
//
// A Number exclusively owns its nodes; no node is ever part of two numbers.
// Explode, Split and Reduce mutate the number in place. Add and the other
// arithmetic functions leave their operands untouched and work on deep copies.
type Number struct {
	root Node
}

// FromNode wraps a tree of nodes as a number. The number takes ownership of
// the nodes; clients must not retain or share them afterwards.
func FromNode(root Node) *Number {
	assert(root != nil, "snail: number requires a root node")
	return &Number{root: root}
}

// Root returns the root node of n.
func (n *Number) Root() Node {
	return n.root
}

// String returns the canonical bracket notation of n, e.g. "[[1,2],3]".
func (n *Number) String() string {
	if n == nil || n.root == nil {
		return "<nil>"
	}
	var sb strings.Builder
	n.root.appendTo(&sb)
	return sb.String()
}

// Clone returns a deep copy of n.
func (n *Number) Clone() *Number {
	return &Number{root: clone(n.root)}
}

// Magnitude returns the magnitude of n. It does not modify n.
func (n *Number) Magnitude() int {
	return magnitude(n.root)
}

// Depth returns the nesting depth of n: 1 for a pair of two regular numbers,
// 0 for a bare regular number.
func (n *Number) Depth() int {
	return depth(n.root)
}

// LeafRef is a regular number found at a position within a number.
type LeafRef struct {
	Position Position
	Value    int
}

// Leaves lists the regular numbers of n in left-to-right order.
func (n *Number) Leaves() []LeafRef {
	var leaves []LeafRef
	walk(n.root, nil, func(node Node, c cursor) bool {
		if l, ok := node.(*Leaf); ok {
			leaves = append(leaves, LeafRef{Position: c.position(), Value: l.Value})
		}
		return true
	})
	return leaves
}

// At returns the node at position pos, or nil if pos does not denote a node
// of n.
func (n *Number) At(pos Position) Node {
	node := n.root
	for _, d := range pos {
		p, ok := node.(*Pair)
		if !ok {
			return nil
		}
		switch d {
		case 'L':
			node = p.Left
		case 'R':
			node = p.Right
		default:
			return nil
		}
	}
	return node
}

// Equal reports whether n and other are the same number.
func (n *Number) Equal(other *Number) bool {
	if n == nil || other == nil {
		return n == other
	}
	return Equal(n.root, other.root)
}
