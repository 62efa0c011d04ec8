package snail

import "strings"

// direction is the side of a pair a path descends into.
type direction uint8

const (
	left direction = iota
	right
)

func (d direction) String() string {
	if d == left {
		return "L"
	}
	return "R"
}

// step is one descent on a path from the root: the pair passed and the side
// taken there.
type step struct {
	pair *Pair
	dir  direction
}

// cursor is the path from a number's root to the node currently visited.
// An empty cursor denotes the root itself.
//
// Cursors are snapshots. Neighbor searches read a cursor but never modify it,
// so the left and the right search of an explode may share one cursor.
type cursor []step

// Position is the sequence of left/right choices from the root to a node,
// written with 'L' and 'R'. The root has position "".
type Position string

// at returns the node the cursor points to.
func (c cursor) at(root Node) Node {
	if len(c) == 0 {
		return root
	}
	last := c[len(c)-1]
	return last.pair.child(last.dir)
}

// replace swaps the node the cursor points to. The root cannot be replaced this
// way, as there is no pair holding it.
func (c cursor) replace(n Node) {
	assert(len(c) > 0, "snail cursor: cannot replace root in place")
	last := c[len(c)-1]
	last.pair.setChild(last.dir, n)
}

func (c cursor) position() Position {
	var sb strings.Builder
	for _, s := range c {
		sb.WriteString(s.dir.String())
	}
	return Position(sb.String())
}

// leftNeighbor finds the nearest leaf strictly to the left of the node the
// cursor points to, in in-order sequence. It walks up until an ancestor has
// been entered from the right, then descends into that ancestor's left element
// down to its rightmost leaf. Returns nil if the node is at the left border of
// the tree.
func leftNeighbor(c cursor) *Leaf {
	for i := len(c) - 1; i >= 0; i-- {
		if c[i].dir == right {
			return rightmostLeaf(c[i].pair.Left)
		}
	}
	return nil
}

// rightNeighbor is the mirror image of leftNeighbor.
func rightNeighbor(c cursor) *Leaf {
	for i := len(c) - 1; i >= 0; i-- {
		if c[i].dir == left {
			return leftmostLeaf(c[i].pair.Right)
		}
	}
	return nil
}

func leftmostLeaf(n Node) *Leaf {
	for {
		switch x := n.(type) {
		case *Leaf:
			return x
		case *Pair:
			n = x.Left
		default:
			panic("snail: unknown node type")
		}
	}
}

func rightmostLeaf(n Node) *Leaf {
	for {
		switch x := n.(type) {
		case *Leaf:
			return x
		case *Pair:
			n = x.Right
		default:
			panic("snail: unknown node type")
		}
	}
}

// walk visits the subtree at n in depth-first order, a pair before its
// elements and left before right. Leaves are therefore visited in in-order
// sequence. The walk stops as soon as visit returns false; walk then returns
// false as well.
//
// Cursors handed to visit share their backing array with the walk. A cursor is
// stable only if visit stops the walk, which is how callers retain it.
func walk(n Node, c cursor, visit func(Node, cursor) bool) bool {
	if !visit(n, c) {
		return false
	}
	switch x := n.(type) {
	case *Leaf:
		return true
	case *Pair:
		if !walk(x.Left, append(c, step{pair: x, dir: left}), visit) {
			return false
		}
		return walk(x.Right, append(c, step{pair: x, dir: right}), visit)
	default:
		panic("snail: unknown node type")
	}
}
