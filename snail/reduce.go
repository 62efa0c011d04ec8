package snail

// explodeDepth is the number of enclosing pairs which makes a pair explode.
const explodeDepth = 4

// splitThreshold is the largest value a regular number may hold in normal form.
const splitThreshold = 9

// Explode applies the explode rule once. It looks for the leftmost pair which
// is nested inside four pairs and consists of two regular numbers. If there
// is one, it is replaced by 0, and its values are added to the closest
// regular numbers to its left and right, respectively. Explode reports whether
// a pair has been exploded.
func (n *Number) Explode() bool {
	c, found := findExplodable(n.root)
	if !found {
		return false
	}
	explodeAt(c)
	return true
}

// Split applies the split rule once. It replaces the leftmost regular number
// greater than 9 by a pair of its halves. Split reports whether a number has
// been split.
func (n *Number) Split() bool {
	c, leaf := findSplittable(n.root)
	if leaf == nil {
		return false
	}
	p := SplitValue(leaf.Value)
	if len(c) == 0 {
		n.root = p
	} else {
		c.replace(p)
	}
	return true
}

// Reduce brings n into normal form and returns n. Every round starts a new
// scan from the root, as an explode may create a new split candidate anywhere
// in the tree and vice versa.
func (n *Number) Reduce() *Number {
	explodes, splits := 0, 0
	for {
		if n.Explode() {
			explodes++
			continue
		}
		if n.Split() {
			splits++
			continue
		}
		break
	}
	tracer().Debugf("reduced after %d explodes and %d splits", explodes, splits)
	return n
}

// findExplodable returns the path to the first pair, in depth-first order,
// which has at least explodeDepth enclosing pairs and two leaf elements.
func findExplodable(root Node) (cursor, bool) {
	var target cursor
	found := false
	walk(root, make(cursor, 0, 8), func(node Node, c cursor) bool {
		p, ok := node.(*Pair)
		if !ok || len(c) < explodeDepth || !p.Left.isLeaf() || !p.Right.isLeaf() {
			return true
		}
		target, found = c, true
		return false
	})
	return target, found
}

// findSplittable returns the first leaf, in in-order sequence, with a value
// above splitThreshold, together with its path.
func findSplittable(root Node) (cursor, *Leaf) {
	var target cursor
	var leaf *Leaf
	walk(root, make(cursor, 0, 8), func(node Node, c cursor) bool {
		l, ok := node.(*Leaf)
		if !ok || l.Value <= splitThreshold {
			return true
		}
		target, leaf = c, l
		return false
	})
	return target, leaf
}

// explodeAt explodes the pair c points to. The pair must consist of two
// leaves; anything else is a programming error.
//
// Both neighbor searches start from the same cursor snapshot, taken after
// the pair has been replaced by 0.
func explodeAt(c cursor) {
	assert(len(c) > 0, "snail explode: root pair cannot explode")
	p, ok := c.at(nil).(*Pair)
	assert(ok, "snail explode: target is not a pair")
	l, lok := p.Left.(*Leaf)
	r, rok := p.Right.(*Leaf)
	assert(lok && rok, "snail explode: pair has to consist of two regular numbers")
	c.replace(NewLeaf(0))
	if neighbor := leftNeighbor(c); neighbor != nil {
		neighbor.Value += l.Value
	}
	if neighbor := rightNeighbor(c); neighbor != nil {
		neighbor.Value += r.Value
	}
}

// IsNormal reports whether neither explode nor split applies anywhere in n.
func (n *Number) IsNormal() bool {
	if _, found := findExplodable(n.root); found {
		return false
	}
	_, leaf := findSplittable(n.root)
	return leaf == nil
}
