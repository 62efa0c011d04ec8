package snail

import "fmt"

// Check validates the structural invariants of n: every pair has two
// elements, every regular number is non-negative and no node occurs twice.
//
// Numbers built by Parse and the arithmetic in this package always pass.
// Check is meant for numbers assembled by hand with FromNode.
func (n *Number) Check() error {
	if n == nil || n.root == nil {
		return fmt.Errorf("%w: nil number", ErrMalformed)
	}
	seen := make(map[Node]bool)
	return checkNode(n.root, "", seen)
}

func checkNode(node Node, pos Position, seen map[Node]bool) error {
	if node == nil {
		return fmt.Errorf("%w: missing element at position %q", ErrMalformed, pos)
	}
	if seen[node] {
		return fmt.Errorf("%w: node at position %q is shared", ErrMalformed, pos)
	}
	seen[node] = true
	switch x := node.(type) {
	case *Leaf:
		if x == nil {
			return fmt.Errorf("%w: nil leaf at position %q", ErrMalformed, pos)
		}
		if x.Value < 0 {
			return fmt.Errorf("%w: negative value %d at position %q", ErrMalformed, x.Value, pos)
		}
		return nil
	case *Pair:
		if x == nil {
			return fmt.Errorf("%w: nil pair at position %q", ErrMalformed, pos)
		}
		if err := checkNode(x.Left, pos+"L", seen); err != nil {
			return err
		}
		return checkNode(x.Right, pos+"R", seen)
	default:
		panic("snail: unknown node type")
	}
}
