package snail

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSplitValue(t *testing.T) {
	for v, want := range map[int]string{10: "[5,5]", 11: "[5,6]", 12: "[6,6]", 15: "[7,8]"} {
		if p := SplitValue(v); p.String() != want {
			t.Errorf("expected %d to split into %s, have %s", v, want, p)
		}
	}
	p := SplitValue(11)
	if l, ok := p.Left.(*Leaf); !ok || l.Value != 5 {
		t.Errorf("expected left element of split 11 to be leaf 5, is %v", p.Left)
	}
	if r, ok := p.Right.(*Leaf); !ok || r.Value != 6 {
		t.Errorf("expected right element of split 11 to be leaf 6, is %v", p.Right)
	}
}

func TestExplodeOnce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aoc")
	defer teardown()
	//
	tests := []struct{ before, after string }{
		{"[[[[[9,8],1],2],3],4]", "[[[[0,9],2],3],4]"},
		{"[7,[6,[5,[4,[3,2]]]]]", "[7,[6,[5,[7,0]]]]"},
		{"[[6,[5,[4,[3,2]]]],1]", "[[6,[5,[7,0]]],3]"},
		{"[[3,[2,[1,[7,3]]]],[6,[5,[4,[3,2]]]]]", "[[3,[2,[8,0]]],[9,[5,[4,[3,2]]]]]"},
		{"[[3,[2,[8,0]]],[9,[5,[4,[3,2]]]]]", "[[3,[2,[8,0]]],[9,[5,[7,0]]]]"},
	}
	for _, test := range tests {
		n := MustParse(test.before)
		if !n.Explode() {
			t.Errorf("expected %s to explode", test.before)
			continue
		}
		if n.String() != test.after {
			t.Errorf("explode %s: expected %s, have %s", test.before, test.after, n)
		}
	}
}

func TestExplodeNothing(t *testing.T) {
	n := MustParse("[[[[1,2],3],4],5]")
	if n.Explode() {
		t.Errorf("expected no explode for pairs nested inside three pairs, have %s", n)
	}
	if n.String() != "[[[[1,2],3],4],5]" {
		t.Errorf("number changed without explode: %s", n)
	}
}

func TestExplodeRequiresRegularPair(t *testing.T) {
	n := MustParse("[[[[[1,[2,3]],4],5],6],7]")
	c := cursor{}
	node := n.Root()
	for i := 0; i < 4; i++ {
		p := node.(*Pair)
		c = append(c, step{pair: p, dir: left})
		node = p.Left
	}
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected assertion panic for explode of non-regular pair")
		}
	}()
	explodeAt(c)
}

func TestSplitOnce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aoc")
	defer teardown()
	//
	n := FromNode(NewPair(
		MustParse("[[[0,7],4],[15,[0,13]]]").Root(),
		MustParse("[1,1]").Root(),
	))
	if !n.Split() {
		t.Fatalf("expected a split in %s", n)
	}
	if n.String() != "[[[[0,7],4],[[7,8],[0,13]]],[1,1]]" {
		t.Errorf("unexpected result of first split: %s", n)
	}
	if !n.Split() {
		t.Fatalf("expected a second split in %s", n)
	}
	if n.String() != "[[[[0,7],4],[[7,8],[0,[6,7]]]],[1,1]]" {
		t.Errorf("unexpected result of second split: %s", n)
	}
	if n.Split() {
		t.Errorf("expected no more splits, have %s", n)
	}
}

func TestSplitRoot(t *testing.T) {
	n := FromNode(NewLeaf(13))
	if !n.Split() {
		t.Fatalf("expected bare regular number 13 to split")
	}
	if n.String() != "[6,7]" {
		t.Errorf("expected [6,7], have %s", n)
	}
}

func TestReduce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aoc")
	defer teardown()
	//
	n := MustParse("[[[[[4,3],4],4],[7,[[8,4],9]]],[1,1]]")
	n.Reduce()
	if n.String() != "[[[[0,7],4],[[7,8],[6,0]]],[8,1]]" {
		t.Errorf("unexpected reduction result %s", n)
	}
	if !n.IsNormal() {
		t.Errorf("expected %s to be in normal form", n)
	}
}

func TestReduceIsIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aoc")
	defer teardown()
	//
	for _, line := range strings.Split(homework, "\n") {
		for _, other := range []string{"[[[[4,3],4],4],[7,[[8,4],9]]]", "[1,1]"} {
			n := FromNode(NewPair(MustParse(line).Root(), MustParse(other).Root()))
			once := n.Reduce().String()
			if !n.IsNormal() {
				t.Fatalf("reduced number %s is not in normal form", once)
			}
			assertNormalForm(t, n)
			if twice := n.Reduce().String(); twice != once {
				t.Errorf("reduce not idempotent: %s vs %s", once, twice)
			}
		}
	}
}

func TestMagnitude(t *testing.T) {
	tests := map[string]int{
		"[9,1]":                             29,
		"[[9,1],[1,9]]":                     129,
		"[[1,2],[[3,4],5]]":                 143,
		"[[[[0,7],4],[[7,8],[6,0]]],[8,1]]": 1384,
		"[[[[1,1],[2,2]],[3,3]],[4,4]]":     445,
		"[[[[3,0],[5,3]],[4,4]],[5,5]]":     791,
		"[[[[5,0],[7,4]],[5,5]],[6,6]]":     1137,
		"[[[[8,7],[7,7]],[[8,6],[7,7]]],[[[0,7],[6,6]],[8,7]]]": 3488,
	}
	for in, want := range tests {
		n := MustParse(in)
		if m := n.Magnitude(); m != want {
			t.Errorf("magnitude of %s: expected %d, have %d", in, want, m)
		}
		if m := n.Magnitude(); m != want || n.String() != in {
			t.Errorf("magnitude of %s is not pure", in)
		}
	}
}

func TestLeavesAndPositions(t *testing.T) {
	n := MustParse("[[1,2],[[3,4],5]]")
	leaves := n.Leaves()
	want := []LeafRef{{"LL", 1}, {"LR", 2}, {"RLL", 3}, {"RLR", 4}, {"RR", 5}}
	if len(leaves) != len(want) {
		t.Fatalf("expected %d leaves, have %d", len(want), len(leaves))
	}
	for i := range want {
		if leaves[i] != want[i] {
			t.Errorf("leaf #%d: expected %v, have %v", i, want[i], leaves[i])
		}
		if l, ok := n.At(want[i].Position).(*Leaf); !ok || l.Value != want[i].Value {
			t.Errorf("At(%s) does not find leaf %d", want[i].Position, want[i].Value)
		}
	}
	if n.At("LLL") != nil || n.At("X") != nil {
		t.Errorf("expected invalid positions to yield nil")
	}
	if n.Depth() != 3 {
		t.Errorf("expected depth 3, have %d", n.Depth())
	}
}

func TestNeighborSearchLeavesCursorIntact(t *testing.T) {
	n := MustParse("[[1,[2,3]],[4,5]]")
	// cursor to leaf 2
	p := n.Root().(*Pair)
	lp := p.Left.(*Pair)
	c := cursor{{pair: p, dir: left}, {pair: lp, dir: right}, {pair: lp.Right.(*Pair), dir: left}}
	snapshot := c.position()
	if l := leftNeighbor(c); l == nil || l.Value != 1 {
		t.Errorf("expected left neighbor 1, have %v", l)
	}
	if r := rightNeighbor(c); r == nil || r.Value != 3 {
		t.Errorf("expected right neighbor 3, have %v", r)
	}
	if c.position() != snapshot {
		t.Errorf("neighbor search modified cursor: %s -> %s", snapshot, c.position())
	}
	first := cursor{{pair: p, dir: left}, {pair: lp, dir: left}}
	if l := leftNeighbor(first); l != nil {
		t.Errorf("expected no left neighbor for leftmost leaf, have %v", l)
	}
	last := cursor{{pair: p, dir: right}, {pair: p.Right.(*Pair), dir: right}}
	if r := rightNeighbor(last); r != nil {
		t.Errorf("expected no right neighbor for rightmost leaf, have %v", r)
	}
}

func TestCheck(t *testing.T) {
	if err := MustParse("[[1,2],3]").Check(); err != nil {
		t.Errorf("expected parsed number to be well-formed, have %v", err)
	}
	shared := NewLeaf(3)
	if err := FromNode(NewPair(shared, shared)).Check(); err == nil {
		t.Errorf("expected shared leaf to be detected")
	}
	if err := FromNode(&Pair{Left: NewLeaf(1)}).Check(); err == nil {
		t.Errorf("expected missing element to be detected")
	}
	if err := FromNode(&Pair{Left: NewLeaf(1), Right: &Leaf{Value: -2}}).Check(); err == nil {
		t.Errorf("expected negative value to be detected")
	}
}

func TestToDot(t *testing.T) {
	var buf bytes.Buffer
	if err := ToDot(MustParse("[[[[[9,8],1],2],3],12]"), &buf); err != nil {
		t.Fatal(err)
	}
	dot := buf.String()
	if !strings.HasPrefix(dot, "strict digraph {") {
		t.Errorf("expected DOT graph, have %q", dot)
	}
	if strings.Count(dot, "->") != 10 {
		t.Errorf("expected 10 edges, have %d", strings.Count(dot, "->"))
	}
	if strings.Count(dot, "#FF9944") != 2 {
		t.Errorf("expected exploding pair and splitting leaf to be highlighted")
	}
}

// assertNormalForm checks the normal form invariants without using the
// search functions of the reducer.
func assertNormalForm(t *testing.T, n *Number) {
	t.Helper()
	var check func(node Node, enclosing int)
	check = func(node Node, enclosing int) {
		switch x := node.(type) {
		case *Leaf:
			if x.Value > 9 {
				t.Errorf("regular number %d > 9 in normal form %s", x.Value, n)
			}
		case *Pair:
			if enclosing >= 4 && x.Left.isLeaf() && x.Right.isLeaf() {
				t.Errorf("pair %s nested inside %d pairs in normal form %s", x, enclosing, n)
			}
			check(x.Left, enclosing+1)
			check(x.Right, enclosing+1)
		}
	}
	check(n.Root(), 0)
}
