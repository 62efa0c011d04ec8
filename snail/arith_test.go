package snail

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const homework = `[[[0,[5,8]],[[1,7],[9,6]]],[[4,[1,2]],[[1,4],2]]]
[[[5,[2,8]],4],[5,[[9,9],0]]]
[6,[[[6,2],[5,6]],[[7,6],[4,7]]]]
[[[6,[0,7]],[0,9]],[4,[9,[9,0]]]]
[[[7,[6,4]],[3,[1,3]]],[[[5,5],1],9]]
[[6,[[7,3],[3,2]]],[[[3,8],[5,7]],4]]
[[[[5,4],[7,7]],8],[[8,3],8]]
[[9,3],[[9,9],[6,[4,9]]]]
[[2,[[7,7],7]],[[5,8],[[9,3],[0,2]]]]
[[[[5,2],5],[8,[3,7]]],[[5,[7,5]],[4,4]]]`

func TestAdd(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aoc")
	defer teardown()
	//
	a := MustParse("[[[[4,3],4],4],[7,[[8,4],9]]]")
	b := MustParse("[1,1]")
	sum := Add(a, b)
	if sum.String() != "[[[[0,7],4],[[7,8],[6,0]]],[8,1]]" {
		t.Errorf("unexpected sum %s", sum)
	}
	if a.String() != "[[[[4,3],4],4],[7,[[8,4],9]]]" || b.String() != "[1,1]" {
		t.Errorf("Add modified its operands: %s, %s", a, b)
	}
	if sum.Root().(*Pair).Left == a.Root() {
		t.Errorf("sum shares nodes with its operand")
	}
}

func TestAddIsNotCommutative(t *testing.T) {
	a, b := MustParse("[1,1]"), MustParse("[2,2]")
	ab, ba := Add(a, b).Magnitude(), Add(b, a).Magnitude()
	if ab != 35 || ba != 40 {
		t.Errorf("expected magnitudes 35 and 40, have %d and %d", ab, ba)
	}
}

func TestSumSmallLists(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aoc")
	defer teardown()
	//
	tests := []struct {
		lines string
		want  string
	}{
		{"[1,1]\n[2,2]\n[3,3]\n[4,4]", "[[[[1,1],[2,2]],[3,3]],[4,4]]"},
		{"[1,1]\n[2,2]\n[3,3]\n[4,4]\n[5,5]", "[[[[3,0],[5,3]],[4,4]],[5,5]]"},
		{"[1,1]\n[2,2]\n[3,3]\n[4,4]\n[5,5]\n[6,6]", "[[[[5,0],[7,4]],[5,5]],[6,6]]"},
	}
	for _, test := range tests {
		numbers, err := ParseLines(test.lines)
		if err != nil {
			t.Fatal(err)
		}
		sum, err := Sum(numbers)
		if err != nil {
			t.Fatal(err)
		}
		if sum.String() != test.want {
			t.Errorf("expected sum %s, have %s", test.want, sum)
		}
	}
}

func TestSumHomework(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aoc")
	defer teardown()
	//
	numbers, err := ParseLines(homework)
	if err != nil {
		t.Fatal(err)
	}
	before := make([]string, len(numbers))
	for i, n := range numbers {
		before[i] = n.String()
	}
	sum, err := Sum(numbers)
	if err != nil {
		t.Fatal(err)
	}
	if sum.String() != "[[[[6,6],[7,6]],[[7,7],[7,0]]],[[[7,7],[7,7]],[[7,8],[9,9]]]]" {
		t.Errorf("unexpected final sum %s", sum)
	}
	if sum.Magnitude() != 4140 {
		t.Errorf("expected magnitude 4140, have %d", sum.Magnitude())
	}
	for i, n := range numbers {
		if n.String() != before[i] {
			t.Errorf("Sum modified operand #%d: %s", i, n)
		}
	}
}

func TestMaxPairMagnitude(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aoc")
	defer teardown()
	//
	numbers, err := ParseLines(homework)
	if err != nil {
		t.Fatal(err)
	}
	m, err := MaxPairMagnitude(numbers)
	if err != nil {
		t.Fatal(err)
	}
	if m != 3993 {
		t.Errorf("expected max magnitude 3993, have %d", m)
	}
	best := Add(numbers[8], numbers[0])
	if best.String() != "[[[[7,8],[6,6]],[[6,0],[7,7]]],[[[7,8],[8,8]],[[7,9],[0,6]]]]" {
		t.Errorf("unexpected best sum %s", best)
	}
}

func TestTooFewNumbers(t *testing.T) {
	if _, err := Sum(nil); !errors.Is(err, ErrTooFewNumbers) {
		t.Errorf("expected ErrTooFewNumbers for empty sum, have %v", err)
	}
	if _, err := MaxPairMagnitude([]*Number{MustParse("[1,2]")}); !errors.Is(err, ErrTooFewNumbers) {
		t.Errorf("expected ErrTooFewNumbers for a single number, have %v", err)
	}
}
