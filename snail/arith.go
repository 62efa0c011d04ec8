package snail

// Error is an error type for snailfish arithmetic.
type Error string

func (e Error) Error() string {
	return string(e)
}

// ErrTooFewNumbers is flagged if an operation needs more operands than given.
const ErrTooFewNumbers = Error("snail: too few numbers")

// ErrMalformed is flagged by Check for numbers violating the tree invariants.
const ErrMalformed = Error("snail: malformed number")

// Add returns the reduced sum of a and b.
//
// The sum is built from deep copies of a and b, which therefore remain
// unchanged. a and b are expected to be in normal form.
func Add(a, b *Number) *Number {
	return combine(a.Clone(), b.Clone())
}

// combine takes ownership of a and b and reduces their pair.
func combine(a, b *Number) *Number {
	sum := &Number{root: NewPair(a.root, b.root)}
	return sum.Reduce()
}

// Sum adds up numbers from left to right: ((n0 + n1) + n2) + … .
// None of the numbers is modified.
func Sum(numbers []*Number) (*Number, error) {
	if len(numbers) == 0 {
		return nil, ErrTooFewNumbers
	}
	acc := numbers[0].Clone()
	for _, n := range numbers[1:] {
		acc = combine(acc, n.Clone())
	}
	return acc, nil
}

// MaxPairMagnitude returns the largest magnitude of a sum of two different
// numbers from numbers. As addition is not commutative, both n[i]+n[j] and
// n[j]+n[i] are considered. None of the numbers is modified.
func MaxPairMagnitude(numbers []*Number) (int, error) {
	if len(numbers) < 2 {
		return 0, ErrTooFewNumbers
	}
	best := -1
	for i, a := range numbers {
		for j, b := range numbers {
			if i == j {
				continue
			}
			if m := Add(a, b).Magnitude(); m > best {
				best = m
			}
		}
	}
	tracer().Debugf("max magnitude of %d ordered pairs is %d", len(numbers)*(len(numbers)-1), best)
	return best, nil
}
