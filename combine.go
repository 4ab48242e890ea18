package selector

import "fmt"

// Combinator joins two selectors into a combined selector.
type Combinator string

// The four CSS combinators.
const (
	Descendant        Combinator = " "
	Child             Combinator = ">"
	NextSibling       Combinator = "+"
	SubsequentSibling Combinator = "~"
)

func (c Combinator) valid() bool {
	switch c {
	case Descendant, Child, NextSibling, SubsequentSibling:
		return true
	}
	return false
}

// Combine joins the rendered forms of left and right with comb, one space on
// either side of the combinator symbol. Joining with Descendant therefore
// renders three consecutive spaces, which CSS treats the same as one. Either
// operand may itself be a combined selector, so complex selectors nest to any
// depth.
//
// Combinators outside the four constants fail with ErrInvalidCombinator. The
// returned builder is final: fragment operations on it fail with
// ErrCombinedSelector.
func Combine(left Builder, comb Combinator, right Builder) (Builder, error) {
	if !comb.valid() {
		return Builder{}, fmt.Errorf("combinator %q: %w", string(comb), ErrInvalidCombinator)
	}
	return Builder{combined: left.String() + " " + string(comb) + " " + right.String()}, nil
}
