package selector

import "errors"

// All errors returned by this package report caller misuse of the selector
// grammar. They are sentinels: match them with errors.Is. A failing operation
// returns the zero Builder together with the error; no partially built
// selector escapes.
var (
	// ErrDuplicateSelector reports a second type, id or pseudo-element
	// fragment on one chain. Those categories are singular.
	ErrDuplicateSelector = errors.New("selector: duplicate fragment")

	// ErrOrderViolation reports a fragment whose category comes before one
	// already on the chain. Fragments are added in the fixed category order
	// type, id, class, attribute, pseudo-class, pseudo-element.
	ErrOrderViolation = errors.New("selector: fragment out of order")

	// ErrInvalidCombinator reports a combinator outside the four CSS
	// combinators.
	ErrInvalidCombinator = errors.New("selector: invalid combinator")

	// ErrCombinedSelector reports a fragment operation on a builder produced
	// by Combine. Combined selectors take no further fragments.
	ErrCombinedSelector = errors.New("selector: combined selector cannot be extended")
)
