package selector

import (
	"fmt"
)

// category is the kind of fragment an operation adds to a selector. The
// declaration order is the fixed order in which fragments may appear.
type category int

const (
	catType category = iota
	catID
	catClass
	catAttr
	catPseudoClass
	catPseudoElement
)

var categoryNames = [...]string{
	catType:          "type",
	catID:            "id",
	catClass:         "class",
	catAttr:          "attribute",
	catPseudoClass:   "pseudo-class",
	catPseudoElement: "pseudo-element",
}

func (c category) String() string { return categoryNames[c] }

// Builder is a CSS selector under construction. The zero value is the empty
// selector and is the base of every chain; it is safe to share.
//
// A Builder is a plain value. No operation mutates its receiver: each one
// returns a new Builder derived from it, so any builder may branch into
// several independent chains and may be read from any number of goroutines.
type Builder struct {
	typ           string // type fragment as given, e.g. "div"
	id            string // "#main"
	classes       string // ".container.editable"
	attrs         string // "[href]"
	pseudoClasses string // ":hover:focus"
	pseudoElem    string // "::before"
	combined      string // full text of a combined selector, set by Combine
}

// Type starts a chain with a type fragment: Type("div") renders as "div".
func Type(value string) Builder { return Builder{typ: value} }

// ID starts a chain with an id fragment: ID("main") renders as "#main".
func ID(value string) Builder { return Builder{id: "#" + value} }

// Class starts a chain with a class fragment: Class("row") renders as ".row".
func Class(value string) Builder { return Builder{classes: "." + value} }

// Attr starts a chain with an attribute fragment: Attr("href") renders as
// "[href]".
func Attr(value string) Builder { return Builder{attrs: "[" + value + "]"} }

// PseudoClass starts a chain with a pseudo-class fragment: PseudoClass("focus")
// renders as ":focus".
func PseudoClass(value string) Builder { return Builder{pseudoClasses: ":" + value} }

// PseudoElement starts a chain with a pseudo-element fragment:
// PseudoElement("before") renders as "::before".
func PseudoElement(value string) Builder { return Builder{pseudoElem: "::" + value} }

// Type derives a new builder with the type fragment set. A chain carries at
// most one type fragment, and it must come before fragments of every other
// category.
func (b Builder) Type(value string) (Builder, error) {
	if b.combined != "" {
		return Builder{}, fmt.Errorf("type %q: %w", value, ErrCombinedSelector)
	}
	if b.typ != "" {
		return Builder{}, fmt.Errorf("type %q: %w", value, ErrDuplicateSelector)
	}
	if later, ok := b.fragmentAfter(catType); ok {
		return Builder{}, fmt.Errorf("type %q after %s: %w", value, later, ErrOrderViolation)
	}
	b.typ = value
	return b, nil
}

// ID derives a new builder with the id fragment set to "#"+value. A chain
// carries at most one id fragment.
func (b Builder) ID(value string) (Builder, error) {
	if b.combined != "" {
		return Builder{}, fmt.Errorf("id %q: %w", value, ErrCombinedSelector)
	}
	if b.id != "" {
		return Builder{}, fmt.Errorf("id %q: %w", value, ErrDuplicateSelector)
	}
	if later, ok := b.fragmentAfter(catID); ok {
		return Builder{}, fmt.Errorf("id %q after %s: %w", value, later, ErrOrderViolation)
	}
	b.id = "#" + value
	return b, nil
}

// Class derives a new builder with "."+value appended to the class fragments.
// Any number of class fragments is allowed; they render in call order.
func (b Builder) Class(value string) (Builder, error) {
	if b.combined != "" {
		return Builder{}, fmt.Errorf("class %q: %w", value, ErrCombinedSelector)
	}
	if later, ok := b.fragmentAfter(catClass); ok {
		return Builder{}, fmt.Errorf("class %q after %s: %w", value, later, ErrOrderViolation)
	}
	b.classes += "." + value
	return b, nil
}

// Attr derives a new builder with "["+value+"]" appended to the attribute
// fragments. Any number of attribute fragments is allowed; they render in
// call order.
func (b Builder) Attr(value string) (Builder, error) {
	if b.combined != "" {
		return Builder{}, fmt.Errorf("attribute %q: %w", value, ErrCombinedSelector)
	}
	if later, ok := b.fragmentAfter(catAttr); ok {
		return Builder{}, fmt.Errorf("attribute %q after %s: %w", value, later, ErrOrderViolation)
	}
	b.attrs += "[" + value + "]"
	return b, nil
}

// PseudoClass derives a new builder with ":"+value appended to the
// pseudo-class fragments. Any number of pseudo-class fragments is allowed;
// they render in call order.
func (b Builder) PseudoClass(value string) (Builder, error) {
	if b.combined != "" {
		return Builder{}, fmt.Errorf("pseudo-class %q: %w", value, ErrCombinedSelector)
	}
	if later, ok := b.fragmentAfter(catPseudoClass); ok {
		return Builder{}, fmt.Errorf("pseudo-class %q after %s: %w", value, later, ErrOrderViolation)
	}
	b.pseudoClasses += ":" + value
	return b, nil
}

// PseudoElement derives a new builder with the pseudo-element fragment set to
// "::"+value. A chain carries at most one pseudo-element fragment, and it is
// the last category a chain accepts.
func (b Builder) PseudoElement(value string) (Builder, error) {
	if b.combined != "" {
		return Builder{}, fmt.Errorf("pseudo-element %q: %w", value, ErrCombinedSelector)
	}
	if b.pseudoElem != "" {
		return Builder{}, fmt.Errorf("pseudo-element %q: %w", value, ErrDuplicateSelector)
	}
	b.pseudoElem = "::" + value
	return b, nil
}

// String renders the selector: the fragments concatenated in category order,
// or the combined text verbatim for a builder produced by Combine. The empty
// builder renders as "".
func (b Builder) String() string {
	if b.combined != "" {
		return b.combined
	}
	return b.typ + b.id + b.classes + b.attrs + b.pseudoClasses + b.pseudoElem
}

// fragmentAfter returns the category of the first fragment present on b that
// comes after c in the fixed order. Fragments of category c itself do not
// count; repeating a category never moves a chain backwards.
func (b Builder) fragmentAfter(c category) (category, bool) {
	fields := [...]string{b.typ, b.id, b.classes, b.attrs, b.pseudoClasses, b.pseudoElem}
	for i := int(c) + 1; i < len(fields); i++ {
		if fields[i] != "" {
			return category(i), true
		}
	}
	return 0, false
}
