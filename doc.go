// Package selector builds CSS selectors programmatically.
//
// A Builder collects the fragments of one compound selector (type, id,
// classes, attributes, pseudo-classes and a pseudo-element) and renders the
// canonical string form. Builders are immutable values: every operation
// derives a new Builder from the receiver, so a partially built selector can
// be kept as a template and extended into independent variants. Combine joins
// two finished selectors with a combinator into a complex selector.
//
// Fragment text is rendered verbatim; the package neither escapes nor
// validates it.
package selector
