// Package parser turns the textual formula notation into logic values.
//
// The notation uses ~, &, | and -> for the connectives, parentheses for
// grouping, [∀X R(X)]M(X) and [∃X R(X)]M(X) for the restricted
// quantifiers, and |- to separate the premises of an inference from its
// conclusion. Identifiers starting with an uppercase letter are
// variables in term position; everything else names a constant.
package parser
