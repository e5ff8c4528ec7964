// Package wktab is a tableau-based decision procedure for first-order
// weak Kleene logic with restricted quantifiers.
//
// The logic has three truth values: true, false and undefined, with
// undefined contagious through every connective. Queries are posed with
// one of four signs on a formula: t (the formula is true), f (false),
// n (undefined) or m (true or undefined). The prover answers
// satisfiable with explicit models, unsatisfiable, or unknown when a
// resource budget ran out first.
//
// Formulas are built with the notation ~, &, | and -> plus the
// restricted quantifiers [∀X R(X)]M(X) and [∃X R(X)]M(X), where the
// restriction R carves the subdomain the quantifier ranges over.
// Inferences are written "premises |- conclusion" and hold when no
// model makes every premise true while the conclusion is false.
package wktab
