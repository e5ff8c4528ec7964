// Package tableau implements the four-sign tableau decision procedure
// over weak Kleene semantics with restricted quantifiers.
//
// A Tableau owns a set of branches rooted at an initial list of signed
// formulas. Branches are expanded by sign-calculus rules generated
// directly from the weak Kleene truth tables, split when a rule admits
// several operand valuations, and closed when a ground atom is forced
// into two disjoint truth-value sets. Restricted universals re-fire
// against constants introduced later by existential witnesses, so a
// branch only counts as saturated once every pending universal has seen
// every constant in its domain.
//
// The search is budgeted: when the step or constant budget runs out the
// verdict is Unknown, never a false "unsatisfiable".
package tableau
