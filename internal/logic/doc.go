// Package logic defines the syntax and semantics shared by the tableau
// engine: first-order formulas with restricted quantifiers, the three
// weak Kleene truth values, and the four tableau signs.
//
// Formulas and terms are immutable trees compared structurally. They are
// built once (by the parser or by the constructor helpers in this package)
// and then shared by reference across tableau branches.
package logic
