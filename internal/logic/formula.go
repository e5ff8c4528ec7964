package logic

import "strings"

// Formula is an immutable first-order formula tree.
type Formula interface {
	isFormula()
	String() string
	Equal(other Formula) bool
}

// Atom is a predicate applied to zero or more terms.
type Atom struct {
	Pred string
	Args []Term
}

func (Atom) isFormula() {}
func (a Atom) String() string {
	if len(a.Args) == 0 {
		return a.Pred
	}
	var sb strings.Builder
	sb.WriteString(a.Pred)
	sb.WriteByte('(')
	for i, arg := range a.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(arg.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

func (a Atom) Equal(other Formula) bool {
	o, ok := other.(Atom)
	if !ok || a.Pred != o.Pred || len(a.Args) != len(o.Args) {
		return false
	}
	for i := range a.Args {
		if !a.Args[i].Equal(o.Args[i]) {
			return false
		}
	}
	return true
}

// IsGround reports whether the atom contains no variables.
func (a Atom) IsGround() bool {
	for _, arg := range a.Args {
		if _, ok := arg.(Variable); ok {
			return false
		}
	}
	return true
}

// Negation is ~A.
type Negation struct {
	Sub Formula
}

func (Negation) isFormula() {}
func (f Negation) String() string {
	return "~" + f.Sub.String()
}

func (f Negation) Equal(other Formula) bool {
	if o, ok := other.(Negation); ok {
		return f.Sub.Equal(o.Sub)
	}
	return false
}

// Conjunction is (A & B).
type Conjunction struct {
	Left, Right Formula
}

func (Conjunction) isFormula() {}
func (f Conjunction) String() string {
	return "(" + f.Left.String() + " & " + f.Right.String() + ")"
}

func (f Conjunction) Equal(other Formula) bool {
	if o, ok := other.(Conjunction); ok {
		return f.Left.Equal(o.Left) && f.Right.Equal(o.Right)
	}
	return false
}

// Disjunction is (A | B).
type Disjunction struct {
	Left, Right Formula
}

func (Disjunction) isFormula() {}
func (f Disjunction) String() string {
	return "(" + f.Left.String() + " | " + f.Right.String() + ")"
}

func (f Disjunction) Equal(other Formula) bool {
	if o, ok := other.(Disjunction); ok {
		return f.Left.Equal(o.Left) && f.Right.Equal(o.Right)
	}
	return false
}

// Implication is (A -> B).
type Implication struct {
	Left, Right Formula
}

func (Implication) isFormula() {}
func (f Implication) String() string {
	return "(" + f.Left.String() + " -> " + f.Right.String() + ")"
}

func (f Implication) Equal(other Formula) bool {
	if o, ok := other.(Implication); ok {
		return f.Left.Equal(o.Left) && f.Right.Equal(o.Right)
	}
	return false
}

// RestrictedForall is [∀X R(X)]M(X): X ranges only over elements
// satisfying the restriction R.
type RestrictedForall struct {
	Bound       Variable
	Restriction Formula
	Matrix      Formula
}

func (RestrictedForall) isFormula() {}
func (f RestrictedForall) String() string {
	return "[∀" + f.Bound.Name + " " + f.Restriction.String() + "]" + f.Matrix.String()
}

func (f RestrictedForall) Equal(other Formula) bool {
	if o, ok := other.(RestrictedForall); ok {
		return f.Bound == o.Bound && f.Restriction.Equal(o.Restriction) && f.Matrix.Equal(o.Matrix)
	}
	return false
}

// RestrictedExists is [∃X R(X)]M(X).
type RestrictedExists struct {
	Bound       Variable
	Restriction Formula
	Matrix      Formula
}

func (RestrictedExists) isFormula() {}
func (f RestrictedExists) String() string {
	return "[∃" + f.Bound.Name + " " + f.Restriction.String() + "]" + f.Matrix.String()
}

func (f RestrictedExists) Equal(other Formula) bool {
	if o, ok := other.(RestrictedExists); ok {
		return f.Bound == o.Bound && f.Restriction.Equal(o.Restriction) && f.Matrix.Equal(o.Matrix)
	}
	return false
}

// Constructor helpers.

// NewAtom creates an atomic formula.
func NewAtom(pred string, args ...Term) Atom {
	return Atom{Pred: pred, Args: args}
}

// Not creates a negation.
func Not(f Formula) Formula {
	return Negation{Sub: f}
}

// And creates a conjunction.
func And(left, right Formula) Formula {
	return Conjunction{Left: left, Right: right}
}

// Or creates a disjunction.
func Or(left, right Formula) Formula {
	return Disjunction{Left: left, Right: right}
}

// Implies creates an implication.
func Implies(left, right Formula) Formula {
	return Implication{Left: left, Right: right}
}

// Forall creates a restricted universal quantifier.
func Forall(bound Variable, restriction, matrix Formula) Formula {
	return RestrictedForall{Bound: bound, Restriction: restriction, Matrix: matrix}
}

// Exists creates a restricted existential quantifier.
func Exists(bound Variable, restriction, matrix Formula) Formula {
	return RestrictedExists{Bound: bound, Restriction: restriction, Matrix: matrix}
}
