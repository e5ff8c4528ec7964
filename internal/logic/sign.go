package logic

import "fmt"

// Sign annotates a tableau formula with the set of truth values the
// formula is allowed to take. T and F are truth-functional (singleton
// denotations); M and N are epistemic.
type Sign uint8

const (
	// T asserts the formula is true.
	T Sign = iota
	// F asserts the formula is false.
	F
	// M asserts the formula is true or undefined.
	M
	// N asserts the formula is undefined.
	N
)

func (s Sign) String() string {
	switch s {
	case T:
		return "t"
	case F:
		return "f"
	case M:
		return "m"
	case N:
		return "n"
	default:
		return "?"
	}
}

// ParseSign reads the textual form of a sign as used on the API boundary.
func ParseSign(s string) (Sign, error) {
	switch s {
	case "t", "T":
		return T, nil
	case "f", "F":
		return F, nil
	case "m", "M":
		return M, nil
	case "n", "N":
		return N, nil
	default:
		return 0, fmt.Errorf("unknown sign %q (want one of t, f, m, n)", s)
	}
}

// TVSet is a set of truth values, used for sign denotations and the
// branch closure disjointness test.
type TVSet uint8

const (
	TrueBit TVSet = 1 << iota
	FalseBit
	UndefinedBit
)

// Only returns the singleton set holding v.
func Only(v TruthValue) TVSet {
	switch v {
	case True:
		return TrueBit
	case False:
		return FalseBit
	case Undefined:
		return UndefinedBit
	default:
		panic("logic: unknown truth value")
	}
}

// Contains reports whether v is in the set.
func (s TVSet) Contains(v TruthValue) bool {
	return s&Only(v) != 0
}

// Disjoint reports whether the two sets share no truth value. Branch
// closure hinges on this test, not on sign equality: t and m overlap on
// true, so they do not close a branch together.
func (s TVSet) Disjoint(o TVSet) bool {
	return s&o == 0
}

// Denotes returns the set of truth values the sign allows.
func (s Sign) Denotes() TVSet {
	switch s {
	case T:
		return TrueBit
	case F:
		return FalseBit
	case M:
		return TrueBit | UndefinedBit
	case N:
		return UndefinedBit
	default:
		panic("logic: unknown sign")
	}
}

// SignFor returns the exact-value sign for a truth value. It is the
// inverse of Denotes restricted to singleton denotations and is what the
// table-driven expansion rules assert on subformulas.
func SignFor(v TruthValue) Sign {
	switch v {
	case True:
		return T
	case False:
		return F
	case Undefined:
		return N
	default:
		panic("logic: unknown truth value")
	}
}

// SignedFormula is the unit the tableau expands: a sign attached to a
// formula. It is immutable.
type SignedFormula struct {
	Sign    Sign
	Formula Formula
}

func (sf SignedFormula) String() string {
	return sf.Sign.String() + ":" + sf.Formula.String()
}

// Equal compares sign and formula structurally.
func (sf SignedFormula) Equal(other SignedFormula) bool {
	return sf.Sign == other.Sign && sf.Formula.Equal(other.Formula)
}
