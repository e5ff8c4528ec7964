package logic

// TruthValue is one of the three weak Kleene truth values.
type TruthValue uint8

const (
	True TruthValue = iota
	False
	Undefined
)

func (v TruthValue) String() string {
	switch v {
	case True:
		return "true"
	case False:
		return "false"
	case Undefined:
		return "undefined"
	default:
		return "?"
	}
}

// Values returns all truth values in a fixed order. Rule generation
// iterates over this slice so that branch order is deterministic.
func Values() [3]TruthValue {
	return [3]TruthValue{True, False, Undefined}
}

// Connective identifies a propositional operator.
type Connective uint8

const (
	OpNot Connective = iota
	OpAnd
	OpOr
	OpImplies
)

func (c Connective) String() string {
	switch c {
	case OpNot:
		return "~"
	case OpAnd:
		return "&"
	case OpOr:
		return "|"
	case OpImplies:
		return "->"
	default:
		return "?"
	}
}

// The weak Kleene operator tables. Every cell is written out: an
// Undefined operand is contagious, so e.g. True|Undefined is Undefined
// (unlike strong Kleene, where it would be True).
var negTable = [3]TruthValue{
	True:      False,
	False:     True,
	Undefined: Undefined,
}

var conjTable = [3][3]TruthValue{
	True: {
		True:      True,
		False:     False,
		Undefined: Undefined,
	},
	False: {
		True:      False,
		False:     False,
		Undefined: Undefined,
	},
	Undefined: {
		True:      Undefined,
		False:     Undefined,
		Undefined: Undefined,
	},
}

var disjTable = [3][3]TruthValue{
	True: {
		True:      True,
		False:     True,
		Undefined: Undefined,
	},
	False: {
		True:      True,
		False:     False,
		Undefined: Undefined,
	},
	Undefined: {
		True:      Undefined,
		False:     Undefined,
		Undefined: Undefined,
	},
}

var implTable = [3][3]TruthValue{
	True: {
		True:      True,
		False:     False,
		Undefined: Undefined,
	},
	False: {
		True:      True,
		False:     True,
		Undefined: Undefined,
	},
	Undefined: {
		True:      Undefined,
		False:     Undefined,
		Undefined: Undefined,
	},
}

// Neg returns the weak Kleene negation of a.
func Neg(a TruthValue) TruthValue {
	return negTable[a]
}

// Conj returns the weak Kleene conjunction of a and b.
func Conj(a, b TruthValue) TruthValue {
	return conjTable[a][b]
}

// Disj returns the weak Kleene disjunction of a and b.
func Disj(a, b TruthValue) TruthValue {
	return disjTable[a][b]
}

// Impl returns the weak Kleene implication a -> b.
func Impl(a, b TruthValue) TruthValue {
	return implTable[a][b]
}

// Eval applies a binary connective to two truth values. OpNot is unary
// and handled by Neg; passing it here is a programming defect.
func Eval(op Connective, a, b TruthValue) TruthValue {
	switch op {
	case OpAnd:
		return conjTable[a][b]
	case OpOr:
		return disjTable[a][b]
	case OpImplies:
		return implTable[a][b]
	default:
		panic("logic: Eval called with non-binary connective " + op.String())
	}
}
