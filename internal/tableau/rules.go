package tableau

import "github.com/gnolang/wktab/internal/logic"

// extension is one sibling outcome of a rule application: the signed
// formulas it adds to its branch, plus at most one fresh witness
// constant. A single-extension result means the branch is extended in
// place; several extensions split the branch.
type extension struct {
	adds  []logic.SignedFormula
	fresh *logic.Constant
}

// propositional expands a signed connective formula by enumerating the
// weak Kleene tables: every operand valuation whose result lands in the
// outer sign's denotation becomes one sibling branch asserting the
// exact-value signs on the operands. The enumeration covers every table
// cell.
func propositional(sf logic.SignedFormula) []extension {
	den := sf.Sign.Denotes()
	switch f := sf.Formula.(type) {
	case logic.Negation:
		var out []extension
		for _, a := range logic.Values() {
			if den.Contains(logic.Neg(a)) {
				out = append(out, extension{adds: []logic.SignedFormula{
					{Sign: logic.SignFor(a), Formula: f.Sub},
				}})
			}
		}
		return out

	case logic.Conjunction:
		return binaryExpansions(den, logic.OpAnd, f.Left, f.Right)

	case logic.Disjunction:
		return binaryExpansions(den, logic.OpOr, f.Left, f.Right)

	case logic.Implication:
		return binaryExpansions(den, logic.OpImplies, f.Left, f.Right)

	default:
		panic("tableau: propositional rule applied to " + sf.String())
	}
}

func binaryExpansions(den logic.TVSet, op logic.Connective, left, right logic.Formula) []extension {
	var out []extension
	for _, a := range logic.Values() {
		for _, b := range logic.Values() {
			if den.Contains(logic.Eval(op, a, b)) {
				out = append(out, extension{adds: []logic.SignedFormula{
					{Sign: logic.SignFor(a), Formula: left},
					{Sign: logic.SignFor(b), Formula: right},
				}})
			}
		}
	}
	return out
}
