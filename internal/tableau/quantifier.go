package tableau

import (
	"fmt"

	"github.com/gnolang/wktab/internal/logic"
)

// expandQuantifier handles a signed quantifier popped from a worklist.
//
// Two rule shapes exist. Per-constant obligations (t/m on a universal,
// f/n on an existential) register as pending universals and fire one
// constant at a time, re-firing when witnesses grow the domain. Witness
// searches (t/m on an existential, f/n on a universal) split over every
// constant already in the domain plus exactly one fresh witness sibling.
//
// A nil return means the formula became a pending obligation and the
// branch continues unchanged.
func (t *Tableau) expandQuantifier(b *branch, sf logic.SignedFormula) []extension {
	switch f := sf.Formula.(type) {
	case logic.RestrictedForall:
		switch sf.Sign {
		case logic.T, logic.M:
			b.universals = append(b.universals, pendingUniversal{sf: sf})
			return nil
		case logic.F:
			return t.witnessExtensions(b, f.Bound, f.Restriction, f.Matrix, logic.F)
		case logic.N:
			return t.undefinedWitnessExtensions(b, f.Bound, f.Restriction, f.Matrix)
		}
	case logic.RestrictedExists:
		switch sf.Sign {
		case logic.T, logic.M:
			return t.witnessExtensions(b, f.Bound, f.Restriction, f.Matrix, sf.Sign)
		case logic.F, logic.N:
			b.universals = append(b.universals, pendingUniversal{sf: sf})
			return nil
		}
	}
	panic("tableau: quantifier rule applied to " + sf.String())
}

// instanceExtensions is the per-constant firing of a pending universal
// obligation. The restriction is split three ways -- fails, undefined,
// holds -- and only where it holds is the outer sign asserted on the
// matrix instance. "Restriction undefined" is its own branch; it is
// never folded into "restriction fails".
func instanceExtensions(sf logic.SignedFormula, c logic.Constant) []extension {
	var bound logic.Variable
	var restriction, matrix logic.Formula
	switch f := sf.Formula.(type) {
	case logic.RestrictedForall:
		bound, restriction, matrix = f.Bound, f.Restriction, f.Matrix
	case logic.RestrictedExists:
		bound, restriction, matrix = f.Bound, f.Restriction, f.Matrix
	default:
		panic("tableau: pending obligation is not a quantifier: " + sf.String())
	}

	r := logic.Instantiate(restriction, bound, c)
	m := logic.Instantiate(matrix, bound, c)
	return []extension{
		{adds: []logic.SignedFormula{{Sign: logic.F, Formula: r}}},
		{adds: []logic.SignedFormula{{Sign: logic.N, Formula: r}}},
		{adds: []logic.SignedFormula{
			{Sign: logic.T, Formula: r},
			{Sign: sf.Sign, Formula: m},
		}},
	}
}

// witnessExtensions builds the reuse-or-introduce split: one sibling per
// constant already known to the branch, plus one sibling with a fresh
// witness. Every sibling commits to a single candidate, asserting the
// restriction true and matrixSign on the matrix instance.
func (t *Tableau) witnessExtensions(b *branch, bound logic.Variable, restriction, matrix logic.Formula, matrixSign logic.Sign) []extension {
	out := make([]extension, 0, len(b.constants)+1)
	for _, c := range b.constants {
		out = append(out, extension{adds: []logic.SignedFormula{
			{Sign: logic.T, Formula: logic.Instantiate(restriction, bound, c)},
			{Sign: matrixSign, Formula: logic.Instantiate(matrix, bound, c)},
		}})
	}
	if w, ok := t.freshWitness(b); ok {
		out = append(out, extension{fresh: &w, adds: []logic.SignedFormula{
			{Sign: logic.T, Formula: logic.Instantiate(restriction, bound, w)},
			{Sign: matrixSign, Formula: logic.Instantiate(matrix, bound, w)},
		}})
	}
	return out
}

// undefinedWitnessExtensions handles n on a restricted universal: some
// instance must come out undefined, either because the restriction
// itself is undefined or because it holds and the matrix is undefined.
// Both cases are explored per candidate, with fresh-witness siblings for
// each case.
func (t *Tableau) undefinedWitnessExtensions(b *branch, bound logic.Variable, restriction, matrix logic.Formula) []extension {
	var out []extension
	for _, c := range b.constants {
		out = append(out,
			extension{adds: []logic.SignedFormula{
				{Sign: logic.N, Formula: logic.Instantiate(restriction, bound, c)},
			}},
			extension{adds: []logic.SignedFormula{
				{Sign: logic.T, Formula: logic.Instantiate(restriction, bound, c)},
				{Sign: logic.N, Formula: logic.Instantiate(matrix, bound, c)},
			}},
		)
	}
	if w, ok := t.freshWitness(b); ok {
		out = append(out, extension{fresh: &w, adds: []logic.SignedFormula{
			{Sign: logic.N, Formula: logic.Instantiate(restriction, bound, w)},
		}})
	}
	if w, ok := t.freshWitness(b); ok {
		out = append(out, extension{fresh: &w, adds: []logic.SignedFormula{
			{Sign: logic.T, Formula: logic.Instantiate(restriction, bound, w)},
			{Sign: logic.N, Formula: logic.Instantiate(matrix, bound, w)},
		}})
	}
	return out
}

// freshWitness allocates a globally unique witness constant, or reports
// that the constant budget is spent. The "_w" prefix is unreachable from
// the parser, so witnesses never collide with input constants.
func (t *Tableau) freshWitness(b *branch) (logic.Constant, bool) {
	if len(b.constants) >= t.cfg.MaxConstants {
		t.outOfBudget = true
		return logic.Constant{}, false
	}
	t.fresh++
	name := fmt.Sprintf("_w%d", t.fresh)
	for b.constSet[name] {
		t.fresh++
		name = fmt.Sprintf("_w%d", t.fresh)
	}
	return logic.Const(name), true
}
