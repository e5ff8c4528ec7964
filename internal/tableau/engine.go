package tableau

import (
	"fmt"

	"github.com/gnolang/wktab/internal/logic"
)

// Tableau is a proof tree rooted at an initial set of signed formulas.
// It owns every branch exclusively; the fresh-witness counter lives here
// rather than in process-wide state so runs are reproducible.
type Tableau struct {
	cfg         Config
	active      []*branch
	open        []*branch
	fresh       int
	steps       int
	outOfBudget bool
}

// New validates the root formulas and seeds the root branch. The branch
// domain starts with every constant occurring in the input; witnesses
// are added as existentials fire.
func New(root []logic.SignedFormula, cfg Config) (*Tableau, error) {
	def := DefaultConfig()
	if cfg.MaxSteps <= 0 {
		cfg.MaxSteps = def.MaxSteps
	}
	if cfg.MaxConstants <= 0 {
		cfg.MaxConstants = def.MaxConstants
	}

	var constants []logic.Constant
	seen := make(map[string]bool)
	for _, sf := range root {
		if err := validate(sf.Formula); err != nil {
			return nil, err
		}
		for _, c := range logic.Constants(sf.Formula) {
			if !seen[c.Name] {
				seen[c.Name] = true
				constants = append(constants, c)
			}
		}
	}

	b := newBranch(nil, constants)
	for _, sf := range root {
		b.add(sf)
	}

	t := &Tableau{cfg: cfg}
	if !b.closed {
		t.active = append(t.active, b)
	}
	return t, nil
}

// Run explores the tableau to saturation or budget and reports the
// verdict with one extracted model per open branch. A Tableau is a
// single proof attempt; build a new one for a new run.
func (t *Tableau) Run() Result {
	for len(t.active) > 0 {
		// cooperative budget checkpoint, once per rule application
		if t.steps >= t.cfg.MaxSteps {
			t.outOfBudget = true
			break
		}
		b := t.active[len(t.active)-1]
		t.active = t.active[:len(t.active)-1]
		t.step(b)
	}

	res := Result{Steps: t.steps}
	switch {
	case len(t.open) > 0:
		res.Verdict = Satisfiable
		for _, b := range t.open {
			res.Models = append(res.Models, extract(b))
		}
	case t.outOfBudget:
		res.Verdict = Unknown
	default:
		res.Verdict = Unsatisfiable
	}
	return res
}

// step applies one rule to the branch: expand the next worklist entry,
// or fire the next owed (universal, constant) pair, or declare the
// branch open and saturated.
func (t *Tableau) step(b *branch) {
	t.steps++

	if len(b.worklist) > 0 {
		sf := b.worklist[0]
		b.worklist = b.worklist[1:]

		var exts []extension
		switch sf.Formula.(type) {
		case logic.RestrictedForall, logic.RestrictedExists:
			exts = t.expandQuantifier(b, sf)
			if exts == nil {
				// became a pending obligation; nothing added yet
				t.push(b)
				return
			}
		default:
			exts = propositional(sf)
		}
		t.split(b, exts)
		return
	}

	for i := range b.universals {
		u := &b.universals[i]
		if u.next < len(b.constants) {
			c := b.constants[u.next]
			u.next++
			t.split(b, instanceExtensions(u.sf, c))
			return
		}
	}

	if !b.saturated() {
		panic("tableau: branch neither expandable nor saturated")
	}
	t.open = append(t.open, b)
}

// split replaces a branch by one child per extension. The last child
// reuses the parent's storage; the others get copies of the per-branch
// maps (formula trees stay shared). Children that close on arrival are
// pruned immediately.
func (t *Tableau) split(b *branch, exts []extension) {
	if len(exts) == 0 {
		// no valuation realizes the sign: the branch closes
		return
	}
	children := make([]*branch, len(exts))
	for i := range exts {
		if i == len(exts)-1 {
			children[i] = b
		} else {
			children[i] = b.clone()
		}
	}
	for i, ext := range exts {
		child := children[i]
		if ext.fresh != nil {
			child.addConstant(*ext.fresh)
		}
		for _, sf := range ext.adds {
			child.add(sf)
		}
		if !child.closed {
			t.push(child)
		}
	}
}

func (t *Tableau) push(b *branch) {
	t.active = append(t.active, b)
}

// validate rejects formulas the tableau cannot prove over: sentences
// with unbound variables and quantifiers whose bound variable never
// occurs in the matrix.
func validate(f logic.Formula) error {
	if vars := logic.FreeVariables(f); len(vars) > 0 {
		return &MalformedQuantifierError{
			Quantifier: f.String(),
			Reason:     fmt.Sprintf("unbound variable %s", vars[0].Name),
		}
	}
	return checkQuantifiers(f)
}

func checkQuantifiers(f logic.Formula) error {
	switch sub := f.(type) {
	case logic.Atom:
		return nil
	case logic.Negation:
		return checkQuantifiers(sub.Sub)
	case logic.Conjunction:
		if err := checkQuantifiers(sub.Left); err != nil {
			return err
		}
		return checkQuantifiers(sub.Right)
	case logic.Disjunction:
		if err := checkQuantifiers(sub.Left); err != nil {
			return err
		}
		return checkQuantifiers(sub.Right)
	case logic.Implication:
		if err := checkQuantifiers(sub.Left); err != nil {
			return err
		}
		return checkQuantifiers(sub.Right)
	case logic.RestrictedForall:
		if !logic.Mentions(sub.Matrix, sub.Bound) {
			return &MalformedQuantifierError{
				Quantifier: sub.String(),
				Reason:     fmt.Sprintf("bound variable %s does not occur in the matrix", sub.Bound.Name),
			}
		}
		if err := checkQuantifiers(sub.Restriction); err != nil {
			return err
		}
		return checkQuantifiers(sub.Matrix)
	case logic.RestrictedExists:
		if !logic.Mentions(sub.Matrix, sub.Bound) {
			return &MalformedQuantifierError{
				Quantifier: sub.String(),
				Reason:     fmt.Sprintf("bound variable %s does not occur in the matrix", sub.Bound.Name),
			}
		}
		if err := checkQuantifiers(sub.Restriction); err != nil {
			return err
		}
		return checkQuantifiers(sub.Matrix)
	default:
		panic("tableau: unknown formula variant")
	}
}
