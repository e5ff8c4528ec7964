package tableau

import (
	"github.com/gnolang/wktab/internal/logic"
)

// branch is one node of the proof tree. Each branch exclusively owns its
// worklist, literal map, domain and pending-universal list; formulas are
// shared read-only between branches.
type branch struct {
	// worklist holds the signed formulas not yet expanded, in FIFO order.
	worklist []logic.SignedFormula
	// literals maps a ground atom (by its printed form) to the signs
	// asserted on it so far.
	literals map[string]*literalEntry
	// constants is the branch domain in introduction order.
	constants []logic.Constant
	constSet  map[string]bool
	// universals are the quantifier obligations that must fire against
	// every constant, present and future.
	universals []pendingUniversal
	closed     bool
}

type literalEntry struct {
	atom  logic.Atom
	signs []logic.Sign
}

// pendingUniversal tracks how far a per-constant quantifier rule has
// been instantiated: constants[:next] are done, the rest (and any
// constants introduced later) are still owed.
type pendingUniversal struct {
	sf   logic.SignedFormula
	next int
}

func newBranch(worklist []logic.SignedFormula, constants []logic.Constant) *branch {
	b := &branch{
		worklist: append([]logic.SignedFormula(nil), worklist...),
		literals: make(map[string]*literalEntry),
		constSet: make(map[string]bool),
	}
	for _, c := range constants {
		b.addConstant(c)
	}
	return b
}

// clone deep-copies the mutable per-branch state. Formula trees are
// shared; they never mutate.
func (b *branch) clone() *branch {
	nb := &branch{
		worklist:   append([]logic.SignedFormula(nil), b.worklist...),
		literals:   make(map[string]*literalEntry, len(b.literals)),
		constants:  append([]logic.Constant(nil), b.constants...),
		constSet:   make(map[string]bool, len(b.constSet)),
		universals: append([]pendingUniversal(nil), b.universals...),
		closed:     b.closed,
	}
	for key, entry := range b.literals {
		nb.literals[key] = &literalEntry{
			atom:  entry.atom,
			signs: append([]logic.Sign(nil), entry.signs...),
		}
	}
	for name := range b.constSet {
		nb.constSet[name] = true
	}
	return nb
}

func (b *branch) addConstant(c logic.Constant) {
	if b.constSet[c.Name] {
		return
	}
	b.constSet[c.Name] = true
	b.constants = append(b.constants, c)
}

// add routes a signed formula: ground atoms are recorded into the
// literal map (possibly closing the branch), everything else goes on the
// worklist for later expansion.
func (b *branch) add(sf logic.SignedFormula) {
	if atom, ok := sf.Formula.(logic.Atom); ok {
		if !atom.IsGround() {
			panic("tableau: non-ground atom reached a branch: " + atom.String())
		}
		b.record(sf.Sign, atom)
		return
	}
	b.worklist = append(b.worklist, sf)
}

// record asserts a sign on a ground atom and runs the closure check: the
// branch closes the moment two asserted signs have disjoint denotations.
func (b *branch) record(sign logic.Sign, atom logic.Atom) {
	key := atom.String()
	entry, ok := b.literals[key]
	if !ok {
		b.literals[key] = &literalEntry{atom: atom, signs: []logic.Sign{sign}}
		return
	}
	for _, prev := range entry.signs {
		if prev == sign {
			return
		}
	}
	den := sign.Denotes()
	for _, prev := range entry.signs {
		if den.Disjoint(prev.Denotes()) {
			b.closed = true
			break
		}
	}
	entry.signs = append(entry.signs, sign)
}

// saturated reports whether no rule application can add anything: the
// worklist is drained and every pending universal has fired against
// every constant currently in the domain.
func (b *branch) saturated() bool {
	if len(b.worklist) > 0 {
		return false
	}
	for i := range b.universals {
		if b.universals[i].next < len(b.constants) {
			return false
		}
	}
	return true
}
