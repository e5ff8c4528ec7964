package tableau

import (
	"sort"
	"strings"

	"github.com/gnolang/wktab/internal/logic"
)

// Model is a finite partial valuation of ground atoms extracted from an
// open saturated branch. Atoms the branch never mentioned default to
// Undefined, the open-world weak Kleene reading.
type Model struct {
	entries []ModelEntry
}

// ModelEntry assigns a truth value to one ground atom.
type ModelEntry struct {
	Atom  logic.Atom
	Value logic.TruthValue
}

// Entries lists the explicit assignments, sorted by atom rendering.
func (m Model) Entries() []ModelEntry {
	return m.entries
}

// Value looks up the truth value of a ground atom.
func (m Model) Value(a logic.Atom) logic.TruthValue {
	key := a.String()
	for _, e := range m.entries {
		if e.Atom.String() == key {
			return e.Value
		}
	}
	return logic.Undefined
}

func (m Model) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, e := range m.entries {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.Atom.String())
		sb.WriteByte('=')
		sb.WriteString(e.Value.String())
	}
	sb.WriteByte('}')
	return sb.String()
}

// extract resolves each literal's asserted signs to one representative
// truth value. Sorting the atoms keeps extraction deterministic across
// runs.
func extract(b *branch) Model {
	keys := make([]string, 0, len(b.literals))
	for key := range b.literals {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	entries := make([]ModelEntry, 0, len(keys))
	for _, key := range keys {
		entry := b.literals[key]
		entries = append(entries, ModelEntry{
			Atom:  entry.atom,
			Value: resolve(entry.signs),
		})
	}
	return Model{entries: entries}
}

// resolve picks the representative value for a set of compatible signs.
// t and f are exact; n forces undefined; a literal carrying only m
// resolves to true, the more informative member of m's denotation (the
// choice is fixed here so extraction is reproducible).
func resolve(signs []logic.Sign) logic.TruthValue {
	if len(signs) == 0 {
		panic("tableau: literal with no asserted signs")
	}
	has := func(want logic.Sign) bool {
		for _, s := range signs {
			if s == want {
				return true
			}
		}
		return false
	}
	switch {
	case has(logic.T):
		return logic.True
	case has(logic.F):
		return logic.False
	case has(logic.N):
		return logic.Undefined
	default:
		return logic.True
	}
}
