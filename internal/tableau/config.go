package tableau

// Config bounds a proof attempt. Propositional expansion terminates on
// its own, but quantifier re-firing can grow the domain forever; the
// budgets turn that into an Unknown verdict instead of a hang.
type Config struct {
	// MaxSteps caps the number of rule applications across all branches.
	MaxSteps int
	// MaxConstants caps the per-branch domain size. Once reached, no
	// further fresh witnesses are introduced and the run is marked
	// exhausted unless an open branch is still found.
	MaxConstants int
}

// DefaultConfig returns budgets comfortably above anything a small
// problem needs.
func DefaultConfig() Config {
	return Config{
		MaxSteps:     20000,
		MaxConstants: 64,
	}
}

// Verdict is the three-outcome answer of a proof attempt.
type Verdict int

const (
	_ Verdict = iota
	// Satisfiable means at least one branch saturated open.
	Satisfiable
	// Unsatisfiable means every branch closed.
	Unsatisfiable
	// Unknown means a resource budget ran out before either of the
	// other two outcomes was established.
	Unknown
)

func (v Verdict) String() string {
	switch v {
	case Satisfiable:
		return "satisfiable"
	case Unsatisfiable:
		return "unsatisfiable"
	case Unknown:
		return "unknown"
	default:
		return "?"
	}
}

// Result is the outcome of running a tableau to completion or budget.
type Result struct {
	Verdict Verdict
	// Models holds one extracted model per open saturated branch.
	// Empty unless Verdict is Satisfiable.
	Models []Model
	// Steps is the number of rule applications spent.
	Steps int
}

// IsSatisfiable is a convenience accessor for callers that only need
// the yes/no part of the verdict.
func (r Result) IsSatisfiable() bool {
	return r.Verdict == Satisfiable
}
