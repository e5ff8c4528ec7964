package logic

// Instantiate replaces free occurrences of the variable v in f with the
// term t. Occurrences bound by an inner quantifier of the same name are
// left alone. The input tree is never mutated; untouched subtrees are
// shared between input and output.
func Instantiate(f Formula, v Variable, t Term) Formula {
	switch sub := f.(type) {
	case Atom:
		changed := false
		args := make([]Term, len(sub.Args))
		for i, arg := range sub.Args {
			if av, ok := arg.(Variable); ok && av == v {
				args[i] = t
				changed = true
			} else {
				args[i] = arg
			}
		}
		if !changed {
			return sub
		}
		return Atom{Pred: sub.Pred, Args: args}

	case Negation:
		return Negation{Sub: Instantiate(sub.Sub, v, t)}

	case Conjunction:
		return Conjunction{Left: Instantiate(sub.Left, v, t), Right: Instantiate(sub.Right, v, t)}

	case Disjunction:
		return Disjunction{Left: Instantiate(sub.Left, v, t), Right: Instantiate(sub.Right, v, t)}

	case Implication:
		return Implication{Left: Instantiate(sub.Left, v, t), Right: Instantiate(sub.Right, v, t)}

	case RestrictedForall:
		if sub.Bound == v {
			// inner binder shadows v
			return sub
		}
		return RestrictedForall{
			Bound:       sub.Bound,
			Restriction: Instantiate(sub.Restriction, v, t),
			Matrix:      Instantiate(sub.Matrix, v, t),
		}

	case RestrictedExists:
		if sub.Bound == v {
			return sub
		}
		return RestrictedExists{
			Bound:       sub.Bound,
			Restriction: Instantiate(sub.Restriction, v, t),
			Matrix:      Instantiate(sub.Matrix, v, t),
		}

	default:
		panic("logic: unknown formula variant")
	}
}

// Constants collects the constants occurring in f in first-occurrence
// order, without duplicates. The tableau seeds its domain from this.
func Constants(f Formula) []Constant {
	var out []Constant
	seen := make(map[string]bool)
	collectConstants(f, seen, &out)
	return out
}

func collectConstants(f Formula, seen map[string]bool, out *[]Constant) {
	switch sub := f.(type) {
	case Atom:
		for _, arg := range sub.Args {
			if c, ok := arg.(Constant); ok && !seen[c.Name] {
				seen[c.Name] = true
				*out = append(*out, c)
			}
		}
	case Negation:
		collectConstants(sub.Sub, seen, out)
	case Conjunction:
		collectConstants(sub.Left, seen, out)
		collectConstants(sub.Right, seen, out)
	case Disjunction:
		collectConstants(sub.Left, seen, out)
		collectConstants(sub.Right, seen, out)
	case Implication:
		collectConstants(sub.Left, seen, out)
		collectConstants(sub.Right, seen, out)
	case RestrictedForall:
		collectConstants(sub.Restriction, seen, out)
		collectConstants(sub.Matrix, seen, out)
	case RestrictedExists:
		collectConstants(sub.Restriction, seen, out)
		collectConstants(sub.Matrix, seen, out)
	default:
		panic("logic: unknown formula variant")
	}
}

// Mentions reports whether the variable v occurs free in f.
func Mentions(f Formula, v Variable) bool {
	switch sub := f.(type) {
	case Atom:
		for _, arg := range sub.Args {
			if av, ok := arg.(Variable); ok && av == v {
				return true
			}
		}
		return false
	case Negation:
		return Mentions(sub.Sub, v)
	case Conjunction:
		return Mentions(sub.Left, v) || Mentions(sub.Right, v)
	case Disjunction:
		return Mentions(sub.Left, v) || Mentions(sub.Right, v)
	case Implication:
		return Mentions(sub.Left, v) || Mentions(sub.Right, v)
	case RestrictedForall:
		if sub.Bound == v {
			return false
		}
		return Mentions(sub.Restriction, v) || Mentions(sub.Matrix, v)
	case RestrictedExists:
		if sub.Bound == v {
			return false
		}
		return Mentions(sub.Restriction, v) || Mentions(sub.Matrix, v)
	default:
		panic("logic: unknown formula variant")
	}
}

// FreeVariables collects variables occurring free in f, in
// first-occurrence order.
func FreeVariables(f Formula) []Variable {
	var out []Variable
	seen := make(map[string]bool)
	collectFree(f, nil, seen, &out)
	return out
}

func collectFree(f Formula, bound []Variable, seen map[string]bool, out *[]Variable) {
	isBound := func(v Variable) bool {
		for _, b := range bound {
			if b == v {
				return true
			}
		}
		return false
	}

	switch sub := f.(type) {
	case Atom:
		for _, arg := range sub.Args {
			if v, ok := arg.(Variable); ok && !isBound(v) && !seen[v.Name] {
				seen[v.Name] = true
				*out = append(*out, v)
			}
		}
	case Negation:
		collectFree(sub.Sub, bound, seen, out)
	case Conjunction:
		collectFree(sub.Left, bound, seen, out)
		collectFree(sub.Right, bound, seen, out)
	case Disjunction:
		collectFree(sub.Left, bound, seen, out)
		collectFree(sub.Right, bound, seen, out)
	case Implication:
		collectFree(sub.Left, bound, seen, out)
		collectFree(sub.Right, bound, seen, out)
	case RestrictedForall:
		inner := append(bound, sub.Bound)
		collectFree(sub.Restriction, inner, seen, out)
		collectFree(sub.Matrix, inner, seen, out)
	case RestrictedExists:
		inner := append(bound, sub.Bound)
		collectFree(sub.Restriction, inner, seen, out)
		collectFree(sub.Matrix, inner, seen, out)
	default:
		panic("logic: unknown formula variant")
	}
}
