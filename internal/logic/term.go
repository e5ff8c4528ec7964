package logic

// Term is a constant or a variable appearing as a predicate argument.
type Term interface {
	isTerm()
	String() string
	Equal(other Term) bool
}

// Constant names a domain element. Fresh witness constants introduced by
// the tableau carry a "_w" prefix, which the parser never produces, so
// witnesses cannot capture input constants.
type Constant struct {
	Name string
}

func (Constant) isTerm() {}
func (c Constant) String() string {
	return c.Name
}

func (c Constant) Equal(other Term) bool {
	if o, ok := other.(Constant); ok {
		return c.Name == o.Name
	}
	return false
}

// Variable is a quantifier-bound placeholder.
type Variable struct {
	Name string
}

func (Variable) isTerm() {}
func (v Variable) String() string {
	return v.Name
}

func (v Variable) Equal(other Term) bool {
	if o, ok := other.(Variable); ok {
		return v.Name == o.Name
	}
	return false
}

// Const creates a constant term.
func Const(name string) Constant {
	return Constant{Name: name}
}

// Var creates a variable term.
func Var(name string) Variable {
	return Variable{Name: name}
}
