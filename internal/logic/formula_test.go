package logic

import "testing"

func TestFormulaString(t *testing.T) {
	human := NewAtom("Human", Var("X"))
	mortal := NewAtom("Mortal", Var("X"))

	cases := []struct {
		f    Formula
		want string
	}{
		{NewAtom("p"), "p"},
		{NewAtom("R", Const("a"), Var("Y")), "R(a, Y)"},
		{Not(NewAtom("p")), "~p"},
		{And(NewAtom("p"), NewAtom("q")), "(p & q)"},
		{Or(NewAtom("p"), Not(NewAtom("p"))), "(p | ~p)"},
		{Implies(NewAtom("p"), NewAtom("q")), "(p -> q)"},
		{Forall(Var("X"), human, mortal), "[∀X Human(X)]Mortal(X)"},
		{Exists(Var("X"), human, mortal), "[∃X Human(X)]Mortal(X)"},
	}
	for _, c := range cases {
		if got := c.f.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}

func TestFormulaEqual(t *testing.T) {
	a := And(NewAtom("p"), Not(NewAtom("q", Const("a"))))
	b := And(NewAtom("p"), Not(NewAtom("q", Const("a"))))
	c := And(NewAtom("p"), Not(NewAtom("q", Const("b"))))

	if !a.Equal(b) {
		t.Errorf("structurally identical formulas should be equal")
	}
	if a.Equal(c) {
		t.Errorf("formulas differing in a constant should not be equal")
	}
	if a.Equal(Or(NewAtom("p"), NewAtom("q"))) {
		t.Errorf("formulas of different shape should not be equal")
	}
}

func TestInstantiate(t *testing.T) {
	f := Implies(NewAtom("Human", Var("X")), NewAtom("Mortal", Var("X")))
	got := Instantiate(f, Var("X"), Const("socrates"))
	want := Implies(NewAtom("Human", Const("socrates")), NewAtom("Mortal", Const("socrates")))
	if !got.Equal(want) {
		t.Errorf("Instantiate = %v, want %v", got, want)
	}
	// the input tree must be untouched
	if !f.Equal(Implies(NewAtom("Human", Var("X")), NewAtom("Mortal", Var("X")))) {
		t.Errorf("Instantiate mutated its input")
	}
}

func TestInstantiateShadowing(t *testing.T) {
	// [∀X R(X)]P(X) nested under an outer X: the inner binder shadows.
	inner := Forall(Var("X"), NewAtom("R", Var("X")), NewAtom("P", Var("X")))
	f := And(NewAtom("Q", Var("X")), inner)
	got := Instantiate(f, Var("X"), Const("a"))
	want := And(NewAtom("Q", Const("a")), inner)
	if !got.Equal(want) {
		t.Errorf("Instantiate = %v, want %v", got, want)
	}
}

func TestConstants(t *testing.T) {
	f := And(
		NewAtom("R", Const("a"), Const("b")),
		Exists(Var("X"), NewAtom("P", Var("X")), NewAtom("Q", Var("X"), Const("a"))),
	)
	got := Constants(f)
	if len(got) != 2 || got[0].Name != "a" || got[1].Name != "b" {
		t.Errorf("Constants = %v, want [a b]", got)
	}
}

func TestFreeVariables(t *testing.T) {
	f := Forall(Var("X"), NewAtom("Human", Var("X")), NewAtom("Knows", Var("X"), Var("Y")))
	got := FreeVariables(f)
	if len(got) != 1 || got[0].Name != "Y" {
		t.Errorf("FreeVariables = %v, want [Y]", got)
	}
	if vs := FreeVariables(Instantiate(f, Var("Y"), Const("plato"))); len(vs) != 0 {
		t.Errorf("sentence should have no free variables, got %v", vs)
	}

	if !Mentions(NewAtom("P", Var("X")), Var("X")) {
		t.Errorf("Mentions should find X in P(X)")
	}
	if Mentions(f, Var("X")) {
		t.Errorf("bound X should not count as a free mention")
	}
}
