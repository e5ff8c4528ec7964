package parser

import (
	"errors"
	"testing"

	"github.com/gnolang/wktab/internal/logic"
)

func mustParse(t *testing.T, input string) logic.Formula {
	t.Helper()
	f, err := ParseFormula(input)
	if err != nil {
		t.Fatalf("ParseFormula(%q) failed: %v", input, err)
	}
	return f
}

func TestParsePropositional(t *testing.T) {
	tests := []struct {
		input string
		want  logic.Formula
	}{
		{"p", logic.NewAtom("p")},
		{"~p", logic.Not(logic.NewAtom("p"))},
		{"p & q", logic.And(logic.NewAtom("p"), logic.NewAtom("q"))},
		{"p | q", logic.Or(logic.NewAtom("p"), logic.NewAtom("q"))},
		{"p -> q", logic.Implies(logic.NewAtom("p"), logic.NewAtom("q"))},
		{"(p)", logic.NewAtom("p")},
		{"~~p", logic.Not(logic.Not(logic.NewAtom("p")))},
	}
	for _, tt := range tests {
		if got := mustParse(t, tt.input); !got.Equal(tt.want) {
			t.Errorf("ParseFormula(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParsePrecedence(t *testing.T) {
	p := logic.NewAtom("p")
	q := logic.NewAtom("q")
	r := logic.NewAtom("r")

	tests := []struct {
		input string
		want  logic.Formula
	}{
		// ~ binds tighter than &, & tighter than |, | tighter than ->
		{"~p & q", logic.And(logic.Not(p), q)},
		{"p & q | r", logic.Or(logic.And(p, q), r)},
		{"p | q -> r", logic.Implies(logic.Or(p, q), r)},
		{"p -> q -> r", logic.Implies(p, logic.Implies(q, r))},
		{"p & (q | r)", logic.And(p, logic.Or(q, r))},
		{"(p -> q) -> r", logic.Implies(logic.Implies(p, q), r)},
	}
	for _, tt := range tests {
		if got := mustParse(t, tt.input); !got.Equal(tt.want) {
			t.Errorf("ParseFormula(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseAtomsAndTerms(t *testing.T) {
	got := mustParse(t, "Loves(alice, X)")
	want := logic.NewAtom("Loves", logic.Const("alice"), logic.Var("X"))
	if !got.Equal(want) {
		t.Errorf("ParseFormula = %v, want %v", got, want)
	}

	// underscores and digits are legal inside names
	got = mustParse(t, "R(w_1, item2)")
	want = logic.NewAtom("R", logic.Const("w_1"), logic.Const("item2"))
	if !got.Equal(want) {
		t.Errorf("ParseFormula = %v, want %v", got, want)
	}
}

func TestParseQuantifiers(t *testing.T) {
	x := logic.Var("X")
	human := logic.NewAtom("Human", x)
	mortal := logic.NewAtom("Mortal", x)

	got := mustParse(t, "[∀X Human(X)]Mortal(X)")
	if want := logic.Forall(x, human, mortal); !got.Equal(want) {
		t.Errorf("forall = %v, want %v", got, want)
	}

	got = mustParse(t, "[∃X Human(X)]~Mortal(X)")
	if want := logic.Exists(x, human, logic.Not(mortal)); !got.Equal(want) {
		t.Errorf("exists = %v, want %v", got, want)
	}

	// nested quantifier with a parenthesised matrix
	got = mustParse(t, "[∀X P(X)]([∃Y P(Y)]R(X, Y))")
	y := logic.Var("Y")
	want := logic.Forall(x, logic.NewAtom("P", x),
		logic.Exists(y, logic.NewAtom("P", y), logic.NewAtom("R", x, y)))
	if !got.Equal(want) {
		t.Errorf("nested = %v, want %v", got, want)
	}
}

func TestParseInference(t *testing.T) {
	premises, conclusion, err := ParseInference("[∀X Human(X)]Mortal(X), Human(socrates) |- Mortal(socrates)")
	if err != nil {
		t.Fatalf("ParseInference failed: %v", err)
	}
	if len(premises) != 2 {
		t.Fatalf("got %d premises, want 2", len(premises))
	}
	if want := logic.NewAtom("Mortal", logic.Const("socrates")); !conclusion.Equal(want) {
		t.Errorf("conclusion = %v, want %v", conclusion, want)
	}

	// premise-free inference asserts plain validity
	premises, conclusion, err = ParseInference("|- p | ~p")
	if err != nil {
		t.Fatalf("ParseInference failed: %v", err)
	}
	if len(premises) != 0 {
		t.Errorf("got %d premises, want none", len(premises))
	}
	p := logic.NewAtom("p")
	if want := logic.Or(p, logic.Not(p)); !conclusion.Equal(want) {
		t.Errorf("conclusion = %v, want %v", conclusion, want)
	}
}

func TestParseErrors(t *testing.T) {
	bad := []string{
		"",
		"p &",
		"(p",
		"p -> -> q",
		"[∀X Human(X)",
		"[∀x Human(x)]Mortal(x)", // lowercase bound variable
		"[∀X]Mortal(X)",
		"p @ q",
		"p -",
		"Loves(alice,)",
	}
	for _, input := range bad {
		if _, err := ParseFormula(input); err == nil {
			t.Errorf("ParseFormula(%q) succeeded, want error", input)
		}
	}

	_, err := ParseFormula("p & & q")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error type = %T, want *ParseError", err)
	}
	if perr.Pos != 4 {
		t.Errorf("error position = %d, want 4", perr.Pos)
	}

	if _, _, err := ParseInference("p, q"); err == nil {
		t.Errorf("inference without '|-' should fail")
	}
}

// A token stream missing its trailing EOF still reports input offsets,
// not token counts.
func TestPeekPastTruncatedStream(t *testing.T) {
	p := NewParser([]Token{{Type: TokenIdent, Value: "pred", Position: 7}})
	p.advance()

	tok := p.peek()
	if tok.Type != TokenEOF {
		t.Fatalf("peek past end = %v, want EOF", tok.Type)
	}
	if tok.Position != 7 {
		t.Errorf("synthetic EOF position = %d, want 7", tok.Position)
	}

	empty := NewParser(nil)
	if tok := empty.peek(); tok.Type != TokenEOF || tok.Position != 0 {
		t.Errorf("empty stream peek = %v at %d, want EOF at 0", tok.Type, tok.Position)
	}
}
