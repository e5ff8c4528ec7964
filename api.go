package wktab

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gnolang/wktab/internal/logic"
	"github.com/gnolang/wktab/internal/tableau"
	"github.com/gnolang/wktab/parser"
)

// ErrUnknown reports that a proof attempt exhausted its budget before
// reaching a verdict. Callers of Valid and Entails see it when the
// yes/no answer could not be established either way.
var ErrUnknown = errors.New("wktab: budget exhausted before a verdict was reached")

// Re-exported result vocabulary so callers outside this module can use
// the prover without importing internal packages.
type (
	Config  = tableau.Config
	Result  = tableau.Result
	Verdict = tableau.Verdict
	Model   = tableau.Model
	Sign    = logic.Sign
	Formula = logic.Formula
)

const (
	Satisfiable   = tableau.Satisfiable
	Unsatisfiable = tableau.Unsatisfiable
	Unknown       = tableau.Unknown
)

// DefaultConfig returns the default proof budgets.
func DefaultConfig() Config {
	return tableau.DefaultConfig()
}

// ParseFormula parses a formula in the surface notation.
func ParseFormula(src string) (Formula, error) {
	return parser.ParseFormula(src)
}

// ParseSign parses one of the four sign letters t, f, m, n.
func ParseSign(s string) (Sign, error) {
	return logic.ParseSign(s)
}

// Solve asks whether the given formula can take a value in the
// denotation of sign: t asks for true, f for false, n for undefined and
// m for true-or-undefined. The result carries a model per open branch
// when satisfiable.
func Solve(f Formula, sign Sign) (Result, error) {
	return SolveWithConfig(f, sign, DefaultConfig())
}

// SolveWithConfig is Solve under explicit budgets.
func SolveWithConfig(f Formula, sign Sign, cfg Config) (Result, error) {
	tb, err := tableau.New([]logic.SignedFormula{{Sign: sign, Formula: f}}, cfg)
	if err != nil {
		return Result{}, err
	}
	return tb.Run(), nil
}

// SolveSource parses src and solves it under the given sign.
func SolveSource(src string, sign Sign) (Result, error) {
	f, err := parser.ParseFormula(src)
	if err != nil {
		return Result{}, err
	}
	return Solve(f, sign)
}

// Valid reports whether f can never be false: the tableau for f:f must
// close. Weak Kleene has no formulas that are true everywhere, so this
// never-false reading is the strongest available notion of validity.
func Valid(f Formula) (bool, error) {
	return ValidWithConfig(f, DefaultConfig())
}

// ValidWithConfig is Valid under explicit budgets.
func ValidWithConfig(f Formula, cfg Config) (bool, error) {
	r, err := SolveWithConfig(f, logic.F, cfg)
	if err != nil {
		return false, err
	}
	switch r.Verdict {
	case Unsatisfiable:
		return true, nil
	case Satisfiable:
		return false, nil
	default:
		return false, ErrUnknown
	}
}

// Entails reports whether the premises entail the conclusion: no model
// makes every premise true while the conclusion is false. The tableau
// seeds t on each premise and f on the conclusion and must close.
func Entails(premises []Formula, conclusion Formula) (bool, error) {
	return EntailsWithConfig(premises, conclusion, DefaultConfig())
}

// EntailsWithConfig is Entails under explicit budgets.
func EntailsWithConfig(premises []Formula, conclusion Formula, cfg Config) (bool, error) {
	root := make([]logic.SignedFormula, 0, len(premises)+1)
	for _, p := range premises {
		root = append(root, logic.SignedFormula{Sign: logic.T, Formula: p})
	}
	root = append(root, logic.SignedFormula{Sign: logic.F, Formula: conclusion})

	tb, err := tableau.New(root, cfg)
	if err != nil {
		return false, err
	}
	switch r := tb.Run(); r.Verdict {
	case Unsatisfiable:
		return true, nil
	case Satisfiable:
		return false, nil
	default:
		return false, ErrUnknown
	}
}

// Inference is a premise list with a conclusion.
type Inference struct {
	Premises   []Formula
	Conclusion Formula
}

func (i Inference) String() string {
	var sb strings.Builder
	for n, p := range i.Premises {
		if n > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	if len(i.Premises) > 0 {
		sb.WriteByte(' ')
	}
	sb.WriteString("|- ")
	sb.WriteString(i.Conclusion.String())
	return sb.String()
}

// ParseInference parses "premise, ..., premise |- conclusion".
func ParseInference(src string) (Inference, error) {
	premises, conclusion, err := parser.ParseInference(src)
	if err != nil {
		return Inference{}, err
	}
	return Inference{Premises: premises, Conclusion: conclusion}, nil
}

// InferenceReport is the outcome of checking one inference.
type InferenceReport struct {
	Inference Inference
	Verdict   Verdict
	// Valid is set when Verdict is decisive: true for Unsatisfiable
	// (the inference holds), false for Satisfiable.
	Valid bool
	// Countermodels holds models of the premises that defeat the
	// conclusion, when the inference fails.
	Countermodels []Model
	Steps         int
}

func (r InferenceReport) String() string {
	switch r.Verdict {
	case Unsatisfiable:
		return "valid"
	case Satisfiable:
		return "invalid"
	default:
		return "unknown"
	}
}

// CheckInference decides an inference, returning countermodels when it
// fails and Verdict Unknown when the budget ran out.
func CheckInference(inf Inference) (InferenceReport, error) {
	return CheckInferenceWithConfig(inf, DefaultConfig())
}

// CheckInferenceWithConfig is CheckInference under explicit budgets.
func CheckInferenceWithConfig(inf Inference, cfg Config) (InferenceReport, error) {
	if inf.Conclusion == nil {
		return InferenceReport{}, fmt.Errorf("wktab: inference has no conclusion")
	}
	root := make([]logic.SignedFormula, 0, len(inf.Premises)+1)
	for _, p := range inf.Premises {
		root = append(root, logic.SignedFormula{Sign: logic.T, Formula: p})
	}
	root = append(root, logic.SignedFormula{Sign: logic.F, Formula: inf.Conclusion})

	tb, err := tableau.New(root, cfg)
	if err != nil {
		return InferenceReport{}, err
	}
	r := tb.Run()
	return InferenceReport{
		Inference:     inf,
		Verdict:       r.Verdict,
		Valid:         r.Verdict == Unsatisfiable,
		Countermodels: r.Models,
		Steps:         r.Steps,
	}, nil
}
