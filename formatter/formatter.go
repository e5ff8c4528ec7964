package formatter

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/gnolang/wktab"
)

var (
	satStyle     = color.New(color.FgGreen, color.Bold)
	unsatStyle   = color.New(color.FgRed, color.Bold)
	unknownStyle = color.New(color.FgHiYellow, color.Bold)
	validStyle   = color.New(color.FgGreen, color.Bold)
	invalidStyle = color.New(color.FgRed, color.Bold)
	modelStyle   = color.New(color.FgCyan)
	queryStyle   = color.New(color.FgWhite, color.Bold)
)

// Verdict renders a verdict as a colored word.
func Verdict(v wktab.Verdict) string {
	switch v {
	case wktab.Satisfiable:
		return satStyle.Sprint("satisfiable")
	case wktab.Unsatisfiable:
		return unsatStyle.Sprint("unsatisfiable")
	default:
		return unknownStyle.Sprint("unknown")
	}
}

// FormatResult renders a solve result: the verdict, the step count and
// one line per extracted model.
func FormatResult(r wktab.Result) string {
	var sb strings.Builder
	sb.WriteString(Verdict(r.Verdict))
	fmt.Fprintf(&sb, " (%d steps)\n", r.Steps)
	for i, m := range r.Models {
		fmt.Fprintf(&sb, "  model %d: %s\n", i+1, modelStyle.Sprint(m.String()))
	}
	return sb.String()
}

// FormatReport renders the outcome of checking one inference, with
// countermodels when the inference fails.
func FormatReport(rep wktab.InferenceReport) string {
	var sb strings.Builder
	sb.WriteString(queryStyle.Sprint(rep.Inference.String()))
	sb.WriteString(": ")
	switch rep.Verdict {
	case wktab.Unsatisfiable:
		sb.WriteString(validStyle.Sprint("valid"))
		sb.WriteByte('\n')
	case wktab.Satisfiable:
		sb.WriteString(invalidStyle.Sprint("invalid"))
		sb.WriteByte('\n')
		for i, m := range rep.Countermodels {
			fmt.Fprintf(&sb, "  countermodel %d: %s\n", i+1, modelStyle.Sprint(m.String()))
		}
	default:
		sb.WriteString(unknownStyle.Sprint("unknown"))
		sb.WriteString(" (budget exhausted)\n")
	}
	return sb.String()
}
