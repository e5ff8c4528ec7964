package formatter

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/wktab"
)

func TestFormatResult(t *testing.T) {
	color.NoColor = true

	r, err := wktab.SolveSource("p & ~q", mustSign(t, "t"))
	require.NoError(t, err)
	out := FormatResult(r)
	assert.Contains(t, out, "satisfiable")
	assert.Contains(t, out, "model 1: {p=true, q=false}")

	r, err = wktab.SolveSource("p & ~p", mustSign(t, "t"))
	require.NoError(t, err)
	out = FormatResult(r)
	assert.Contains(t, out, "unsatisfiable")
	assert.NotContains(t, out, "model")
}

func TestFormatReport(t *testing.T) {
	color.NoColor = true

	inf, err := wktab.ParseInference("p -> q, p |- q")
	require.NoError(t, err)
	rep, err := wktab.CheckInference(inf)
	require.NoError(t, err)
	out := FormatReport(rep)
	assert.Contains(t, out, "valid")
	assert.Contains(t, out, "|- q")

	inf, err = wktab.ParseInference("p | q |- p")
	require.NoError(t, err)
	rep, err = wktab.CheckInference(inf)
	require.NoError(t, err)
	out = FormatReport(rep)
	assert.Contains(t, out, "invalid")
	assert.Contains(t, out, "countermodel 1:")
}

func mustSign(t *testing.T, s string) wktab.Sign {
	t.Helper()
	sign, err := wktab.ParseSign(s)
	require.NoError(t, err)
	return sign
}
