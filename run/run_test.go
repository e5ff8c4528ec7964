package run

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/gnolang/wktab"
)

const sampleProblems = `# classics
p -> q, p |- q
[∀X Human(X)]Mortal(X), Human(socrates) |- Mortal(socrates)

p | q |- p
this is not a formula |- q
`

func writeProblemFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestProcessFile(t *testing.T) {
	path := writeProblemFile(t, "sample.wk", sampleProblems)

	reports, err := ProcessFile(wktab.DefaultConfig(), path)
	require.NoError(t, err)
	require.Len(t, reports, 4, "comment and blank lines are skipped")

	assert.Equal(t, 2, reports[0].Line)
	assert.True(t, reports[0].Result.Valid, "modus ponens should check out")
	assert.True(t, reports[1].Result.Valid)
	assert.False(t, reports[2].Result.Valid)
	assert.NotEmpty(t, reports[2].Result.Countermodels)
	assert.Error(t, reports[3].Err, "junk line should report a parse error")
}

func TestProcessPathWalksDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.wk"), []byte("|- p | ~p\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.wk"), []byte("p |- q\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored\n"), 0o644))

	reports, err := ProcessPath(context.Background(), zap.NewNop(), wktab.DefaultConfig(), dir)
	require.NoError(t, err)
	require.Len(t, reports, 2)

	// reports come back in file order regardless of worker scheduling
	assert.Equal(t, filepath.Join(dir, "a.wk"), reports[0].File)
	assert.True(t, reports[0].Result.Valid)
	assert.Equal(t, filepath.Join(dir, "b.wk"), reports[1].File)
	assert.False(t, reports[1].Result.Valid)
}

// An unreadable subdirectory must not abort the walk: readable problem
// files are still checked and the skip is logged.
func TestProcessPathSkipsUnreadableSubdirs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.wk"), []byte("|- p | ~p\n"), 0o644))
	locked := filepath.Join(dir, "locked")
	require.NoError(t, os.Mkdir(locked, 0o000))
	t.Cleanup(func() { os.Chmod(locked, 0o755) })

	core, logs := observer.New(zap.WarnLevel)
	reports, err := ProcessPath(context.Background(), zap.New(core), wktab.DefaultConfig(), dir)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.True(t, reports[0].Result.Valid)

	// running with enough privileges to read the directory anyway is
	// fine; any warnings that do fire must come from the walk
	for _, entry := range logs.All() {
		assert.Equal(t, "Error walking path", entry.Message)
	}
}

func TestCheckLineBudget(t *testing.T) {
	report, err := CheckLine(wktab.Config{MaxSteps: 1, MaxConstants: 4}, "|- p | ~p")
	require.NoError(t, err)
	assert.Equal(t, wktab.Unknown, report.Verdict)
}

func TestLoadConfig(t *testing.T) {
	path := writeProblemFile(t, "wktab.yaml", `
name: nightly
budgets:
  max_steps: 500
  max_constants: 16
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "nightly", cfg.Name)

	proof := cfg.Budgets.Proof()
	assert.Equal(t, 500, proof.MaxSteps)
	assert.Equal(t, 16, proof.MaxConstants)

	// unset budgets fall back to defaults
	proof = Budgets{}.Proof()
	assert.Equal(t, wktab.DefaultConfig(), proof)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
