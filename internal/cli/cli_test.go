package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testScenario = `
scenario:
  guesses: [slate]
  knownPositions: ["", "", a, "", e]
  knownButNotInPositions: [[], [], [], [], []]
`

const testWords = "crane\nprank\ncarry\nzebra\ndrake\nslate\n"

// writeInputs puts a scenario and word list in a temp dir.
func writeInputs(t *testing.T, scenarioYAML string) (scenarioPath, wordsPath string) {
	t.Helper()
	dir := t.TempDir()
	scenarioPath = filepath.Join(dir, "scenario.yaml")
	wordsPath = filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(scenarioPath, []byte(scenarioYAML), 0o600))
	require.NoError(t, os.WriteFile(wordsPath, []byte(testWords), 0o600))
	return scenarioPath, wordsPath
}

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func lines(s string) []string {
	return strings.Fields(s)
}

func TestFilter(t *testing.T) {
	scenarioPath, wordsPath := writeInputs(t, testScenario)

	stdout, _, err := run(t, "filter", "--scenario", scenarioPath, "--words", wordsPath, "--no-shuffle")
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "drake"}, lines(stdout))
}

func TestRootDefaultsToFilter(t *testing.T) {
	scenarioPath, wordsPath := writeInputs(t, testScenario)

	stdout, _, err := run(t, "--scenario", scenarioPath, "--words", wordsPath, "--seed", "3")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"crane", "drake"}, lines(stdout))
}

func TestFilter_FreshGameAcceptsEverything(t *testing.T) {
	scenarioPath, wordsPath := writeInputs(t, "scenario: {}\n")

	stdout, _, err := run(t, "filter", "--scenario", scenarioPath, "--words", wordsPath)
	require.NoError(t, err)
	assert.ElementsMatch(t, lines(testWords), lines(stdout))
}

func TestFilter_Errors(t *testing.T) {
	scenarioPath, wordsPath := writeInputs(t, testScenario)
	dir := t.TempDir()

	_, _, err := run(t, "filter", "--scenario", filepath.Join(dir, "missing.yaml"), "--words", wordsPath)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = run(t, "filter", "--scenario", scenarioPath, "--words", filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	badPath, _ := writeInputs(t, "scenario:\n  knownPositions: [a, b]\n")
	_, _, err = run(t, "filter", "--scenario", badPath, "--words", wordsPath, "--length", "5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "knownPositions")
}

func TestSimulate(t *testing.T) {
	_, wordsPath := writeInputs(t, testScenario)

	stdout, stderr, err := run(t, "simulate", "--answer", "crane", "--words", wordsPath, "--no-shuffle", "slate")
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "drake"}, lines(stdout))
	assert.Contains(t, stderr, "slate ..G.G")

	_, _, err = run(t, "simulate", "--words", wordsPath, "slate")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	stdout, stderr, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout+stderr, "wordle-helper dev")
}
