package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
scenario:
  guesses:
    - CRANE
    - moist
  knownPositions: [~, R, "", "", ""]
  knownButNotInPositions:
    - []
    - []
    - []
    - []
    - [E]
`

func TestParse(t *testing.T) {
	t.Parallel()

	s, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, []string{"crane", "moist"}, s.Guesses)
	assert.Equal(t, []string{"", "r", "", "", ""}, s.KnownPositions)
	assert.Equal(t, []string{"e"}, s.KnownButNotInPositions[4])
	assert.Equal(t, 5, s.Length(0))
}

func TestParse_InvalidYAML(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("scenario: [unclosed"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, s.Guesses, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestScenario_Length(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		scenario   Scenario
		configured int
		expected   int
	}{
		{name: "configured wins", scenario: Scenario{KnownPositions: make([]string, 5)}, configured: 6, expected: 6},
		{name: "from positions", scenario: Scenario{KnownPositions: make([]string, 4)}, expected: 4},
		{name: "from misplaced", scenario: Scenario{KnownButNotInPositions: make([][]string, 7)}, expected: 7},
		{name: "from first guess", scenario: Scenario{Guesses: []string{"abcdef"}}, expected: 6},
		{name: "default", scenario: Scenario{}, expected: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.scenario.Length(tt.configured))
		})
	}
}

func TestScenario_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		scenario Scenario
		wantErr  string
	}{
		{name: "empty scenario", scenario: Scenario{}},
		{name: "fresh game", scenario: *New(5)},
		{
			name:     "short guess",
			scenario: Scenario{Guesses: []string{"cran"}},
			wantErr:  `guesses[0]: "cran" must have 5 letters`,
		},
		{
			name:     "non letter guess",
			scenario: Scenario{Guesses: []string{"cr4ne"}},
			wantErr:  `guesses[0]: "cr4ne" must contain only letters a-z`,
		},
		{
			name:     "short positions",
			scenario: Scenario{KnownPositions: []string{"", "a"}},
			wantErr:  "knownPositions: has 2 slots, want 5",
		},
		{
			name:     "multi letter position",
			scenario: Scenario{KnownPositions: []string{"", "ab", "", "", ""}},
			wantErr:  `knownPositions[1]: "ab" is not a single letter`,
		},
		{
			name:     "long misplaced",
			scenario: Scenario{KnownButNotInPositions: make([][]string, 6)},
			wantErr:  "knownButNotInPositions: has 6 slots, want 5",
		},
		{
			name:     "non letter misplaced",
			scenario: Scenario{KnownButNotInPositions: [][]string{{}, {"?"}, {}, {}, {}}},
			wantErr:  `knownButNotInPositions[1][0]: "?" is not a single letter`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.scenario.Validate(5)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestScenario_Validate_NonPositiveLength(t *testing.T) {
	t.Parallel()

	assert.Error(t, (&Scenario{}).Validate(0))
}

func TestScenario_Constraints(t *testing.T) {
	t.Parallel()

	s, err := Parse([]byte(sample))
	require.NoError(t, err)

	c, err := s.Constraints(s.Length(0))
	require.NoError(t, err)

	assert.Equal(t, "er", c.KnownLetters().String())
	assert.Equal(t, "acimnost", c.Misses().String())
	assert.True(t, c.IsViable("fryer"))
	assert.False(t, c.IsViable("crane"))
	assert.False(t, c.IsViable("ruler"), "r must be at index 1")
}

func TestScenario_Constraints_Invalid(t *testing.T) {
	t.Parallel()

	s := Scenario{KnownPositions: []string{"a"}}
	_, err := s.Constraints(5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid scenario")
}

func TestScenario_MarshalRoundTrip(t *testing.T) {
	t.Parallel()

	s, err := Parse([]byte(sample))
	require.NoError(t, err)

	data, err := s.Marshal()
	require.NoError(t, err)

	again, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, s, again)
}
