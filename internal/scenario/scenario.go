// internal/scenario/scenario.go
//
// Loads the game state a player has gathered so far from a YAML document:
//
//	scenario:
//	  guesses: [crane, moist]
//	  knownPositions: ["", r, "", "", ""]
//	  knownButNotInPositions: [[], [], [], [], [e]]
//
// Responsibilities:
//   - Decode YAML (files) or JSON (HTTP bodies) into a Scenario.
//   - Normalize letters to lowercase.
//   - Validate slot counts and letters, failing fast with the field name.
//   - Build the immutable constraint.Constraints consumed by the filter.
//
// Omitted knownPositions / knownButNotInPositions mean nothing is known
// yet; present but wrongly sized ones are rejected.

package scenario

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/robalobadob/wordle/apps/helper/internal/constraint"
)

// Document is the top-level shape of a scenario file.
type Document struct {
	Scenario Scenario `yaml:"scenario" json:"scenario"`
}

// Scenario is the raw knowledge collected from previous guesses.
type Scenario struct {
	Guesses                []string   `yaml:"guesses" json:"guesses"`
	KnownPositions         []string   `yaml:"knownPositions" json:"knownPositions"`
	KnownButNotInPositions [][]string `yaml:"knownButNotInPositions" json:"knownButNotInPositions"`
}

// New returns an empty scenario with length slots.
func New(length int) *Scenario {
	return &Scenario{
		Guesses:                []string{},
		KnownPositions:         make([]string, length),
		KnownButNotInPositions: make([][]string, length),
	}
}

// Load reads and parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	log.Debug().Str("path", path).Int("guesses", len(s.Guesses)).Msg("scenario loaded")
	return s, nil
}

// Parse decodes a YAML scenario document. Letters are lowercased.
func Parse(data []byte) (*Scenario, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	doc.Scenario.Normalize()
	return &doc.Scenario, nil
}

// Marshal renders the scenario as a YAML document.
func (s *Scenario) Marshal() ([]byte, error) {
	return yaml.Marshal(Document{Scenario: *s})
}

// Normalize trims and lowercases every guess and letter in place.
func (s *Scenario) Normalize() {
	for i, g := range s.Guesses {
		s.Guesses[i] = normalize(g)
	}
	for i, p := range s.KnownPositions {
		s.KnownPositions[i] = normalize(p)
	}
	for i, slot := range s.KnownButNotInPositions {
		for j, l := range slot {
			slot[j] = normalize(l)
		}
		s.KnownButNotInPositions[i] = slot
	}
}

// Length picks the word length for this scenario. A positive configured
// length wins; otherwise it is inferred from the slots, then the first
// guess, then constraint.DefaultLength.
func (s *Scenario) Length(configured int) int {
	switch {
	case configured > 0:
		return configured
	case len(s.KnownPositions) > 0:
		return len(s.KnownPositions)
	case len(s.KnownButNotInPositions) > 0:
		return len(s.KnownButNotInPositions)
	case len(s.Guesses) > 0 && len(s.Guesses[0]) > 0:
		return len(s.Guesses[0])
	default:
		return constraint.DefaultLength
	}
}

// Validate checks the scenario against words of the given length.
// All problems are reported together.
func (s *Scenario) Validate(length int) error {
	if length <= 0 {
		return fmt.Errorf("word length must be positive, got %d", length)
	}
	var errs []error
	for i, g := range s.Guesses {
		if len(g) != length {
			errs = append(errs, fmt.Errorf("guesses[%d]: %q must have %d letters", i, g, length))
		} else if !isWord(g) {
			errs = append(errs, fmt.Errorf("guesses[%d]: %q must contain only letters a-z", i, g))
		}
	}
	if s.KnownPositions != nil && len(s.KnownPositions) != length {
		errs = append(errs, fmt.Errorf("knownPositions: has %d slots, want %d", len(s.KnownPositions), length))
	}
	for i, p := range s.KnownPositions {
		if p != "" && !isLetter(p) {
			errs = append(errs, fmt.Errorf("knownPositions[%d]: %q is not a single letter", i, p))
		}
	}
	if s.KnownButNotInPositions != nil && len(s.KnownButNotInPositions) != length {
		errs = append(errs, fmt.Errorf("knownButNotInPositions: has %d slots, want %d", len(s.KnownButNotInPositions), length))
	}
	for i, slot := range s.KnownButNotInPositions {
		for j, l := range slot {
			if !isLetter(l) {
				errs = append(errs, fmt.Errorf("knownButNotInPositions[%d][%d]: %q is not a single letter", i, j, l))
			}
		}
	}
	return errors.Join(errs...)
}

// Constraints validates the scenario and derives the filter's constraint
// set for words of the given length.
func (s *Scenario) Constraints(length int) (*constraint.Constraints, error) {
	if err := s.Validate(length); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	positions := make(constraint.Positions, length)
	for i, p := range s.KnownPositions {
		if p != "" {
			positions[i] = p[0]
		}
	}
	misplaced := make([]constraint.LetterSet, length)
	for i, slot := range s.KnownButNotInPositions {
		for _, l := range slot {
			misplaced[i] = misplaced[i].Add(l[0])
		}
	}

	c := constraint.New(length, s.Guesses, positions, misplaced)
	log.Debug().
		Int("length", length).
		Stringer("knownLetters", c.KnownLetters()).
		Stringer("misses", c.Misses()).
		Msg("constraints derived")
	return c, nil
}

func normalize(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// isLetter reports whether s is exactly one letter a-z.
func isLetter(s string) bool { return len(s) == 1 && constraint.IsLetter(s[0]) }

// isWord reports whether s is made only of letters a-z.
func isWord(s string) bool {
	for i := 0; i < len(s); i++ {
		if !constraint.IsLetter(s[i]) {
			return false
		}
	}
	return true
}
