// internal/feedback/feedback.go
//
// Scores guesses against a known answer and records the result into a
// scenario, so a game can be replayed without typing the board by hand.
//
// Notes:
//   - Score implements the classic two-pass Wordle evaluation.
//   - Record only writes hits and presents; misses are derived later from
//     the guess history by the constraint package.
package feedback

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/robalobadob/wordle/apps/helper/internal/constraint"
	"github.com/robalobadob/wordle/apps/helper/internal/scenario"
)

// ErrLengthMismatch is returned when guess and answer differ in length.
var ErrLengthMismatch = errors.New("guess and answer lengths differ")

// Score compares guess against answer.
//
// Pass 1:
//   - Mark exact matches as Hit.
//   - Count remaining (non-hit) answer letters.
//
// Pass 2:
//   - For each non-hit guess letter: if there is remaining count for that
//     letter, mark Present and decrement; otherwise mark Miss.
//
// This gives the right answer for repeated letters in both words.
func Score(guess, answer string) ([]Mark, error) {
	guess = strings.ToLower(guess)
	answer = strings.ToLower(answer)
	if len(guess) != len(answer) {
		return nil, fmt.Errorf("%w: %q vs %q", ErrLengthMismatch, guess, answer)
	}

	n := len(guess)
	res := make([]Mark, n)
	var counts [26]int

	for i := 0; i < n; i++ {
		if guess[i] == answer[i] {
			res[i] = MarkHit
		} else if constraint.IsLetter(answer[i]) {
			counts[answer[i]-'a']++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == MarkHit {
			continue
		}
		c := guess[i]
		if constraint.IsLetter(c) && counts[c-'a'] > 0 {
			res[i] = MarkPresent
			counts[c-'a']--
		} else {
			res[i] = MarkMiss
		}
	}
	return res, nil
}

// Record adds guess and its marks to s. Hits fill knownPositions; presents
// are added to knownButNotInPositions at their index. s is resized to the
// guess length when it has no slots yet.
func Record(s *scenario.Scenario, guess string, marks []Mark) error {
	guess = strings.ToLower(strings.TrimSpace(guess))
	if len(marks) != len(guess) {
		return fmt.Errorf("guess %q has %d letters but %d marks", guess, len(guess), len(marks))
	}
	if len(s.KnownPositions) == 0 {
		s.KnownPositions = make([]string, len(guess))
	}
	if len(s.KnownButNotInPositions) == 0 {
		s.KnownButNotInPositions = make([][]string, len(guess))
	}
	if len(s.KnownPositions) != len(guess) || len(s.KnownButNotInPositions) != len(guess) {
		return fmt.Errorf("guess %q does not fit a %d letter scenario", guess, len(s.KnownPositions))
	}

	s.Guesses = append(s.Guesses, guess)
	for i, m := range marks {
		letter := guess[i : i+1]
		switch m {
		case MarkHit:
			s.KnownPositions[i] = letter
		case MarkPresent:
			if !slices.Contains(s.KnownButNotInPositions[i], letter) {
				s.KnownButNotInPositions[i] = append(s.KnownButNotInPositions[i], letter)
			}
		}
	}
	return nil
}

// Replay scores every guess against answer and returns the resulting
// scenario.
func Replay(answer string, guesses []string) (*scenario.Scenario, error) {
	s := scenario.New(len(answer))
	for _, g := range guesses {
		marks, err := Score(g, answer)
		if err != nil {
			return nil, err
		}
		if err := Record(s, g, marks); err != nil {
			return nil, err
		}
	}
	return s, nil
}
