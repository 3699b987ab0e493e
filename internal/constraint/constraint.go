// Package constraint holds the word-filtering core: the constraint set
// derived from previous guesses and the predicates evaluated against each
// candidate word.
package constraint

// DefaultLength is the word length used when nothing else decides it.
const DefaultLength = 5

// Constraints is the immutable knowledge gathered from previous guesses.
// Build it with New; it is safe for concurrent use.
type Constraints struct {
	length                 int
	misses                 LetterSet
	knownLetters           LetterSet
	knownPositions         Positions
	knownButNotInPositions []LetterSet
}

// New derives the full constraint set from the raw facts of a game.
// knownPositions and knownButNotInPositions are copied; callers are
// expected to have validated that both have length slots.
func New(length int, guesses []string, knownPositions Positions, knownButNotInPositions []LetterSet) *Constraints {
	positions := make(Positions, length)
	copy(positions, knownPositions)
	misplaced := make([]LetterSet, length)
	copy(misplaced, knownButNotInPositions)

	known := DeriveKnownLetters(positions, misplaced)
	return &Constraints{
		length:                 length,
		misses:                 DeriveMisses(guesses, known, positions),
		knownLetters:           known,
		knownPositions:         positions,
		knownButNotInPositions: misplaced,
	}
}

// Length is the number of letters a viable word has.
func (c *Constraints) Length() int { return c.length }

// Misses are the letters known to be absent from the answer.
func (c *Constraints) Misses() LetterSet { return c.misses }

// KnownLetters are the letters known to be in the answer.
func (c *Constraints) KnownLetters() LetterSet { return c.knownLetters }

// KnownPositions returns a copy of the confirmed letter slots.
func (c *Constraints) KnownPositions() Positions {
	return append(Positions(nil), c.knownPositions...)
}

// KnownButNotInPositions returns a copy of the misplaced letter slots.
func (c *Constraints) KnownButNotInPositions() []LetterSet {
	return append([]LetterSet(nil), c.knownButNotInPositions...)
}

// IsEmpty reports whether no constraint is in force, as in a fresh game.
func (c *Constraints) IsEmpty() bool {
	if !c.misses.IsEmpty() || !c.knownLetters.IsEmpty() {
		return false
	}
	return c.knownPositions.Letters().IsEmpty()
}
