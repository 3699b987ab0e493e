// internal/constraint/filter.go
//
// Candidate filter: decides whether a dictionary word is still a possible
// answer given what previous guesses revealed.
//
// Each Wordle feedback colour maps to one predicate:
//   - FoundMiss:                  gray letters must not appear at all.
//   - IncludesKnownLetters:       every green/yellow letter must appear somewhere.
//   - MatchesKnownPositions:      green letters must sit at their index.
//   - HasRightLetterInWrongPlace: yellow letters must not sit where they were seen.
//
// The predicates are pure and independent; IsViable ANDs them together,
// cheapest and most selective first.

package constraint

// Positions holds one slot per letter index. A zero byte means the letter
// at that index is unknown.
type Positions []byte

// Letters returns the flat set of letters placed in any slot.
func (p Positions) Letters() LetterSet {
	var set LetterSet
	for _, c := range p {
		set = set.Add(c)
	}
	return set
}

// FoundMiss reports whether word contains any letter known to be absent.
func FoundMiss(misses LetterSet, word string) bool {
	if misses.IsEmpty() {
		return false
	}
	for i := 0; i < len(word); i++ {
		if misses.Has(word[i]) {
			return true
		}
	}
	return false
}

// IncludesKnownLetters reports whether word contains every known letter at
// least once. Multiplicity is not checked.
func IncludesKnownLetters(knownLetters LetterSet, word string) bool {
	if knownLetters.IsEmpty() {
		return true
	}
	return LettersOf(word).Contains(knownLetters)
}

// MatchesKnownPositions reports whether word has the confirmed letter at
// every index where one is known. Unknown slots are skipped.
func MatchesKnownPositions(knownPositions Positions, word string) bool {
	for i, c := range knownPositions {
		if c == 0 {
			continue
		}
		if i >= len(word) || word[i] != c {
			return false
		}
	}
	return true
}

// HasRightLetterInWrongPlace reports whether word repeats a known letter at
// an index where that letter was already ruled out.
func HasRightLetterInWrongPlace(knownButNotInPositions []LetterSet, word string) bool {
	for i, letters := range knownButNotInPositions {
		if i >= len(word) {
			break
		}
		if letters.Has(word[i]) {
			return true
		}
	}
	return false
}

// IsViable reports whether word is consistent with every constraint.
// Words of the wrong length are never viable.
func (c *Constraints) IsViable(word string) bool {
	if len(word) != c.length {
		return false
	}
	return !FoundMiss(c.misses, word) &&
		IncludesKnownLetters(c.knownLetters, word) &&
		MatchesKnownPositions(c.knownPositions, word) &&
		!HasRightLetterInWrongPlace(c.knownButNotInPositions, word)
}

// Filter returns the viable words in their input order.
func Filter(words []string, c *Constraints) []string {
	out := make([]string, 0)
	for _, w := range words {
		if c.IsViable(w) {
			out = append(out, w)
		}
	}
	return out
}
