package constraint

// DeriveKnownLetters returns every letter confirmed present in the answer:
// the filled slots of knownPositions plus everything in
// knownButNotInPositions.
func DeriveKnownLetters(knownPositions Positions, knownButNotInPositions []LetterSet) LetterSet {
	known := knownPositions.Letters()
	for _, letters := range knownButNotInPositions {
		known = known.Union(letters)
	}
	return known
}

// DeriveMisses returns the guessed letters that are neither known letters
// nor placed in any slot of knownPositions.
//
// knownPositions is treated as a flat set, not per index. A letter that is
// green somewhere is therefore never a miss even when a second copy of it
// was gray in the same guess.
func DeriveMisses(guesses []string, knownLetters LetterSet, knownPositions Positions) LetterSet {
	placed := knownPositions.Letters()
	var misses LetterSet
	for _, g := range guesses {
		for i := 0; i < len(g); i++ {
			c := g[i]
			if knownLetters.Has(c) || placed.Has(c) {
				continue
			}
			misses = misses.Add(c)
		}
	}
	return misses
}
