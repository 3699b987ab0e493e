package constraint

import "math/bits"

// LetterSet is a set of lowercase ASCII letters, one bit per letter.
// Bytes outside 'a'..'z' are never members.
type LetterSet uint32

// LettersOf returns the set of letters appearing in s.
func LettersOf(s string) LetterSet {
	var set LetterSet
	for i := 0; i < len(s); i++ {
		set = set.Add(s[i])
	}
	return set
}

// Add returns the set with c added.
func (s LetterSet) Add(c byte) LetterSet {
	if !IsLetter(c) {
		return s
	}
	return s | 1<<(c-'a')
}

// Has reports whether c is in the set.
func (s LetterSet) Has(c byte) bool {
	return IsLetter(c) && s&(1<<(c-'a')) != 0
}

// Union returns the letters in either set.
func (s LetterSet) Union(other LetterSet) LetterSet { return s | other }

// Contains reports whether every letter of other is in s.
func (s LetterSet) Contains(other LetterSet) bool { return s&other == other }

// Len returns the number of letters in the set.
func (s LetterSet) Len() int { return bits.OnesCount32(uint32(s)) }

// IsEmpty reports whether the set has no letters.
func (s LetterSet) IsEmpty() bool { return s == 0 }

// Letters returns the members in alphabetical order.
func (s LetterSet) Letters() []byte {
	out := make([]byte, 0, s.Len())
	for c := byte('a'); c <= 'z'; c++ {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// String renders the set as its sorted letters, e.g. "aer".
func (s LetterSet) String() string { return string(s.Letters()) }

// IsLetter reports whether c is a lowercase ASCII letter.
func IsLetter(c byte) bool { return c >= 'a' && c <= 'z' }
