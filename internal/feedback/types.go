// internal/feedback/types.go
//
// Per-letter feedback for a guess, as a Wordle board shows it.

package feedback

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "hit":     letter is correct and in the correct position (green).
//   - "present": letter exists in the answer but elsewhere (yellow).
//   - "miss":    letter does not exist in the answer at all (gray).
type Mark string

const (
	MarkHit     Mark = "hit"
	MarkPresent Mark = "present"
	MarkMiss    Mark = "miss"
)

// Symbol returns a one-character rendering of m: G, Y or '.'.
func (m Mark) Symbol() byte {
	switch m {
	case MarkHit:
		return 'G'
	case MarkPresent:
		return 'Y'
	default:
		return '.'
	}
}

// Pattern renders marks as a compact string such as "G.Y..".
func Pattern(marks []Mark) string {
	b := make([]byte, len(marks))
	for i, m := range marks {
		b[i] = m.Symbol()
	}
	return string(b)
}
