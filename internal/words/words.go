// internal/words/words.go
//
// Dictionary loading for the candidate filter.
//
// Responsibilities:
//   - Load a newline-delimited word list from a file, or fall back to the
//     embedded default list in the assets package.
//   - Normalize entries (trim, lowercase) and keep only words of the
//     requested length made of letters a–z.
//   - Provide Shuffled, which returns a shuffled copy for display variety.
//
// Loaded lists are never mutated; callers pass them around explicitly.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/helper/assets"
	"github.com/robalobadob/wordle/apps/helper/internal/constraint"
)

// ErrEmpty is returned when no usable word survives loading.
var ErrEmpty = errors.New("words: list is empty")

// Load returns the words of the given length from path. An empty path
// selects the embedded default dictionary.
func Load(path string, length int) ([]string, error) {
	if path == "" {
		raw, err := assets.WordList()
		if err != nil {
			return nil, fmt.Errorf("read embedded words: %w", err)
		}
		out := keep(raw, length)
		log.Debug().Int("words", len(out)).Msg("loaded embedded word list")
		return nonEmpty(out)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	out, err := Read(f, length)
	if err != nil {
		return nil, fmt.Errorf("read word list %s: %w", path, err)
	}
	log.Debug().Str("path", path).Int("words", len(out)).Msg("loaded word list")
	return nonEmpty(out)
}

// Read scans one word per line from r, skipping blanks, '#' comments and
// entries that are not length letters a–z.
func Read(r io.Reader, length int) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if w, ok := normalize(line, length); ok {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// keep filters an already split list down to valid words.
func keep(list []string, length int) []string {
	out := make([]string, 0, len(list))
	for _, line := range list {
		if w, ok := normalize(line, length); ok {
			out = append(out, w)
		}
	}
	return out
}

// normalize lowercases and trims line and reports whether it is a word
// the filter can evaluate.
func normalize(line string, length int) (string, bool) {
	w := strings.TrimSpace(strings.ToLower(line))
	if w == "" || strings.HasPrefix(w, "#") {
		return "", false
	}
	if len(w) != length || !isAlpha(w) {
		log.Debug().Str("word", w).Int("length", length).Msg("skipping word")
		return "", false
	}
	return w, true
}

func nonEmpty(list []string) ([]string, error) {
	if len(list) == 0 {
		return nil, ErrEmpty
	}
	return list, nil
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if !constraint.IsLetter(s[i]) {
			return false
		}
	}
	return true
}

// Shuffled returns a shuffled copy of list. A nil rng uses the
// auto-seeded global source.
func Shuffled(list []string, rng *rand.Rand) []string {
	out := append([]string(nil), list...)
	swap := func(i, j int) { out[i], out[j] = out[j], out[i] }
	if rng == nil {
		rand.Shuffle(len(out), swap)
	} else {
		rng.Shuffle(len(out), swap)
	}
	return out
}

// NewRand returns a deterministic source for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
