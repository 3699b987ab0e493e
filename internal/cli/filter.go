package cli

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/helper/internal/constraint"
	"github.com/robalobadob/wordle/apps/helper/internal/scenario"
	"github.com/robalobadob/wordle/apps/helper/internal/words"
)

func (a *app) newFilterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Print every word consistent with the scenario file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runFilter(cmd)
		},
	}
	addShuffleFlags(cmd)
	return cmd
}

func (a *app) runFilter(cmd *cobra.Command) error {
	sc, err := scenario.Load(a.cfg.ScenarioFile)
	if err != nil {
		return err
	}
	return a.printCandidates(cmd.OutOrStdout(), sc)
}

// printCandidates derives the constraints for sc, loads the dictionary and
// writes every viable word to out, one per line.
func (a *app) printCandidates(out io.Writer, sc *scenario.Scenario) error {
	length := sc.Length(a.cfg.WordLength)
	c, err := sc.Constraints(length)
	if err != nil {
		return err
	}

	list, err := words.Load(a.cfg.WordsFile, length)
	if err != nil {
		return err
	}
	if !a.cfg.NoShuffle {
		var rng *rand.Rand
		if a.cfg.Seed != 0 {
			rng = words.NewRand(a.cfg.Seed)
		}
		list = words.Shuffled(list, rng)
	}

	viable := constraint.Filter(list, c)
	for _, w := range viable {
		if _, err := fmt.Fprintln(out, w); err != nil {
			return fmt.Errorf("write candidates: %w", err)
		}
	}
	log.Info().
		Int("words", len(list)).
		Int("candidates", len(viable)).
		Stringer("knownLetters", c.KnownLetters()).
		Stringer("misses", c.Misses()).
		Msg("filter complete")
	return nil
}
