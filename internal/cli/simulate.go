package cli

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/helper/internal/feedback"
)

func (a *app) newSimulateCmd() *cobra.Command {
	var answer string
	cmd := &cobra.Command{
		Use:   "simulate --answer WORD GUESS...",
		Short: "Score guesses against a known answer and list the remaining words",
		Long: `simulate replays a game: each guess is scored against --answer, the
feedback is turned into a scenario, and the words still possible are printed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if answer == "" {
				return errors.New("--answer is required")
			}
			sc, err := feedback.Replay(answer, args)
			if err != nil {
				return err
			}
			for _, g := range args {
				marks, _ := feedback.Score(g, answer)
				fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", g, feedback.Pattern(marks))
			}
			if doc, err := sc.Marshal(); err == nil {
				log.Debug().Str("scenario", string(doc)).Msg("replayed scenario")
			}
			return a.printCandidates(cmd.OutOrStdout(), sc)
		},
	}
	cmd.Flags().StringVar(&answer, "answer", "", "The word being guessed")
	addShuffleFlags(cmd)
	return cmd
}
