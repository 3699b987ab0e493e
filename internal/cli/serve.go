package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/helper/internal/config"
	"github.com/robalobadob/wordle/apps/helper/internal/constraint"
	"github.com/robalobadob/wordle/apps/helper/internal/httpserver"
	"github.com/robalobadob/wordle/apps/helper/internal/words"
)

func (a *app) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the candidate filter over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			length := a.cfg.WordLength
			if length <= 0 {
				length = constraint.DefaultLength
			}
			list, err := words.Load(a.cfg.WordsFile, length)
			if err != nil {
				return err
			}

			srv := httpserver.New(list, length)
			log.Info().Str("port", a.cfg.Port).Int("words", len(list)).Msg("starting wordle-helper server")
			return srv.Start(":" + a.cfg.Port)
		},
	}
	cmd.Flags().String(config.KeyPort, "5175", "Port to listen on")
	return cmd
}
