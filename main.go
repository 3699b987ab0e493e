package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/helper/internal/cli"
)

func main() {
	_ = godotenv.Load()

	if err := cli.NewRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("wordle-helper failed")
		os.Exit(1)
	}
}
