// Package cli provides the wordle-helper command line entry points.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/robalobadob/wordle/apps/helper/internal/config"
)

// Version is set at build time with -ldflags.
var Version = "dev"

// app carries the settings shared by every subcommand.
type app struct {
	v   *viper.Viper
	cfg config.Config
}

// NewRootCmd creates the root command. Running it without a subcommand
// filters the dictionary, same as "filter".
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:               "wordle-helper",
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Short:             "List the words still possible in a Wordle game",
		Long: `wordle-helper reads what you know about today's word from a scenario file
and prints every dictionary word that is still consistent with it.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.Bind(a.v, cmd.Flags()); err != nil {
				return err
			}
			a.cfg = config.Load(a.v)
			config.SetupLogging(a.cfg.LogLevel, cmd.ErrOrStderr())
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runFilter(cmd)
		},
	}

	config.AddFlags(rootCmd.PersistentFlags())
	addShuffleFlags(rootCmd)

	rootCmd.AddCommand(a.newFilterCmd())
	rootCmd.AddCommand(a.newSimulateCmd())
	rootCmd.AddCommand(a.newServeCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func addShuffleFlags(cmd *cobra.Command) {
	cmd.Flags().Uint64(config.KeySeed, 0, "Seed for the output order (default: random)")
	cmd.Flags().Bool(config.KeyNoShuffle, false, "Print words in dictionary order")
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println("wordle-helper " + Version)
		},
	}
}
