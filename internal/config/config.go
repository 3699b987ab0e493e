// Package config resolves runtime settings from flags, the environment and
// an optional .env file, and configures the global logger.
package config

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Setting keys, shared by flags and viper.
const (
	KeyScenario  = "scenario"
	KeyWords     = "words"
	KeyLength    = "length"
	KeyLogLevel  = "log-level"
	KeyPort      = "port"
	KeySeed      = "seed"
	KeyNoShuffle = "no-shuffle"
)

// envNames maps setting keys to their environment variables.
var envNames = map[string]string{
	KeyScenario:  "SCENARIO_FILE",
	KeyWords:     "WORDS_FILE",
	KeyLength:    "WORD_LENGTH",
	KeyLogLevel:  "LOG_LEVEL",
	KeyPort:      "PORT",
	KeySeed:      "SHUFFLE_SEED",
	KeyNoShuffle: "NO_SHUFFLE",
}

// Config holds the resolved settings for one run.
type Config struct {
	ScenarioFile string // path to the scenario YAML
	WordsFile    string // path to the word list; empty selects the embedded list
	WordLength   int    // 0 infers the length from the scenario
	LogLevel     string
	Port         string
	Seed         uint64 // 0 picks a random shuffle
	NoShuffle    bool
}

// AddFlags registers the shared flags on fs.
func AddFlags(fs *pflag.FlagSet) {
	fs.String(KeyScenario, "scenario.yaml", "Scenario YAML file")
	fs.String(KeyWords, "", "Word list file, one word per line (default: embedded list)")
	fs.Int(KeyLength, 0, "Word length (default: inferred from the scenario)")
	fs.String(KeyLogLevel, "info", "Log level (debug, info, warn, error)")
}

// Bind connects every flag in fs and the known environment variables to v.
func Bind(v *viper.Viper, fs *pflag.FlagSet) error {
	if err := v.BindPFlags(fs); err != nil {
		return err
	}
	for key, env := range envNames {
		if err := v.BindEnv(key, env); err != nil {
			return err
		}
	}
	v.SetDefault(KeyScenario, "scenario.yaml")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyPort, "5175")
	return nil
}

// Load reads the resolved settings out of v.
func Load(v *viper.Viper) Config {
	return Config{
		ScenarioFile: v.GetString(KeyScenario),
		WordsFile:    v.GetString(KeyWords),
		WordLength:   v.GetInt(KeyLength),
		LogLevel:     v.GetString(KeyLogLevel),
		Port:         v.GetString(KeyPort),
		Seed:         v.GetUint64(KeySeed),
		NoShuffle:    v.GetBool(KeyNoShuffle),
	}
}

// SetupLogging sets the global zerolog level and writes human readable
// logs to w. Unknown levels fall back to info.
func SetupLogging(level string, w io.Writer) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	if w == nil {
		w = os.Stderr
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, NoColor: true})
	if err != nil && level != "" {
		log.Warn().Str("level", level).Msg("unknown log level, using info")
	}
}
