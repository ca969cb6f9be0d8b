package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dmitrymomot/brainwallet/pkg/config"
	"github.com/dmitrymomot/brainwallet/pkg/logger"
)

// cliConfig carries environment defaults for flag values.
type cliConfig struct {
	Words int `env:"BRAINWALLET_WORDS" envDefault:"12"`
}

var rootCmd = &cobra.Command{
	Use:          "brainwallet",
	Short:        "Generate and validate brain wallet passphrases",
	Long:         "Generates human-memorable passphrases from a fixed 1024-word corpus and validates candidate phrases against it.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Bool("json", false, "emit logs in JSON")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "emit debug logs")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func defaultWords() int {
	var cfg cliConfig
	config.MustLoad(&cfg)
	return cfg.Words
}

func newLogger(flags *pflag.FlagSet) *slog.Logger {
	var opts []logger.Option
	if orFatal(flags.GetBool("verbose")) {
		opts = append(opts, logger.WithLevel(slog.LevelDebug))
	}
	if orFatal(flags.GetBool("json")) {
		opts = append(opts, logger.WithFormat(logger.FormatJSON))
	}
	return logger.New(opts...)
}

func orFatal[T any](val T, err error) T {
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	return val
}
