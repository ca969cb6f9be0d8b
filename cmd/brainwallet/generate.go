package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/brainwallet/pkg/phrase"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print a random passphrase",
	Long:  "Print a passphrase of N words drawn uniformly at random from the corpus.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger(cmd.Flags())
		n := orFatal(cmd.Flags().GetInt("words"))

		p, err := phrase.Generate(n)
		if err != nil {
			return err
		}
		log.Debug("phrase generated", "words", n)
		fmt.Fprintln(cmd.OutOrStdout(), p)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().IntP("words", "w", defaultWords(), "number of words in the phrase")
}
