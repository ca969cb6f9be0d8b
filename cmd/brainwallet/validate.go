package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/brainwallet/pkg/phrase"
)

var validateCmd = &cobra.Command{
	Use:   "validate <phrase>",
	Short: "Check a passphrase against the corpus",
	Long:  "Check that the phrase consists of exactly N single-space-separated words, all present in the corpus.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger(cmd.Flags())
		n := orFatal(cmd.Flags().GetInt("words"))

		if err := phrase.Validate(args[0], n); err != nil {
			log.Debug("phrase rejected", "words", n, "err", err)
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "ok")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().IntP("words", "w", defaultWords(), "expected number of words in the phrase")
}
