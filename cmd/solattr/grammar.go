package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"solattr/grammar"
)

var grammarCmd = &cobra.Command{
	Use:   "grammar",
	Short: "Print the attribute grammar in EBNF",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), grammar.EBNF())
	},
}
