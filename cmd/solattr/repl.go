package main

import (
	"os"

	"github.com/spf13/cobra"

	"solattr/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Parse attribute lists typed on standard input",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return repl.Start(os.Stdin, cmd.OutOrStdout())
	},
}
