package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"solattr/internal/driver"
	"solattr/internal/errors"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] <file|url>...",
	Short: "Rewrite attribute lists in canonical form",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

func init() {
	fmtCmd.Flags().BoolP("write", "w", false, "write the result back to the source")
}

func runFmt(cmd *cobra.Command, args []string) error {
	write, err := cmd.Flags().GetBool("write")
	if err != nil {
		return err
	}

	d := driver.New()
	results, err := d.ParseFiles(cmd.Context(), args, cfg.Parse.Jobs)
	if err != nil {
		return fmt.Errorf("formatting failed: %w", err)
	}

	failed := 0
	for _, res := range results {
		if reportErrors(os.Stderr, res) {
			failed++
			continue
		}
		formatted := render(res.Nodes) + "\n"
		if !write {
			fmt.Print(formatted)
			continue
		}
		if formatted == res.Source {
			continue
		}
		if lost := droppedComments(res); len(lost) > 0 {
			reporter := errors.NewErrorReporter(res.URL, res.Source)
			for _, e := range lost {
				fmt.Fprint(os.Stderr, reporter.FormatError(e))
			}
			failed++
			continue
		}
		if err := d.Store(cmd.Context(), res.URL, formatted); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d sources failed", failed)
	}
	return nil
}

// droppedComments lists the comments of res that a rewrite from the
// canonical form would delete. Such sources are never overwritten.
func droppedComments(res *driver.Result) []errors.CompilerError {
	var lost []errors.CompilerError
	for _, span := range res.Comments {
		lost = append(lost, errors.CommentDropped(span))
	}
	return lost
}
