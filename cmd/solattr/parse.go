package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"solattr/internal/driver"
	"solattr/internal/errors"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file|url>...",
	Short: "Parse attribute lists and print them",
	Long:  `Parse reads each source as a whitespace-separated attribute list and prints the parsed attributes in the configured format`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file|url>...",
	Short: "Report parse errors and repeated attributes",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	for _, cmd := range []*cobra.Command{parseCmd, checkCmd} {
		cmd.Flags().String("format", "text", "output format (text|debug|yaml|msgpack)")
		cmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	}
}

func runParse(cmd *cobra.Command, args []string) error {
	start := time.Now()

	results, err := driver.New().ParseFiles(cmd.Context(), args, cfg.Parse.Jobs)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	failed := 0
	for _, res := range results {
		if reportErrors(os.Stderr, res) {
			failed++
			continue
		}
		if err := writeNodes(os.Stdout, cfg.Output.Format, res.Nodes); err != nil {
			return err
		}
	}

	return summarize(failed, len(results), time.Since(start))
}

func runCheck(cmd *cobra.Command, args []string) error {
	start := time.Now()

	results, err := driver.New().ParseFiles(cmd.Context(), args, cfg.Parse.Jobs)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	failed := 0
	for _, res := range results {
		if reportErrors(os.Stderr, res) {
			failed++
			continue
		}
		reporter := errors.NewErrorReporter(res.URL, res.Source)
		for _, r := range driver.Dedupe(res.Nodes) {
			fmt.Fprint(os.Stderr, reporter.FormatError(errors.RepeatedAttribute(r.Node.String(), r.Node.Span(), r.First.Span())))
		}
	}

	return summarize(failed, len(results), time.Since(start))
}

// reportErrors prints the diagnostics of res and reports whether there were any.
func reportErrors(w io.Writer, res *driver.Result) bool {
	reporter := errors.NewErrorReporter(res.URL, res.Source)
	for _, e := range res.ScanErrors {
		fmt.Fprint(w, reporter.FormatError(e.Diagnostic()))
	}
	for i := range res.ParseErrors {
		fmt.Fprint(w, reporter.FormatError(res.ParseErrors[i].Diagnostic()))
	}
	return res.Failed()
}

func summarize(failed, total int, elapsed time.Duration) error {
	if failed > 0 {
		color.Red("%d of %d sources failed after %s", failed, total, formatDuration(elapsed))
		return fmt.Errorf("%d sources failed", failed)
	}
	color.Green("Successfully processed %d sources in %s", total, formatDuration(elapsed))
	return nil
}
