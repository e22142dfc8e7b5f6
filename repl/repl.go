// SPDX-License-Identifier: Apache-2.0

// Package repl reads attribute lists line by line and echoes what was parsed.
package repl

import (
	"bufio"
	"fmt"
	"io"

	"solattr/internal/errors"
	"solattr/internal/parser"
)

const PROMPT = ">> "

// Start runs the loop until in is exhausted.
func Start(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	for line := 1; ; line++ {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		Eval(out, fmt.Sprintf("<repl:%d>", line), scanner.Text())
	}
}

// Eval parses one line and prints each attribute's canonical and debug form,
// or the formatted diagnostics.
func Eval(out io.Writer, name, src string) {
	nodes, parseErrors, scanErrors := parser.ParseSource(name, src)

	reporter := errors.NewErrorReporter(name, src)
	for _, e := range scanErrors {
		fmt.Fprint(out, reporter.FormatError(e.Diagnostic()))
	}
	for i := range parseErrors {
		fmt.Fprint(out, reporter.FormatError(parseErrors[i].Diagnostic()))
	}
	if len(scanErrors) > 0 || len(parseErrors) > 0 {
		return
	}

	for _, n := range nodes {
		fmt.Fprintf(out, "%s\t%s\n", n.String(), n.Debug())
	}
}
