package errors

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"solattr/token"
)

// ErrorLevel represents the severity of an error
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
	Note    ErrorLevel = "note"
	Help    ErrorLevel = "help"
)

// CompilerError represents a structured error with suggestions and context
type CompilerError struct {
	Level       ErrorLevel
	Code        string       // Error code like E0100
	Message     string       // Primary error message
	Span        token.Span   // Location in source
	Suggestions []Suggestion // Suggested fixes
	Notes       []string     // Additional context notes
	HelpText    string       // Help text for the error
}

func (e CompilerError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s[%s]: %s", e.Span, e.Level, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Span, e.Level, e.Message)
}

// Suggestion represents a suggested fix
type Suggestion struct {
	Message     string     // Description of the suggestion
	Replacement string     // Suggested replacement text (optional)
	Span        token.Span // Region the replacement applies to (optional)
}

// ErrorReporter handles consistent error formatting and suggestions
type ErrorReporter struct {
	filename string
	source   string
	lines    []string
}

// NewErrorReporter creates a new error reporter for a file
func NewErrorReporter(filename, source string) *ErrorReporter {
	return &ErrorReporter{
		filename: filename,
		source:   source,
		lines:    strings.Split(source, "\n"),
	}
}

// maxExcerptLines bounds the source lines shown for a multi-line span.
const maxExcerptLines = 4

// FormatError renders a diagnostic with the source lines its span covers,
// each underlined over the covered columns, followed by suggestions anchored
// at their own spans.
func (er *ErrorReporter) FormatError(err CompilerError) string {
	var b strings.Builder

	style := levelStyle(err.Level)
	dim := color.New(color.Faint).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	start, end := err.Span.Start, err.Span.End
	if end.Line < start.Line {
		end = start
	}
	gutter := gutterWidth(end.Line)
	pad := strings.Repeat(" ", gutter)
	bar := dim("│")

	if err.Code != "" {
		fmt.Fprintf(&b, "%s[%s]: %s\n", style.Sprint(string(err.Level)), err.Code, err.Message)
	} else {
		fmt.Fprintf(&b, "%s: %s\n", style.Sprint(string(err.Level)), err.Message)
	}
	fmt.Fprintf(&b, "%s %s %s:%d:%d\n", pad, dim("-->"), er.filename, start.Line, start.Column)
	fmt.Fprintf(&b, "%s %s\n", pad, bar)

	if text, ok := er.line(start.Line - 1); ok {
		fmt.Fprintf(&b, "%s %s %s\n", dim(fmt.Sprintf("%*d", gutter, start.Line-1)), bar, text)
	}

	if start.Line >= 1 {
		for _, n := range excerpt(start.Line, end.Line) {
			if n == 0 {
				fmt.Fprintf(&b, "%s %s\n", dim(fmt.Sprintf("%*s", gutter, "...")), bar)
				continue
			}
			text, ok := er.line(n)
			if !ok {
				break
			}
			from, to := start.Column, end.Column
			if n > start.Line {
				from = 1
			}
			if n < end.Line {
				to = len(text) + 1
			}
			fmt.Fprintf(&b, "%s %s %s\n", bold(fmt.Sprintf("%*d", gutter, n)), bar, text)
			fmt.Fprintf(&b, "%s %s %s\n", pad, bar, er.createMarker(from, to-from, err.Level))
		}

		if text, ok := er.line(end.Line + 1); ok {
			fmt.Fprintf(&b, "%s %s %s\n", dim(fmt.Sprintf("%*d", gutter, end.Line+1)), bar, text)
		}
	}

	if len(err.Suggestions) > 0 {
		fmt.Fprintf(&b, "%s %s\n", pad, bar)
	}
	cyan := color.New(color.FgCyan).SprintFunc()
	for i, sug := range err.Suggestions {
		if i == 0 {
			fmt.Fprintf(&b, "%s %s: %s\n", pad, cyan("help"), sug.Message)
		} else {
			fmt.Fprintf(&b, "%s %s %s\n", pad, cyan("    "), sug.Message)
		}
		if sug.Replacement == "" {
			continue
		}
		if patched, col, ok := er.apply(sug); ok {
			fmt.Fprintf(&b, "%s %s %s\n", pad, bar, patched)
			fmt.Fprintf(&b, "%s %s %s%s\n", pad, bar, strings.Repeat(" ", col-1), cyan(strings.Repeat("+", max(1, len(sug.Replacement)))))
			continue
		}
		replacement := strings.ReplaceAll(sug.Replacement, "\n", fmt.Sprintf("\n%s %s ", pad, bar))
		fmt.Fprintf(&b, "%s %s %s\n", pad, cyan("│"), cyan(replacement))
	}

	blue := color.New(color.FgBlue).SprintFunc()
	for _, note := range err.Notes {
		fmt.Fprintf(&b, "%s %s %s %s\n", pad, bar, blue("note:"), note)
	}
	if err.HelpText != "" {
		green := color.New(color.FgGreen).SprintFunc()
		fmt.Fprintf(&b, "%s %s %s %s\n", pad, bar, green("help:"), err.HelpText)
	}

	b.WriteString("\n")
	return b.String()
}

// line returns the 1-based source line n.
func (er *ErrorReporter) line(n int) (string, bool) {
	if n < 1 || n > len(er.lines) {
		return "", false
	}
	return strings.TrimSuffix(er.lines[n-1], "\r"), true
}

// apply splices a suggestion's replacement into the line its span sits on.
// It returns the patched line and the column the replacement starts at.
func (er *ErrorReporter) apply(sug Suggestion) (string, int, bool) {
	start, end := sug.Span.Start, sug.Span.End
	if sug.Span.IsZero() || start.Line != end.Line {
		return "", 0, false
	}
	text, ok := er.line(start.Line)
	if !ok || start.Column < 1 || end.Column < start.Column || end.Column-1 > len(text) {
		return "", 0, false
	}
	return text[:start.Column-1] + sug.Replacement + text[end.Column-1:], start.Column, true
}

// excerpt lists the line numbers to print for a span from first to last.
// Long spans keep their head and last line; a 0 marks the elided gap.
func excerpt(first, last int) []int {
	var lines []int
	if last-first+1 <= maxExcerptLines {
		for n := first; n <= last; n++ {
			lines = append(lines, n)
		}
		return lines
	}
	for n := first; n < first+maxExcerptLines-1; n++ {
		lines = append(lines, n)
	}
	return append(lines, 0, last)
}

func levelStyle(level ErrorLevel) *color.Color {
	switch level {
	case Warning:
		return color.New(color.FgYellow, color.Bold)
	case Note:
		return color.New(color.FgBlue, color.Bold)
	case Help:
		return color.New(color.FgGreen, color.Bold)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}

// createMarker underlines length columns starting at column.
func (er *ErrorReporter) createMarker(column, length int, level ErrorLevel) string {
	spaces := strings.Repeat(" ", max(0, column-1))
	return spaces + levelStyle(level).Sprint(strings.Repeat("^", max(1, length)))
}

func gutterWidth(line int) int {
	return max(3, len(strconv.Itoa(line)))
}
