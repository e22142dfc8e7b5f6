package errors

import (
	"fmt"
	"strings"

	"solattr/token"
)

// DiagnosticBuilder provides a fluent interface for creating diagnostics with suggestions
type DiagnosticBuilder struct {
	err CompilerError
}

// NewDiagnostic creates a new error builder anchored at span
func NewDiagnostic(code, message string, span token.Span) *DiagnosticBuilder {
	return &DiagnosticBuilder{
		err: CompilerError{
			Level:   Error,
			Code:    code,
			Message: message,
			Span:    span,
		},
	}
}

// NewWarning creates a new warning builder anchored at span
func NewWarning(code, message string, span token.Span) *DiagnosticBuilder {
	b := NewDiagnostic(code, message, span)
	b.err.Level = Warning
	return b
}

// WithSuggestion adds a suggestion to the error
func (b *DiagnosticBuilder) WithSuggestion(message string) *DiagnosticBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

// WithReplacement adds a suggestion with replacement text
func (b *DiagnosticBuilder) WithReplacement(message, replacement string, span token.Span) *DiagnosticBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{
		Message:     message,
		Replacement: replacement,
		Span:        span,
	})
	return b
}

// WithNote adds a note to the error
func (b *DiagnosticBuilder) WithNote(note string) *DiagnosticBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp adds help text to the error
func (b *DiagnosticBuilder) WithHelp(help string) *DiagnosticBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the completed compiler error
func (b *DiagnosticBuilder) Build() CompilerError {
	return b.err
}

// UnexpectedToken reports a token that does not fit the grammar. When the
// offending text is close to one of the accepted keywords, a fix is suggested.
func UnexpectedToken(message, found string, accepted []string, span token.Span) CompilerError {
	b := NewDiagnostic(ErrorUnexpectedToken, message, span)

	for _, name := range findSimilarNames(found, accepted) {
		b.WithReplacement(fmt.Sprintf("did you mean '%s'?", name), name, span)
	}
	if len(accepted) > 0 {
		b.WithNote("expected one of: " + strings.Join(accepted, ", "))
	}

	return b.Build()
}

// UnclosedGroup reports an opening delimiter with no matching close.
func UnclosedGroup(open string, span token.Span) CompilerError {
	closing := map[string]string{"(": ")", "[": "]", "{": "}"}[open]
	return NewDiagnostic(ErrorUnclosedGroup, fmt.Sprintf("unclosed delimiter '%s'", open), span).
		WithHelp(fmt.Sprintf("add '%s' to close the group", closing)).
		Build()
}

// UnexpectedEnd reports input that stops before the attribute is complete.
func UnexpectedEnd(message string, span token.Span) CompilerError {
	return NewDiagnostic(ErrorUnexpectedEnd, message, span).Build()
}

// InvalidCharacter reports text the scanner could not tokenize.
func InvalidCharacter(message string, span token.Span) CompilerError {
	return NewDiagnostic(ErrorInvalidCharacter, message, span).Build()
}

// CommentDropped reports a comment that a canonical rewrite would delete.
func CommentDropped(span token.Span) CompilerError {
	return NewDiagnostic(ErrorCommentDropped, "formatting would remove this comment", span).
		WithHelp("move the comment out of the attribute list, or format without -w").
		Build()
}

// RepeatedAttribute warns about an attribute that already appeared in the list.
func RepeatedAttribute(rendered string, span, first token.Span) CompilerError {
	return NewWarning(WarningRepeatedAttribute, fmt.Sprintf("attribute '%s' is repeated", rendered), span).
		WithNote(fmt.Sprintf("first used at %s", first)).
		Build()
}

// Helper functions

func findSimilarNames(target string, candidates []string) []string {
	var similar []string

	if target == "" {
		return similar
	}

	for _, candidate := range candidates {
		if candidate != target && levenshteinDistance(target, candidate) <= 2 && len(candidate) > 2 {
			similar = append(similar, candidate)
		}
	}

	return similar
}

// Simple Levenshtein distance implementation for finding similar names
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
	}

	for i := 0; i <= len(a); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(b); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(a)][len(b)]
}
