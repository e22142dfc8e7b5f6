package parser

import (
	"errors"
	"fmt"
	"strings"

	"solattr/token"
)

// ParseError is the single failure kind of the attribute parser. Parsing
// stops at the first one; recovery is up to the caller.
type ParseError struct {
	Code    string
	Message string
	Span    token.Span

	// Expected lists the accepted alternatives, when there is a fixed set.
	Expected []string
	// Found describes the offending token.
	Found string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Span, e.Message)
}

// ScanError is raised when the source cannot be tokenized.
type ScanError struct {
	Message string
	Span    token.Span
}

func (e ScanError) Error() string {
	return fmt.Sprintf("%s: %s", e.Span, e.Message)
}

func unexpected(tok token.Token, expected ...string) *ParseError {
	code := codeUnexpectedToken
	if tok.Type == token.EOF {
		code = codeUnexpectedEnd
	}
	return &ParseError{
		Code:     code,
		Message:  fmt.Sprintf("expected %s, found %s", describeExpected(expected), tok.Describe()),
		Span:     tok.Span,
		Expected: expected,
		Found:    tok.Lexeme,
	}
}

func unclosed(open token.Token) *ParseError {
	return &ParseError{
		Code:    codeUnclosedGroup,
		Message: fmt.Sprintf("unclosed delimiter '%s'", open.Lexeme),
		Span:    open.Span,
		Found:   open.Lexeme,
	}
}

func mismatched(open, closing token.Token) *ParseError {
	return &ParseError{
		Code:    codeUnexpectedToken,
		Message: fmt.Sprintf("mismatched closing delimiter '%s' for '%s' at %s", closing.Lexeme, open.Lexeme, open.Span),
		Span:    closing.Span,
		Found:   closing.Lexeme,
	}
}

func describeExpected(expected []string) string {
	switch len(expected) {
	case 0:
		return "attribute"
	case 1:
		return expected[0]
	default:
		return "one of " + strings.Join(expected, ", ")
	}
}

// IsUnexpectedToken reports whether err is a ParseError for a token (or end
// of input) that does not fit the grammar.
func IsUnexpectedToken(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe) && (pe.Code == codeUnexpectedToken || pe.Code == codeUnexpectedEnd)
}

// IsUnclosedGroup reports whether err is a ParseError for an unterminated group.
func IsUnclosedGroup(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Code == codeUnclosedGroup
}
