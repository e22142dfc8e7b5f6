package parser

import "solattr/internal/errors"

const (
	codeUnexpectedToken = errors.ErrorUnexpectedToken
	codeUnclosedGroup   = errors.ErrorUnclosedGroup
	codeUnexpectedEnd   = errors.ErrorUnexpectedEnd
)

// Diagnostic converts the error into a reportable compiler error.
func (e *ParseError) Diagnostic() errors.CompilerError {
	switch e.Code {
	case codeUnclosedGroup:
		return errors.UnclosedGroup(e.Found, e.Span)
	case codeUnexpectedEnd:
		return errors.UnexpectedEnd(e.Message, e.Span)
	default:
		return errors.UnexpectedToken(e.Message, e.Found, e.Expected, e.Span)
	}
}

func (e ScanError) Diagnostic() errors.CompilerError {
	return errors.InvalidCharacter(e.Message, e.Span)
}
