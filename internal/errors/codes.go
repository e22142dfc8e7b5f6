package errors

// Error codes for the attribute parser.
// These codes are used in error messages and documentation
// to provide consistent error identification across the toolchain.
//
// Error code ranges:
// E0100-E0199: Parser errors
// E0200-E0299: Scanner errors
// E0300-E0399: Formatter errors
// E0800-E0899: Warning codes

const (
	// E0100: A keyword, path, or delimiter was expected but something else was found
	ErrorUnexpectedToken = "E0100"

	// E0101: An opening delimiter has no matching close
	ErrorUnclosedGroup = "E0101"

	// E0102: Input (or the enclosing group) ended where more was expected
	ErrorUnexpectedEnd = "E0102"

	// E0200: Input text could not be tokenized
	ErrorInvalidCharacter = "E0200"

	// E0300: Rewriting the source would lose a comment
	ErrorCommentDropped = "E0300"

	// E0800: The same attribute appears more than once in a list
	WarningRepeatedAttribute = "E0800"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorUnexpectedToken:
		return "Token does not fit the attribute grammar at this position"
	case ErrorUnclosedGroup:
		return "Parenthesized group is never closed"
	case ErrorUnexpectedEnd:
		return "Attribute ends before it is complete"
	case ErrorInvalidCharacter:
		return "Source text could not be tokenized"
	case ErrorCommentDropped:
		return "Formatting would remove a comment"
	case WarningRepeatedAttribute:
		return "Attribute is repeated"
	default:
		return "Unknown error code"
	}
}

// IsWarning returns true if the error code represents a warning rather than an error
func IsWarning(code string) bool {
	return code >= "E0800" && code < "E0900"
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0100" && code < "E0200":
		return "Parser"
	case code >= "E0200" && code < "E0300":
		return "Scanner"
	case code >= "E0300" && code < "E0400":
		return "Formatter"
	case code >= "E0800" && code < "E0900":
		return "Warning"
	default:
		return "Unknown"
	}
}
