// SPDX-License-Identifier: Apache-2.0

// Package token defines the lexical tokens and source spans shared by the
// attribute parser and the AST.
package token

type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF

	// Identifiers + literals
	IDENTIFIER
	KEYWORD
	NUMBER
	STRING

	// Anything else that is not a delimiter
	OPERATOR

	// Brackets
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_BRACKET
	RIGHT_BRACKET
	LEFT_BRACE
	RIGHT_BRACE

	// Separators
	COMMA
	DOT
)

var tokenTypeNames = map[TokenType]string{
	ILLEGAL:       "illegal token",
	EOF:           "end of input",
	IDENTIFIER:    "identifier",
	KEYWORD:       "keyword",
	NUMBER:        "number",
	STRING:        "string",
	OPERATOR:      "operator",
	LEFT_PAREN:    "'('",
	RIGHT_PAREN:   "')'",
	LEFT_BRACKET:  "'['",
	RIGHT_BRACKET: "']'",
	LEFT_BRACE:    "'{'",
	RIGHT_BRACE:   "'}'",
	COMMA:         "','",
	DOT:           "'.'",
}

func (tt TokenType) String() string {
	if name, ok := tokenTypeNames[tt]; ok {
		return name
	}
	return "unknown token"
}

type Token struct {
	Type   TokenType
	Lexeme string
	Span   Span
}

// IsKeyword reports whether the token is the reserved word text.
func (t Token) IsKeyword(text string) bool {
	return t.Type == KEYWORD && t.Lexeme == text
}

// IsOpen reports whether the token opens a delimited group.
func (t Token) IsOpen() bool {
	switch t.Type {
	case LEFT_PAREN, LEFT_BRACKET, LEFT_BRACE:
		return true
	default:
		return false
	}
}

// IsClose reports whether the token closes a delimited group.
func (t Token) IsClose() bool {
	switch t.Type {
	case RIGHT_PAREN, RIGHT_BRACKET, RIGHT_BRACE:
		return true
	default:
		return false
	}
}

// Closes reports whether t is the closing delimiter matching open.
func (t Token) Closes(open Token) bool {
	switch open.Type {
	case LEFT_PAREN:
		return t.Type == RIGHT_PAREN
	case LEFT_BRACKET:
		return t.Type == RIGHT_BRACKET
	case LEFT_BRACE:
		return t.Type == RIGHT_BRACE
	default:
		return false
	}
}

// Describe renders the token for diagnostics, e.g. "identifier 'foo'".
func (t Token) Describe() string {
	switch t.Type {
	case EOF:
		return t.Type.String()
	case IDENTIFIER, KEYWORD, NUMBER, STRING, OPERATOR, ILLEGAL:
		return t.Type.String() + " '" + t.Lexeme + "'"
	default:
		return t.Type.String()
	}
}
