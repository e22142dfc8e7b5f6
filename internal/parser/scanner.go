package parser

import (
	"errors"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"solattr/grammar"
	"solattr/token"
)

type Scanner struct {
	filename string
	source   string
	tokens   []token.Token
	comments []token.Span
	errors   []ScanError
}

var (
	symbolNames = func() map[lexer.TokenType]string {
		names := make(map[lexer.TokenType]string)
		for name, tt := range grammar.SolidityLexer.Symbols() {
			names[tt] = name
		}
		return names
	}()

	punctuation = map[string]token.TokenType{
		"(": token.LEFT_PAREN,
		")": token.RIGHT_PAREN,
		"[": token.LEFT_BRACKET,
		"]": token.RIGHT_BRACKET,
		"{": token.LEFT_BRACE,
		"}": token.RIGHT_BRACE,
		",": token.COMMA,
		".": token.DOT,
	}
)

func NewScanner(filename, source string) *Scanner {
	return &Scanner{filename: filename, source: source}
}

// ScanTokens lexes the whole source, dropping whitespace and comments. The
// result always ends with an EOF token; on a lexing failure the EOF sits at
// the failure point and the failure is recorded in Errors.
func (s *Scanner) ScanTokens() []token.Token {
	lex, err := grammar.SolidityLexer.LexString(s.filename, s.source)
	if err != nil {
		s.fail(err, lexer.Position{Filename: s.filename, Line: 1, Column: 1})
		return s.tokens
	}

	for {
		tok, err := lex.Next()
		if err != nil {
			s.fail(err, s.endPosition())
			return s.tokens
		}
		if tok.EOF() {
			s.tokens = append(s.tokens, token.Token{
				Type: token.EOF,
				Span: token.Point(s.filename, convertPosition(tok.Pos)),
			})
			return s.tokens
		}

		switch symbolNames[tok.Type] {
		case "Whitespace":
			continue
		case "Comment":
			s.comments = append(s.comments, s.convert(tok).Span)
			continue
		}
		s.tokens = append(s.tokens, s.convert(tok))
	}
}

func (s *Scanner) Errors() []ScanError {
	return s.errors
}

// Comments returns the spans of the comments dropped from the token stream.
func (s *Scanner) Comments() []token.Span {
	return s.comments
}

func (s *Scanner) convert(tok lexer.Token) token.Token {
	start := convertPosition(tok.Pos)
	end := start
	end.Offset += len(tok.Value)
	if nl := strings.LastIndexByte(tok.Value, '\n'); nl >= 0 {
		end.Line += strings.Count(tok.Value, "\n")
		end.Column = len(tok.Value) - nl
	} else {
		end.Column += len(tok.Value)
	}

	return token.Token{
		Type:   s.classify(tok),
		Lexeme: tok.Value,
		Span:   token.Span{Filename: s.filename, Start: start, End: end},
	}
}

func (s *Scanner) classify(tok lexer.Token) token.TokenType {
	switch symbolNames[tok.Type] {
	case "Ident":
		if token.LookupKeyword(tok.Value) {
			return token.KEYWORD
		}
		return token.IDENTIFIER
	case "Number":
		return token.NUMBER
	case "String":
		return token.STRING
	case "Operator":
		return token.OPERATOR
	case "Punct":
		if tt, ok := punctuation[tok.Value]; ok {
			return tt
		}
	}
	return token.ILLEGAL
}

func (s *Scanner) fail(err error, at lexer.Position) {
	pos := at
	message := err.Error()
	var lexErr *lexer.Error
	if errors.As(err, &lexErr) {
		pos = lexErr.Pos
		message = lexErr.Msg
	}

	pt := token.Point(s.filename, convertPosition(pos))
	s.errors = append(s.errors, ScanError{Message: message, Span: pt})
	s.tokens = append(s.tokens, token.Token{Type: token.EOF, Span: pt})
}

func (s *Scanner) endPosition() lexer.Position {
	if n := len(s.tokens); n > 0 {
		end := s.tokens[n-1].Span.End
		return lexer.Position{Filename: s.filename, Offset: end.Offset, Line: end.Line, Column: end.Column}
	}
	return lexer.Position{Filename: s.filename, Line: 1, Column: 1}
}

func convertPosition(pos lexer.Position) token.Position {
	return token.Position{Offset: pos.Offset, Line: pos.Line, Column: pos.Column}
}

// Tokenize scans source and returns its tokens together with any scan errors.
func Tokenize(filename, source string) ([]token.Token, []ScanError) {
	s := NewScanner(filename, source)
	tokens := s.ScanTokens()
	return tokens, s.Errors()
}
