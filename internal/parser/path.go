package parser

import (
	"solattr/internal/ast"
	"solattr/token"
)

// ParsePath parses IDENT ('.' IDENT)*. Reserved words are not identifiers.
func ParsePath(c *Cursor) (ast.Path, error) {
	mark := c.Snapshot()

	first, err := c.Consume(token.IDENTIFIER, "identifier")
	if err != nil {
		return ast.Path{}, err
	}
	path := ast.Path{Segments: []ast.Ident{makeIdent(first)}}

	for c.Match(token.DOT) {
		seg, err := c.Consume(token.IDENTIFIER, "identifier")
		if err != nil {
			c.Restore(mark)
			return ast.Path{}, err
		}
		path.Segments = append(path.Segments, makeIdent(seg))
	}

	return path, nil
}

func makeIdent(tok token.Token) ast.Ident {
	return ast.Ident{Span: tok.Span, Value: tok.Lexeme}
}

// parseTerminated parses a comma-separated list filling the whole cursor.
// A trailing comma is accepted.
func parseTerminated[T any](c *Cursor, parse func(*Cursor) (T, error)) ([]T, error) {
	var items []T
	for !c.IsAtEnd() {
		item, err := parse(c)
		if err != nil {
			return nil, err
		}
		items = append(items, item)

		if c.IsAtEnd() {
			break
		}
		if _, err := c.Consume(token.COMMA, "','"); err != nil {
			return nil, err
		}
	}
	return items, nil
}
