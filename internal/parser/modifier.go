package parser

import (
	"solattr/internal/ast"
	"solattr/token"
)

// ParseModifier parses a modifier invocation: a path with an optional
// parenthesized argument list. Arguments are captured as raw tokens.
func ParseModifier(c *Cursor) (*ast.Modifier, error) {
	mark := c.Snapshot()

	name, err := ParsePath(c)
	if err != nil {
		return nil, err
	}
	m := &ast.Modifier{Name: name}
	if !c.Check(token.LEFT_PAREN) {
		return m, nil
	}

	group, err := c.OpenGroup()
	if err != nil {
		c.Restore(mark)
		return nil, err
	}
	args, err := parseTerminated(group.Content, parseRawArg)
	if err != nil {
		c.Restore(mark)
		return nil, err
	}

	m.Paren = &ast.Paren{Span: group.Span()}
	m.Args = args
	return m, nil
}

// parseRawArg takes every token up to the next top-level comma. Nested
// groups are copied whole, commas inside them included.
func parseRawArg(c *Cursor) (ast.RawArg, error) {
	var toks []token.Token
	for !c.IsAtEnd() && !c.Check(token.COMMA) {
		if !c.Peek().IsOpen() {
			toks = append(toks, c.Advance())
			continue
		}

		group, err := c.OpenGroup()
		if err != nil {
			return ast.RawArg{}, err
		}
		toks = append(toks, group.Open)
		toks = append(toks, group.Content.Rest()...)
		toks = append(toks, group.Close)
	}

	if len(toks) == 0 {
		return ast.RawArg{}, unexpected(c.Peek(), "argument")
	}
	return ast.RawArg{Tokens: toks}, nil
}
