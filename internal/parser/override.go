package parser

import (
	"solattr/internal/ast"
	"solattr/token"
)

// ParseOverride parses `override` with an optional parenthesized path list.
// "override()" keeps its parentheses.
func ParseOverride(c *Cursor) (*ast.Override, error) {
	mark := c.Snapshot()

	kw, err := c.ConsumeKeyword("override")
	if err != nil {
		return nil, err
	}
	o := &ast.Override{Keyword: ast.Keyword{Span: kw.Span}}
	if !c.Check(token.LEFT_PAREN) {
		return o, nil
	}

	group, err := c.OpenGroup()
	if err != nil {
		c.Restore(mark)
		return nil, err
	}
	paths, err := parseTerminated(group.Content, ParsePath)
	if err != nil {
		c.Restore(mark)
		return nil, err
	}

	o.Paren = &ast.Paren{Span: group.Span()}
	o.Paths = paths
	return o, nil
}
