package parser

import "solattr/internal/ast"

// parseKeywordAttr tries each keyword of a closed set in order; the first
// match is consumed. On failure nothing is consumed and the error names the
// whole set.
func parseKeywordAttr[K ast.KeywordKind](c *Cursor, kinds []K) (*ast.KeywordAttr[K], error) {
	for _, kind := range kinds {
		if c.CheckKeyword(kind.String()) {
			tok := c.Advance()
			return ast.NewKeywordAttr(kind, tok.Span), nil
		}
	}

	expected := make([]string, len(kinds))
	for i, kind := range kinds {
		expected[i] = kind.String()
	}
	return nil, unexpected(c.Peek(), expected...)
}

// ParseStorage parses memory, storage or calldata.
func ParseStorage(c *Cursor) (*ast.Storage, error) {
	return parseKeywordAttr(c, ast.StorageKinds)
}

func ParseVisibility(c *Cursor) (*ast.Visibility, error) {
	return parseKeywordAttr(c, ast.VisibilityKinds)
}

func ParseMutability(c *Cursor) (*ast.Mutability, error) {
	return parseKeywordAttr(c, ast.MutabilityKinds)
}
