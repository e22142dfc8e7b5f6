package parser

import (
	"solattr/internal/ast"
	"solattr/token"
)

// ParseAttribute parses whichever attribute starts at the cursor.
func ParseAttribute(c *Cursor) (ast.Node, error) {
	tok := c.Peek()

	switch tok.Type {
	case token.IDENTIFIER:
		m, err := ParseModifier(c)
		return asNode(m, err)
	case token.KEYWORD:
		switch {
		case tok.Lexeme == "override":
			o, err := ParseOverride(c)
			return asNode(o, err)
		case isKind(tok.Lexeme, ast.StorageKinds):
			s, err := ParseStorage(c)
			return asNode(s, err)
		case isKind(tok.Lexeme, ast.VisibilityKinds):
			v, err := ParseVisibility(c)
			return asNode(v, err)
		case isKind(tok.Lexeme, ast.MutabilityKinds):
			m, err := ParseMutability(c)
			return asNode(m, err)
		}
	}

	return nil, unexpected(tok, "attribute")
}

// asNode keeps a failed parse from surfacing as a typed nil Node.
func asNode[T ast.Node](n T, err error) (ast.Node, error) {
	if err != nil {
		return nil, err
	}
	return n, nil
}

func isKind[K ast.KeywordKind](text string, kinds []K) bool {
	for _, k := range kinds {
		if k.String() == text {
			return true
		}
	}
	return false
}

// ParseAttributes parses attributes until the cursor is exhausted, stopping
// at the first failure.
func ParseAttributes(c *Cursor) ([]ast.Node, error) {
	var nodes []ast.Node
	for !c.IsAtEnd() {
		node, err := ParseAttribute(c)
		if err != nil {
			return nodes, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// Source is one parsed attribute list together with what the scanner
// dropped on the way.
type Source struct {
	Nodes       []ast.Node
	ParseErrors []ParseError
	ScanErrors  []ScanError
	// Comments are the spans of comments in the text. Rendering the nodes
	// does not reproduce them.
	Comments []token.Span
}

// Parse scans and parses a whitespace-separated attribute list. Nodes parsed
// before a failure are kept. A scan failure truncates the token stream, so
// any parse error it provokes is not reported.
func Parse(filename, source string) *Source {
	s := NewScanner(filename, source)
	tokens := s.ScanTokens()

	src := &Source{ScanErrors: s.Errors(), Comments: s.Comments()}

	nodes, err := ParseAttributes(NewCursor(tokens))
	src.Nodes = nodes
	if pe, ok := err.(*ParseError); ok && len(src.ScanErrors) == 0 {
		src.ParseErrors = append(src.ParseErrors, *pe)
	}

	return src
}

// ParseSource is Parse without the comment spans.
func ParseSource(filename, source string) ([]ast.Node, []ParseError, []ScanError) {
	src := Parse(filename, source)
	return src.Nodes, src.ParseErrors, src.ScanErrors
}
