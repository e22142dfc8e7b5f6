package lsp

import (
	"solattr/internal/ast"
	"solattr/token"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into SemanticTokenTypes
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

func (d *document) semanticTokens() []SemanticToken {
	var tokens []SemanticToken
	for i, l := range d.lines {
		for _, n := range l.nodes {
			tokens = append(tokens, walkNode(u32(i), n)...)
		}
	}
	return tokens
}

func walkNode(line uint32, n ast.Node) []SemanticToken {
	switch v := n.(type) {
	case *ast.Override:
		tokens := makeToken(line, v.Keyword.Span, "keyword")
		for i := range v.Paths {
			tokens = append(tokens, walkPath(line, &v.Paths[i], "type")...)
		}
		return tokens
	case *ast.Modifier:
		tokens := walkPath(line, &v.Name, "function")
		for _, arg := range v.Args {
			tokens = append(tokens, makeToken(line, arg.Span(), "parameter")...)
		}
		return tokens
	default:
		// keyword attributes are a single keyword
		return makeToken(line, n.Span(), "keyword")
	}
}

func walkPath(line uint32, p *ast.Path, tokenType string) []SemanticToken {
	var tokens []SemanticToken
	for _, seg := range p.Segments {
		tokens = append(tokens, makeToken(line, seg.Span, tokenType)...)
	}
	return tokens
}

func makeToken(line uint32, span token.Span, tokenType string) []SemanticToken {
	if span.Len() <= 0 || span.Start.Line != span.End.Line {
		return nil
	}

	return []SemanticToken{{
		Line:      line,
		StartChar: column(span.Start),
		Length:    u32(span.Len()),
		TokenType: indexOf(tokenType, SemanticTokenTypes),
	}}
}

// encodeSemanticTokens packs tokens into the LSP wire format (delta-line,
// delta-start compression).
func encodeSemanticTokens(tokens []SemanticToken) []uint32 {
	data := make([]uint32, 0, len(tokens)*5)
	var prevLine, prevStart uint32

	for _, tok := range tokens {
		deltaLine := tok.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = tok.StartChar - prevStart
		} else {
			deltaStart = tok.StartChar
		}

		data = append(data, deltaLine, deltaStart, tok.Length, u32(tok.TokenType), u32(tok.TokenModifiers))

		prevLine = tok.Line
		prevStart = tok.StartChar
	}
	return data
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0
}
