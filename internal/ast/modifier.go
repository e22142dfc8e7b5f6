package ast

import (
	"strings"

	"solattr/token"
)

// RawArg is one modifier argument kept as the tokens that spelled it. It is
// not parsed as an expression; Text recovers the source form.
type RawArg struct {
	Tokens []token.Token
}

// Span covers the argument tokens.
func (a RawArg) Span() token.Span {
	if len(a.Tokens) == 0 {
		return token.Span{}
	}
	span := a.Tokens[0].Span
	for _, tok := range a.Tokens[1:] {
		span = span.Cover(tok.Span)
	}
	return span
}

// Text reassembles the argument, with a single space wherever the source
// had a gap between two tokens.
func (a RawArg) Text() string {
	var b strings.Builder
	for i, tok := range a.Tokens {
		if i > 0 && needsSpace(a.Tokens[i-1], tok) {
			b.WriteByte(' ')
		}
		b.WriteString(tok.Lexeme)
	}
	return b.String()
}

func needsSpace(prev, next token.Token) bool {
	if !prev.Span.IsZero() && !next.Span.IsZero() &&
		prev.Span.Filename == next.Span.Filename && next.Span.Start.Offset >= prev.Span.End.Offset {
		return next.Span.Start.Offset > prev.Span.End.Offset
	}
	// Tokens without usable offsets (synthesized): separate words only.
	return isWord(prev) && isWord(next)
}

func isWord(tok token.Token) bool {
	switch tok.Type {
	case token.IDENTIFIER, token.KEYWORD, token.NUMBER, token.STRING:
		return true
	default:
		return false
	}
}

// Modifier represents a modifier invocation or an inheritance specifier.
// Example: "onlyOwner", "validAmount(msg.value, 100)", "ERC20(name, symbol)"
type Modifier struct {
	Name  Path
	Paren *Paren
	Args  []RawArg
}

// Span joins the name with the argument list, falling back to the name.
func (m *Modifier) Span() token.Span {
	span := m.Name.Span()
	if m.Paren != nil {
		span = span.Cover(m.Paren.Span)
	}
	return span
}

// SetSpan collapses the name and parentheses onto span.
func (m *Modifier) SetSpan(span token.Span) {
	m.Name.SetSpan(span)
	if m.Paren != nil {
		m.Paren = &Paren{Span: span}
	}
}

// Equal compares modifier names only. Two invocations of the same modifier
// are the same attribute whatever their arguments, and with or without
// parentheses.
func (m *Modifier) Equal(other *Modifier) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.Name.Equal(&other.Name)
}

// Hash covers the name only, matching Equal.
func (m *Modifier) Hash() uint64 {
	return newIdentity(MODIFIER).path(&m.Name).sum()
}
