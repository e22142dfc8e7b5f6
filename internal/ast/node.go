package ast

import "solattr/token"

// Node is implemented by every attribute node. Nodes are plain values once
// parsed; SetSpan is the only mutator and must not race with readers.
type Node interface {
	Span() token.Span
	SetSpan(token.Span)
	NodeType() NodeType

	// String renders canonical, re-parseable source text.
	String() string
	// Debug renders the structured debug form.
	Debug() string

	// Hash is consistent with Equal: it ignores positions.
	Hash() uint64
	View() View
}

func (a *KeywordAttr[K]) Span() token.Span     { return a.Keyword.Span }
func (a *KeywordAttr[K]) SetSpan(s token.Span) { a.Keyword.Span = s }
func (a *KeywordAttr[K]) NodeType() NodeType   { return a.Kind.NodeType() }

func (*Path) NodeType() NodeType     { return PATH }
func (*Override) NodeType() NodeType { return OVERRIDE }
func (*Modifier) NodeType() NodeType { return MODIFIER }

// Equal compares two nodes with their node-specific identity rules.
func Equal(a, b Node) bool {
	switch x := a.(type) {
	case *Storage:
		y, ok := b.(*Storage)
		return ok && x.Equal(y)
	case *Visibility:
		y, ok := b.(*Visibility)
		return ok && x.Equal(y)
	case *Mutability:
		y, ok := b.(*Mutability)
		return ok && x.Equal(y)
	case *Override:
		y, ok := b.(*Override)
		return ok && x.Equal(y)
	case *Modifier:
		y, ok := b.(*Modifier)
		return ok && x.Equal(y)
	case *Path:
		y, ok := b.(*Path)
		return ok && x.Equal(y)
	default:
		return false
	}
}
