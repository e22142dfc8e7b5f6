package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solattr/token"
)

func span(file string, start, end int) token.Span {
	return token.Span{
		Filename: file,
		Start:    token.Position{Offset: start, Line: 1, Column: start + 1},
		End:      token.Position{Offset: end, Line: 1, Column: end + 1},
	}
}

func ident(value string, start int) Ident {
	return Ident{Value: value, Span: span("a.sol", start, start+len(value))}
}

func tok(tt token.TokenType, lexeme string, start int) token.Token {
	return token.Token{Type: tt, Lexeme: lexeme, Span: span("a.sol", start, start+len(lexeme))}
}

func TestKeywordAttrEquality(t *testing.T) {
	a := NewKeywordAttr(StorageMemory, span("a.sol", 0, 6))
	b := NewKeywordAttr(StorageMemory, span("b.sol", 40, 46))
	c := NewKeywordAttr(StorageCalldata, span("a.sol", 0, 8))

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.False(t, a.Equal(c))
	assert.True(t, Equal(a, b))

	ext := NewKeywordAttr(VisibilityExternal, span("a.sol", 0, 8))
	pub := NewKeywordAttr(VisibilityPublic, span("a.sol", 0, 6))
	assert.False(t, ext.Equal(pub))
	assert.NotEqual(t, ext.Hash(), pub.Hash())
}

func TestKeywordAttrAcrossSets(t *testing.T) {
	// memory and pure share the same tag value in different sets
	storage := NewKeywordAttr(StorageMemory, token.Span{})
	mutability := NewKeywordAttr(MutabilityPure, token.Span{})

	assert.False(t, Equal(storage, mutability))
	assert.NotEqual(t, storage.Hash(), mutability.Hash())
}

func TestKeywordAttrRender(t *testing.T) {
	tests := []struct {
		node  Node
		text  string
		debug string
	}{
		{NewKeywordAttr(StorageMemory, token.Span{}), "memory", "Storage(memory)"},
		{NewKeywordAttr(StorageStorage, token.Span{}), "storage", "Storage(storage)"},
		{NewKeywordAttr(StorageCalldata, token.Span{}), "calldata", "Storage(calldata)"},
		{NewKeywordAttr(VisibilityExternal, token.Span{}), "external", "Visibility(external)"},
		{NewKeywordAttr(VisibilityPrivate, token.Span{}), "private", "Visibility(private)"},
		{NewKeywordAttr(MutabilityConstant, token.Span{}), "constant", "Mutability(constant)"},
		{NewKeywordAttr(MutabilityPayable, token.Span{}), "payable", "Mutability(payable)"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.text, tt.node.String())
			assert.Equal(t, tt.debug, tt.node.Debug())
		})
	}
}

func TestKeywordKindZeroValue(t *testing.T) {
	var k StorageKind
	assert.Equal(t, "", k.String())
	assert.Equal(t, "storage location", k.Category())
}

func TestKeywordAttrSetSpan(t *testing.T) {
	attr := NewKeywordAttr(MutabilityView, span("a.sol", 3, 7))
	target := span("gen", 0, 0)
	attr.SetSpan(target)
	assert.Equal(t, target, attr.Span())
}

func TestPathSpanAndEquality(t *testing.T) {
	p := Path{Segments: []Ident{ident("IERC20", 10), ident("Metadata", 17)}}
	q := PathOf("IERC20", "Metadata")

	assert.Equal(t, span("a.sol", 10, 25), p.Span())
	assert.True(t, p.Equal(&q))
	assert.Equal(t, p.Hash(), q.Hash())
	assert.Equal(t, "IERC20.Metadata", p.String())
	assert.Equal(t, "Path(IERC20.Metadata)", p.Debug())
	assert.Equal(t, "Metadata", p.Last())

	joined := PathOf("a.b")
	split := PathOf("a", "b")
	assert.False(t, joined.Equal(&split))
	assert.NotEqual(t, joined.Hash(), split.Hash())
}

func TestOverrideRender(t *testing.T) {
	bare := &Override{Keyword: Keyword{Span: span("a.sol", 0, 8)}}
	empty := &Override{Keyword: Keyword{Span: span("a.sol", 0, 8)}, Paren: &Paren{Span: span("a.sol", 8, 10)}}
	list := &Override{
		Keyword: Keyword{Span: span("a.sol", 0, 8)},
		Paren:   &Paren{Span: span("a.sol", 8, 22)},
		Paths: []Path{
			{Segments: []Ident{ident("Base1", 9)}},
			{Segments: []Ident{ident("Base2", 16)}},
		},
	}

	assert.Equal(t, "override", bare.String())
	assert.Equal(t, "override()", empty.String())
	assert.Equal(t, "override(Base1, Base2)", list.String())

	assert.Equal(t, "Override", bare.Debug())
	assert.Equal(t, "Override([])", empty.Debug())
	assert.Equal(t, "Override([Base1, Base2])", list.Debug())
}

func TestOverrideEquality(t *testing.T) {
	bare := &Override{Keyword: Keyword{Span: span("a.sol", 0, 8)}}
	empty := &Override{Keyword: Keyword{Span: span("a.sol", 0, 8)}, Paren: &Paren{}}
	moved := &Override{Keyword: Keyword{Span: span("b.sol", 90, 98)}}

	assert.True(t, bare.Equal(moved))
	assert.Equal(t, bare.Hash(), moved.Hash())
	assert.False(t, bare.Equal(empty))
	assert.NotEqual(t, bare.Hash(), empty.Hash())

	ab := &Override{Paren: &Paren{}, Paths: []Path{PathOf("A"), PathOf("B")}}
	ba := &Override{Paren: &Paren{}, Paths: []Path{PathOf("B"), PathOf("A")}}
	ab2 := &Override{Paren: &Paren{Span: span("x.sol", 1, 9)}, Paths: []Path{PathOf("A"), PathOf("B")}}
	assert.False(t, ab.Equal(ba))
	assert.True(t, ab.Equal(ab2))
	assert.Equal(t, ab.Hash(), ab2.Hash())
}

func TestOverrideSpan(t *testing.T) {
	o := &Override{Keyword: Keyword{Span: span("a.sol", 0, 8)}, Paren: &Paren{Span: span("a.sol", 8, 15)}}
	assert.Equal(t, span("a.sol", 0, 15), o.Span())

	// paren synthesized elsewhere: fall back to the keyword
	o.Paren = &Paren{Span: span("gen", 0, 2)}
	assert.Equal(t, span("a.sol", 0, 8), o.Span())
}

func TestModifierEqualityByName(t *testing.T) {
	a := &Modifier{
		Name:  Path{Segments: []Ident{ident("validAmount", 0)}},
		Paren: &Paren{Span: span("a.sol", 11, 26)},
		Args: []RawArg{
			{Tokens: []token.Token{tok(token.IDENTIFIER, "x", 12)}},
		},
	}
	b := &Modifier{
		Name:  PathOf("validAmount"),
		Paren: &Paren{},
		Args: []RawArg{
			{Tokens: []token.Token{tok(token.NUMBER, "100", 12)}},
			{Tokens: []token.Token{tok(token.IDENTIFIER, "y", 17)}},
		},
	}
	bare := &Modifier{Name: PathOf("validAmount")}
	other := &Modifier{Name: PathOf("onlyOwner"), Paren: a.Paren, Args: a.Args}

	assert.True(t, a.Equal(b))
	assert.True(t, a.Equal(bare))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.Equal(t, a.Hash(), bare.Hash())
	assert.False(t, a.Equal(other))
	assert.NotEqual(t, a.Hash(), other.Hash())
}

func TestModifierRender(t *testing.T) {
	m := &Modifier{
		Name:  Path{Segments: []Ident{ident("validAmount", 0)}},
		Paren: &Paren{Span: span("a.sol", 11, 27)},
		Args: []RawArg{
			{Tokens: []token.Token{
				tok(token.IDENTIFIER, "msg", 12),
				{Type: token.DOT, Lexeme: ".", Span: span("a.sol", 15, 16)},
				tok(token.IDENTIFIER, "value", 16),
			}},
			{Tokens: []token.Token{tok(token.NUMBER, "100", 23)}},
		},
	}

	assert.Equal(t, "validAmount(msg.value, 100)", m.String())
	assert.Equal(t, "Modifier { name: validAmount, arguments: [msg.value, 100] }", m.Debug())

	bare := &Modifier{Name: PathOf("onlyOwner")}
	assert.Equal(t, "onlyOwner", bare.String())
	assert.Equal(t, "Modifier { name: onlyOwner, arguments: [] }", bare.Debug())
}

func TestRawArgText(t *testing.T) {
	gapped := RawArg{Tokens: []token.Token{
		tok(token.IDENTIFIER, "a", 0),
		tok(token.OPERATOR, "+", 4),
		tok(token.IDENTIFIER, "b", 5),
	}}
	assert.Equal(t, "a +b", gapped.Text())
	assert.Equal(t, span("a.sol", 0, 6), gapped.Span())

	synthetic := RawArg{Tokens: []token.Token{
		{Type: token.IDENTIFIER, Lexeme: "uint"},
		{Type: token.IDENTIFIER, Lexeme: "x"},
		{Type: token.OPERATOR, Lexeme: "*"},
		{Type: token.NUMBER, Lexeme: "2"},
	}}
	assert.Equal(t, "uint x*2", synthetic.Text())
}

func TestSetSpanCollapse(t *testing.T) {
	target := span("gen", 5, 5)

	nodes := []Node{
		&Override{Keyword: Keyword{Span: span("a.sol", 0, 8)}},
		&Override{Keyword: Keyword{Span: span("a.sol", 0, 8)}, Paren: &Paren{Span: span("a.sol", 8, 15)}, Paths: []Path{PathOf("A")}},
		&Modifier{Name: Path{Segments: []Ident{ident("a", 0), ident("b", 2)}}},
		&Modifier{Name: Path{Segments: []Ident{ident("m", 0)}}, Paren: &Paren{Span: span("a.sol", 1, 3)}},
	}

	for _, n := range nodes {
		before := n.String()
		n.SetSpan(target)
		assert.Equal(t, target, n.Span(), n.Debug())
		n.SetSpan(target)
		assert.Equal(t, target, n.Span(), n.Debug())
		assert.Equal(t, before, n.String())
	}
}

func TestSetSpanReplacesParen(t *testing.T) {
	paren := &Paren{Span: span("a.sol", 8, 10)}
	o := &Override{Keyword: Keyword{Span: span("a.sol", 0, 8)}, Paren: paren}
	o.SetSpan(span("gen", 0, 0))

	require.NotNil(t, o.Paren)
	assert.Equal(t, span("a.sol", 8, 10), paren.Span)
	assert.Equal(t, span("gen", 0, 0), o.Paren.Span)
}

func TestEqualAcrossNodeTypes(t *testing.T) {
	path := PathOf("onlyOwner")
	modifier := &Modifier{Name: PathOf("onlyOwner")}

	assert.False(t, Equal(&path, modifier))
	assert.False(t, Equal(modifier, &path))
	assert.NotEqual(t, path.Hash(), modifier.Hash())
}
