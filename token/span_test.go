package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func span(file string, start, end int) Span {
	return Span{
		Filename: file,
		Start:    Position{Offset: start, Line: 1, Column: start + 1},
		End:      Position{Offset: end, Line: 1, Column: end + 1},
	}
}

func TestJoinSameFile(t *testing.T) {
	joined, ok := span("a.sol", 10, 18).Join(span("a.sol", 3, 9))
	assert.True(t, ok)
	assert.Equal(t, 3, joined.Start.Offset)
	assert.Equal(t, 18, joined.End.Offset)
	assert.Equal(t, 15, joined.Len())
}

func TestJoinNested(t *testing.T) {
	outer := span("a.sol", 0, 20)
	joined, ok := outer.Join(span("a.sol", 5, 6))
	assert.True(t, ok)
	assert.Equal(t, outer, joined)
}

func TestJoinDifferentOrigins(t *testing.T) {
	_, ok := span("a.sol", 0, 4).Join(span("<generated>", 0, 4))
	assert.False(t, ok, "spans from different origins must not join")
}

func TestCoverFallsBackToReceiver(t *testing.T) {
	s := span("a.sol", 2, 4)
	assert.Equal(t, s, s.Cover(span("b.sol", 0, 10)))
	assert.Equal(t, span("a.sol", 2, 10), s.Cover(span("a.sol", 4, 10)))
}

func TestPoint(t *testing.T) {
	p := Point("x.sol", Position{Offset: 7, Line: 2, Column: 3})
	assert.Equal(t, 0, p.Len())
	assert.Equal(t, "x.sol:2:3", p.String())
	assert.False(t, p.IsZero())
	assert.True(t, Span{}.IsZero())
}

func TestKeywordLookup(t *testing.T) {
	for _, kw := range KEYWORDS {
		assert.True(t, LookupKeyword(kw), kw)
	}
	assert.False(t, LookupKeyword("onlyOwner"))
	assert.False(t, LookupKeyword("Memory"))
}

func TestTokenDelimiters(t *testing.T) {
	open := Token{Type: LEFT_PAREN, Lexeme: "("}
	assert.True(t, open.IsOpen())
	assert.True(t, Token{Type: RIGHT_PAREN}.Closes(open))
	assert.False(t, Token{Type: RIGHT_BRACKET}.Closes(open))
	assert.True(t, Token{Type: RIGHT_BRACE}.IsClose())
	assert.Equal(t, "identifier 'foo'", Token{Type: IDENTIFIER, Lexeme: "foo"}.Describe())
	assert.Equal(t, "')'", Token{Type: RIGHT_PAREN, Lexeme: ")"}.Describe())
}
