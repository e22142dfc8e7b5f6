package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"solattr/token"
)

func TestViewsYAML(t *testing.T) {
	nodes := []Node{
		NewKeywordAttr(VisibilityExternal, span("a.sol", 0, 8)),
		&Override{
			Keyword: Keyword{Span: span("a.sol", 9, 17)},
			Paren:   &Paren{Span: span("a.sol", 17, 24)},
			Paths:   []Path{PathOf("A"), PathOf("B", "C")},
		},
		&Modifier{
			Name:  PathOf("onlyRole"),
			Paren: &Paren{},
			Args:  []RawArg{{Tokens: []token.Token{{Type: token.IDENTIFIER, Lexeme: "ADMIN"}}}},
		},
	}

	expectYaml := `
- type: VISIBILITY
  text: external
  span: a.sol:1:1
  keyword: external
- type: OVERRIDE
  text: override(A, B.C)
  span: a.sol:1:10
  paren: true
  paths: [A, B.C]
- type: MODIFIER
  text: onlyRole(ADMIN)
  name: onlyRole
  paren: true
  args: [ADMIN]
`
	var expect []View
	require.NoError(t, yaml.Unmarshal([]byte(expectYaml), &expect))

	actual := Views(nodes)
	if !assert.EqualValues(t, expect, actual) {
		data, _ := yaml.Marshal(actual)
		t.Log("ACTUAL:\n" + string(data))
	}
}

func TestViewRoundTripYAML(t *testing.T) {
	o := &Override{Paren: &Paren{}, Paths: []Path{PathOf("Base")}}

	out, err := yaml.Marshal(o.View())
	require.NoError(t, err)

	var v View
	require.NoError(t, yaml.Unmarshal(out, &v))
	assert.Equal(t, o.View(), v)
}
