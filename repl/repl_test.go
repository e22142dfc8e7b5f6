package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStart(t *testing.T) {
	color.NoColor = true

	var out bytes.Buffer
	err := Start(strings.NewReader("external view\nvalidAmount( msg.value ,100 )\n"), &out)
	require.NoError(t, err)

	assert.Equal(t, ">> external\tVisibility(external)\n"+
		"view\tMutability(view)\n"+
		">> validAmount(msg.value, 100)\tModifier { name: validAmount, arguments: [msg.value, 100] }\n"+
		">> \n", out.String())
}

func TestEvalReportsErrors(t *testing.T) {
	color.NoColor = true

	var out bytes.Buffer
	Eval(&out, "<repl:1>", "override(A")

	assert.Contains(t, out.String(), "E0101")
	assert.Contains(t, out.String(), "unclosed delimiter '('")
	assert.NotContains(t, out.String(), "Override")
}
