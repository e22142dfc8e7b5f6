package grammar

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"
)

var parser = buildParser()

func buildParser() *participle.Parser[AttributeList] {
	p, err := participle.Build[AttributeList](
		participle.Lexer(SolidityLexer),
		participle.Elide(Elided...),
		participle.UseLookahead(3),
	)
	if err != nil {
		panic(fmt.Errorf("failed to build grammar: %w", err))
	}

	return p
}

// ParseString parses src as an attribute list.
func ParseString(name, src string) (*AttributeList, error) {
	return parser.ParseString(name, src)
}

// EBNF returns the reference grammar in EBNF form.
func EBNF() string {
	return parser.String()
}

// FormatError renders a caret-style message for a grammar failure.
func FormatError(src string, err error) string {
	pe, ok := err.(participle.Error)
	if !ok {
		return color.RedString("unexpected error: %s", err)
	}

	pos := pe.Position()
	lines := strings.Split(src, "\n")
	if pos.Line <= 0 || pos.Line > len(lines) {
		return color.RedString("syntax error at unknown location: %s", err)
	}

	line := lines[pos.Line-1]
	caret := strings.Repeat(" ", max(0, pos.Column-1)) + "^"

	var b strings.Builder
	b.WriteString(color.RedString("syntax error in %s at line %d, column %d:", pos.Filename, pos.Line, pos.Column))
	b.WriteString("\n")
	b.WriteString(line)
	b.WriteString("\n")
	b.WriteString(color.HiRedString(caret))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("→ %s\n", pe.Message()))
	return b.String()
}
