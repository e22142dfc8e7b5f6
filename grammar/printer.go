package grammar

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

var trivia = func() map[lexer.TokenType]bool {
	symbols := SolidityLexer.Symbols()
	set := map[lexer.TokenType]bool{}
	for _, name := range Elided {
		set[symbols[name]] = true
	}
	return set
}()

func (l *AttributeList) String() string {
	parts := make([]string, 0, len(l.Attributes))
	for _, attr := range l.Attributes {
		parts = append(parts, attr.String())
	}
	return strings.Join(parts, " ")
}

func (a *Attribute) String() string {
	switch {
	case a.Storage != "":
		return a.Storage
	case a.Visibility != "":
		return a.Visibility
	case a.Mutability != "":
		return a.Mutability
	case a.Override != nil:
		return a.Override.String()
	case a.Modifier != nil:
		return a.Modifier.String()
	}
	return ""
}

func (o *Override) String() string {
	if !o.Paren {
		return "override"
	}
	paths := make([]string, 0, len(o.Paths))
	for _, p := range o.Paths {
		paths = append(paths, p.String())
	}
	return "override(" + strings.Join(paths, ", ") + ")"
}

func (p *Path) String() string {
	return strings.Join(p.Segments, ".")
}

func (m *Modifier) String() string {
	if !m.Paren {
		return m.Name.String()
	}
	args := make([]string, 0, len(m.Args))
	for _, a := range m.Args {
		args = append(args, a.String())
	}
	return m.Name.String() + "(" + strings.Join(args, ", ") + ")"
}

// String reproduces the argument text, keeping a single space wherever the
// source separated two tokens.
func (a *Arg) String() string {
	var b strings.Builder
	var prev *lexer.Token
	for i := range a.Tokens {
		tok := &a.Tokens[i]
		if trivia[tok.Type] {
			continue
		}
		if prev != nil && tok.Pos.Offset > prev.Pos.Offset+len(prev.Value) {
			b.WriteByte(' ')
		}
		b.WriteString(tok.Value)
		prev = tok
	}
	return b.String()
}
