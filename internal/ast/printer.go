package ast

import (
	"fmt"
	"strings"
)

func (a *KeywordAttr[K]) String() string {
	return a.Kind.String()
}

// Debug renders as e.g. "Storage(memory)".
func (a *KeywordAttr[K]) Debug() string {
	return fmt.Sprintf("%s(%s)", debugName(a.NodeType()), a.Kind)
}

func (p *Path) Debug() string {
	return fmt.Sprintf("Path(%s)", p.String())
}

func (o *Override) String() string {
	if o.Paren == nil {
		return "override"
	}

	var b strings.Builder
	b.WriteString("override(")
	for i := range o.Paths {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(o.Paths[i].String())
	}
	b.WriteString(")")

	return b.String()
}

// Debug renders "Override" for the bare keyword and "Override([A, B])" when
// a list is present, so "override()" stays visible as "Override([])".
func (o *Override) Debug() string {
	if o.Paren == nil {
		return "Override"
	}
	paths := make([]string, len(o.Paths))
	for i := range o.Paths {
		paths[i] = o.Paths[i].String()
	}
	return fmt.Sprintf("Override([%s])", strings.Join(paths, ", "))
}

func (a RawArg) String() string {
	return a.Text()
}

func (m *Modifier) String() string {
	if m.Paren == nil {
		return m.Name.String()
	}

	var b strings.Builder
	b.WriteString(m.Name.String())
	b.WriteString("(")
	for i, arg := range m.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(arg.Text())
	}
	b.WriteString(")")

	return b.String()
}

func (m *Modifier) Debug() string {
	args := make([]string, len(m.Args))
	for i, arg := range m.Args {
		args[i] = arg.Text()
	}
	return fmt.Sprintf("Modifier { name: %s, arguments: [%s] }", m.Name.String(), strings.Join(args, ", "))
}

func debugName(nt NodeType) string {
	switch nt {
	case STORAGE:
		return "Storage"
	case VISIBILITY:
		return "Visibility"
	case MUTABILITY:
		return "Mutability"
	default:
		return nt.String()
	}
}
