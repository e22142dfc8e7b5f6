package ast

// View is a flat, serialisable snapshot of a node. Fields that do not apply
// to the node type are left empty.
type View struct {
	Type    string   `yaml:"type" msgpack:"type"`
	Text    string   `yaml:"text" msgpack:"text"`
	Span    string   `yaml:"span,omitempty" msgpack:"span,omitempty"`
	Keyword string   `yaml:"keyword,omitempty" msgpack:"keyword,omitempty"`
	Name    string   `yaml:"name,omitempty" msgpack:"name,omitempty"`
	Paren   bool     `yaml:"paren,omitempty" msgpack:"paren,omitempty"`
	Paths   []string `yaml:"paths,omitempty" msgpack:"paths,omitempty"`
	Args    []string `yaml:"args,omitempty" msgpack:"args,omitempty"`
}

// Views snapshots nodes in order.
func Views(nodes []Node) []View {
	views := make([]View, len(nodes))
	for i, n := range nodes {
		views[i] = n.View()
	}
	return views
}

func spanText(n Node) string {
	span := n.Span()
	if span.IsZero() {
		return ""
	}
	return span.String()
}

func (a *KeywordAttr[K]) View() View {
	return View{
		Type:    a.NodeType().String(),
		Text:    a.String(),
		Span:    spanText(a),
		Keyword: a.Kind.String(),
	}
}

func (p *Path) View() View {
	return View{
		Type: PATH.String(),
		Text: p.String(),
		Span: spanText(p),
		Name: p.String(),
	}
}

func (o *Override) View() View {
	v := View{
		Type:  OVERRIDE.String(),
		Text:  o.String(),
		Span:  spanText(o),
		Paren: o.Paren != nil,
	}
	for i := range o.Paths {
		v.Paths = append(v.Paths, o.Paths[i].String())
	}
	return v
}

func (m *Modifier) View() View {
	v := View{
		Type:  MODIFIER.String(),
		Text:  m.String(),
		Span:  spanText(m),
		Name:  m.Name.String(),
		Paren: m.Paren != nil,
	}
	for _, arg := range m.Args {
		v.Args = append(v.Args, arg.Text())
	}
	return v
}
