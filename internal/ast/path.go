package ast

import (
	"strings"

	"solattr/token"
)

// Ident represents any identifier like contract, modifier or base names.
// Example: "Ownable", "onlyOwner"
type Ident struct {
	Span  token.Span
	Value string
}

// Path is a dotted name.
// Example: "IERC20.Metadata", "onlyOwner"
type Path struct {
	Segments []Ident
}

// PathOf builds an unlocated path from segment names, for synthesized nodes.
func PathOf(names ...string) Path {
	segments := make([]Ident, len(names))
	for i, name := range names {
		segments[i] = Ident{Value: name}
	}
	return Path{Segments: segments}
}

// Span covers all segments; segments that cannot be joined are skipped.
func (p *Path) Span() token.Span {
	if len(p.Segments) == 0 {
		return token.Span{}
	}
	span := p.Segments[0].Span
	for _, seg := range p.Segments[1:] {
		span = span.Cover(seg.Span)
	}
	return span
}

// SetSpan moves every segment to span.
func (p *Path) SetSpan(span token.Span) {
	for i := range p.Segments {
		p.Segments[i].Span = span
	}
}

// Equal compares segment names only.
func (p *Path) Equal(other *Path) bool {
	if p == nil || other == nil {
		return p == other
	}
	if len(p.Segments) != len(other.Segments) {
		return false
	}
	for i := range p.Segments {
		if p.Segments[i].Value != other.Segments[i].Value {
			return false
		}
	}
	return true
}

func (p *Path) Hash() uint64 {
	return newIdentity(PATH).path(p).sum()
}

// Last returns the final segment name, e.g. "Metadata" for "IERC20.Metadata".
func (p *Path) Last() string {
	if len(p.Segments) == 0 {
		return ""
	}
	return p.Segments[len(p.Segments)-1].Value
}

func (p *Path) String() string {
	names := make([]string, len(p.Segments))
	for i, seg := range p.Segments {
		names[i] = seg.Value
	}
	return strings.Join(names, ".")
}
