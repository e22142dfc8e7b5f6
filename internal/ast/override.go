package ast

import "solattr/token"

// Paren marks a parenthesized list; its span runs from '(' to ')'.
type Paren struct {
	Span token.Span
}

// Override represents an override specifier.
// Example: "override", "override()", "override(Base1, Base2)"
//
// A present Paren with no Paths ("override()") is kept distinct from a
// missing Paren ("override").
type Override struct {
	Keyword Keyword
	Paren   *Paren
	Paths   []Path
}

// Span joins the keyword with the parenthesized list, or falls back to the
// keyword alone when the two spans cannot be joined.
func (o *Override) Span() token.Span {
	span := o.Keyword.Span
	if o.Paren != nil {
		span = span.Cover(o.Paren.Span)
	}
	return span
}

// SetSpan collapses the whole node onto span. Paths keep their own spans.
func (o *Override) SetSpan(span token.Span) {
	o.Keyword.Span = span
	if o.Paren != nil {
		o.Paren = &Paren{Span: span}
	}
}

// Equal compares parenthesization and the path list; positions are ignored.
func (o *Override) Equal(other *Override) bool {
	if o == nil || other == nil {
		return o == other
	}
	if (o.Paren == nil) != (other.Paren == nil) || len(o.Paths) != len(other.Paths) {
		return false
	}
	for i := range o.Paths {
		if !o.Paths[i].Equal(&other.Paths[i]) {
			return false
		}
	}
	return true
}

func (o *Override) Hash() uint64 {
	id := newIdentity(OVERRIDE).flag(o.Paren != nil)
	for i := range o.Paths {
		id.path(&o.Paths[i])
	}
	return id.sum()
}
