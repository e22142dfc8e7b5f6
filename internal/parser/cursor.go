package parser

import "solattr/token"

// Cursor is a position-tracking view over a pre-lexed token slice. A cursor
// returned by OpenGroup is bounded by the group's closing delimiter: at the
// bound Peek returns an EOF token located at that delimiter.
type Cursor struct {
	tokens  []token.Token
	current int
	end     token.Token
}

// Mark is a saved cursor position.
type Mark int

// NewCursor wraps tokens. A trailing EOF token, if present, becomes the
// cursor's end marker.
func NewCursor(tokens []token.Token) *Cursor {
	end := token.Token{Type: token.EOF}
	if n := len(tokens); n > 0 {
		last := tokens[n-1]
		if last.Type == token.EOF {
			end = last
			tokens = tokens[:n-1]
		} else {
			end.Span = token.Point(last.Span.Filename, last.Span.End)
		}
	}
	return &Cursor{tokens: tokens, end: end}
}

func (c *Cursor) Peek() token.Token {
	if c.current >= len(c.tokens) {
		return c.end
	}
	return c.tokens[c.current]
}

// PeekAt looks n tokens ahead of the current one.
func (c *Cursor) PeekAt(n int) token.Token {
	if c.current+n >= len(c.tokens) {
		return c.end
	}
	return c.tokens[c.current+n]
}

func (c *Cursor) IsAtEnd() bool {
	return c.current >= len(c.tokens)
}

func (c *Cursor) Advance() token.Token {
	tok := c.Peek()
	if !c.IsAtEnd() {
		c.current++
	}
	return tok
}

func (c *Cursor) Check(tt token.TokenType) bool {
	if c.IsAtEnd() {
		return false
	}
	return c.Peek().Type == tt
}

func (c *Cursor) CheckKeyword(text string) bool {
	return c.Peek().IsKeyword(text)
}

func (c *Cursor) Match(types ...token.TokenType) bool {
	for _, tt := range types {
		if c.Check(tt) {
			c.Advance()
			return true
		}
	}
	return false
}

// Consume advances past a token of type tt or fails without moving.
func (c *Cursor) Consume(tt token.TokenType, expected string) (token.Token, error) {
	if c.Check(tt) {
		return c.Advance(), nil
	}
	return token.Token{}, unexpected(c.Peek(), expected)
}

// ConsumeKeyword advances past the reserved word text or fails without moving.
func (c *Cursor) ConsumeKeyword(text string) (token.Token, error) {
	if c.CheckKeyword(text) {
		return c.Advance(), nil
	}
	return token.Token{}, unexpected(c.Peek(), "'"+text+"'")
}

func (c *Cursor) Snapshot() Mark {
	return Mark(c.current)
}

func (c *Cursor) Restore(m Mark) {
	c.current = int(m)
}

// Rest returns the tokens not yet consumed, without the end marker.
func (c *Cursor) Rest() []token.Token {
	return c.tokens[c.current:]
}

// Group is a delimited token group opened by OpenGroup.
type Group struct {
	Open    token.Token
	Close   token.Token
	Content *Cursor
}

// Span covers the group from its opening to its closing delimiter.
func (g *Group) Span() token.Span {
	return g.Open.Span.Cover(g.Close.Span)
}

// OpenGroup expects an opening delimiter at the cursor, finds its matching
// close (tracking nested groups) and moves past it. The interior is returned
// as a bounded sub-cursor. On failure the cursor does not move.
func (c *Cursor) OpenGroup() (*Group, error) {
	open := c.Peek()
	if c.IsAtEnd() || !open.IsOpen() {
		return nil, unexpected(open, "'('")
	}

	stack := []token.Token{open}
	for i := c.current + 1; i < len(c.tokens); i++ {
		tok := c.tokens[i]
		switch {
		case tok.IsOpen():
			stack = append(stack, tok)
		case tok.IsClose():
			top := stack[len(stack)-1]
			if !tok.Closes(top) {
				return nil, mismatched(top, tok)
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				group := &Group{
					Open:  open,
					Close: tok,
					Content: &Cursor{
						tokens: c.tokens[c.current+1 : i],
						end: token.Token{
							Type: token.EOF,
							Span: token.Point(tok.Span.Filename, tok.Span.Start),
						},
					},
				}
				c.current = i + 1
				return group, nil
			}
		}
	}

	return nil, unclosed(stack[len(stack)-1])
}
