package token

import "fmt"

type Position struct {
	Offset int // 0-based absolute index in input
	Line   int // 1-based
	Column int // 1-based
}

// Span is a half-open source range. Spans from different files (or from
// synthesized code, which carries its own file name) cannot be joined.
type Span struct {
	Filename string
	Start    Position
	End      Position
}

// Point returns a zero-width span at pos.
func Point(filename string, pos Position) Span {
	return Span{Filename: filename, Start: pos, End: pos}
}

func (s Span) IsZero() bool {
	return s == Span{}
}

// Len is the byte length of the span.
func (s Span) Len() int {
	return s.End.Offset - s.Start.Offset
}

func (s Span) String() string {
	if s.Filename == "" {
		return fmt.Sprintf("%d:%d", s.Start.Line, s.Start.Column)
	}
	return fmt.Sprintf("%s:%d:%d", s.Filename, s.Start.Line, s.Start.Column)
}

// Join returns the smallest span covering both s and other. It fails when
// the spans come from different origins.
func (s Span) Join(other Span) (Span, bool) {
	if s.Filename != other.Filename {
		return Span{}, false
	}
	joined := s
	if other.Start.Offset < joined.Start.Offset {
		joined.Start = other.Start
	}
	if other.End.Offset > joined.End.Offset {
		joined.End = other.End
	}
	return joined, true
}

// Cover joins other into s, keeping s unchanged when the join is undefined.
func (s Span) Cover(other Span) Span {
	if joined, ok := s.Join(other); ok {
		return joined
	}
	return s
}
