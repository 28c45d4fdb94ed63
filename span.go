package chevrogo

import "fmt"

// Span captures a run of input covered by a terminal or non-terminal: a
// start position and the position just behind the end, (x…y).
type Span [2]int

// From returns the start value of a span.
func (s Span) From() int {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() int {
	return s[1]
}

// Len returns the length of (x…y).
func (s Span) Len() int {
	return s[1] - s[0]
}

// IsNull returns true for the zero Span.
func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend grows s to also cover other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

// SpanOf returns the Span covered by a single token.
func SpanOf(t Token) Span {
	if t == nil {
		return Span{}
	}
	return Span{t.StartOffset(), t.EndOffset()}
}
