package pretty

import (
	"fmt"

	"github.com/pkg/errors"
)

// LineColumn is a position in source text. Lines and columns are 1-based.
type LineColumn struct {
	Line   int
	Column int
}

// Compare orders positions by line, then column. It returns -1, 0 or 1.
func (lc LineColumn) Compare(other LineColumn) int {
	switch {
	case lc.Line < other.Line:
		return -1
	case lc.Line > other.Line:
		return 1
	case lc.Column < other.Column:
		return -1
	case lc.Column > other.Column:
		return 1
	default:
		return 0
	}
}

// Advance returns the position reached after text, starting at lc. Columns count runes,
// matching the positions reported by the participle lexer.
func (lc LineColumn) Advance(text string) LineColumn {
	for _, r := range text {
		if r == '\n' {
			lc.Line++
			lc.Column = 1
			continue
		}
		lc.Column++
	}
	return lc
}

func (lc LineColumn) String() string {
	return fmt.Sprintf("%d:%d", lc.Line, lc.Column)
}

// Span is a range of source text from Start (inclusive) to End (exclusive).
//
// Spans are values: they are created from lexer positions and never mutated.
type Span struct {
	Start LineColumn
	End   LineColumn
}

// NewSpan creates a span. It panics if end comes before start.
func NewSpan(start, end LineColumn) Span {
	if start.Compare(end) > 0 {
		panic(errors.Errorf("pretty: span start %s is after end %s", start, end))
	}
	return Span{Start: start, End: end}
}

// SpanOf returns the span covered by text starting at start.
func SpanOf(start LineColumn, text string) Span {
	return Span{Start: start, End: start.Advance(text)}
}

// ImmediatelyFollows reports whether s starts exactly where other ends.
func (s Span) ImmediatelyFollows(other Span) bool {
	return s.Start == other.End
}

// Precedes reports whether s ends at or before the start of other.
func (s Span) Precedes(other Span) bool {
	return s.End.Line < other.Start.Line ||
		(s.End.Line == other.Start.Line && s.End.Column <= other.Start.Column)
}

// Compare orders spans by start, then end.
func (s Span) Compare(other Span) int {
	if c := s.Start.Compare(other.Start); c != 0 {
		return c
	}
	return s.End.Compare(other.End)
}

// Join returns the smallest span covering both s and other.
func (s Span) Join(other Span) Span {
	out := s
	if other.Start.Compare(out.Start) < 0 {
		out.Start = other.Start
	}
	if other.End.Compare(out.End) > 0 {
		out.End = other.End
	}
	return out
}

func (s Span) String() string {
	return s.Start.String() + "-" + s.End.String()
}
