package pretty

// TextMode controls when a text fragment is printed.
type TextMode uint8

const (
	// Always prints the fragment regardless of the enclosing group's decision.
	Always TextMode = iota
	// NoBreak prints the fragment only when the enclosing group stays flat.
	NoBreak
	// Break prints the fragment only when the enclosing group breaks.
	Break
)

func (m TextMode) String() string {
	switch m {
	case NoBreak:
		return "no-break"
	case Break:
		return "break"
	default:
		return "always"
	}
}

// Text is a fragment of output text with an optional source span.
//
// Fragments without a span are synthetic: they have no position in the input
// source, so trivia is never attached to them.
type Text interface {
	Content() string
	Span() (Span, bool)
}

// Str is a synthetic text fragment.
type Str string

func (s Str) Content() string { return string(s) }

func (Str) Span() (Span, bool) { return Span{}, false }

// SourceText is a fragment taken from the input source.
type SourceText struct {
	content string
	span    Span
}

// NewSourceText creates a fragment for content found at span in the source.
func NewSourceText(content string, span Span) SourceText {
	return SourceText{content: content, span: span}
}

func (t SourceText) Content() string { return t.content }

func (t SourceText) Span() (Span, bool) { return t.span, true }
