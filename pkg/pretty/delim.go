package pretty

// Node is anything that can describe itself to a Printer.
type Node interface {
	PrettyPrint(p *Printer)
}

// NodeFunc adapts a function to a Node.
type NodeFunc func(p *Printer)

func (f NodeFunc) PrettyPrint(p *Printer) { f(p) }

// DelimSpan holds the spans of an opening and a closing delimiter.
type DelimSpan struct {
	Open  Span
	Close Span
}

// Delim is a pair of brackets around nested content.
type Delim interface {
	OpenText() string
	CloseText() string
	DelimSpan() DelimSpan
}

type (
	// Paren is a `(` `)` pair.
	Paren struct{ Span DelimSpan }

	// Brace is a `{` `}` pair.
	Brace struct{ Span DelimSpan }

	// Bracket is a `[` `]` pair.
	Bracket struct{ Span DelimSpan }
)

func (Paren) OpenText() string       { return "(" }
func (Paren) CloseText() string      { return ")" }
func (d Paren) DelimSpan() DelimSpan { return d.Span }

func (Brace) OpenText() string       { return "{" }
func (Brace) CloseText() string      { return "}" }
func (d Brace) DelimSpan() DelimSpan { return d.Span }

func (Bracket) OpenText() string       { return "[" }
func (Bracket) CloseText() string      { return "]" }
func (d Bracket) DelimSpan() DelimSpan { return d.Span }

// Surround prints inner between the delimiters of d as a group with the given mode.
// Trivia before each delimiter is flushed first, so comments stay on the side of the
// bracket they were written on.
func Surround(p *Printer, d Delim, mode BreakMode, inner func(p *Printer)) {
	SurroundOpened(p, d, mode, nil, inner)
}

// SurroundOpened is Surround with a hook that runs after the opening delimiter is
// scanned and before the group begins. Callers use it to close a group of their own
// that the opening delimiter belongs to.
func SurroundOpened(p *Printer, d Delim, mode BreakMode, opened, inner func(p *Printer)) {
	span := d.DelimSpan()

	p.FlushTrivia(span.Open)
	p.ScanText(NewSourceText(d.OpenText(), span.Open))
	if opened != nil {
		opened(p)
	}
	p.ScanBegin(mode)
	inner(p)
	p.FlushTrivia(span.Close)
	p.ScanEnd()
	p.ScanText(NewSourceText(d.CloseText(), span.Close))
}

// Macro is a delimited body, such as the argument of a `name! { ... }` invocation.
// Brace bodies are padded with a space on each side while they stay flat.
type Macro struct {
	Delim Delim
	Mode  BreakMode
	Inner Node

	// Opened, if set, runs right after the opening delimiter. See SurroundOpened.
	Opened func(p *Printer)
}

func (m Macro) PrettyPrint(p *Printer) {
	_, padded := m.Delim.(Brace)

	SurroundOpened(p, m.Delim, m.Mode, m.Opened, func(p *Printer) {
		if padded {
			p.ScanTextWithMode(Str(" "), NoBreak)
		}
		m.Inner.PrettyPrint(p)
		p.FlushTrivia(m.Delim.DelimSpan().Close)
		if padded {
			p.ScanTextWithMode(Str(" "), NoBreak)
		}
	})
}
