package pretty_test

import (
	"strings"
	"testing"
	"unicode"

	. "github.com/pseudomuto/qfmt/pkg/pretty"
	"github.com/stretchr/testify/require"
)

func narrow(width int) Options {
	return Options{MaxWidth: width, IndentWidth: 4, MinWidth: 1}
}

func scanSelect(p *Printer, mode BreakMode) {
	p.ScanBegin(mode)
	p.ScanText(Str("select"))
	p.ScanBreak(" ")
	p.ScanText(Str("a, b, c, d, e, f, g, h"))
	p.ScanEnd()
}

func TestPrinter_SelectScenario(t *testing.T) {
	tests := []struct {
		name  string
		mode  BreakMode
		width int
		want  string
	}{
		{"inconsistent narrow", Inconsistent, 10, "select\n    a, b, c, d, e, f, g, h"},
		{"inconsistent wide", Inconsistent, 89, "select a, b, c, d, e, f, g, h"},
		{"consistent wide", Consistent, 89, "select a, b, c, d, e, f, g, h"},
		// A consistent group decides at its Begin, so it breaks before select as well. The
		// inconsistent row is the one that keeps select on the first line.
		{"consistent narrow breaks before its first word too", Consistent, 10, "\n    select\n    a, b, c, d, e, f, g, h\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// MinWidth keeps its default and is clamped to the narrow width
			p := NewPrinter(nil, Options{MaxWidth: tt.width})
			scanSelect(p, tt.mode)
			require.Equal(t, tt.want, p.EOF())
		})
	}
}

// call scans name(args...) with the arguments in a consistent group.
func call(p *Printer, name string, args ...func()) {
	p.ScanText(Str(name + "("))
	p.ScanBegin(Consistent)
	for i, arg := range args {
		if i > 0 {
			p.ScanText(Str(","))
			p.ScanBreak(" ")
		}
		arg()
	}
	p.ScanEnd()
	p.ScanText(Str(")"))
}

func word(p *Printer, s string) func() {
	return func() { p.ScanText(Str(s)) }
}

func nestedCall(p *Printer) {
	call(p, "f",
		word(p, "aaaa"),
		word(p, "bbbb"),
		func() { call(p, "g", word(p, "cccc"), word(p, "dddd")) },
		word(p, "eeee"),
	)
}

func TestPrinter_ConsistentGroupBreaksEveryBreak(t *testing.T) {
	p := NewPrinter(nil, narrow(20))
	call(p, "call", word(p, "alpha"), word(p, "beta"), word(p, "gamma"))

	// beta would fit after alpha, but the group broke so every break fires
	require.Equal(t, "call(\n    alpha,\n    beta,\n    gamma\n)", p.EOF())
}

func TestPrinter_InconsistentGroupFillsLines(t *testing.T) {
	p := NewPrinter(nil, narrow(20))
	p.ScanText(Str("["))
	p.ScanBegin(Inconsistent)
	items := []string{"one", "two", "three", "four", "five", "six"}
	for i, item := range items {
		if i > 0 {
			p.ScanBreak(" ")
		}
		p.ScanText(Str(item))
		if i < len(items)-1 {
			p.ScanText(Str(","))
		}
	}
	p.ScanEnd()
	p.ScanText(Str("]"))

	require.Equal(t, "[one, two, three,\n    four, five, six]", p.EOF())
}

func TestPrinter_NestedGroups(t *testing.T) {
	t.Run("inner group stays flat", func(t *testing.T) {
		p := NewPrinter(nil, narrow(20))
		nestedCall(p)

		out := p.EOF()
		require.Equal(t, "f(\n    aaaa,\n    bbbb,\n    g(cccc, dddd),\n    eeee\n)", out)
		for _, line := range strings.Split(out, "\n") {
			require.LessOrEqual(t, len(line), 20, "line %q is too long", line)
		}
	})

	t.Run("fits on one line", func(t *testing.T) {
		p := NewPrinter(nil, Defaults)
		nestedCall(p)
		require.Equal(t, "f(aaaa, bbbb, g(cccc, dddd), eeee)", p.EOF())
	})
}

func TestPrinter_FlatDocumentHasNoLineBreaks(t *testing.T) {
	p := NewPrinter(nil, Defaults)
	nestedCall(p)
	p.ScanText(Str(", "))
	nestedCall(p)

	out := p.EOF()
	require.Less(t, len(out), DefaultMaxWidth)
	require.NotContains(t, out, "\n")

	// explicit newlines are the only ones allowed in a document that fits
	p = NewPrinter(nil, Defaults)
	call(p, "f", word(p, "a"), word(p, "b"))
	p.ScanText(Str("\n"))
	call(p, "g", word(p, "c"))
	require.Equal(t, "f(a, b)\ng(c)", p.EOF())
}

func TestPrinter_OverlongFragmentOverflows(t *testing.T) {
	long := strings.Repeat("x", 30)

	p := NewPrinter(nil, narrow(20))
	p.ScanBegin(Inconsistent)
	p.ScanText(Str("short"))
	p.ScanBreak(" ")
	p.ScanText(Str(long))
	p.ScanEnd()

	out := p.EOF()
	require.Equal(t, "short\n    "+long, out)

	// the only line over the limit is the unbreakable fragment itself
	for _, line := range strings.Split(out, "\n") {
		if len(line) > 20 {
			require.Equal(t, long, strings.TrimSpace(line))
		}
	}
}

func TestPrinter_TextModes(t *testing.T) {
	body := func(p *Printer) {
		p.ScanText(Str("a"))
		p.ScanText(Str(","))
		p.ScanBreak(" ")
		p.ScanText(Str("b"))
		p.ScanTextWithMode(Str(","), Break)
	}
	brace := Brace{}

	t.Run("flat", func(t *testing.T) {
		p := NewPrinter(nil, Defaults)
		Macro{Delim: brace, Mode: Consistent, Inner: NodeFunc(body)}.PrettyPrint(p)
		require.Equal(t, "{ a, b }", p.EOF())
	})

	t.Run("broken", func(t *testing.T) {
		p := NewPrinter(nil, narrow(5))
		Macro{Delim: brace, Mode: Consistent, Inner: NodeFunc(body)}.PrettyPrint(p)
		require.Equal(t, "{\n    a,\n    b,\n}", p.EOF())
	})

	t.Run("top level counts as flat", func(t *testing.T) {
		p := NewPrinter(nil, Defaults)
		p.ScanTextWithMode(Str("flat"), NoBreak)
		p.ScanTextWithMode(Str("broken"), Break)
		require.Equal(t, "flat", p.EOF())
	})
}

func TestSurroundOpened(t *testing.T) {
	p := NewPrinter(nil, narrow(12))
	p.ScanBegin(Inconsistent)
	p.ScanText(Str("in"))
	p.ScanBreak(" ")

	// the outer group ends at the opening paren, so the body indents one level only
	SurroundOpened(p, Paren{}, Consistent, func(p *Printer) { p.ScanEnd() }, func(p *Printer) {
		p.ScanText(Str("alpha,"))
		p.ScanBreak(" ")
		p.ScanText(Str("beta"))
	})

	require.Equal(t, "in (\n    alpha,\n    beta\n)", p.EOF())
}

func TestPrinter_HardBreak(t *testing.T) {
	p := NewPrinter(nil, Options{InitialIndent: 1})
	p.ScanText(Str("a;"))
	p.ScanHardBreak()
	p.ScanText(Str("b;"))
	require.Equal(t, "a;\n    b;", p.EOF())
}

func TestPrinter_DeepNestingClampsWidth(t *testing.T) {
	p := NewPrinter(nil, Options{MaxWidth: 12, IndentWidth: 4, MinWidth: 8})
	depth := 5
	for i := 0; i < depth; i++ {
		p.ScanText(Str("("))
		p.ScanBegin(Consistent)
	}
	p.ScanText(Str("xxxxxx"))
	for i := 0; i < depth; i++ {
		p.ScanEnd()
		p.ScanText(Str(")"))
	}

	// at depth four the indentation leaves no room, but MinWidth keeps 8 columns
	// available, so the innermost group still fits
	want := "(\n" +
		"    (\n" +
		"        (\n" +
		"            (\n" +
		"                (xxxxxx)\n" +
		"            )\n" +
		"        )\n" +
		"    )\n" +
		")"
	require.Equal(t, want, p.EOF())
}

func TestPrinter_TriviaOrdering(t *testing.T) {
	src := "a -- one\n/* two */ b\n-- three\nc"
	trivia, err := LexTrivia(src)
	require.NoError(t, err)
	require.Len(t, trivia, 3)

	p := NewPrinter(trivia, Defaults)
	p.ScanText(NewSourceText("a", SpanOf(lc(1, 1), "a")))

	b := SpanOf(lc(2, 11), "b")
	p.FlushTrivia(b)
	p.ScanBreak(" ")
	p.ScanText(NewSourceText("b", b))

	c := SpanOf(lc(4, 1), "c")
	p.FlushTrivia(c)
	p.ScanBreak(" ")
	p.ScanText(NewSourceText("c", c))

	out := p.EOF()
	require.Equal(t, "a -- one\n/* two */\nb\n-- three\nc", out)
	require.Less(t, strings.Index(out, "one"), strings.Index(out, "two"))
	require.Less(t, strings.Index(out, "two"), strings.Index(out, "three"))
}

func TestPrinter_TrailingTriviaFlushedAtEOF(t *testing.T) {
	trivia, err := LexTrivia("x\n\n-- end\n/* tail */\n")
	require.NoError(t, err)

	p := NewPrinter(trivia, Defaults)
	p.ScanText(NewSourceText("x", SpanOf(lc(1, 1), "x")))

	require.Equal(t, "x\n\n-- end\n/* tail */\n", p.EOF())
}

func TestPrinter_BlankLines(t *testing.T) {
	src := "(\n  a,\n\n  b\n)"
	trivia, err := LexTrivia(src)
	require.NoError(t, err)
	require.Len(t, trivia, 1)

	paren := Paren{Span: DelimSpan{
		Open:  SpanOf(lc(1, 1), "("),
		Close: SpanOf(lc(5, 1), ")"),
	}}

	p := NewPrinter(trivia, Defaults)
	Surround(p, paren, Consistent, func(p *Printer) {
		a := SpanOf(lc(2, 3), "a")
		p.FlushTrivia(a)
		p.ScanText(NewSourceText("a", a))
		p.ScanText(NewSourceText(",", SpanOf(lc(2, 4), ",")))

		b := SpanOf(lc(4, 3), "b")
		p.FlushTrivia(b)
		p.ScanBreak(" ")
		p.ScanText(NewSourceText("b", b))
	})

	require.Equal(t, "(\n    a,\n\n    b\n)", p.EOF())
}

func TestPrinter_BlankLineBeforeCloseKeepsGroupFlat(t *testing.T) {
	src := "(a\n\n)"
	trivia, err := LexTrivia(src)
	require.NoError(t, err)
	require.Len(t, trivia, 1)

	paren := Paren{Span: DelimSpan{
		Open:  SpanOf(lc(1, 1), "("),
		Close: SpanOf(lc(3, 1), ")"),
	}}

	p := NewPrinter(trivia, Defaults)
	Surround(p, paren, Consistent, func(p *Printer) {
		p.ScanText(NewSourceText("a", SpanOf(lc(1, 2), "a")))
	})

	require.Equal(t, "(a)", p.EOF())
}

func TestPrinter_TextWithNewlineKeepsMinWidth(t *testing.T) {
	p := NewPrinter(nil, Options{MaxWidth: 20, MinWidth: 10, IndentWidth: 4})
	p.ScanText(Str("x\n" + strings.Repeat("y", 15)))
	p.ScanBegin(Consistent)
	p.ScanText(Str("aaa"))
	p.ScanBreak(" ")
	p.ScanText(Str("bbbb"))
	p.ScanEnd()

	// only 5 columns remain on the last line, but the width never drops below MinWidth
	require.Equal(t, "x\n"+strings.Repeat("y", 15)+"aaa bbbb", p.EOF())
}

func TestPrinter_CommentForcesGroupBreak(t *testing.T) {
	src := "(a, -- first\n b)"
	trivia, err := LexTrivia(src)
	require.NoError(t, err)

	paren := Paren{Span: DelimSpan{
		Open:  SpanOf(lc(1, 1), "("),
		Close: SpanOf(lc(2, 3), ")"),
	}}

	p := NewPrinter(trivia, Defaults)
	Surround(p, paren, Consistent, func(p *Printer) {
		p.ScanText(NewSourceText("a", SpanOf(lc(1, 2), "a")))
		p.ScanText(NewSourceText(",", SpanOf(lc(1, 3), ",")))

		b := SpanOf(lc(2, 2), "b")
		p.FlushTrivia(b)
		p.ScanBreak(" ")
		p.ScanText(NewSourceText("b", b))
	})

	require.Equal(t, "(\n    a, -- first\n    b\n)", p.EOF())
}

func TestPrinter_RoundTripWithoutTrivia(t *testing.T) {
	for _, width := range []int{5, 12, 20, 89} {
		p := NewPrinter(nil, narrow(width))
		nestedCall(p)

		stripped := strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		}, p.EOF())
		require.Equal(t, "f(aaaa,bbbb,g(cccc,dddd),eeee)", stripped, "width %d", width)
	}
}

func TestPrinter_ContractViolations(t *testing.T) {
	t.Run("end without begin", func(t *testing.T) {
		p := NewPrinter(nil, Defaults)
		require.Panics(t, p.ScanEnd)
	})

	t.Run("begin without end", func(t *testing.T) {
		p := NewPrinter(nil, Defaults)
		p.ScanBegin(Consistent)
		require.Panics(t, func() { p.EOF() })
	})

	t.Run("reuse after EOF", func(t *testing.T) {
		p := NewPrinter(nil, Defaults)
		p.ScanText(Str("x"))
		require.Equal(t, "x", p.EOF())
		require.Panics(t, func() { p.ScanText(Str("y")) })
		require.Panics(t, func() { p.EOF() })
	})

	t.Run("unordered trivia", func(t *testing.T) {
		trivia := []Trivia{
			{Kind: LineComment, Span: SpanOf(lc(2, 1), "-- b"), Text: "-- b"},
			{Kind: LineComment, Span: SpanOf(lc(1, 1), "-- a"), Text: "-- a"},
		}
		require.Panics(t, func() { NewPrinter(trivia, Defaults) })
	})
}

func TestPrinter_SpacingAfterLineComment(t *testing.T) {
	trivia, err := LexTrivia("a -- x\nb /* y */ c")
	require.NoError(t, err)

	p := NewPrinter(trivia, Defaults)
	p.ScanText(NewSourceText("a", SpanOf(lc(1, 1), "a")))

	b := SpanOf(lc(2, 1), "b")
	p.FlushTrivia(b)
	p.ScanText(Str(" "))
	p.ScanText(NewSourceText("b", b))

	c := SpanOf(lc(2, 11), "c")
	p.FlushTrivia(c)
	p.ScanText(Str(" "))
	p.ScanText(NewSourceText("c", c))

	require.Equal(t, "a -- x\nb /* y */ c", p.EOF())
}

func TestPrinter_InlineBlockComment(t *testing.T) {
	trivia, err := LexTrivia("f(/* x */a)")
	require.NoError(t, err)

	paren := Paren{Span: DelimSpan{
		Open:  SpanOf(lc(1, 2), "("),
		Close: SpanOf(lc(1, 11), ")"),
	}}

	p := NewPrinter(trivia, Defaults)
	p.ScanText(NewSourceText("f", SpanOf(lc(1, 1), "f")))
	Surround(p, paren, Consistent, func(p *Printer) {
		a := SpanOf(lc(1, 10), "a")
		p.FlushTrivia(a)
		p.ScanText(NewSourceText("a", a))
	})

	require.Equal(t, "f(/* x */ a)", p.EOF())
}
