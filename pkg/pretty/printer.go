package pretty

import (
	"bytes"
	"strings"

	"github.com/pkg/errors"
)

// printFrame is the render state of one open group.
type printFrame struct {
	groupBreak   bool
	contentBreak bool
}

// Printer renders a scanned token stream into width-constrained text.
//
// A Printer is used for exactly one document: scan the whole document, then call EOF.
// It is not safe for concurrent use.
type Printer struct {
	opts   Options
	trivia []Trivia

	tokens    []token
	lastBreak int
	begins    []int
	lastSpan  Span
	hasSpan   bool
	consumed  bool

	out         bytes.Buffer
	space       int
	indent      int
	frames      []printFrame
	atLineStart bool

	// spacePending is set after an inline block comment so the next word is kept apart
	// from it.
	spacePending bool

	// pendingBlank is set by a blank line not yet followed by content. The open groups
	// break only once content arrives; a blank line right before a group closes is dropped.
	pendingBlank bool
}

// NewPrinter creates a printer that interleaves trivia into the rendered output.
// The trivia must be ordered by span; it panics otherwise.
func NewPrinter(trivia []Trivia, opts Options) *Printer {
	opts = opts.withDefaults()
	checkTriviaOrder(trivia)

	return &Printer{
		opts:      opts,
		trivia:    trivia,
		lastBreak: -1,
		space:     max(opts.MaxWidth, opts.MinWidth),
		indent:    opts.InitialIndent,
	}
}

// ScanText appends a fragment that is always printed.
func (p *Printer) ScanText(text Text) {
	p.ScanTextWithMode(text, Always)
}

// ScanTextWithMode appends a fragment printed according to mode.
func (p *Printer) ScanTextWithMode(text Text, mode TextMode) {
	p.checkOpen()
	if mode != NoBreak {
		p.applyBlank()
	}

	content := text.Content()
	if span, ok := text.Span(); ok {
		p.lastSpan, p.hasSpan = span, true
	}

	p.tokens = append(p.tokens, token{kind: tokenText, text: content, length: len(content), textMode: mode})
	p.measure(len(content))
}

// ScanBreak appends a point where the line may break. When it does not break, sep is
// printed instead.
func (p *Printer) ScanBreak(sep string) {
	p.checkOpen()
	p.applyBlank()

	p.grow(len(sep))
	p.lastBreak = len(p.tokens)
	p.tokens = append(p.tokens, token{kind: tokenBreak, text: sep, length: len(sep)})
}

// ScanHardBreak appends a break that always fires.
func (p *Printer) ScanHardBreak() {
	p.checkOpen()
	p.applyBlank()

	p.grow(unbounded)
	p.lastBreak = len(p.tokens)
	p.tokens = append(p.tokens, token{kind: tokenBreak, length: unbounded})
}

// ScanBegin opens a group. Every ScanBegin must be matched by one ScanEnd.
func (p *Printer) ScanBegin(mode BreakMode) {
	p.checkOpen()
	p.applyBlank()

	p.begins = append(p.begins, len(p.tokens))
	p.tokens = append(p.tokens, token{kind: tokenBegin, breakMode: mode})
}

// ScanEnd closes the innermost open group. It panics if no group is open.
func (p *Printer) ScanEnd() {
	p.checkOpen()

	if len(p.begins) == 0 {
		panic(errors.New("pretty: end without matching begin"))
	}

	begin := p.begins[len(p.begins)-1]
	p.begins = p.begins[:len(p.begins)-1]
	p.grow(p.tokens[begin].length)

	p.dropTrailingBlankLines()
	p.pendingBlank = false
	p.lastBreak = -1
	p.tokens = append(p.tokens, token{kind: tokenEnd})
}

// FlushTrivia splices every pending trivia entry that precedes before into the token
// stream at the current position.
func (p *Printer) FlushTrivia(before Span) {
	p.checkOpen()

	for len(p.trivia) > 0 && p.trivia[0].Span.Precedes(before) {
		p.scanTrivia(p.trivia[0])
		p.trivia = p.trivia[1:]
	}
}

// EOF renders the document. Trivia not yet interleaved is appended at the end. The
// printer cannot be used afterwards.
func (p *Printer) EOF() string {
	p.checkOpen()

	if len(p.begins) > 0 {
		panic(errors.Errorf("pretty: %d groups still open at end of document", len(p.begins)))
	}

	for _, t := range p.trivia {
		p.scanTrivia(t)
	}
	p.trivia = nil
	p.dropTrailingBlankLines()
	p.pendingBlank = false
	p.consumed = true

	for _, tok := range p.tokens {
		p.print(tok)
	}
	p.tokens = nil

	return p.out.String()
}

func (p *Printer) checkOpen() {
	if p.consumed {
		panic(errors.New("pretty: printer used after EOF"))
	}
}

// measure records n bytes of content against the last break and the innermost group.
func (p *Printer) measure(n int) {
	if p.lastBreak >= 0 {
		p.tokens[p.lastBreak].grow(n)
	}
	p.grow(n)
}

// grow adds n to the innermost open group.
func (p *Printer) grow(n int) {
	if len(p.begins) > 0 {
		p.tokens[p.begins[len(p.begins)-1]].grow(n)
	}
}

// forceBreak marks every open group as unable to fit, because its content will contain
// a newline.
func (p *Printer) forceBreak() {
	for _, i := range p.begins {
		p.tokens[i].length = unbounded
	}
}

// applyBlank forces the open groups to break for a blank line that is now followed by
// content.
func (p *Printer) applyBlank() {
	if p.pendingBlank {
		p.pendingBlank = false
		p.forceBreak()
	}
}

// trails reports whether a comment belongs at the end of the line of the last scanned
// fragment. A comment written before a separator is scanned after it and still trails.
func (p *Printer) trails(t Trivia) bool {
	return p.hasSpan && t.Span.Start.Line <= p.lastSpan.End.Line
}

func (p *Printer) scanTrivia(t Trivia) {
	tok := token{kind: tokenTrivia, text: t.Text, trivia: t.Kind}

	switch t.Kind {
	case BlankLine:
		if len(p.tokens) == 0 {
			return
		}
		if last := p.tokens[len(p.tokens)-1]; p.atGroupStart() ||
			(last.kind == tokenTrivia && last.trivia == BlankLine) {
			return
		}
		p.pendingBlank = true

	case LineComment:
		p.applyBlank()
		tok.trailing = p.trails(t)
		p.forceBreak()

	case BlockComment:
		p.applyBlank()
		tok.trailing = p.trails(t)
		if tok.trailing && !strings.Contains(t.Text, "\n") {
			tok.length = len(t.Text) + 1
			p.measure(tok.length)
		} else {
			tok.trailing = false
			p.forceBreak()
		}
	}

	if t.Kind != BlankLine {
		p.lastSpan, p.hasSpan = t.Span, true
	}
	p.tokens = append(p.tokens, tok)
}

// atGroupStart reports whether nothing but flat-only padding was scanned since the
// last group opened.
func (p *Printer) atGroupStart() bool {
	for i := len(p.tokens) - 1; i >= 0; i-- {
		switch tok := p.tokens[i]; {
		case tok.kind == tokenBegin:
			return true
		case tok.kind == tokenText && tok.textMode == NoBreak:
			continue
		default:
			return false
		}
	}
	return false
}

// dropTrailingBlankLines removes blank lines right before a group closes or the
// document ends. Flat-only padding after them is kept.
func (p *Printer) dropTrailingBlankLines() {
	for i := len(p.tokens) - 1; i >= 0; i-- {
		tok := p.tokens[i]
		if tok.kind == tokenText && tok.textMode == NoBreak {
			continue
		}
		if tok.kind != tokenTrivia || tok.trivia != BlankLine {
			return
		}
		p.tokens = append(p.tokens[:i], p.tokens[i+1:]...)
	}
}

func (p *Printer) contentBreak() bool {
	if len(p.frames) == 0 {
		return false
	}
	return p.frames[len(p.frames)-1].contentBreak
}

func (p *Printer) print(tok token) {
	switch tok.kind {
	case tokenText:
		broken := p.contentBreak()
		// Spacing never starts a line.
		if p.atLineStart && strings.Trim(tok.text, " ") == "" {
			return
		}
		if tok.textMode == Always || (tok.textMode == NoBreak && !broken) || (tok.textMode == Break && broken) {
			p.write(tok.text)
		}

	case tokenBreak:
		if p.contentBreak() || tok.length >= p.space {
			p.hardBreak()
		} else if !p.atLineStart {
			p.write(tok.text)
		}

	case tokenBegin:
		groupBreak := tok.breakMode == Consistent && tok.length >= p.space
		p.opts.Logger.Debug("group",
			"mode", tok.breakMode,
			"len", tok.length,
			"space", p.space,
			"indent", p.indent,
			"break", groupBreak,
		)

		p.frames = append(p.frames, printFrame{groupBreak: groupBreak, contentBreak: groupBreak})
		p.indent++
		if groupBreak {
			p.hardBreak()
		}

	case tokenEnd:
		frame := p.frames[len(p.frames)-1]
		p.frames = p.frames[:len(p.frames)-1]
		p.indent--
		if frame.groupBreak {
			p.hardBreak()
		}

	case tokenTrivia:
		p.printTrivia(tok)
	}
}

func (p *Printer) printTrivia(tok token) {
	switch tok.trivia {
	case BlankLine:
		if p.out.Len() == 0 {
			return
		}
		p.hardBreak()
		p.trimTrailingSpace()
		if !bytes.HasSuffix(p.out.Bytes(), []byte("\n\n")) {
			p.out.WriteByte('\n')
		}
		p.writeIndent()

	case LineComment:
		p.separateTrivia(tok.trailing)
		p.write(tok.text)
		p.hardBreak()

	case BlockComment:
		if !tok.trailing || !p.afterOpenDelim() {
			p.separateTrivia(tok.trailing)
		}
		p.write(tok.text)
		if tok.trailing {
			p.spacePending = true
		} else {
			p.hardBreak()
		}
	}
}

// separateTrivia puts a comment after a space when it trails code on the same line and
// on a fresh line otherwise.
func (p *Printer) separateTrivia(trailing bool) {
	if p.out.Len() == 0 || p.atLineStart {
		return
	}
	if trailing {
		p.write(" ")
		return
	}
	p.hardBreak()
}

func (p *Printer) afterOpenDelim() bool {
	b := p.out.Bytes()
	return len(b) > 0 && strings.IndexByte("([{", b[len(b)-1]) >= 0
}

func (p *Printer) write(s string) {
	if s == "" {
		return
	}
	if p.spacePending {
		p.spacePending = false
		if strings.TrimSpace(s) != "" && strings.IndexByte(")]},;", s[0]) < 0 {
			p.out.WriteByte(' ')
			p.space--
		}
	}
	p.out.WriteString(s)

	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		p.space = p.opts.MaxWidth - len(s[i+1:])
	} else {
		p.space -= len(s)
	}
	p.atLineStart = false
}

// hardBreak ends the current line and indents the next one. At the start of a fresh
// line it only re-indents.
func (p *Printer) hardBreak() {
	p.trimTrailingSpace()
	p.spacePending = false
	if !p.atLineStart {
		p.out.WriteByte('\n')
	}
	p.writeIndent()
}

func (p *Printer) writeIndent() {
	width := p.indent * p.opts.IndentWidth
	p.out.WriteString(strings.Repeat(" ", width))
	p.space = max(p.opts.MaxWidth-width, p.opts.MinWidth)
	p.atLineStart = true
}

func (p *Printer) trimTrailingSpace() {
	b := p.out.Bytes()
	n := len(bytes.TrimRight(b, " "))
	p.space += len(b) - n
	p.out.Truncate(n)
}
