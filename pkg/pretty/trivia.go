package pretty

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// TriviaKind identifies the kind of out-of-band source text.
type TriviaKind uint8

const (
	// LineComment runs to the end of its line (`-- ...` or `// ...`).
	LineComment TriviaKind = iota
	// BlockComment is a `/* ... */` comment and may span several lines.
	BlockComment
	// BlankLine marks one or more empty lines between two pieces of source.
	BlankLine
)

func (k TriviaKind) String() string {
	switch k {
	case BlockComment:
		return "block-comment"
	case BlankLine:
		return "blank-line"
	default:
		return "line-comment"
	}
}

// Trivia is source text outside the structural grammar that is preserved verbatim.
type Trivia struct {
	Kind TriviaKind
	Span Span
	Text string
}

// triviaLexer splits source into comments, whitespace and everything else. Strings are
// matched whole so comment markers inside them are not mistaken for comments.
var triviaLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "LineComment", Pattern: `(--|//)[^\r\n]*`},
	{Name: "BlockComment", Pattern: `/\*[^*]*\*+([^/*][^*]*\*+)*/`},
	{Name: "String", Pattern: `'([^'\\]|\\.)*'|"([^"\\]|\\.)*"`},
	{Name: "QuotedIdent", Pattern: "`[^`]*`"},
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Word", Pattern: `[^\s'"` + "`" + `/\-]+`},
	{Name: "Char", Pattern: `.`},
})

// LexTrivia extracts the comments and blank lines of src, ordered by position.
func LexTrivia(src string) ([]Trivia, error) {
	lex, err := triviaLexer.LexString("", src)
	if err != nil {
		return nil, errors.Wrap(err, "failed to lex trivia")
	}

	tokens, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, errors.Wrap(err, "failed to lex trivia")
	}

	symbols := triviaLexer.Symbols()
	var trivia []Trivia
	for _, tok := range tokens {
		if tok.EOF() {
			break
		}

		start := LineColumn{Line: tok.Pos.Line, Column: tok.Pos.Column}
		switch tok.Type {
		case symbols["LineComment"]:
			trivia = append(trivia, Trivia{Kind: LineComment, Span: SpanOf(start, tok.Value), Text: tok.Value})
		case symbols["BlockComment"]:
			trivia = append(trivia, Trivia{Kind: BlockComment, Span: SpanOf(start, tok.Value), Text: tok.Value})
		case symbols["Whitespace"]:
			if strings.Count(tok.Value, "\n") >= 2 {
				trivia = append(trivia, Trivia{Kind: BlankLine, Span: SpanOf(start, tok.Value)})
			}
		}
	}

	return trivia, nil
}

// checkTriviaOrder panics unless every entry precedes the next one.
func checkTriviaOrder(trivia []Trivia) {
	for i := 1; i < len(trivia); i++ {
		if !trivia[i-1].Span.Precedes(trivia[i].Span) {
			panic(errors.Errorf("pretty: trivia at %s is out of order after %s", trivia[i].Span, trivia[i-1].Span))
		}
	}
}
