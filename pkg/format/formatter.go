package format

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/qfmt/pkg/parser"
	"github.com/pseudomuto/qfmt/pkg/pretty"
)

// Defaults are the standard formatting options.
var Defaults = pretty.Defaults

// Formatter lays out query documents with a fixed set of options.
type Formatter struct {
	options pretty.Options
}

// New creates a new Formatter with the specified options. Zero fields fall back to the
// printer defaults.
func New(options pretty.Options) *Formatter {
	return &Formatter{options: options}
}

// Format writes the formatted document to w. Non-empty output ends with exactly one
// newline.
func (f *Formatter) Format(w io.Writer, doc *parser.Document) error {
	if doc == nil {
		return nil
	}

	trivia, err := pretty.LexTrivia(doc.Source)
	if err != nil {
		return err
	}

	p := pretty.NewPrinter(trivia, f.options)
	statements(p, doc.Nodes)

	out := strings.TrimRight(p.EOF(), " \t\r\n")
	if out != "" {
		out += "\n"
	}

	if err := verify(doc, out); err != nil {
		return err
	}

	if _, err := io.WriteString(w, out); err != nil {
		return errors.Wrap(err, "failed to write formatted query")
	}

	return nil
}

// Format writes doc to w using the given options.
func Format(w io.Writer, opts pretty.Options, doc *parser.Document) error {
	return New(opts).Format(w, doc)
}

// FormatString parses src and returns it formatted.
func FormatString(opts pretty.Options, src string) (string, error) {
	doc, err := parser.ParseString(src)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	if err := Format(&buf, opts, doc); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// verify checks that out parses back to the same tree as doc.
func verify(doc *parser.Document, out string) error {
	formatted, err := parser.ParseString(out)
	if err != nil {
		return errors.Wrap(err, "formatted output does not parse")
	}

	if !doc.Equal(formatted) {
		return errors.New("formatting changed the structure of the query")
	}

	return nil
}
