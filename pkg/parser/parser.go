package parser

import (
	"io"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

var (
	// queryLexer defines the tokens of query files. Comments and whitespace are elided by
	// the parser; their patterns must match the trivia lexer in package pretty.
	queryLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "LineComment", Pattern: `(--|//)[^\r\n]*`},
		{Name: "BlockComment", Pattern: `/\*[^*]*\*+([^/*][^*]*\*+)*/`},
		{Name: "String", Pattern: `'([^'\\]|\\.)*'|"([^"\\]|\\.)*"`},
		{Name: "QuotedIdent", Pattern: "`[^`]*`"},
		{Name: "Number", Pattern: `\d+(\.\d+)?([eE][+-]?\d+)?`},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "Operator", Pattern: `::|!=|<>|<=|>=|=>|->|\|\||&&`},
		{Name: "Open", Pattern: `[(\[{]`},
		{Name: "Close", Pattern: `[)\]}]`},
		{Name: "Punct", Pattern: `[,;.:=+\-*/%<>!#@$&|^~?]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	// parser is the participle parser instance for bracket trees
	parser = participle.MustBuild[file](
		participle.Lexer(queryLexer),
		participle.Elide("LineComment", "BlockComment", "Whitespace"),
	)
)

// file is the grammar root. Document wraps it with the source it was parsed from.
type file struct {
	Nodes []*Node `parser:"@@*"`
}

// Parse reads a query document from r.
//
// Example usage:
//
//	f, err := os.Open("posts.qry")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer f.Close()
//
//	doc, err := parser.Parse(f)
//	if err != nil {
//		log.Fatalf("Parse error: %v", err)
//	}
//
// Returns an error if the reader cannot be read or the brackets do not balance.
func Parse(reader io.Reader) (*Document, error) {
	src, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read query")
	}

	return ParseString(string(src))
}

// ParseString reads a query document from a string.
func ParseString(src string) (*Document, error) {
	f, err := parser.ParseString("", src)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse query")
	}

	doc := &Document{Source: src, Nodes: f.Nodes}
	if err := doc.validate(); err != nil {
		return nil, errors.Wrap(err, "failed to parse query")
	}

	return doc, nil
}

// ParseFile reads the query document stored at path.
func ParseFile(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read file: %s", path)
	}

	doc, err := ParseString(string(content))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse file: %s", path)
	}

	return doc, nil
}
