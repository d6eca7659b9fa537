package parser

import (
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
	"github.com/pseudomuto/qfmt/pkg/pretty"
)

// Delim identifies the bracket pair of a Group.
type Delim int

const (
	Paren Delim = iota
	Brace
	Bracket
)

func (d Delim) String() string {
	switch d {
	case Brace:
		return "brace"
	case Bracket:
		return "bracket"
	default:
		return "paren"
	}
}

var (
	delimByOpen  = map[string]Delim{"(": Paren, "{": Brace, "[": Bracket}
	delimByClose = map[string]Delim{")": Paren, "}": Brace, "]": Bracket}
)

type (
	// Document is a parsed query file.
	Document struct {
		// Source is the text the document was parsed from.
		Source string

		// Nodes are the top-level nodes in source order.
		Nodes []*Node
	}

	// Node is either a Group or an Atom.
	Node struct {
		Group *Group `parser:"  @@"`
		Atom  *Atom  `parser:"| @@"`
	}

	// Group is a bracketed sequence of nodes.
	Group struct {
		Pos   lexer.Position
		Open  string  `parser:"@Open"`
		Nodes []*Node `parser:"@@*"`
		Close *Closer `parser:"@@"`
	}

	// Closer is the closing bracket of a Group.
	Closer struct {
		Pos   lexer.Position
		Value string `parser:"@Close"`
	}

	// Atom is a single token: an identifier, literal, operator or punctuation.
	Atom struct {
		Pos   lexer.Position
		Value string `parser:"@(Ident | QuotedIdent | Number | String | Operator | Punct)"`
	}
)

func position(pos lexer.Position) pretty.LineColumn {
	return pretty.LineColumn{Line: pos.Line, Column: pos.Column}
}

// Span returns the source span of the node.
func (n *Node) Span() pretty.Span {
	if n.Group != nil {
		return n.Group.Span()
	}
	return n.Atom.Span()
}

// Is reports whether the node is an atom with the given value.
func (n *Node) Is(value string) bool {
	return n.Atom != nil && n.Atom.Value == value
}

// Span returns the source span of the atom.
func (a *Atom) Span() pretty.Span {
	return pretty.SpanOf(position(a.Pos), a.Value)
}

// Text returns the atom as a source-positioned text fragment.
func (a *Atom) Text() pretty.SourceText {
	return pretty.NewSourceText(a.Value, a.Span())
}

// Delim returns the kind of brackets around the group.
func (g *Group) Delim() Delim {
	return delimByOpen[g.Open]
}

// DelimSpan returns the spans of the opening and closing brackets.
func (g *Group) DelimSpan() pretty.DelimSpan {
	return pretty.DelimSpan{
		Open:  pretty.SpanOf(position(g.Pos), g.Open),
		Close: pretty.SpanOf(position(g.Close.Pos), g.Close.Value),
	}
}

// Span returns the source span from the opening to the closing bracket.
func (g *Group) Span() pretty.Span {
	s := g.DelimSpan()
	return s.Open.Join(s.Close)
}

// validate checks that every group is closed by the bracket matching its opener.
func (d *Document) validate() error {
	return walkGroups(d.Nodes, func(g *Group) error {
		if delimByClose[g.Close.Value] != g.Delim() {
			return errors.Errorf("%d:%d: mismatched closing bracket %q for %q opened at %d:%d",
				g.Close.Pos.Line, g.Close.Pos.Column, g.Close.Value, g.Open, g.Pos.Line, g.Pos.Column)
		}
		return nil
	})
}

func walkGroups(nodes []*Node, fn func(*Group) error) error {
	for _, n := range nodes {
		if n.Group == nil {
			continue
		}
		if err := fn(n.Group); err != nil {
			return err
		}
		if err := walkGroups(n.Group.Nodes, fn); err != nil {
			return err
		}
	}
	return nil
}
