package format

import (
	"github.com/pseudomuto/qfmt/pkg/parser"
	"github.com/pseudomuto/qfmt/pkg/pretty"
)

// item is a run of nodes followed by an optional separator.
type item struct {
	nodes []*parser.Node
	sep   *parser.Node
}

func (i item) first() *parser.Node {
	if len(i.nodes) > 0 {
		return i.nodes[0]
	}
	return i.sep
}

// split cuts nodes after every atom accepted by isSep.
func split(nodes []*parser.Node, isSep func(*parser.Node) bool) []item {
	var (
		items []item
		cur   item
	)

	for _, n := range nodes {
		if isSep(n) {
			cur.sep = n
			items = append(items, cur)
			cur = item{}
			continue
		}
		cur.nodes = append(cur.nodes, n)
	}

	if len(cur.nodes) > 0 {
		items = append(items, cur)
	}
	return items
}

func isStatementEnd(n *parser.Node) bool {
	return n.Is(";")
}

func isItemSeparator(n *parser.Node) bool {
	return n.Is(",") || n.Is(";")
}

// statements prints top-level statements, each starting on its own line.
func statements(p *pretty.Printer, nodes []*parser.Node) {
	for i, stmt := range split(nodes, isStatementEnd) {
		if i > 0 {
			p.FlushTrivia(stmt.first().Span())
			p.ScanHardBreak()
		}
		sequence(p, stmt.nodes, stmt.sep, pretty.Always)
	}
}

// sequence prints nodes followed by an optional separator printed with mode. A single
// space is kept wherever the source had whitespace.
//
// Runs of nodes fill lines: each run is an inconsistent group whose spaces may break,
// indenting the lines they start. A run closes right after the opening delimiter of a
// group, so the group's body indents from the line it opens on.
//
// Trivia written before the separator is flushed after it, keeping the separator on
// the line of its item.
func sequence(p *pretty.Printer, nodes []*parser.Node, sep *parser.Node, mode pretty.TextMode) {
	open := false
	begin := func() {
		if !open {
			p.ScanBegin(pretty.Inconsistent)
			open = true
		}
	}
	end := func(p *pretty.Printer) {
		if open {
			p.ScanEnd()
			open = false
		}
	}

	for i, n := range nodes {
		p.FlushTrivia(n.Span())
		begin()
		if i > 0 && spaced(nodes[i-1], n) {
			p.ScanBreak(" ")
		}

		if n.Group != nil {
			group(p, n.Group, end)
			continue
		}
		p.ScanText(n.Atom.Text())
	}

	if sep == nil {
		end(p)
		return
	}

	// A separator printed only in broken groups follows the state of the enclosing
	// group, not of the run.
	if mode != pretty.Always {
		end(p)
		p.ScanTextWithMode(sep.Atom.Text(), mode)
		return
	}

	begin()
	p.ScanText(sep.Atom.Text())
	end(p)
}

// spaced reports whether a space goes between prev and n. Separators hug the node
// before them and commas are always followed by a space.
func spaced(prev, n *parser.Node) bool {
	switch {
	case isItemSeparator(n):
		return false
	case prev.Is(","):
		return true
	default:
		return !n.Span().ImmediatelyFollows(prev.Span())
	}
}

// group prints a bracketed group. Parens and braces break every item once they don't
// fit; brackets fill lines. opened runs right after the opening delimiter.
func group(p *pretty.Printer, g *parser.Group, opened func(p *pretty.Printer)) {
	span := g.DelimSpan()
	body := func(p *pretty.Printer) { items(p, g.Nodes) }

	switch g.Delim() {
	case parser.Brace:
		if len(g.Nodes) == 0 {
			pretty.SurroundOpened(p, pretty.Brace{Span: span}, pretty.Consistent, opened, body)
			return
		}
		pretty.Macro{
			Delim:  pretty.Brace{Span: span},
			Mode:   pretty.Consistent,
			Inner:  pretty.NodeFunc(body),
			Opened: opened,
		}.PrettyPrint(p)
	case parser.Bracket:
		pretty.SurroundOpened(p, pretty.Bracket{Span: span}, pretty.Inconsistent, opened, body)
	default:
		pretty.SurroundOpened(p, pretty.Paren{Span: span}, pretty.Consistent, opened, body)
	}
}

// items prints the separated items of a group body. A separator that ends the body is
// printed only when the group breaks.
func items(p *pretty.Printer, nodes []*parser.Node) {
	list := split(nodes, isItemSeparator)

	for i, it := range list {
		last := i == len(list)-1

		mode := pretty.Always
		if last {
			mode = pretty.Break
		}
		sequence(p, it.nodes, it.sep, mode)

		if it.sep == nil || last {
			continue
		}
		p.FlushTrivia(list[i+1].first().Span())
		p.ScanBreak(" ")
	}
}
