// Package parser reads query files into bracket trees.
//
// The parser does not know the query language itself. It lexes the source with a
// participle lexer, matches parentheses, braces and brackets, and returns a Document of
// nested nodes that carry their source spans. Comments and whitespace are elided from
// the tree; use pretty.LexTrivia on the same source to recover them.
//
// Basic usage:
//
//	doc, err := parser.ParseString(`posts { id, title, comments { id } limit 5 };`)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	for _, node := range doc.Nodes {
//		if node.Group != nil {
//			fmt.Println(node.Group.Delim(), len(node.Group.Nodes))
//		}
//	}
//
// Unbalanced or mismatched brackets are reported with their line and column.
package parser
