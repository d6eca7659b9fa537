// Package format lays out parsed query documents with the pretty printer.
//
// The formatter walks the bracket tree produced by package parser and describes it to a
// pretty.Printer: statements end at `;` and start on their own line, items inside
// brackets are separated by breakable spaces after `,` or `;`, and comments from the
// source are interleaved where they were written.
//
// Key features:
//   - Groups stay on one line when they fit and break one item per line when they don't
//   - Square brackets fill lines instead of breaking every item
//   - Long statements wrap between words, indenting continuation lines
//   - Brace bodies are padded with spaces while flat
//   - Trailing separators are kept only on broken groups
//   - Comments and single blank lines are preserved
//
// Usage:
//
//	// Object-oriented API with default options
//	formatter := format.New(format.Defaults)
//
//	doc, _ := parser.ParseString("posts { id, title, comments(first: 5) { id } };")
//	var buf bytes.Buffer
//	err := formatter.Format(&buf, doc)
//
//	// Functional API
//	err := format.Format(&buf, pretty.Options{MaxWidth: 40}, doc)
//
//	// Straight from source text
//	out, err := format.FormatString(format.Defaults, src)
package format
