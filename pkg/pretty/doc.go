// Package pretty provides a width-aware pretty-printer for structured documents.
//
// Callers walk their own document tree depth first and describe it to a Printer as a
// stream of text fragments, candidate line breaks and nested groups. Once the whole
// document has been scanned, EOF renders it in a single pass, breaking groups that do
// not fit in the remaining line width and splicing in comments and blank lines
// recovered from the input source.
//
// Key features:
//   - Consistent groups break all of their direct breaks or none of them
//   - Inconsistent groups fill each line and break only where needed
//   - Break/NoBreak text modes for content that depends on the group decision
//   - Verbatim comment and blank line preservation ordered by source span
//   - Bracket adapters (Paren, Brace, Bracket) for delimited groups
//
// Usage:
//
//	p := pretty.NewPrinter(nil, pretty.Defaults)
//	p.ScanText(pretty.Str("select"))
//	p.ScanBegin(pretty.Inconsistent)
//	p.ScanBreak(" ")
//	p.ScanText(pretty.Str("a, b, c"))
//	p.ScanEnd()
//	out := p.EOF() // "select a, b, c"
//
// Widths are measured in bytes. Multi-byte characters are not treated specially, so
// lines containing them may render narrower than the configured width.
//
// Scanning calls must be well nested. Unmatched ScanEnd, an open group at EOF, trivia
// that is not ordered by span and reusing a consumed Printer are programming errors and
// panic.
package pretty
