package pretty

import "log/slog"

const (
	// DefaultMaxWidth is the line width the printer tries to stay within.
	DefaultMaxWidth = 89
	// DefaultIndentWidth is the number of spaces per indentation level.
	DefaultIndentWidth = 4
	// DefaultMinWidth is the smallest usable width left after indentation.
	DefaultMinWidth = 60
)

// Options controls the layout decisions of a Printer.
type Options struct {
	// MaxWidth is the maximum line width.
	MaxWidth int

	// IndentWidth is the number of spaces added per nesting level.
	IndentWidth int

	// MinWidth is a floor on the width available after indentation, so deeply nested
	// content degrades to cramped lines instead of a negative width. Values above
	// MaxWidth are clamped to MaxWidth.
	MinWidth int

	// InitialIndent is the indentation level the document starts at.
	InitialIndent int

	// Logger receives debug records for every group decision. Nil disables tracing.
	Logger *slog.Logger
}

// Defaults are the standard printer options.
var Defaults = Options{
	MaxWidth:    DefaultMaxWidth,
	IndentWidth: DefaultIndentWidth,
	MinWidth:    DefaultMinWidth,
}

// withDefaults returns a copy of opts with zero values replaced by defaults.
func (opts Options) withDefaults() Options {
	if opts.MaxWidth <= 0 {
		opts.MaxWidth = DefaultMaxWidth
	}
	if opts.IndentWidth <= 0 {
		opts.IndentWidth = DefaultIndentWidth
	}
	if opts.MinWidth <= 0 {
		opts.MinWidth = DefaultMinWidth
	}
	opts.MinWidth = min(opts.MinWidth, opts.MaxWidth)
	opts.InitialIndent = max(opts.InitialIndent, 0)
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return opts
}
