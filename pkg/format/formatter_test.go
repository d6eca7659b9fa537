package format_test

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	. "github.com/pseudomuto/qfmt/pkg/format"
	"github.com/pseudomuto/qfmt/pkg/parser"
	"github.com/pseudomuto/qfmt/pkg/pretty"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestFormatString(t *testing.T) {
	tests := []struct {
		name string
		src  string
		opts pretty.Options
		want string
	}{
		{"empty input", "", Defaults, ""},
		{"only a comment", "  -- only a comment\n", Defaults, "-- only a comment\n"},
		{"statements on one line", "a;b;", Defaults, "a;\nb;\n"},
		{"blank lines collapse", "x;\n\n\n\ny;", Defaults, "x;\n\ny;\n"},
		{"flat brace drops trailing separator", "{a,b,}", Defaults, "{ a, b }\n"},
		{"flat bracket drops trailing separator", "[1,2,3,]", Defaults, "[1, 2, 3]\n"},
		{
			"broken brace keeps trailing separator",
			"{a,b,}",
			pretty.Options{MaxWidth: 5, MinWidth: 1},
			"{\n    a,\n    b,\n}\n",
		},
		{
			"custom indent",
			"f(alpha, beta, gamma);",
			pretty.Options{MaxWidth: 12, MinWidth: 1, IndentWidth: 2},
			"f(\n  alpha,\n  beta,\n  gamma\n);\n",
		},
		{"blank line inside group", "f(a,\n\n b)", Defaults, "f(\n    a,\n\n    b\n)\n"},
		{"leading comment in group", "f(\n  -- lead\n  a)", Defaults, "f(\n    -- lead\n    a\n)\n"},
		{"inline block comment", "x(/* inline */ a, b)", Defaults, "x(/* inline */ a, b)\n"},
		{"adjacent block comment", "a/* x */b", Defaults, "a /* x */ b\n"},
		{"blank line before paren close", "f(a\n\n);", Defaults, "f(a);\n"},
		{"blank line before close without separator", "f(a\n\n)", Defaults, "f(a)\n"},
		{"blank line before brace close", "{a\n\n}", Defaults, "{ a }\n"},
		{"comment before separator", "f(a -- x\n, b)", Defaults, "f(\n    a, -- x\n    b\n)\n"},
		{"comment before statement end", "a -- x\n;", Defaults, "a; -- x\n"},
		{
			"long statement wraps between words",
			"select a, b from t where x in (y);",
			pretty.Options{MaxWidth: 24, MinWidth: 1},
			"select a, b from t\n    where x in (y);\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatString(tt.opts, tt.src)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFormatString_ParseError(t *testing.T) {
	_, err := FormatString(Defaults, "f(a, b]")
	require.Error(t, err)
	require.Contains(t, err.Error(), "mismatched closing bracket")
}

func TestFormatter_Format(t *testing.T) {
	t.Run("reuses options across documents", func(t *testing.T) {
		formatter := New(pretty.Options{MaxWidth: 12, MinWidth: 1})

		for _, src := range []string{"f(alpha, beta);", "g(gamma, delta);"} {
			doc, err := parser.ParseString(src)
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, formatter.Format(&buf, doc))
			require.Contains(t, buf.String(), "(\n    ")
		}
	})

	t.Run("nil document", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, New(Defaults).Format(&buf, nil))
		require.Empty(t, buf.String())
	})

	t.Run("write error", func(t *testing.T) {
		doc, err := parser.ParseString("a;")
		require.NoError(t, err)

		err = Format(failingWriter{}, Defaults, doc)
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to write formatted query")
	})
}
