package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/pseudomuto/qfmt/pkg/config"
	"github.com/pseudomuto/qfmt/pkg/format"
	"github.com/pseudomuto/qfmt/pkg/parser"
	"github.com/urfave/cli/v3"
)

// fmtRun carries the settings of one fmt invocation.
type fmtRun struct {
	formatter *format.Formatter
	config    *config.Config
	write     bool
	list      bool
	out       io.Writer
}

// fmtCmd creates a CLI command for formatting query files, allowing users to format
// individual files, entire directory trees or standard input.
//
// The command supports three output modes:
//   - Stdout mode (default): Formatted queries are written to standard output
//   - Write mode (-w flag): Files are modified in-place with formatted content
//   - List mode (-l flag): Paths of files whose formatting differs are printed
//
// Path handling:
//   - File paths: Format the specified file directly
//   - Directory paths: Recursively format every file with a configured extension
//   - --stdin: Read the query from standard input and write it to standard output
//
// Flags:
//   - -w: Write formatted results back to source files instead of stdout
//   - -l: List files whose formatting differs
//   - --stdin: Format standard input
//   - --width, --indent: Override the configured line width and indentation
//
// Examples:
//
//	# Format single file to stdout
//	qfmt fmt posts.qry
//
//	# Format all query files in a directory tree in-place
//	qfmt fmt -w queries/
//
//	# Check which files need formatting
//	qfmt fmt -l queries/
//
//	# Format a pipe with a narrower width
//	cat posts.qry | qfmt fmt --stdin --width 60
func fmtCmd() *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "Format query files",
		ArgsUsage: "<path>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Write result to source files instead of stdout",
			},
			&cli.BoolFlag{
				Name:    "list",
				Aliases: []string{"l"},
				Usage:   "List files whose formatting differs",
			},
			&cli.BoolFlag{
				Name:  "stdin",
				Usage: "Format standard input instead of a path",
			},
			&cli.IntFlag{
				Name:  "width",
				Usage: "Maximum line width (overrides the config file)",
			},
			&cli.IntFlag{
				Name:  "indent",
				Usage: "Spaces per indentation level (overrides the config file)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts := currentConfig.GetOptions()
			if cmd.IsSet("width") {
				opts.MaxWidth = int(cmd.Int("width"))
			}
			if cmd.IsSet("indent") {
				opts.IndentWidth = int(cmd.Int("indent"))
			}
			if opts.MaxWidth <= 0 || opts.IndentWidth <= 0 {
				return errors.New("width and indent must be positive")
			}
			opts.Logger = slog.Default()

			run := &fmtRun{
				formatter: format.New(opts),
				config:    currentConfig,
				write:     cmd.Bool("write"),
				list:      cmd.Bool("list"),
				out:       cmd.Writer,
			}

			if cmd.Bool("stdin") {
				if cmd.Args().Len() != 0 || run.write || run.list {
					return errors.New("--stdin cannot be combined with a path, -w or -l")
				}
				return run.formatReader(cmd.Reader)
			}

			if cmd.Args().Len() != 1 {
				return errors.New("exactly one path argument is required")
			}

			return run.formatPath(cmd.Args().First())
		},
	}
}

// formatPath handles formatting of either a single file or a directory recursively.
func (r *fmtRun) formatPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(err, "failed to access path: %s", path)
	}

	if info.IsDir() {
		return r.formatDirectory(path)
	}

	return r.formatFile(path, info.Mode())
}

// formatDirectory recursively walks through a directory and formats all query files.
// WalkDir visits entries in lexical order, so output is stable across platforms.
func (r *fmtRun) formatDirectory(dir string) error {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && r.config.Matches(d.Name()) {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "failed to walk directory: %s", dir)
	}

	if len(files) == 0 {
		return errors.Errorf("no query files found in directory: %s", dir)
	}

	for _, file := range files {
		info, err := os.Stat(file)
		if err != nil {
			return errors.Wrapf(err, "failed to access path: %s", file)
		}

		if err := r.formatFile(file, info.Mode()); err != nil {
			return errors.Wrapf(err, "failed to format file: %s", file)
		}
	}

	return nil
}

// formatFile formats a single file and writes the result according to the run mode.
func (r *fmtRun) formatFile(path string, mode fs.FileMode) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read file: %s", path)
	}

	formatted, err := r.format(content)
	if err != nil {
		return errors.Wrapf(err, "failed to format query in file: %s", path)
	}

	changed := !bytes.Equal(content, formatted)
	slog.Debug("formatted file", "path", path, "changed", changed)

	if r.list && changed {
		if _, err := fmt.Fprintln(r.out, path); err != nil {
			return errors.Wrap(err, "failed to write file list")
		}
	}

	if r.write {
		if !changed {
			return nil
		}

		if err := os.WriteFile(path, formatted, mode.Perm()); err != nil {
			return errors.Wrapf(err, "failed to write formatted content to file: %s", path)
		}
		return nil
	}

	if r.list {
		return nil
	}

	if _, err := r.out.Write(formatted); err != nil {
		return errors.Wrap(err, "failed to write formatted content to output")
	}
	return nil
}

// formatReader formats everything read from in and writes it to the output.
func (r *fmtRun) formatReader(in io.Reader) error {
	content, err := io.ReadAll(in)
	if err != nil {
		return errors.Wrap(err, "failed to read standard input")
	}

	formatted, err := r.format(content)
	if err != nil {
		return err
	}

	if _, err := r.out.Write(formatted); err != nil {
		return errors.Wrap(err, "failed to write formatted content to output")
	}
	return nil
}

func (r *fmtRun) format(content []byte) ([]byte, error) {
	doc, err := parser.ParseString(string(content))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := r.formatter.Format(&buf, doc); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
