// Package cmd provides CLI commands for the qfmt tool.
//
// # Available Commands
//
// The cmd package currently provides:
//   - fmt: Format query files, directories or standard input
//   - init: Write a default qfmt.yaml
//
// # Command Structure
//
// Each command is implemented as a separate function that returns a
// *cli.Command, following the urfave/cli/v3 pattern. Commands are provided to
// an fx value group by Module and registered with the root command by Run.
//
// # Global Options
//
// All commands support global flags:
//   - --config, -c: Configuration file (defaults to qfmt.yaml, env QFMT_CONFIG)
//   - --log-level: Log level for diagnostics written to stderr
//   - --help, -h: Display command help
//   - --version: Display version information
//
// # Example Usage
//
//	qfmt init                        # Write qfmt.yaml
//	qfmt fmt queries/                # Print formatted queries
//	qfmt fmt -w queries/             # Format in place
//	qfmt fmt -l queries/             # List files that need formatting
//	qfmt fmt --stdin --width 60      # Format a pipe
package cmd
