package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pseudomuto/qfmt/pkg/config"
	"github.com/pseudomuto/qfmt/pkg/consts"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

var currentConfig *config.Config

type (
	Params struct {
		fx.In

		Args       []string
		Commands   []*cli.Command `group:"commands"`
		Config     *config.Config
		Ctx        context.Context
		Lifecycle  fx.Lifecycle
		Shutdowner fx.Shutdowner
		Version    *Version
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}
)

// Run creates and executes the main qfmt CLI application with the given version and
// command-line arguments. The application starts once the fx lifecycle starts and
// shuts it down with the command's exit code.
//
// Global Flags:
//   - --config, -c: Project configuration file (defaults to qfmt.yaml)
//   - --log-level: Minimum level of log records written to stderr
//
// The configuration loaded by config.Module is used unless --config names another
// file, in which case that file must exist.
func Run(p Params) {
	currentConfig = p.Config

	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", p.Version.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", p.Version.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", p.Version.Timestamp)
	}

	app := &cli.Command{
		Name:  "qfmt",
		Usage: "A width-aware formatter for query files",
		Description: `qfmt lays out query files so that bracketed groups stay on one line
when they fit and break one item per line when they don't, keeping every
comment where it was written.`,
		Version: p.Version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "the qfmt config file",
				Sources: cli.EnvVars("QFMT_CONFIG"),
				Value:   consts.DefaultConfigFile,
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level (debug, info, warn, error)",
				Value: "warn",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			slog.SetDefault(newLogger(cmd.String("log-level")))

			if !cmd.IsSet("config") {
				return ctx, nil
			}

			cfg, err := config.LoadConfigFile(cmd.String("config"))
			if err != nil {
				return ctx, err
			}

			currentConfig = cfg
			return ctx, nil
		},
		Commands: p.Commands,
	}

	p.Lifecycle.Append(fx.StartHook(func() {
		if err := app.Run(p.Ctx, p.Args); err != nil {
			slog.Error("Error running command", "err", err)
			_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
			return
		}

		_ = p.Shutdowner.Shutdown(fx.ExitCode(0))
	}))
}

// newLogger returns a slog logger backed by a charmbracelet handler writing to stderr.
func newLogger(level string) *slog.Logger {
	handler := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})

	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.WarnLevel
	}
	handler.SetLevel(lvl)

	return slog.New(handler)
}
