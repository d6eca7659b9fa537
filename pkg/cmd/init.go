package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/qfmt/pkg/config"
	"github.com/pseudomuto/qfmt/pkg/consts"
	"github.com/urfave/cli/v3"
)

// initCmd creates a CLI command that writes a qfmt.yaml with the default settings to
// the current directory. An existing file is kept unless --force is given.
//
// Examples:
//
//	qfmt init
//	qfmt init --force
func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Write a default qfmt.yaml",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "force",
				Aliases: []string{"f"},
				Usage:   "Overwrite an existing config file",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := consts.DefaultConfigFile

			if _, err := os.Stat(path); err == nil && !cmd.Bool("force") {
				return errors.Errorf("%s already exists", path)
			}

			f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, consts.ModeFile)
			if err != nil {
				return errors.Wrapf(err, "failed to create file: %s", path)
			}
			defer func() { _ = f.Close() }()

			if err := config.Default().Write(f); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.Writer, "Wrote %s\n", path)
			return err
		},
	}
}
