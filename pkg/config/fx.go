package config

import (
	"os"

	"github.com/pseudomuto/qfmt/pkg/consts"
	"go.uber.org/fx"
)

var Module = fx.Module("config", fx.Provide(
	// Function attempts to load the configuration from qfmt.yaml if it exists.
	// Returns nil if the file doesn't exist, so every command falls back to defaults.
	func() (*Config, error) {
		if _, err := os.Stat(consts.DefaultConfigFile); os.IsNotExist(err) {
			return nil, nil
		}

		return LoadConfigFile(consts.DefaultConfigFile)
	},
))
