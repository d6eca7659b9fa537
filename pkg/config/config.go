package config

import (
	"io"
	"os"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/qfmt/pkg/consts"
	"github.com/pseudomuto/qfmt/pkg/pretty"
	"gopkg.in/yaml.v3"
)

type (
	// Format represents the layout settings of the formatter.
	//
	// Zero values fall back to the printer defaults, so a project only needs to list the
	// settings it changes.
	Format struct {
		// MaxWidth is the line width the formatter tries to stay within
		MaxWidth int `yaml:"max_width,omitempty"`

		// IndentWidth is the number of spaces per nesting level
		IndentWidth int `yaml:"indent_width,omitempty"`

		// MinWidth is the smallest width left for content after indentation
		MinWidth int `yaml:"min_width,omitempty"`
	}

	// Config represents the project configuration for query formatting.
	Config struct {
		// Format contains the layout settings
		Format Format `yaml:"format"`

		// Extensions lists the file extensions formatted when walking a directory
		Extensions []string `yaml:"extensions,omitempty"`
	}
)

// LoadConfig parses a project configuration from the provided io.Reader.
//
// The function expects YAML-formatted configuration data. Missing settings are filled
// with defaults and extensions are normalized to start with a dot.
//
// Example:
//
//	yamlData := `
//	format:
//	  max_width: 100
//	extensions: [.qry, .gql]
//	`
//
//	cfg, err := config.LoadConfig(strings.NewReader(yamlData))
//	if err != nil {
//		panic(err)
//	}
//
//	fmt.Printf("Width: %d\n", cfg.Format.MaxWidth)
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal qfmt config")
	}

	if err := cfg.Format.validate(); err != nil {
		return nil, err
	}

	if cfg.Format.MaxWidth == 0 {
		cfg.Format.MaxWidth = pretty.DefaultMaxWidth
	}
	if cfg.Format.IndentWidth == 0 {
		cfg.Format.IndentWidth = pretty.DefaultIndentWidth
	}
	if cfg.Format.MinWidth == 0 {
		cfg.Format.MinWidth = pretty.DefaultMinWidth
	}

	if len(cfg.Extensions) == 0 {
		cfg.Extensions = []string{consts.DefaultExtension}
	}
	for i, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") {
			cfg.Extensions[i] = "." + ext
		}
	}

	return &cfg, nil
}

// LoadConfigFile loads a project configuration from the specified file path.
// This is a convenience function that opens the file and calls LoadConfig.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}

// Default returns the configuration used when no qfmt.yaml exists.
func Default() *Config {
	return &Config{
		Format: Format{
			MaxWidth:    pretty.DefaultMaxWidth,
			IndentWidth: pretty.DefaultIndentWidth,
			MinWidth:    pretty.DefaultMinWidth,
		},
		Extensions: []string{consts.DefaultExtension},
	}
}

// GetOptions returns the printer options for the configuration. A nil config yields
// the defaults.
func (c *Config) GetOptions() pretty.Options {
	if c == nil {
		return pretty.Defaults
	}

	return pretty.Options{
		MaxWidth:    c.Format.MaxWidth,
		IndentWidth: c.Format.IndentWidth,
		MinWidth:    c.Format.MinWidth,
	}
}

// Matches reports whether path has one of the configured extensions.
func (c *Config) Matches(path string) bool {
	exts := []string{consts.DefaultExtension}
	if c != nil && len(c.Extensions) > 0 {
		exts = c.Extensions
	}

	return slices.ContainsFunc(exts, func(ext string) bool {
		return strings.HasSuffix(path, ext)
	})
}

func (f Format) validate() error {
	switch {
	case f.MaxWidth < 0:
		return errors.Errorf("invalid max_width: %d", f.MaxWidth)
	case f.IndentWidth < 0:
		return errors.Errorf("invalid indent_width: %d", f.IndentWidth)
	case f.MinWidth < 0:
		return errors.Errorf("invalid min_width: %d", f.MinWidth)
	}
	return nil
}
