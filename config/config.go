// Package config loads command-line settings from defaults, an optional
// keypadchain.yaml file, KEYPADCHAIN_* environment variables and cobra flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Output formats understood by the report package.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Config holds the driver settings.
type Config struct {
	Depth       int    `mapstructure:"depth" yaml:"depth"`
	Input       string `mapstructure:"input" yaml:"input"`
	Parallelism int    `mapstructure:"parallel" yaml:"parallel"`
	LogLevel    string `mapstructure:"log-level" yaml:"log-level"`
	Format      string `mapstructure:"format" yaml:"format"`
}

// Defaults returns the built-in settings: two robot layers, sequential
// evaluation, info logging and text output.
func Defaults() map[string]any {
	return map[string]any{
		"depth":     2,
		"input":     "",
		"parallel":  1,
		"log-level": "info",
		"format":    FormatText,
	}
}

// Load resolves a Config. file, if non-empty, names an explicit config file
// that must exist; otherwise keypadchain.yaml is searched for in the working
// directory and the user config directory, and a missing file is fine.
// Flags of cmd that were set on the command line override everything else.
func Load(cmd *cobra.Command, file string) (Config, error) {
	var c Config
	v := viper.New()

	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}

	v.SetConfigName("keypadchain")
	v.SetConfigType("yaml")
	if file != "" {
		v.SetConfigFile(file)
	}
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "keypadchain"))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return c, fmt.Errorf("config: read: %w", err)
		}
	}

	v.SetEnvPrefix("keypadchain")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("config: decode: %w", err)
	}

	return c, c.Validate()
}

// Validate rejects negative depth, parallelism below one and unknown formats.
func (c Config) Validate() error {
	switch {
	case c.Depth < 0:
		return fmt.Errorf("%w: depth %d is negative", ErrInvalidConfig, c.Depth)
	case c.Parallelism < 1:
		return fmt.Errorf("%w: parallel must be at least 1, got %d", ErrInvalidConfig, c.Parallelism)
	case c.Format != FormatText && c.Format != FormatYAML:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, c.Format)
	}

	return nil
}
