// Package config loads gridview settings from a YAML file and GRIDVIEW_
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/bjaus/datagrid"
)

const (
	// DefaultConfigurationName is the config file name without extension.
	DefaultConfigurationName = "gridview"

	envPrefix = "GRIDVIEW"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the display defaults for the gridview command.
type Config struct {
	Format       string `mapstructure:"format"`
	Border       string `mapstructure:"border"`
	EmptyMessage string `mapstructure:"empty_message"`
	PageSize     int    `mapstructure:"page_size"`
	LogLevel     string `mapstructure:"log_level"`
}

// New returns the built-in defaults.
func New() *Config {
	return &Config{
		Format:       datagrid.Table.String(),
		Border:       "rounded",
		EmptyMessage: datagrid.DefaultEmptyMessage,
		PageSize:     0,
		LogLevel:     logrus.InfoLevel.String(),
	}
}

// DefaultPaths lists the directories searched for gridview.yaml: the working
// directory, then $HOME/.config/gridview.
func DefaultPaths() []string {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", DefaultConfigurationName))
	}
	return paths
}

// Load reads gridview.yaml from the first of paths that has one and overlays
// GRIDVIEW_ environment variables. A missing file is not an error.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(DefaultConfigurationName)
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := New()
	v.SetDefault("format", defaults.Format)
	v.SetDefault("border", defaults.Border)
	v.SetDefault("empty_message", defaults.EmptyMessage)
	v.SetDefault("page_size", defaults.PageSize)
	v.SetDefault("log_level", defaults.LogLevel)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	conf := New()
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// Validate checks that every setting names something gridview understands.
func (c *Config) Validate() error {
	if _, err := datagrid.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: format: %w", ErrInvalidConfig, err)
	}
	if _, err := datagrid.ParseBorder(c.Border); err != nil {
		return fmt.Errorf("%w: border: %w", ErrInvalidConfig, err)
	}
	if c.PageSize < 0 {
		return fmt.Errorf("%w: page_size must not be negative, got %d", ErrInvalidConfig, c.PageSize)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %w", ErrInvalidConfig, err)
	}
	return nil
}
