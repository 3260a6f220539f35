// Copyright (c) 2026 ToeiRei
// Rankscope - keyword ranking explorer
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads Rankscope settings from defaults, rankscope.yaml,
// RANKSCOPE_* environment variables and command line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/toeirei/rankscope/internal/dataset"
)

// Dataset sources.
const (
	SourceFile     = "file"
	SourceDatabase = "database"
)

// DefaultDatasetPath is read when no path is given.
const DefaultDatasetPath = "keyword_rankings.csv"

// Default plot selection.
const (
	DefaultKeywordID    = 8341
	DefaultSearchEngine = 2
)

// Config is the complete application configuration.
type Config struct {
	Dataset  DatasetConfig  `mapstructure:"dataset" yaml:"dataset"`
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`
	Language string         `mapstructure:"language" yaml:"language"`
	Plot     PlotConfig     `mapstructure:"plot" yaml:"plot"`
}

type DatasetConfig struct {
	Path      string `mapstructure:"path" yaml:"path"`
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	Source    string `mapstructure:"source" yaml:"source"`
}

type DatabaseConfig struct {
	Type string `mapstructure:"type" yaml:"type"`
	Dsn  string `mapstructure:"dsn" yaml:"dsn"`
}

// PlotConfig selects the keyword/engine pair of the rank chart.
type PlotConfig struct {
	KeywordID    int `mapstructure:"keyword_id" yaml:"keyword_id"`
	SearchEngine int `mapstructure:"search_engine" yaml:"search_engine"`
}

// Defaults returns the default value of every configuration key.
func Defaults() map[string]any {
	return map[string]any{
		"dataset.path":       DefaultDatasetPath,
		"dataset.delimiter":  string(dataset.DefaultDelimiter),
		"dataset.source":     SourceFile,
		"database.type":      "sqlite",
		"database.dsn":       "./rankscope.db",
		"language":           "en",
		"plot.keyword_id":    DefaultKeywordID,
		"plot.search_engine": DefaultSearchEngine,
	}
}

// DefaultConfig returns the configuration written on first run.
func DefaultConfig() Config {
	var c Config
	d := Defaults()
	c.Dataset.Path = d["dataset.path"].(string)
	c.Dataset.Delimiter = d["dataset.delimiter"].(string)
	c.Dataset.Source = d["dataset.source"].(string)
	c.Database.Type = d["database.type"].(string)
	c.Database.Dsn = d["database.dsn"].(string)
	c.Language = d["language"].(string)
	c.Plot.KeywordID = d["plot.keyword_id"].(int)
	c.Plot.SearchEngine = d["plot.search_engine"].(int)
	return c
}

// FlagAliases maps short flag names to the configuration key they set.
// Flags named after their key (e.g. database.dsn) need no alias.
var FlagAliases = map[string]string{
	"source":    "dataset.source",
	"delimiter": "dataset.delimiter",
	"keyword":   "plot.keyword_id",
	"engine":    "plot.search_engine",
}

// Validate checks values that viper cannot type-check.
func (c Config) Validate() error {
	switch c.Dataset.Source {
	case SourceFile, SourceDatabase:
	default:
		return fmt.Errorf("dataset.source: unknown source %q", c.Dataset.Source)
	}
	if _, err := dataset.ParseDelimiter(c.Dataset.Delimiter); err != nil {
		return fmt.Errorf("dataset.delimiter: %w", err)
	}
	return nil
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Rankscope")
		default: // Linux, macOS, etc.
			configDir = "/etc/rankscope"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "rankscope")
	}

	return filepath.Join(configDir, "rankscope.yaml"), nil
}

// LoadDotEnv loads KEY=value pairs from path into the environment. Variables
// that are already set win. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not load %s: %w", path, err)
	}
	return nil
}

func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, additionalConfigFilePath *string) (T, error) {
	var c T
	v := viper.New()

	// 1. Set defaults
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// 2. Set up file search paths
	v.SetConfigName("rankscope")
	v.SetConfigType("yaml")

	// 3. An explicit --config file takes precedence over the search paths.
	if additionalConfigFilePath != nil && *additionalConfigFilePath != "" {
		v.SetConfigFile(*additionalConfigFilePath)
	}

	// 4. Add standard config locations
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	// 5. Read in the primary config file.
	if err := v.ReadInConfig(); err != nil {
		// It's okay if the file is not found, but other errors are fatal.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, err
		}
	}

	// 6. Read from environment variables
	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvPrefix("rankscope")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 7. Command line flags
	if err := bindFlags(v, cmd.Flags()); err != nil {
		return c, err
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, nil
}

// bindFlags binds every flag under its own name and aliased flags under
// their configuration key.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	if err := v.BindPFlags(flags); err != nil {
		return err
	}
	for name, key := range FlagAliases {
		if f := flags.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteConfigFile stores c as YAML in the user or system config location.
func WriteConfigFile[T any](c *T, system bool) error {
	path, err := GetConfigPath(system)
	if err != nil {
		return err
	}
	return WriteConfigFileTo(c, path)
}

// WriteConfigFileTo stores c as YAML at path, creating its directory.
func WriteConfigFileTo[T any](c *T, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	// 0600 since database.dsn may carry credentials
	return os.WriteFile(path, data, 0600)
}
