// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/resume-builder/internal/ids"
	"github.com/jonathan/resume-builder/internal/logging"
	"github.com/jonathan/resume-builder/internal/rendering"
)

// Environment variables read by ApplyEnv
const (
	EnvExportSuffix = "RESUME_BUILDER_EXPORT_SUFFIX"
	EnvOutputDir    = "RESUME_BUILDER_OUTPUT_DIR"
	EnvLogLevel     = "RESUME_BUILDER_LOG_LEVEL"
)

// Config represents the CLI configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Export
	ExportSuffix string `json:"export_suffix,omitempty" yaml:"export_suffix,omitempty"` // Appended to "<name>_Resume_"
	OutputDir    string `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`       // Directory export files are written to

	// Editing
	IDStrategy string `json:"id_strategy,omitempty" yaml:"id_strategy,omitempty"` // "uuid" or "counter"

	// Logging
	LogLevel  string `json:"log_level,omitempty" yaml:"log_level,omitempty"`   // debug, info, warn, error
	LogFormat string `json:"log_format,omitempty" yaml:"log_format,omitempty"` // json or pretty

	// Behavior
	Verbose bool `json:"verbose,omitempty" yaml:"verbose,omitempty"` // Print the completeness check with every preview
}

// Defaults returns the configuration used when nothing else is provided
func Defaults() Config {
	return Config{
		ExportSuffix: rendering.DefaultExportSuffix,
		OutputDir:    ".",
		IDStrategy:   ids.StrategyUUID,
		LogLevel:     "info",
		LogFormat:    logging.FormatPretty,
	}
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if strings.ContainsAny(c.ExportSuffix, `/\`) || strings.ContainsFunc(c.ExportSuffix, isSpace) {
		return fmt.Errorf("config error: 'export_suffix' must not contain path separators or whitespace")
	}

	switch c.IDStrategy {
	case "", ids.StrategyUUID, ids.StrategyCounter:
	default:
		return fmt.Errorf("config error: unknown 'id_strategy' %q", c.IDStrategy)
	}

	if c.LogLevel != "" {
		if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("config error: unknown 'log_level' %q", c.LogLevel)
		}
	}

	switch c.LogFormat {
	case "", logging.FormatJSON, logging.FormatPretty:
	default:
		return fmt.Errorf("config error: unknown 'log_format' %q", c.LogFormat)
	}

	if c.OutputDir != "" {
		if info, err := os.Stat(c.OutputDir); err == nil && !info.IsDir() {
			return fmt.Errorf("config error: output_dir is not a directory: %s", c.OutputDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.ExportSuffix == "" {
		result.ExportSuffix = defaults.ExportSuffix
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.IDStrategy == "" {
		result.IDStrategy = defaults.IDStrategy
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ApplyEnv overrides fields from the process environment. Unset or empty
// variables leave the field alone.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if v, ok := lookup(EnvExportSuffix); ok && v != "" {
		c.ExportSuffix = v
	}
	if v, ok := lookup(EnvOutputDir); ok && v != "" {
		c.OutputDir = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
}

// Logging returns the logger settings described by the config
func (c *Config) Logging() logging.Config {
	return logging.Config{Level: c.LogLevel, Format: c.LogFormat}
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
