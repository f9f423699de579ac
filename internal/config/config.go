package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harrison/csvsearch/internal/logger"
	"gopkg.in/yaml.v3"
)

// Output formats understood by the display package
const (
	FormatPlain    = "plain"
	FormatTable    = "table"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// Formats lists every accepted output format
var Formats = []string{FormatPlain, FormatTable, FormatMarkdown, FormatHTML}

// DirName is the per-project configuration directory
const DirName = ".csvsearch"

// Config represents csvsearch configuration options
type Config struct {
	// LogLevel sets the diagnostics verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// Format selects the output view (plain, table, markdown, html)
	Format string `yaml:"format"`

	// SummaryColumns are the header names shown in the summary table
	SummaryColumns []string `yaml:"summary_columns"`

	// ExcludeDirs are directory names never descended into
	ExcludeDirs []string `yaml:"exclude_dirs"`

	// SkipHidden prunes directories starting with "."
	SkipHidden bool `yaml:"skip_hidden"`

	// MaxDepth limits traversal depth (0 = unlimited, 1 = root only)
	MaxDepth int `yaml:"max_depth"`

	// MaxCellWidth truncates table cells longer than this (0 = unlimited)
	MaxCellWidth int `yaml:"max_cell_width"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel:       "info",
		Format:         FormatTable,
		SummaryColumns: []string{"Name", "Date", "Amount", "Description"},
		ExcludeDirs:    []string{},
		SkipHidden:     false,
		MaxDepth:       0,
		MaxCellWidth:   40,
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Pointer fields tell "absent" apart from an explicit zero value
	type yamlConfig struct {
		LogLevel       *string   `yaml:"log_level"`
		Format         *string   `yaml:"format"`
		SummaryColumns *[]string `yaml:"summary_columns"`
		ExcludeDirs    *[]string `yaml:"exclude_dirs"`
		SkipHidden     *bool     `yaml:"skip_hidden"`
		MaxDepth       *int      `yaml:"max_depth"`
		MaxCellWidth   *int      `yaml:"max_cell_width"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if yamlCfg.LogLevel != nil && *yamlCfg.LogLevel != "" {
		cfg.LogLevel = strings.ToLower(*yamlCfg.LogLevel)
	}
	if yamlCfg.Format != nil && *yamlCfg.Format != "" {
		cfg.Format = strings.ToLower(*yamlCfg.Format)
	}
	if yamlCfg.SummaryColumns != nil {
		cfg.SummaryColumns = *yamlCfg.SummaryColumns
	}
	if yamlCfg.ExcludeDirs != nil {
		cfg.ExcludeDirs = *yamlCfg.ExcludeDirs
	}
	if yamlCfg.SkipHidden != nil {
		cfg.SkipHidden = *yamlCfg.SkipHidden
	}
	if yamlCfg.MaxDepth != nil {
		cfg.MaxDepth = *yamlCfg.MaxDepth
	}
	if yamlCfg.MaxCellWidth != nil {
		cfg.MaxCellWidth = *yamlCfg.MaxCellWidth
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .csvsearch/config.yaml in the specified directory
// If the directory or file doesn't exist, returns default configuration without error
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, DirName, "config.yaml"))
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(logLevel, format *string, summaryColumns, excludeDirs *[]string, skipHidden *bool, maxDepth *int) {
	if logLevel != nil {
		c.LogLevel = strings.ToLower(*logLevel)
	}
	if format != nil {
		c.Format = strings.ToLower(*format)
	}
	if summaryColumns != nil {
		c.SummaryColumns = *summaryColumns
	}
	if excludeDirs != nil {
		// Flags add to the configured list rather than replacing it
		c.ExcludeDirs = append(append([]string{}, c.ExcludeDirs...), *excludeDirs...)
	}
	if skipHidden != nil {
		c.SkipHidden = *skipHidden
	}
	if maxDepth != nil {
		c.MaxDepth = *maxDepth
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	if !logger.IsValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log_level %q, must be one of: %s", c.LogLevel, strings.Join(logger.ValidLevels, ", "))
	}

	validFormat := false
	for _, f := range Formats {
		if c.Format == f {
			validFormat = true
			break
		}
	}
	if !validFormat {
		return fmt.Errorf("invalid format %q, must be one of: %s", c.Format, strings.Join(Formats, ", "))
	}

	if len(c.SummaryColumns) == 0 {
		return fmt.Errorf("summary_columns must name at least one column")
	}
	for i, col := range c.SummaryColumns {
		if strings.TrimSpace(col) == "" {
			return fmt.Errorf("summary_columns[%d] cannot be empty", i)
		}
	}

	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must be >= 0, got %d", c.MaxDepth)
	}
	if c.MaxCellWidth < 0 {
		return fmt.Errorf("max_cell_width must be >= 0, got %d", c.MaxCellWidth)
	}

	return nil
}
