// =============================================================================
// Seasonal Augmenter - Configuration Module
// =============================================================================
//
// This module loads the application configuration from a YAML file.
//
// CONFIGURATION FILE:
//   config.yaml (optional). When the file does not exist every setting takes
//   its default, so the tool runs with no arguments and no config at all.
//
// PRECEDENCE:
//   defaults < config file < command-line flags (applied by the cmd package)
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultDataFile is the dataset the augmenter reads and rewrites in place.
const DefaultDataFile = "./data/synthetic_tesco_data.json"

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// DataFile is the dataset JSON file. It is read and rewritten in place.
	// Default: "./data/synthetic_tesco_data.json"
	DataFile string `yaml:"data_file" validate:"required"`

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`

	// Seed seeds the random source. Zero picks a seed from the clock, so
	// two runs differ unless a seed is set.
	Seed uint64 `yaml:"seed"`

	// Backup controls the copy taken before the data file is overwritten.
	Backup BackupConfig `yaml:"backup"`

	// Insights controls the wrapped summary.
	Insights InsightsConfig `yaml:"insights"`
}

// BackupConfig controls backups of the data file.
type BackupConfig struct {
	// Enabled turns backups on. A pointer so an explicit false in the file
	// is not mistaken for "unset".
	// Default: true
	Enabled *bool `yaml:"enabled"`

	// Dir is where backups are written.
	// Default: "./data/backups"
	Dir string `yaml:"dir" validate:"required"`

	// NameFormat is the backup file name.
	// Placeholders:
	//   {original}  - Data file name without extension
	//   {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
	//   {date}      - Current date (YYYYMMDD)
	//   {uuid}      - A random UUID
	// Default: "{original}_{timestamp}.json"
	NameFormat string `yaml:"name_format" validate:"required"`

	// RetentionDays removes backups older than this many days after each
	// backup. Zero keeps every backup.
	RetentionDays int `yaml:"retention_days" validate:"gte=0"`
}

// InsightsConfig controls the insights command.
type InsightsConfig struct {
	// XLSXOutput is the default workbook path for --xlsx. Empty disables
	// the export unless the flag is given.
	XLSXOutput string `yaml:"xlsx_output"`

	// TopProducts is the length of the top products list.
	// Default: 5
	TopProducts int `yaml:"top_products" validate:"gte=1,lte=50"`
}

// BackupEnabled reports whether backups are on.
func (c *Config) BackupEnabled() bool {
	return c.Backup.Enabled == nil || *c.Backup.Enabled
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Load reads the configuration from a YAML file.
//
// PARAMETERS:
//   - configPath: The path to the configuration file.
//
// RETURNS:
//   - The configuration, with defaults applied. A missing file is not an
//     error; the defaults are returned.
//   - An error if the file cannot be read, parsed, or fails validation.
func Load(configPath string) (*Config, error) {
	var config Config

	data, err := os.ReadFile(configPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// No file: defaults only.
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyDefaults(&config)

	if err := Validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Default returns a configuration with every default applied.
func Default() *Config {
	var config Config
	applyDefaults(&config)
	return &config
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(config *Config) {
	if config.DataFile == "" {
		config.DataFile = DefaultDataFile
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.Backup.Dir == "" {
		config.Backup.Dir = "./data/backups"
	}
	if config.Backup.NameFormat == "" {
		config.Backup.NameFormat = "{original}_{timestamp}.json"
	}
	if config.Insights.TopProducts == 0 {
		config.Insights.TopProducts = 5
	}
}

// Validate checks the configuration's struct tags.
func Validate(config *Config) error {
	return validator.New().Struct(config)
}
