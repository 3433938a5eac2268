// =============================================================================
// TXT to XLSX Converter - Configuration Module
// =============================================================================
//
// This module is responsible for loading and managing the application
// configuration. The configuration controls the parsing and pagination
// behavior of the pipeline:
//   - Delimiter used to split fields
//   - Maximum rows per output workbook
//   - Index of the column used to group records (the Instruction Code)
//   - Intermediate and output directory locations
//
// CONFIGURATION PRECEDENCE:
//   1. Command-line flags (highest)
//   2. Values from the YAML config file
//   3. Built-in defaults (lowest)
//
// The config file is optional: when the default path (config.yaml) does not
// exist, built-in defaults apply. An explicitly specified --config path that
// cannot be read is an error.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"github.com/ginjaninja78/TXT-to-XLSX-conversion/internal/types"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// MAIN CONFIGURATION STRUCTURE
// =============================================================================

// MainConfig holds the global application configuration.
// This is loaded from the main config.yaml file.
type MainConfig struct {
	// =========================================================================
	// PARSING SETTINGS
	// =========================================================================

	// Delimiter is the literal character sequence separating fields in the
	// input file. Fields are split on the exact sequence; there is no quoting
	// or escaping support.
	// Default: "~"
	Delimiter string `yaml:"delimiter"`

	// KeyColumn is the 0-based index of the field used to group records
	// (the Instruction Code column). An explicit 0 groups by the first
	// column; only negative indexes are invalid.
	// Default: 1 (the second column)
	KeyColumn int `yaml:"key_column"`

	// =========================================================================
	// PAGINATION SETTINGS
	// =========================================================================

	// MaxRows is the maximum number of data rows per output workbook.
	// Groups exceeding this are split into consecutively numbered parts.
	// Note: the XLSX format caps a sheet at 1048576 rows including the header
	// row, so a MaxRows at the ceiling can still fail at emission time for a
	// group that completely fills a chunk. This is a caller decision that the
	// emitter reports rather than corrects.
	// Default: 1048576
	MaxRows int `yaml:"max_rows"`

	// =========================================================================
	// DIRECTORY SETTINGS
	// =========================================================================

	// IntermediateDir is the directory where per-key text artifacts are
	// written. When empty, an "intermediate" directory is created beside the
	// input file.
	IntermediateDir string `yaml:"intermediate_dir"`

	// OutputDir is the directory where generated workbooks are placed.
	// When empty, an "excel_output" directory is created beside the input file.
	OutputDir string `yaml:"output_dir"`

	// CleanIntermediate removes the per-key text artifacts after a successful
	// run. They are left in place by default so the split output can be
	// inspected.
	// Default: false
	CleanIntermediate bool `yaml:"clean_intermediate"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Load reads the configuration from a YAML file and applies defaults.
//
// PARAMETERS:
//   - configPath: The path to the configuration file.
//   - required: Whether a missing file is an error. The default config path is
//     optional; an explicitly requested one is required.
//
// RETURNS:
//   - A pointer to the MainConfig struct.
//   - An error if the file cannot be read or parsed, or fails validation.
func Load(configPath string, required bool) (*MainConfig, error) {
	var config MainConfig

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) && !required {
			// No config file: run entirely on defaults.
			applyDefaults(&config)
			return &config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// key_column needs absence detection: 0 is a legal index, so the plain
	// int's zero value cannot distinguish "unset" from "first column". Decode
	// the key again through a pointer and restore an explicit 0 after the
	// defaults pass.
	var explicit struct {
		KeyColumn *int `yaml:"key_column"`
	}
	if err := yaml.Unmarshal(data, &explicit); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&config)

	if explicit.KeyColumn != nil {
		config.KeyColumn = *explicit.KeyColumn
	}

	if err := Validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Default returns a configuration populated entirely with built-in defaults.
func Default() *MainConfig {
	var config MainConfig
	applyDefaults(&config)
	return &config
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(config *MainConfig) {
	if config.Delimiter == "" {
		config.Delimiter = "~"
	}
	if config.KeyColumn == 0 {
		// Load restores an explicitly configured 0 after this pass.
		config.KeyColumn = 1
	}
	if config.MaxRows == 0 {
		config.MaxRows = 1048576
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
}

// Validate checks the configuration for values the pipeline cannot run with.
// It is called after defaults are applied and again after flag overrides.
func Validate(config *MainConfig) error {
	if config.Delimiter == "" {
		return &types.ConfigurationError{
			Setting: "delimiter",
			Reason:  "must not be empty",
		}
	}
	if config.MaxRows <= 0 {
		return &types.ConfigurationError{
			Setting: "max_rows",
			Reason:  fmt.Sprintf("must be a positive integer, got %d", config.MaxRows),
		}
	}
	if config.KeyColumn < 0 {
		return &types.ConfigurationError{
			Setting: "key_column",
			Reason:  fmt.Sprintf("must be a non-negative column index, got %d", config.KeyColumn),
		}
	}
	return nil
}
