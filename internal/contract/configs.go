package contract

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jmgilman/pdsnd-github/schema"
)

// Default values for configuration.
const (
	DefaultDataDir  = "data"
	DefaultPageSize = 5
	MaxPageSize     = 100
)

// Config holds the runtime configuration for the statistics pipeline.
// This struct remains the "final, validated" config.
type Config struct {
	DataDir    string
	Dataset    string // positional dataset argument; empty means discover/prompt
	PageSize   int
	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)

	// Filter holds the validated month/day choices from flags. The
	// interactive flow builds its own summary from menu answers instead.
	Filter schema.FilterSummary

	UseColors bool // Enable colored values in console output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	DatasetStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	DataDir    string `mapstructure:"data-dir"`
	PageSize   int    `mapstructure:"page-size"`
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Width      int    `mapstructure:"width"`
	Color      string `mapstructure:"color"`

	// --- Fields from statsCmd / exportCmd flags ---
	Month string `mapstructure:"month"`
	Day   string `mapstructure:"day"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processFilters(cfg, input); err != nil {
		return err
	}
	return resolveDataDir(cfg, input)
}

// validateSimpleInputs processes and validates all non-filter fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.Dataset = strings.TrimSpace(input.DatasetStr)
	cfg.OutputFile = input.OutputFile

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. PageSize Validation ---
	if input.PageSize <= 0 || input.PageSize > MaxPageSize {
		return fmt.Errorf("page-size must be greater than 0 and cannot exceed %d (received %d)", MaxPageSize, input.PageSize)
	}
	cfg.PageSize = input.PageSize

	// --- 2. Width Validation ---
	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	cfg.Width = input.Width

	// --- 3. Output Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json", cfg.Output)
	}

	return nil
}

// processFilters turns the raw month/day flag values into a validated
// FilterSummary. Empty values mean the filter is not applied.
func processFilters(cfg *Config, input *ConfigRawInput) error {
	cfg.Filter = schema.FilterSummary{}

	if strings.TrimSpace(input.Month) != "" {
		month, err := schema.ParseMonth(input.Month)
		if err != nil {
			return fmt.Errorf("invalid --month value: %w", err)
		}
		cfg.Filter.Month = &month
	}

	if strings.TrimSpace(input.Day) != "" {
		day, err := schema.ParseWeekday(input.Day)
		if err != nil {
			return fmt.Errorf("invalid --day value: %w", err)
		}
		cfg.Filter.Weekday = &day
	}

	return nil
}

// resolveDataDir resolves the dataset directory to an absolute path so error
// messages and discovery listings always point at one unambiguous location.
func resolveDataDir(cfg *Config, input *ConfigRawInput) error {
	dataDir := strings.TrimSpace(input.DataDir)
	if dataDir == "" {
		dataDir = DefaultDataDir
	}
	absDataDir, err := filepath.Abs(dataDir)
	if err != nil {
		return fmt.Errorf("cannot resolve data directory %q: %w", dataDir, err)
	}
	cfg.DataDir = filepath.Clean(absDataDir)
	return nil
}
