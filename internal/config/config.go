// Package config loads contractx settings from flags, environment and an optional config file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/ukaji3/contractx-go/pkg/contractx"
	"github.com/ukaji3/contractx-go/pkg/contractx/models"
	"github.com/ukaji3/contractx-go/pkg/contractx/pdftable"
)

const (
	// EnvPrefix prefixes every environment variable, e.g. CONTRACTX_REFERENCE.
	EnvPrefix = "CONTRACTX"

	DefaultLogLevel = "info"
)

// Keys
const (
	KeyConfig         = "config"
	KeyPDF            = "pdf"
	KeyWorkbook       = "workbook"
	KeyReference      = "reference"
	KeyColumn         = "column"
	KeyStrategy       = "strategy"
	KeyPresence       = "presence"
	KeyLogLevel       = "log-level"
	KeyJSON           = "json"
	KeyPretty         = "pretty"
	KeyRowTolerance   = "row-tolerance"
	KeyColumnGap      = "column-gap"
	KeySkipValidation = "skip-validation"
)

var validLogLevels = []string{"debug", "info", "warn", "error"}

// Config holds all configuration for a contractx run.
type Config struct {
	// Input and output files
	PDF       string
	Workbook  string
	Reference string

	// Extraction
	Column         string
	Strategy       string
	Presence       string
	RowTolerance   float64
	ColumnGap      float64
	SkipValidation bool

	// Output
	LogLevel string
	JSON     bool
	Pretty   bool
}

// DefaultConfig returns a configuration with defaults.
func DefaultConfig() *Config {
	p := pdftable.DefaultParams()
	return &Config{
		Workbook:     contractx.DefaultWorkbookPath,
		Column:       models.ColContract,
		Strategy:     string(contractx.StrategyTables),
		Presence:     string(models.PresenceTruthy),
		RowTolerance: p.RowTolerance,
		ColumnGap:    p.ColumnGap,
		LogLevel:     DefaultLogLevel,
	}
}

// BindFlags defines the configuration flags on fs.
func BindFlags(fs *pflag.FlagSet) {
	cfg := DefaultConfig()
	fs.String(KeyConfig, "", "Config file (yaml, toml or json)")
	fs.String(KeyPDF, "", "Input PDF file")
	fs.String(KeyWorkbook, cfg.Workbook, "Generated workbook path")
	fs.String(KeyReference, "", "Reference workbook with invoice records")
	fs.String(KeyColumn, cfg.Column, "Reference column searched for the contract number")
	fs.String(KeyStrategy, cfg.Strategy, "Field extraction strategy: tables, text")
	fs.String(KeyPresence, cfg.Presence, "When a field counts as found: truthy, nonnil")
	fs.String(KeyLogLevel, cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.Bool(KeyJSON, false, "Print the report as JSON")
	fs.Bool(KeyPretty, false, "Pretty-print JSON output")
	fs.Float64(KeyRowTolerance, cfg.RowTolerance, "Vertical distance in points within which glyphs share a line")
	fs.Float64(KeyColumnGap, cfg.ColumnGap, "Horizontal gap in points that separates table cells")
	fs.Bool(KeySkipValidation, false, "Skip the structural PDF check before extraction")
}

// Load reads the configuration from fs, CONTRACTX_* environment variables and
// the config file named by --config, in decreasing precedence.
func Load(fs *pflag.FlagSet) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	setDefaults(v, cfg)

	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	if file := v.GetString(KeyConfig); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	populate(v, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault(KeyWorkbook, cfg.Workbook)
	v.SetDefault(KeyColumn, cfg.Column)
	v.SetDefault(KeyStrategy, cfg.Strategy)
	v.SetDefault(KeyPresence, cfg.Presence)
	v.SetDefault(KeyLogLevel, cfg.LogLevel)
	v.SetDefault(KeyRowTolerance, cfg.RowTolerance)
	v.SetDefault(KeyColumnGap, cfg.ColumnGap)
}

func populate(v *viper.Viper, cfg *Config) {
	cfg.PDF = v.GetString(KeyPDF)
	cfg.Workbook = v.GetString(KeyWorkbook)
	cfg.Reference = v.GetString(KeyReference)
	cfg.Column = v.GetString(KeyColumn)
	cfg.Strategy = v.GetString(KeyStrategy)
	cfg.Presence = v.GetString(KeyPresence)
	cfg.LogLevel = v.GetString(KeyLogLevel)
	cfg.JSON = v.GetBool(KeyJSON)
	cfg.Pretty = v.GetBool(KeyPretty)
	cfg.RowTolerance = v.GetFloat64(KeyRowTolerance)
	cfg.ColumnGap = v.GetFloat64(KeyColumnGap)
	cfg.SkipValidation = v.GetBool(KeySkipValidation)
}

// Validate checks enumerated values and numeric ranges.
func (c *Config) Validate() error {
	switch contractx.Strategy(c.Strategy) {
	case contractx.StrategyTables, contractx.StrategyText:
	default:
		return fmt.Errorf("invalid strategy: %s (must be one of: tables, text)", c.Strategy)
	}

	switch models.Presence(c.Presence) {
	case models.PresenceTruthy, models.PresenceNonNil:
	default:
		return fmt.Errorf("invalid presence: %s (must be one of: truthy, nonnil)", c.Presence)
	}

	if !slices.Contains(validLogLevels, c.LogLevel) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	if c.RowTolerance <= 0 || c.ColumnGap <= 0 {
		return errors.New("row tolerance and column gap must be positive")
	}
	if c.Workbook == "" {
		return errors.New("generated workbook path cannot be empty")
	}
	return nil
}

// Require checks that each named input file is configured and exists.
func (c *Config) Require(keys ...string) error {
	for _, key := range keys {
		var path string
		switch key {
		case KeyPDF:
			path = c.PDF
		case KeyReference:
			path = c.Reference
		case KeyWorkbook:
			path = c.Workbook
		default:
			return fmt.Errorf("%s is not a file setting", key)
		}

		if path == "" {
			return fmt.Errorf("%s is required (--%s or %s_%s)", key, key, EnvPrefix, strings.ToUpper(key))
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("%s file %s: %w", key, path, contractx.ErrNotFound)
		} else if err != nil {
			return fmt.Errorf("cannot access %s file %s: %w", key, path, err)
		}
	}
	return nil
}

// Options converts the configuration to extraction options logging to logger.
func (c *Config) Options(logger zerolog.Logger) contractx.Options {
	opts := contractx.DefaultOptions()
	opts.Strategy = contractx.Strategy(c.Strategy)
	opts.WorkbookPath = c.Workbook
	opts.Column = c.Column
	opts.Presence = models.Presence(c.Presence)
	opts.Table.RowTolerance = c.RowTolerance
	opts.Table.ColumnGap = c.ColumnGap
	opts.SkipValidation = c.SkipValidation
	opts.Logger = logger
	return opts
}

// Logger returns a console logger writing to w at the configured level.
func (c *Config) Logger(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func (c *Config) String() string {
	return fmt.Sprintf("Config{PDF: %s, Workbook: %s, Reference: %s, Column: %s, Strategy: %s, Presence: %s, LogLevel: %s}",
		c.PDF, c.Workbook, c.Reference, c.Column, c.Strategy, c.Presence, c.LogLevel)
}
