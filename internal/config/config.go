// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for numfield.
//
// Supports TOML, JSON and YAML configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.numfield/config.toml
//   - ~/.numfield/config.json
//   - ~/.numfield/config.yaml
//   - Built-in defaults
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/jeranaias/numfield/internal/logging"
	"github.com/jeranaias/numfield/internal/numberfield"
	"github.com/jeranaias/numfield/internal/numeral"
	"github.com/jeranaias/numfield/internal/numfmt"
	"github.com/jeranaias/numfield/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete numfield configuration.
type Config struct {
	// Field describes the number field: locale, format and range.
	Field FieldConfig `toml:"field" json:"field" yaml:"field"`

	// UI configuration
	UI UIConfig `toml:"ui" json:"ui" yaml:"ui"`

	// Logging configuration
	Logging LoggingConfig `toml:"logging" json:"logging" yaml:"logging"`
}

// FieldConfig describes the formatter and range of a number field.
type FieldConfig struct {
	// Locale is a BCP 47 tag such as "en-US" or "de-DE".
	Locale string `toml:"locale" json:"locale" yaml:"locale"`
	// Style is "decimal", "percent", "currency" or "unit".
	Style string `toml:"style" json:"style" yaml:"style"`
	// Currency is the ISO 4217 code used by the currency style.
	Currency string `toml:"currency,omitempty" json:"currency,omitempty" yaml:"currency,omitempty"`
	// CurrencyDisplay is "symbol", "narrowSymbol" or "code".
	CurrencyDisplay string `toml:"currency_display,omitempty" json:"currency_display,omitempty" yaml:"currency_display,omitempty"`
	// CurrencySign is "standard" or "accounting".
	CurrencySign string `toml:"currency_sign,omitempty" json:"currency_sign,omitempty" yaml:"currency_sign,omitempty"`
	// Unit is the label appended by the unit style.
	Unit string `toml:"unit,omitempty" json:"unit,omitempty" yaml:"unit,omitempty"`
	// SignDisplay is "auto", "always", "exceptZero" or "never".
	SignDisplay string `toml:"sign_display,omitempty" json:"sign_display,omitempty" yaml:"sign_display,omitempty"`
	// Numbering forces a numeral system ("latn", "arab", "hanidec").
	Numbering string `toml:"numbering,omitempty" json:"numbering,omitempty" yaml:"numbering,omitempty"`

	MinFractionDigits *int  `toml:"min_fraction_digits,omitempty" json:"min_fraction_digits,omitempty" yaml:"min_fraction_digits,omitempty"`
	MaxFractionDigits *int  `toml:"max_fraction_digits,omitempty" json:"max_fraction_digits,omitempty" yaml:"max_fraction_digits,omitempty"`
	UseGrouping       *bool `toml:"use_grouping,omitempty" json:"use_grouping,omitempty" yaml:"use_grouping,omitempty"`

	// Min and Max bound the value; unset means unbounded.
	Min *float64 `toml:"min,omitempty" json:"min,omitempty" yaml:"min,omitempty"`
	Max *float64 `toml:"max,omitempty" json:"max,omitempty" yaml:"max,omitempty"`
	// Step is the increment; 0 means 1 for stepping and no snapping on commit.
	Step float64 `toml:"step" json:"step" yaml:"step"`
	// Value is the initial value; unset starts empty.
	Value *float64 `toml:"value,omitempty" json:"value,omitempty" yaml:"value,omitempty"`

	ReadOnly bool `toml:"read_only" json:"read_only" yaml:"read_only"`
}

// UIConfig contains terminal UI settings.
type UIConfig struct {
	// Theme is "dark" or "light".
	Theme string `toml:"theme" json:"theme" yaml:"theme"`
	// Label is shown above the field.
	Label string `toml:"label" json:"label" yaml:"label"`
	// Width is the field width in cells.
	Width int `toml:"width" json:"width" yaml:"width"`
	// ShowParts renders the formatted parts under the field.
	ShowParts bool `toml:"show_parts" json:"show_parts" yaml:"show_parts"`
}

// LoggingConfig contains logger settings.
type LoggingConfig struct {
	// Level is debug, info, warn or error.
	Level string `toml:"level" json:"level" yaml:"level"`
	// Format is "console" or "json".
	Format string `toml:"format" json:"format" yaml:"format"`
	// File redirects records from stderr to a file.
	File string `toml:"file,omitempty" json:"file,omitempty" yaml:"file,omitempty"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Field: FieldConfig{
			Locale: "en-US",
			Style:  "decimal",
			Step:   0,
		},

		UI: UIConfig{
			Theme:     "dark",
			Label:     "Value",
			Width:     24,
			ShowParts: false,
		},

		Logging: LoggingConfig{
			Level:  "warn",
			Format: logging.FormatConsole,
		},
	}
}

// fillDefaults fills in any missing values with defaults.
func fillDefaults(cfg *Config) {
	defaults := Default()

	if cfg.Field.Locale == "" {
		cfg.Field.Locale = defaults.Field.Locale
	}
	if cfg.Field.Style == "" {
		cfg.Field.Style = defaults.Field.Style
	}

	if cfg.UI.Theme == "" {
		cfg.UI.Theme = defaults.UI.Theme
	}
	if cfg.UI.Label == "" {
		cfg.UI.Label = defaults.UI.Label
	}
	if cfg.UI.Width == 0 {
		cfg.UI.Width = defaults.UI.Width
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaults.Logging.Level
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = defaults.Logging.Format
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the numfield configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".numfield"), nil
}

// ConfigPaths returns the candidate config files in load order.
func ConfigPaths() ([]string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return nil, err
	}
	return []string{
		filepath.Join(dir, "config.toml"),
		filepath.Join(dir, "config.json"),
		filepath.Join(dir, "config.yaml"),
	}, nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the first config file that exists, trying
// TOML, JSON and YAML in turn, and falls back to defaults. Environment
// overrides are applied last.
func Load() (*Config, error) {
	paths, err := ConfigPaths()
	if err != nil {
		return nil, err
	}
	for _, path := range paths {
		if _, statErr := os.Stat(path); statErr == nil {
			return LoadFromPath(path)
		}
	}

	cfg := Default()
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadFromPath loads configuration from a specific file path with full
// validation. The format follows the file extension; anything unknown is
// read as TOML.
func LoadFromPath(path string) (*Config, error) {
	cfg, err := decodeFile(path)
	if err != nil {
		return nil, err
	}

	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ReadFile decodes path and fills in defaults without applying environment
// overrides or validating. Use it to edit a file in place.
func ReadFile(path string) (*Config, error) {
	return decodeFile(path)
}

// decodeFile reads path into a fresh Config and fills in defaults.
func decodeFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode JSON config from %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode YAML config from %s: %w", path, err)
		}
	default:
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to decode TOML config from %s: %w", path, err)
		}
	}

	fillDefaults(cfg)
	return cfg, nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML writes the configuration to a TOML file atomically.
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "# numfield configuration file")
	fmt.Fprintln(&buf, "# Generated by numfield - edit with care")
	fmt.Fprintln(&buf, "")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// SaveFile writes the configuration in the format named by the extension of
// path. Anything unknown is written as TOML.
func SaveFile(cfg *Config, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return SaveJSON(cfg, path)
	case ".yaml", ".yml":
		return SaveYAML(cfg, path)
	default:
		return SaveTOML(cfg, path)
	}
}

// SaveJSON writes the configuration to an indented JSON file atomically.
func SaveJSON(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	data = append(data, '\n')
	if err := util.AtomicWriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// SaveYAML writes the configuration to a YAML file atomically.
func SaveYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if _, err := c.Field.Formatter(); err != nil {
		errs = append(errs, ValidationError{Field: "field", Message: err.Error()})
	}
	if _, err := c.Field.Range(); err != nil {
		errs = append(errs, ValidationError{Field: "field.min/max/step", Message: err.Error()})
	}

	switch c.UI.Theme {
	case "dark", "light":
	default:
		errs = append(errs, ValidationError{Field: "ui.theme", Message: fmt.Sprintf("must be dark or light, got %q", c.UI.Theme)})
	}
	if c.UI.Width < 4 {
		errs = append(errs, ValidationError{Field: "ui.width", Message: "must be at least 4"})
	}

	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, ValidationError{Field: "logging.level", Message: err.Error()})
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", logging.FormatConsole, logging.FormatJSON:
	default:
		errs = append(errs, ValidationError{Field: "logging.format", Message: fmt.Sprintf("must be console or json, got %q", c.Logging.Format)})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// FIELD HELPERS
// =============================================================================

// Options converts the field settings to formatter options.
func (f FieldConfig) Options() (numfmt.Options, error) {
	var opts numfmt.Options
	var err error

	if opts.Style, err = numfmt.ParseStyle(f.Style); err != nil {
		return opts, err
	}
	if opts.CurrencyDisplay, err = numfmt.ParseCurrencyDisplay(f.CurrencyDisplay); err != nil {
		return opts, err
	}
	if opts.SignDisplay, err = numfmt.ParseSignDisplay(f.SignDisplay); err != nil {
		return opts, err
	}
	switch strings.ToLower(f.CurrencySign) {
	case "", "standard":
		opts.CurrencySign = numfmt.CurrencySignStandard
	case "accounting":
		opts.CurrencySign = numfmt.CurrencySignAccounting
	default:
		return opts, fmt.Errorf("unknown currency sign %q (expected standard or accounting)", f.CurrencySign)
	}
	if f.Numbering != "" {
		if _, ok := numeral.Lookup(f.Numbering); !ok {
			return opts, fmt.Errorf("%w: %q", numfmt.ErrUnsupportedNumberingSystem, f.Numbering)
		}
	}

	opts.Currency = f.Currency
	opts.Unit = f.Unit
	opts.NumberingSystem = f.Numbering
	opts.MinimumFractionDigits = f.MinFractionDigits
	opts.MaximumFractionDigits = f.MaxFractionDigits
	opts.UseGrouping = f.UseGrouping
	return opts, nil
}

// Formatter builds the formatter described by the field settings.
func (f FieldConfig) Formatter() (*numfmt.Formatter, error) {
	opts, err := f.Options()
	if err != nil {
		return nil, err
	}
	return numfmt.New(f.Locale, opts)
}

// Range builds the value range described by the field settings.
func (f FieldConfig) Range() (numberfield.Range, error) {
	r := numberfield.Unbounded()
	if f.Min != nil {
		r.Min = *f.Min
	}
	if f.Max != nil {
		r.Max = *f.Max
	}
	return numberfield.NewRange(r.Min, r.Max, f.Step)
}

// Logger converts the logging settings for logging.New.
func (l LoggingConfig) Logger() logging.Config {
	return logging.Config{Level: l.Level, Format: l.Format, File: l.File}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies NUMFIELD_* environment variables. Numbers that
// fail to parse are ignored.
func (c *Config) ApplyEnvOverrides() {
	// NUMFIELD_LOCALE
	if locale := os.Getenv("NUMFIELD_LOCALE"); locale != "" {
		c.Field.Locale = locale
	}

	// NUMFIELD_STYLE
	if style := os.Getenv("NUMFIELD_STYLE"); style != "" {
		c.Field.Style = style
	}

	// NUMFIELD_CURRENCY
	if currency := os.Getenv("NUMFIELD_CURRENCY"); currency != "" {
		c.Field.Currency = currency
	}

	// NUMFIELD_MIN / NUMFIELD_MAX
	if v, ok := envFloat("NUMFIELD_MIN"); ok {
		c.Field.Min = &v
	}
	if v, ok := envFloat("NUMFIELD_MAX"); ok {
		c.Field.Max = &v
	}

	// NUMFIELD_STEP
	if v, ok := envFloat("NUMFIELD_STEP"); ok {
		c.Field.Step = v
	}

	// NUMFIELD_LOG_LEVEL
	if level := os.Getenv("NUMFIELD_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

func envFloat(key string) (float64, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// =============================================================================
// GET/SET HELPERS (DOT NOTATION)
// =============================================================================

// Get retrieves a configuration value using dot notation (e.g., "field.locale").
// Unset optional values are returned as nil.
func (c *Config) Get(key string) (interface{}, error) {
	field, err := c.lookup(key)
	if err != nil {
		return nil, err
	}
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			return nil, nil
		}
		return field.Elem().Interface(), nil
	}
	return field.Interface(), nil
}

// Set sets a configuration value using dot notation (e.g., "field.step").
func (c *Config) Set(key string, value interface{}) error {
	field, err := c.lookup(key)
	if err != nil {
		return err
	}
	if !field.CanSet() {
		return fmt.Errorf("cannot set field: %s", key)
	}
	return setFieldValue(field, value)
}

// lookup resolves a dot-notation key to a struct field.
func (c *Config) lookup(key string) (reflect.Value, error) {
	if key == "" {
		return reflect.Value{}, errors.New("empty key")
	}
	parts := strings.Split(key, ".")

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)
		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})
		if !field.IsValid() {
			return reflect.Value{}, fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}

		if i == len(parts)-1 {
			return field, nil
		}
		if field.Kind() != reflect.Struct {
			return reflect.Value{}, fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
		v = field
	}
	return reflect.Value{}, fmt.Errorf("invalid key: %s", key)
}

// normalizeFieldName converts a snake_case or kebab-case name to its Go field equivalent.
func normalizeFieldName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var result strings.Builder
	for _, part := range parts {
		if len(part) > 0 {
			result.WriteString(strings.ToUpper(string(part[0])))
			result.WriteString(strings.ToLower(part[1:]))
		}
	}
	return result.String()
}

// setFieldValue sets a reflect.Value from an interface{} value with type
// conversion. Pointer fields are allocated; an empty string clears them.
func setFieldValue(field reflect.Value, value interface{}) error {
	if field.Kind() == reflect.Ptr {
		if s, ok := value.(string); ok && s == "" {
			field.Set(reflect.Zero(field.Type()))
			return nil
		}
		elem := reflect.New(field.Type().Elem())
		if err := setFieldValue(elem.Elem(), value); err != nil {
			return err
		}
		field.Set(elem)
		return nil
	}

	if strVal, ok := value.(string); ok {
		switch field.Kind() {
		case reflect.String:
			field.SetString(strVal)
			return nil
		case reflect.Int, reflect.Int64:
			intVal, err := strconv.ParseInt(strVal, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer value: %v", err)
			}
			field.SetInt(intVal)
			return nil
		case reflect.Float64:
			floatVal, err := strconv.ParseFloat(strVal, 64)
			if err != nil {
				return fmt.Errorf("invalid float value: %v", err)
			}
			field.SetFloat(floatVal)
			return nil
		case reflect.Bool:
			boolVal := strVal == "1" || strings.ToLower(strVal) == "true" || strings.ToLower(strVal) == "yes"
			field.SetBool(boolVal)
			return nil
		}
	}

	val := reflect.ValueOf(value)
	if !val.IsValid() {
		return fmt.Errorf("cannot assign nil to %s", field.Type())
	}
	if val.Type().AssignableTo(field.Type()) {
		field.Set(val)
		return nil
	}
	if val.Type().ConvertibleTo(field.Type()) {
		field.Set(val.Convert(field.Type()))
		return nil
	}
	return fmt.Errorf("cannot assign %T to %s", value, field.Type())
}

// GetAllKeys returns all configuration keys in dot notation.
func GetAllKeys() []string {
	return []string{
		"field.locale",
		"field.style",
		"field.currency",
		"field.currency_display",
		"field.currency_sign",
		"field.unit",
		"field.sign_display",
		"field.numbering",
		"field.min_fraction_digits",
		"field.max_fraction_digits",
		"field.use_grouping",
		"field.min",
		"field.max",
		"field.step",
		"field.value",
		"field.read_only",
		"ui.theme",
		"ui.label",
		"ui.width",
		"ui.show_parts",
		"logging.level",
		"logging.format",
		"logging.file",
	}
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Field.MinFractionDigits = clonePtr(c.Field.MinFractionDigits)
	clone.Field.MaxFractionDigits = clonePtr(c.Field.MaxFractionDigits)
	clone.Field.UseGrouping = clonePtr(c.Field.UseGrouping)
	clone.Field.Min = clonePtr(c.Field.Min)
	clone.Field.Max = clonePtr(c.Field.Max)
	clone.Field.Value = clonePtr(c.Field.Value)
	return &clone
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// String returns a JSON representation of the config for debugging.
func (c *Config) String() string {
	data, _ := json.MarshalIndent(c, "", "  ")
	return string(data)
}
