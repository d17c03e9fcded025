// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/jeranaias/numfield/internal/numberfield"
	"github.com/jeranaias/numfield/internal/numfmt"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// =============================================================================
// DEFAULT AND VALIDATION TESTS
// =============================================================================

// TestConfig_Default tests that Default() returns a valid config with defaults.
func TestConfig_Default(t *testing.T) {
	cfg := Default()
	require.NotNil(t, cfg)
	assert.Equal(t, "en-US", cfg.Field.Locale)
	assert.Equal(t, "decimal", cfg.Field.Style)
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.NoError(t, cfg.Validate())
}

// TestConfig_Validate tests configuration validation.
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
		field  string
	}{
		{"valid default config", func(c *Config) {}, ""},
		{"invalid style", func(c *Config) { c.Field.Style = "roman" }, "field"},
		{"currency without code", func(c *Config) { c.Field.Style = "currency" }, "field"},
		{"unknown currency", func(c *Config) { c.Field.Style = "currency"; c.Field.Currency = "XQZ" }, "field"},
		{"unknown numbering", func(c *Config) { c.Field.Numbering = "roman" }, "field"},
		{"unknown currency sign", func(c *Config) { c.Field.CurrencySign = "loud" }, "field"},
		{"min above max", func(c *Config) {
			c.Field.Min = numberfield.Float(10)
			c.Field.Max = numberfield.Float(1)
		}, "field.min/max/step"},
		{"negative step", func(c *Config) { c.Field.Step = -1 }, "field.min/max/step"},
		{"invalid theme", func(c *Config) { c.UI.Theme = "neon" }, "ui.theme"},
		{"narrow width", func(c *Config) { c.UI.Width = 2 }, "ui.width"},
		{"invalid log level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"invalid log format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := Default()
			tc.modify(c)
			err := c.Validate()
			if tc.field == "" {
				assert.NoError(t, err)
				return
			}

			var verrs ValidateErrors
			require.True(t, errors.As(err, &verrs), "expected ValidateErrors, got %v", err)
			require.NotEmpty(t, verrs)
			assert.Equal(t, tc.field, verrs[0].Field)
		})
	}
}

func TestValidateErrors_Error(t *testing.T) {
	errs := ValidateErrors{
		{Field: "ui.theme", Message: "bad"},
		{Field: "ui.width", Message: "small"},
	}
	assert.Equal(t, "ui.theme: bad; ui.width: small", errs.Error())
	assert.Equal(t, "no validation errors", ValidateErrors{}.Error())
}

// =============================================================================
// FIELD HELPER TESTS
// =============================================================================

func TestFieldConfig_Formatter(t *testing.T) {
	fc := FieldConfig{
		Locale:            "en-US",
		Style:             "currency",
		Currency:          "usd",
		CurrencyDisplay:   "code",
		CurrencySign:      "accounting",
		MaxFractionDigits: numfmt.Int(2),
	}
	f, err := fc.Formatter()
	require.NoError(t, err)

	resolved := f.ResolvedOptions()
	assert.Equal(t, numfmt.StyleCurrency, resolved.Style)
	assert.Equal(t, "USD", resolved.Currency)
	assert.Equal(t, numfmt.CurrencySignAccounting, f.Options().CurrencySign)
	assert.Equal(t, numfmt.CurrencyCode, f.Options().CurrencyDisplay)
}

func TestFieldConfig_Range(t *testing.T) {
	r, err := FieldConfig{}.Range()
	require.NoError(t, err)
	assert.Equal(t, numberfield.Unbounded(), r)

	r, err = FieldConfig{Min: numberfield.Float(0), Max: numberfield.Float(10), Step: 0.5}.Range()
	require.NoError(t, err)
	assert.Equal(t, numberfield.Range{Min: 0, Max: 10, Step: 0.5}, r)
}

// =============================================================================
// LOAD / SAVE TESTS
// =============================================================================

func TestLoadFromPath_Formats(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"toml", "config.toml", `
[field]
locale = "de-DE"
style = "currency"
currency = "EUR"
min = 0.0
max = 500.0
step = 0.5

[ui]
theme = "light"
`},
		{"json", "config.json", `{
  "field": {"locale": "de-DE", "style": "currency", "currency": "EUR", "min": 0, "max": 500, "step": 0.5},
  "ui": {"theme": "light"}
}`},
		{"yaml", "config.yaml", `
field:
  locale: de-DE
  style: currency
  currency: EUR
  min: 0
  max: 500
  step: 0.5
ui:
  theme: light
`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := LoadFromPath(writeFile(t, dir, tc.file, tc.content))
			require.NoError(t, err)

			assert.Equal(t, "de-DE", cfg.Field.Locale)
			assert.Equal(t, "EUR", cfg.Field.Currency)
			require.NotNil(t, cfg.Field.Min)
			require.NotNil(t, cfg.Field.Max)
			assert.Equal(t, 0.0, *cfg.Field.Min)
			assert.Equal(t, 500.0, *cfg.Field.Max)
			assert.Equal(t, 0.5, cfg.Field.Step)
			assert.Equal(t, "light", cfg.UI.Theme)

			// Unset sections fall back to defaults.
			assert.Equal(t, "Value", cfg.UI.Label)
			assert.Equal(t, "warn", cfg.Logging.Level)
		})
	}
}

func TestLoadFromPath_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFromPath(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	_, err = LoadFromPath(writeFile(t, dir, "broken.toml", "[field\nlocale ="))
	assert.Error(t, err)

	_, err = LoadFromPath(writeFile(t, dir, "invalid.toml", "[ui]\ntheme = \"neon\"\n"))
	var verrs ValidateErrors
	assert.True(t, errors.As(err, &verrs))
}

func TestLoad_PrefersTOML(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".numfield")
	require.NoError(t, os.MkdirAll(dir, 0755))

	writeFile(t, dir, "config.yaml", "field:\n  locale: fr-FR\n")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "fr-FR", cfg.Field.Locale)

	writeFile(t, dir, "config.toml", "[field]\nlocale = \"ja-JP\"\n")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "ja-JP", cfg.Field.Locale)
}

func TestLoad_DefaultsWithoutFiles(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default().Field, cfg.Field)
}

func TestSaveTOML_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.Field.Locale = "ar-EG"
	cfg.Field.Min = numberfield.Float(-5)
	cfg.Field.Step = 0.25
	cfg.Field.UseGrouping = numfmt.Bool(false)
	require.NoError(t, SaveTOML(cfg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# numfield configuration file")

	loaded, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSaveYAML_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := Default()
	cfg.Field.Style = "percent"
	cfg.Field.Max = numberfield.Float(1)
	cfg.UI.ShowParts = true
	require.NoError(t, SaveYAML(cfg, path))

	loaded, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

// =============================================================================
// ENVIRONMENT OVERRIDE TESTS
// =============================================================================

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("NUMFIELD_LOCALE", "de-DE")
	t.Setenv("NUMFIELD_STYLE", "percent")
	t.Setenv("NUMFIELD_MIN", "0")
	t.Setenv("NUMFIELD_MAX", "1")
	t.Setenv("NUMFIELD_STEP", "0.01")
	t.Setenv("NUMFIELD_LOG_LEVEL", "debug")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	assert.Equal(t, "de-DE", cfg.Field.Locale)
	assert.Equal(t, "percent", cfg.Field.Style)
	require.NotNil(t, cfg.Field.Min)
	require.NotNil(t, cfg.Field.Max)
	assert.Equal(t, 0.0, *cfg.Field.Min)
	assert.Equal(t, 1.0, *cfg.Field.Max)
	assert.Equal(t, 0.01, cfg.Field.Step)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestApplyEnvOverrides_IgnoresBadNumbers(t *testing.T) {
	t.Setenv("NUMFIELD_STEP", "lots")
	cfg := Default()
	cfg.ApplyEnvOverrides()
	assert.Equal(t, 0.0, cfg.Field.Step)
}

// =============================================================================
// GET / SET TESTS
// =============================================================================

func TestConfig_GetSet(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Set("field.locale", "de-DE"))
	require.NoError(t, cfg.Set("field.step", "0.5"))
	require.NoError(t, cfg.Set("field.max", "100"))
	require.NoError(t, cfg.Set("field.max_fraction_digits", "2"))
	require.NoError(t, cfg.Set("ui.show_parts", "yes"))

	got, err := cfg.Get("field.locale")
	require.NoError(t, err)
	assert.Equal(t, "de-DE", got)

	got, err = cfg.Get("field.max")
	require.NoError(t, err)
	assert.Equal(t, 100.0, got)

	got, err = cfg.Get("field.max_fraction_digits")
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	got, err = cfg.Get("field.min")
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.True(t, cfg.UI.ShowParts)
	assert.Equal(t, 0.5, cfg.Field.Step)

	require.NoError(t, cfg.Set("field.max", ""))
	assert.Nil(t, cfg.Field.Max)

	assert.Error(t, cfg.Set("field.nope", "1"))
	assert.Error(t, cfg.Set("field.locale.deep", "1"))
	assert.Error(t, cfg.Set("field.step", "wide"))
	_, err = cfg.Get("")
	assert.Error(t, err)
}

func TestGetAllKeys_Resolve(t *testing.T) {
	cfg := Default()
	for _, key := range GetAllKeys() {
		_, err := cfg.Get(key)
		assert.NoError(t, err, key)
	}
}

func TestConfig_Clone(t *testing.T) {
	cfg := Default()
	cfg.Field.Min = numberfield.Float(1)
	clone := cfg.Clone()
	*clone.Field.Min = 2
	assert.Equal(t, 1.0, *cfg.Field.Min)
}

// =============================================================================
// WATCHER TESTS
// =============================================================================

func TestWatcher_Reload(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", "[field]\nlocale = \"en-US\"\n")

	w, err := NewWatcher(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	reloaded := make(chan *Config, 4)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(cfg *Config, err error) {
			if err == nil {
				reloaded <- cfg
			}
		})
	}()

	// Unrelated files in the same directory are ignored.
	writeFile(t, dir, "notes.txt", "hello")
	writeFile(t, dir, "config.toml", "[field]\nlocale = \"de-DE\"\n")

	select {
	case cfg := <-reloaded:
		assert.Equal(t, "de-DE", cfg.Field.Locale)
	case <-time.After(5 * time.Second):
		t.Fatal("config was not reloaded")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatch_MissingDirectory(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope", "config.toml"), func(*Config, error) {})
	assert.Error(t, err)
}
