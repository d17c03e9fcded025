// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// field.go - Builds the field every command works on from the config file,
// environment and command-line flags.
package cli

import (
	"fmt"
	"math"
	"strconv"

	"go.uber.org/zap"

	"github.com/jeranaias/numfield/internal/config"
	"github.com/jeranaias/numfield/internal/logging"
	"github.com/jeranaias/numfield/internal/numberfield"
	"github.com/jeranaias/numfield/internal/numfmt"
)

// session bundles the resolved configuration of one command run.
type session struct {
	cfg       *config.Config
	formatter *numfmt.Formatter
	rng       numberfield.Range
	logger    *zap.Logger
}

// loadConfig reads the configuration selected by --config, or the default
// search path, and applies the flag overrides on top.
func loadConfig(args Args) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if args.ConfigPath != "" {
		cfg, err = config.LoadFromPath(args.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	applyFlagOverrides(cfg, args)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFlagOverrides copies the global flags that were given into cfg.
func applyFlagOverrides(cfg *config.Config, args Args) {
	if args.Locale != "" {
		cfg.Field.Locale = args.Locale
	}
	if args.Style != "" {
		cfg.Field.Style = args.Style
	}
	if args.Currency != "" {
		cfg.Field.Currency = args.Currency
		if args.Style == "" {
			cfg.Field.Style = "currency"
		}
	}
	if args.Numbering != "" {
		cfg.Field.Numbering = args.Numbering
	}
	if args.Min != nil {
		cfg.Field.Min = args.Min
	}
	if args.Max != nil {
		cfg.Field.Max = args.Max
	}
	if args.Step != nil {
		cfg.Field.Step = *args.Step
	}
}

// newSession resolves the config into a formatter, range and logger.
func newSession(args Args) (*session, error) {
	cfg, err := loadConfig(args)
	if err != nil {
		return nil, err
	}
	return sessionFromConfig(cfg, args.Verbose)
}

func sessionFromConfig(cfg *config.Config, verbose bool) (*session, error) {
	formatter, err := cfg.Field.Formatter()
	if err != nil {
		return nil, fmt.Errorf("field formatter: %w", err)
	}
	rng, err := cfg.Field.Range()
	if err != nil {
		return nil, fmt.Errorf("field range: %w", err)
	}

	logCfg := cfg.Logging.Logger()
	if verbose {
		logCfg = logging.Verbose(logCfg)
	}
	logger, err := logging.New(logCfg)
	if err != nil {
		return nil, err
	}

	return &session{cfg: cfg, formatter: formatter, rng: rng, logger: logger}, nil
}

// newState creates an editing session seeded with the configured value.
func (s *session) newState(onChange func(float64)) (*numberfield.State, error) {
	return numberfield.New(numberfield.Options{
		Formatter:    s.formatter,
		Range:        s.rng,
		DefaultValue: s.cfg.Field.Value,
		ReadOnly:     s.cfg.Field.ReadOnly,
		OnChange:     onChange,
		Logger:       s.logger,
	})
}

// fieldInfo describes the session for JSON output.
func (s *session) fieldInfo() FieldInfo {
	ro := s.formatter.ResolvedOptions()
	info := FieldInfo{
		Locale:          ro.Locale,
		Style:           ro.Style.String(),
		Currency:        ro.Currency,
		NumberingSystem: ro.NumberingSystem,
		Step:            s.rng.Step,
	}
	if s.rng.HasMin() {
		info.Min = jsonNumber(s.rng.Min)
	}
	if s.rng.HasMax() {
		info.Max = jsonNumber(s.rng.Max)
	}
	return info
}

// close flushes the logger.
func (s *session) close() {
	_ = s.logger.Sync()
}

// plainNumber renders v the way Go source would, for the machine-readable
// column of text output.
func plainNumber(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
