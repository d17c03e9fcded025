// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging builds the zap loggers used by numfield.
//
// Terminals get a console encoder; "json" selects the production JSON
// encoder. Output goes to stderr unless a file is configured, so log records
// never mix with command output on stdout.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// =============================================================================
// CONFIG
// =============================================================================

// Supported encoder formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config selects the level, encoder and destination of a logger.
type Config struct {
	// Level is one of debug, info, warn, error. Empty means warn.
	Level string
	// Format is "console" (default) or "json".
	Format string
	// File appends records to the given path instead of stderr.
	File string
}

// ParseLevel converts a level name to a zapcore.Level.
func ParseLevel(name string) (zapcore.Level, error) {
	if name == "" {
		return zapcore.WarnLevel, nil
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(name))); err != nil {
		return lvl, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return lvl, nil
}

// =============================================================================
// CONSTRUCTION
// =============================================================================

// New builds a logger from cfg.
func New(cfg Config) (*zap.Logger, error) {
	lvl, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var zc zap.Config
	switch strings.ToLower(cfg.Format) {
	case "", FormatConsole:
		zc = zap.NewDevelopmentConfig()
		zc.Development = false
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	case FormatJSON:
		zc = zap.NewProductionConfig()
		zc.Sampling = nil
	default:
		return nil, fmt.Errorf("invalid log format %q (use %s or %s)", cfg.Format, FormatConsole, FormatJSON)
	}

	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.DisableStacktrace = true
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	if cfg.File != "" {
		zc.OutputPaths = []string{cfg.File}
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Verbose returns cfg with the level lowered to debug.
func Verbose(cfg Config) Config {
	cfg.Level = zapcore.DebugLevel.String()
	return cfg
}
