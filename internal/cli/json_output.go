// json_output.go - JSON output for scripting.
//
// Every command accepts --json and then writes a single JSONResponse to
// stdout; human-readable messages go to stderr.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package cli

import (
	"encoding/json"
	"io"
	"math"
	"os"
	"time"

	"github.com/jeranaias/numfield/internal/numfmt"
)

// JSONResponse is the standardized response format for all CLI commands.
type JSONResponse struct {
	// Success indicates whether the command completed successfully
	Success bool `json:"success"`

	// Data contains the command-specific response data
	Data interface{} `json:"data"`

	// Error contains the error message if Success is false, null otherwise
	Error *string `json:"error"`

	// Timestamp is the ISO8601 timestamp when the response was generated
	Timestamp string `json:"timestamp"`

	// Command is the command that was executed
	Command string `json:"command,omitempty"`
}

// NewJSONResponse creates a new successful JSON response.
func NewJSONResponse(command string, data interface{}) *JSONResponse {
	return &JSONResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Command:   command,
	}
}

// Print outputs the JSON response to stdout.
func (r *JSONResponse) Print() error {
	return r.Write(os.Stdout)
}

// Write outputs the indented JSON response to w.
func (r *JSONResponse) Write(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}

// jsonNumber maps NaN, which encoding/json rejects, to null.
func jsonNumber(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// =============================================================================
// COMMAND-SPECIFIC DATA STRUCTURES
// =============================================================================

// FieldInfo describes the formatter and range a command ran with.
type FieldInfo struct {
	Locale          string   `json:"locale"`
	Style           string   `json:"style"`
	Currency        string   `json:"currency,omitempty"`
	NumberingSystem string   `json:"numbering_system"`
	Min             *float64 `json:"min"`
	Max             *float64 `json:"max"`
	Step            float64  `json:"step"`
}

// FormatResult is one formatted number.
type FormatResult struct {
	Input string        `json:"input"`
	Value *float64      `json:"value"`
	Text  string        `json:"text"`
	Parts []numfmt.Part `json:"parts,omitempty"`
}

// FormatData represents the data returned by the format command.
type FormatData struct {
	Field   FieldInfo      `json:"field"`
	Results []FormatResult `json:"results"`
}

// ParseResult is one parsed string. Value is null when the text is not a
// number.
type ParseResult struct {
	Input           string   `json:"input"`
	Value           *float64 `json:"value"`
	NumberingSystem string   `json:"numbering_system"`
	Valid           bool     `json:"valid"`
}

// ParseData represents the data returned by the parse command.
type ParseData struct {
	Field   FieldInfo     `json:"field"`
	Results []ParseResult `json:"results"`
}

// StepResult is the field after one step operation.
type StepResult struct {
	Op    string   `json:"op"`
	Value *float64 `json:"value"`
	Text  string   `json:"text"`
}

// StepData represents the data returned by the step command.
type StepData struct {
	Field FieldInfo    `json:"field"`
	Start string       `json:"start"`
	Steps []StepResult `json:"steps"`
}

// ConfigPathData represents the data returned by config path and init.
type ConfigPathData struct {
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
}

// ConfigValueData represents the data returned by config get and set.
type ConfigValueData struct {
	Key   string      `json:"key"`
	Value interface{} `json:"value"`
}

// VersionData represents the data returned by the version command.
type VersionData struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
}
