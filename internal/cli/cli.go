// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command dispatch for numfield.
package cli

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdFormat
	CmdParse
	CmdStep
	CmdREPL
	CmdConfig
	CmdVersion
	CmdHelp
)

var commandNames = map[Command]string{
	CmdTUI:     "tui",
	CmdFormat:  "format",
	CmdParse:   "parse",
	CmdStep:    "step",
	CmdREPL:    "repl",
	CmdConfig:  "config",
	CmdVersion: "version",
	CmdHelp:    "help",
}

// String returns the command name as typed on the command line.
func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Locale     string
	Style      string
	Currency   string
	Numbering  string
	Min        *float64
	Max        *float64
	Step       *float64
	ConfigPath string
	JSON       bool
	Verbose    bool

	// Command-specific
	Subcommand string
	ConfigKey  string
	ConfigVal  string
	Parts      bool

	// Raw args (remaining after flag parsing)
	Raw []string
}

const usageText = `numfield - locale-aware numeric input field

Usage:
  numfield [flags]                        Start the interactive field (default)
  numfield format <number>...             Format numbers for the locale
  numfield parse <text>...                Parse localized text into numbers
  numfield step <start> [+|-|max|min]...  Apply step operations to a value
  numfield repl                           Line-mode editing session
  numfield config [show|path|init|get|set] Configuration
  numfield version                        Show version information
  numfield help                           Show this help

Flags:
  --locale <tag>        BCP 47 locale (en-US, de-DE, ar-EG, ...)
  --style <name>        decimal, percent, currency or unit
  --currency <code>     ISO 4217 currency code for the currency style
  --numbering <id>      Force a numeral system (latn, arab, hanidec)
  --min <n>             Lower bound
  --max <n>             Upper bound
  --step <n>            Step for increment and decrement
  --config <path>       Load configuration from path
  --json                Output in JSON format
  -v, --verbose         Debug logging
  --parts               (format) Show the formatted parts

Examples:
  numfield format 1234.5 --locale de-DE
  numfield format 0.25 --style percent --parts
  numfield parse "١٬٢٣٤٫٥" --locale ar-EG
  numfield step 9.5 + + - --min 0 --max 10 --step 0.5
  numfield config set field.locale fr-FR

Configuration is read from ~/.numfield/config.toml (or .json, .yaml) and
NUMFIELD_* environment variables.
`

// PrintUsage prints the usage text.
func PrintUsage() {
	printUsage(os.Stdout)
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, usageText)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("numfield %s\n", Version)
	fmt.Printf("  commit: %s\n", GitCommit)
	fmt.Printf("  built:  %s\n", BuildDate)
	fmt.Printf("  go:     %s\n", runtime.Version())
}

// =============================================================================
// PARSING
// =============================================================================

// Parse parses os.Args and returns the command and arguments.
func Parse() (Command, Args, error) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses an argument list (without the program name).
func ParseArgs(argv []string) (Command, Args, error) {
	remaining, parsedArgs, err := parseGlobalFlags(argv)
	if err != nil {
		return CmdHelp, parsedArgs, err
	}

	// If no remaining args, default to TUI
	if len(remaining) == 0 {
		return CmdTUI, parsedArgs, nil
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	parsedArgs.Raw = remaining

	switch cmd {
	case "tui":
		return CmdTUI, parsedArgs, nil

	case "format", "fmt":
		return CmdFormat, parsedArgs, nil

	case "parse":
		return CmdParse, parsedArgs, nil

	case "step":
		return CmdStep, parsedArgs, nil

	case "repl":
		return CmdREPL, parsedArgs, nil

	case "config":
		parseConfigArgs(&parsedArgs, remaining)
		return CmdConfig, parsedArgs, nil

	case "version", "--version":
		return CmdVersion, parsedArgs, nil

	case "help", "-h", "--help":
		return CmdHelp, parsedArgs, nil

	default:
		return CmdHelp, parsedArgs, &ValidationError{
			Field:   "command",
			Value:   cmd,
			Reason:  "unknown command",
			Example: "numfield help",
		}
	}
}

// parseGlobalFlags extracts the global flags from anywhere in args.
// Tokens that look like negative numbers are left as arguments.
func parseGlobalFlags(args []string) ([]string, Args, error) {
	var remaining []string
	var parsedArgs Args

	i := 0
	for i < len(args) {
		arg := args[i]
		name, value, hasValue := splitFlag(arg)

		// next returns the flag value from "--flag=value" or the next token.
		next := func() (string, error) {
			if hasValue {
				return value, nil
			}
			if i+1 >= len(args) {
				return "", NewValidationError(name, "", "missing value")
			}
			i++
			return args[i], nil
		}

		var err error
		switch name {
		case "--json":
			parsedArgs.JSON = true
		case "-v", "--verbose":
			parsedArgs.Verbose = true
		case "--parts":
			parsedArgs.Parts = true
		case "--locale":
			parsedArgs.Locale, err = next()
		case "--style":
			parsedArgs.Style, err = next()
		case "--currency":
			parsedArgs.Currency, err = next()
		case "--numbering":
			parsedArgs.Numbering, err = next()
		case "--config":
			parsedArgs.ConfigPath, err = next()
		case "--min", "--max", "--step":
			var s string
			if s, err = next(); err == nil {
				var f float64
				if f, err = parseFloatFlag(name, s); err == nil {
					switch name {
					case "--min":
						parsedArgs.Min = &f
					case "--max":
						parsedArgs.Max = &f
					default:
						parsedArgs.Step = &f
					}
				}
			}
		default:
			remaining = append(remaining, arg)
		}
		if err != nil {
			return nil, parsedArgs, err
		}
		i++
	}

	return remaining, parsedArgs, nil
}

// splitFlag splits "--name=value". Non-flag tokens come back unchanged.
func splitFlag(arg string) (name, value string, hasValue bool) {
	if !strings.HasPrefix(arg, "--") {
		return arg, "", false
	}
	if idx := strings.Index(arg, "="); idx > 0 {
		return arg[:idx], arg[idx+1:], true
	}
	return arg, "", false
}

func parseFloatFlag(name, s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, NewValidationErrorWithExample(strings.TrimLeft(name, "-"), s, "must be a number", name+" 10")
	}
	return f, nil
}

// parseConfigArgs parses arguments for the config command.
func parseConfigArgs(args *Args, remaining []string) {
	if len(remaining) > 0 {
		args.Subcommand = strings.ToLower(remaining[0])
	}
	if len(remaining) > 1 {
		args.ConfigKey = remaining[1]
	}
	if len(remaining) > 2 {
		args.ConfigVal = strings.Join(remaining[2:], " ")
	}
}

// =============================================================================
// DISPATCH
// =============================================================================

// Run executes cmd and returns its error. The TUI is started by the caller.
func Run(cmd Command, args Args) error {
	switch cmd {
	case CmdTUI:
		return HandleTUI(args)
	case CmdFormat:
		return HandleFormat(args)
	case CmdParse:
		return HandleParse(args)
	case CmdStep:
		return HandleStep(args)
	case CmdREPL:
		return HandleREPL(args)
	case CmdConfig:
		return HandleConfig(args)
	case CmdVersion:
		return HandleVersionWithJSON(args)
	default:
		HandleHelp()
		return nil
	}
}

// HandleVersionWithJSON prints version information, as JSON with --json.
func HandleVersionWithJSON(args Args) error {
	if args.JSON {
		data := VersionData{
			Version:   Version,
			GitCommit: GitCommit,
			BuildDate: BuildDate,
			GoVersion: runtime.Version(),
		}
		return NewJSONResponse("version", data).Print()
	}
	PrintVersion()
	return nil
}

// HandleHelp handles the help command.
func HandleHelp() {
	PrintUsage()
}
