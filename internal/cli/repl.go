// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// repl.go - Line-mode editing session driven by liner.
//
// Each line is either a step operation (+, -, max, min), a directive
// starting with ':' or text typed into the field.
package cli

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/jeranaias/numfield/internal/config"
	"github.com/jeranaias/numfield/internal/numberfield"
	"github.com/jeranaias/numfield/internal/numfmt"
	"github.com/jeranaias/numfield/internal/util"
)

const replHelp = `  <text>          type text into the field (sanitized, not committed)
  + | -           increment or decrement by the step
  max | min       jump to the range bounds
  :commit         commit the typed text
  :show           show the field state
  :parts          show the formatted parts of the value
  :range [--min n] [--max n] [--step n]
                  change the range
  :locale <tag>   change the locale
  :help           show this help
  :quit           leave
`

// =============================================================================
// INPUT HISTORY
// =============================================================================

// lineEditor provides input history and line editing for the REPL.
type lineEditor struct {
	line        *liner.State
	historyFile string
}

func newLineEditor() *lineEditor {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	dir, err := config.ConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	e := &lineEditor{line: line, historyFile: filepath.Join(dir, "repl_history")}
	if f, err := os.Open(e.historyFile); err == nil {
		e.line.ReadHistory(f)
		f.Close()
	}
	return e
}

func (e *lineEditor) readLine(prompt string) (string, error) {
	input, err := e.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		e.line.AppendHistory(input)
	}
	return input, nil
}

// close saves history with owner-only permissions and restores the terminal.
func (e *lineEditor) close() {
	if err := os.MkdirAll(filepath.Dir(e.historyFile), 0700); err == nil {
		if f, err := os.OpenFile(e.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600); err == nil {
			e.line.WriteHistory(f)
			f.Close()
		}
	}
	e.line.Close()
}

// =============================================================================
// SESSION
// =============================================================================

// repl drives one State from text commands.
type repl struct {
	sess  *session
	state *numberfield.State
	out   io.Writer
}

func newREPL(sess *session, out io.Writer) (*repl, error) {
	r := &repl{sess: sess, out: out}
	state, err := sess.newState(func(v float64) {
		fmt.Fprintf(r.out, "  %s %s\n", SuccessStyle.Render("changed"), plainNumber(v))
	})
	if err != nil {
		return nil, err
	}
	r.state = state
	return r, nil
}

// HandleREPL runs the line-mode session until :quit, Ctrl+C or EOF.
func HandleREPL(args Args) error {
	s, err := newSession(args)
	if err != nil {
		return err
	}
	defer s.close()

	r, err := newREPL(s, os.Stdout)
	if err != nil {
		return err
	}

	editor := newLineEditor()
	defer editor.close()

	fmt.Fprintf(os.Stdout, "numfield %s  %s  %s\n", Version, s.formatter.ResolvedOptions().Locale, s.rng)
	fmt.Fprintln(os.Stdout, DimStyle.Render("Type :help for commands."))
	for {
		line, err := editor.readLine("numfield> ")
		if err != nil {
			// Ctrl+C and EOF both end the session.
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Fprintln(os.Stdout)
				return nil
			}
			return err
		}
		quit, err := r.exec(line)
		if err != nil {
			displayError(os.Stdout, err, false)
		}
		if quit {
			return nil
		}
	}
}

// exec runs one line. quit is true for :quit.
func (r *repl) exec(line string) (quit bool, err error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false, nil
	}

	if op, ok := stepOps[strings.ToLower(trimmed)]; ok {
		op(r.state)
		r.show()
		return false, nil
	}

	if !strings.HasPrefix(trimmed, ":") {
		r.state.SetValue(line)
		r.show()
		return false, nil
	}

	p := NewArgParser(strings.Fields(trimmed[1:]))
	switch strings.ToLower(p.Subcommand()) {
	case "q", "quit", "exit":
		return true, nil
	case "h", "help":
		fmt.Fprint(r.out, replHelp)
	case "c", "commit":
		r.state.Commit()
		r.show()
	case "show":
		r.show()
	case "parts":
		r.showParts()
	case "range":
		return false, r.setRange(p)
	case "locale":
		return false, r.setLocale(p.Positional(1))
	default:
		return false, NewValidationErrorWithExample("directive", trimmed, "unknown directive", ":help")
	}
	return false, nil
}

// show prints the typed text, the committed value and the numeral system.
func (r *repl) show() {
	value := r.state.TextValue()
	if value == "" {
		value = DimStyle.Render("empty")
	} else {
		value = ValueStyle.Render(value)
	}
	fmt.Fprintf(r.out, "  %s %s\n", LabelStyle.Render(util.PadRight("input", 8)), r.state.InputValue())
	fmt.Fprintf(r.out, "  %s %s\n", LabelStyle.Render(util.PadRight("value", 8)), value)
	fmt.Fprintf(r.out, "  %s %s\n", LabelStyle.Render(util.PadRight("numerals", 8)), r.state.NumberingSystem().ID())
}

func (r *repl) showParts() {
	v := r.state.Value()
	if math.IsNaN(v) {
		fmt.Fprintln(r.out, DimStyle.Render("  empty"))
		return
	}
	writeParts(r.out, r.state.Formatter().FormatToParts(v), 2)
}

// setRange changes the bounds given as flags and keeps the others.
func (r *repl) setRange(p *ArgParser) error {
	rng := r.state.Range()
	for name, dst := range map[string]*float64{"min": &rng.Min, "max": &rng.Max, "step": &rng.Step} {
		v, ok, err := p.FlagFloat(name)
		if err != nil {
			return NewValidationError(name, p.Flag(name), "must be a number")
		}
		if ok {
			*dst = v
		}
	}
	if err := r.state.SetRange(rng); err != nil {
		return NewValidationError("range", rng.String(), err.Error())
	}
	fmt.Fprintf(r.out, "  %s %s\n", LabelStyle.Render(util.PadRight("range", 8)), r.state.Range())
	return nil
}

// setLocale rebuilds the formatter for tag with the configured options.
func (r *repl) setLocale(tag string) error {
	if tag == "" {
		return NewValidationErrorWithExample("locale", "", "a locale tag is required", ":locale de-DE")
	}
	opts, err := r.sess.cfg.Field.Options()
	if err != nil {
		return err
	}
	f, err := numfmt.New(tag, opts)
	if err != nil {
		return NewValidationError("locale", tag, err.Error())
	}
	r.state.SetFormatter(f)
	r.show()
	return nil
}
