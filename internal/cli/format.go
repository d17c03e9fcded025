// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// format.go - The format, parse and step commands.
package cli

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/jeranaias/numfield/internal/numberfield"
	"github.com/jeranaias/numfield/internal/numfmt"
	"github.com/jeranaias/numfield/internal/util"
)

// =============================================================================
// FORMAT
// =============================================================================

// HandleFormat formats each argument with the configured formatter.
func HandleFormat(args Args) error {
	return runFormat(os.Stdout, args)
}

func runFormat(w io.Writer, args Args) error {
	if len(args.Raw) == 0 {
		return NewValidationErrorWithExample("number", "", "at least one number is required", "numfield format 1234.5")
	}
	s, err := newSession(args)
	if err != nil {
		return err
	}
	defer s.close()

	data := FormatData{Field: s.fieldInfo()}
	for _, in := range args.Raw {
		v, err := strconv.ParseFloat(in, 64)
		if err != nil {
			return NewValidationErrorWithExample("number", in, "not a number", "numfield format -1234.5")
		}
		res := FormatResult{Input: in, Value: jsonNumber(v), Text: s.formatter.Format(v)}
		if args.Parts {
			res.Parts = s.formatter.FormatToParts(v)
		}
		data.Results = append(data.Results, res)
	}

	if args.JSON {
		return NewJSONResponse("format", data).Write(w)
	}

	inputs := make([]string, len(data.Results))
	outputs := make([]string, len(data.Results))
	for i, r := range data.Results {
		inputs[i], outputs[i] = r.Input, r.Text
	}
	inWidth, outWidth := columnWidth(inputs), columnWidth(outputs)
	for _, r := range data.Results {
		fmt.Fprintf(w, "%s  %s\n", LabelStyle.Render(util.PadLeft(r.Input, inWidth)), ValueStyle.Render(util.PadLeft(r.Text, outWidth)))
		if args.Parts {
			writeParts(w, r.Parts, inWidth+2)
		}
	}
	return nil
}

// writeParts prints one "type value" line per part, indented by indent.
func writeParts(w io.Writer, parts []numfmt.Part, indent int) {
	types := make([]string, len(parts))
	for i, p := range parts {
		types[i] = string(p.Type)
	}
	typeWidth := columnWidth(types)
	pad := strings.Repeat(" ", indent)
	for _, p := range parts {
		fmt.Fprintf(w, "%s%s  %q\n", pad, DimStyle.Render(util.PadRight(string(p.Type), typeWidth)), p.Value)
	}
}

// columnWidth returns the display width of the widest cell.
func columnWidth(cells []string) int {
	width := 0
	for _, c := range cells {
		if n := util.StringWidth(c); n > width {
			width = n
		}
	}
	return width
}

// =============================================================================
// PARSE
// =============================================================================

// HandleParse parses each argument as localized text.
func HandleParse(args Args) error {
	return runParse(os.Stdout, args)
}

func runParse(w io.Writer, args Args) error {
	if len(args.Raw) == 0 {
		return NewValidationErrorWithExample("text", "", "at least one string is required", `numfield parse "1.234,5" --locale de-DE`)
	}
	s, err := newSession(args)
	if err != nil {
		return err
	}
	defer s.close()

	parser := numfmt.NewParser(s.formatter)
	data := ParseData{Field: s.fieldInfo()}
	for _, in := range args.Raw {
		v := parser.Parse(in)
		data.Results = append(data.Results, ParseResult{
			Input:           in,
			Value:           jsonNumber(v),
			NumberingSystem: parser.NumberingSystem(in).ID(),
			Valid:           !math.IsNaN(v),
		})
	}

	if args.JSON {
		return NewJSONResponse("parse", data).Write(w)
	}

	inputs := make([]string, len(data.Results))
	for i, r := range data.Results {
		inputs[i] = r.Input
	}
	inWidth := columnWidth(inputs)
	for _, r := range data.Results {
		value := DimStyle.Render("NaN")
		if r.Valid {
			value = ValueStyle.Render(plainNumber(*r.Value))
		}
		fmt.Fprintf(w, "%s  %s  %s\n", LabelStyle.Render(util.PadRight(r.Input, inWidth)), DimStyle.Render(util.PadRight(r.NumberingSystem, 7)), value)
	}
	return nil
}

// =============================================================================
// STEP
// =============================================================================

// HandleStep commits a start value and applies step operations to it.
func HandleStep(args Args) error {
	return runStep(os.Stdout, args)
}

// stepOps maps the accepted operation names to State methods.
var stepOps = map[string]func(*numberfield.State){
	"+":   (*numberfield.State).Increment,
	"inc": (*numberfield.State).Increment,
	"-":   (*numberfield.State).Decrement,
	"dec": (*numberfield.State).Decrement,
	"max": (*numberfield.State).IncrementToMax,
	"min": (*numberfield.State).DecrementToMin,
}

func runStep(w io.Writer, args Args) error {
	if len(args.Raw) == 0 {
		return NewValidationErrorWithExample("start", "", "a start value is required", "numfield step 5 + + - --step 0.5")
	}
	ops := args.Raw[1:]
	for _, op := range ops {
		if _, ok := stepOps[strings.ToLower(op)]; !ok {
			return NewValidationErrorWithExample("operation", op, "expected +, -, max or min", "numfield step 5 + max")
		}
	}

	s, err := newSession(args)
	if err != nil {
		return err
	}
	defer s.close()

	state, err := s.newState(nil)
	if err != nil {
		return err
	}

	start := args.Raw[0]
	state.SetValue(startText(s.formatter, start))
	state.Commit()

	data := StepData{Field: s.fieldInfo(), Start: start}
	data.Steps = append(data.Steps, StepResult{Op: "commit", Value: jsonNumber(state.Value()), Text: state.TextValue()})
	for _, op := range ops {
		stepOps[strings.ToLower(op)](state)
		data.Steps = append(data.Steps, StepResult{Op: op, Value: jsonNumber(state.Value()), Text: state.TextValue()})
	}

	if args.JSON {
		return NewJSONResponse("step", data).Write(w)
	}

	opsCol := make([]string, len(data.Steps))
	texts := make([]string, len(data.Steps))
	for i, st := range data.Steps {
		opsCol[i], texts[i] = st.Op, st.Text
	}
	opWidth, textWidth := columnWidth(opsCol), columnWidth(texts)
	for _, st := range data.Steps {
		text := st.Text
		if text == "" {
			text = "empty"
		}
		fmt.Fprintf(w, "%s  %s\n", LabelStyle.Render(util.PadRight(st.Op, opWidth)), ValueStyle.Render(util.PadLeft(text, textWidth)))
	}
	return nil
}

// startText turns the start argument into field input. A plain number is
// formatted first so it reads correctly in any locale; anything else is
// taken as localized text.
func startText(f *numfmt.Formatter, start string) string {
	if v, err := strconv.ParseFloat(start, 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
		return f.Format(v)
	}
	return start
}
