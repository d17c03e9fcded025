// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package numberfield implements the state engine behind a locale-aware
// numeric text field.
//
// A State turns raw keystrokes into a validated number and back. Keystrokes
// are sanitized against the symbols of the active locale formatter and kept
// as display text; the canonical number only moves on Commit, on a step
// operation, or when a controlled value is pushed in from outside.
//
// # Pipeline
//
//	SetValue(text)  -> detect numeral system -> Sanitize -> parse -> pending value
//	Commit()        -> pending or current value -> Clamp -> format -> publish
//	Increment()     -> base value -> AddDecimal(step) -> Clamp -> format -> publish
//
// # Usage
//
//	f, _ := numfmt.New("en-US", numfmt.Options{})
//	st, err := numberfield.New(numberfield.Options{
//		Formatter: f,
//		Range:     numberfield.Range{Min: 0, Max: 10, Step: 0.5},
//		OnChange:  func(v float64) { fmt.Println("value", v) },
//	})
//	st.SetValue("7.3")
//	st.Commit() // value 7.5, input "7.5"
//
// A State is owned by a single editing session and is not safe for
// concurrent use; callers serialize operations per session.
package numberfield
