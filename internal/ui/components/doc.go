// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the UI components of the numfield TUI.

Components are built on Bubble Tea and Lip Gloss and styled through the
styles package.

# Components

NumberField (numberfield.go) - Locale-aware numeric input bound to a
numberfield.State. Keystrokes are sanitized as they are typed; arrow keys step
the value and enter or blur commits it.

StatusBar (statusbar.go) - Key hints, replaced by a transient message after a
config reload or error.

# Usage

	state, _ := numberfield.New(numberfield.Options{Range: r})
	field := components.NewNumberField(state, styles.NewTheme(""))
	cmd := field.Focus()

	// In the parent model's Update:
	field, cmd = field.Update(msg)
*/
package components
