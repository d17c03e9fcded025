// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package numfmt provides locale-aware number formatting and parsing.
//
// Locale symbols (minus sign, group and decimal separators, group sizes,
// percent affixes, currency symbols) come from golang.org/x/text. The
// formatter itself is deliberately small: it renders the decimal, percent,
// currency and unit styles, splits its output into typed parts, and renders
// digits in the Latin, Arabic-Indic or Han decimal numeral systems.
//
// # Usage
//
//	f, err := numfmt.New("de-DE", numfmt.Options{
//		Style:    numfmt.StyleCurrency,
//		Currency: "EUR",
//	})
//	if err != nil {
//		return err
//	}
//	f.Format(-1234.5)                // "-1.234,50 €"
//	numfmt.NewParser(f).Parse("1.234,5 €") // 1234.5
package numfmt
