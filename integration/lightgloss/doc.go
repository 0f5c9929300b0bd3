// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package lightgloss bridges light colors and lipgloss terminal styles.
//
// Colors are passed to lipgloss as "#RRGGBB" strings, so lipgloss picks
// the closest color the terminal profile supports. Alpha is not
// representable in a terminal and is dropped.
//
// # Usage
//
//	style := lipgloss.NewStyle().Foreground(lightgloss.ToLipgloss(light.Graphite))
//	fmt.Println(lightgloss.Swatch(light.MustParseHex("#3498DB"), "sky"))
package lightgloss
