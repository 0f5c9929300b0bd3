// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package lighttcell converts between light colors and tcell terminal colors.
//
// tcell colors carry no alpha, so ToTcell drops it and FromTcell always
// returns an opaque color. Palette colors (tcell.ColorRed and friends) are
// resolved through their RGB values.
//
// # Usage
//
//	style := lighttcell.Style(light.White, light.Graphite)
//	screen.SetContent(x, y, 'x', nil, style)
//
//	if c, ok := lighttcell.FromTcell(tcell.ColorTeal); ok {
//	    fmt.Println(c.Hex())
//	}
package lighttcell
