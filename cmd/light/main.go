// Command light converts, mixes and adjusts colors from the terminal.
//
// Usage:
//
//	light convert steelblue --format yaml
//	light mix red '#00F' --op blend --midpoint 0.25
//	light adjust F80 --lighten 2 --alpha 0.5 --swatch
//	light names slate
package main

import "os"

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// Cobra has already printed the error.
		os.Exit(1)
	}
}
