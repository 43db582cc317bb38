// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package colorenable

import (
	"os"

	"golang.org/x/term"
)

const (
	// NoColor is the environment variable that disables color output.
	NoColor = "NO_COLOR"
	// ForceColor is the environment variable that forces color output.
	ForceColor = "FORCE_COLOR"
)

// Enabled reports whether the command-line surfaces should emit color.
//
// NO_COLOR always wins, then FORCE_COLOR, then whether standard output is a
// terminal. Terminal detection is done using the golang.org/x/term package.
// The library itself never consults this; rendering stays unconditional.
func Enabled() bool {
	if nc := os.Getenv(NoColor); nc != "" {
		return false
	}

	if fc := os.Getenv(ForceColor); fc != "" {
		return true
	}

	return term.IsTerminal(int(os.Stdout.Fd()))
}
