// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package util

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// ANSI colour codes used for derived output.
const (
	ColorAddress = "32" // green
	ColorBump    = "33" // yellow
)

// SupportsColor checks if the terminal supports ANSI color codes
func SupportsColor(f *os.File) bool {
	if f == nil || !term.IsTerminal(int(f.Fd())) { // #nosec G115 - file descriptors are small integers
		return false
	}

	termEnv := os.Getenv("TERM")
	if termEnv == "" || termEnv == "dumb" {
		return false
	}
	return os.Getenv("NO_COLOR") == ""
}

// Colorize wraps s in an ANSI colour when enabled.
func Colorize(s, code string, enabled bool) string {
	if !enabled || code == "" {
		return s
	}
	return fmt.Sprintf("\033[%sm%s\033[0m", code, s)
}
