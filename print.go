// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package dye

import (
	"fmt"
	"io"
	"os"
)

// Output streams for the print helpers. Variables so tests can substitute
// them.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Fprint writes the rendered text to w.
func (t Text) Fprint(w io.Writer) (int, error) {
	return fmt.Fprint(w, t.Render())
}

// Fprintln writes the rendered text to w, followed by a newline.
func (t Text) Fprintln(w io.Writer) (int, error) {
	return fmt.Fprintln(w, t.Render())
}

// Print writes the rendered text to standard output.
func (t Text) Print() {
	_, _ = t.Fprint(stdout)
}

// Println writes the rendered text to standard output, followed by a
// newline.
func (t Text) Println() {
	_, _ = t.Fprintln(stdout)
}

// Eprint writes the rendered text to standard error.
func (t Text) Eprint() {
	_, _ = t.Fprint(stderr)
}

// Eprintln writes the rendered text to standard error, followed by a
// newline.
func (t Text) Eprintln() {
	_, _ = t.Fprintln(stderr)
}
