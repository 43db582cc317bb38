// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"os"

	"github.com/matt-FFFFFF/dye"
	"github.com/matt-FFFFFF/dye/cmd/paint"
	"github.com/matt-FFFFFF/dye/cmd/palette"
	"github.com/urfave/cli/v3"
)

// RootCmd is the root command for the CLI.
var RootCmd = &cli.Command{
	Commands: []*cli.Command{
		paint.PaintCmd,
		palette.PaletteCmd,
	},
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "dye",
	Version:   dye.Version,
	Description: `Dye styles text for ANSI-capable terminals. It wraps text in SGR escape
sequences for foreground color, background color and text attributes, with
colors given by name, 256-palette index, hex value or RGB triple. Styles can
also be bundled into named theme entries in a YAML file.`,
	Usage:     `dye paint --fg red --style bold "hello"`,
	Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
	Authors: []any{
		"Matt White (matt-FFFFFF)",
	},
	EnableShellCompletion: true,
}
