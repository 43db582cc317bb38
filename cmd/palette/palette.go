// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package palette

import (
	"context"
	"fmt"
	"io"

	"github.com/matt-FFFFFF/dye"
	"github.com/urfave/cli/v3"
)

const cellsPerRow = 16

// PaletteCmd prints swatches for everything the library can express.
var PaletteCmd = newCmd()

// newCmd builds a fresh command instance; tests use it to avoid sharing
// parsed flag state between runs.
func newCmd() *cli.Command {
	return &cli.Command{
		Name:        "palette",
		Description: "Print swatches for the named colors, the 256-color palette and an RGB ramp. Output is always colored; the command exists to show colors.",
		Action:      actionFunc,
	}
}

var namedColors = []struct {
	name  string
	color dye.BasicColor
}{
	{name: "black", color: dye.Black},
	{name: "red", color: dye.Red},
	{name: "green", color: dye.Green},
	{name: "yellow", color: dye.Yellow},
	{name: "blue", color: dye.Blue},
	{name: "magenta", color: dye.Magenta},
	{name: "cyan", color: dye.Cyan},
	{name: "white", color: dye.White},
	{name: "bright-black", color: dye.BrightBlack},
	{name: "bright-red", color: dye.BrightRed},
	{name: "bright-green", color: dye.BrightGreen},
	{name: "bright-yellow", color: dye.BrightYellow},
	{name: "bright-blue", color: dye.BrightBlue},
	{name: "bright-magenta", color: dye.BrightMagenta},
	{name: "bright-cyan", color: dye.BrightCyan},
	{name: "bright-white", color: dye.BrightWhite},
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	w := cmd.Writer

	if err := writeNamed(w); err != nil {
		return cli.Exit("failed to write palette: "+err.Error(), 1)
	}

	if err := writeIndexed(w); err != nil {
		return cli.Exit("failed to write palette: "+err.Error(), 1)
	}

	if err := writeRamp(w); err != nil {
		return cli.Exit("failed to write palette: "+err.Error(), 1)
	}

	return nil
}

func writeNamed(w io.Writer) error {
	if _, err := dye.New("Named colors").Bold().Fprintln(w); err != nil {
		return err
	}

	for _, nc := range namedColors {
		label := fmt.Sprintf("%-16s", nc.name)

		if _, err := dye.New(label).Foreground(nc.color).Fprint(w); err != nil {
			return err
		}

		if _, err := dye.New("    ").Background(nc.color).Fprintln(w); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w)

	return err
}

func writeIndexed(w io.Writer) error {
	if _, err := dye.New("256-color palette").Bold().Fprintln(w); err != nil {
		return err
	}

	for i := range 256 {
		cell := fmt.Sprintf("%4d", i)

		if _, err := dye.New(cell).Background(dye.Palette(i)).Fprint(w); err != nil {
			return err
		}

		if (i+1)%cellsPerRow == 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintln(w)

	return err
}

func writeRamp(w io.Writer) error {
	if _, err := dye.New("RGB ramp").Bold().Fprintln(w); err != nil {
		return err
	}

	const steps = 64

	for i := range steps {
		level := uint8(i * 255 / (steps - 1))
		color := dye.RGB{R: level, G: 255 - level, B: 128}

		if _, err := dye.New(" ").Background(color).Fprint(w); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w)

	return err
}
