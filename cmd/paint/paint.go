// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package paint

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/dye"
	"github.com/matt-FFFFFF/dye/internal/colorenable"
	"github.com/matt-FFFFFF/dye/internal/colorparse"
	"github.com/matt-FFFFFF/dye/internal/theme"
	"github.com/urfave/cli/v3"
)

const (
	textArg       = "text"
	fgFlag        = "fg"
	bgFlag        = "bg"
	styleFlag     = "style"
	themeFlag     = "theme"
	asFlag        = "as"
	noNewlineFlag = "no-newline"
	stderrFlag    = "stderr"
)

var (
	// ErrReadStdin is returned when standard input cannot be read.
	ErrReadStdin = errors.New("failed to read standard input")
	// ErrThemeRequired is returned when --as is given without --theme.
	ErrThemeRequired = errors.New("--as requires --theme")
)

// PaintCmd styles a piece of text and writes it out.
var PaintCmd = newCmd()

// newCmd builds a fresh command instance; tests use it to avoid sharing
// parsed flag state between runs.
func newCmd() *cli.Command {
	return &cli.Command{
		Name:        "paint",
		Description: "Style text with ANSI colors and attributes. Text is taken from the argument, or from standard input when no argument is given.",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:      textArg,
				UsageText: "TEXT",
			},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  fgFlag,
				Usage: "Foreground color: a name, '#RRGGBB', '0xRRGGBB', 'rgb(r,g,b)' or a 256-palette index",
			},
			&cli.StringFlag{
				Name:  bgFlag,
				Usage: "Background color, same forms as --fg",
			},
			&cli.StringSliceFlag{
				Name:    styleFlag,
				Aliases: []string{"s"},
				Usage:   "Text attribute (bold, dim, italic, underline, blink, reverse, hidden, strikethrough); repeatable",
			},
			&cli.StringFlag{
				Name:  themeFlag,
				Usage: "Path to a YAML theme file",
			},
			&cli.StringFlag{
				Name:  asFlag,
				Usage: "Name of a theme entry to apply before the other flags",
			},
			&cli.BoolFlag{
				Name:        noNewlineFlag,
				Aliases:     []string{"n"},
				Usage:       "Do not append a trailing newline",
				DefaultText: "false",
			},
			&cli.BoolFlag{
				Name:        stderrFlag,
				Usage:       "Write to standard error instead of standard output",
				DefaultText: "false",
			},
		},
		Action: actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	payload := cmd.StringArg(textArg)
	if payload == "" {
		bytes, err := readAll(ctx, cmd.Reader)
		if err != nil {
			return cli.Exit(fmt.Sprintf("%s: %s", ErrReadStdin.Error(), err.Error()), 1)
		}

		payload = strings.TrimSuffix(string(bytes), "\n")
	}

	text, err := buildText(cmd, payload)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	// Honor NO_COLOR and non-terminal output: emit the bare payload.
	if !colorenable.Enabled() {
		text = dye.New(payload)
	}

	w := cmd.Writer
	if cmd.Bool(stderrFlag) {
		w = cmd.ErrWriter
	}

	if cmd.Bool(noNewlineFlag) {
		_, err = text.Fprint(w)
	} else {
		_, err = text.Fprintln(w)
	}

	if err != nil {
		return cli.Exit("failed to write output: "+err.Error(), 1)
	}

	return nil
}

// buildText assembles the styled text from the theme entry (if any) and the
// individual flags. Flags are applied after the theme, so an explicit --fg
// overrides the entry's foreground while styles accumulate. All invalid
// specs are reported together.
func buildText(cmd *cli.Command, payload string) (dye.Text, error) {
	text := dye.New(payload)

	var errs *multierror.Error

	if as := cmd.String(asFlag); as != "" {
		themePath := cmd.String(themeFlag)
		if themePath == "" {
			return text, ErrThemeRequired
		}

		th, err := theme.Load(themePath)
		if err != nil {
			return text, err
		}

		text, err = th.Apply(as, payload)
		if err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	if spec := cmd.String(fgFlag); spec != "" {
		c, err := colorparse.Color(spec)
		if err != nil {
			errs = multierror.Append(errs, err)
		} else {
			text = text.Foreground(c)
		}
	}

	if spec := cmd.String(bgFlag); spec != "" {
		c, err := colorparse.Color(spec)
		if err != nil {
			errs = multierror.Append(errs, err)
		} else {
			text = text.Background(c)
		}
	}

	for _, spec := range cmd.StringSlice(styleFlag) {
		s, err := colorparse.Style(spec)
		if err != nil {
			errs = multierror.Append(errs, err)

			continue
		}

		text = text.Style(s)
	}

	return text, errs.ErrorOrNil()
}

// readAll reads r to EOF, abandoning the wait if the context is cancelled
// first.
func readAll(ctx context.Context, r io.Reader) ([]byte, error) {
	type result struct {
		bytes []byte
		err   error
	}

	ch := make(chan result, 1)

	go func() {
		bytes, err := io.ReadAll(r)
		ch <- result{bytes: bytes, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		return res.bytes, res.err
	}
}
