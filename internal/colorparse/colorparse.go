// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package colorparse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/matt-FFFFFF/dye"
)

var (
	// ErrUnknownColor is returned when a color spec matches no accepted form.
	ErrUnknownColor = errors.New("unknown color")
	// ErrUnknownStyle is returned when a style name is not recognised.
	ErrUnknownStyle = errors.New("unknown style")
	// ErrInvalidHex is returned when a hex spec is not exactly six hex digits.
	ErrInvalidHex = errors.New("invalid hex color, want RRGGBB")
	// ErrInvalidRGB is returned when an rgb(...) spec does not hold three
	// 0-255 components.
	ErrInvalidRGB = errors.New("invalid rgb color, want rgb(r,g,b)")
)

var namedColors = map[string]dye.BasicColor{
	"black":          dye.Black,
	"red":            dye.Red,
	"green":          dye.Green,
	"yellow":         dye.Yellow,
	"blue":           dye.Blue,
	"magenta":        dye.Magenta,
	"cyan":           dye.Cyan,
	"white":          dye.White,
	"bright-black":   dye.BrightBlack,
	"bright-red":     dye.BrightRed,
	"bright-green":   dye.BrightGreen,
	"bright-yellow":  dye.BrightYellow,
	"bright-blue":    dye.BrightBlue,
	"bright-magenta": dye.BrightMagenta,
	"bright-cyan":    dye.BrightCyan,
	"bright-white":   dye.BrightWhite,
}

var namedStyles = map[string]dye.Style{
	"bold":          dye.Bold,
	"dim":           dye.Dim,
	"italic":        dye.Italic,
	"underline":     dye.Underline,
	"blink":         dye.Blink,
	"reverse":       dye.Reverse,
	"hidden":        dye.Hidden,
	"strikethrough": dye.Strikethrough,
}

// Color parses a color spec. Accepted forms, tried in order:
//
//   - a named color, e.g. "red" or "bright-cyan"
//   - a hex value, "#RRGGBB" or "0xRRGGBB"
//   - an rgb triple, "rgb(r,g,b)"
//   - a bare 256-palette index, "0".."255"
//
// Matching is case-insensitive and surrounding whitespace is ignored.
func Color(spec string) (dye.Color, error) {
	s := strings.ToLower(strings.TrimSpace(spec))

	if c, ok := namedColors[s]; ok {
		return c, nil
	}

	if hex, ok := strings.CutPrefix(s, "#"); ok {
		return parseHex(hex)
	}

	if hex, ok := strings.CutPrefix(s, "0x"); ok {
		return parseHex(hex)
	}

	if body, ok := strings.CutPrefix(s, "rgb("); ok {
		return parseRGB(body)
	}

	if idx, err := strconv.ParseUint(s, 10, 8); err == nil {
		return dye.Palette(idx), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownColor, spec)
}

// Style parses a style name, e.g. "bold". Matching is case-insensitive and
// surrounding whitespace is ignored.
func Style(spec string) (dye.Style, error) {
	s := strings.ToLower(strings.TrimSpace(spec))

	if st, ok := namedStyles[s]; ok {
		return st, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStyle, spec)
}

func parseHex(s string) (dye.Color, error) {
	if len(s) != 6 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	return dye.Hex(v), nil
}

func parseRGB(body string) (dye.Color, error) {
	body, ok := strings.CutSuffix(body, ")")
	if !ok {
		return nil, fmt.Errorf("%w: missing closing parenthesis", ErrInvalidRGB)
	}

	parts := strings.Split(body, ",")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: got %d components", ErrInvalidRGB, len(parts))
	}

	var components [3]uint8

	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidRGB, p)
		}

		components[i] = uint8(v)
	}

	return dye.RGB{R: components[0], G: components[1], B: components[2]}, nil
}
