// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package dye

import "strconv"

const (
	prefix = "\033["
	suffix = "m"
	reset  = "\033[0m"

	// Parameter introducers for the parametric color forms.
	foreground = "38"
	background = "48"

	// defaultBase is the fallback used when a basic foreground code cannot
	// be parsed back to a number during background derivation.
	defaultBase = 30

	// backgroundOffset separates background codes from foreground codes in
	// the SGR numbering.
	backgroundOffset = 10
)

// Color is a terminal color in one of four representations: a named ANSI
// color, a 24-bit RGB triple, a 256-palette index, or a packed hex value.
// The set of implementations is closed; each knows how to express itself as
// an SGR parameter for foreground or background use.
type Color interface {
	// ForegroundCode returns the SGR parameter selecting this color as the
	// text color.
	ForegroundCode() string
	// BackgroundCode returns the SGR parameter selecting this color as the
	// background color.
	BackgroundCode() string

	isColor()
}

// BasicColor is one of the sixteen named ANSI colors.
type BasicColor uint8

// The eight standard colors and their bright variants.
const (
	Black BasicColor = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

// Foreground codes for the sixteen named colors: 30-37 standard,
// 90-97 bright.
var basicCodes = [...]string{
	Black:         "30",
	Red:           "31",
	Green:         "32",
	Yellow:        "33",
	Blue:          "34",
	Magenta:       "35",
	Cyan:          "36",
	White:         "37",
	BrightBlack:   "90",
	BrightRed:     "91",
	BrightGreen:   "92",
	BrightYellow:  "93",
	BrightBlue:    "94",
	BrightMagenta: "95",
	BrightCyan:    "96",
	BrightWhite:   "97",
}

// ForegroundCode implements Color.
func (c BasicColor) ForegroundCode() string {
	if int(c) >= len(basicCodes) {
		c = White
	}

	return basicCodes[c]
}

// BackgroundCode implements Color. Background codes are the foreground codes
// shifted by 10 (40-47 and 100-107); the shift is applied to the parsed
// foreground code, falling back to base 30 if parsing ever fails.
func (c BasicColor) BackgroundCode() string {
	base, err := strconv.Atoi(c.ForegroundCode())
	if err != nil {
		base = defaultBase
	}

	return strconv.Itoa(base + backgroundOffset)
}

func (c BasicColor) isColor() {}

// RGB is a 24-bit color with explicit red, green and blue components.
type RGB struct {
	R, G, B uint8
}

// ForegroundCode implements Color using the 38;2;r;g;b direct-color form.
func (c RGB) ForegroundCode() string {
	return tripletCode(foreground, c.R, c.G, c.B)
}

// BackgroundCode implements Color using the 48;2;r;g;b direct-color form.
func (c RGB) BackgroundCode() string {
	return tripletCode(background, c.R, c.G, c.B)
}

func (c RGB) isColor() {}

// Palette is an index into the terminal's 256-entry color table.
type Palette uint8

// ForegroundCode implements Color using the 38;5;n indexed form.
func (c Palette) ForegroundCode() string {
	return foreground + ";5;" + strconv.Itoa(int(c))
}

// BackgroundCode implements Color using the 48;5;n indexed form.
func (c Palette) BackgroundCode() string {
	return background + ";5;" + strconv.Itoa(int(c))
}

func (c Palette) isColor() {}

// Hex is a 24-bit color packed as 0xRRGGBB. Only the low 24 bits are read;
// anything above them is discarded when the value is decomposed.
type Hex uint32

// ForegroundCode implements Color by decomposing into an RGB triple.
func (c Hex) ForegroundCode() string {
	r, g, b := c.rgb()

	return tripletCode(foreground, r, g, b)
}

// BackgroundCode implements Color by decomposing into an RGB triple.
func (c Hex) BackgroundCode() string {
	r, g, b := c.rgb()

	return tripletCode(background, r, g, b)
}

func (c Hex) rgb() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

func (c Hex) isColor() {}

func tripletCode(introducer string, r, g, b uint8) string {
	return introducer + ";2;" +
		strconv.Itoa(int(r)) + ";" +
		strconv.Itoa(int(g)) + ";" +
		strconv.Itoa(int(b))
}
