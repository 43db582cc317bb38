// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package dye

// Named setters. Each is a thin alias for the corresponding Foreground,
// Background or Style call with a fixed value.

// Black sets the foreground to black.
func (t Text) Black() Text { return t.Foreground(Black) }

// Red sets the foreground to red.
func (t Text) Red() Text { return t.Foreground(Red) }

// Green sets the foreground to green.
func (t Text) Green() Text { return t.Foreground(Green) }

// Yellow sets the foreground to yellow.
func (t Text) Yellow() Text { return t.Foreground(Yellow) }

// Blue sets the foreground to blue.
func (t Text) Blue() Text { return t.Foreground(Blue) }

// Magenta sets the foreground to magenta.
func (t Text) Magenta() Text { return t.Foreground(Magenta) }

// Cyan sets the foreground to cyan.
func (t Text) Cyan() Text { return t.Foreground(Cyan) }

// White sets the foreground to white.
func (t Text) White() Text { return t.Foreground(White) }

// BrightBlack sets the foreground to bright black.
func (t Text) BrightBlack() Text { return t.Foreground(BrightBlack) }

// BrightRed sets the foreground to bright red.
func (t Text) BrightRed() Text { return t.Foreground(BrightRed) }

// BrightGreen sets the foreground to bright green.
func (t Text) BrightGreen() Text { return t.Foreground(BrightGreen) }

// BrightYellow sets the foreground to bright yellow.
func (t Text) BrightYellow() Text { return t.Foreground(BrightYellow) }

// BrightBlue sets the foreground to bright blue.
func (t Text) BrightBlue() Text { return t.Foreground(BrightBlue) }

// BrightMagenta sets the foreground to bright magenta.
func (t Text) BrightMagenta() Text { return t.Foreground(BrightMagenta) }

// BrightCyan sets the foreground to bright cyan.
func (t Text) BrightCyan() Text { return t.Foreground(BrightCyan) }

// BrightWhite sets the foreground to bright white.
func (t Text) BrightWhite() Text { return t.Foreground(BrightWhite) }

// BgBlack sets the background to black.
func (t Text) BgBlack() Text { return t.Background(Black) }

// BgRed sets the background to red.
func (t Text) BgRed() Text { return t.Background(Red) }

// BgGreen sets the background to green.
func (t Text) BgGreen() Text { return t.Background(Green) }

// BgYellow sets the background to yellow.
func (t Text) BgYellow() Text { return t.Background(Yellow) }

// BgBlue sets the background to blue.
func (t Text) BgBlue() Text { return t.Background(Blue) }

// BgMagenta sets the background to magenta.
func (t Text) BgMagenta() Text { return t.Background(Magenta) }

// BgCyan sets the background to cyan.
func (t Text) BgCyan() Text { return t.Background(Cyan) }

// BgWhite sets the background to white.
func (t Text) BgWhite() Text { return t.Background(White) }

// BgBrightBlack sets the background to bright black.
func (t Text) BgBrightBlack() Text { return t.Background(BrightBlack) }

// BgBrightRed sets the background to bright red.
func (t Text) BgBrightRed() Text { return t.Background(BrightRed) }

// BgBrightGreen sets the background to bright green.
func (t Text) BgBrightGreen() Text { return t.Background(BrightGreen) }

// BgBrightYellow sets the background to bright yellow.
func (t Text) BgBrightYellow() Text { return t.Background(BrightYellow) }

// BgBrightBlue sets the background to bright blue.
func (t Text) BgBrightBlue() Text { return t.Background(BrightBlue) }

// BgBrightMagenta sets the background to bright magenta.
func (t Text) BgBrightMagenta() Text { return t.Background(BrightMagenta) }

// BgBrightCyan sets the background to bright cyan.
func (t Text) BgBrightCyan() Text { return t.Background(BrightCyan) }

// BgBrightWhite sets the background to bright white.
func (t Text) BgBrightWhite() Text { return t.Background(BrightWhite) }

// Bold adds the bold attribute.
func (t Text) Bold() Text { return t.Style(Bold) }

// Dim adds the dim attribute.
func (t Text) Dim() Text { return t.Style(Dim) }

// Italic adds the italic attribute.
func (t Text) Italic() Text { return t.Style(Italic) }

// Underline adds the underline attribute.
func (t Text) Underline() Text { return t.Style(Underline) }

// Blink adds the blink attribute.
func (t Text) Blink() Text { return t.Style(Blink) }

// Reverse adds the reverse-video attribute, swapping text and background
// colors.
func (t Text) Reverse() Text { return t.Style(Reverse) }

// Hidden adds the hidden attribute.
func (t Text) Hidden() Text { return t.Style(Hidden) }

// Strikethrough adds the strikethrough attribute.
func (t Text) Strikethrough() Text { return t.Style(Strikethrough) }
