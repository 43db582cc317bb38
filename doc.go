// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package dye styles text for ANSI-capable terminals. A string is wrapped in
// a Text value, configured with chained setters for foreground color,
// background color and text attributes, and rendered to a string wrapped in
// the matching SGR escape sequence.
//
// Colors come in four forms: the sixteen named ANSI colors, 24-bit RGB
// triples, 256-palette indexes and packed 0xRRGGBB hex values. Rendering is
// pure and unconditional; the package performs no terminal detection and
// never rewrites the payload. A Text with nothing configured renders as the
// payload itself, with no escape bytes.
//
//	dye.New("ready").Green().Bold().Println()
//	s := dye.New("warn").Foreground(dye.Hex(0xFF8800)).Render()
package dye
