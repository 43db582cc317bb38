// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package dye

import "strconv"

// Style is a text attribute. Values match the SGR parameters they emit.
type Style uint8

// Text attributes. Note that there is no attribute 6; the SGR numbering
// skips from blink to reverse.
const (
	Bold          Style = 1
	Dim           Style = 2
	Italic        Style = 3
	Underline     Style = 4
	Blink         Style = 5
	Reverse       Style = 7
	Hidden        Style = 8
	Strikethrough Style = 9
)

// Code returns the SGR parameter for the attribute.
func (s Style) Code() string {
	return strconv.Itoa(int(s))
}
