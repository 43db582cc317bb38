// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package dye

import "strings"

const sbPadding = 16 // padding for the strings.Builder

// Text is a string payload together with the styling to apply to it. The
// zero value renders as an empty string. Text has value semantics: every
// setter returns a modified copy, so chains can be branched freely and a
// rendered result is never affected by later calls on an intermediate.
type Text struct {
	value  string
	fg     Color
	bg     Color
	styles []Style
}

// New wraps value in an unstyled Text.
func New(value string) Text {
	return Text{value: value}
}

// Foreground sets the text color. Calling it again replaces the previous
// choice.
func (t Text) Foreground(c Color) Text {
	t.fg = c

	return t
}

// Background sets the background color. Calling it again replaces the
// previous choice.
func (t Text) Background(c Color) Text {
	t.bg = c

	return t
}

// Style appends a text attribute. Attributes accumulate in call order and
// duplicates are kept; the emitted parameter order follows the call order.
func (t Text) Style(s Style) Text {
	// The full slice expression forces append to allocate, so chains
	// branched from a shared intermediate never share a backing array.
	t.styles = append(t.styles[:len(t.styles):len(t.styles)], s)

	return t
}

// Render produces the final string. With no colors or attributes set the
// payload is returned unchanged; otherwise it is wrapped between the SGR
// sequence for the accumulated parameters and the reset sequence. The
// payload itself is never altered or escaped.
func (t Text) Render() string {
	n := len(t.styles)
	if t.fg != nil {
		n++
	}

	if t.bg != nil {
		n++
	}

	if n == 0 {
		return t.value
	}

	codes := make([]string, 0, n)
	if t.fg != nil {
		codes = append(codes, t.fg.ForegroundCode())
	}

	if t.bg != nil {
		codes = append(codes, t.bg.BackgroundCode())
	}

	for _, s := range t.styles {
		codes = append(codes, s.Code())
	}

	sb := strings.Builder{}
	sb.Grow(len(prefix) + len(suffix) + len(reset) + len(t.value) + sbPadding)
	sb.WriteString(prefix)

	for i, code := range codes {
		if i > 0 {
			sb.WriteString(";")
		}

		sb.WriteString(code)
	}

	sb.WriteString(suffix)
	sb.WriteString(t.value)
	sb.WriteString(reset)

	return sb.String()
}

// String implements fmt.Stringer so printing a Text renders it.
func (t Text) String() string {
	return t.Render()
}
