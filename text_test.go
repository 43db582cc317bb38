// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package dye

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderPlainPassthrough(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "plain", New("plain").Render(), "unstyled text must pass through with no escape bytes")
	assert.Equal(t, "", New("").Render())
}

func TestRender(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		text Text
		want string
	}{
		{
			name: "foreground only",
			text: New("hi").Foreground(Red),
			want: "\033[31mhi\033[0m",
		},
		{
			name: "background only",
			text: New("hi").Background(Blue),
			want: "\033[44mhi\033[0m",
		},
		{
			name: "style only",
			text: New("hi").Style(Bold),
			want: "\033[1mhi\033[0m",
		},
		{
			name: "foreground background and styles",
			text: New("hi").Foreground(Cyan).Background(BrightBlack).Style(Bold).Style(Blink),
			want: "\033[36;100;1;5mhi\033[0m",
		},
		{
			name: "style order follows call order",
			text: New("hi").Foreground(Red).Style(Underline).Style(Bold),
			want: "\033[31;4;1mhi\033[0m",
		},
		{
			name: "duplicate styles are kept",
			text: New("hi").Style(Bold).Style(Bold),
			want: "\033[1;1mhi\033[0m",
		},
		{
			name: "parametric colors",
			text: New("hi").Foreground(RGB{R: 1, G: 2, B: 3}).Background(Palette(200)),
			want: "\033[38;2;1;2;3;48;5;200mhi\033[0m",
		},
		{
			name: "hex foreground",
			text: New("hi").Foreground(Hex(0xFF8800)),
			want: "\033[38;2;255;136;0mhi\033[0m",
		},
		{
			name: "payload is not escaped",
			text: New("a\033[0mb").Foreground(Red),
			want: "\033[31ma\033[0mb\033[0m",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.text.Render())
		})
	}
}

func TestRenderIdempotent(t *testing.T) {
	t.Parallel()

	text := New("hi").Green().Bold()
	assert.Equal(t, text.Render(), text.Render())
}

func TestForegroundOverwrites(t *testing.T) {
	t.Parallel()

	text := New("hi").Foreground(Red).Foreground(Green)
	assert.Equal(t, "\033[32mhi\033[0m", text.Render(), "second foreground must replace the first")

	text = New("hi").Background(Red).Background(Green)
	assert.Equal(t, "\033[42mhi\033[0m", text.Render(), "second background must replace the first")
}

func TestStyleAccumulates(t *testing.T) {
	t.Parallel()

	text := New("hi").Style(Bold).Style(Dim)
	assert.Equal(t, "\033[1;2mhi\033[0m", text.Render())
}

// Branching a chain must not leak styles between the branches, and must not
// retroactively change anything already rendered.
func TestChainBranchingDoesNotAlias(t *testing.T) {
	t.Parallel()

	base := New("hi").Style(Bold)
	rendered := base.Render()

	left := base.Style(Italic)
	right := base.Style(Underline)

	assert.Equal(t, "\033[1mhi\033[0m", base.Render())
	assert.Equal(t, rendered, base.Render())
	assert.Equal(t, "\033[1;3mhi\033[0m", left.Render())
	assert.Equal(t, "\033[1;4mhi\033[0m", right.Render())
}

func TestStringerMatchesRender(t *testing.T) {
	t.Parallel()

	text := New("hi").BrightCyan().Underline()
	assert.Equal(t, text.Render(), text.String())
	assert.Equal(t, text.Render(), fmt.Sprint(text))
}
