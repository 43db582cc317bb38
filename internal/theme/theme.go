// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package theme

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/dye"
	"github.com/matt-FFFFFF/dye/internal/colorparse"
	"github.com/spf13/afero"
)

var (
	// ErrReadTheme is returned when the theme file cannot be read.
	ErrReadTheme = errors.New("failed to read theme file")
	// ErrParseTheme is returned when the theme file is not valid YAML.
	ErrParseTheme = errors.New("failed to parse theme file")
	// ErrUnknownEntry is returned when a theme has no entry with the
	// requested name.
	ErrUnknownEntry = errors.New("theme has no such entry")
)

// FsFactory returns the filesystem used to read theme files.
// Tests substitute it with an in-memory filesystem.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// Entry is one named style bundle in a theme file. Colors and styles use the
// same spec strings as the paint command's flags.
type Entry struct {
	Foreground string   `yaml:"foreground,omitempty"`
	Background string   `yaml:"background,omitempty"`
	Styles     []string `yaml:"styles,omitempty"`
}

// Theme is a named collection of style bundles.
type Theme struct {
	Styles map[string]Entry `yaml:"styles"`
}

// Load reads and parses a theme file.
func Load(path string) (*Theme, error) {
	bytes, err := afero.ReadFile(FsFactory(), path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadTheme, path, err)
	}

	theme := &Theme{}
	if err := yaml.Unmarshal(bytes, theme); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParseTheme, path, err)
	}

	return theme, nil
}

// Apply wraps payload in a Text configured by the named entry. All invalid
// specs in the entry are reported together.
func (t *Theme) Apply(name, payload string) (dye.Text, error) {
	entry, ok := t.Styles[name]
	if !ok {
		return dye.New(payload), fmt.Errorf("%w: %q", ErrUnknownEntry, name)
	}

	return entry.apply(payload)
}

func (e Entry) apply(payload string) (dye.Text, error) {
	text := dye.New(payload)

	var errs *multierror.Error

	if e.Foreground != "" {
		c, err := colorparse.Color(e.Foreground)
		if err != nil {
			errs = multierror.Append(errs, err)
		} else {
			text = text.Foreground(c)
		}
	}

	if e.Background != "" {
		c, err := colorparse.Color(e.Background)
		if err != nil {
			errs = multierror.Append(errs, err)
		} else {
			text = text.Background(c)
		}
	}

	for _, s := range e.Styles {
		style, err := colorparse.Style(s)
		if err != nil {
			errs = multierror.Append(errs, err)

			continue
		}

		text = text.Style(style)
	}

	return text, errs.ErrorOrNil()
}
