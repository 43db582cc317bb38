// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package theme loads named style bundles from YAML files so that callers of
// the paint command can refer to "error" or "heading" instead of repeating
// color and style flags. A bundle holds an optional foreground, an optional
// background and an ordered style list, and applies itself to a payload to
// produce a dye.Text.
package theme
