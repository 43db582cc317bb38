// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package palette implements the palette subcommand, which prints swatches
// for the named colors, the 256-color palette and an RGB ramp.
package palette
