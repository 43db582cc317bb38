// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package paint implements the paint subcommand, which styles text given as
// an argument or on standard input and writes it to standard output or
// standard error.
package paint
