// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package colorenable decides whether the tooling around the dye library
// should emit color at all, based on the NO_COLOR and FORCE_COLOR
// environment variables and terminal detection. It exists so that the
// library's rendering can stay pure and unconditional while the CLI and the
// log handler still behave well when piped.
package colorenable
