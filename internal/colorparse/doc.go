// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package colorparse turns user-supplied color and style specs into dye
// values. It is shared by the paint command's flags and by theme files.
package colorparse
