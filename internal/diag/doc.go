// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package diag provides the diagnostic sink the script interpreter
// writes to instead of calling log.Printf directly, so tests can capture
// diagnostics and batch commands can format them for a pipe versus a
// terminal.
package diag
