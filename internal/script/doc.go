// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package script implements the line-by-line interpreter for the
// textual configuration script dialect: it maintains the "active"
// selectors per entity kind, processes block comments and nested
// if/elseif/else/endif conditionals, performs variable/constant
// substitution, and dispatches commands against a shared WorldData.
package script
