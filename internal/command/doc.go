// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package command implements the script dialect's line grammar: splitting
// one line of script text into a class name, an optional method, an
// ordered argument list, and an optional "-> v_target" capture variable.
// It also implements the dialect's case-insensitive "Class.Method" pattern
// matching used by the interpreter to dispatch a parsed line.
package command
