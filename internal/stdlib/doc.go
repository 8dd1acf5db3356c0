// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package stdlib provides small filesystem existence checks used across
// the interpreter and its storage backends.
package stdlib
