// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package config manages JSON configuration loading for the interpreter.
// It handles diagnostic routing flags and the default constants file
// path. Configuration is loaded from a JSON file, falling back to
// sensible defaults when the file is absent.
package config
