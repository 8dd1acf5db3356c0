// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package config

import (
	"encoding/json"
	"errors"
	"log"
	"os"

	"github.com/battlegrid/bf42con/cerrs"
)

// Config holds the interpreter's runtime tunables: which diagnostics to
// emit, whether unresolved references left over after linking should be
// treated as warnings, and where the constants file lives.
type Config struct {
	Diagnostics   Diagnostics_t `json:"Diagnostics"`
	ConstantsPath string        `json:"ConstantsPath,omitempty"`
}

type Diagnostics_t struct {
	LogDispatchErrors     bool `json:"LogDispatchErrors,omitempty"`
	LogIOFailures         bool `json:"LogIOFailures,omitempty"`
	WarnUnresolvedAsError bool `json:"WarnUnresolvedAsError,omitempty"`
}

// Default returns the configuration a fresh interpreter run starts
// with: dispatch errors and I/O failures are logged (per spec.md 7's
// best-effort diagnostic routing), unresolved references are warnings,
// not errors.
func Default() *Config {
	return &Config{
		Diagnostics: Diagnostics_t{
			LogDispatchErrors: true,
			LogIOFailures:     true,
		},
		ConstantsPath: "constants.txt",
	}
}

// Load reads a JSON configuration file, falling back to Default() when
// the path doesn't exist (not an error; a fresh install has none yet).
func Load(name string, debug bool) (*Config, error) {
	if debug {
		log.Printf("[config] %q: loading configuration...\n", name)
	}
	cfg := Default()

	sb, err := os.Stat(name)
	if errors.Is(err, os.ErrNotExist) {
		if debug {
			log.Printf("[config] %q: %v\n", name, err)
		}
		return cfg, nil
	} else if err != nil {
		return cfg, err
	} else if sb.Mode().IsDir() {
		return cfg, cerrs.ErrIsDirectory
	} else if !sb.Mode().IsRegular() {
		return cfg, cerrs.ErrIsNotAFile
	}

	data, err := os.ReadFile(name)
	if err != nil {
		if debug {
			log.Printf("[config] %q: %v\n", name, err)
		}
		return cfg, nil
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return cfg, err
	}
	if debug {
		if nice, err := json.MarshalIndent(cfg, "", "  "); err == nil {
			log.Printf("[config] %s\n", nice)
		}
	}
	return cfg, nil
}
