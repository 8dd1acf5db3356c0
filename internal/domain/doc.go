// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package domain implements the entity types materialized by the script
// interpreter: object templates (and their scene-graph children), geometry
// templates, networkable-info records, spawned object instances, and the
// game configuration block. References that start as a bare string and are
// later resolved to a direct handle (template names, geometry names,
// networkable-info names) are modeled as the tagged Ref types in refs.go
// rather than as interface{} or untyped strings, so "is this linked yet?"
// is a single field check instead of a type switch.
package domain
