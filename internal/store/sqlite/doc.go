// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package sqlite is an alternate persistence backend for a WorldData,
// alongside the JSON document format of internal/serialize. It stores
// one row per template, geometry, and instance in a SQLite database
// created from an embedded schema.
package sqlite
