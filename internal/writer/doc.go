// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package writer formats a WorldData's object instances back into the
// .con static-object script text described in spec.md 6: one
// object.create/absolutePosition/rotation block per instance, separated
// by blank lines.
package writer
