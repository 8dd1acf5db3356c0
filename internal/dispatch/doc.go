// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package dispatch implements the script dialect's method dispatcher: for
// each entity kind (object template, geometry template, networkable info,
// object instance, game config) it maps a case-insensitive method name,
// with an accepted "set" prefix, to a setter that mutates the entity and
// optionally returns a capturable value. Argument counts are coerced
// loosely rather than validated strictly, matching the dialect's
// tolerance for malformed scripts; a setter that can't coerce its
// arguments returns a *MethodError instead of panicking, so the
// interpreter can log it and move on to the next line.
package dispatch
