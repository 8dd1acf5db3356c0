// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package vec3 implements the three-component floating point vector used
// throughout the script dialect for positions, rotations, and scales. It
// supports the dialect's several textual forms ("a/b/c", "a/b", "a"),
// componentwise arithmetic, the yaw/pitch/roll rotation used by the
// scene-graph walker, and the two stringification forms the dialect
// expects from a vector (slash-joined and floor/dash-joined).
package vec3
