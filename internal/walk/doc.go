// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package walk implements the recursive, LOD-aware scene-graph
// traversal that runs after linking: starting from a resolved object
// template, it accumulates position and rotation transforms down the
// children list and emits two ordered lists of geometry leaves, one for
// close level-of-detail and one for far.
package walk
