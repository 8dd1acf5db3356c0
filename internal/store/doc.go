// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package store implements WorldData, the registry of object templates,
// geometry templates, networkable-info records, and object instances
// produced by interpreting one or more script files, plus the linking
// pass that resolves string references into direct handles.
package store
