// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package serialize implements the four-part JSON document format that
// dumps and loads a WorldData, replacing in-memory links with stable
// indices into the sibling registries.
package serialize
