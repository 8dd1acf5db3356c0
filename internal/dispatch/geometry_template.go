// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package dispatch

import (
	"strings"

	"github.com/battlegrid/bf42con/internal/domain"
	"github.com/battlegrid/bf42con/internal/vec3"
)

// GeometryTemplateTable builds the dispatch table for one GeometryTemplate.
// Lookup is already case-insensitive (Table.Call lowercases the method
// name), which is what resolves SPEC_FULL.md's camelCase/lowercase
// mismatch: "materialSize" and "materialsize" land on the same entry.
func GeometryTemplateTable(g *domain.GeometryTemplate) Table {
	tbl := NewTable()

	tbl.Register("scale", func(args []string) (string, error) {
		v, err := requireArg(args, 0, "scale")
		if err != nil {
			return "", err
		}
		g.Scale = vec3.Parse(v)
		return g.Scale.String(), nil
	})
	tbl.Register("file", func(args []string) (string, error) {
		v, err := requireArg(args, 0, "file")
		if err != nil {
			return "", err
		}
		g.File = strings.ReplaceAll(v, `\`, "/")
		return g.File, nil
	})
	tbl.Register("materialSize", func(args []string) (string, error) {
		v, err := requireArg(args, 0, "materialSize")
		if err != nil {
			return "", err
		}
		n, err := parseInt(v)
		if err != nil {
			return "", err
		}
		g.MaterialSize = n
		return formatInt(g.MaterialSize), nil
	})
	tbl.Register("worldSize", func(args []string) (string, error) {
		v, err := requireArg(args, 0, "worldSize")
		if err != nil {
			return "", err
		}
		n, err := parseInt(v)
		if err != nil {
			return "", err
		}
		g.WorldSize = n
		return formatInt(g.WorldSize), nil
	})
	tbl.Register("yScale", func(args []string) (string, error) {
		v, err := requireArg(args, 0, "yScale")
		if err != nil {
			return "", err
		}
		f, err := parseFloat(v)
		if err != nil {
			return "", err
		}
		g.YScale = f
		return formatFloat(g.YScale), nil
	})
	tbl.Register("waterLevel", func(args []string) (string, error) {
		v, err := requireArg(args, 0, "waterLevel")
		if err != nil {
			return "", err
		}
		f, err := parseFloat(v)
		if err != nil {
			return "", err
		}
		g.WaterLevel = f
		return formatFloat(g.WaterLevel), nil
	})

	return tbl
}
