// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package dispatch

import (
	"github.com/battlegrid/bf42con/internal/domain"
	"github.com/battlegrid/bf42con/internal/vec3"
)

// ObjectInstanceTable builds the dispatch table for one ObjectInstance.
// Only the 1-argument property forms named in spec.md 4.3 are accepted;
// like every Table, each property is also reachable under its
// "set"-prefixed name.
func ObjectInstanceTable(o *domain.ObjectInstance) Table {
	tbl := NewTable()

	tbl.Register("absolutePosition", func(args []string) (string, error) {
		v, err := requireArg(args, 0, "absolutePosition")
		if err != nil {
			return "", err
		}
		o.AbsolutePosition = vec3.Parse(v)
		return o.AbsolutePosition.String(), nil
	})
	tbl.Register("rotation", func(args []string) (string, error) {
		v, err := requireArg(args, 0, "rotation")
		if err != nil {
			return "", err
		}
		o.Rotation = vec3.Parse(v)
		return o.Rotation.String(), nil
	})
	tbl.Register("geometry.scale", func(args []string) (string, error) {
		v, err := requireArg(args, 0, "geometry.scale")
		if err != nil {
			return "", err
		}
		o.GeometryScale = vec3.Parse(v)
		return o.GeometryScale.String(), nil
	})
	tbl.Register("osid", func(args []string) (string, error) {
		v, err := requireArg(args, 0, "osid")
		if err != nil {
			return "", err
		}
		o.OSId, o.HasOSId = v, true
		return o.OSId, nil
	})
	tbl.Register("team", func(args []string) (string, error) {
		v, err := requireArg(args, 0, "team")
		if err != nil {
			return "", err
		}
		o.Team, o.HasTeam = v, true
		return o.Team, nil
	})
	tbl.Register("name", func(args []string) (string, error) {
		v, err := requireArg(args, 0, "name")
		if err != nil {
			return "", err
		}
		o.Name = v
		return o.Name, nil
	})

	return tbl
}
