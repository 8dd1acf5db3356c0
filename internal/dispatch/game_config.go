// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package dispatch

import (
	"fmt"

	"github.com/battlegrid/bf42con/internal/domain"
)

// GameConfigTable builds the dispatch table for the level-wide GameConfig.
// customGameName and customGameVersion are getter/setters: called with no
// argument they just return the current value, which is how the dialect's
// "-> v_target" capture reads back a previously-set value (spec.md 4.3
// step 6 and design note on return-capture).
func GameConfigTable(g *domain.GameConfig) Table {
	tbl := NewTable()

	tbl.Register("mapId", func(args []string) (string, error) {
		v, err := requireArg(args, 0, "mapId")
		if err != nil {
			return "", err
		}
		g.MapId = v
		return g.MapId, nil
	})
	tbl.Register("activeCombatArea", func(args []string) (string, error) {
		if len(args) < 4 {
			return "", fmt.Errorf("activeCombatArea requires 4 arguments")
		}
		var area [4]int
		for i := 0; i < 4; i++ {
			n, err := parseInt(args[i])
			if err != nil {
				return "", err
			}
			area[i] = n
		}
		g.ActiveCombatArea, g.HasActiveCombatArea = area, true
		return "", nil
	})
	tbl.Register("customGameName", func(args []string) (string, error) {
		if v, ok := arg(args, 0); ok {
			g.CustomGameName = v
		}
		return g.CustomGameName, nil
	})
	tbl.Register("customGameVersion", func(args []string) (string, error) {
		if v, ok := arg(args, 0); ok {
			g.CustomGameVersion = v
		}
		return g.CustomGameVersion, nil
	})
	tbl.Register("addModPath", func(args []string) (string, error) {
		v, err := requireArg(args, 0, "addModPath")
		if err != nil {
			return "", err
		}
		g.ModPaths = append(g.ModPaths, v)
		return "", nil
	})
	tbl.Register("multiplayerBriefingObjectives", func(args []string) (string, error) {
		v, err := requireArg(args, 0, "multiplayerBriefingObjectives")
		if err != nil {
			return "", err
		}
		g.MultiplayerBriefingObjectives = v
		return g.MultiplayerBriefingObjectives, nil
	})
	tbl.Register("objectiveBriefing", func(args []string) (string, error) {
		v, err := requireArg(args, 0, "objectiveBriefing")
		if err != nil {
			return "", err
		}
		g.ObjectiveBriefing = v
		return g.ObjectiveBriefing, nil
	})

	return tbl
}
