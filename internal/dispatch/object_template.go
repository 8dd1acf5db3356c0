// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package dispatch

import (
	"github.com/battlegrid/bf42con/internal/domain"
	"github.com/battlegrid/bf42con/internal/vec3"
)

// ObjectTemplateTable builds the dispatch table for one ObjectTemplate.
// Methods that accept Vec3 arguments parse the raw token with vec3.Parse;
// a malformed token yields the zero vector rather than an error, matching
// the dialect's loose coercion for vectors (only scalar setters raise
// MethodError on bad input).
func ObjectTemplateTable(t *domain.ObjectTemplate) Table {
	tbl := NewTable()

	tbl.Register("networkableInfo", func(args []string) (string, error) {
		if v, ok := arg(args, 0); ok {
			t.NetworkableInfo = domain.UnresolvedNetworkable(v)
		}
		return t.NetworkableInfo.Name(), nil
	})
	tbl.Register("geometry", func(args []string) (string, error) {
		if v, ok := arg(args, 0); ok {
			t.Geometry = domain.UnresolvedGeometry(v)
		}
		return t.Geometry.Name(), nil
	})
	tbl.Register("maxHitPoints", func(args []string) (string, error) {
		if v, ok := arg(args, 0); ok {
			f, err := parseFloat(v)
			if err != nil {
				return "", err
			}
			t.MaxHitPoints = f
		}
		return formatFloat(t.MaxHitPoints), nil
	})
	tbl.Register("minRotation", func(args []string) (string, error) {
		if v, ok := arg(args, 0); ok {
			t.MinRotation = vec3.Parse(v)
		}
		return t.MinRotation.String(), nil
	})
	tbl.Register("maxRotation", func(args []string) (string, error) {
		if v, ok := arg(args, 0); ok {
			t.MaxRotation = vec3.Parse(v)
		}
		return t.MaxRotation.String(), nil
	})
	tbl.Register("maxSpeed", func(args []string) (string, error) {
		if v, ok := arg(args, 0); ok {
			t.MaxSpeed = vec3.Parse(v)
		}
		return t.MaxSpeed.String(), nil
	})
	tbl.Register("acceleration", func(args []string) (string, error) {
		if v, ok := arg(args, 0); ok {
			t.Acceleration = vec3.Parse(v)
		}
		return t.Acceleration.String(), nil
	})
	tbl.Register("inputToPitch", func(args []string) (string, error) {
		if v, ok := arg(args, 0); ok {
			n, err := parseInt(v)
			if err != nil {
				return "", err
			}
			t.InputToPitch = n
		}
		return formatInt(t.InputToPitch), nil
	})
	tbl.Register("inputToYaw", func(args []string) (string, error) {
		if v, ok := arg(args, 0); ok {
			n, err := parseInt(v)
			if err != nil {
				return "", err
			}
			t.InputToYaw = n
		}
		return formatInt(t.InputToYaw), nil
	})
	tbl.Register("inputToRoll", func(args []string) (string, error) {
		if v, ok := arg(args, 0); ok {
			n, err := parseInt(v)
			if err != nil {
				return "", err
			}
			t.InputToRoll = n
		}
		return formatInt(t.InputToRoll), nil
	})
	tbl.Register("automaticReset", func(args []string) (string, error) {
		if v, ok := arg(args, 0); ok {
			b, err := parseIntBool(v)
			if err != nil {
				return "", err
			}
			t.AutomaticReset = b
		}
		return formatBool(t.AutomaticReset), nil
	})
	tbl.Register("magSize", func(args []string) (string, error) {
		if v, ok := arg(args, 0); ok {
			n, err := parseInt(v)
			if err != nil {
				return "", err
			}
			t.MagSize = n
		}
		return formatInt(t.MagSize), nil
	})
	tbl.Register("numOfMag", func(args []string) (string, error) {
		if v, ok := arg(args, 0); ok {
			n, err := parseInt(v)
			if err != nil {
				return "", err
			}
			t.NumOfMag = n
		}
		return formatInt(t.NumOfMag), nil
	})
	tbl.Register("numberOfGears", func(args []string) (string, error) {
		if v, ok := arg(args, 0); ok {
			n, err := parseInt(v)
			if err != nil {
				return "", err
			}
			t.NumberOfGears = n
		}
		return formatInt(t.NumberOfGears), nil
	})
	tbl.Register("gearUp", func(args []string) (string, error) {
		if v, ok := arg(args, 0); ok {
			f, err := parseFloat(v)
			if err != nil {
				return "", err
			}
			t.GearUp = f
		}
		return formatFloat(t.GearUp), nil
	})
	tbl.Register("gearDown", func(args []string) (string, error) {
		if v, ok := arg(args, 0); ok {
			f, err := parseFloat(v)
			if err != nil {
				return "", err
			}
			t.GearDown = f
		}
		return formatFloat(t.GearDown), nil
	})
	tbl.Register("triggerRadius", func(args []string) (string, error) {
		v, err := requireArg(args, 0, "triggerRadius")
		if err != nil {
			return "", err
		}
		n, err := parseInt(v)
		if err != nil {
			return "", err
		}
		t.TriggerRadius = n
		return formatInt(t.TriggerRadius), nil
	})
	tbl.Register("addLinePoint", func(args []string) (string, error) {
		v, err := requireArg(args, 0, "addLinePoint")
		if err != nil {
			return "", err
		}
		t.LinePoints = append(t.LinePoints, vec3.Parse(v))
		return "", nil
	})
	tbl.Register("controlPointName", stringSetter(&t.ControlPointName, "controlPointName"))
	tbl.Register("team", stringSetter(&t.Team, "team"))
	tbl.Register("unableToChangeTeam", stringSetter(&t.UnableToChangeTeam, "unableToChangeTeam"))
	tbl.Register("minSpawnDelay", stringSetter(&t.MinSpawnDelay, "minSpawnDelay"))
	tbl.Register("maxSpawnDelay", stringSetter(&t.MaxSpawnDelay, "maxSpawnDelay"))
	tbl.Register("spawnDelayAtStart", stringSetter(&t.SpawnDelayAtStart, "spawnDelayAtStart"))
	tbl.Register("timeToLive", stringSetter(&t.TimeToLive, "timeToLive"))
	tbl.Register("distance", stringSetter(&t.Distance, "distance"))
	tbl.Register("damageWhenLost", stringSetter(&t.DamageWhenLost, "damageWhenLost"))
	tbl.Register("maxNrOfObjectSpawned", stringSetter(&t.MaxNrOfObjectSpawned, "maxNrOfObjectSpawned"))
	tbl.Register("teamOnVehicle", stringSetter(&t.TeamOnVehicle, "teamOnVehicle"))

	tbl.Register("objectTemplate", func(args []string) (string, error) {
		keyStr, err := requireArg(args, 0, "objectTemplate.key")
		if err != nil {
			return "", err
		}
		val, err := requireArg(args, 1, "objectTemplate.value")
		if err != nil {
			return "", err
		}
		key, err := parseInt(keyStr)
		if err != nil {
			return "", err
		}
		if t.SpawnTemplates == nil {
			t.SpawnTemplates = make(map[int]string)
		}
		t.SpawnTemplates[key] = val
		return "", nil
	})

	tbl.Register("addTemplate", func(args []string) (string, error) {
		v, err := requireArg(args, 0, "addTemplate")
		if err != nil {
			return "", err
		}
		t.AddChild(domain.UnresolvedTemplate(v))
		return "", nil
	})
	tbl.Register("setActiveTemplate", func(args []string) (string, error) {
		v, err := requireArg(args, 0, "setActiveTemplate")
		if err != nil {
			return "", err
		}
		idx, err := parseInt(v)
		if err != nil {
			return "", err
		}
		t.SetActiveChild(idx)
		return "", nil
	})
	tbl.Register("removeTemplate", func(args []string) (string, error) {
		v, err := requireArg(args, 0, "removeTemplate")
		if err != nil {
			return "", err
		}
		idx, err := parseInt(v)
		if err != nil {
			return "", err
		}
		t.RemoveChild(idx)
		return "", nil
	})
	tbl.Register("setPosition", func(args []string) (string, error) {
		v, err := requireArg(args, 0, "setPosition")
		if err != nil {
			return "", err
		}
		if child, ok := t.ActiveChildEntry(); ok {
			child.SetPosition = vec3.Parse(v)
		}
		return "", nil
	})
	tbl.Register("setRotation", func(args []string) (string, error) {
		v, err := requireArg(args, 0, "setRotation")
		if err != nil {
			return "", err
		}
		if child, ok := t.ActiveChildEntry(); ok {
			child.SetRotation = vec3.Parse(v)
		}
		return "", nil
	})

	return tbl
}

func stringSetter(field *string, name string) Setter {
	return func(args []string) (string, error) {
		v, err := requireArg(args, 0, name)
		if err != nil {
			return "", err
		}
		*field = v
		return *field, nil
	}
}
