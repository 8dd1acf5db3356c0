// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package walk

import (
	"strings"

	"github.com/battlegrid/bf42con/internal/diag"
	"github.com/battlegrid/bf42con/internal/domain"
	"github.com/battlegrid/bf42con/internal/vec3"
	"github.com/google/uuid"
)

// Emission is one leaf reached by the walk: a geometry handle and its
// accumulated position/rotation. Geometry.Type carries the mesh kind
// (e.g. "treeMesh") that callers like the static-object writer key off.
type Emission struct {
	Geometry *domain.GeometryTemplate
	Position vec3.Vec3
	Rotation vec3.Vec3
}

// Result holds the two ordered emission lists the walk produces.
type Result struct {
	Close []Emission
	Far   []Emission
}

// Walk traverses tpl's scene graph from the zero position and rotation,
// reporting malformed lodObject child counts to sink (which may be nil
// to suppress warnings, as in tests that don't care about them). Each
// call is stamped with its own run id, the same way script.Reader stamps
// a read() invocation, so diagnostics from concurrent walks of different
// templates can be told apart in a shared log.
func Walk(tpl *domain.ObjectTemplate, sink diag.Sink) Result {
	var runID string
	if sink != nil {
		runID = uuid.NewString()
	}
	return walk(tpl, vec3.Zero, vec3.Zero, false, runID, sink)
}

func walk(tpl *domain.ObjectTemplate, pos, rot vec3.Vec3, farLod bool, runID string, sink diag.Sink) Result {
	var res Result

	if geo := tpl.Geometry.Handle(); geo != nil && geo.File != "" {
		e := Emission{Geometry: geo, Position: pos, Rotation: rot}
		if farLod {
			res.Far = append(res.Far, e)
		} else {
			res.Close = append(res.Close, e)
		}
	}

	isLod := strings.EqualFold(tpl.Type, "lodObject")
	if isLod && sink != nil {
		if n := len(tpl.Children); n != 2 && n != 3 {
			sink.Printf("[%s] %s: lodObject has %d children, want 2 or 3", runID, tpl.Name, n)
		}
	}

	for i, child := range tpl.Children {
		if isLod && i >= 2 {
			break // the destroyed LOD (third child) is excluded from the walk
		}
		childTpl := child.Template.Handle()
		if childTpl == nil {
			continue
		}

		useFarLod := farLod
		if isLod && i == 1 {
			useFarLod = true
		}

		childPos := pos.Add(child.SetPosition.Rotate(rot))
		childRot := rot.Add(child.SetRotation)

		sub := walk(childTpl, childPos, childRot, useFarLod, runID, sink)
		res.Close = append(res.Close, sub.Close...)
		res.Far = append(res.Far, sub.Far...)
	}

	return res
}
