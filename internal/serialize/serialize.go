// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package serialize

import (
	"encoding/json"

	"github.com/battlegrid/bf42con/internal/domain"
	"github.com/battlegrid/bf42con/internal/store"
	"github.com/battlegrid/bf42con/internal/vec3"
)

// Dump renders data as the four-part document described in spec.md 4.7:
// part 0 templates, part 1 geometries, part 2 instances, part 3 the
// static-instance index list. Registries are emitted in insertion order,
// which is what makes the document stable without an explicit sort.
func Dump(data *store.WorldData) ([]byte, error) {
	templateIndex := make(map[*domain.ObjectTemplate]int, len(data.Templates))
	for i, t := range data.Templates {
		templateIndex[t] = i
	}
	geometryIndex := make(map[*domain.GeometryTemplate]int, len(data.Geometries))
	for i, g := range data.Geometries {
		geometryIndex[g] = i
	}

	templateRefValue := func(ref domain.TemplateRef) any {
		if h := ref.Handle(); h != nil {
			if idx, ok := templateIndex[h]; ok {
				return idx
			}
		}
		return ref.Raw()
	}
	geometryRefValue := func(ref domain.GeometryRef) any {
		if h := ref.Handle(); h != nil {
			if idx, ok := geometryIndex[h]; ok {
				return idx
			}
		}
		return ref.Raw()
	}

	part0 := make([]any, 0, len(data.Templates))
	for _, t := range data.Templates {
		children := make([]any, 0, len(t.Children))
		for _, c := range t.Children {
			children = append(children, []any{templateRefValue(c.Template), c.SetPosition.List(), c.SetRotation.List()})
		}
		linePoints := make([][]float64, 0, len(t.LinePoints))
		for _, lp := range t.LinePoints {
			linePoints = append(linePoints, lp.List())
		}
		part0 = append(part0, []any{t.Type, t.Name, geometryRefValue(t.Geometry), t.TriggerRadius, linePoints, children})
	}

	part1 := make([]any, 0, len(data.Geometries))
	for _, g := range data.Geometries {
		part1 = append(part1, []any{g.Type, g.Name, g.Scale.List(), g.File, g.MaterialSize, g.WorldSize, g.YScale, g.WaterLevel})
	}

	instanceIndex := make(map[*domain.ObjectInstance]int, len(data.Instances))
	part2 := make([]any, 0, len(data.Instances))
	for i, inst := range data.Instances {
		instanceIndex[inst] = i
		part2 = append(part2, []any{templateRefValue(inst.Template), inst.AbsolutePosition.List(), inst.Rotation.List(), inst.GeometryScale.List()})
	}

	part3 := make([]any, 0, len(data.StaticInstances))
	for _, inst := range data.StaticInstances {
		if idx, ok := instanceIndex[inst]; ok {
			part3 = append(part3, idx)
		}
	}

	return json.Marshal([]any{part0, part1, part2, part3})
}

// Load reconstructs a WorldData from a document produced by Dump,
// replacing integer indices with direct references in the same order
// the entities were created.
func Load(raw []byte) (*store.WorldData, error) {
	var doc []any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	if len(doc) != 4 {
		return nil, ErrMalformedDocument
	}
	part0, ok0 := doc[0].([]any)
	part1, ok1 := doc[1].([]any)
	part2, ok2 := doc[2].([]any)
	part3, ok3 := doc[3].([]any)
	if !ok0 || !ok1 || !ok2 || !ok3 {
		return nil, ErrMalformedDocument
	}

	data := store.New()

	for _, raw := range part0 {
		e, ok := raw.([]any)
		if !ok || len(e) != 6 {
			return nil, ErrMalformedDocument
		}
		kind, _ := e[0].(string)
		name, _ := e[1].(string)
		tpl, _ := data.CreateObjectTemplate(kind, name)
		if n, ok := e[3].(float64); ok {
			tpl.TriggerRadius = int(n)
		}
		if points, ok := e[4].([]any); ok {
			for _, p := range points {
				if pt, ok := p.([]any); ok {
					tpl.LinePoints = append(tpl.LinePoints, vec3.FromList(toFloats(pt)))
				}
			}
		}
	}

	for _, raw := range part1 {
		e, ok := raw.([]any)
		if !ok || len(e) != 8 {
			return nil, ErrMalformedDocument
		}
		kind, _ := e[0].(string)
		name, _ := e[1].(string)
		geo, _ := data.CreateGeometryTemplate(kind, name)
		if scale, ok := e[2].([]any); ok {
			geo.Scale = vec3.FromList(toFloats(scale))
		}
		geo.File, _ = e[3].(string)
		if n, ok := e[4].(float64); ok {
			geo.MaterialSize = int(n)
		}
		if n, ok := e[5].(float64); ok {
			geo.WorldSize = int(n)
		}
		if n, ok := e[6].(float64); ok {
			geo.YScale = n
		}
		if n, ok := e[7].(float64); ok {
			geo.WaterLevel = n
		}
	}

	for i, raw := range part0 {
		e := raw.([]any)
		tpl := data.Templates[i]
		tpl.Geometry = resolveGeometryRef(e[2], data)

		childrenRaw, _ := e[5].([]any)
		for _, cRaw := range childrenRaw {
			c, ok := cRaw.([]any)
			if !ok || len(c) != 3 {
				return nil, ErrMalformedDocument
			}
			pos, _ := c[1].([]any)
			rot, _ := c[2].([]any)
			tpl.Children = append(tpl.Children, &domain.ObjectTemplateChild{
				Template:    resolveTemplateRef(c[0], data),
				SetPosition: vec3.FromList(toFloats(pos)),
				SetRotation: vec3.FromList(toFloats(rot)),
			})
		}
	}

	for _, raw := range part2 {
		e, ok := raw.([]any)
		if !ok || len(e) != 4 {
			return nil, ErrMalformedDocument
		}
		absPos, _ := e[1].([]any)
		rot, _ := e[2].([]any)
		scale, _ := e[3].([]any)

		inst := data.CreateInstance(resolveTemplateRef(e[0], data))
		inst.AbsolutePosition = vec3.FromList(toFloats(absPos))
		inst.Rotation = vec3.FromList(toFloats(rot))
		inst.GeometryScale = vec3.FromList(toFloats(scale))
	}

	for _, raw := range part3 {
		n, ok := raw.(float64)
		if !ok {
			return nil, ErrMalformedDocument
		}
		idx := int(n)
		if idx >= 0 && idx < len(data.Instances) {
			data.MarkStatic(data.Instances[idx])
		}
	}

	return data, nil
}

func resolveTemplateRef(v any, data *store.WorldData) domain.TemplateRef {
	switch val := v.(type) {
	case float64:
		idx := int(val)
		if idx >= 0 && idx < len(data.Templates) {
			return domain.ResolvedTemplate(data.Templates[idx])
		}
		return domain.TemplateRef{}
	case string:
		if val == "" {
			return domain.TemplateRef{}
		}
		return domain.UnresolvedTemplate(val)
	}
	return domain.TemplateRef{}
}

func resolveGeometryRef(v any, data *store.WorldData) domain.GeometryRef {
	switch val := v.(type) {
	case float64:
		idx := int(val)
		if idx >= 0 && idx < len(data.Geometries) {
			return domain.ResolvedGeometry(data.Geometries[idx])
		}
		return domain.GeometryRef{}
	case string:
		if val == "" {
			return domain.GeometryRef{}
		}
		return domain.UnresolvedGeometry(val)
	}
	return domain.GeometryRef{}
}

func toFloats(in []any) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		if f, ok := v.(float64); ok {
			out[i] = f
		}
	}
	return out
}
