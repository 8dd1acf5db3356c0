// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package serialize_test

import (
	"testing"

	"github.com/battlegrid/bf42con/internal/domain"
	"github.com/battlegrid/bf42con/internal/serialize"
	"github.com/battlegrid/bf42con/internal/store"
	"github.com/battlegrid/bf42con/internal/vec3"
	"github.com/go-test/deep"
)

// snapshot captures the subset of WorldData fields the document format
// round-trips, so the comparison doesn't trip over pointer identity.
type snapshot struct {
	Templates []templateSnap
	Instances []instanceSnap
	Static    []int
}

type templateSnap struct {
	Type          string
	Name          string
	GeometryName  string
	TriggerRadius int
	LinePoints    [][]float64
	Children      []childSnap
}

type childSnap struct {
	TemplateName string
	SetPosition  []float64
	SetRotation  []float64
}

type instanceSnap struct {
	TemplateName     string
	AbsolutePosition []float64
	Rotation         []float64
	GeometryScale    []float64
}

func snapshotOf(data *store.WorldData) snapshot {
	var s snapshot
	for _, t := range data.Templates {
		var children []childSnap
		for _, c := range t.Children {
			children = append(children, childSnap{
				TemplateName: c.Template.Name(),
				SetPosition:  c.SetPosition.List(),
				SetRotation:  c.SetRotation.List(),
			})
		}
		var points [][]float64
		for _, p := range t.LinePoints {
			points = append(points, p.List())
		}
		s.Templates = append(s.Templates, templateSnap{
			Type:          t.Type,
			Name:          t.Name,
			GeometryName:  t.Geometry.Name(),
			TriggerRadius: t.TriggerRadius,
			LinePoints:    points,
			Children:      children,
		})
	}
	for _, inst := range data.Instances {
		s.Instances = append(s.Instances, instanceSnap{
			TemplateName:     inst.Template.Name(),
			AbsolutePosition: inst.AbsolutePosition.List(),
			Rotation:         inst.Rotation.List(),
			GeometryScale:    inst.GeometryScale.List(),
		})
	}
	byPtr := make(map[*domain.ObjectInstance]int, len(data.Instances))
	for i, inst := range data.Instances {
		byPtr[inst] = i
	}
	for _, inst := range data.StaticInstances {
		s.Static = append(s.Static, byPtr[inst])
	}
	return s
}

func TestRoundTrip(t *testing.T) {
	data := store.New()

	geo, _ := data.CreateGeometryTemplate("StandardMesh", "m_tree")
	geo.File = "trees/oak.sm"

	child, _ := data.CreateObjectTemplate("SimpleObject", "leaf")
	child.Geometry = domain.ResolvedGeometry(geo)

	root, _ := data.CreateObjectTemplate("lodObject", "tree")
	root.AddChild(domain.ResolvedTemplate(child))
	root.Children[0].SetPosition = vec3.New(1, 2, 3)
	root.TriggerRadius = 5
	root.LinePoints = []vec3.Vec3{vec3.New(0, 0, 0), vec3.New(1, 1, 1)}

	a := data.CreateInstance(domain.ResolvedTemplate(root))
	a.AbsolutePosition = vec3.New(10, 0, 20)
	b := data.CreateInstance(domain.UnresolvedTemplate("unknownTemplate"))
	data.MarkStatic(b)

	want := snapshotOf(data)

	blob, err := serialize.Dump(data)
	if err != nil {
		t.Fatalf("Dump: %v", err)
	}

	loaded, err := serialize.Load(blob)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	got := snapshotOf(loaded)

	if diff := deep.Equal(want, got); diff != nil {
		t.Errorf("round-trip mismatch: %v", diff)
	}
}

func TestLoadRejectsMalformedDocument(t *testing.T) {
	if _, err := serialize.Load([]byte(`[1,2,3]`)); err == nil {
		t.Fatalf("want error for a document with fewer than 4 parts")
	}
	if _, err := serialize.Load([]byte(`not json`)); err == nil {
		t.Fatalf("want error for invalid JSON")
	}
}
