// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package writer_test

import (
	"strings"
	"testing"

	"github.com/battlegrid/bf42con/internal/domain"
	"github.com/battlegrid/bf42con/internal/vec3"
	"github.com/battlegrid/bf42con/internal/writer"
)

func TestWriteStaticEmitsBlockPerInstance(t *testing.T) {
	tree := domain.NewObjectTemplate("SimpleObject", "oak", 1)
	tree.Geometry = domain.ResolvedGeometry(&domain.GeometryTemplate{
		Type: "treeMesh",
		Name: "m_oak",
		File: "trees/oak.sm",
	})

	rock := domain.NewObjectTemplate("SimpleObject", "boulder", 2)
	rock.Geometry = domain.ResolvedGeometry(&domain.GeometryTemplate{
		Type: "StandardMesh",
		Name: "m_rock",
		File: "rocks/boulder.sm",
	})

	a := domain.NewObjectInstance(1, domain.ResolvedTemplate(tree))
	a.AbsolutePosition = vec3.New(1, 2, 3)
	a.Rotation = vec3.New(0, 90, 0)

	b := domain.NewObjectInstance(2, domain.ResolvedTemplate(rock))
	b.AbsolutePosition = vec3.New(4, 5, 6)

	var buf strings.Builder
	if err := writer.WriteStatic(&buf, []*domain.ObjectInstance{a, b}, nil); err != nil {
		t.Fatalf("WriteStatic: %v", err)
	}

	got := buf.String()
	wantTreeBlock := "object.create oak\n" +
		"object.absolutePosition " + vec3.New(1, 2, 3).String() + "\n" +
		"object.rotation " + vec3.New(0, 90, 0).String() + "\n" +
		"object.geometry.scale 1\n\n"
	if !strings.Contains(got, wantTreeBlock) {
		t.Errorf("want tree block with geometry.scale line:\n%s\ngot:\n%s", wantTreeBlock, got)
	}

	wantRockBlock := "object.create boulder\n" +
		"object.absolutePosition " + vec3.New(4, 5, 6).String() + "\n" +
		"object.rotation " + vec3.New(0, 0, 0).String() + "\n\n"
	if !strings.Contains(got, wantRockBlock) {
		t.Errorf("want rock block without geometry.scale line:\n%s\ngot:\n%s", wantRockBlock, got)
	}
}

func TestWriteStaticUsesRawNameForUnresolvedTemplate(t *testing.T) {
	inst := domain.NewObjectInstance(1, domain.UnresolvedTemplate("ghostTemplate"))

	var buf strings.Builder
	if err := writer.WriteStatic(&buf, []*domain.ObjectInstance{inst}, nil); err != nil {
		t.Fatalf("WriteStatic: %v", err)
	}

	if !strings.HasPrefix(buf.String(), "object.create ghostTemplate\n") {
		t.Errorf("want block to start with raw template name, got:\n%s", buf.String())
	}
}
