// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/battlegrid/bf42con/internal/domain"
	"github.com/battlegrid/bf42con/internal/store"
	"github.com/go-test/deep"
)

func TestCreateObjectTemplateUniqueByCaseInsensitiveName(t *testing.T) {
	w := store.New()

	first, created := w.CreateObjectTemplate("SimpleObject", "Tree")
	if !created {
		t.Fatalf("want created=true for first create")
	}
	second, created := w.CreateObjectTemplate("SimpleObject", "TREE")
	if created {
		t.Fatalf("want created=false for duplicate case-insensitive name")
	}
	if first != second {
		t.Fatalf("want duplicate create to return the existing template")
	}
	if len(w.Templates) != 1 {
		t.Fatalf("want 1 template in registry, got %d", len(w.Templates))
	}
}

func TestCreateObjectTemplateAssignsMonotonicIDs(t *testing.T) {
	w := store.New()
	a, _ := w.CreateObjectTemplate("SimpleObject", "a")
	b, _ := w.CreateObjectTemplate("SimpleObject", "b")
	if a.ID == b.ID || b.ID != a.ID+1 {
		t.Fatalf("want monotonic ids, got %d then %d", a.ID, b.ID)
	}
}

func TestFindInstanceLinearCaseInsensitiveScan(t *testing.T) {
	w := store.New()
	tpl, _ := w.CreateObjectTemplate("SimpleObject", "tree")
	inst := w.CreateInstance(domain.ResolvedTemplate(tpl))
	inst.Name = "Tree_01"

	got, ok := w.FindInstance("tree_01")
	if !ok || got != inst {
		t.Fatalf("want FindInstance to locate instance case-insensitively")
	}
	if _, ok := w.FindInstance("nope"); ok {
		t.Fatalf("want FindInstance to report false for unknown name")
	}
}

func TestMarkStaticIsSubsetPreservingOrder(t *testing.T) {
	w := store.New()
	tpl, _ := w.CreateObjectTemplate("SimpleObject", "tree")
	a := w.CreateInstance(domain.ResolvedTemplate(tpl))
	b := w.CreateInstance(domain.ResolvedTemplate(tpl))
	w.MarkStatic(b)
	w.MarkStatic(a)
	w.MarkStatic(b) // duplicate mark must not duplicate the entry

	if diff := deep.Equal(w.StaticInstances, []*domain.ObjectInstance{b, a}); diff != nil {
		t.Errorf("StaticInstances: %v", diff)
	}
}

// TestLinkS1 exercises Seed Scenario S1: a template's geometry reference
// resolves to a handle whose File field is visible through the link.
func TestLinkS1(t *testing.T) {
	w := store.New()
	geo, _ := w.CreateGeometryTemplate("StandardMesh", "m_tree")
	geo.File = "trees/oak.sm"

	tpl, _ := w.CreateObjectTemplate("SimpleObject", "tree")
	tpl.Geometry = domain.UnresolvedGeometry("m_tree")

	w.Link()

	if !tpl.Geometry.IsLinked() {
		t.Fatalf("want tpl.Geometry linked after Link()")
	}
	if tpl.Geometry.Handle().File != "trees/oak.sm" {
		t.Errorf("want file %q, got %q", "trees/oak.sm", tpl.Geometry.Handle().File)
	}
}

func TestLinkIdempotentParentEdges(t *testing.T) {
	w := store.New()
	parent, _ := w.CreateObjectTemplate("lodObject", "lod")
	child, _ := w.CreateObjectTemplate("SimpleObject", "close")
	parent.AddChild(domain.UnresolvedTemplate("close"))

	w.Link()
	w.Link()

	if len(child.Parents) != 1 || child.Parents[0] != parent {
		t.Fatalf("want exactly one parent edge after repeated linking, got %v", child.Parents)
	}
}

func TestLinkLeavesUnresolvedReferencesAsStrings(t *testing.T) {
	w := store.New()
	tpl, _ := w.CreateObjectTemplate("SimpleObject", "tree")
	tpl.Geometry = domain.UnresolvedGeometry("does_not_exist")

	w.Link()

	if tpl.Geometry.IsLinked() {
		t.Fatalf("want unresolved geometry reference to remain unlinked")
	}
	if tpl.Geometry.Raw() != "does_not_exist" {
		t.Errorf("want raw name preserved, got %q", tpl.Geometry.Raw())
	}
}

func TestUnresolvedReferencesReportsEveryUnlinkedKind(t *testing.T) {
	w := store.New()
	tpl, _ := w.CreateObjectTemplate("SimpleObject", "tree")
	tpl.Geometry = domain.UnresolvedGeometry("missing_geo")
	tpl.NetworkableInfo = domain.UnresolvedNetworkable("missing_info")
	tpl.AddChild(domain.UnresolvedTemplate("missing_child"))
	w.CreateInstance(domain.UnresolvedTemplate("missing_template"))

	w.Link()

	got := w.UnresolvedReferences()
	if len(got) != 4 {
		t.Fatalf("want 4 unresolved references, got %d: %v", len(got), got)
	}
}

func TestLoadConstantsPopulatesMap(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "constants.txt")
	if err := os.WriteFile(path, []byte("c_foo 1\nc_bar two\n"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}

	w := store.New()
	if err := w.LoadConstants(path); err != nil {
		t.Fatalf("LoadConstants: %v", err)
	}
	if w.Constants["c_foo"] != "1" || w.Constants["c_bar"] != "two" {
		t.Errorf("want both constants loaded, got %v", w.Constants)
	}
}

func TestLoadConstantsMissingFileIsNotFatal(t *testing.T) {
	w := store.New()
	if err := w.LoadConstants(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatalf("want an error for a missing constants file")
	}
	// store.New() itself tolerates the same error silently, since a bare
	// working directory with no constants.txt is the common case.
}

func TestUnresolvedReferencesEmptyWhenFullyLinked(t *testing.T) {
	w := store.New()
	geo, _ := w.CreateGeometryTemplate("StandardMesh", "m_tree")
	tpl, _ := w.CreateObjectTemplate("SimpleObject", "tree")
	tpl.Geometry = domain.UnresolvedGeometry(geo.Name)
	w.CreateInstance(domain.UnresolvedTemplate("tree"))

	w.Link()

	if got := w.UnresolvedReferences(); len(got) != 0 {
		t.Fatalf("want no unresolved references, got %v", got)
	}
}
