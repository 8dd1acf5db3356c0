// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package script_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/battlegrid/bf42con/internal/diag"
	"github.com/battlegrid/bf42con/internal/script"
	"github.com/battlegrid/bf42con/internal/store"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// TestConditionalsS2 exercises Seed Scenario S2.
func TestConditionalsS2(t *testing.T) {
	const body = `
if v_arg1 == host
  console.worldSize 1024
elseif v_arg1 == client
  console.worldSize 512
else
  console.worldSize 256
endif
`
	for _, tc := range []struct {
		arg  string
		want int
	}{
		{"host", 1024},
		{"client", 512},
		{"other", 256},
	} {
		dir := t.TempDir()
		path := writeFile(t, dir, "level.con", body)

		data := store.New()
		capture := &diag.Capture{}
		r := script.NewReader(data, capture)
		if err := r.ReadFileWithArgs(path, []string{tc.arg}); err != nil {
			t.Fatalf("arg %q: unexpected error: %v", tc.arg, err)
		}
		if data.ConsoleWorldSize != tc.want {
			t.Errorf("arg %q: want worldSize %d, got %d", tc.arg, tc.want, data.ConsoleWorldSize)
		}
	}
}

// TestObjectCreateStaticS3 exercises Seed Scenario S3.
func TestObjectCreateStaticS3(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "static.con", `
object.create tree
object.absolutePosition 10/0/20
`)

	data := store.New()
	r := script.NewReader(data, &diag.Capture{})
	if err := r.ReadStaticFile(path, nil); err != nil {
		t.Fatalf("ReadStaticFile: %v", err)
	}

	if len(data.Instances) != 1 || len(data.StaticInstances) != 1 {
		t.Fatalf("want 1 instance in both lists, got %d objects, %d static", len(data.Instances), len(data.StaticInstances))
	}
	if data.Instances[0] != data.StaticInstances[0] {
		t.Fatalf("want the same instance in both lists")
	}
	if data.Instances[0].Template.Raw() != "tree" {
		t.Errorf("want unresolved template %q, got %q", "tree", data.Instances[0].Template.Raw())
	}
}

// TestRunScopesArgumentsS5 exercises Seed Scenario S5: v_arg1 bound by
// run() is visible inside the called script but not in the caller.
func TestRunScopesArgumentsS5(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "B.con", "var v_x\nv_x = v_arg1\n")
	aPath := writeFile(t, dir, "A.con", "run B.con value1\n")

	data := store.New()
	r := script.NewReader(data, &diag.Capture{})
	if err := r.ReadFile(aPath); err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	if got := data.Variables["v_x"]; got != "value1" {
		t.Errorf("want v_x == %q, got %q", "value1", got)
	}
	if _, ok := data.Variables["v_arg1"]; ok {
		t.Errorf("want v_arg1 not visible outside run()'s scope")
	}
}

// TestQuotedArgumentS6 exercises Seed Scenario S6.
func TestQuotedArgumentS6(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "game.con", `game.customGameName "Desert Combat"`+"\n")

	data := store.New()
	r := script.NewReader(data, &diag.Capture{})
	if err := r.ReadFile(path); err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if data.Game.CustomGameName != "Desert Combat" {
		t.Errorf("want customGameName %q, got %q", "Desert Combat", data.Game.CustomGameName)
	}
}

// TestConditionalBalance verifies that an unmatched if leaves the
// conditional stack non-empty even though processing completes.
func TestConditionalBalance(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "unbalanced.con", "if v_x == v_x\nconsole.worldSize 1\n")

	data := store.New()
	r := script.NewReader(data, &diag.Capture{})
	if err := r.ReadFile(path); err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if data.ConsoleWorldSize != 1 {
		t.Errorf("want the true branch to still execute, got worldSize %d", data.ConsoleWorldSize)
	}
	if !r.HasOpenConditional() {
		t.Errorf("want an unmatched if to leave the conditional stack non-empty")
	}
}

// TestSuppressDispatchErrorsSilencesExceptionLine verifies that a
// dispatch error (here, a non-integer console.worldSize argument) is only
// logged when SuppressDispatchErrors is false.
func TestSuppressDispatchErrorsSilencesExceptionLine(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.con", "console.worldSize notanumber\n")

	data := store.New()
	capture := &diag.Capture{}
	r := script.NewReader(data, capture)
	r.SuppressDispatchErrors = true
	if err := r.ReadFile(path); err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(capture.Lines) != 0 {
		t.Errorf("want no diagnostics with SuppressDispatchErrors, got %v", capture.Lines)
	}
}

// TestSuppressIOFailuresSilencesReadError verifies that a missing file's
// diagnostic line is only emitted when SuppressIOFailures is false.
func TestSuppressIOFailuresSilencesReadError(t *testing.T) {
	data := store.New()
	capture := &diag.Capture{}
	r := script.NewReader(data, capture)
	r.SuppressIOFailures = true
	if err := r.ReadFile(filepath.Join(t.TempDir(), "missing.con")); err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(capture.Lines) != 0 {
		t.Errorf("want no diagnostics with SuppressIOFailures, got %v", capture.Lines)
	}
}

// TestReaderDiagnosticsIncludeRunID verifies that an emitted diagnostic
// line is tagged with the Reader's run id, so interleaved output from
// concurrent batch jobs can be told apart.
func TestReaderDiagnosticsIncludeRunID(t *testing.T) {
	data := store.New()
	capture := &diag.Capture{}
	r := script.NewReader(data, capture)
	if err := r.ReadFile(filepath.Join(t.TempDir(), "missing.con")); err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(capture.Lines) != 1 || !strings.Contains(capture.Lines[0], r.RunID) {
		t.Fatalf("want one diagnostic line containing run id %q, got %v", r.RunID, capture.Lines)
	}
}
