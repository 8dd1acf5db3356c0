// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package command_test

import (
	"testing"

	"github.com/battlegrid/bf42con/internal/command"
)

func TestParseBasic(t *testing.T) {
	c := command.Parse(`objectTemplate.create SimpleObject tree`)
	if c.ClassName != "objectTemplate" || c.Method != "create" {
		t.Fatalf("want objectTemplate.create, got %s.%s", c.ClassName, c.Method)
	}
	if want := []string{"SimpleObject", "tree"}; !equal(c.Arguments, want) {
		t.Fatalf("arguments: want %v, got %v", want, c.Arguments)
	}
}

func TestParseQuotedArgument(t *testing.T) {
	c := command.Parse(`game.customGameName "Desert Combat"`)
	if want := []string{"Desert Combat"}; !equal(c.Arguments, want) {
		t.Fatalf("arguments: want %v, got %v", want, c.Arguments)
	}
}

func TestParseUnterminatedQuote(t *testing.T) {
	c := command.Parse(`game.customGameName "Desert Combat`)
	if want := []string{"Desert Combat"}; !equal(c.Arguments, want) {
		t.Fatalf("arguments: want %v, got %v", want, c.Arguments)
	}
}

func TestParseTargetVariable(t *testing.T) {
	c := command.Parse(`game.customGameName "Foo" -> v_name`)
	if c.TargetVariable != "v_name" {
		t.Fatalf("targetVariable: want v_name, got %q", c.TargetVariable)
	}
	if want := []string{"Foo"}; !equal(c.Arguments, want) {
		t.Fatalf("arguments: want %v, got %v", want, c.Arguments)
	}
}

func TestParseDirectiveHasNoMethod(t *testing.T) {
	c := command.Parse(`var v_x = 1`)
	if c.ClassName != "var" || c.Method != "" {
		t.Fatalf("expected class name \"var\" with no method, got %q.%q", c.ClassName, c.Method)
	}
	if want := []string{"v_x", "=", "1"}; !equal(c.Arguments, want) {
		t.Fatalf("arguments: want %v, got %v", want, c.Arguments)
	}
}

func TestIsPatternMatching(t *testing.T) {
	for _, tc := range []struct {
		id      string
		line    string
		pattern string
		want    bool
	}{
		{id: "exact", line: "objectTemplate.create x y", pattern: "objectTemplate.create", want: true},
		{id: "case-insensitive", line: "OBJECTTEMPLATE.CREATE x y", pattern: "objectTemplate.create", want: true},
		{id: "set-prefix", line: "objectTemplate.setGeometry m", pattern: "objectTemplate.geometry", want: true},
		{id: "wildcard-class", line: "objectTemplate.active x", pattern: ".active", want: true},
		{id: "wildcard-method", line: "objectTemplate.anything x", pattern: "objectTemplate.*", want: true},
		{id: "mismatch", line: "geometryTemplate.create x y", pattern: "objectTemplate.create", want: false},
	} {
		c := command.Parse(tc.line)
		if got := c.Is(tc.pattern); got != tc.want {
			t.Errorf("id %q: Is(%q): want %v, got %v", tc.id, tc.pattern, tc.want, got)
		}
	}
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
