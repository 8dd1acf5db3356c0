// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package vec3_test

import (
	"math"
	"testing"

	"github.com/battlegrid/bf42con/internal/vec3"
)

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		id   string
		text string
		want vec3.Vec3
	}{
		{id: "triple", text: "1/2/3", want: vec3.New(1, 2, 3)},
		{id: "pair", text: "1/2", want: vec3.NewPair(1, 2)},
		{id: "scalar", text: "2.5", want: vec3.Splat(2.5)},
		{id: "negative", text: "-1/-2/-3", want: vec3.New(-1, -2, -3)},
		{id: "malformed-field-count", text: "1/x/3", want: vec3.Zero},
	} {
		if got := vec3.Parse(tc.text); !got.Equal(tc.want) {
			t.Errorf("id %q: parse %q: want %v, got %v", tc.id, tc.text, tc.want, got)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		id string
		v  vec3.Vec3
	}{
		{id: "zero", v: vec3.Zero},
		{id: "small", v: vec3.New(1.5, -2.25, 0.125)},
		{id: "large", v: vec3.New(12345.6, -98765.4, 1)},
		{id: "unit", v: vec3.New(1, 1, 1)},
	} {
		text := tc.v.String()
		got := vec3.Parse(text)
		for _, d := range []struct {
			name string
			want float64
			got  float64
		}{
			{"x", tc.v.X, got.X},
			{"y", tc.v.Y, got.Y},
			{"z", tc.v.Z, got.Z},
		} {
			if math.Abs(d.want-d.got) > 1e-3 {
				t.Errorf("id %q: %s: round trip through %q: want %v, got %v", tc.id, d.name, text, d.want, d.got)
			}
		}
	}
}

func TestAdd(t *testing.T) {
	a, b := vec3.New(1, 2, 3), vec3.New(4, 5, 6)
	want := vec3.New(5, 7, 9)
	if got := a.Add(b); !got.Equal(want) {
		t.Errorf("add: want %v, got %v", want, got)
	}
}

func TestRotateYaw90(t *testing.T) {
	// a vector on +X rotated 90 degrees of yaw should land on -Z per the
	// dialect's yaw formula (x'=x*cos+z*sin; z'=-x*sin+z*cos).
	v := vec3.New(1, 0, 0)
	got := v.Rotate(vec3.New(90, 0, 0))
	if math.Abs(got.X) > 1e-6 || math.Abs(got.Z-(-1)) > 1e-6 {
		t.Errorf("rotate yaw 90: want (0,0,-1), got %v", got)
	}
}

func TestRotateIdentity(t *testing.T) {
	v := vec3.New(3, 4, 5)
	got := v.Rotate(vec3.Zero)
	if !closeEnough(got, v) {
		t.Errorf("rotate by zero: want %v, got %v", v, got)
	}
}

func closeEnough(a, b vec3.Vec3) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

func TestStringFloor(t *testing.T) {
	v := vec3.New(1.75, 2.25, 0)
	want := "1-2-0"
	if got := v.StringFloor(); got != want {
		t.Errorf("string floor: want %q, got %q", want, got)
	}
}
