// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package vec3

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Vec3 is a three-component floating point vector used for positions,
// rotations, and scales throughout the dialect.
type Vec3 struct {
	X, Y, Z float64
}

// Zero is the default vector value used for un-set positions and rotations.
var Zero = Vec3{}

// New builds a vector from three components.
func New(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// NewPair builds a vector from two components; Z defaults to zero.
func NewPair(x, y float64) Vec3 {
	return Vec3{X: x, Y: y}
}

// Splat builds a vector whose three components all equal v.
func Splat(v float64) Vec3 {
	return Vec3{X: v, Y: v, Z: v}
}

// Parse accepts the dialect's three textual forms: "x/y/z", "x/y", or a
// single scalar "x" (splat to all three components). Tokens that fail to
// parse as floats are skipped, same as the original implementation; the
// resulting vector only gets populated if the count of valid floats
// matches the count of slash-delimited fields exactly (1, 2, or 3).
func Parse(s string) Vec3 {
	fields := strings.Split(s, "/")
	values := make([]float64, 0, len(fields))
	for _, f := range fields {
		if v, err := strconv.ParseFloat(strings.TrimSpace(f), 64); err == nil {
			values = append(values, v)
		}
	}
	switch {
	case len(values) == 1 && len(fields) == 1:
		return Splat(values[0])
	case len(values) == 2 && len(fields) == 2:
		return NewPair(values[0], values[1])
	case len(values) == 3 && len(fields) == 3:
		return New(values[0], values[1], values[2])
	}
	return Zero
}

// Equal is strict componentwise equality.
func (v Vec3) Equal(o Vec3) bool {
	return v.X == o.X && v.Y == o.Y && v.Z == o.Z
}

// Add returns the componentwise sum of v and o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// List returns the vector's components as a three-element slice, the form
// used by the serialization document format.
func (v Vec3) List() []float64 {
	return []float64{v.X, v.Y, v.Z}
}

// FromList builds a vector from a three-element slice, the inverse of List.
// A slice of any other length yields the zero vector.
func FromList(l []float64) Vec3 {
	if len(l) != 3 {
		return Zero
	}
	return New(l[0], l[1], l[2])
}

// Rotate applies the dialect's yaw/pitch/roll rotation: r.X is yaw (about
// Y, affecting X/Z), r.Y is pitch (about X, affecting Y/Z), r.Z is roll
// (about Z, affecting X/Y), all in degrees. Each step consumes the
// components already updated by the previous step, matching the original
// in-place implementation.
func (v Vec3) Rotate(r Vec3) Vec3 {
	yaw, pitch, roll := r.X*math.Pi/180, r.Y*math.Pi/180, r.Z*math.Pi/180

	x1 := v.X*math.Cos(yaw) + v.Z*math.Sin(yaw)
	z1 := -v.X*math.Sin(yaw) + v.Z*math.Cos(yaw)

	y2 := v.Y*math.Cos(pitch) - z1*math.Sin(pitch)
	z2 := v.Y*math.Sin(pitch) + z1*math.Cos(pitch)

	x3 := x1*math.Cos(roll) - y2*math.Sin(roll)
	y3 := x1*math.Sin(roll) + y2*math.Cos(roll)

	return Vec3{X: x3, Y: y3, Z: z2}
}

// significance mirrors the original's "max(6, 4+digits_before_dot)" rule.
func significance(v float64) int {
	digitsBeforeDot := 0
	if v != 0 {
		digitsBeforeDot = int(math.Log10(math.Abs(v))) + 1
	}
	if n := 4 + digitsBeforeDot; n > 6 {
		return n
	}
	return 6
}

func component(v float64) string {
	if v == 0 {
		v = 0 // avoid printing "-0" for cosmetic negative zero
	}
	return fmt.Sprintf("%.*g", significance(v), v)
}

// String is the canonical stringification: each component formatted at
// significance max(6, 4+digits-before-the-dot), joined by "/".
func (v Vec3) String() string {
	return component(v.X) + "/" + component(v.Y) + "/" + component(v.Z)
}

// StringFloor truncates each component's fractional part and replaces
// exponent-form values with "0", joined by "-". Used for the lightmap
// naming convention in the original tooling.
func (v Vec3) StringFloor() string {
	floor := func(f float64) string {
		s := component(f)
		if strings.ContainsAny(s, "eE") {
			return "0"
		}
		if i := strings.IndexByte(s, '.'); i >= 0 {
			return s[:i]
		}
		return s
	}
	return floor(v.X) + "-" + floor(v.Y) + "-" + floor(v.Z)
}
