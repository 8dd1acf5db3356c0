// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package dispatch

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/battlegrid/bf42con/cerrs"
)

// Setter mutates an entity from a command's argument list. It returns the
// value to offer for "-> v_target" capture (may be empty) and an error if
// the arguments couldn't be coerced.
type Setter func(args []string) (ret string, err error)

// Table maps a lowercased method name to its Setter. Every entry is
// registered under both its canonical name and a "set"-prefixed alias.
type Table map[string]Setter

// NewTable builds an empty dispatch table.
func NewTable() Table {
	return make(Table)
}

// Register adds a setter under name and "set"+name, both lowercased.
func (t Table) Register(name string, fn Setter) {
	lname := strings.ToLower(name)
	t[lname] = fn
	t["set"+lname] = fn
}

// Call looks up method (case-insensitive) and invokes its setter. ok is
// false when the method isn't registered at all, which the interpreter
// treats as a silent no-op per the dialect's tolerance for unknown
// methods.
func (t Table) Call(method string, args []string) (ret string, ok bool, err error) {
	fn, found := t[strings.ToLower(method)]
	if !found {
		return "", false, nil
	}
	ret, err = fn(args)
	if err != nil {
		return "", true, &MethodError{Method: method, Err: err}
	}
	return ret, true, nil
}

// MethodError wraps a setter's coercion failure with the method name that
// triggered it, per the dialect's "path(line): text" diagnostic contract.
type MethodError struct {
	Method string
	Err    error
}

func (e *MethodError) Error() string {
	return fmt.Sprintf("%s: %v", e.Method, e.Err)
}

func (e *MethodError) Unwrap() error { return e.Err }

// arg returns the i'th argument, or ok=false if there aren't enough.
func arg(args []string, i int) (string, bool) {
	if i < 0 || i >= len(args) {
		return "", false
	}
	return args[i], true
}

func requireArg(args []string, i int, name string) (string, error) {
	v, ok := arg(args, i)
	if !ok {
		return "", fmt.Errorf("%s: %w", name, cerrs.ErrMethodError)
	}
	return v, nil
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func parseInt(s string) (int, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

// parseIntBool mirrors the original's bool(int(value)) coercion: parse as
// an integer, then treat any nonzero value as true.
func parseIntBool(s string) (bool, error) {
	v, err := parseInt(s)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func formatInt(i int) string {
	return strconv.Itoa(i)
}

func formatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
