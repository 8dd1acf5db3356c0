// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package command

import (
	"regexp"
	"strings"
)

var (
	reLine = regexp.MustCompile(`^[\t\f ]*([^\t\f .]*)(?:\.([^\t\f \n]*))?[\t\f ]*(.*)$`)
	reArgs = regexp.MustCompile(`"(?:.*?"|.*)|[^\t\f ]+`)
)

// Command is the parsed form of one input line.
type Command struct {
	ClassName      string // optional; empty when the line has no class prefix
	Method         string // optional; empty when the line has no ".method" suffix
	Arguments      []string
	TargetVariable string // set when the line ends in "-> v_name"
}

// Parse splits one trimmed line of script text into a Command.
func Parse(line string) Command {
	var c Command

	m := reLine.FindStringSubmatch(line)
	if m == nil {
		return c
	}
	c.ClassName, c.Method = m[1], m[2]

	if argsText := m[3]; argsText != "" {
		for _, tok := range reArgs.FindAllString(argsText, -1) {
			c.Arguments = append(c.Arguments, strings.ReplaceAll(tok, `"`, ""))
		}
	}

	if n := len(c.Arguments); n >= 2 && c.Arguments[n-2] == "->" && hasVPrefix(c.Arguments[n-1]) {
		c.TargetVariable = c.Arguments[n-1]
		c.Arguments = c.Arguments[:n-2]
	}

	return c
}

func hasVPrefix(s string) bool {
	return len(s) >= 2 && strings.EqualFold(s[:2], "v_")
}

// NumArgs is shorthand for len(c.Arguments).
func (c Command) NumArgs() int {
	return len(c.Arguments)
}

// HasClass reports whether the line carried a class prefix at all. A
// top-level directive (include, run, var, const, or a bare v_/c_
// assignment) has its keyword as the class name and no method.
func (c Command) HasClass() bool {
	return c.ClassName != ""
}

// Is reports whether the command matches the pattern "Class.Method".
// Either half may be empty or "*" to match anything; the method half also
// accepts a "set"-prefixed form of the reference name.
func (c Command) Is(pattern string) bool {
	class, method, hasMethod := pattern, "", false
	if i := strings.IndexByte(pattern, '.'); i >= 0 {
		class, method, hasMethod = pattern[:i], pattern[i+1:], true
	}

	if !matchesWildcard(class) && !strings.EqualFold(c.ClassName, class) {
		return false
	}
	if hasMethod && !matchesWildcard(method) && !IsMethod(c.Method, method) {
		return false
	}
	return true
}

func matchesWildcard(s string) bool {
	return s == "" || s == "*"
}

// IsMethod reports whether method matches ref, accepting an optional "set"
// prefix on method, e.g. "setGeometry" matches the reference "geometry".
// Exported so the interpreter can match the create/active methods it
// handles itself with the same "set"-prefix tolerance.
func IsMethod(method, ref string) bool {
	return strings.EqualFold(method, ref) || strings.EqualFold(method, "set"+ref)
}
