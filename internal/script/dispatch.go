// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package script

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/battlegrid/bf42con/internal/command"
	"github.com/battlegrid/bf42con/internal/dispatch"
	"github.com/battlegrid/bf42con/internal/domain"
)

// dispatch handles one non-suppressed, non-control-flow command: either
// a top-level directive (include, run, var, const, bare v_/c_ assignment)
// when the line has no method, or a class.method dispatch against the
// corresponding entity kind.
func (r *Reader) dispatch(c command.Command) error {
	if c.Method == "" {
		return r.dispatchDirective(c)
	}

	switch {
	case c.Is("objectTemplate.*"):
		return r.dispatchObjectTemplate(c)
	case c.Is("networkableInfo.*"):
		return r.dispatchNetworkableInfo(c)
	case c.Is("geometryTemplate.*"):
		return r.dispatchGeometryTemplate(c)
	case c.Is("object.*"):
		return r.dispatchObject(c)
	case c.Is("textureManager.alternativePath"):
		if v, ok := arg0(c.Arguments, 0); ok {
			r.Data.TextureAlternativePaths = append(r.Data.TextureAlternativePaths, v)
		}
		return nil
	case c.Is("game.*"):
		return r.callTable(dispatch.GameConfigTable(r.Data.Game), c)
	case c.Is("console.worldSize"):
		if v, ok := arg0(c.Arguments, 0); ok {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return err
			}
			r.Data.ConsoleWorldSize = n
		}
		return nil
	}
	return nil
}

func (r *Reader) dispatchDirective(c command.Command) error {
	switch {
	case strings.EqualFold(c.ClassName, "include"):
		return r.doInclude(c.Arguments)
	case strings.EqualFold(c.ClassName, "run"):
		return r.doRun(c.Arguments)
	case strings.EqualFold(c.ClassName, "var"):
		r.assignTopLevel(r.Data.Variables, c.Arguments)
		return nil
	case strings.EqualFold(c.ClassName, "const"):
		r.assignTopLevel(r.Data.Constants, c.Arguments)
		return nil
	case hasFoldPrefix(c.ClassName, "v_") && len(c.Arguments) == 2:
		overwriteIfDeclared(r.Data.Variables, c.ClassName, c.Arguments[1])
		return nil
	case hasFoldPrefix(c.ClassName, "c_") && len(c.Arguments) == 2:
		overwriteIfDeclared(r.Data.Constants, c.ClassName, c.Arguments[1])
		return nil
	}
	return nil
}

// assignTopLevel implements "var name = value" (3 args) and "var name"
// (1 arg, declare-if-absent), and the "const" analog.
func (r *Reader) assignTopLevel(table map[string]string, args []string) {
	switch len(args) {
	case 1:
		key := strings.ToLower(args[0])
		if _, ok := table[key]; !ok {
			table[key] = ""
		}
	case 3:
		table[strings.ToLower(args[0])] = args[2]
	}
}

func overwriteIfDeclared(table map[string]string, name, value string) {
	key := strings.ToLower(name)
	if _, ok := table[key]; ok {
		table[key] = value
	}
}

func (r *Reader) doInclude(args []string) error {
	v, ok := arg0(args, 0)
	if !ok {
		return nil
	}
	return r.ReadFile(resolvePath(r.dir, v))
}

func (r *Reader) doRun(args []string) error {
	name, ok := arg0(args, 0)
	if !ok {
		return nil
	}
	if filepath.Ext(name) == "" {
		name += ".con"
	}
	child := r.newChild()
	for i, a := range args[1:] {
		child.locals[fmt.Sprintf("v_arg%d", i+1)] = a
	}
	return child.ReadFile(resolvePath(r.dir, name))
}

func (r *Reader) dispatchObjectTemplate(c command.Command) error {
	switch {
	case command.IsMethod(c.Method, "create"):
		kind, _ := arg0(c.Arguments, 0)
		name, _ := arg0(c.Arguments, 1)
		if name != "" {
			r.Data.CreateObjectTemplate(kind, name)
		}
		return nil
	case command.IsMethod(c.Method, "active"):
		if name, ok := arg0(c.Arguments, 0); ok {
			r.Data.ActivateObjectTemplate(name)
		}
		return nil
	}
	if r.Data.ActiveTemplate == nil {
		return nil
	}
	return r.callTable(dispatch.ObjectTemplateTable(r.Data.ActiveTemplate), c)
}

func (r *Reader) dispatchGeometryTemplate(c command.Command) error {
	switch {
	case command.IsMethod(c.Method, "create"):
		kind, _ := arg0(c.Arguments, 0)
		name, _ := arg0(c.Arguments, 1)
		if name != "" {
			r.Data.CreateGeometryTemplate(kind, name)
		}
		return nil
	case command.IsMethod(c.Method, "active"):
		if name, ok := arg0(c.Arguments, 0); ok {
			r.Data.ActivateGeometryTemplate(name)
		}
		return nil
	}
	if r.Data.ActiveGeometry == nil {
		return nil
	}
	return r.callTable(dispatch.GeometryTemplateTable(r.Data.ActiveGeometry), c)
}

func (r *Reader) dispatchNetworkableInfo(c command.Command) error {
	switch {
	case command.IsMethod(c.Method, "createNewInfo"):
		name, _ := arg0(c.Arguments, 0)
		if name != "" {
			r.Data.CreateNetworkableInfo(name)
		}
		return nil
	case command.IsMethod(c.Method, "active"):
		if name, ok := arg0(c.Arguments, 0); ok {
			r.Data.ActivateNetworkableInfo(name)
		}
		return nil
	}
	if r.Data.ActiveInfo == nil {
		return nil
	}
	return r.callTable(dispatch.NetworkableInfoTable(r.Data.ActiveInfo), c)
}

func (r *Reader) dispatchObject(c command.Command) error {
	switch {
	case command.IsMethod(c.Method, "create"):
		name, ok := arg0(c.Arguments, 0)
		if !ok {
			return nil
		}
		inst := r.Data.CreateInstance(domain.UnresolvedTemplate(name))
		if r.staticMode {
			r.Data.MarkStatic(inst)
		}
		return nil
	case command.IsMethod(c.Method, "active"):
		if name, ok := arg0(c.Arguments, 0); ok {
			r.Data.ActivateInstance(name)
		}
		return nil
	}
	if r.Data.ActiveInstance == nil {
		return nil
	}
	return r.callTable(dispatch.ObjectInstanceTable(r.Data.ActiveInstance), c)
}

// callTable invokes method against tbl and, when the command carries an
// already-declared targetVariable, overwrites it with the setter's
// return value — the generic form of the "-> v_x" return-capture path
// DESIGN NOTES calls out as only exercised by game.* today.
func (r *Reader) callTable(tbl dispatch.Table, c command.Command) error {
	ret, ok, err := tbl.Call(c.Method, c.Arguments)
	if !ok {
		return nil
	}
	if err != nil {
		return err
	}
	if c.TargetVariable != "" {
		overwriteIfDeclared(r.Data.Variables, c.TargetVariable, ret)
	}
	return nil
}

func arg0(args []string, i int) (string, bool) {
	if i < 0 || i >= len(args) {
		return "", false
	}
	return args[i], true
}
