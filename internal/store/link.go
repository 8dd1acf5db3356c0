// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package store

import (
	"fmt"

	"github.com/battlegrid/bf42con/internal/domain"
)

// Link runs the linking pass described in spec 4.4: every instance's
// template reference, and every template's children/geometry/networkable-
// info references, are resolved from raw strings into direct handles
// where a matching name exists in the corresponding registry. Unresolved
// references are left as strings for callers to detect and skip.
//
// Link is idempotent: calling it again after a second batch of scripts
// only resolves references that were still unresolved, and never appends
// a duplicate parent edge for a child that was already linked to that
// parent.
func (w *WorldData) Link() {
	for _, inst := range w.Instances {
		if inst.Template.IsLinked() {
			continue
		}
		if tpl, ok := w.GetObjectTemplate(inst.Template.Raw()); ok {
			inst.Template = domain.ResolvedTemplate(tpl)
		}
	}

	for _, tpl := range w.Templates {
		if !tpl.NetworkableInfo.IsLinked() && !tpl.NetworkableInfo.IsZero() {
			if info, ok := w.GetNetworkableInfo(tpl.NetworkableInfo.Raw()); ok {
				tpl.NetworkableInfo = domain.ResolvedNetworkable(info)
			}
		}
		if !tpl.Geometry.IsLinked() && !tpl.Geometry.IsZero() {
			if geo, ok := w.GetGeometryTemplate(tpl.Geometry.Raw()); ok {
				tpl.Geometry = domain.ResolvedGeometry(geo)
			}
		}

		for _, child := range tpl.Children {
			if !child.Template.IsLinked() {
				if childTpl, ok := w.GetObjectTemplate(child.Template.Raw()); ok {
					child.Template = domain.ResolvedTemplate(childTpl)
				}
			}
			if childTpl := child.Template.Handle(); childTpl != nil {
				w.addParentEdge(childTpl, tpl)
			}
		}
	}
}

// UnresolvedReferences lists every reference still unresolved after a
// Link pass, for callers that want to warn on (or fail on, per
// config.Diagnostics.WarnUnresolvedAsError) a script set with dangling
// names.
func (w *WorldData) UnresolvedReferences() []string {
	var out []string
	for _, inst := range w.Instances {
		if !inst.Template.IsLinked() && !inst.Template.IsZero() {
			out = append(out, fmt.Sprintf("instance %d (%s): unresolved template %q", inst.ID, inst.Name, inst.Template.Raw()))
		}
	}
	for _, tpl := range w.Templates {
		if !tpl.Geometry.IsLinked() && !tpl.Geometry.IsZero() {
			out = append(out, fmt.Sprintf("template %q: unresolved geometry %q", tpl.Name, tpl.Geometry.Raw()))
		}
		if !tpl.NetworkableInfo.IsLinked() && !tpl.NetworkableInfo.IsZero() {
			out = append(out, fmt.Sprintf("template %q: unresolved networkableInfo %q", tpl.Name, tpl.NetworkableInfo.Raw()))
		}
		for _, child := range tpl.Children {
			if !child.Template.IsLinked() {
				out = append(out, fmt.Sprintf("template %q: unresolved child template %q", tpl.Name, child.Template.Raw()))
			}
		}
	}
	return out
}

func (w *WorldData) addParentEdge(child, parent *domain.ObjectTemplate) {
	key := [2]*domain.ObjectTemplate{parent, child}
	if w.linkedChildren[key] {
		return
	}
	w.linkedChildren[key] = true
	child.Parents = append(child.Parents, parent)
}
