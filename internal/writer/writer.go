// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package writer

import (
	"fmt"
	"io"
	"strings"

	"github.com/battlegrid/bf42con/internal/diag"
	"github.com/battlegrid/bf42con/internal/domain"
	"github.com/battlegrid/bf42con/internal/walk"
)

// WriteStatic emits one object.create/absolutePosition/rotation block per
// instance in instances, in order, separated by blank lines, per spec.md
// 6's static-object writer format. Instances with an unresolved template
// reference still emit using the reference's raw name; the
// object.geometry.scale line is only added when the instance's linked
// template has a close-LOD geometry of type treeMesh, which matches the
// original writer's "scale up destroyed tree stumps" convention. sink may
// be nil to suppress the walk's malformed-lodObject diagnostics.
func WriteStatic(w io.Writer, instances []*domain.ObjectInstance, sink diag.Sink) error {
	for _, inst := range instances {
		if _, err := fmt.Fprintf(w, "object.create %s\n", inst.Template.Name()); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "object.absolutePosition %s\n", inst.AbsolutePosition.String()); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "object.rotation %s\n", inst.Rotation.String()); err != nil {
			return err
		}

		if tpl := inst.Template.Handle(); tpl != nil && hasCloseTreeMesh(tpl, sink) {
			if _, err := fmt.Fprintln(w, "object.geometry.scale 1"); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func hasCloseTreeMesh(tpl *domain.ObjectTemplate, sink diag.Sink) bool {
	res := walk.Walk(tpl, sink)
	for _, e := range res.Close {
		if strings.EqualFold(e.Geometry.Type, "treeMesh") {
			return true
		}
	}
	return false
}
