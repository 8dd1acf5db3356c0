// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package store

import (
	"bufio"
	"os"
	"strings"

	"github.com/battlegrid/bf42con/internal/domain"
)

// WorldData owns every registry produced by interpreting one or more
// script files: templates, geometries, networkable infos, instances, the
// static-instance subset, the four "active" cursors, texture alternative
// paths, the console world size, the level's GameConfig, and the
// variable/constant tables. It is additive: multiple interpreter
// invocations share one WorldData and simply keep adding to it.
type WorldData struct {
	Templates  []*domain.ObjectTemplate
	Geometries []*domain.GeometryTemplate
	Infos      []*domain.NetworkableInfo
	Instances  []*domain.ObjectInstance

	// StaticInstances is a subset of Instances, insertion order preserved.
	StaticInstances []*domain.ObjectInstance

	ActiveTemplate  *domain.ObjectTemplate
	ActiveGeometry  *domain.GeometryTemplate
	ActiveInfo      *domain.NetworkableInfo
	ActiveInstance  *domain.ObjectInstance

	TextureAlternativePaths []string
	ConsoleWorldSize        int

	Game *domain.GameConfig

	Variables map[string]string
	Constants map[string]string

	nextTemplateID int
	nextInstanceID int

	templatesByName map[string]*domain.ObjectTemplate
	geometriesByName map[string]*domain.GeometryTemplate
	infosByName      map[string]*domain.NetworkableInfo

	// linkedChildren dedupes parent-edge insertion across repeated
	// linking passes: a parent/child pair is recorded once.
	linkedChildren map[[2]*domain.ObjectTemplate]bool
}

// New builds an empty WorldData with its registries and lookup indices
// initialized. Per EXTERNAL INTERFACES, constants.txt is loaded
// unconditionally at construction, matching BF42_data.__init__; unlike
// the original, a missing file is tolerated rather than fatal, since the
// dialect already passes unresolved c_ tokens through unchanged.
func New() *WorldData {
	w := &WorldData{
		Game:             &domain.GameConfig{},
		Variables:        make(map[string]string),
		Constants:        make(map[string]string),
		templatesByName:  make(map[string]*domain.ObjectTemplate),
		geometriesByName: make(map[string]*domain.GeometryTemplate),
		infosByName:      make(map[string]*domain.NetworkableInfo),
		linkedChildren:   make(map[[2]*domain.ObjectTemplate]bool),
	}
	_ = w.LoadConstants("constants.txt")
	return w
}

// LoadConstants reads whitespace-separated "name value" pairs, one per
// line, into the constant table, per EXTERNAL INTERFACES' constants.txt
// convention.
func (w *WorldData) LoadConstants(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		w.Constants[fields[0]] = fields[1]
	}
	return sc.Err()
}

func canon(name string) string {
	return strings.ToLower(name)
}

// CreateObjectTemplate inserts a new template if name is free (case-
// insensitively) within the registry. If the name is already taken, the
// existing template is returned with created=false and the active cursor
// is left untouched, matching the dialect's silent-duplicate tolerance.
func (w *WorldData) CreateObjectTemplate(kind, name string) (tpl *domain.ObjectTemplate, created bool) {
	if existing, ok := w.templatesByName[canon(name)]; ok {
		return existing, false
	}
	w.nextTemplateID++
	tpl = domain.NewObjectTemplate(kind, name, w.nextTemplateID)
	w.Templates = append(w.Templates, tpl)
	w.templatesByName[canon(name)] = tpl
	w.ActiveTemplate = tpl
	return tpl, true
}

// ActivateObjectTemplate moves the active-template cursor to the named
// template, if it exists.
func (w *WorldData) ActivateObjectTemplate(name string) bool {
	tpl, ok := w.templatesByName[canon(name)]
	if !ok {
		return false
	}
	w.ActiveTemplate = tpl
	return true
}

// GetObjectTemplate looks up a template by name, case-insensitively.
func (w *WorldData) GetObjectTemplate(name string) (*domain.ObjectTemplate, bool) {
	tpl, ok := w.templatesByName[canon(name)]
	return tpl, ok
}

// CreateGeometryTemplate is CreateObjectTemplate's analog for geometries.
func (w *WorldData) CreateGeometryTemplate(kind, name string) (geo *domain.GeometryTemplate, created bool) {
	if existing, ok := w.geometriesByName[canon(name)]; ok {
		return existing, false
	}
	geo = domain.NewGeometryTemplate(kind, name)
	w.Geometries = append(w.Geometries, geo)
	w.geometriesByName[canon(name)] = geo
	w.ActiveGeometry = geo
	return geo, true
}

// ActivateGeometryTemplate moves the active-geometry cursor.
func (w *WorldData) ActivateGeometryTemplate(name string) bool {
	geo, ok := w.geometriesByName[canon(name)]
	if !ok {
		return false
	}
	w.ActiveGeometry = geo
	return true
}

// GetGeometryTemplate looks up a geometry template by name.
func (w *WorldData) GetGeometryTemplate(name string) (*domain.GeometryTemplate, bool) {
	geo, ok := w.geometriesByName[canon(name)]
	return geo, ok
}

// CreateNetworkableInfo is CreateObjectTemplate's analog for networkable
// infos (spawned by networkableInfo.createNewInfo).
func (w *WorldData) CreateNetworkableInfo(name string) (info *domain.NetworkableInfo, created bool) {
	if existing, ok := w.infosByName[canon(name)]; ok {
		return existing, false
	}
	info = domain.NewNetworkableInfo(name)
	w.Infos = append(w.Infos, info)
	w.infosByName[canon(name)] = info
	w.ActiveInfo = info
	return info, true
}

// ActivateNetworkableInfo moves the active-info cursor.
func (w *WorldData) ActivateNetworkableInfo(name string) bool {
	info, ok := w.infosByName[canon(name)]
	if !ok {
		return false
	}
	w.ActiveInfo = info
	return true
}

// GetNetworkableInfo looks up a networkable info by name.
func (w *WorldData) GetNetworkableInfo(name string) (*domain.NetworkableInfo, bool) {
	info, ok := w.infosByName[canon(name)]
	return info, ok
}

// CreateInstance allocates a new object instance referencing templateRef,
// appends it to Instances, and makes it the active instance. Instances
// aren't name-unique, so this always creates.
func (w *WorldData) CreateInstance(templateRef domain.TemplateRef) *domain.ObjectInstance {
	w.nextInstanceID++
	inst := domain.NewObjectInstance(w.nextInstanceID, templateRef)
	w.Instances = append(w.Instances, inst)
	w.ActiveInstance = inst
	return inst
}

// MarkStatic appends inst to StaticInstances, if it isn't already there.
func (w *WorldData) MarkStatic(inst *domain.ObjectInstance) {
	for _, s := range w.StaticInstances {
		if s == inst {
			return
		}
	}
	w.StaticInstances = append(w.StaticInstances, inst)
}

// ActivateInstance sets the active instance to the first instance found
// with a matching name, case-insensitively.
func (w *WorldData) ActivateInstance(name string) bool {
	inst, ok := w.FindInstance(name)
	if !ok {
		return false
	}
	w.ActiveInstance = inst
	return true
}

// FindInstance does a linear, case-insensitive scan of Instances by name.
// This is the corrected form of the original's getObject, which returned
// the wrong registry entirely (see SPEC_FULL.md supplemented feature 6).
func (w *WorldData) FindInstance(name string) (*domain.ObjectInstance, bool) {
	for _, inst := range w.Instances {
		if strings.EqualFold(inst.Name, name) {
			return inst, true
		}
	}
	return nil, false
}
