// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package domain

import "github.com/battlegrid/bf42con/internal/vec3"

// PredictionMode_e is the networkable-info replication prediction mode.
type PredictionMode_e int

const (
	PMNone PredictionMode_e = iota
	PMLinear
	PMCubic
	PMUsePhysics
)

var predictionModeNames = [...]string{"PMNone", "PMLinear", "PMCubic", "PMUsePhysics"}

func (m PredictionMode_e) String() string {
	if m < 0 || int(m) >= len(predictionModeNames) {
		return "PMNone"
	}
	return predictionModeNames[m]
}

// ParsePredictionMode resolves a prediction mode by its textual name,
// matching the dialect's predictionModeEnum lookup.
func ParsePredictionMode(s string) (PredictionMode_e, bool) {
	for i, name := range predictionModeNames {
		if name == s {
			return PredictionMode_e(i), true
		}
	}
	return PMNone, false
}

// ObjectTemplateChild is one entry in a template's scene graph: a
// reference to a child template plus the local transform applied to it.
type ObjectTemplateChild struct {
	Template    TemplateRef
	SetPosition vec3.Vec3
	SetRotation vec3.Vec3
}

// ObjectTemplate is a declarative blueprint for a class of game entities.
// Name is unique case-insensitively within the owning registry; ID is
// monotonic and assigned at creation.
type ObjectTemplate struct {
	ID   int
	Type string
	Name string

	Geometry        GeometryRef
	NetworkableInfo NetworkableRef

	MaxHitPoints float64
	MinRotation  vec3.Vec3
	MaxRotation  vec3.Vec3
	MaxSpeed     vec3.Vec3
	Acceleration vec3.Vec3

	InputToYaw     int
	InputToPitch   int
	InputToRoll    int
	AutomaticReset bool

	MagSize       int
	NumOfMag      int
	NumberOfGears int
	GearUp        float64
	GearDown      float64

	TriggerRadius    int
	LinePoints       []vec3.Vec3
	ControlPointName string
	Team             string
	UnableToChangeTeam string

	MinSpawnDelay         string
	MaxSpawnDelay         string
	SpawnDelayAtStart     string
	TimeToLive            string
	Distance              string
	DamageWhenLost        string
	MaxNrOfObjectSpawned  string
	TeamOnVehicle         string

	// SpawnTemplates maps a numbered slot to a child object-template name,
	// used by object-spawner templates.
	SpawnTemplates map[int]string

	// Children forms the template's scene graph. ActiveChild is the index
	// of the child that position/rotation commands mutate; -1 means none.
	Children    []*ObjectTemplateChild
	ActiveChild int

	// Parents is populated by the linking pass: every template whose
	// children reference this one.
	Parents []*ObjectTemplate
}

// NewObjectTemplate builds a template with the defaults the dialect
// assumes before any setters run.
func NewObjectTemplate(kind, name string, id int) *ObjectTemplate {
	return &ObjectTemplate{
		ID:           id,
		Type:         kind,
		Name:         name,
		MaxHitPoints: 10,
		MaxSpeed:     vec3.Splat(1),
		Acceleration: vec3.Splat(0.1),
		InputToYaw:   55,
		InputToPitch: 55,
		InputToRoll:  55,
		MagSize:      30,
		NumOfMag:     3,
		GearUp:       0.7,
		GearDown:     0.3,
		ActiveChild:  -1,
	}
}

// AddChild appends a new child referencing the given template and makes it
// the active child.
func (t *ObjectTemplate) AddChild(ref TemplateRef) {
	t.Children = append(t.Children, &ObjectTemplateChild{Template: ref})
	t.ActiveChild = len(t.Children) - 1
}

// SetActiveChild moves the active-child cursor to idx, if it exists.
func (t *ObjectTemplate) SetActiveChild(idx int) bool {
	if idx < 0 || idx >= len(t.Children) {
		return false
	}
	t.ActiveChild = idx
	return true
}

// RemoveChild deletes the child at idx, shifting subsequent indices down.
func (t *ObjectTemplate) RemoveChild(idx int) bool {
	if idx < 0 || idx >= len(t.Children) {
		return false
	}
	t.Children = append(t.Children[:idx], t.Children[idx+1:]...)
	if t.ActiveChild >= len(t.Children) {
		t.ActiveChild = len(t.Children) - 1
	}
	return true
}

// ActiveChildEntry returns the child the active-child cursor points to.
func (t *ObjectTemplate) ActiveChildEntry() (*ObjectTemplateChild, bool) {
	if t.ActiveChild < 0 || t.ActiveChild >= len(t.Children) {
		return nil, false
	}
	return t.Children[t.ActiveChild], true
}

// GeometryTemplate binds a mesh file and its scale/world parameters to a
// name.
type GeometryTemplate struct {
	Type string
	Name string

	Scale      vec3.Vec3
	File       string
	MaterialSize int
	WorldSize    int
	YScale       float64
	WaterLevel   float64
}

// NewGeometryTemplate builds a geometry template with the dialect's
// defaults.
func NewGeometryTemplate(kind, name string) *GeometryTemplate {
	return &GeometryTemplate{
		Type:         kind,
		Name:         name,
		Scale:        vec3.Splat(1),
		MaterialSize: 256,
		WorldSize:    1024,
		YScale:       1,
	}
}

// NetworkableInfo is replication-priority metadata attached to a template.
type NetworkableInfo struct {
	Name                string
	IsUnique            bool
	BasePriority        float64
	PredictionMode      PredictionMode_e
	ForceNetworkableId  bool
}

// NewNetworkableInfo builds a networkable-info record with the dialect's
// defaults.
func NewNetworkableInfo(name string) *NetworkableInfo {
	return &NetworkableInfo{
		Name:         name,
		BasePriority: 1.0,
	}
}

// ObjectInstance is a concrete placement of a template in the world.
type ObjectInstance struct {
	ID       int
	Template TemplateRef
	Name     string

	AbsolutePosition vec3.Vec3
	Rotation         vec3.Vec3
	GeometryScale    vec3.Vec3

	OSId    string
	HasOSId bool

	Team    string
	HasTeam bool
}

// NewObjectInstance builds an instance with the dialect's defaults.
func NewObjectInstance(id int, template TemplateRef) *ObjectInstance {
	return &ObjectInstance{
		ID:            id,
		Template:      template,
		GeometryScale: vec3.Splat(1),
	}
}

// GameConfig holds the level-wide game.* settings.
type GameConfig struct {
	MapId                          string
	HasActiveCombatArea            bool
	ActiveCombatArea               [4]int
	CustomGameName                 string
	CustomGameVersion              string
	MultiplayerBriefingObjectives  string
	ObjectiveBriefing              string
	ModPaths                       []string
}
