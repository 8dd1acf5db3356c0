// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package domain

// TemplateRef is a reference to an ObjectTemplate that starts out as the
// raw name typed in a script and is replaced with a direct handle by the
// linking pass. An unresolved reference (one the linker couldn't find a
// matching template for) keeps its original string so callers can still
// report it in diagnostics.
type TemplateRef struct {
	raw    string
	handle *ObjectTemplate
}

// UnresolvedTemplate builds a TemplateRef that hasn't been linked yet.
func UnresolvedTemplate(name string) TemplateRef { return TemplateRef{raw: name} }

// ResolvedTemplate builds a TemplateRef that is already linked.
func ResolvedTemplate(t *ObjectTemplate) TemplateRef { return TemplateRef{handle: t} }

// IsLinked reports whether the reference has been resolved to a handle.
func (r TemplateRef) IsLinked() bool { return r.handle != nil }

// Handle returns the resolved template, or nil if unresolved.
func (r TemplateRef) Handle() *ObjectTemplate { return r.handle }

// Raw returns the original string for an unresolved reference (or the
// empty string once resolved; use Name for a reference's display name
// regardless of link state).
func (r TemplateRef) Raw() string { return r.raw }

// Name returns the template's name whether or not the reference has been
// linked yet.
func (r TemplateRef) Name() string {
	if r.handle != nil {
		return r.handle.Name
	}
	return r.raw
}

// IsZero reports whether the reference was never set to anything.
func (r TemplateRef) IsZero() bool { return r.handle == nil && r.raw == "" }

// GeometryRef is a reference to a GeometryTemplate, same shape as
// TemplateRef.
type GeometryRef struct {
	raw    string
	handle *GeometryTemplate
}

func UnresolvedGeometry(name string) GeometryRef       { return GeometryRef{raw: name} }
func ResolvedGeometry(g *GeometryTemplate) GeometryRef { return GeometryRef{handle: g} }

func (r GeometryRef) IsLinked() bool            { return r.handle != nil }
func (r GeometryRef) Handle() *GeometryTemplate { return r.handle }
func (r GeometryRef) Raw() string               { return r.raw }
func (r GeometryRef) Name() string {
	if r.handle != nil {
		return r.handle.Name
	}
	return r.raw
}
func (r GeometryRef) IsZero() bool { return r.handle == nil && r.raw == "" }

// NetworkableRef is a reference to a NetworkableInfo, same shape as
// TemplateRef.
type NetworkableRef struct {
	raw    string
	handle *NetworkableInfo
}

func UnresolvedNetworkable(name string) NetworkableRef      { return NetworkableRef{raw: name} }
func ResolvedNetworkable(n *NetworkableInfo) NetworkableRef { return NetworkableRef{handle: n} }

func (r NetworkableRef) IsLinked() bool           { return r.handle != nil }
func (r NetworkableRef) Handle() *NetworkableInfo { return r.handle }
func (r NetworkableRef) Raw() string              { return r.raw }
func (r NetworkableRef) Name() string {
	if r.handle != nil {
		return r.handle.Name
	}
	return r.raw
}
func (r NetworkableRef) IsZero() bool { return r.handle == nil && r.raw == "" }
