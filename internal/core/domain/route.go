// Package domain contains the core types for the dynamic route registry.
package domain

import "strings"

// PathSeparator is the canonical separator used in route and component paths.
const PathSeparator = "/"

// Route is a logical page node: a path, a unique name, a reference to the
// component module that renders it, metadata, and an ordered list of children.
type Route struct {
	// Name uniquely identifies the route within the router.
	Name string `json:"name" yaml:"name"`
	// Path is the navigation path. Top-level paths are absolute, child
	// paths are relative to their parent.
	Path string `json:"path" yaml:"path"`
	// Component is the module path resolved by the module loader.
	Component string `json:"component" yaml:"component"`
	// Meta carries the optional metadata variants attached to the route.
	Meta Meta `json:"meta,omitempty" yaml:"meta,omitempty"`
	// Children holds nested routes in declaration order.
	Children []Route `json:"children,omitempty" yaml:"children,omitempty"`
}

// Meta groups the metadata variants a route may carry. Each variant is
// optional; consumers switch on the populated variants exhaustively rather
// than probing an untyped bag.
type Meta struct {
	Nav        *NavMeta        `json:"nav,omitempty" yaml:"nav,omitempty"`
	Permission *PermissionMeta `json:"permission,omitempty" yaml:"permission,omitempty"`
	Cache      *CacheMeta      `json:"cache,omitempty" yaml:"cache,omitempty"`
}

// NavMeta describes how a route appears in navigation.
type NavMeta struct {
	// Order controls menu position among siblings.
	Order int `json:"order" yaml:"order"`
	// Icon names the icon shown next to the route title.
	Icon string `json:"icon,omitempty" yaml:"icon,omitempty"`
	// Hidden removes the route from menus without unregistering it.
	Hidden bool `json:"hidden,omitempty" yaml:"hidden,omitempty"`
}

// PermissionMeta restricts who may navigate to the route.
type PermissionMeta struct {
	Roles []string `json:"roles,omitempty" yaml:"roles,omitempty"`
}

// CacheMeta controls component retention for the route.
type CacheMeta struct {
	// KeepAlive marks the resolved component as retainable across
	// navigations.
	KeepAlive bool `json:"keepAlive" yaml:"keepAlive"`
}

// RootRouteName is the synthesized name for a route whose path carries no
// segments. Without it a bare "/" route would register under the empty name
// and collide with every later nameless route.
const RootRouteName = "root"

// SynthesizeName derives a route name from a path: the leading separator is
// stripped and remaining separators are replaced with dashes, so "/device/list"
// becomes "device-list". A separator-only or empty path yields RootRouteName.
func SynthesizeName(path string) string {
	trimmed := strings.TrimPrefix(path, PathSeparator)
	if trimmed == "" {
		return RootRouteName
	}
	return strings.ReplaceAll(trimmed, PathSeparator, "-")
}

// Fix describes a correction applied to a malformed route descriptor.
type Fix struct {
	RouteName string
	RoutePath string
	Reason    string
}

// ValidateAndFix normalizes a route descriptor in place and returns the list
// of corrections applied. Top-level paths must start with the separator and
// child paths must be relative; violations are corrected rather than
// rejected. Routes without a name get one synthesized from their path.
func ValidateAndFix(r *Route) []Fix {
	var fixes []Fix

	if !strings.HasPrefix(r.Path, PathSeparator) {
		r.Path = PathSeparator + r.Path
		fixes = append(fixes, Fix{
			RouteName: r.Name,
			RoutePath: r.Path,
			Reason:    "top-level path missing leading separator",
		})
	}
	if r.Name == "" {
		r.Name = SynthesizeName(r.Path)
		fixes = append(fixes, Fix{
			RouteName: r.Name,
			RoutePath: r.Path,
			Reason:    "missing name synthesized from path",
		})
	}

	fixes = append(fixes, fixChildren(r.Children)...)
	return fixes
}

func fixChildren(children []Route) []Fix {
	var fixes []Fix
	for i := range children {
		c := &children[i]
		// The root child path is the only absolute child allowed.
		if strings.HasPrefix(c.Path, PathSeparator) && c.Path != PathSeparator {
			c.Path = strings.TrimPrefix(c.Path, PathSeparator)
			fixes = append(fixes, Fix{
				RouteName: c.Name,
				RoutePath: c.Path,
				Reason:    "child path must be relative",
			})
		}
		if c.Name == "" {
			c.Name = SynthesizeName(c.Path)
			fixes = append(fixes, Fix{
				RouteName: c.Name,
				RoutePath: c.Path,
				Reason:    "missing name synthesized from path",
			})
		}
		fixes = append(fixes, fixChildren(c.Children)...)
	}
	return fixes
}

// Walk visits the route and all of its descendants depth-first in
// declaration order.
func (r Route) Walk(visit func(Route)) {
	visit(r)
	for _, c := range r.Children {
		c.Walk(visit)
	}
}

// ParentPath returns the path with its last segment removed, or "" when the
// path has no parent segment. "device/baseinfo" yields "device".
func ParentPath(path string) string {
	trimmed := strings.TrimPrefix(path, PathSeparator)
	idx := strings.LastIndex(trimmed, PathSeparator)
	if idx <= 0 {
		return ""
	}
	return trimmed[:idx]
}
