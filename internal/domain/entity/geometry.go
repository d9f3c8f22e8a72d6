// Package entity defines domain entities for the sidebar.
package entity

import (
	"strings"

	"github.com/filein/sidedock/internal/domain/geometry"
)

// Edge identifies which side of the host window the panel is attached to.
type Edge int

const (
	EdgeNone Edge = iota
	EdgeLeft
	EdgeRight
	EdgeTop
	EdgeBottom
)

// Edges lists the attachable edges in tie-break order.
var Edges = [...]Edge{EdgeLeft, EdgeRight, EdgeTop, EdgeBottom}

// String returns the config representation ("" for EdgeNone).
func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	default:
		return ""
	}
}

// ParseEdge converts the config representation into an Edge.
// Unknown values map to EdgeNone with ok=false; "" is a valid EdgeNone.
func ParseEdge(s string) (Edge, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return EdgeNone, true
	case "left":
		return EdgeLeft, true
	case "right":
		return EdgeRight, true
	case "top":
		return EdgeTop, true
	case "bottom":
		return EdgeBottom, true
	default:
		return EdgeNone, false
	}
}

// DockState records where the panel is attached.
// When Edge is EdgeNone the panel floats and Offset is ignored; otherwise
// Offset is the panel's top-left relative to the host corner for Edge.
type DockState struct {
	Edge   Edge
	Offset geometry.Point
}

// Floating returns a detached dock state.
func Floating() DockState {
	return DockState{Edge: EdgeNone}
}

// DockedAt returns a dock state attached to edge with the given offset.
func DockedAt(edge Edge, offset geometry.Point) DockState {
	if edge == EdgeNone {
		return Floating()
	}
	return DockState{Edge: edge, Offset: offset}
}

// IsFloating reports whether the panel position is authoritative.
func (s DockState) IsFloating() bool {
	return s.Edge == EdgeNone
}
