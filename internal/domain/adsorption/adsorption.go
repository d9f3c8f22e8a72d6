// Package adsorption decides whether a dragged panel snaps onto an edge of
// the host window and maps dock states to and from screen positions.
package adsorption

import (
	"github.com/filein/sidedock/internal/domain/entity"
	"github.com/filein/sidedock/internal/domain/geometry"
)

// DefaultThreshold is the snap distance used when none is configured.
const DefaultThreshold = 20

// Result is the outcome of one adsorption evaluation.
type Result struct {
	Position geometry.Point
	Edge     entity.Edge
	// Distance to the nearest edge; -1 when adsorption was skipped.
	Distance int
}

// Snapped reports whether the candidate was pulled onto an edge.
func (r Result) Snapped() bool {
	return r.Edge != entity.EdgeNone
}

// Distances returns the panel-to-host distance for each edge, indexed in
// entity.Edges order. Each distance assumes the panel sits just outside the
// host on that side.
func Distances(candidate geometry.Point, panel geometry.Size, host geometry.Rect) [4]int {
	return [4]int{
		geometry.Distance(candidate.X+panel.Width, host.Left()),
		geometry.Distance(host.Right(), candidate.X),
		geometry.Distance(candidate.Y+panel.Height, host.Top()),
		geometry.Distance(host.Bottom(), candidate.Y),
	}
}

// Evaluate classifies a candidate position against the host rectangle.
// The nearest edge wins; ties go to the first of left, right, top, bottom.
// A snap happens only when that distance is strictly below threshold.
func Evaluate(candidate geometry.Point, panel geometry.Size, host geometry.Rect, threshold int) Result {
	if host.IsEmpty() {
		return Result{Position: candidate, Edge: entity.EdgeNone, Distance: -1}
	}

	dist := Distances(candidate, panel, host)
	best := 0
	for i := 1; i < len(dist); i++ {
		if dist[i] < dist[best] {
			best = i
		}
	}

	if dist[best] >= threshold {
		return Result{Position: candidate, Edge: entity.EdgeNone, Distance: dist[best]}
	}

	edge := entity.Edges[best]
	return Result{
		Position: Flush(edge, candidate, panel, host),
		Edge:     edge,
		Distance: dist[best],
	}
}

// Flush places the panel against edge, keeping the other axis of pos.
func Flush(edge entity.Edge, pos geometry.Point, panel geometry.Size, host geometry.Rect) geometry.Point {
	switch edge {
	case entity.EdgeLeft:
		pos.X = host.Left() - panel.Width
	case entity.EdgeRight:
		pos.X = host.Right()
	case entity.EdgeTop:
		pos.Y = host.Top() - panel.Height
	case entity.EdgeBottom:
		pos.Y = host.Bottom()
	}
	return pos
}

// Corner returns the host reference corner that offsets for edge are relative to.
func Corner(edge entity.Edge, host geometry.Rect) geometry.Point {
	switch edge {
	case entity.EdgeRight:
		return host.TopRight()
	case entity.EdgeBottom:
		return host.BottomLeft()
	default:
		return host.TopLeft()
	}
}

// StateFor builds the dock state committed for a final position.
func StateFor(edge entity.Edge, pos geometry.Point, host geometry.Rect) entity.DockState {
	if edge == entity.EdgeNone {
		return entity.Floating()
	}
	return entity.DockedAt(edge, pos.Sub(Corner(edge, host)))
}

// PositionFor derives the panel position of a docked state for host.
// ok is false for floating states and empty hosts.
func PositionFor(state entity.DockState, host geometry.Rect) (geometry.Point, bool) {
	if state.IsFloating() || host.IsEmpty() {
		return geometry.Point{}, false
	}
	return Corner(state.Edge, host).Add(state.Offset), true
}
