// Package port defines the boundaries between the docking core and the
// window system, configuration and persistence around it.
package port

import (
	"context"

	"github.com/filein/sidedock/internal/domain/drag"
	"github.com/filein/sidedock/internal/domain/geometry"
)

// HostWindow exposes the geometry of the window the sidebar attaches to.
type HostWindow interface {
	// CurrentHostRect returns the host rectangle. ok is false when the host
	// is gone or not yet mapped.
	CurrentHostRect(ctx context.Context) (rect geometry.Rect, ok bool)
}

// ScreenBounds exposes the screen area available to the panel.
type ScreenBounds interface {
	AvailableRect(ctx context.Context) geometry.Rect
}

// PanelSurface is the on-screen panel that the controller positions.
type PanelSurface interface {
	MoveTo(ctx context.Context, pos geometry.Point)
}

// PointerKind is the phase of a pointer event.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	default:
		return "unknown"
	}
}

// PointerEvent is a pointer notification in global screen coordinates.
type PointerEvent struct {
	Kind     PointerKind
	Position geometry.Point
	Button   drag.Button
}

// HostWindowFunc adapts a function to HostWindow.
type HostWindowFunc func(ctx context.Context) (geometry.Rect, bool)

func (f HostWindowFunc) CurrentHostRect(ctx context.Context) (geometry.Rect, bool) {
	return f(ctx)
}

// StaticScreen is a ScreenBounds with a fixed rectangle.
type StaticScreen geometry.Rect

func (s StaticScreen) AvailableRect(context.Context) geometry.Rect {
	return geometry.Rect(s)
}
