// Package drag implements the pointer-driven drag session state machine.
package drag

import (
	"github.com/filein/sidedock/internal/domain/entity"
	"github.com/filein/sidedock/internal/domain/geometry"
)

// DefaultControlZoneWidth is the width reserved for embedded buttons.
const DefaultControlZoneWidth = 20

// State is the drag lifecycle state.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Button identifies a pointer button.
type Button int

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonMiddle
	ButtonSecondary
)

// ControlZone is a strip along one panel edge that never starts a drag.
// Side EdgeNone or a non-positive width reserves nothing.
type ControlZone struct {
	Side  entity.Edge
	Width int
}

// DefaultControlZone reserves a strip on the right-hand side of the panel.
func DefaultControlZone() ControlZone {
	return ControlZone{Side: entity.EdgeRight, Width: DefaultControlZoneWidth}
}

// Rect returns the zone in screen coordinates for a panel rectangle.
func (z ControlZone) Rect(panel geometry.Rect) geometry.Rect {
	if z.Width <= 0 {
		return geometry.Rect{}
	}
	w := min(z.Width, panel.Width)
	h := min(z.Width, panel.Height)
	switch z.Side {
	case entity.EdgeLeft:
		return geometry.NewRect(panel.X, panel.Y, w, panel.Height)
	case entity.EdgeRight:
		return geometry.NewRect(panel.Right()-w, panel.Y, w, panel.Height)
	case entity.EdgeTop:
		return geometry.NewRect(panel.X, panel.Y, panel.Width, h)
	case entity.EdgeBottom:
		return geometry.NewRect(panel.X, panel.Bottom()-h, panel.Width, h)
	default:
		return geometry.Rect{}
	}
}

// Session is the data captured at pointer-down.
type Session struct {
	StartPointer geometry.Point
	StartPanel   geometry.Point
}

// Candidate returns the panel position for the current pointer.
func (s Session) Candidate(pointer geometry.Point) geometry.Point {
	return s.StartPanel.Add(pointer.Sub(s.StartPointer))
}

// Machine tracks a single drag session. It is not safe for concurrent use.
type Machine struct {
	zone    ControlZone
	session *Session
}

// NewMachine creates an idle machine.
func NewMachine(zone ControlZone) *Machine {
	return &Machine{zone: zone}
}

// State returns the current lifecycle state.
func (m *Machine) State() State {
	if m.session != nil {
		return Dragging
	}
	return Idle
}

// Session returns the active session, if any.
func (m *Machine) Session() (Session, bool) {
	if m.session == nil {
		return Session{}, false
	}
	return *m.session, true
}

// ControlZone returns the reserved strip configuration.
func (m *Machine) ControlZone() ControlZone {
	return m.zone
}

// SetControlZone replaces the reserved strip configuration.
func (m *Machine) SetControlZone(zone ControlZone) {
	m.zone = zone
}

// Draggable reports whether a press at pointer may start a drag of panel.
func (m *Machine) Draggable(pointer geometry.Point, panel geometry.Rect) bool {
	if !panel.Contains(pointer) {
		return false
	}
	return !m.zone.Rect(panel).Contains(pointer)
}

// Press handles pointer-down. It returns true when a new session started.
// Presses while already dragging are ignored.
func (m *Machine) Press(pointer geometry.Point, button Button, panel geometry.Rect) bool {
	if m.session != nil || button != ButtonPrimary {
		return false
	}
	if !m.Draggable(pointer, panel) {
		return false
	}
	m.session = &Session{StartPointer: pointer, StartPanel: panel.TopLeft()}
	return true
}

// Move handles pointer-move and returns the unclamped candidate position.
// ok is false when idle.
func (m *Machine) Move(pointer geometry.Point) (geometry.Point, bool) {
	if m.session == nil {
		return geometry.Point{}, false
	}
	return m.session.Candidate(pointer), true
}

// Release handles pointer-up of button and destroys the session.
// Releases of other buttons and releases while idle return ok=false.
func (m *Machine) Release(button Button) (Session, bool) {
	if m.session == nil || button != ButtonPrimary {
		return Session{}, false
	}
	s := *m.session
	m.session = nil
	return s, true
}
