package entity

import (
	"errors"
	"fmt"
)

// ButtonID is the stable identifier of a sidebar button.
type ButtonID string

// Built-in button identifiers.
const (
	ButtonPin      ButtonID = "pin"
	ButtonSettings ButtonID = "settings"
)

// ButtonKind distinguishes stateful toggle buttons from one-shot actions.
type ButtonKind int

const (
	ButtonAction ButtonKind = iota
	ButtonToggle
)

var (
	ErrButtonNotFound = errors.New("button not found")
	ErrNotToggle      = errors.New("button is not a toggle")
	ErrDuplicateID    = errors.New("duplicate button id")
)

// SidebarButton describes one button on the sidebar.
// Action buttons only use OnIcon.
type SidebarButton struct {
	ID      ButtonID
	Kind    ButtonKind
	Label   string
	OnIcon  string
	OffIcon string
	Active  bool
	Command string
}

// Icon returns the icon matching the current state.
func (b SidebarButton) Icon() string {
	if b.Kind == ButtonToggle && !b.Active {
		return b.OffIcon
	}
	return b.OnIcon
}

// ButtonSet keeps buttons in display order, looked up by id.
type ButtonSet struct {
	order []ButtonID
	byID  map[ButtonID]*SidebarButton
}

// NewButtonSet creates an empty set.
func NewButtonSet() *ButtonSet {
	return &ButtonSet{byID: make(map[ButtonID]*SidebarButton)}
}

// Add appends a button. Ids must be unique.
func (s *ButtonSet) Add(b SidebarButton) error {
	if _, exists := s.byID[b.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateID, b.ID)
	}
	s.order = append(s.order, b.ID)
	s.byID[b.ID] = &b
	return nil
}

// Get returns a copy of the button with the given id.
func (s *ButtonSet) Get(id ButtonID) (SidebarButton, bool) {
	b, ok := s.byID[id]
	if !ok {
		return SidebarButton{}, false
	}
	return *b, true
}

// Toggle flips a toggle button and returns its new state.
func (s *ButtonSet) Toggle(id ButtonID) (SidebarButton, error) {
	b, ok := s.byID[id]
	if !ok {
		return SidebarButton{}, fmt.Errorf("%w: %s", ErrButtonNotFound, id)
	}
	if b.Kind != ButtonToggle {
		return SidebarButton{}, fmt.Errorf("%w: %s", ErrNotToggle, id)
	}
	b.Active = !b.Active
	return *b, nil
}

// Buttons returns copies of all buttons in display order.
func (s *ButtonSet) Buttons() []SidebarButton {
	out := make([]SidebarButton, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.byID[id])
	}
	return out
}

// Len returns the number of buttons.
func (s *ButtonSet) Len() int {
	return len(s.order)
}
