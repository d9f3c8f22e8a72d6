package model

import (
	"context"
	"sync"

	"github.com/filein/sidedock/internal/domain/geometry"
)

const (
	minHostWidth  = 6
	minHostHeight = 3
)

// Host is the movable host window of the playground, in terminal cells.
type Host struct {
	mu   sync.RWMutex
	rect geometry.Rect
}

// NewHost creates a host window at rect.
func NewHost(rect geometry.Rect) *Host {
	return &Host{rect: rect}
}

// CurrentHostRect implements port.HostWindow. The playground host is
// always present.
func (h *Host) CurrentHostRect(context.Context) (geometry.Rect, bool) {
	return h.Rect(), true
}

// Rect returns the host rectangle.
func (h *Host) Rect() geometry.Rect {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.rect
}

// Move translates the host.
func (h *Host) Move(dx, dy int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.rect = h.rect.Translate(geometry.Point{X: dx, Y: dy})
}

// Resize grows or shrinks the host, keeping its top-left corner.
func (h *Host) Resize(dw, dh int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.rect.Width = max(h.rect.Width+dw, minHostWidth)
	h.rect.Height = max(h.rect.Height+dh, minHostHeight)
}

// Screen is the terminal area available to the panel.
type Screen struct {
	mu   sync.RWMutex
	rect geometry.Rect
}

// NewScreen creates a screen with the given bounds.
func NewScreen(rect geometry.Rect) *Screen {
	return &Screen{rect: rect}
}

// AvailableRect implements port.ScreenBounds.
func (s *Screen) AvailableRect(context.Context) geometry.Rect {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rect
}

// Set replaces the bounds, e.g. after a terminal resize.
func (s *Screen) Set(rect geometry.Rect) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rect = rect
}
