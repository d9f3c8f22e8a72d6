package entity

import (
	"errors"
	"time"

	"github.com/filein/sidedock/internal/domain/geometry"
)

// DockSnapshot is a persisted record of a committed dock state.
type DockSnapshot struct {
	ID        int64
	State     DockState
	Position  geometry.Point
	Host      geometry.Rect
	HasHost   bool
	CreatedAt time.Time
}

// NewDockSnapshot captures the state committed at the end of a drag.
func NewDockSnapshot(state DockState, pos geometry.Point, host geometry.Rect, hasHost bool) *DockSnapshot {
	return &DockSnapshot{
		State:     state,
		Position:  pos,
		Host:      host,
		HasHost:   hasHost,
		CreatedAt: time.Now(),
	}
}

// ErrSnapshotNotFound is returned when no dock snapshot has been recorded.
var ErrSnapshotNotFound = errors.New("dock snapshot not found")
