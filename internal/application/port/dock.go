package port

import (
	"context"

	"github.com/filein/sidedock/internal/domain/entity"
	"github.com/filein/sidedock/internal/domain/geometry"
)

// DockChange describes a committed drag release.
type DockChange struct {
	State    entity.DockState
	Position geometry.Point
	Host     geometry.Rect
	HasHost  bool
}

// RelativePosition returns the panel position relative to the host origin,
// or the absolute position when no host is known.
func (c DockChange) RelativePosition() geometry.Point {
	if !c.HasHost {
		return c.Position
	}
	return c.Position.Sub(c.Host.TopLeft())
}

// DockStateListener is notified after every committed drag release.
type DockStateListener interface {
	OnDockStateChanged(ctx context.Context, change DockChange)
}

// DockStateListenerFunc adapts a function to DockStateListener.
type DockStateListenerFunc func(ctx context.Context, change DockChange)

func (f DockStateListenerFunc) OnDockStateChanged(ctx context.Context, change DockChange) {
	f(ctx, change)
}

// DockConfigWriter is the single owner that persists dock values back into
// the configuration record.
type DockConfigWriter interface {
	SaveDockState(ctx context.Context, change DockChange) error
}

// DockSnapshotStore records committed dock states.
type DockSnapshotStore interface {
	Save(ctx context.Context, snapshot *entity.DockSnapshot) error
	Latest(ctx context.Context) (*entity.DockSnapshot, error)
	List(ctx context.Context, limit int) ([]*entity.DockSnapshot, error)
}
