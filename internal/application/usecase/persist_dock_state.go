package usecase

import (
	"context"

	"github.com/filein/sidedock/internal/application/port"
	"github.com/filein/sidedock/internal/domain/entity"
	"github.com/filein/sidedock/internal/logging"
)

// PersistDockStateUseCase writes committed dock states back to the
// configuration owner and, optionally, to the snapshot store.
type PersistDockStateUseCase struct {
	writer    port.DockConfigWriter
	snapshots port.DockSnapshotStore
}

// NewPersistDockStateUseCase creates the use case. Either sink may be nil.
func NewPersistDockStateUseCase(writer port.DockConfigWriter, snapshots port.DockSnapshotStore) *PersistDockStateUseCase {
	return &PersistDockStateUseCase{
		writer:    writer,
		snapshots: snapshots,
	}
}

// OnDockStateChanged implements port.DockStateListener.
// Failures are logged and never reach the panel controller.
func (uc *PersistDockStateUseCase) OnDockStateChanged(ctx context.Context, change port.DockChange) {
	log := logging.FromContext(ctx)

	if uc.writer != nil {
		if err := uc.writer.SaveDockState(ctx, change); err != nil {
			log.Warn().Err(err).Msg("failed to write dock state to config")
		}
	}

	if uc.snapshots != nil {
		snap := entity.NewDockSnapshot(change.State, change.Position, change.Host, change.HasHost)
		if err := uc.snapshots.Save(ctx, snap); err != nil {
			log.Warn().Err(err).Msg("failed to record dock snapshot")
			return
		}
		log.Debug().Int64("snapshot_id", snap.ID).Str("edge", change.State.Edge.String()).Msg("dock snapshot recorded")
	}
}

// LatestSnapshot returns the most recent snapshot, or nil without a store.
func (uc *PersistDockStateUseCase) LatestSnapshot(ctx context.Context) (*entity.DockSnapshot, error) {
	if uc.snapshots == nil {
		return nil, nil
	}
	return uc.snapshots.Latest(ctx)
}

var _ port.DockStateListener = (*PersistDockStateUseCase)(nil)
