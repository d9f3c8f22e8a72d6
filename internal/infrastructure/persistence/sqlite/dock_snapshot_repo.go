package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/filein/sidedock/internal/application/port"
	"github.com/filein/sidedock/internal/domain/entity"
	"github.com/filein/sidedock/internal/domain/geometry"
	"github.com/filein/sidedock/internal/logging"
)

const snapshotColumns = `id, edge, offset_x, offset_y, pos_x, pos_y, has_host,
	host_x, host_y, host_width, host_height, created_at`

type dockSnapshotRepo struct {
	db *sql.DB
}

// NewDockSnapshotRepository creates a new dock snapshot repository.
func NewDockSnapshotRepository(db *sql.DB) port.DockSnapshotStore {
	return &dockSnapshotRepo{db: db}
}

// Save inserts a snapshot and assigns its ID.
func (r *dockSnapshotRepo) Save(ctx context.Context, snapshot *entity.DockSnapshot) error {
	if snapshot == nil {
		return errors.New("dock snapshot cannot be nil")
	}
	if snapshot.CreatedAt.IsZero() {
		snapshot.CreatedAt = time.Now()
	}

	log := logging.FromContext(ctx)
	log.Debug().Str("edge", snapshot.State.Edge.String()).Str("position", snapshot.Position.String()).Msg("saving dock snapshot")

	offset := snapshot.State.Offset
	if snapshot.State.IsFloating() {
		offset = geometry.Point{}
	}

	res, err := r.db.ExecContext(ctx, `INSERT INTO dock_snapshots
		(edge, offset_x, offset_y, pos_x, pos_y, has_host, host_x, host_y, host_width, host_height, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		snapshot.State.Edge.String(),
		offset.X, offset.Y,
		snapshot.Position.X, snapshot.Position.Y,
		snapshot.HasHost,
		snapshot.Host.X, snapshot.Host.Y, snapshot.Host.Width, snapshot.Host.Height,
		snapshot.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("insert dock snapshot: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("read dock snapshot id: %w", err)
	}
	snapshot.ID = id
	log.Debug().Int64("id", id).Msg("dock snapshot saved")
	return nil
}

// Latest returns the most recent snapshot or entity.ErrSnapshotNotFound.
func (r *dockSnapshotRepo) Latest(ctx context.Context) (*entity.DockSnapshot, error) {
	logging.FromContext(ctx).Debug().Msg("loading latest dock snapshot")

	row := r.db.QueryRowContext(ctx, `SELECT `+snapshotColumns+` FROM dock_snapshots ORDER BY id DESC LIMIT 1`)
	snap, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query latest dock snapshot: %w", err)
	}
	return snap, nil
}

// List returns up to limit snapshots, newest first. A non-positive limit
// returns all of them.
func (r *dockSnapshotRepo) List(ctx context.Context, limit int) ([]*entity.DockSnapshot, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	logging.FromContext(ctx).Debug().Int("limit", limit).Msg("listing dock snapshots")

	rows, err := r.db.QueryContext(ctx, `SELECT `+snapshotColumns+` FROM dock_snapshots ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query dock snapshots: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []*entity.DockSnapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan dock snapshot: %w", err)
		}
		out = append(out, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate dock snapshots: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row rowScanner) (*entity.DockSnapshot, error) {
	var (
		snap      entity.DockSnapshot
		edge      string
		offset    geometry.Point
		createdAt int64
	)
	if err := row.Scan(
		&snap.ID, &edge, &offset.X, &offset.Y,
		&snap.Position.X, &snap.Position.Y, &snap.HasHost,
		&snap.Host.X, &snap.Host.Y, &snap.Host.Width, &snap.Host.Height,
		&createdAt,
	); err != nil {
		return nil, err
	}

	parsed, _ := entity.ParseEdge(edge)
	snap.State = entity.DockedAt(parsed, offset)
	snap.CreatedAt = time.UnixMilli(createdAt)
	return &snap, nil
}

// LazyDockSnapshotRepository defers opening the database until first use.
type LazyDockSnapshotRepository struct {
	provider port.DatabaseProvider
	repo     port.DockSnapshotStore
	once     sync.Once
	initErr  error
}

// NewLazyDockSnapshotRepository creates a lazy-loading snapshot repository.
func NewLazyDockSnapshotRepository(provider port.DatabaseProvider) port.DockSnapshotStore {
	return &LazyDockSnapshotRepository{provider: provider}
}

func (r *LazyDockSnapshotRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewDockSnapshotRepository(db)
	})
	return r.initErr
}

func (r *LazyDockSnapshotRepository) Save(ctx context.Context, snapshot *entity.DockSnapshot) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Save(ctx, snapshot)
}

func (r *LazyDockSnapshotRepository) Latest(ctx context.Context) (*entity.DockSnapshot, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.Latest(ctx)
}

func (r *LazyDockSnapshotRepository) List(ctx context.Context, limit int) ([]*entity.DockSnapshot, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.List(ctx, limit)
}
