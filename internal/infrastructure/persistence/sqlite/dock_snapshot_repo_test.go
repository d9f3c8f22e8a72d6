package sqlite_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/filein/sidedock/internal/domain/entity"
	"github.com/filein/sidedock/internal/domain/geometry"
	"github.com/filein/sidedock/internal/infrastructure/persistence/sqlite"
	"github.com/filein/sidedock/internal/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	return logging.WithContext(context.Background(), logging.Nop())
}

func TestDockSnapshotRepository_SaveAndLatest(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "sidedock.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewDockSnapshotRepository(db)

	_, err = repo.Latest(ctx)
	require.ErrorIs(t, err, entity.ErrSnapshotNotFound)

	createdAt := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	first := &entity.DockSnapshot{
		State:     entity.Floating(),
		Position:  geometry.Point{X: 110, Y: 300},
		Host:      geometry.NewRect(100, 100, 400, 400),
		HasHost:   true,
		CreatedAt: createdAt,
	}
	require.NoError(t, repo.Save(ctx, first))
	assert.NotZero(t, first.ID)

	second := &entity.DockSnapshot{
		State:     entity.DockedAt(entity.EdgeRight, geometry.Point{X: 0, Y: 20}),
		Position:  geometry.Point{X: 500, Y: 120},
		Host:      geometry.NewRect(100, 100, 400, 400),
		HasHost:   true,
		CreatedAt: createdAt.Add(time.Minute),
	}
	require.NoError(t, repo.Save(ctx, second))
	assert.Greater(t, second.ID, first.ID)

	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, latest.ID)
	assert.Equal(t, second.State, latest.State)
	assert.Equal(t, second.Position, latest.Position)
	assert.Equal(t, second.Host, latest.Host)
	assert.True(t, latest.HasHost)
	assert.True(t, latest.CreatedAt.Equal(second.CreatedAt))
}

func TestDockSnapshotRepository_List(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "sidedock.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewDockSnapshotRepository(db)
	for i := range 3 {
		snap := entity.NewDockSnapshot(entity.Floating(), geometry.Point{X: i, Y: i}, geometry.Rect{}, false)
		require.NoError(t, repo.Save(ctx, snap))
	}

	two, err := repo.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, two, 2)
	assert.Equal(t, geometry.Point{X: 2, Y: 2}, two[0].Position)
	assert.Equal(t, geometry.Point{X: 1, Y: 1}, two[1].Position)
	assert.False(t, two[0].HasHost)

	all, err := repo.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestDockSnapshotRepository_FloatingDropsOffset(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "sidedock.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewDockSnapshotRepository(db)
	snap := &entity.DockSnapshot{State: entity.DockState{Edge: entity.EdgeNone, Offset: geometry.Point{X: 9, Y: 9}}}
	require.NoError(t, repo.Save(ctx, snap))

	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.Floating(), latest.State)
	assert.False(t, latest.CreatedAt.IsZero())
}

func TestDockSnapshotRepository_SaveNil(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "sidedock.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	assert.Error(t, sqlite.NewDockSnapshotRepository(db).Save(ctx, nil))
}

func TestMigrations_AreIdempotent(t *testing.T) {
	ctx := testCtx()
	dbPath := filepath.Join(t.TempDir(), "sidedock.sqlite")

	db, err := sqlite.NewConnection(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, sqlite.RunMigrations(ctx, db))

	version, err := sqlite.GetMigrationStatus(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)
	require.NoError(t, db.Close())

	reopened, err := sqlite.NewConnection(ctx, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })
}

func TestLazyDockSnapshotRepository(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "sidedock.sqlite"))
	t.Cleanup(func() { _ = lazy.Close() })

	repo := sqlite.NewLazyDockSnapshotRepository(lazy)
	assert.False(t, lazy.IsInitialized())

	require.NoError(t, repo.Save(ctx, entity.NewDockSnapshot(entity.Floating(), geometry.Point{X: 1, Y: 2}, geometry.Rect{}, false)))
	assert.True(t, lazy.IsInitialized())

	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, geometry.Point{X: 1, Y: 2}, latest.Position)
}

func TestDockSnapshotRepository_LogsOperations(t *testing.T) {
	db, err := sqlite.NewConnection(testCtx(), filepath.Join(t.TempDir(), "sidedock.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var buf bytes.Buffer
	ctx := logging.WithContext(context.Background(), zerolog.New(&buf).Level(zerolog.DebugLevel))
	repo := sqlite.NewDockSnapshotRepository(db)

	snap := &entity.DockSnapshot{State: entity.DockedAt(entity.EdgeLeft, geometry.Point{}), Position: geometry.Point{X: 10, Y: 20}}
	require.NoError(t, repo.Save(ctx, snap))
	_, err = repo.Latest(ctx)
	require.NoError(t, err)
	_, err = repo.List(ctx, 5)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "saving dock snapshot")
	assert.Contains(t, out, `"edge":"left"`)
	assert.Contains(t, out, "dock snapshot saved")
	assert.Contains(t, out, "loading latest dock snapshot")
	assert.Contains(t, out, `"limit":5`)
}
