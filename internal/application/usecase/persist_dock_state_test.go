package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/filein/sidedock/internal/application/port"
	"github.com/filein/sidedock/internal/application/port/mocks"
	"github.com/filein/sidedock/internal/domain/entity"
	"github.com/filein/sidedock/internal/domain/geometry"
)

func testChange() port.DockChange {
	return port.DockChange{
		State:    entity.DockedAt(entity.EdgeRight, geometry.Point{X: 0, Y: 20}),
		Position: geometry.Point{X: 500, Y: 120},
		Host:     geometry.NewRect(100, 100, 400, 300),
		HasHost:  true,
	}
}

func TestPersistDockState_WritesBothSinks(t *testing.T) {
	ctx := context.Background()
	writer := mocks.NewMockDockConfigWriter(t)
	store := mocks.NewMockDockSnapshotStore(t)
	change := testChange()

	writer.On("SaveDockState", mock.Anything, change).Return(nil).Once()
	store.On("Save", mock.Anything, mock.MatchedBy(func(s *entity.DockSnapshot) bool {
		return s.State == change.State && s.Position == change.Position && s.HasHost
	})).Return(nil).Once()

	NewPersistDockStateUseCase(writer, store).OnDockStateChanged(ctx, change)
}

func TestPersistDockState_WriterFailureStillSnapshots(t *testing.T) {
	ctx := context.Background()
	writer := mocks.NewMockDockConfigWriter(t)
	store := mocks.NewMockDockSnapshotStore(t)

	writer.On("SaveDockState", mock.Anything, mock.Anything).Return(errors.New("read-only fs")).Once()
	store.On("Save", mock.Anything, mock.Anything).Return(nil).Once()

	assert.NotPanics(t, func() {
		NewPersistDockStateUseCase(writer, store).OnDockStateChanged(ctx, testChange())
	})
}

func TestPersistDockState_NilSinks(t *testing.T) {
	uc := NewPersistDockStateUseCase(nil, nil)

	assert.NotPanics(t, func() {
		uc.OnDockStateChanged(context.Background(), testChange())
	})

	snap, err := uc.LatestSnapshot(context.Background())
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestPersistDockState_ListensToController(t *testing.T) {
	ctx := context.Background()
	writer := mocks.NewMockDockConfigWriter(t)
	writer.On("SaveDockState", mock.Anything, mock.MatchedBy(func(c port.DockChange) bool {
		return c.State.Edge == entity.EdgeRight
	})).Return(nil).Once()

	host := &fakeHost{rect: geometry.NewRect(100, 100, 400, 300), present: true}
	c := newFloatingController(t, host, geometry.Point{X: 700, Y: 200})
	c.AddListener(NewPersistDockStateUseCase(writer, nil))

	require.True(t, c.PointerDown(ctx, down(710, 210)))
	c.PointerMove(ctx, move(525, 130))
	_, ok := c.PointerUp(ctx, up(525, 130))
	require.True(t, ok)
}
