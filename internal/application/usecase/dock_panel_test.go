package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/filein/sidedock/internal/application/port"
	"github.com/filein/sidedock/internal/application/port/mocks"
	"github.com/filein/sidedock/internal/domain/drag"
	"github.com/filein/sidedock/internal/domain/entity"
	"github.com/filein/sidedock/internal/domain/geometry"
)

type fakeHost struct {
	rect    geometry.Rect
	present bool
}

func (h *fakeHost) CurrentHostRect(context.Context) (geometry.Rect, bool) {
	return h.rect, h.present
}

var testScreen = port.StaticScreen(geometry.NewRect(0, 0, 1920, 1080))

func down(x, y int) port.PointerEvent {
	return port.PointerEvent{Kind: port.PointerDown, Position: geometry.Point{X: x, Y: y}, Button: drag.ButtonPrimary}
}

func move(x, y int) port.PointerEvent {
	return port.PointerEvent{Kind: port.PointerMove, Position: geometry.Point{X: x, Y: y}, Button: drag.ButtonPrimary}
}

func up(x, y int) port.PointerEvent {
	return port.PointerEvent{Kind: port.PointerUp, Position: geometry.Point{X: x, Y: y}, Button: drag.ButtonPrimary}
}

func newFloatingController(t *testing.T, host *fakeHost, pos geometry.Point) *PanelController {
	t.Helper()
	return NewPanelController(context.Background(), PanelOptions{
		Size:        geometry.Size{Width: 200, Height: 50},
		Threshold:   20,
		ControlZone: drag.DefaultControlZone(),
		State:       entity.Floating(),
		Position:    pos,
	}, host, testScreen, nil)
}

func TestPanelController_DragThenReleaseStaysFloating(t *testing.T) {
	ctx := context.Background()
	host := &fakeHost{rect: geometry.NewRect(0, 0, 400, 600), present: true}
	c := newFloatingController(t, host, geometry.Point{X: 300, Y: 300})

	require.True(t, c.PointerDown(ctx, down(310, 310)))
	assert.True(t, c.Dragging())

	pos, ok := c.PointerMove(ctx, move(120, 310))
	require.True(t, ok)
	assert.Equal(t, geometry.Point{X: 110, Y: 300}, pos)

	out, ok := c.PointerUp(ctx, up(120, 310))
	require.True(t, ok)
	assert.Equal(t, entity.EdgeNone, out.State.Edge)
	assert.False(t, out.Snapped)
	assert.Equal(t, geometry.Point{X: 110, Y: 300}, out.Position)
	assert.Equal(t, geometry.Point{X: 110, Y: 300}, c.Position())
	assert.False(t, c.Dragging())
}

func TestPanelController_ClampsToScreen(t *testing.T) {
	ctx := context.Background()
	c := newFloatingController(t, &fakeHost{}, geometry.Point{X: 300, Y: 300})

	require.True(t, c.PointerDown(ctx, down(310, 310)))
	pos, ok := c.PointerMove(ctx, move(-100, 310))
	require.True(t, ok)

	assert.Equal(t, 0, pos.X)
	assert.Equal(t, 300, pos.Y)
}

func TestPanelController_SnapRightThenTrackHost(t *testing.T) {
	ctx := context.Background()
	host := &fakeHost{rect: geometry.NewRect(100, 100, 400, 300), present: true}
	surface := mocks.NewMockPanelSurface(t)
	surface.On("MoveTo", mock.Anything, geometry.Point{X: 500, Y: 120}).Once()
	surface.On("MoveTo", mock.Anything, geometry.Point{X: 550, Y: 140}).Once()

	c := NewPanelController(ctx, PanelOptions{
		Size:      geometry.Size{Width: 200, Height: 50},
		Threshold: 20,
		Position:  geometry.Point{X: 700, Y: 200},
	}, host, testScreen, surface)

	require.True(t, c.PointerDown(ctx, down(710, 210)))
	pos, ok := c.PointerMove(ctx, move(525, 130))
	require.True(t, ok)
	assert.Equal(t, geometry.Point{X: 500, Y: 120}, pos)

	out, ok := c.PointerUp(ctx, up(525, 130))
	require.True(t, ok)
	assert.True(t, out.Snapped)
	assert.Equal(t, entity.DockedAt(entity.EdgeRight, geometry.Point{X: 0, Y: 20}), c.State())

	host.rect = geometry.NewRect(150, 120, 400, 300)
	first := c.HostChanged(ctx)
	second := c.Reconcile(ctx, host.rect)

	assert.Equal(t, geometry.Point{X: 550, Y: 140}, first)
	assert.Equal(t, first, second)
}

func TestPanelController_SeedsDockedPositionFromHost(t *testing.T) {
	host := &fakeHost{rect: geometry.NewRect(100, 100, 400, 300), present: true}

	c := NewPanelController(context.Background(), PanelOptions{
		Size:     geometry.Size{Width: 200, Height: 50},
		State:    entity.DockedAt(entity.EdgeRight, geometry.Point{X: 0, Y: 20}),
		Position: geometry.Point{X: 1, Y: 1},
	}, host, nil, nil)

	assert.Equal(t, geometry.Point{X: 500, Y: 120}, c.Position())
	assert.Equal(t, 20, c.Threshold())
}

func TestPanelController_ReconcileFloatingIsNoop(t *testing.T) {
	ctx := context.Background()
	c := newFloatingController(t, &fakeHost{}, geometry.Point{X: 42, Y: 24})

	assert.Equal(t, geometry.Point{X: 42, Y: 24}, c.Reconcile(ctx, geometry.NewRect(0, 0, 800, 600)))
}

func TestPanelController_ReconcileDegenerateHostKeepsPosition(t *testing.T) {
	ctx := context.Background()
	host := &fakeHost{rect: geometry.NewRect(100, 100, 400, 300), present: true}
	c := NewPanelController(ctx, PanelOptions{
		Size:  geometry.Size{Width: 200, Height: 50},
		State: entity.DockedAt(entity.EdgeRight, geometry.Point{X: 0, Y: 20}),
	}, host, nil, nil)

	got := c.Reconcile(ctx, geometry.NewRect(150, 150, 0, 0))

	assert.Equal(t, geometry.Point{X: 500, Y: 120}, got)
}

func TestPanelController_HostChangedWithoutHostIsNoop(t *testing.T) {
	ctx := context.Background()
	host := &fakeHost{rect: geometry.NewRect(100, 100, 400, 300), present: true}
	c := NewPanelController(ctx, PanelOptions{
		Size:  geometry.Size{Width: 200, Height: 50},
		State: entity.DockedAt(entity.EdgeBottom, geometry.Point{X: 10, Y: 0}),
	}, host, nil, nil)
	require.Equal(t, geometry.Point{X: 110, Y: 400}, c.Position())

	host.present = false
	assert.Equal(t, geometry.Point{X: 110, Y: 400}, c.HostChanged(ctx))

	detached := NewPanelController(ctx, PanelOptions{Position: geometry.Point{X: 3, Y: 4}}, nil, nil, nil)
	assert.Equal(t, geometry.Point{X: 3, Y: 4}, detached.HostChanged(ctx))
}

func TestPanelController_ReconcileDuringDragIsNoop(t *testing.T) {
	ctx := context.Background()
	host := &fakeHost{rect: geometry.NewRect(100, 100, 400, 300), present: true}
	c := NewPanelController(ctx, PanelOptions{
		Size:        geometry.Size{Width: 200, Height: 50},
		State:       entity.DockedAt(entity.EdgeRight, geometry.Point{X: 0, Y: 20}),
		ControlZone: drag.ControlZone{},
	}, host, testScreen, nil)

	require.True(t, c.PointerDown(ctx, down(510, 130)))
	_, ok := c.PointerMove(ctx, move(900, 600))
	require.True(t, ok)
	dragged := c.Position()

	assert.Equal(t, dragged, c.Reconcile(ctx, geometry.NewRect(0, 0, 400, 300)))
	// The committed state is untouched until release.
	assert.Equal(t, entity.EdgeRight, c.State().Edge)
}

func TestPanelController_SpuriousEventsIgnored(t *testing.T) {
	ctx := context.Background()
	c := newFloatingController(t, &fakeHost{}, geometry.Point{X: 300, Y: 300})

	_, ok := c.PointerMove(ctx, move(0, 0))
	assert.False(t, ok)
	_, ok = c.PointerUp(ctx, up(0, 0))
	assert.False(t, ok)

	require.True(t, c.PointerDown(ctx, down(310, 310)))
	_, ok = c.PointerUp(ctx, up(310, 310))
	require.True(t, ok)

	_, ok = c.PointerMove(ctx, move(900, 900))
	assert.False(t, ok)
	assert.Equal(t, geometry.Point{X: 300, Y: 300}, c.Position())
}

func TestPanelController_ReleaseWithoutMoveEvaluatesCurrentPosition(t *testing.T) {
	ctx := context.Background()
	host := &fakeHost{rect: geometry.NewRect(100, 100, 400, 300), present: true}
	// Right distance |500-510| = 10.
	c := newFloatingController(t, host, geometry.Point{X: 510, Y: 150})

	require.True(t, c.PointerDown(ctx, down(520, 160)))
	out, ok := c.PointerUp(ctx, up(520, 160))
	require.True(t, ok)

	assert.Equal(t, entity.EdgeRight, out.State.Edge)
	assert.Equal(t, geometry.Point{X: 500, Y: 150}, out.Position)
	assert.Equal(t, geometry.Point{X: 0, Y: 50}, out.State.Offset)
}

func TestPanelController_UndockOnReleaseFarAway(t *testing.T) {
	ctx := context.Background()
	host := &fakeHost{rect: geometry.NewRect(100, 100, 400, 300), present: true}
	c := NewPanelController(ctx, PanelOptions{
		Size:  geometry.Size{Width: 200, Height: 50},
		State: entity.DockedAt(entity.EdgeRight, geometry.Point{X: 0, Y: 20}),
	}, host, testScreen, nil)

	require.True(t, c.PointerDown(ctx, down(510, 130)))
	c.PointerMove(ctx, move(1010, 630))
	out, ok := c.PointerUp(ctx, up(1010, 630))
	require.True(t, ok)

	assert.True(t, out.State.IsFloating())
	assert.Equal(t, geometry.Point{X: 1000, Y: 620}, c.Position())

	// Floating panels ignore host moves.
	host.rect = geometry.NewRect(0, 0, 400, 300)
	assert.Equal(t, geometry.Point{X: 1000, Y: 620}, c.HostChanged(ctx))
}

func TestPanelController_NotifiesListeners(t *testing.T) {
	ctx := context.Background()
	host := &fakeHost{rect: geometry.NewRect(100, 100, 400, 300), present: true}
	c := newFloatingController(t, host, geometry.Point{X: 700, Y: 200})

	var changes []port.DockChange
	c.AddListener(port.DockStateListenerFunc(func(_ context.Context, change port.DockChange) {
		// Listeners run outside the controller lock.
		_ = c.Position()
		changes = append(changes, change)
	}))

	require.True(t, c.PointerDown(ctx, down(710, 210)))
	c.PointerMove(ctx, move(525, 130))
	c.PointerUp(ctx, up(525, 130))

	require.Len(t, changes, 1)
	assert.Equal(t, entity.EdgeRight, changes[0].State.Edge)
	assert.True(t, changes[0].HasHost)
	assert.Equal(t, geometry.Point{X: 400, Y: 20}, changes[0].RelativePosition())
}

func TestPanelController_LockedIgnoresPress(t *testing.T) {
	ctx := context.Background()
	c := newFloatingController(t, &fakeHost{}, geometry.Point{X: 300, Y: 300})
	c.SetLocked(true)

	assert.False(t, c.PointerDown(ctx, down(310, 310)))
	assert.True(t, c.Locked())

	c.SetLocked(false)
	assert.True(t, c.PointerDown(ctx, down(310, 310)))
}

func TestPanelController_ControlZonePressDoesNotDrag(t *testing.T) {
	ctx := context.Background()
	c := newFloatingController(t, &fakeHost{}, geometry.Point{X: 300, Y: 300})

	assert.False(t, c.PointerDown(ctx, down(490, 320)))
	assert.False(t, c.Dragging())
}

func TestPanelController_HandleDispatches(t *testing.T) {
	ctx := context.Background()
	c := newFloatingController(t, &fakeHost{}, geometry.Point{X: 300, Y: 300})

	c.Handle(ctx, down(310, 310))
	c.Handle(ctx, move(410, 410))
	c.Handle(ctx, up(410, 410))

	assert.Equal(t, geometry.Point{X: 400, Y: 400}, c.Position())
	assert.False(t, c.Dragging())
}

func TestPanelController_SetSizeKeepsLeftDockFlush(t *testing.T) {
	ctx := context.Background()
	host := geometry.NewRect(100, 100, 400, 300)
	c := NewPanelController(ctx, PanelOptions{
		Size:  geometry.Size{Width: 200, Height: 50},
		State: entity.DockedAt(entity.EdgeLeft, geometry.Point{X: -200, Y: 0}),
	}, &fakeHost{rect: host, present: true}, nil, nil)
	require.Equal(t, geometry.Point{X: -100, Y: 100}, c.Position())

	c.SetSize(geometry.Size{Width: 250, Height: 50})

	assert.Equal(t, geometry.Point{X: -150, Y: 100}, c.Reconcile(ctx, host))
}

func TestPanelController_SetThresholdDefaults(t *testing.T) {
	c := newFloatingController(t, &fakeHost{}, geometry.Point{})

	c.SetThreshold(5)
	assert.Equal(t, 5, c.Threshold())

	c.SetThreshold(-1)
	assert.Equal(t, 20, c.Threshold())
}
