// Package usecase contains application use cases that orchestrate domain logic.
package usecase

import (
	"context"
	"sync"

	"github.com/filein/sidedock/internal/application/port"
	"github.com/filein/sidedock/internal/domain/adsorption"
	"github.com/filein/sidedock/internal/domain/drag"
	"github.com/filein/sidedock/internal/domain/entity"
	"github.com/filein/sidedock/internal/domain/geometry"
	"github.com/filein/sidedock/internal/logging"
)

// PanelOptions seeds a PanelController.
type PanelOptions struct {
	Size        geometry.Size
	Threshold   int
	ControlZone drag.ControlZone
	// State is the initial dock state. When docked and a host is available
	// the initial position is derived from it.
	State entity.DockState
	// Position is the initial absolute position for a floating panel, and
	// the fallback for a docked one when no host is available.
	Position geometry.Point
	Locked   bool
}

// ReleaseOutcome is what a committed pointer-up produced.
type ReleaseOutcome struct {
	State    entity.DockState
	Position geometry.Point
	// Snapped is true when the release attached the panel to an edge.
	Snapped bool
}

// PanelController keeps the sidebar panel positioned against its host.
// Pointer events drive drags; host notifications drive reconciliation.
type PanelController struct {
	host    port.HostWindow
	screen  port.ScreenBounds
	surface port.PanelSurface

	mu        sync.RWMutex
	machine   *drag.Machine
	size      geometry.Size
	threshold int
	state     entity.DockState
	position  geometry.Point
	locked    bool
	moved     bool
	last      adsorption.Result
	lastHost  geometry.Rect
	hasHost   bool
	listeners []port.DockStateListener
}

// NewPanelController creates a controller. host, screen and surface may be nil.
func NewPanelController(
	ctx context.Context,
	opts PanelOptions,
	host port.HostWindow,
	screen port.ScreenBounds,
	surface port.PanelSurface,
) *PanelController {
	if opts.Threshold <= 0 {
		opts.Threshold = adsorption.DefaultThreshold
	}

	c := &PanelController{
		host:      host,
		screen:    screen,
		surface:   surface,
		machine:   drag.NewMachine(opts.ControlZone),
		size:      opts.Size,
		threshold: opts.Threshold,
		state:     opts.State,
		position:  opts.Position,
		locked:    opts.Locked,
	}

	if hostRect, ok := c.hostRect(ctx); ok {
		if pos, derived := adsorption.PositionFor(c.state, hostRect); derived {
			c.position = pos
		}
	}

	logging.FromContext(ctx).Debug().
		Str("edge", c.state.Edge.String()).
		Int("x", c.position.X).
		Int("y", c.position.Y).
		Msg("panel controller created")

	return c
}

// AddListener registers a listener for committed releases.
func (c *PanelController) AddListener(l port.DockStateListener) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, l)
}

// Position returns the current panel position.
func (c *PanelController) Position() geometry.Point {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.position
}

// Rect returns the current panel rectangle.
func (c *PanelController) Rect() geometry.Rect {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return geometry.RectAt(c.position, c.size)
}

// State returns the committed dock state.
func (c *PanelController) State() entity.DockState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Dragging reports whether a drag session is active.
func (c *PanelController) Dragging() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.machine.State() == drag.Dragging
}

// Preview returns the adsorption result of the latest drag move. Outside a
// drag it describes the move that produced the committed state.
func (c *PanelController) Preview() adsorption.Result {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.last
}

// Size returns the panel size.
func (c *PanelController) Size() geometry.Size {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.size
}

// SetSize changes the panel size. Docked panels on the left or top edge are
// re-flushed against the host on the next reconcile.
func (c *PanelController) SetSize(size geometry.Size) {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.state.Edge {
	case entity.EdgeLeft:
		c.state.Offset.X -= size.Width - c.size.Width
	case entity.EdgeTop:
		c.state.Offset.Y -= size.Height - c.size.Height
	}
	c.size = size
}

// Threshold returns the snap distance.
func (c *PanelController) Threshold() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.threshold
}

// SetThreshold changes the snap distance; non-positive values restore the default.
func (c *PanelController) SetThreshold(threshold int) {
	if threshold <= 0 {
		threshold = adsorption.DefaultThreshold
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.threshold = threshold
}

// ControlZone returns the strip excluded from starting drags.
func (c *PanelController) ControlZone() drag.ControlZone {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.machine.ControlZone()
}

// SetControlZone changes the strip excluded from starting drags.
func (c *PanelController) SetControlZone(zone drag.ControlZone) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.machine.SetControlZone(zone)
}

// Locked reports whether drags are disabled.
func (c *PanelController) Locked() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.locked
}

// SetLocked enables or disables starting new drags. An active drag is not
// interrupted.
func (c *PanelController) SetLocked(locked bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.locked = locked
}

// Handle dispatches a pointer event to the matching handler.
func (c *PanelController) Handle(ctx context.Context, ev port.PointerEvent) {
	switch ev.Kind {
	case port.PointerDown:
		c.PointerDown(ctx, ev)
	case port.PointerMove:
		c.PointerMove(ctx, ev)
	case port.PointerUp:
		c.PointerUp(ctx, ev)
	}
}

// PointerDown starts a drag when the press lands on the draggable region.
func (c *PanelController) PointerDown(ctx context.Context, ev port.PointerEvent) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.locked {
		return false
	}
	if !c.machine.Press(ev.Position, ev.Button, geometry.RectAt(c.position, c.size)) {
		return false
	}
	c.moved = false

	logging.FromContext(ctx).Debug().
		Int("pointer_x", ev.Position.X).
		Int("pointer_y", ev.Position.Y).
		Msg("drag started")
	return true
}

// PointerMove moves the panel while dragging and returns the applied
// position. Moves while idle are ignored.
func (c *PanelController) PointerMove(ctx context.Context, ev port.PointerEvent) (geometry.Point, bool) {
	c.mu.Lock()
	candidate, ok := c.machine.Move(ev.Position)
	if !ok {
		c.mu.Unlock()
		return geometry.Point{}, false
	}

	res := c.evaluateLocked(ctx, candidate)
	c.position = res.Position
	c.last = res
	c.moved = true
	pos := c.position
	c.mu.Unlock()

	c.moveSurface(ctx, pos)
	return pos, true
}

// PointerUp ends the drag and commits the dock state. A release always
// commits; there is no rollback to the session start.
func (c *PanelController) PointerUp(ctx context.Context, ev port.PointerEvent) (ReleaseOutcome, bool) {
	c.mu.Lock()
	if _, ok := c.machine.Release(ev.Button); !ok {
		c.mu.Unlock()
		return ReleaseOutcome{}, false
	}

	res := c.last
	if !c.moved {
		res = c.evaluateLocked(ctx, c.position)
		c.last = res
	}

	c.state = adsorption.StateFor(res.Edge, res.Position, c.lastHost)
	moved := c.position != res.Position
	c.position = res.Position

	change := port.DockChange{
		State:    c.state,
		Position: c.position,
		Host:     c.lastHost,
		HasHost:  c.hasHost,
	}
	listeners := make([]port.DockStateListener, len(c.listeners))
	copy(listeners, c.listeners)
	c.mu.Unlock()

	logging.FromContext(ctx).Debug().
		Str("edge", change.State.Edge.String()).
		Int("x", change.Position.X).
		Int("y", change.Position.Y).
		Msg("drag committed")

	if moved {
		c.moveSurface(ctx, change.Position)
	}
	for _, l := range listeners {
		l.OnDockStateChanged(ctx, change)
	}

	return ReleaseOutcome{
		State:    change.State,
		Position: change.Position,
		Snapped:  !change.State.IsFloating(),
	}, true
}

// Reconcile re-derives the panel position from the dock state for host.
// Floating panels, degenerate hosts and active drags leave the position
// unchanged.
func (c *PanelController) Reconcile(ctx context.Context, host geometry.Rect) geometry.Point {
	c.mu.Lock()
	if c.machine.State() == drag.Dragging {
		pos := c.position
		c.mu.Unlock()
		return pos
	}
	if host.IsEmpty() {
		pos := c.position
		c.mu.Unlock()
		logging.FromContext(ctx).Debug().Str("host", host.String()).Msg("skipping reconcile for degenerate host")
		return pos
	}

	target, ok := adsorption.PositionFor(c.state, host)
	if !ok || target == c.position {
		pos := c.position
		c.mu.Unlock()
		return pos
	}
	c.position = target
	c.mu.Unlock()

	c.moveSurface(ctx, target)
	return target
}

// HostChanged reads the host accessor and reconciles against it.
// A missing host is a no-op.
func (c *PanelController) HostChanged(ctx context.Context) geometry.Point {
	host, ok := c.hostRect(ctx)
	if !ok {
		return c.Position()
	}
	return c.Reconcile(ctx, host)
}

func (c *PanelController) evaluateLocked(ctx context.Context, candidate geometry.Point) adsorption.Result {
	if c.screen != nil {
		candidate = geometry.ClampPosition(candidate, c.size, c.screen.AvailableRect(ctx))
	}

	host, ok := c.hostRect(ctx)
	ok = ok && !host.IsEmpty()
	c.lastHost = host
	c.hasHost = ok
	if !ok {
		return adsorption.Result{Position: candidate, Edge: entity.EdgeNone, Distance: -1}
	}
	return adsorption.Evaluate(candidate, c.size, host, c.threshold)
}

func (c *PanelController) hostRect(ctx context.Context) (geometry.Rect, bool) {
	if c.host == nil {
		return geometry.Rect{}, false
	}
	return c.host.CurrentHostRect(ctx)
}

func (c *PanelController) moveSurface(ctx context.Context, pos geometry.Point) {
	if c.surface != nil {
		c.surface.MoveTo(ctx, pos)
	}
}
