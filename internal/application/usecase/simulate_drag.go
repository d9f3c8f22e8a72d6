package usecase

import (
	"context"
	"errors"

	"github.com/filein/sidedock/internal/application/port"
	"github.com/filein/sidedock/internal/domain/adsorption"
	"github.com/filein/sidedock/internal/domain/drag"
	"github.com/filein/sidedock/internal/domain/entity"
	"github.com/filein/sidedock/internal/domain/geometry"
	"github.com/filein/sidedock/internal/logging"
)

// ErrNoEvents is returned when a simulation has nothing to replay.
var ErrNoEvents = errors.New("no pointer events to replay")

// SimulateDragInput describes one scripted drag.
type SimulateDragInput struct {
	Host    geometry.Rect
	HasHost bool
	// Screen is the clamp area; an empty rect disables clamping.
	Screen      geometry.Rect
	Panel       geometry.Point
	Size        geometry.Size
	Threshold   int
	ControlZone drag.ControlZone
	State       entity.DockState
	Events      []port.PointerEvent
}

// SimulationStep is the controller state after one replayed event.
type SimulationStep struct {
	Event    port.PointerEvent
	Accepted bool
	Position geometry.Point
	Result   adsorption.Result
	Dragging bool
	// Committed is set on the step that ended the drag.
	Committed *ReleaseOutcome
}

// SimulateDragOutput holds every replayed step and the final dock state.
type SimulateDragOutput struct {
	Steps []SimulationStep
	State entity.DockState
	Final geometry.Point
}

// SimulateDragUseCase replays pointer events through a PanelController.
type SimulateDragUseCase struct {
	listeners []port.DockStateListener
}

// NewSimulateDragUseCase creates the use case. Listeners receive the
// committed release like they would from a live panel.
func NewSimulateDragUseCase(listeners ...port.DockStateListener) *SimulateDragUseCase {
	return &SimulateDragUseCase{listeners: listeners}
}

// Execute replays input.Events in order.
func (uc *SimulateDragUseCase) Execute(ctx context.Context, input SimulateDragInput) (*SimulateDragOutput, error) {
	if len(input.Events) == 0 {
		return nil, ErrNoEvents
	}

	hostRect, hasHost := input.Host, input.HasHost
	host := port.HostWindowFunc(func(context.Context) (geometry.Rect, bool) {
		return hostRect, hasHost
	})

	var screen port.ScreenBounds
	if !input.Screen.IsEmpty() {
		screen = port.StaticScreen(input.Screen)
	}

	panel := NewPanelController(ctx, PanelOptions{
		Size:        input.Size,
		Threshold:   input.Threshold,
		ControlZone: input.ControlZone,
		State:       input.State,
		Position:    input.Panel,
	}, host, screen, nil)
	for _, l := range uc.listeners {
		panel.AddListener(l)
	}

	out := &SimulateDragOutput{Steps: make([]SimulationStep, 0, len(input.Events))}
	for _, ev := range input.Events {
		step := SimulationStep{Event: ev}
		switch ev.Kind {
		case port.PointerDown:
			step.Accepted = panel.PointerDown(ctx, ev)
		case port.PointerMove:
			_, step.Accepted = panel.PointerMove(ctx, ev)
		case port.PointerUp:
			outcome, ok := panel.PointerUp(ctx, ev)
			step.Accepted = ok
			if ok {
				step.Committed = &outcome
			}
		}
		step.Position = panel.Position()
		step.Result = panel.Preview()
		step.Dragging = panel.Dragging()
		out.Steps = append(out.Steps, step)
	}

	out.State = panel.State()
	out.Final = panel.Position()

	logging.FromContext(ctx).Debug().
		Int("events", len(input.Events)).
		Str("edge", out.State.Edge.String()).
		Msg("drag simulation finished")
	return out, nil
}
