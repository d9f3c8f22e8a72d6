package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/filein/sidedock/internal/application/port"
	"github.com/filein/sidedock/internal/application/usecase"
	"github.com/filein/sidedock/internal/cli/styles"
	"github.com/filein/sidedock/internal/domain/drag"
	"github.com/filein/sidedock/internal/domain/entity"
	"github.com/filein/sidedock/internal/domain/geometry"
	"github.com/filein/sidedock/internal/logging"
)

var (
	simHost      rectFlag
	simNoHost    bool
	simPanel     pointFlag
	simSize      sizeFlag
	simScreen    rectFlag
	simThreshold int
	simDown      pointFlag
	simMoves     pointListFlag
	simUp        pointFlag
	simPersist   bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Replay one scripted drag through the docking engine",
	Long: `Replay a press, any number of moves and a release, and print the panel
position and adsorption decision after every event.

The panel starts where the configuration places it. The release defaults
to the last move. With --persist the committed dock state is written back
to the config file and recorded as a snapshot, like a real release.

Examples:
  sidedock simulate --down 530,130 --move 515,130
  sidedock simulate --panel 520,100 --down 530,130 --move 700,130 --move 515,300 --up 515,300
  sidedock simulate --no-host --down 530,130 --move 300,300 --screen 0,0,1920x1080`,
	RunE: runSimulate,
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	flags := simulateCmd.Flags()
	flags.Var(&simHost, "host", "host window rectangle (default from config)")
	flags.BoolVar(&simNoHost, "no-host", false, "simulate without a host window")
	flags.Var(&simPanel, "panel", "panel top-left corner before the drag (default from config)")
	flags.Var(&simSize, "size", "panel size (default from config)")
	flags.Var(&simScreen, "screen", "screen rectangle the panel is clamped to (default: no clamp)")
	flags.IntVarP(&simThreshold, "threshold", "t", -1, "snap distance (default from config)")
	flags.Var(&simDown, "down", "pointer press position")
	flags.Var(&simMoves, "move", "pointer move position (repeatable)")
	flags.Var(&simUp, "up", "pointer release position (default: last move)")
	flags.BoolVar(&simPersist, "persist", false, "save the committed dock state")
	_ = simulateCmd.MarkFlagRequired("down")
	simulateCmd.MarkFlagsMutuallyExclusive("host", "no-host")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	if app == nil {
		return errors.New("app not initialized")
	}
	ctx := logging.WithComponent(app.Ctx(), "simulate")

	var listeners []port.DockStateListener
	if simPersist {
		listeners = append(listeners, app.PersistUC)
	}

	out, err := usecase.NewSimulateDragUseCase(listeners...).Execute(ctx, buildSimulation())
	if err != nil {
		return fmt.Errorf("simulate drag: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), styles.NewDockRenderer(app.Theme).RenderSimulation(out))
	return nil
}

func buildSimulation() usecase.SimulateDragInput {
	host, hasHost := app.Config.HostRect(), !simNoHost
	if simHost.set {
		host = simHost.rect
	}
	if !hasHost {
		host = geometry.Rect{}
	}

	opts := app.PanelOptions(host, hasHost)
	if simPanel.set {
		opts.Position = simPanel.point
		// An explicit start position is just a floating panel.
		opts.State = entity.Floating()
	}
	if simSize.set {
		opts.Size = simSize.size
	}
	if simThreshold >= 0 {
		opts.Threshold = simThreshold
	}

	return usecase.SimulateDragInput{
		Host:        host,
		HasHost:     hasHost,
		Screen:      simScreen.rect,
		Panel:       opts.Position,
		Size:        opts.Size,
		Threshold:   opts.Threshold,
		ControlZone: opts.ControlZone,
		State:       opts.State,
		Events:      pointerScript(simDown.point, simMoves.points, simUp),
	}
}

// pointerScript builds press, moves and release with the primary button.
func pointerScript(down geometry.Point, moves []geometry.Point, up pointFlag) []port.PointerEvent {
	events := make([]port.PointerEvent, 0, len(moves)+2)
	events = append(events, port.PointerEvent{Kind: port.PointerDown, Position: down, Button: drag.ButtonPrimary})

	release := down
	for _, p := range moves {
		events = append(events, port.PointerEvent{Kind: port.PointerMove, Position: p, Button: drag.ButtonPrimary})
		release = p
	}
	if up.set {
		release = up.point
	}
	return append(events, port.PointerEvent{Kind: port.PointerUp, Position: release, Button: drag.ButtonPrimary})
}
