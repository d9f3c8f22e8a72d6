package cmd

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/filein/sidedock/internal/cli/model"
	"github.com/filein/sidedock/internal/domain/geometry"
	"github.com/filein/sidedock/internal/logging"
)

var (
	cellWidth  int
	cellHeight int
)

var playgroundCmd = &cobra.Command{
	Use:     "playground",
	Aliases: []string{"play"},
	Short:   "Drag the sidebar around a host window in the terminal",
	Long: `Open an interactive sandbox where the terminal stands in for the screen.

Drag the panel with the left mouse button and release it near an edge of
the host window to dock it. Arrow keys move the host and +/- resize it; a
docked panel follows. Buttons in the panel's control zone are clicked, not
dragged.

Config values are pixels. Each terminal cell counts as --cell-width by
--cell-height pixels, and committed releases are saved back in pixels.
Logs go to the data directory while the playground owns the terminal.`,
	Args: cobra.NoArgs,
	RunE: runPlayground,
}

func init() {
	rootCmd.AddCommand(playgroundCmd)
	playgroundCmd.Flags().IntVar(&cellWidth, "cell-width", 10, "pixels per terminal column")
	playgroundCmd.Flags().IntVar(&cellHeight, "cell-height", 20, "pixels per terminal row")
}

func runPlayground(_ *cobra.Command, _ []string) error {
	if app == nil {
		return errors.New("app not initialized")
	}
	ctx := logging.WithComponent(app.Ctx(), "playground")
	log := logging.FromContext(ctx)

	scale := geometry.Scale{X: cellWidth, Y: cellHeight}
	host := model.NewHost(scale.RectToGrid(app.Config.HostRect()))
	// Sized by the first WindowSizeMsg.
	screen := model.NewScreen(geometry.Rect{})

	panel := app.NewPanel(ctx, scale, host, screen, nil)
	buttons, err := app.NewButtons(ctx, panel, nil)
	if err != nil {
		return fmt.Errorf("create sidebar buttons: %w", err)
	}

	if err := app.ConfigManager.Watch(); err != nil {
		log.Warn().Err(err).Msg("config hot reload disabled")
	}

	m := model.NewPlaygroundModel(ctx, app.Theme, model.PlaygroundConfig{
		Panel:      panel,
		Buttons:    buttons,
		Host:       host,
		Screen:     screen,
		ConfigFile: app.ConfigManager.GetConfigFile(),
	})

	log.Info().
		Int("cell_width", scale.X).
		Int("cell_height", scale.Y).
		Str("edge", panel.State().Edge.String()).
		Msg("playground started")

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run playground: %w", err)
	}
	return nil
}
