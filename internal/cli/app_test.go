package cli_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filein/sidedock/internal/application/port"
	"github.com/filein/sidedock/internal/cli"
	"github.com/filein/sidedock/internal/domain/drag"
	"github.com/filein/sidedock/internal/domain/entity"
	"github.com/filein/sidedock/internal/domain/geometry"
	"github.com/filein/sidedock/internal/infrastructure/config"
)

func newTestApp(t *testing.T) (*cli.App, string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("SIDEDOCK_LOG_LEVEL", "error")

	configFile := filepath.Join(dir, "config.json")
	app, err := cli.NewApp(cli.Options{ConfigFile: configFile})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	return app, configFile
}

func TestNewApp_CreatesDefaultConfig(t *testing.T) {
	app, configFile := newTestApp(t)

	require.NoError(t, app.ConfigErr)
	assert.FileExists(t, configFile)
	assert.Equal(t, configFile, app.ConfigManager.GetConfigFile())
	assert.NotNil(t, app.Snapshots)
	assert.NotNil(t, app.Theme)
	assert.NotNil(t, app.Ctx())
}

func TestNewApp_InvalidConfigFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("SIDEDOCK_LOG_LEVEL", "error")

	configFile := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(configFile, []byte("{not json"), 0o644))

	app, err := cli.NewApp(cli.Options{ConfigFile: configFile})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	require.Error(t, app.ConfigErr)
	assert.Equal(t, config.DefaultConfig().AdsorptionThreshold, app.Config.AdsorptionThreshold)
}

func TestApp_PanelOptionsFromConfig(t *testing.T) {
	app, _ := newTestApp(t)
	host := geometry.NewRect(100, 100, 400, 400)

	opts := app.PanelOptions(host, true)
	assert.Equal(t, geometry.Size{Width: 200, Height: 60}, opts.Size)
	assert.Equal(t, 20, opts.Threshold)
	assert.Equal(t, entity.Floating(), opts.State)
	assert.Equal(t, geometry.Point{X: 520, Y: 100}, opts.Position)
	assert.Equal(t, drag.ControlZone{Side: entity.EdgeRight, Width: 20}, opts.ControlZone)

	noHost := app.PanelOptions(geometry.Rect{}, false)
	assert.Equal(t, geometry.Point{X: 520, Y: 100}, noHost.Position)
}

func TestApp_NewPanelPersistsRelease(t *testing.T) {
	app, _ := newTestApp(t)
	ctx := app.Ctx()
	host := geometry.NewRect(100, 100, 400, 400)

	panel := app.NewPanel(ctx, geometry.UnitScale(), port.HostWindowFunc(func(context.Context) (geometry.Rect, bool) {
		return host, true
	}), nil, nil)
	require.Equal(t, geometry.Point{X: 520, Y: 100}, panel.Position())

	press := geometry.Point{X: 530, Y: 110}
	require.True(t, panel.PointerDown(ctx, port.PointerEvent{Kind: port.PointerDown, Position: press, Button: drag.ButtonPrimary}))
	_, ok := panel.PointerMove(ctx, port.PointerEvent{Kind: port.PointerMove, Position: geometry.Point{X: 520, Y: 130}, Button: drag.ButtonPrimary})
	require.True(t, ok)
	out, ok := panel.PointerUp(ctx, port.PointerEvent{Kind: port.PointerUp, Position: geometry.Point{X: 520, Y: 130}, Button: drag.ButtonPrimary})
	require.True(t, ok)
	require.True(t, out.Snapped)

	require.NoError(t, app.ConfigManager.Reload())
	saved := app.ConfigManager.Get()
	assert.Equal(t, "right", saved.SidebarPosition.AdsorbedEdge)
	assert.Equal(t, 20, saved.SidebarPosition.RelativeOffsetY)

	snap, err := app.Snapshots.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.EdgeRight, snap.State.Edge)
}

func TestApp_NewButtons(t *testing.T) {
	app, _ := newTestApp(t)
	ctx := app.Ctx()
	panel := app.NewPanel(ctx, geometry.UnitScale(), nil, nil, nil)

	buttons, err := app.NewButtons(ctx, panel, nil)
	require.NoError(t, err)

	_, err = buttons.Toggle(ctx, entity.ButtonPin)
	require.NoError(t, err)
	assert.True(t, panel.Locked())
}

func TestApp_NewPanelOnCellGrid(t *testing.T) {
	app, _ := newTestApp(t)
	ctx := app.Ctx()
	scale := geometry.Scale{X: 10, Y: 20}
	host := geometry.NewRect(10, 5, 40, 20)

	panel := app.NewPanel(ctx, scale, port.HostWindowFunc(func(context.Context) (geometry.Rect, bool) {
		return host, true
	}), nil, nil)
	assert.Equal(t, geometry.Point{X: 52, Y: 5}, panel.Position())
	assert.Equal(t, geometry.Size{Width: 20, Height: 3}, panel.Size())
	assert.Equal(t, 2, panel.Threshold())

	require.True(t, panel.PointerDown(ctx, port.PointerEvent{Kind: port.PointerDown, Position: geometry.Point{X: 53, Y: 6}, Button: drag.ButtonPrimary}))
	_, ok := panel.PointerMove(ctx, port.PointerEvent{Kind: port.PointerMove, Position: geometry.Point{X: 52, Y: 7}, Button: drag.ButtonPrimary})
	require.True(t, ok)
	_, ok = panel.PointerUp(ctx, port.PointerEvent{Kind: port.PointerUp, Position: geometry.Point{X: 52, Y: 7}, Button: drag.ButtonPrimary})
	require.True(t, ok)
	assert.Equal(t, entity.DockedAt(entity.EdgeRight, geometry.Point{X: 0, Y: 1}), panel.State())

	saved := app.ConfigManager.Get()
	assert.Equal(t, "right", saved.SidebarPosition.AdsorbedEdge)
	assert.Equal(t, 0, saved.SidebarPosition.RelativeOffsetX)
	assert.Equal(t, 20, saved.SidebarPosition.RelativeOffsetY)
	assert.Equal(t, 400, saved.SidebarRelativeX)
	assert.Equal(t, 20, saved.SidebarRelativeY)
}
