// Package cli wires configuration, persistence and use cases for the
// sidedock commands.
package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/filein/sidedock/internal/application/port"
	"github.com/filein/sidedock/internal/application/usecase"
	"github.com/filein/sidedock/internal/cli/styles"
	"github.com/filein/sidedock/internal/domain/build"
	"github.com/filein/sidedock/internal/domain/drag"
	"github.com/filein/sidedock/internal/domain/entity"
	"github.com/filein/sidedock/internal/domain/geometry"
	"github.com/filein/sidedock/internal/infrastructure/config"
	"github.com/filein/sidedock/internal/infrastructure/persistence/sqlite"
	"github.com/filein/sidedock/internal/logging"
)

// Options controls how the App is built.
type Options struct {
	// ConfigFile overrides the XDG config location.
	ConfigFile string
	// LogToFile sends logs to the data directory log file instead of stderr.
	LogToFile bool
}

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	// ConfigErr is set when the config file could not be loaded and
	// defaults are in use.
	ConfigErr error
	Theme     *styles.Theme
	BuildInfo build.Info

	// Snapshots is nil when snapshot recording is disabled.
	Snapshots port.DockSnapshotStore
	PersistUC *usecase.PersistDockStateUseCase

	db         *sqlite.LazyDB
	ctx        context.Context
	logCleanup func()
}

// NewApp creates a new CLI application with all dependencies.
func NewApp(opts Options) (*App, error) {
	bootLogger := logging.NewFromEnv()

	managerOpts := []config.Option{config.WithLogger(bootLogger)}
	if opts.ConfigFile != "" {
		managerOpts = append(managerOpts, config.WithConfigFile(opts.ConfigFile))
	}
	mgr, err := config.NewManager(managerOpts...)
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}

	loadErr := mgr.Load()
	cfg := mgr.Get()

	logger, logCleanup, err := newLogger(cfg, opts.LogToFile)
	if err != nil {
		bootLogger.Warn().Err(err).Msg("failed to open log file, logging to stderr")
	}
	if loadErr != nil {
		logger.Warn().Err(loadErr).Str("file", mgr.GetConfigFile()).Msg("using default configuration")
	}
	ctx := logging.WithContext(context.Background(), logger)

	app := &App{
		Config:        cfg,
		ConfigManager: mgr,
		ConfigErr:     loadErr,
		Theme:         styles.NewTheme(),
		ctx:           ctx,
		logCleanup:    logCleanup,
	}

	// The database is only opened when the first snapshot is read or written.
	if cfg.Snapshots.Enabled {
		if cfg.Database.Path == "" {
			if cfg.Database.Path, err = config.GetDatabaseFile(); err != nil {
				return nil, fmt.Errorf("get database path: %w", err)
			}
		}
		app.db = sqlite.NewLazyDB(cfg.Database.Path)
		app.Snapshots = sqlite.NewLazyDockSnapshotRepository(app.db)
		logger.Debug().Str("db_path", cfg.Database.Path).Msg("snapshot store configured")
	}

	// A config that failed to load is never written back over.
	var writer port.DockConfigWriter
	if loadErr == nil {
		writer = mgr
	}
	app.PersistUC = usecase.NewPersistDockStateUseCase(writer, app.Snapshots)

	return app, nil
}

func newLogger(cfg *config.Config, toFile bool) (zerolog.Logger, func(), error) {
	logCfg := logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	}
	if !toFile {
		return logging.New(logCfg), func() {}, nil
	}

	logFile, err := config.GetLogFile()
	if err != nil {
		return logging.New(logCfg), func() {}, err
	}
	logCfg.File = logFile
	logCfg.FileOnly = true
	return logging.NewWithFile(logCfg)
}

// PanelOptions builds controller options from the configuration. host is
// the current host rectangle when one is available.
func (a *App) PanelOptions(host geometry.Rect, hasHost bool) usecase.PanelOptions {
	return usecase.PanelOptions{
		Size:        a.Config.PanelSize(),
		Threshold:   a.Config.AdsorptionThreshold,
		ControlZone: a.Config.ControlZone(),
		State:       a.Config.DockState(),
		Position:    a.Config.InitialPosition(host, hasHost),
	}
}

// NewPanel creates a panel controller seeded from the configuration. The
// controller works in the grid of scale, and host reports grid units too.
// Committed releases are converted back to pixels and persisted; config
// file edits update the threshold and control zone of the live controller.
func (a *App) NewPanel(
	ctx context.Context,
	scale geometry.Scale,
	host port.HostWindow,
	screen port.ScreenBounds,
	surface port.PanelSurface,
) *usecase.PanelController {
	var (
		hostRect geometry.Rect
		hasHost  bool
	)
	if host != nil {
		hostRect, hasHost = host.CurrentHostRect(ctx)
	}

	opts := scaleOptions(a.PanelOptions(scale.RectToScreen(hostRect), hasHost), scale)
	panel := usecase.NewPanelController(ctx, opts, host, screen, surface)
	panel.AddListener(scaledListener{scale: scale, next: a.PersistUC})

	a.ConfigManager.OnConfigChange(func(cfg *config.Config) {
		panel.SetThreshold(scale.LengthToGrid(cfg.AdsorptionThreshold))
		panel.SetControlZone(scaleZone(cfg.ControlZone(), scale))
		logging.FromContext(ctx).Debug().
			Int("threshold", cfg.AdsorptionThreshold).
			Msg("applied config change to panel")
	})
	return panel
}

func scaleOptions(opts usecase.PanelOptions, scale geometry.Scale) usecase.PanelOptions {
	opts.Size = scale.SizeToGrid(opts.Size)
	opts.Threshold = scale.LengthToGrid(opts.Threshold)
	opts.ControlZone = scaleZone(opts.ControlZone, scale)
	opts.State.Offset = scale.PointToGrid(opts.State.Offset)
	opts.Position = scale.PointToGrid(opts.Position)
	return opts
}

func scaleZone(zone drag.ControlZone, scale geometry.Scale) drag.ControlZone {
	extent := scale.SizeToGrid(geometry.Size{Width: zone.Width, Height: zone.Width})
	switch zone.Side {
	case entity.EdgeTop, entity.EdgeBottom:
		zone.Width = extent.Height
	default:
		zone.Width = extent.Width
	}
	return zone
}

// scaledListener converts grid dock changes back into pixels.
type scaledListener struct {
	scale geometry.Scale
	next  port.DockStateListener
}

func (l scaledListener) OnDockStateChanged(ctx context.Context, change port.DockChange) {
	change.State.Offset = l.scale.PointToScreen(change.State.Offset)
	change.Position = l.scale.PointToScreen(change.Position)
	change.Host = l.scale.RectToScreen(change.Host)
	l.next.OnDockStateChanged(ctx, change)
}

// NewButtons creates the sidebar buttons for panel. catalog may be nil.
func (a *App) NewButtons(
	ctx context.Context,
	panel *usecase.PanelController,
	catalog port.ExtensionCatalog,
) (*usecase.ManageButtonsUseCase, error) {
	return usecase.NewManageButtonsUseCase(ctx, usecase.ButtonOptions{
		PinButton:    a.Config.Sidebar.PinButton,
		PinOnIcon:    styles.IconPin,
		PinOffIcon:   styles.IconMagnet,
		SettingsIcon: styles.IconSettings,
	}, catalog, panel)
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
