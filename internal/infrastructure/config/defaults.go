package config

import (
	"os"

	"github.com/filein/sidedock/internal/domain/adsorption"
	"github.com/filein/sidedock/internal/domain/drag"
)

const (
	// Original init_config values.
	defaultWindowWidth      = 400
	defaultWindowHeight     = 400
	defaultInnerMargin      = 12
	defaultScreenMargins    = 10
	defaultWindowX          = 100
	defaultWindowY          = 100
	defaultSidebarRelativeX = 420
	defaultSidebarRelativeY = 0
	defaultSidebarWidth     = 200
	defaultSidebarHeight    = 60
	defaultControlZoneSide  = "right"
	defaultLogLevel         = "info"
	defaultLogFormat        = "console"
	defaultSnapshotsEnabled = true
	defaultPinButton        = true

	dirPerm  = 0o755
	filePerm = 0o644
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	root, err := os.UserHomeDir()
	if err != nil {
		root = "."
	}

	return &Config{
		RootFolder: root,
		Window: WindowConfig{
			Width:             defaultWindowWidth,
			Height:            defaultWindowHeight,
			InnerMarginWidth:  defaultInnerMargin,
			InnerMarginHeight: defaultInnerMargin,
			ScreenMargins:     defaultScreenMargins,
		},
		WindowPosition: PositionConfig{
			X: defaultWindowX,
			Y: defaultWindowY,
		},
		SidebarRelativeX:    defaultSidebarRelativeX,
		SidebarRelativeY:    defaultSidebarRelativeY,
		AdsorptionThreshold: adsorption.DefaultThreshold,
		SidebarPosition:     SidebarPositionConfig{},
		Sidebar: SidebarConfig{
			Width:            defaultSidebarWidth,
			Height:           defaultSidebarHeight,
			ControlZoneWidth: drag.DefaultControlZoneWidth,
			ControlZoneSide:  defaultControlZoneSide,
			PinButton:        defaultPinButton,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		// Database.Path is resolved in Load() when empty.
		Database: DatabaseConfig{},
		Snapshots: SnapshotsConfig{
			Enabled: defaultSnapshotsEnabled,
		},
	}
}

// setDefaults registers default values in Viper so missing keys are filled.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("RootFolder", defaults.RootFolder)
	m.setWindowDefaults(defaults)
	m.setSidebarDefaults(defaults)
	m.setLoggingDefaults(defaults)
	m.viper.SetDefault("database.path", defaults.Database.Path)
	m.viper.SetDefault("snapshots.enabled", defaults.Snapshots.Enabled)
}

func (m *Manager) setWindowDefaults(defaults *Config) {
	m.viper.SetDefault("window.width", defaults.Window.Width)
	m.viper.SetDefault("window.height", defaults.Window.Height)
	m.viper.SetDefault("window.inner_margin_width", defaults.Window.InnerMarginWidth)
	m.viper.SetDefault("window.inner_margin_height", defaults.Window.InnerMarginHeight)
	m.viper.SetDefault("window.screen_margins", defaults.Window.ScreenMargins)
	m.viper.SetDefault("window_position.x", defaults.WindowPosition.X)
	m.viper.SetDefault("window_position.y", defaults.WindowPosition.Y)
}

func (m *Manager) setSidebarDefaults(defaults *Config) {
	m.viper.SetDefault("sidebar_relative_x", defaults.SidebarRelativeX)
	m.viper.SetDefault("sidebar_relative_y", defaults.SidebarRelativeY)
	m.viper.SetDefault("adsorption_threshold", defaults.AdsorptionThreshold)
	m.viper.SetDefault("sidebar_position.adsorbed_edge", defaults.SidebarPosition.AdsorbedEdge)
	m.viper.SetDefault("sidebar_position.relative_offset_x", defaults.SidebarPosition.RelativeOffsetX)
	m.viper.SetDefault("sidebar_position.relative_offset_y", defaults.SidebarPosition.RelativeOffsetY)
	m.viper.SetDefault("sidebar.width", defaults.Sidebar.Width)
	m.viper.SetDefault("sidebar.height", defaults.Sidebar.Height)
	m.viper.SetDefault("sidebar.control_zone_width", defaults.Sidebar.ControlZoneWidth)
	m.viper.SetDefault("sidebar.control_zone_side", defaults.Sidebar.ControlZoneSide)
	m.viper.SetDefault("sidebar.pin_button", defaults.Sidebar.PinButton)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}
