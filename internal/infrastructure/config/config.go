package config

import (
	"github.com/filein/sidedock/internal/domain/drag"
	"github.com/filein/sidedock/internal/domain/entity"
	"github.com/filein/sidedock/internal/domain/geometry"
)

// Config represents the complete configuration record for sidedock.
// Key names follow the original config.json layout.
type Config struct {
	// RootFolder is the folder the sidebar's file actions start from.
	RootFolder     string         `mapstructure:"RootFolder" json:"RootFolder"`
	Window         WindowConfig   `mapstructure:"window" json:"window"`
	WindowPosition PositionConfig `mapstructure:"window_position" json:"window_position"`
	// SidebarRelativeX/Y is the floating panel position relative to the host origin.
	SidebarRelativeX int `mapstructure:"sidebar_relative_x" json:"sidebar_relative_x"`
	SidebarRelativeY int `mapstructure:"sidebar_relative_y" json:"sidebar_relative_y"`
	// AdsorptionThreshold is the snap distance in pixels (strictly less than).
	AdsorptionThreshold int                   `mapstructure:"adsorption_threshold" json:"adsorption_threshold"`
	SidebarPosition     SidebarPositionConfig `mapstructure:"sidebar_position" json:"sidebar_position"`
	Sidebar             SidebarConfig         `mapstructure:"sidebar" json:"sidebar"`
	Logging             LoggingConfig         `mapstructure:"logging" json:"logging"`
	Database            DatabaseConfig        `mapstructure:"database" json:"database"`
	Snapshots           SnapshotsConfig       `mapstructure:"snapshots" json:"snapshots"`
}

// WindowConfig describes the host window.
type WindowConfig struct {
	Width             int `mapstructure:"width" json:"width"`
	Height            int `mapstructure:"height" json:"height"`
	InnerMarginWidth  int `mapstructure:"inner_margin_width" json:"inner_margin_width"`
	InnerMarginHeight int `mapstructure:"inner_margin_height" json:"inner_margin_height"`
	ScreenMargins     int `mapstructure:"screen_margins" json:"screen_margins"`
}

// PositionConfig is an absolute screen position.
type PositionConfig struct {
	X int `mapstructure:"x" json:"x"`
	Y int `mapstructure:"y" json:"y"`
}

// SidebarPositionConfig is the persisted dock state.
type SidebarPositionConfig struct {
	// AdsorbedEdge is "left", "right", "top", "bottom" or empty for floating.
	AdsorbedEdge    string `mapstructure:"adsorbed_edge" json:"adsorbed_edge" jsonschema:"description=left or right or top or bottom; empty when floating"`
	RelativeOffsetX int    `mapstructure:"relative_offset_x" json:"relative_offset_x"`
	RelativeOffsetY int    `mapstructure:"relative_offset_y" json:"relative_offset_y"`
}

// SidebarConfig describes the docked panel itself.
type SidebarConfig struct {
	Width  int `mapstructure:"width" json:"width"`
	Height int `mapstructure:"height" json:"height"`
	// ControlZoneWidth is the strip that hosts buttons and never starts a drag.
	ControlZoneWidth int    `mapstructure:"control_zone_width" json:"control_zone_width"`
	ControlZoneSide  string `mapstructure:"control_zone_side" json:"control_zone_side" jsonschema:"enum=left,enum=right,enum=top,enum=bottom"`
	PinButton        bool   `mapstructure:"pin_button" json:"pin_button"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" json:"format" jsonschema:"enum=console,enum=json"`
}

// DatabaseConfig holds the snapshot database location.
type DatabaseConfig struct {
	Path string `mapstructure:"path" json:"path"`
}

// SnapshotsConfig controls dock snapshot recording.
type SnapshotsConfig struct {
	Enabled bool `mapstructure:"enabled" json:"enabled"`
}

// DockState returns the persisted dock state.
func (c *Config) DockState() entity.DockState {
	edge, _ := entity.ParseEdge(c.SidebarPosition.AdsorbedEdge)
	return entity.DockedAt(edge, geometry.Point{
		X: c.SidebarPosition.RelativeOffsetX,
		Y: c.SidebarPosition.RelativeOffsetY,
	})
}

// PanelSize returns the sidebar size.
func (c *Config) PanelSize() geometry.Size {
	return geometry.NewSize(c.Sidebar.Width, c.Sidebar.Height)
}

// ControlZone returns the strip excluded from starting drags.
func (c *Config) ControlZone() drag.ControlZone {
	side, _ := entity.ParseEdge(c.Sidebar.ControlZoneSide)
	return drag.ControlZone{Side: side, Width: c.Sidebar.ControlZoneWidth}
}

// HostRect returns the configured host window rectangle.
func (c *Config) HostRect() geometry.Rect {
	return geometry.NewRect(c.WindowPosition.X, c.WindowPosition.Y, c.Window.Width, c.Window.Height)
}

// SidebarRelative returns the floating panel offset from the host origin.
func (c *Config) SidebarRelative() geometry.Point {
	return geometry.Point{X: c.SidebarRelativeX, Y: c.SidebarRelativeY}
}

// InitialPosition returns where a floating panel starts: the host origin
// plus the relative offset, or the configured window position when no host
// is known.
func (c *Config) InitialPosition(host geometry.Rect, hasHost bool) geometry.Point {
	origin := geometry.Point{X: c.WindowPosition.X, Y: c.WindowPosition.Y}
	if hasHost {
		origin = host.TopLeft()
	}
	return origin.Add(c.SidebarRelative())
}
