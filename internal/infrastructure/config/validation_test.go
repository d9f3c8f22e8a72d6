package config

import (
	"testing"

	"github.com/filein/sidedock/internal/domain/drag"
	"github.com/filein/sidedock/internal/domain/entity"
	"github.com/filein/sidedock/internal/domain/geometry"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeConfig_DefaultsAreClean(t *testing.T) {
	assert.Empty(t, normalizeConfig(DefaultConfig()))
}

func TestNormalizeConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		check  func(*testing.T, *Config)
	}{
		{
			name:   "zero threshold",
			mutate: func(c *Config) { c.AdsorptionThreshold = 0 },
			check:  func(t *testing.T, c *Config) { assert.Equal(t, 20, c.AdsorptionThreshold) },
		},
		{
			name:   "negative sidebar width",
			mutate: func(c *Config) { c.Sidebar.Width = -5 },
			check:  func(t *testing.T, c *Config) { assert.Equal(t, 200, c.Sidebar.Width) },
		},
		{
			name:   "negative screen margins",
			mutate: func(c *Config) { c.Window.ScreenMargins = -1 },
			check:  func(t *testing.T, c *Config) { assert.Equal(t, 10, c.Window.ScreenMargins) },
		},
		{
			name: "unknown edge floats",
			mutate: func(c *Config) {
				c.SidebarPosition = SidebarPositionConfig{AdsorbedEdge: "nowhere", RelativeOffsetX: 3, RelativeOffsetY: 4}
			},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, SidebarPositionConfig{}, c.SidebarPosition)
				assert.True(t, c.DockState().IsFloating())
			},
		},
		{
			name:   "bad control zone side",
			mutate: func(c *Config) { c.Sidebar.ControlZoneSide = "middle" },
			check:  func(t *testing.T, c *Config) { assert.Equal(t, "right", c.Sidebar.ControlZoneSide) },
		},
		{
			name:   "bad log level",
			mutate: func(c *Config) { c.Logging.Level = "loud" },
			check:  func(t *testing.T, c *Config) { assert.Equal(t, "info", c.Logging.Level) },
		},
		{
			name:   "bad log format",
			mutate: func(c *Config) { c.Logging.Format = "xml" },
			check:  func(t *testing.T, c *Config) { assert.Equal(t, "console", c.Logging.Format) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			warnings := normalizeConfig(cfg)

			assert.Len(t, warnings, 1)
			tt.check(t, cfg)
		})
	}
}

func TestNormalizeConfig_CanonicalizesWithoutWarning(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SidebarPosition.AdsorbedEdge = " Bottom "
	cfg.Logging.Level = "WARNING"

	assert.Empty(t, normalizeConfig(cfg))
	assert.Equal(t, "bottom", cfg.SidebarPosition.AdsorbedEdge)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestSanitizeSettings(t *testing.T) {
	v := viper.New()
	v.Set("adsorption_threshold", "close")
	v.Set("window.height", 300.0)
	v.Set("snapshots.enabled", "yes please")

	warnings := sanitizeSettings(v, DefaultConfig())

	assert.Len(t, warnings, 2)
	assert.Equal(t, 20, v.GetInt("adsorption_threshold"))
	assert.Equal(t, 300, v.GetInt("window.height"))
	assert.True(t, v.GetBool("snapshots.enabled"))
}

func TestConfigAccessors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SidebarPosition = SidebarPositionConfig{AdsorbedEdge: "top", RelativeOffsetX: 15, RelativeOffsetY: -60}

	assert.Equal(t, entity.DockedAt(entity.EdgeTop, geometry.Point{X: 15, Y: -60}), cfg.DockState())
	assert.Equal(t, geometry.NewSize(200, 60), cfg.PanelSize())
	assert.Equal(t, drag.ControlZone{Side: entity.EdgeRight, Width: 20}, cfg.ControlZone())
	assert.Equal(t, geometry.NewRect(100, 100, 400, 400), cfg.HostRect())

	host := geometry.NewRect(300, 50, 400, 400)
	assert.Equal(t, geometry.Point{X: 720, Y: 50}, cfg.InitialPosition(host, true))
	assert.Equal(t, geometry.Point{X: 520, Y: 100}, cfg.InitialPosition(geometry.Rect{}, false))
}
