package config

import (
	"fmt"
	"strings"

	"github.com/filein/sidedock/internal/domain/adsorption"
	"github.com/filein/sidedock/internal/domain/entity"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// settingCheck validates one raw setting and supplies its default.
type settingCheck struct {
	key      string
	check    func(any) error
	fallback func(*Config) any
}

func intSetting(key string, fallback func(*Config) int) settingCheck {
	return settingCheck{
		key: key,
		check: func(v any) error {
			_, err := cast.ToIntE(v)
			return err
		},
		fallback: func(c *Config) any { return fallback(c) },
	}
}

func boolSetting(key string, fallback func(*Config) bool) settingCheck {
	return settingCheck{
		key: key,
		check: func(v any) error {
			_, err := cast.ToBoolE(v)
			return err
		},
		fallback: func(c *Config) any { return fallback(c) },
	}
}

var settingChecks = []settingCheck{
	intSetting("window.width", func(c *Config) int { return c.Window.Width }),
	intSetting("window.height", func(c *Config) int { return c.Window.Height }),
	intSetting("window.inner_margin_width", func(c *Config) int { return c.Window.InnerMarginWidth }),
	intSetting("window.inner_margin_height", func(c *Config) int { return c.Window.InnerMarginHeight }),
	intSetting("window.screen_margins", func(c *Config) int { return c.Window.ScreenMargins }),
	intSetting("window_position.x", func(c *Config) int { return c.WindowPosition.X }),
	intSetting("window_position.y", func(c *Config) int { return c.WindowPosition.Y }),
	intSetting("sidebar_relative_x", func(c *Config) int { return c.SidebarRelativeX }),
	intSetting("sidebar_relative_y", func(c *Config) int { return c.SidebarRelativeY }),
	intSetting("adsorption_threshold", func(c *Config) int { return c.AdsorptionThreshold }),
	intSetting("sidebar_position.relative_offset_x", func(c *Config) int { return c.SidebarPosition.RelativeOffsetX }),
	intSetting("sidebar_position.relative_offset_y", func(c *Config) int { return c.SidebarPosition.RelativeOffsetY }),
	intSetting("sidebar.width", func(c *Config) int { return c.Sidebar.Width }),
	intSetting("sidebar.height", func(c *Config) int { return c.Sidebar.Height }),
	intSetting("sidebar.control_zone_width", func(c *Config) int { return c.Sidebar.ControlZoneWidth }),
	boolSetting("sidebar.pin_button", func(c *Config) bool { return c.Sidebar.PinButton }),
	boolSetting("snapshots.enabled", func(c *Config) bool { return c.Snapshots.Enabled }),
}

// sanitizeSettings replaces values that cannot be decoded into their field
// type with the default and reports each replacement.
func sanitizeSettings(v *viper.Viper, defaults *Config) []string {
	var warnings []string
	for _, sc := range settingChecks {
		raw := v.Get(sc.key)
		if raw == nil {
			continue
		}
		if err := sc.check(raw); err != nil {
			fallback := sc.fallback(defaults)
			warnings = append(warnings, fmt.Sprintf("%s: invalid value %v, using default %v", sc.key, raw, fallback))
			v.Set(sc.key, fallback)
		}
	}
	return warnings
}

// normalizeConfig clamps out-of-range values to defaults and canonicalizes
// enumerations. It never fails; every change is reported.
func normalizeConfig(config *Config) []string {
	defaults := DefaultConfig()
	var warnings []string

	warnings = append(warnings, normalizePositive("adsorption_threshold", &config.AdsorptionThreshold, adsorption.DefaultThreshold)...)
	warnings = append(warnings, normalizePositive("window.width", &config.Window.Width, defaults.Window.Width)...)
	warnings = append(warnings, normalizePositive("window.height", &config.Window.Height, defaults.Window.Height)...)
	warnings = append(warnings, normalizePositive("sidebar.width", &config.Sidebar.Width, defaults.Sidebar.Width)...)
	warnings = append(warnings, normalizePositive("sidebar.height", &config.Sidebar.Height, defaults.Sidebar.Height)...)
	warnings = append(warnings, normalizeNonNegative("window.inner_margin_width", &config.Window.InnerMarginWidth, defaults.Window.InnerMarginWidth)...)
	warnings = append(warnings, normalizeNonNegative("window.inner_margin_height", &config.Window.InnerMarginHeight, defaults.Window.InnerMarginHeight)...)
	warnings = append(warnings, normalizeNonNegative("window.screen_margins", &config.Window.ScreenMargins, defaults.Window.ScreenMargins)...)
	warnings = append(warnings, normalizeNonNegative("sidebar.control_zone_width", &config.Sidebar.ControlZoneWidth, defaults.Sidebar.ControlZoneWidth)...)

	warnings = append(warnings, normalizeDockEdge(config)...)
	warnings = append(warnings, normalizeControlZoneSide(config)...)
	warnings = append(warnings, normalizeLogging(config)...)

	return warnings
}

func normalizePositive(key string, value *int, fallback int) []string {
	if *value > 0 {
		return nil
	}
	msg := fmt.Sprintf("%s must be positive, got %d, using default %d", key, *value, fallback)
	*value = fallback
	return []string{msg}
}

func normalizeNonNegative(key string, value *int, fallback int) []string {
	if *value >= 0 {
		return nil
	}
	msg := fmt.Sprintf("%s must be non-negative, got %d, using default %d", key, *value, fallback)
	*value = fallback
	return []string{msg}
}

// normalizeDockEdge maps unknown edges to floating.
func normalizeDockEdge(config *Config) []string {
	raw := config.SidebarPosition.AdsorbedEdge
	edge, ok := entity.ParseEdge(raw)
	config.SidebarPosition.AdsorbedEdge = edge.String()
	if ok {
		return nil
	}
	config.SidebarPosition.RelativeOffsetX = 0
	config.SidebarPosition.RelativeOffsetY = 0
	return []string{fmt.Sprintf("sidebar_position.adsorbed_edge: unknown edge %q, panel will float", raw)}
}

func normalizeControlZoneSide(config *Config) []string {
	raw := config.Sidebar.ControlZoneSide
	edge, ok := entity.ParseEdge(raw)
	if ok && edge != entity.EdgeNone {
		config.Sidebar.ControlZoneSide = edge.String()
		return nil
	}
	config.Sidebar.ControlZoneSide = defaultControlZoneSide
	return []string{fmt.Sprintf("sidebar.control_zone_side: invalid side %q, using default %q", raw, defaultControlZoneSide)}
}

func normalizeLogging(config *Config) []string {
	var warnings []string

	level := strings.ToLower(strings.TrimSpace(config.Logging.Level))
	switch level {
	case "trace", "debug", "info", "warn", "error":
		config.Logging.Level = level
	case "warning":
		config.Logging.Level = "warn"
	default:
		warnings = append(warnings, fmt.Sprintf("logging.level: invalid level %q, using default %q", config.Logging.Level, defaultLogLevel))
		config.Logging.Level = defaultLogLevel
	}

	format := strings.ToLower(strings.TrimSpace(config.Logging.Format))
	switch format {
	case "console", "json":
		config.Logging.Format = format
	default:
		warnings = append(warnings, fmt.Sprintf("logging.format: invalid format %q, using default %q", config.Logging.Format, defaultLogFormat))
		config.Logging.Format = defaultLogFormat
	}

	return warnings
}
