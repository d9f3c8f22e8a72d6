package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/filein/sidedock/internal/application/port"
	"github.com/filein/sidedock/internal/logging"
)

// WriteConfigJSON writes the configuration to disk as indented JSON.
// Keys keep their declared case (RootFolder) and struct order.
func WriteConfigJSON(cfg *Config, path string) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	data, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// SaveDockState writes the committed dock state back into the config file.
// It is the only writer of the sidebar_position and sidebar_relative keys.
func (m *Manager) SaveDockState(ctx context.Context, change port.DockChange) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.config == nil {
		return fmt.Errorf("config not loaded")
	}

	cfg := *m.config
	cfg.SidebarPosition = SidebarPositionConfig{AdsorbedEdge: change.State.Edge.String()}
	if !change.State.IsFloating() {
		cfg.SidebarPosition.RelativeOffsetX = change.State.Offset.X
		cfg.SidebarPosition.RelativeOffsetY = change.State.Offset.Y
	}
	rel := change.RelativePosition()
	if !change.HasHost {
		// Loading adds window_position back when no host is known.
		rel = change.Position.Sub(cfg.HostRect().TopLeft())
	}
	cfg.SidebarRelativeX = rel.X
	cfg.SidebarRelativeY = rel.Y

	// Keep the XDG database location implicit in the file.
	onDisk := cfg
	if dbPath, err := GetDatabaseFile(); err == nil && onDisk.Database.Path == dbPath {
		onDisk.Database.Path = ""
	}

	path := m.path
	if err := WriteConfigJSON(&onDisk, path); err != nil {
		return err
	}
	m.config = &cfg

	logging.FromContext(ctx).Debug().
		Str("file", path).
		Str("edge", cfg.SidebarPosition.AdsorbedEdge).
		Int("relative_x", cfg.SidebarRelativeX).
		Int("relative_y", cfg.SidebarRelativeY).
		Msg("dock state saved")

	if m.watching {
		m.skipNextReload = true
		return nil
	}
	if err := m.readInConfig(); err != nil {
		return fmt.Errorf("failed to sync config after save: %w", err)
	}
	return nil
}

var _ port.DockConfigWriter = (*Manager)(nil)
