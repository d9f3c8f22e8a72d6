// Package config loads, watches and persists the sidedock configuration record.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/filein/sidedock/internal/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/tidwall/jsonc"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config         *Config
	viper          *viper.Viper
	path           string
	logger         zerolog.Logger
	mu             sync.RWMutex
	callbacks      []func(*Config)
	warnings       []string
	watching       bool
	skipNextReload bool
}

// Option configures a Manager.
type Option func(*Manager)

// WithConfigFile pins the manager to an explicit config file instead of the
// XDG lookup.
func WithConfigFile(path string) Option {
	return func(m *Manager) {
		m.path = path
	}
}

// WithLogger sets the logger used for load warnings and reload events.
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// NewManager creates a new configuration manager.
func NewManager(opts ...Option) (*Manager, error) {
	m := &Manager{
		viper:     viper.New(),
		logger:    logging.NewFromEnv(),
		callbacks: make([]func(*Config), 0),
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.path == "" {
		configFile, err := GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		m.path = configFile
	}

	v := m.viper
	v.SetConfigType("json")
	v.SetConfigFile(m.path)

	// SIDEDOCK_ADSORPTION_THRESHOLD, SIDEDOCK_SIDEBAR_POSITION_ADSORBED_EDGE, ...
	v.SetEnvPrefix("SIDEDOCK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "SIDEDOCK_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind SIDEDOCK_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "SIDEDOCK_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind SIDEDOCK_LOG_FORMAT: %w", err)
	}

	return m, nil
}

// Load loads the configuration from file and environment variables.
// A missing file is created with defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	return m.decode()
}

func (m *Manager) readConfigFile() error {
	err := m.readInConfig()
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid JSON) and permissions", m.path, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.path,
			createErr,
		)
	}
	if rereadErr := m.readInConfig(); rereadErr != nil {
		return fmt.Errorf(
			"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
			rereadErr,
		)
	}
	return nil
}

// readInConfig feeds the config file to viper. Comments and trailing commas
// are stripped first so hand-edited files stay loadable.
func (m *Manager) readInConfig() error {
	raw, err := os.ReadFile(m.path)
	if err != nil {
		return err
	}
	if err := m.viper.ReadConfig(bytes.NewReader(jsonc.ToJSON(raw))); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	return nil
}

// decode rebuilds m.config from viper. Must be called with m.mu held for write.
func (m *Manager) decode() error {
	config, warnings, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := ensureDatabasePath(config); err != nil {
		return err
	}
	warnings = append(warnings, normalizeConfig(config)...)

	for _, w := range warnings {
		m.logger.Warn().Str("file", m.path).Msg(w)
	}

	m.warnings = warnings
	m.config = config
	return nil
}

// unmarshalConfig decodes the merged settings through a scratch viper so
// malformed values can be replaced without overriding the real instance.
func (m *Manager) unmarshalConfig() (*Config, []string, error) {
	scratch := viper.New()
	if err := scratch.MergeConfigMap(m.viper.AllSettings()); err != nil {
		return nil, nil, fmt.Errorf("failed to merge config settings: %w", err)
	}

	warnings := sanitizeSettings(scratch, DefaultConfig())

	config := &Config{}
	if err := scratch.Unmarshal(config); err != nil {
		return nil, nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.path,
			err,
		)
	}
	return config, warnings, nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// Warnings returns the recoveries applied during the last load.
func (m *Manager) Warnings() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, len(m.warnings))
	copy(out, m.warnings)
	return out
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.path
}

// createDefaultConfig creates a default configuration file.
func (m *Manager) createDefaultConfig() error {
	configFile := m.path

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}
	if err := WriteConfigJSON(DefaultConfig(), configFile); err != nil {
		return err
	}

	m.logger.Info().Str("file", configFile).Msg("created default configuration file")
	return nil
}
