package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))
	assert.Equal(t, "Sidedock Configuration", schema["title"])

	for _, key := range []string{"RootFolder", "adsorption_threshold", "sidebar_position", "adsorbed_edge", "control_zone_width"} {
		assert.Contains(t, string(data), `"`+key+`"`)
	}
}

func TestGenerateSchemaFile(t *testing.T) {
	dir := t.TempDir()

	path, err := GenerateSchemaFile(filepath.Join(dir, "config.json"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.schema.json"), path)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestXDGPaths(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))

	configFile, err := GetConfigFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config", "sidedock", "config.json"), configFile)

	dbFile, err := GetDatabaseFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data", "sidedock", "sidedock.sqlite"), dbFile)

	logFile, err := GetLogFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data", "sidedock", "sidedock.log"), logFile)
}

func TestXDGPaths_DevMode(t *testing.T) {
	t.Setenv("ENV", "dev")
	cwd, err := os.Getwd()
	require.NoError(t, err)

	configDir, err := GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, ".dev", "sidedock"), configDir)
}
