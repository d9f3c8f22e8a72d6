package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

// GenerateSchema returns the JSON schema of the configuration record.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		// Missing keys are filled from defaults.
		RequiredFromJSONSchemaTags: true,
	}
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/filein/sidedock/config.schema.json"
	schema.Title = "Sidedock Configuration"
	schema.Description = "Configuration schema for sidedock, an edge-adsorbing sidebar"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// GenerateSchemaFile writes config.schema.json next to the config file.
func GenerateSchemaFile(configFile string) (string, error) {
	data, err := GenerateSchema()
	if err != nil {
		return "", err
	}

	schemaFile := filepath.Join(filepath.Dir(configFile), schemaFileName)
	if err := os.MkdirAll(filepath.Dir(schemaFile), dirPerm); err != nil {
		return "", fmt.Errorf("failed to create schema directory: %w", err)
	}
	if err := os.WriteFile(schemaFile, data, filePerm); err != nil {
		return "", fmt.Errorf("failed to write schema file: %w", err)
	}
	return schemaFile, nil
}
