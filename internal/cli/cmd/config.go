package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/filein/sidedock/internal/cli/styles"
	"github.com/filein/sidedock/internal/infrastructure/config"
)

var (
	configForce   bool
	configPlain   bool
	schemaWrite   bool
	defaultEditor = "vi"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Locate, inspect, initialise and edit the sidedock config file.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long: `Print the configuration after defaults were applied, followed by the
settings that were invalid and replaced by their defaults.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	Long: `Write a config file holding the default values.

An existing file is left alone unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	Long: `Print the JSON schema of the config file. With --write the schema is
saved as config.schema.json next to the config file, where editors pick it up.`,
	Args: cobra.NoArgs,
	RunE: runConfigSchema,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the config file in $VISUAL or $EDITOR",
	Args:  cobra.NoArgs,
	RunE:  runConfigEdit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSchemaCmd)
	configCmd.AddCommand(configEditCmd)

	configShowCmd.Flags().BoolVar(&configPlain, "plain", false, "disable syntax highlighting")
	configSchemaCmd.Flags().BoolVar(&configPlain, "plain", false, "disable syntax highlighting")
	configSchemaCmd.Flags().BoolVarP(&schemaWrite, "write", "w", false, "write config.schema.json next to the config file")
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing config file")
}

// newConfigRenderer highlights only when stdout is a terminal.
func newConfigRenderer(theme *styles.Theme) *styles.ConfigRenderer {
	renderer := styles.NewConfigRenderer(theme)
	renderer.Plain = configPlain || !isatty.IsTerminal(os.Stdout.Fd())
	return renderer
}

// resolveConfigFile returns --config or the XDG location.
func resolveConfigFile() (string, error) {
	if configFile != "" {
		return configFile, nil
	}
	return config.GetConfigFile()
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	if app == nil {
		return errors.New("app not initialized")
	}
	fmt.Fprintln(cmd.OutOrStdout(), app.ConfigManager.GetConfigFile())
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if app == nil {
		return errors.New("app not initialized")
	}

	renderer := newConfigRenderer(app.Theme)
	out := cmd.OutOrStdout()
	if app.ConfigErr != nil {
		fmt.Fprintln(out, renderer.RenderError(app.ConfigErr))
	}

	data, err := json.MarshalIndent(app.Config, "", "    ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	fmt.Fprintln(out, renderer.RenderConfigInfo(app.ConfigManager.GetConfigFile(), app.ConfigManager.Warnings()))
	fmt.Fprintln(out, renderer.RenderJSON(data))
	return nil
}

// runConfigInit runs without the app: loading would create the file first.
func runConfigInit(cmd *cobra.Command, _ []string) error {
	renderer := newConfigRenderer(styles.NewTheme())
	out := cmd.OutOrStdout()

	path, err := resolveConfigFile()
	if err != nil {
		fmt.Fprintln(out, renderer.RenderError(err))
		return nil
	}

	if _, statErr := os.Stat(path); statErr == nil && !configForce {
		fmt.Fprintln(out, renderer.RenderExists(path))
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := config.WriteConfigJSON(config.DefaultConfig(), path); err != nil {
		fmt.Fprintln(out, renderer.RenderError(err))
		return nil
	}
	fmt.Fprintln(out, renderer.RenderCreated("config", path))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	renderer := newConfigRenderer(styles.NewTheme())
	out := cmd.OutOrStdout()

	if !schemaWrite {
		data, err := config.GenerateSchema()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, renderer.RenderJSON(data))
		return nil
	}

	path, err := resolveConfigFile()
	if err != nil {
		fmt.Fprintln(out, renderer.RenderError(err))
		return nil
	}
	schemaFile, err := config.GenerateSchemaFile(path)
	if err != nil {
		fmt.Fprintln(out, renderer.RenderError(err))
		return nil
	}
	fmt.Fprintln(out, renderer.RenderCreated("schema", schemaFile))
	return nil
}

func runConfigEdit(cmd *cobra.Command, _ []string) error {
	if app == nil {
		return errors.New("app not initialized")
	}

	editor := os.Getenv("VISUAL")
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		editor = defaultEditor
	}

	c := exec.CommandContext(cmd.Context(), editor, app.ConfigManager.GetConfigFile())
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("run editor %s: %w", editor, err)
	}
	return nil
}
