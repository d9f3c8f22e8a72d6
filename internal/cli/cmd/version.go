package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/filein/sidedock/internal/cli/styles"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"about"},
	Short:   "Show version and build information",
	Long:    `Display version, commit, build date, Go version and repository URL.`,
	RunE:    runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVarP(&versionShort, "short", "s", false, "print a single line")
}

func runVersion(cmd *cobra.Command, _ []string) error {
	renderer := styles.NewAboutRenderer(styles.NewTheme())

	if versionShort {
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderShort(buildInfo))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(buildInfo))
	return nil
}
