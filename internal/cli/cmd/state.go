package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/filein/sidedock/internal/cli/styles"
	"github.com/filein/sidedock/internal/domain/entity"
)

var stateList int

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Show the last recorded dock state",
	Long: `Show the dock snapshot recorded by the most recent committed release.

With --list N the N most recent snapshots are printed as a table
(0 lists all of them).`,
	Args: cobra.NoArgs,
	RunE: runState,
}

func init() {
	rootCmd.AddCommand(stateCmd)
	stateCmd.Flags().IntVarP(&stateList, "list", "n", -1, "list the N most recent snapshots")
}

func runState(cmd *cobra.Command, _ []string) error {
	if app == nil {
		return errors.New("app not initialized")
	}

	renderer := styles.NewDockRenderer(app.Theme)
	out := cmd.OutOrStdout()
	if app.Snapshots == nil {
		fmt.Fprint(out, renderer.RenderSnapshotsDisabled())
		return nil
	}

	ctx := app.Ctx()
	if stateList >= 0 {
		snaps, err := app.Snapshots.List(ctx, stateList)
		if err != nil {
			return fmt.Errorf("list snapshots: %w", err)
		}
		fmt.Fprint(out, renderer.RenderSnapshots(snaps))
		return nil
	}

	snap, err := app.PersistUC.LatestSnapshot(ctx)
	if errors.Is(err, entity.ErrSnapshotNotFound) {
		fmt.Fprint(out, renderer.RenderNoSnapshots())
		return nil
	}
	if err != nil {
		return fmt.Errorf("load latest snapshot: %w", err)
	}
	fmt.Fprint(out, renderer.RenderSnapshot(snap))
	return nil
}
