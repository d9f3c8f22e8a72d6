package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/filein/sidedock/internal/cli/styles"
	"github.com/filein/sidedock/internal/domain/adsorption"
	"github.com/filein/sidedock/internal/domain/entity"
	"github.com/filein/sidedock/internal/domain/geometry"
)

var (
	evalHost      rectFlag
	evalPanel     pointFlag
	evalSize      sizeFlag
	evalThreshold int
	evalJSON      bool
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate one adsorption decision",
	Long: `Evaluate where a panel dropped at --panel would end up.

The distance to each host edge is printed together with the decision. The
host, panel size and threshold default to the values in the config file.

Examples:
  sidedock evaluate --panel 505,120
  sidedock evaluate --host 100,100,400x400 --panel 80,300 --size 200x60
  sidedock evaluate --panel 505,120 --threshold 4 --json`,
	RunE: runEvaluate,
}

func init() {
	rootCmd.AddCommand(evaluateCmd)
	evaluateCmd.Flags().Var(&evalHost, "host", "host window rectangle (default from config)")
	evaluateCmd.Flags().Var(&evalPanel, "panel", "candidate panel top-left corner")
	evaluateCmd.Flags().Var(&evalSize, "size", "panel size (default from config)")
	evaluateCmd.Flags().IntVarP(&evalThreshold, "threshold", "t", -1, "snap distance (default from config)")
	evaluateCmd.Flags().BoolVar(&evalJSON, "json", false, "print the decision as JSON")
	_ = evaluateCmd.MarkFlagRequired("panel")
}

// evaluationJSON is the --json output of evaluate.
type evaluationJSON struct {
	Candidate geometry.Point `json:"candidate"`
	Position  geometry.Point `json:"position"`
	Edge      string         `json:"edge"`
	Distance  int            `json:"distance"`
	Distances map[string]int `json:"distances"`
	Threshold int            `json:"threshold"`
}

func runEvaluate(cmd *cobra.Command, _ []string) error {
	if app == nil {
		return errors.New("app not initialized")
	}

	ev := buildEvaluation()
	if evalJSON {
		out := evaluationJSON{
			Candidate: ev.Candidate,
			Position:  ev.Result.Position,
			Edge:      ev.Result.Edge.String(),
			Distance:  ev.Result.Distance,
			Distances: make(map[string]int, len(entity.Edges)),
			Threshold: ev.Threshold,
		}
		for i, edge := range entity.Edges {
			out.Distances[edge.String()] = ev.Distances[i]
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("encode evaluation: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), styles.NewDockRenderer(app.Theme).RenderEvaluation(ev))
	return nil
}

func buildEvaluation() styles.Evaluation {
	host := app.Config.HostRect()
	if evalHost.set {
		host = evalHost.rect
	}
	size := app.Config.PanelSize()
	if evalSize.set {
		size = evalSize.size
	}
	threshold := app.Config.AdsorptionThreshold
	if evalThreshold >= 0 {
		threshold = evalThreshold
	}

	candidate := evalPanel.point
	return styles.Evaluation{
		Candidate: candidate,
		Size:      size,
		Host:      host,
		Threshold: threshold,
		Distances: adsorption.Distances(candidate, size, host),
		Result:    adsorption.Evaluate(candidate, size, host, threshold),
	}
}
