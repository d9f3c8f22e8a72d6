package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/filein/sidedock/internal/application/port"
	"github.com/filein/sidedock/internal/application/usecase"
	"github.com/filein/sidedock/internal/domain/adsorption"
	"github.com/filein/sidedock/internal/domain/entity"
	"github.com/filein/sidedock/internal/domain/geometry"
)

const snapshotTimeFormat = "2006-01-02 15:04:05"

// Evaluation is a single adsorption decision with its inputs.
type Evaluation struct {
	Candidate geometry.Point
	Size      geometry.Size
	Host      geometry.Rect
	Threshold int
	Distances [4]int
	Result    adsorption.Result
}

// DockRenderer renders docking decisions and dock snapshots.
type DockRenderer struct {
	theme *Theme
}

// NewDockRenderer creates a new dock renderer with the given theme.
func NewDockRenderer(theme *Theme) *DockRenderer {
	return &DockRenderer{theme: theme}
}

// EdgeLabel returns a display name for an edge.
func EdgeLabel(edge entity.Edge) string {
	if edge == entity.EdgeNone {
		return "floating"
	}
	return edge.String()
}

// RenderEvaluation renders the per-edge distances and the decision.
func (r *DockRenderer) RenderEvaluation(ev Evaluation) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	keyStyle := r.theme.Subtle

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n  %s %s %s  %s %s  %s %s\n",
		iconStyle.Render(IconMagnet),
		keyStyle.Render("host"), r.theme.Normal.Render(ev.Host.String()),
		keyStyle.Render("panel"), r.theme.Normal.Render(geometry.RectAt(ev.Candidate, ev.Size).String()),
		keyStyle.Render("threshold"), r.theme.Normal.Render(fmt.Sprintf("%d", ev.Threshold)),
	)

	for i, edge := range entity.Edges {
		d := ev.Distances[i]
		style := r.theme.Subtle
		marker := " "
		if edge == ev.Result.Edge {
			style = r.theme.Highlight
			marker = IconArrow
		}
		fmt.Fprintf(&sb, "  %s %-7s %s\n", iconStyle.Render(marker), keyStyle.Render(edge.String()), style.Render(fmt.Sprintf("%d", d)))
	}

	sb.WriteString("\n  ")
	sb.WriteString(r.renderDecision(ev.Result, ev.Candidate))
	sb.WriteString("\n")
	return sb.String()
}

func (r *DockRenderer) renderDecision(res adsorption.Result, candidate geometry.Point) string {
	if !res.Snapped() {
		return fmt.Sprintf("%s %s at %s",
			r.theme.BadgeMuted.Render("floating"),
			r.theme.Subtle.Render("stays"),
			r.theme.Normal.Render(candidate.String()),
		)
	}
	return fmt.Sprintf("%s %s %s",
		r.theme.Badge.Render("snap "+res.Edge.String()),
		r.theme.Subtle.Render("moves to"),
		r.theme.Highlight.Render(res.Position.String()),
	)
}

// RenderSimulation renders every replayed step followed by the committed state.
func (r *DockRenderer) RenderSimulation(out *usecase.SimulateDragOutput) string {
	rows := make([]table.Row, 0, len(out.Steps))
	for i, step := range out.Steps {
		edge, distance := "", ""
		if step.Accepted && step.Event.Kind != port.PointerDown {
			edge = EdgeLabel(step.Result.Edge)
			if step.Result.Distance >= 0 {
				distance = fmt.Sprintf("%d", step.Result.Distance)
			}
		}
		accepted := "no"
		if step.Accepted {
			accepted = "yes"
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%s %s", step.Event.Kind, step.Event.Position),
			accepted,
			step.Position.String(),
			edge,
			distance,
		})
	}

	t := NewStyledTable(r.theme, SimulationTableColumns(), rows)

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(t.View())
	sb.WriteString("\n\n  ")
	sb.WriteString(r.RenderState(out.State, out.Final))
	sb.WriteString("\n")
	return sb.String()
}

// RenderState renders a committed dock state.
func (r *DockRenderer) RenderState(state entity.DockState, pos geometry.Point) string {
	if state.IsFloating() {
		return fmt.Sprintf("%s %s %s",
			r.theme.BadgeMuted.Render(IconFloating+" floating"),
			r.theme.Subtle.Render("at"),
			r.theme.Normal.Render(pos.String()),
		)
	}
	return fmt.Sprintf("%s %s %s %s %s",
		r.theme.Badge.Render(IconMagnet+" "+state.Edge.String()),
		r.theme.Subtle.Render("offset"),
		r.theme.Highlight.Render(state.Offset.String()),
		r.theme.Subtle.Render("at"),
		r.theme.Normal.Render(pos.String()),
	)
}

// RenderSnapshot renders the most recent dock snapshot.
func (r *DockRenderer) RenderSnapshot(snap *entity.DockSnapshot) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	keyStyle := r.theme.Subtle

	host := "none"
	if snap.HasHost {
		host = snap.Host.String()
	}

	lines := []string{
		"",
		fmt.Sprintf("  %s %s %s", iconStyle.Render(IconDatabase), keyStyle.Render("Snapshot"), r.theme.Highlight.Render(fmt.Sprintf("#%d", snap.ID))),
		fmt.Sprintf("  %s %s", iconStyle.Render(IconCalendar), r.theme.Normal.Render(snap.CreatedAt.Local().Format(snapshotTimeFormat))),
		fmt.Sprintf("  %s %s", keyStyle.Render("host"), r.theme.Normal.Render(host)),
		"  " + r.RenderState(snap.State, snap.Position),
		"",
	}
	return strings.Join(lines, "\n")
}

// RenderSnapshots renders a table of snapshots, newest first.
func (r *DockRenderer) RenderSnapshots(snaps []*entity.DockSnapshot) string {
	if len(snaps) == 0 {
		return r.RenderNoSnapshots()
	}

	rows := make([]table.Row, 0, len(snaps))
	for _, s := range snaps {
		offset, host := "", ""
		if !s.State.IsFloating() {
			offset = s.State.Offset.String()
		}
		if s.HasHost {
			host = s.Host.String()
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", s.ID),
			EdgeLabel(s.State.Edge),
			offset,
			s.Position.String(),
			host,
			s.CreatedAt.Local().Format(snapshotTimeFormat),
		})
	}

	return "\n" + NewStyledTable(r.theme, SnapshotTableColumns(), rows).View() + "\n"
}

// RenderNoSnapshots renders the empty state.
func (r *DockRenderer) RenderNoSnapshots() string {
	return fmt.Sprintf("\n  %s %s\n",
		lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconInfo),
		r.theme.Subtle.Render("No dock snapshots recorded yet."),
	)
}

// RenderSnapshotsDisabled renders the hint shown when snapshots are off.
func (r *DockRenderer) RenderSnapshotsDisabled() string {
	return fmt.Sprintf("\n  %s %s\n",
		lipgloss.NewStyle().Foreground(r.theme.Warning).Render(IconWarning),
		r.theme.Subtle.Render("Dock snapshots are disabled (snapshots.enabled = false)."),
	)
}
