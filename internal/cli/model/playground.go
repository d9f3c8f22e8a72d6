// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/filein/sidedock/internal/application/port"
	"github.com/filein/sidedock/internal/application/usecase"
	"github.com/filein/sidedock/internal/cli/styles"
	"github.com/filein/sidedock/internal/domain/drag"
	"github.com/filein/sidedock/internal/domain/entity"
	"github.com/filein/sidedock/internal/domain/geometry"
	"github.com/filein/sidedock/internal/logging"
)

const (
	// footerLines is the space below the canvas for status and short help;
	// the full help needs fullHelpLines more.
	footerLines   = 3
	fullHelpLines = 3
	snapFlash     = 350 * time.Millisecond
	hostResizeW   = 2
	hostResizeH   = 1
)

// cellKind is what occupies one canvas cell.
type cellKind int

const (
	cellEmpty cellKind = iota
	cellHost
	cellPanel
	cellControl
	cellButton
	cellButtonActive
)

// snapFlashDoneMsg ends the snap highlight.
type snapFlashDoneMsg struct{}

// PlaygroundConfig holds the dependencies of the playground model.
type PlaygroundConfig struct {
	Panel   *usecase.PanelController
	Buttons *usecase.ManageButtonsUseCase
	Host    *Host
	Screen  *Screen
	// ConfigFile is shown when the settings button is pressed.
	ConfigFile string
}

// PlaygroundModel is the Bubble Tea model for the docking playground.
// The terminal stands in for the screen, one cell per unit.
type PlaygroundModel struct {
	help     help.Model
	keys     styles.PlaygroundKeyMap
	showHelp bool

	width         int
	height        int
	flashing      bool
	statusMessage string
	statusIsError bool

	ctx        context.Context
	panel      *usecase.PanelController
	buttons    *usecase.ManageButtonsUseCase
	host       *Host
	screen     *Screen
	configFile string
	theme      *styles.Theme
	dock       *styles.DockRenderer
}

// NewPlaygroundModel creates a new playground model.
func NewPlaygroundModel(ctx context.Context, theme *styles.Theme, cfg PlaygroundConfig) PlaygroundModel {
	return PlaygroundModel{
		help:       styles.NewHelpModel(theme),
		keys:       styles.DefaultPlaygroundKeyMap(),
		ctx:        ctx,
		panel:      cfg.Panel,
		buttons:    cfg.Buttons,
		host:       cfg.Host,
		screen:     cfg.Screen,
		configFile: cfg.ConfigFile,
		theme:      theme,
		dock:       styles.NewDockRenderer(theme),
	}
}

// Init implements tea.Model.
func (PlaygroundModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PlaygroundModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.screen.Set(geometry.NewRect(0, 0, m.width, m.canvasHeight()))
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case snapFlashDoneMsg:
		m.flashing = false
		return m, nil
	}

	return m, nil
}

func (m PlaygroundModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.HostUp):
		m.moveHost(0, -1)
	case key.Matches(msg, m.keys.HostDown):
		m.moveHost(0, 1)
	case key.Matches(msg, m.keys.HostLeft):
		m.moveHost(-1, 0)
	case key.Matches(msg, m.keys.HostRight):
		m.moveHost(1, 0)

	case key.Matches(msg, m.keys.Grow):
		m.host.Resize(hostResizeW, hostResizeH)
		m.panel.HostChanged(m.ctx)
	case key.Matches(msg, m.keys.Shrink):
		m.host.Resize(-hostResizeW, -hostResizeH)
		m.panel.HostChanged(m.ctx)

	case key.Matches(msg, m.keys.Pin):
		m.togglePin()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		m.screen.Set(geometry.NewRect(0, 0, m.width, m.canvasHeight()))
	}
	return m, nil
}

func (m *PlaygroundModel) moveHost(dx, dy int) {
	m.host.Move(dx, dy)
	m.panel.HostChanged(m.ctx)
}

func (m *PlaygroundModel) togglePin() {
	if m.buttons == nil {
		return
	}
	b, err := m.buttons.Toggle(m.ctx, entity.ButtonPin)
	if err != nil {
		m.setError(err)
		return
	}
	m.setStatus(pinStatus(b.Active))
}

func (m *PlaygroundModel) setStatus(msg string) {
	m.statusMessage = msg
	m.statusIsError = false
}

func (m *PlaygroundModel) setError(err error) {
	m.statusMessage = fmt.Sprintf("Error: %v", err)
	m.statusIsError = true
}

func pinStatus(pinned bool) string {
	if pinned {
		return "Pinned: dragging disabled"
	}
	return "Unpinned"
}

func (m PlaygroundModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	pos := geometry.Point{X: msg.X, Y: msg.Y}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && m.pressButton(pos) {
			return m, nil
		}
		m.panel.PointerDown(m.ctx, port.PointerEvent{Kind: port.PointerDown, Position: pos, Button: toDragButton(msg.Button)})

	case tea.MouseActionMotion:
		m.panel.PointerMove(m.ctx, port.PointerEvent{Kind: port.PointerMove, Position: pos, Button: toDragButton(msg.Button)})

	case tea.MouseActionRelease:
		out, ok := m.panel.PointerUp(m.ctx, port.PointerEvent{Kind: port.PointerUp, Position: pos, Button: releaseButton(msg.Button)})
		if !ok {
			return m, nil
		}
		if out.Snapped {
			m.setStatus(fmt.Sprintf("Snapped to %s edge", out.State.Edge))
			m.flashing = true
			return m, tea.Tick(snapFlash, func(time.Time) tea.Msg { return snapFlashDoneMsg{} })
		}
		m.setStatus(fmt.Sprintf("Floating at %s", out.Position))
	}
	return m, nil
}

// pressButton activates the sidebar button under pos. It reports whether
// pos landed in the control zone.
func (m *PlaygroundModel) pressButton(pos geometry.Point) bool {
	zone := m.panel.ControlZone()
	zoneRect := zone.Rect(m.panel.Rect())
	if !zoneRect.Contains(pos) {
		return false
	}
	if m.buttons == nil {
		return true
	}

	idx := pos.Y - zoneRect.Y
	if zone.Side == entity.EdgeTop || zone.Side == entity.EdgeBottom {
		idx = pos.X - zoneRect.X
	}
	buttons := m.buttons.Buttons()
	if idx < 0 || idx >= len(buttons) {
		return true
	}

	b := buttons[idx]
	cmd, err := m.buttons.Activate(m.ctx, b.ID)
	switch {
	case err != nil:
		m.setError(err)
	case b.ID == entity.ButtonPin:
		m.setStatus(pinStatus(m.panel.Locked()))
	case b.ID == entity.ButtonSettings:
		m.setStatus("Settings: " + m.configFile)
	case cmd != "":
		m.setStatus(fmt.Sprintf("%s: %s", b.Label, cmd))
	default:
		m.setStatus(b.Label)
	}
	logging.FromContext(m.ctx).Debug().Str("button", string(b.ID)).Msg("sidebar button pressed")
	return true
}

func toDragButton(b tea.MouseButton) drag.Button {
	switch b {
	case tea.MouseButtonLeft:
		return drag.ButtonPrimary
	case tea.MouseButtonMiddle:
		return drag.ButtonMiddle
	case tea.MouseButtonRight:
		return drag.ButtonSecondary
	default:
		return drag.ButtonNone
	}
}

// releaseButton maps a release. Some terminals do not report which button
// was released, so an unnamed release counts as the primary button.
func releaseButton(b tea.MouseButton) drag.Button {
	if b == tea.MouseButtonNone {
		return drag.ButtonPrimary
	}
	return toDragButton(b)
}

func (m PlaygroundModel) canvasHeight() int {
	footer := footerLines
	if m.showHelp {
		footer += fullHelpLines
	}
	return max(m.height-footer, 0)
}

// View implements tea.Model.
func (m PlaygroundModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var sb strings.Builder
	sb.WriteString(m.renderCanvas())
	sb.WriteString(m.renderStatus())
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

func (m PlaygroundModel) renderCanvas() string {
	w, h := m.width, m.canvasHeight()
	if h == 0 {
		return ""
	}

	kinds := make([][]cellKind, h)
	runes := make([][]rune, h)
	for y := range h {
		kinds[y] = make([]cellKind, w)
		runes[y] = []rune(strings.Repeat(" ", w))
	}

	fill := func(r geometry.Rect, kind cellKind, ch rune) {
		for y := max(r.Top(), 0); y < min(r.Bottom(), h); y++ {
			for x := max(r.Left(), 0); x < min(r.Right(), w); x++ {
				kinds[y][x] = kind
				runes[y][x] = ch
			}
		}
	}
	label := func(p geometry.Point, text string) {
		if p.Y < 0 || p.Y >= h {
			return
		}
		for i, ch := range []rune(text) {
			if x := p.X + i; x >= 0 && x < w {
				runes[p.Y][x] = ch
			}
		}
	}

	host := m.host.Rect()
	fill(host, cellHost, '·')
	label(host.TopLeft().Add(geometry.Point{X: 1}), " host "+host.String()+" ")

	panelRect := m.panel.Rect()
	zone := m.panel.ControlZone()
	zoneRect := zone.Rect(panelRect)
	fill(panelRect, cellPanel, ' ')
	fill(zoneRect, cellControl, ' ')
	label(panelRect.TopLeft().Add(geometry.Point{X: 1}), styles.EdgeLabel(m.panel.State().Edge))

	if m.buttons != nil && !zoneRect.IsEmpty() {
		for i, b := range m.buttons.Buttons() {
			p := geometry.Point{X: zoneRect.X + zoneRect.Width/2, Y: zoneRect.Y + i}
			if zone.Side == entity.EdgeTop || zone.Side == entity.EdgeBottom {
				p = geometry.Point{X: zoneRect.X + i, Y: zoneRect.Y + zoneRect.Height/2}
			}
			if !zoneRect.Contains(p) || p.X < 0 || p.X >= w || p.Y < 0 || p.Y >= h {
				continue
			}
			kinds[p.Y][p.X] = cellButton
			if b.Kind == entity.ButtonToggle && b.Active {
				kinds[p.Y][p.X] = cellButtonActive
			}
			runes[p.Y][p.X] = buttonGlyph(b)
		}
	}

	styleFor := map[cellKind]lipgloss.Style{
		cellEmpty:        lipgloss.NewStyle(),
		cellHost:         m.theme.HostCell,
		cellPanel:        m.panelStyle(),
		cellControl:      m.theme.ControlCell,
		cellButton:       m.theme.ButtonCell,
		cellButtonActive: m.theme.ButtonCell.Reverse(true),
	}

	var sb strings.Builder
	for y := range h {
		start := 0
		for x := 1; x <= w; x++ {
			if x < w && kinds[y][x] == kinds[y][start] {
				continue
			}
			sb.WriteString(styleFor[kinds[y][start]].Render(string(runes[y][start:x])))
			start = x
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m PlaygroundModel) panelStyle() lipgloss.Style {
	switch {
	case m.flashing:
		return m.theme.PanelSnapped
	case m.panel.Dragging() && m.panel.Preview().Snapped():
		return m.theme.PanelSnapped
	case m.panel.Dragging():
		return m.theme.PanelDragging
	default:
		return m.theme.PanelCell
	}
}

func buttonGlyph(b entity.SidebarButton) rune {
	for _, r := range b.Label {
		return unicode.ToUpper(r)
	}
	return '?'
}

func (m PlaygroundModel) renderStatus() string {
	parts := []string{
		m.dock.RenderState(m.panel.State(), m.panel.Position()),
		m.theme.Subtle.Render(fmt.Sprintf("threshold %d", m.panel.Threshold())),
	}
	if m.panel.Locked() {
		parts = append(parts, m.theme.WarningStyle.Render(styles.IconPin+" pinned"))
	}
	switch {
	case m.statusIsError:
		parts = append(parts, m.theme.ErrorStyle.Render(m.statusMessage))
	case m.statusMessage != "":
		parts = append(parts, m.theme.Normal.Render(m.statusMessage))
	}
	return strings.Join(parts, "  ")
}
