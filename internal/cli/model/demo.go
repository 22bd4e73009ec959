package model

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/confirm/internal/application/usecase"
	"github.com/bnema/confirm/internal/cli/styles"
	"github.com/bnema/confirm/internal/domain/entity"
	"github.com/bnema/confirm/internal/infrastructure/config"
	"github.com/bnema/confirm/internal/logging"
	"github.com/bnema/confirm/internal/ui/dialog"
	"github.com/bnema/confirm/internal/ui/screen"
)

const (
	// listTop is the line of the first scenario row in View.
	listTop        = 3
	maxResults     = 6
	panelLifetime  = 2 * time.Second
	panelTitle     = "panel"
	queuedScenario = "Two at once"
)

// ConfigChangedMsg carries a reloaded configuration into the demo.
type ConfigChangedMsg struct {
	Config *config.Config
}

type resultMsg struct {
	scenario string
	result   entity.Result
}

type panelExpiredMsg struct {
	panel *screen.Screen
}

type panelClosedMsg struct{}

type scenario struct {
	name string
	desc string
}

var scenarios = []scenario{
	{name: "Delete project", desc: "critical alert, destructive preferred"},
	{name: "Archive row", desc: "action sheet anchored to this row"},
	{name: queuedScenario, desc: "two alerts queued on the same screen"},
	{name: "Ask main screen", desc: "alert targeted at the root screen"},
	{name: "Closing panel", desc: "panel alert, the panel closes after 2s"},
}

// DemoDeps are the collaborators of the demo.
type DemoDeps struct {
	Root   *screen.Screen
	Host   *dialog.TUIHost
	Engine *usecase.PresentConfirmationUseCase
	Theme  *styles.Theme
}

// DemoModel is an interactive playground exercising the overlay host.
type DemoModel struct {
	ctx    context.Context
	root   *screen.Screen
	panel  *screen.Screen
	host   *dialog.TUIHost
	engine *usecase.PresentConfirmationUseCase

	theme    *styles.Theme
	renderer *styles.Renderer
	keys     styles.DemoKeyMap
	help     help.Model

	cursor   int
	inFlight int
	results  []string
	width    int
	height   int
}

// NewDemo creates the demo model. Its host must be bound to the program
// running it.
func NewDemo(ctx context.Context, deps DemoDeps) DemoModel {
	return DemoModel{
		ctx:      ctx,
		root:     deps.Root,
		host:     deps.Host,
		engine:   deps.Engine,
		theme:    deps.Theme,
		renderer: styles.NewRenderer(deps.Theme),
		keys:     styles.DefaultDemoKeyMap(),
		help:     styles.NewHelp(deps.Theme),
	}
}

// Init implements tea.Model.
func (m DemoModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m DemoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	cmd, consumed := m.host.Layer().Update(msg)
	if consumed {
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width

	case ConfigChangedMsg:
		m.applyConfig(msg.Config)

	case resultMsg:
		m.inFlight--
		line := fmt.Sprintf("%s  %s", m.theme.Subtle.Render(msg.scenario), m.renderer.RenderResult(msg.result))
		m.results = append(m.results, line)
		if len(m.results) > maxResults {
			m.results = m.results[len(m.results)-maxResults:]
		}

	case panelExpiredMsg:
		if msg.panel == m.panel && m.panel != nil {
			m.closePanel()
			return m, notify(panelClosedMsg{})
		}

	case panelClosedMsg:
		// Passing through the layer already dropped overlays of the panel.

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(scenarios)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Surface):
			if m.panel != nil {
				m.closePanel()
				return m, notify(panelClosedMsg{})
			}
			m.openPanel()
		case key.Matches(msg, m.keys.Run):
			return m.run()
		}
	}
	return m, cmd
}

func (m *DemoModel) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	m.theme = styles.NewTheme(cfg)
	m.renderer = styles.NewRenderer(m.theme)
	m.help = styles.NewHelp(m.theme)
	m.help.Width = m.width
	m.host.Layer().SetOptions(dialog.OptionsFromConfig(cfg))
	logging.FromContext(m.ctx).Debug().Msg("demo picked up the new configuration")
}

func (m *DemoModel) openPanel() {
	panel, err := m.root.AddChild(panelTitle)
	if err != nil {
		logging.FromContext(m.ctx).Debug().Err(err).Msg("cannot open panel")
		return
	}
	m.panel = panel
}

func (m *DemoModel) closePanel() {
	m.panel.Remove()
	m.panel = nil
}

func (m DemoModel) run() (tea.Model, tea.Cmd) {
	sc := scenarios[m.cursor]

	switch m.cursor {
	case 0:
		m.inFlight++
		return m, m.present(sc.name, usecase.PresentConfirmationInput{
			Title:       "Delete project?",
			Description: "The project and its history will be removed for good.",
			Actions: []entity.Action{
				entity.CancelAction(),
				entity.DestructiveAction("Delete").AsPreferred(),
			},
			Style: entity.AlertStyle().WithEmphasis(entity.EmphasisCritical),
		})

	case 1:
		m.inFlight++
		anchor := entity.Rect{X: 2, Y: listTop + m.cursor, Width: lipgloss.Width(sc.name), Height: 1}
		return m, m.present(sc.name, usecase.PresentConfirmationInput{
			Actions: []entity.Action{
				entity.DefaultAction("Archive").AsPreferred(),
				entity.DestructiveAction("Delete"),
				entity.CancelAction(),
			},
			Style: entity.AnchoredSheetStyle(anchor),
		})

	case 2:
		m.inFlight += 2
		return m, tea.Batch(
			m.present(sc.name+" #1", usecase.PresentConfirmationInput{
				Title:   "Save changes?",
				Actions: []entity.Action{entity.CancelAction(), entity.DefaultAction("Save").AsPreferred()},
				Style:   entity.AlertStyle().WithEmphasis(entity.EmphasisInformational),
			}),
			m.present(sc.name+" #2", usecase.PresentConfirmationInput{
				Title:   "Discard the draft?",
				Actions: []entity.Action{entity.CancelAction(), entity.DestructiveAction("Discard")},
				Style:   entity.AlertStyle(),
			}),
		)

	case 3:
		m.inFlight++
		return m, m.present(sc.name, usecase.PresentConfirmationInput{
			Title:       "Reload the workspace?",
			Description: "Shown on the main screen even while the panel is open.",
			Actions:     []entity.Action{entity.CancelAction(), entity.DefaultAction("Reload").AsPreferred()},
			Style:       entity.AlertStyle().WithTarget(m.root.Ref()).WithEmphasis(entity.EmphasisInformational),
		})

	default:
		if m.panel == nil {
			m.openPanel()
		}
		if m.panel == nil {
			return m, nil
		}
		m.inFlight++
		panel := m.panel
		return m, tea.Batch(
			m.present(sc.name, usecase.PresentConfirmationInput{
				Title:       "Keep the panel?",
				Description: "The panel closes on its own; the question goes with it.",
				Actions:     []entity.Action{entity.CancelAction(), entity.DefaultAction("Keep").AsPreferred()},
				Style:       entity.AlertStyle().WithTarget(panel.Ref()),
			}),
			tea.Tick(panelLifetime, func(time.Time) tea.Msg { return panelExpiredMsg{panel: panel} }),
		)
	}
}

func (m DemoModel) present(name string, in usecase.PresentConfirmationInput) tea.Cmd {
	ctx, engine := m.ctx, m.engine
	return func() tea.Msg {
		return resultMsg{scenario: name, result: engine.Execute(ctx, in)}
	}
}

func notify(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// View implements tea.Model.
func (m DemoModel) View() string {
	var sb strings.Builder

	sb.WriteString(m.theme.Title.Render("confirm demo"))
	sb.WriteString("\n")
	sb.WriteString(m.theme.Subtle.Render(fmt.Sprintf("%d waiting for an answer", m.inFlight)))
	sb.WriteString("\n\n")

	for i, sc := range scenarios {
		style := m.theme.ListItem
		if i == m.cursor {
			style = m.theme.ListItemSelected
		}
		sb.WriteString(style.Render(sc.name))
		sb.WriteString("  ")
		sb.WriteString(m.theme.Subtle.Render(sc.desc))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	if m.panel != nil {
		sb.WriteString(m.theme.Panel.Render(m.theme.Normal.Render("panel open")))
		sb.WriteString("\n\n")
	}

	if len(m.results) > 0 {
		sb.WriteString(m.theme.BoxHeader.Render("results"))
		sb.WriteString("\n")
		for _, r := range m.results {
			sb.WriteString("  ")
			sb.WriteString(r)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString(m.help.View(m.keys))

	base := sb.String()
	if m.width > 0 && m.height > 0 {
		base = lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top, base)
	}
	return m.host.Layer().View(base)
}
