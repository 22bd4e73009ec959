// Package model holds the bubbletea models of the confirm commands.
package model

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/confirm/internal/cli/styles"
	"github.com/bnema/confirm/internal/ui/dialog"
)

// DoneMsg tells the prompt that the confirmation was answered.
type DoneMsg struct{}

// PromptModel is the program behind `confirm show` on a terminal: a blank
// backdrop with the confirmation overlay on top.
type PromptModel struct {
	layer  *dialog.Layer
	theme  *styles.Theme
	width  int
	height int
}

// NewPrompt creates a prompt drawing the overlays of layer.
func NewPrompt(layer *dialog.Layer, theme *styles.Theme) PromptModel {
	return PromptModel{layer: layer, theme: theme}
}

// Init implements tea.Model.
func (m PromptModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case DoneMsg:
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}

	cmd, _ := m.layer.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m PromptModel) View() string {
	return m.layer.View(backdrop(m.width, m.height))
}

func backdrop(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	line := strings.Repeat(" ", width)
	return lipgloss.JoinVertical(lipgloss.Left, repeat(line, height)...)
}

func repeat(s string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = s
	}
	return out
}
