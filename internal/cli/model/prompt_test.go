package model

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/confirm/internal/cli/styles"
	"github.com/bnema/confirm/internal/ui/dialog"
	"github.com/bnema/confirm/internal/ui/screen"
)

func newTestPrompt(t *testing.T) PromptModel {
	t.Helper()
	tree := screen.NewTree()
	tree.AddRoot("confirm")
	host := dialog.NewTUIHost(tree, dialog.DefaultOptions())
	return NewPrompt(host.Layer(), styles.NewTheme(nil))
}

func TestPromptModel_QuitsWhenDone(t *testing.T) {
	m := newTestPrompt(t)

	_, cmd := m.Update(DoneMsg{})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestPromptModel_CtrlCQuits(t *testing.T) {
	m := newTestPrompt(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestPromptModel_ViewFillsWindow(t *testing.T) {
	m := newTestPrompt(t)
	assert.Empty(t, m.View())

	next, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 5})
	view := next.(PromptModel).View()

	lines := strings.Split(view, "\n")
	assert.Len(t, lines, 5)
	for _, l := range lines {
		assert.Equal(t, 20, lipgloss.Width(l))
	}
}
