package model

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/confirm/internal/application/usecase"
	"github.com/bnema/confirm/internal/cli/styles"
	"github.com/bnema/confirm/internal/infrastructure/config"
	"github.com/bnema/confirm/internal/logging"
	"github.com/bnema/confirm/internal/ui/dialog"
	"github.com/bnema/confirm/internal/ui/dialog/mocks"
	"github.com/bnema/confirm/internal/ui/screen"
)

const waitTimeout = 2 * time.Second

// demoHarness plays the program loop around a DemoModel.
type demoHarness struct {
	t     *testing.T
	model DemoModel
	root  *screen.Screen
	host  *dialog.TUIHost
	msgs  chan tea.Msg
}

func newDemoHarness(t *testing.T) *demoHarness {
	t.Helper()

	ctrl := gomock.NewController(t)
	msgs := make(chan tea.Msg, 256)
	sender := mocks.NewMockSender(ctrl)
	sender.EXPECT().Send(gomock.Any()).Do(func(msg tea.Msg) { msgs <- msg }).AnyTimes()

	opts := dialog.DefaultOptions()
	opts.DismissAnimation = 0

	tree := screen.NewTree()
	root := tree.AddRoot("demo")
	host := dialog.NewTUIHost(tree, opts)
	host.Bind(sender)
	t.Cleanup(host.Close)

	ctx := logging.WithContext(context.Background(), zerolog.Nop())
	m := NewDemo(ctx, DemoDeps{
		Root:   root,
		Host:   host,
		Engine: usecase.NewPresentConfirmationUseCase(host, nil),
		Theme:  styles.NewTheme(nil),
	})

	return &demoHarness{t: t, model: m, root: root, host: host, msgs: msgs}
}

func (h *demoHarness) update(msg tea.Msg) tea.Cmd {
	next, cmd := h.model.Update(msg)
	h.model = next.(DemoModel)
	h.run(cmd)
	return cmd
}

func (h *demoHarness) run(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	go func() {
		msg := cmd()
		if batch, ok := msg.(tea.BatchMsg); ok {
			for _, c := range batch {
				h.run(c)
			}
			return
		}
		if msg != nil {
			h.msgs <- msg
		}
	}()
}

func (h *demoHarness) press(k tea.KeyMsg) {
	h.update(k)
}

func (h *demoHarness) pumpUntil(cond func() bool) {
	h.t.Helper()
	deadline := time.After(waitTimeout)
	for !cond() {
		select {
		case msg := <-h.msgs:
			h.update(msg)
		case <-deadline:
			h.t.Fatal("condition not reached")
		}
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDemoModel_DeleteScenario(t *testing.T) {
	h := newDemoHarness(t)

	h.press(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 1, h.model.inFlight)
	h.pumpUntil(h.host.Layer().Active)

	view := ansi.Strip(h.model.View())
	assert.Contains(t, view, "Delete project?")

	// Focus starts on the preferred destructive action.
	h.press(tea.KeyMsg{Type: tea.KeyEnter})
	h.pumpUntil(func() bool { return len(h.model.results) == 1 })

	assert.Equal(t, 0, h.model.inFlight)
	assert.Contains(t, ansi.Strip(h.model.results[0]), "Delete")
	assert.False(t, h.host.Layer().Active())
}

func TestDemoModel_CursorMoves(t *testing.T) {
	h := newDemoHarness(t)

	h.press(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, h.model.cursor)

	for range scenarios {
		h.press(runes("j"))
	}
	assert.Equal(t, len(scenarios)-1, h.model.cursor)

	h.press(runes("k"))
	assert.Equal(t, len(scenarios)-2, h.model.cursor)
}

func TestDemoModel_TogglePanel(t *testing.T) {
	h := newDemoHarness(t)

	h.press(runes("p"))
	require.NotNil(t, h.model.panel)
	assert.Len(t, h.root.ChildSurfaces(), 1)
	assert.Contains(t, ansi.Strip(h.model.View()), "panel open")

	panel := h.model.panel
	h.press(runes("p"))
	assert.Nil(t, h.model.panel)
	assert.False(t, panel.IsAttached())
	assert.NotContains(t, ansi.Strip(h.model.View()), "panel open")
}

func TestDemoModel_ClosingPanelAbortsItsAlert(t *testing.T) {
	h := newDemoHarness(t)
	h.model.cursor = len(scenarios) - 1

	h.press(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, h.model.panel)
	h.pumpUntil(h.host.Layer().Active)

	h.update(panelExpiredMsg{panel: h.model.panel})
	h.pumpUntil(func() bool { return len(h.model.results) == 1 })

	assert.Contains(t, ansi.Strip(h.model.results[0]), "no selection")
	assert.Nil(t, h.model.panel)
	assert.False(t, h.host.Layer().Active())
}

func TestDemoModel_QueuedScenario(t *testing.T) {
	h := newDemoHarness(t)
	h.model.cursor = 2

	h.press(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 2, h.model.inFlight)
	h.pumpUntil(func() bool { return h.host.Layer().Pending() == 2 && h.host.Layer().Active() })

	h.press(tea.KeyMsg{Type: tea.KeyEsc})
	h.pumpUntil(func() bool { return len(h.model.results) == 1 && h.host.Layer().Active() })
	h.press(tea.KeyMsg{Type: tea.KeyEsc})
	h.pumpUntil(func() bool { return len(h.model.results) == 2 })

	assert.Equal(t, 0, h.model.inFlight)
	for _, r := range h.model.results {
		assert.True(t, strings.Contains(ansi.Strip(r), "cancel"), r)
	}
}

func TestDemoModel_ConfigChange(t *testing.T) {
	h := newDemoHarness(t)
	before := h.model.theme

	cfg := config.DefaultConfig()
	cfg.Appearance.Palette.Accent = "#ff0000"
	h.update(ConfigChangedMsg{Config: cfg})

	assert.NotSame(t, before, h.model.theme)
	assert.Equal(t, "#ff0000", string(h.model.theme.Accent))

	h.update(ConfigChangedMsg{})
	assert.Equal(t, "#ff0000", string(h.model.theme.Accent))
}

func TestDemoModel_Quit(t *testing.T) {
	h := newDemoHarness(t)

	_, cmd := h.model.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
