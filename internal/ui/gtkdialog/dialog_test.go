package gtkdialog

import (
	"testing"

	coreglib "github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/confirm/internal/application/port"
	"github.com/bnema/confirm/internal/domain/entity"
	"github.com/bnema/confirm/internal/infrastructure/config"
	"github.com/bnema/confirm/internal/ui/mainloop"
)

func TestIconName(t *testing.T) {
	assert.Equal(t, "dialog-error-symbolic", iconName(entity.EmphasisCritical))
	assert.Equal(t, "dialog-information-symbolic", iconName(entity.EmphasisInformational))
	assert.Equal(t, "dialog-warning-symbolic", iconName(entity.EmphasisWarning))
	assert.Empty(t, iconName(""))
}

func TestCSSClasses(t *testing.T) {
	tests := []struct {
		name string
		spec port.ControlSpec
		want []string
	}{
		{name: "destructive", spec: port.ControlSpec{Kind: entity.ActionKindDestructive}, want: []string{"destructive-action"}},
		{name: "preferred destructive stays destructive", spec: port.ControlSpec{Kind: entity.ActionKindDestructive, Preferred: true}, want: []string{"destructive-action"}},
		{name: "preferred", spec: port.ControlSpec{Preferred: true}, want: []string{"suggested-action"}},
		{name: "plain", spec: port.ControlSpec{}, want: nil},
		{name: "cancel", spec: port.ControlSpec{Kind: entity.ActionKindCancel}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cssClasses(tt.spec))
		})
	}
}

func TestCancelIndex(t *testing.T) {
	controls := []control{
		{spec: port.ControlSpec{Label: "Delete", Kind: entity.ActionKindDestructive}},
		{spec: port.ControlSpec{Label: "Cancel", Kind: entity.ActionKindCancel}},
	}
	assert.Equal(t, 1, cancelIndex(controls))
	assert.Equal(t, -1, cancelIndex(controls[:1]))
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, zerolog.ErrorLevel, levelFor(coreglib.LogLevelError))
	assert.Equal(t, zerolog.ErrorLevel, levelFor(coreglib.LogLevelCritical))
	assert.Equal(t, zerolog.WarnLevel, levelFor(coreglib.LogLevelWarning))
	assert.Equal(t, zerolog.InfoLevel, levelFor(coreglib.LogLevelMessage))
	assert.Equal(t, zerolog.InfoLevel, levelFor(coreglib.LogLevelInfo))
	assert.Equal(t, zerolog.DebugLevel, levelFor(coreglib.LogLevelDebug))
}

func TestNewHost_PanicsWithoutApp(t *testing.T) {
	assert.Panics(t, func() { NewHost(nil) })
}

func TestGenerateCSS(t *testing.T) {
	css := GenerateCSS(config.DefaultConfig().Appearance.Palette)

	assert.Contains(t, css, "window.confirm-dialog {\n  background-color: #313244;\n  color: #cdd6f4;\n}")
	assert.Contains(t, css, "button.destructive-action {\n  background-color: #f38ba8;\n  color: #1e1e2e;\n}")
	assert.Contains(t, css, "image.critical")

	assert.Empty(t, GenerateCSS(config.Palette{}))

	partial := GenerateCSS(config.Palette{Accent: "#89b4fa"})
	assert.Contains(t, partial, "button.suggested-action {\n  background-color: #89b4fa;\n}")
	assert.NotContains(t, partial, "window.confirm-dialog {")
}

// newIdleDialog builds a window dialog whose main-loop posts are queued in
// idles instead of GLib, so teardown ordering can be driven by hand.
func newIdleDialog(idles *[]func()) *windowDialog {
	host := &Host{dispatcher: mainloop.NewDispatcher(func(fn func()) {
		*idles = append(*idles, fn)
	})}
	return &windowDialog{host: host, log: zerolog.Nop()}
}

func TestWindowDialog_CloseRequestBeforeDismissIdle(t *testing.T) {
	var idles []func()
	d := newIdleDialog(&idles)

	var events []string
	d.callbacks = port.DialogCallbacks{OnClosed: func() { events = append(events, "closed") }}

	d.Dismiss(func() { events = append(events, "dismissed") })
	require.Len(t, idles, 1)
	assert.Empty(t, events)

	d.teardown(d.callbacks.OnClosed, false)
	assert.Equal(t, []string{"dismissed", "closed"}, events)

	idles[0]()
	assert.Equal(t, []string{"dismissed", "closed"}, events)
}

func TestWindowDialog_DismissRunsOnIdle(t *testing.T) {
	var idles []func()
	d := newIdleDialog(&idles)

	ran := false
	d.Dismiss(func() { ran = true })
	assert.False(t, ran)

	require.Len(t, idles, 1)
	idles[0]()
	assert.True(t, ran)
}

func TestWindowDialog_DismissAfterTeardown(t *testing.T) {
	var idles []func()
	d := newIdleDialog(&idles)
	d.teardown(nil, false)

	ran := false
	d.Dismiss(func() { ran = true })
	assert.True(t, ran)
	assert.Empty(t, idles)
}

func TestNewWindowDialog_SheetFollowsFlavor(t *testing.T) {
	alert := newWindowDialog(&Host{}, port.DialogSpec{Flavor: entity.FlavorModalAlert, Emphasis: entity.EmphasisCritical}, nil, zerolog.Nop())
	assert.False(t, alert.sheet)

	sheet := newWindowDialog(&Host{}, port.DialogSpec{Flavor: entity.FlavorSheet}, nil, zerolog.Nop())
	assert.True(t, sheet.sheet)
}
