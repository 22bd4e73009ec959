package gtkdialog

import (
	"context"
	"sync"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/rs/zerolog"

	"github.com/bnema/confirm/internal/application/port"
	"github.com/bnema/confirm/internal/domain/entity"
)

const (
	contentMargin  = 24
	contentSpacing = 12
	buttonSpacing  = 6
	iconPixelSize  = 48
	defaultWidth   = 420
)

type control struct {
	spec     port.ControlSpec
	activate func()
}

// windowDialog is the port.NativeDialog of the GTK host.
type windowDialog struct {
	host   *Host
	spec   port.DialogSpec
	parent *gtk.Window
	sheet  bool
	log    zerolog.Logger

	controls  []control
	callbacks port.DialogCallbacks

	// Main thread only.
	win       *gtk.Window
	preferred *gtk.Button
	loop      *glib.MainLoop

	mu    sync.Mutex
	gone  bool
	dones []func()
}

// newWindowDialog prepares a dialog transient for parent. Only the sheet
// flavor drops the emphasis icon; a targeted alert keeps it.
func newWindowDialog(h *Host, spec port.DialogSpec, parent *gtk.Window, log zerolog.Logger) *windowDialog {
	return &windowDialog{
		host:   h,
		spec:   spec,
		parent: parent,
		sheet:  spec.Flavor == entity.FlavorSheet,
		log:    log,
	}
}

// AddControl implements port.NativeDialog.
func (d *windowDialog) AddControl(spec port.ControlSpec, activate func()) {
	d.controls = append(d.controls, control{spec: spec, activate: activate})
}

// Show implements port.NativeDialog. It runs a nested main loop and returns
// once the window is gone.
func (d *windowDialog) Show(ctx context.Context, callbacks port.DialogCallbacks) error {
	d.callbacks = callbacks
	d.win = d.build()
	d.host.trackDialog(d.win)

	stop := context.AfterFunc(ctx, func() {
		d.host.dispatcher.Run(func() {
			d.log.Debug().Msg("context cancelled, closing dialog")
			d.teardown(d.callbacks.OnAborted, true)
		})
	})
	defer stop()

	d.loop = glib.NewMainLoop(nil, false)
	d.win.Present()
	if d.preferred != nil {
		d.preferred.GrabFocus()
	}
	d.log.Debug().Bool("sheet", d.sheet).Msg("dialog window presented")

	d.loop.Run()
	return nil
}

// Dismiss implements port.NativeDialog. done runs once the window is gone,
// whichever teardown path gets there first.
func (d *windowDialog) Dismiss(done func()) {
	d.mu.Lock()
	if d.gone {
		d.mu.Unlock()
		if done != nil {
			done()
		}
		return
	}
	if done != nil {
		d.dones = append(d.dones, done)
	}
	d.mu.Unlock()

	d.host.dispatcher.Run(func() {
		d.teardown(nil, true)
	})
}

// teardown takes the window down once, runs the pending dismissal callbacks,
// then reports through notify. GTK destroys the window itself when destroy
// is false.
func (d *windowDialog) teardown(notify func(), destroy bool) {
	d.mu.Lock()
	if d.gone {
		d.mu.Unlock()
		return
	}
	d.gone = true
	dones := d.dones
	d.dones = nil
	d.mu.Unlock()

	if d.win != nil {
		d.host.forget(d.win)
		if destroy {
			d.win.Destroy()
		}
	}
	for _, done := range dones {
		done()
	}
	if notify != nil {
		notify()
	}
	if d.loop != nil {
		d.loop.Quit()
	}
}

func (d *windowDialog) build() *gtk.Window {
	win := gtk.NewWindow()
	win.SetTitle(d.spec.Title)
	win.SetModal(true)
	win.SetResizable(false)
	win.SetDefaultSize(defaultWidth, -1)
	win.AddCSSClass("confirm-dialog")
	if d.parent != nil {
		win.SetTransientFor(d.parent)
	}
	win.SetApplication(d.host.app)

	content := gtk.NewBox(gtk.OrientationVertical, contentSpacing)
	content.SetMarginTop(contentMargin)
	content.SetMarginBottom(contentMargin)
	content.SetMarginStart(contentMargin)
	content.SetMarginEnd(contentMargin)

	if icon := iconName(d.spec.Emphasis); icon != "" && !d.sheet {
		image := gtk.NewImageFromIconName(icon)
		image.SetPixelSize(iconPixelSize)
		image.AddCSSClass(string(d.spec.Emphasis))
		content.Append(image)
	}
	if d.spec.Title != "" {
		title := gtk.NewLabel(d.spec.Title)
		title.AddCSSClass("title-2")
		title.SetWrap(true)
		content.Append(title)
	}
	if d.spec.Message != "" {
		message := gtk.NewLabel(d.spec.Message)
		message.SetWrap(true)
		message.SetMaxWidthChars(48)
		if d.spec.Title != "" {
			message.AddCSSClass("dim-label")
		}
		content.Append(message)
	}

	row := gtk.NewBox(gtk.OrientationHorizontal, buttonSpacing)
	row.SetHAlign(gtk.AlignEnd)
	row.SetMarginTop(contentSpacing)
	for _, c := range d.controls {
		btn := gtk.NewButtonWithLabel(c.spec.Label)
		for _, class := range cssClasses(c.spec) {
			btn.AddCSSClass(class)
		}
		activate := c.activate
		btn.ConnectClicked(func() {
			if activate != nil {
				activate()
			}
		})
		if c.spec.Preferred {
			win.SetDefaultWidget(btn)
			d.preferred = btn
		}
		row.Append(btn)
	}
	content.Append(row)
	win.SetChild(content)

	keys := gtk.NewEventControllerKey()
	keys.ConnectKeyPressed(func(keyval, _ uint, _ gdk.ModifierType) bool {
		if keyval != gdk.KEY_Escape {
			return false
		}
		if i := cancelIndex(d.controls); i >= 0 && d.controls[i].activate != nil {
			d.controls[i].activate()
		}
		return true
	})
	win.AddController(keys)

	win.ConnectCloseRequest(func() bool {
		d.log.Debug().Msg("dialog window closed by the user")
		d.teardown(d.callbacks.OnClosed, false)
		return false
	})
	return win
}

func iconName(e entity.Emphasis) string {
	switch e {
	case entity.EmphasisCritical:
		return "dialog-error-symbolic"
	case entity.EmphasisInformational:
		return "dialog-information-symbolic"
	case entity.EmphasisWarning:
		return "dialog-warning-symbolic"
	default:
		return ""
	}
}

// cssClasses maps a control to libadwaita/GTK button style classes.
func cssClasses(spec port.ControlSpec) []string {
	switch {
	case spec.Kind == entity.ActionKindDestructive:
		return []string{"destructive-action"}
	case spec.Preferred:
		return []string{"suggested-action"}
	default:
		return nil
	}
}

func cancelIndex(controls []control) int {
	for i, c := range controls {
		if c.spec.Kind == entity.ActionKindCancel {
			return i
		}
	}
	return -1
}
