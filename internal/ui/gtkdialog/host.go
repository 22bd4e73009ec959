// Package gtkdialog presents confirmations as GTK 4 windows.
package gtkdialog

import (
	"context"
	"errors"
	"fmt"
	"sync"

	coreglib "github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/google/uuid"

	"github.com/bnema/confirm/internal/application/port"
	"github.com/bnema/confirm/internal/domain/entity"
	"github.com/bnema/confirm/internal/logging"
	"github.com/bnema/confirm/internal/ui/mainloop"
)

// ErrPresenterGone is returned when the window a sheet attaches to closed
// between resolution and dialog construction.
var ErrPresenterGone = errors.New("presenter window is gone")

// Host implements port.DialogHost on top of a running gtk.Application. Its
// methods must be called on the GTK main thread, except Dismiss of the
// dialogs it builds, which may come from any goroutine.
type Host struct {
	app        *gtk.Application
	dispatcher *mainloop.Dispatcher

	mu      sync.Mutex
	refs    map[uintptr]entity.SurfaceRef
	dialogs map[uintptr]struct{}
}

var _ port.DialogHost = (*Host)(nil)

// NewHost wraps app. Windows of app become presenter candidates.
func NewHost(app *gtk.Application) *Host {
	if app == nil {
		panic("gtkdialog.NewHost: app cannot be nil")
	}
	return &Host{
		app: app,
		dispatcher: mainloop.NewDispatcher(func(fn func()) {
			coreglib.IdleAdd(func() bool {
				fn()
				return false
			})
		}),
		refs:    make(map[uintptr]entity.SurfaceRef),
		dialogs: make(map[uintptr]struct{}),
	}
}

// Platform implements port.DialogHost.
func (h *Host) Platform() entity.Platform {
	return entity.PlatformWindowModal
}

// Surfaces implements port.DialogHost.
func (h *Host) Surfaces() port.SurfaceTree {
	return windowTree{host: h}
}

// NewDialog implements port.DialogHost. A nil presenter builds an
// application-modal alert; otherwise the dialog is transient for presenter
// and shown as a sheet when spec.Flavor asks for one.
func (h *Host) NewDialog(ctx context.Context, spec port.DialogSpec, presenter port.Surface) (port.NativeDialog, error) {
	var parent *gtk.Window
	if presenter != nil {
		parent = h.windowFor(presenter.Ref())
		if parent == nil || !parent.IsVisible() {
			return nil, fmt.Errorf("%w: %s", ErrPresenterGone, presenter.Ref().ID())
		}
	} else {
		parent = h.app.ActiveWindow()
	}

	log := logging.FromContext(ctx).With().
		Str("component", "gtk-dialog").
		Logger()

	return newWindowDialog(h, spec, parent, log), nil
}

// Close drops pending main-loop work.
func (h *Host) Close() {
	h.dispatcher.Destroy()
}

func (h *Host) refFor(win *gtk.Window) entity.SurfaceRef {
	key := nativeOf(win)

	h.mu.Lock()
	defer h.mu.Unlock()

	ref, ok := h.refs[key]
	if !ok {
		ref = entity.NewSurfaceRef(uuid.NewString())
		h.refs[key] = ref
	}
	return ref
}

func (h *Host) windowFor(ref entity.SurfaceRef) *gtk.Window {
	if ref.IsZero() {
		return nil
	}
	for _, win := range h.app.Windows() {
		if h.refFor(win) == ref {
			return win
		}
	}
	return nil
}

func (h *Host) isDialog(win *gtk.Window) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, ok := h.dialogs[nativeOf(win)]
	return ok
}

func (h *Host) trackDialog(win *gtk.Window) {
	h.mu.Lock()
	h.dialogs[nativeOf(win)] = struct{}{}
	h.mu.Unlock()
}

func (h *Host) forget(win *gtk.Window) {
	key := nativeOf(win)

	h.mu.Lock()
	delete(h.dialogs, key)
	delete(h.refs, key)
	h.mu.Unlock()
}

func nativeOf(win *gtk.Window) uintptr {
	if win == nil {
		return 0
	}
	return coreglib.BaseObject(win).Native()
}
