package gtkdialog

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/confirm/internal/application/port"
	"github.com/bnema/confirm/internal/domain/entity"
)

// windowTree exposes the application's toplevel windows. Windows transient
// for another window are reached through PresentedSurface.
type windowTree struct {
	host *Host
}

func (t windowTree) Roots() []port.Surface {
	var roots []port.Surface
	for _, win := range t.host.app.Windows() {
		if win.TransientFor() != nil {
			continue
		}
		roots = append(roots, t.host.surface(win))
	}
	return roots
}

func (t windowTree) Lookup(ref entity.SurfaceRef) (port.Surface, bool) {
	win := t.host.windowFor(ref)
	if win == nil {
		return nil, false
	}
	return t.host.surface(win), true
}

func (h *Host) surface(win *gtk.Window) windowSurface {
	return windowSurface{host: h, win: win, ref: h.refFor(win)}
}

// windowSurface is a gtk.Window seen as a port.Surface.
type windowSurface struct {
	host *Host
	win  *gtk.Window
	ref  entity.SurfaceRef
}

func (s windowSurface) Ref() entity.SurfaceRef { return s.ref }

func (s windowSurface) Kind() entity.SurfaceKind {
	if s.host.isDialog(s.win) {
		return entity.SurfaceKindDialog
	}
	return entity.SurfaceKindScreen
}

func (s windowSurface) IsKey() bool { return s.win.IsActive() }

func (s windowSurface) IsAttached() bool { return s.win.IsVisible() }

// PresentedSurface returns the visible window transient for s, if any.
func (s windowSurface) PresentedSurface() port.Surface {
	self := nativeOf(s.win)
	for _, win := range s.host.app.Windows() {
		parent := win.TransientFor()
		if parent == nil || nativeOf(parent) != self || !win.IsVisible() {
			continue
		}
		return s.host.surface(win)
	}
	return nil
}

// ChildSurfaces is empty: windows have no structural child surfaces.
func (s windowSurface) ChildSurfaces() []port.Surface { return nil }
