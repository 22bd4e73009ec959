package port

import (
	"context"

	"github.com/bnema/confirm/internal/domain/entity"
)

// Surface is a live UI surface (window or screen) as seen by presenter
// resolution. Implementations must not keep a surface alive on behalf of
// the engine; once a surface is torn down, SurfaceTree.Lookup stops
// returning it.
type Surface interface {
	// Ref returns the non-owning handle of this surface.
	Ref() entity.SurfaceRef
	// Kind classifies the surface (screen, dialog host, popover).
	Kind() entity.SurfaceKind
	// IsKey reports whether the surface holds input focus. Only meaningful
	// for root surfaces.
	IsKey() bool
	// IsAttached reports whether the surface is loaded and attached to the
	// screen, as opposed to offscreen or detached.
	IsAttached() bool
	// PresentedSurface returns the surface stacked on top of this one, or nil.
	PresentedSurface() Surface
	// ChildSurfaces returns the structural children in declaration order.
	ChildSurfaces() []Surface
}

// SurfaceTree is the host's live surface tree.
type SurfaceTree interface {
	// Roots returns the active top-level surfaces.
	Roots() []Surface
	// Lookup resolves a handle against the live tree.
	Lookup(ref entity.SurfaceRef) (Surface, bool)
}

// DialogSpec describes the native dialog a host should build.
type DialogSpec struct {
	// PresentationID correlates log lines of one presentation.
	PresentationID string
	Title          string
	Message        string
	Flavor         entity.DialogFlavor
	// Anchor is only set for entity.FlavorActionSheet.
	Anchor   entity.Rect
	Emphasis entity.Emphasis
}

// ControlSpec describes one selectable control of a dialog.
type ControlSpec struct {
	Label string
	Kind  entity.ActionKind
	// Preferred binds the control to the default/return affordance.
	Preferred bool
}

// DialogCallbacks are the lifecycle hooks a host reports through.
type DialogCallbacks struct {
	// OnClosed is invoked when the dialog was closed without any control
	// being activated (window closed externally).
	OnClosed func()
	// OnAborted is invoked when the host tore the dialog down before it
	// could be answered.
	OnAborted func()
}

// NativeDialog is a host dialog under construction and, after Show, on screen.
type NativeDialog interface {
	// AddControl appends a control. Controls appear in call order.
	AddControl(spec ControlSpec, activate func())
	// Show displays the dialog. Hosts with a modal loop block until the
	// dialog is closed; overlay hosts return once the overlay is scheduled.
	Show(ctx context.Context, callbacks DialogCallbacks) error
	// Dismiss closes the dialog and calls done once it is gone.
	Dismiss(done func())
}

// DialogHost is the capability interface each UI platform implements.
type DialogHost interface {
	// Platform reports the presentation model of the host.
	Platform() entity.Platform
	// Surfaces returns the live surface tree.
	Surfaces() SurfaceTree
	// NewDialog builds a native dialog for the given presenter. presenter is
	// nil for application-modal alerts.
	NewDialog(ctx context.Context, spec DialogSpec, presenter Surface) (NativeDialog, error)
}

// Localizer looks up user-facing strings by key.
type Localizer interface {
	Localize(key string) string
}
