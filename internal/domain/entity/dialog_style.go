package entity

import "fmt"

// StyleKind identifies how a confirmation is rendered.
type StyleKind int

const (
	// StyleKindAlert is a blocking alert.
	StyleKindAlert StyleKind = iota
	// StyleKindSheet is a dialog attached to a window or anchored to a region.
	StyleKindSheet
)

// String returns the lowercase name of the kind.
func (k StyleKind) String() string {
	switch k {
	case StyleKindAlert:
		return "alert"
	case StyleKindSheet:
		return "sheet"
	default:
		return fmt.Sprintf("StyleKind(%d)", int(k))
	}
}

// Emphasis is the severity an alert is drawn with.
type Emphasis string

const (
	EmphasisWarning       Emphasis = "warning"
	EmphasisInformational Emphasis = "informational"
	EmphasisCritical      Emphasis = "critical"
)

// ParseEmphasis converts a config or flag value into an Emphasis.
func ParseEmphasis(s string) (Emphasis, error) {
	switch Emphasis(s) {
	case EmphasisWarning, EmphasisInformational, EmphasisCritical:
		return Emphasis(s), nil
	case "":
		return EmphasisWarning, nil
	default:
		return "", fmt.Errorf("unknown emphasis %q (want warning, informational or critical)", s)
	}
}

// SurfaceRef is a non-owning handle to a live UI surface (window or screen).
// Hosts resolve it against their live tree at use time.
type SurfaceRef struct {
	id string
}

// NewSurfaceRef wraps a host surface identifier.
func NewSurfaceRef(id string) SurfaceRef {
	return SurfaceRef{id: id}
}

// ID returns the host identifier.
func (r SurfaceRef) ID() string {
	return r.id
}

// IsZero reports whether the ref points nowhere.
func (r SurfaceRef) IsZero() bool {
	return r.id == ""
}

// Style describes how a confirmation dialog should be shown.
type Style struct {
	kind      StyleKind
	target    SurfaceRef
	anchor    Rect
	hasAnchor bool
	emphasis  Emphasis
}

// AlertStyle creates a blocking alert style.
func AlertStyle() Style {
	return Style{kind: StyleKindAlert, emphasis: EmphasisWarning}
}

// SheetStyle creates a sheet attached to the target (or focused) window.
func SheetStyle() Style {
	return Style{kind: StyleKindSheet}
}

// AnchoredSheetStyle creates a sheet anchored to a screen region, the way
// touch-first hosts replace free-floating alerts with action sheets.
func AnchoredSheetStyle(anchor Rect) Style {
	return Style{kind: StyleKindSheet, anchor: anchor, hasAnchor: true}
}

// WithTarget returns a copy of the style with an explicit presenter.
func (s Style) WithTarget(ref SurfaceRef) Style {
	s.target = ref
	return s
}

// WithEmphasis returns a copy of the style with the given emphasis.
// Emphasis only affects alerts.
func (s Style) WithEmphasis(e Emphasis) Style {
	if s.kind == StyleKindAlert {
		s.emphasis = e
	}
	return s
}

// Kind returns the style variant.
func (s Style) Kind() StyleKind {
	return s.kind
}

// Target returns the explicit presenter, if any.
func (s Style) Target() (SurfaceRef, bool) {
	return s.target, !s.target.IsZero()
}

// Anchor returns the anchor region, if any.
func (s Style) Anchor() (Rect, bool) {
	return s.anchor, s.hasAnchor
}

// Emphasis returns the alert emphasis (empty for sheets).
func (s Style) Emphasis() Emphasis {
	return s.emphasis
}

// SurfaceKind classifies a surface for presenter resolution.
type SurfaceKind string

const (
	// SurfaceKindScreen is a regular screen or window.
	SurfaceKindScreen SurfaceKind = "screen"
	// SurfaceKindDialog is a surface hosting a confirmation dialog.
	SurfaceKindDialog SurfaceKind = "dialog"
	// SurfaceKindPopover is a floating transient overlay.
	SurfaceKindPopover SurfaceKind = "popover"
)

// CanPresent reports whether a surface of this kind may host a new dialog.
func (k SurfaceKind) CanPresent() bool {
	return k != SurfaceKindDialog && k != SurfaceKindPopover
}

// Platform identifies the presentation model of a dialog host.
type Platform string

const (
	// PlatformWindowModal hosts dialogs as application-modal windows or
	// window-attached sheets.
	PlatformWindowModal Platform = "window-modal"
	// PlatformOverlay hosts dialogs as overlays above the visible screen.
	PlatformOverlay Platform = "overlay"
)

// DialogFlavor is the concrete presentation a host is asked to build.
type DialogFlavor string

const (
	// FlavorModalAlert is an application-modal alert with its own modal loop.
	FlavorModalAlert DialogFlavor = "modal-alert"
	// FlavorSheet is a dialog attached to a parent window.
	FlavorSheet DialogFlavor = "sheet"
	// FlavorAlert is a centered, unanchored overlay.
	FlavorAlert DialogFlavor = "alert"
	// FlavorActionSheet is an overlay anchored to a screen region.
	FlavorActionSheet DialogFlavor = "action-sheet"
)

// FlavorFor picks the dialog flavor a platform uses for a style.
func FlavorFor(platform Platform, style Style) DialogFlavor {
	if platform == PlatformWindowModal {
		if style.Kind() == StyleKindSheet {
			return FlavorSheet
		}
		return FlavorModalAlert
	}
	if _, ok := style.Anchor(); ok {
		return FlavorActionSheet
	}
	return FlavorAlert
}
