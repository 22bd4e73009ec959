// Package dialog renders confirmations as terminal overlays and chooses the
// dialog host for the current session.
package dialog

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/confirm/internal/infrastructure/config"
)

// Options tune the overlay presentation.
type Options struct {
	DismissAnimation time.Duration
	MinWidth         int
	MaxWidth         int
	Palette          config.Palette
}

// OptionsFromConfig maps the dialog and appearance sections of cfg.
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return Options{
		DismissAnimation: cfg.Dialog.DismissAnimation,
		MinWidth:         cfg.Dialog.MinWidth,
		MaxWidth:         cfg.Dialog.MaxWidth,
		Palette:          cfg.Appearance.Palette,
	}
}

// DefaultOptions returns the options of the default configuration.
func DefaultOptions() Options {
	return OptionsFromConfig(nil)
}

//go:generate mockgen -source=options.go -destination=mocks/mock_sender.go -package=mocks Sender

// Sender delivers a message into a running bubbletea program. *tea.Program
// satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

// taskMsg carries work posted through the host's dispatcher.
type taskMsg struct {
	fn func()
}

// dismissTickMsg advances the dismissal animation of one overlay.
type dismissTickMsg struct {
	overlay *overlay
}
