package gtkdialog

import (
	"context"
	"fmt"
	"strings"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/confirm/internal/infrastructure/config"
	"github.com/bnema/confirm/internal/logging"
)

// GenerateCSS builds the stylesheet of confirmation windows from a palette.
// Empty palette entries keep the GTK theme's value.
func GenerateCSS(p config.Palette) string {
	var sb strings.Builder

	rule := func(selector string, decls ...string) {
		var body []string
		for i := 0; i+1 < len(decls); i += 2 {
			if decls[i+1] != "" {
				body = append(body, fmt.Sprintf("  %s: %s;", decls[i], decls[i+1]))
			}
		}
		if len(body) == 0 {
			return
		}
		fmt.Fprintf(&sb, "%s {\n%s\n}\n\n", selector, strings.Join(body, "\n"))
	}

	rule("window.confirm-dialog",
		"background-color", p.Surface,
		"color", p.Text,
	)
	rule("window.confirm-dialog label.dim-label",
		"color", p.Muted,
	)
	rule("window.confirm-dialog button",
		"border-color", p.Border,
	)
	rule("window.confirm-dialog button.suggested-action",
		"background-color", p.Accent,
		"color", p.Background,
	)
	rule("window.confirm-dialog button.destructive-action",
		"background-color", p.Destructive,
		"color", p.Background,
	)
	rule("window.confirm-dialog image.critical",
		"color", p.Destructive,
	)
	rule("window.confirm-dialog image.informational",
		"color", p.Accent,
	)

	return strings.TrimSuffix(sb.String(), "\n")
}

// ApplyPalette loads the confirmation stylesheet into display.
func ApplyPalette(ctx context.Context, display *gdk.Display, p config.Palette) {
	log := logging.FromContext(ctx)

	if display == nil {
		log.Warn().Msg("cannot apply palette: display is nil")
		return
	}

	provider := gtk.NewCSSProvider()
	provider.LoadFromString(GenerateCSS(p))
	gtk.StyleContextAddProviderForDisplay(
		display,
		provider,
		gtk.STYLE_PROVIDER_PRIORITY_APPLICATION,
	)
	log.Debug().Msg("dialog palette applied to display")
}
