package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/confirm/internal/domain/build"
	"github.com/bnema/confirm/internal/domain/entity"
)

// Renderer renders one-shot CLI output.
type Renderer struct {
	theme *Theme
}

// NewRenderer creates a renderer with the given theme.
func NewRenderer(theme *Theme) *Renderer {
	return &Renderer{theme: theme}
}

// RenderResult describes a confirmation outcome for humans.
func (r *Renderer) RenderResult(result entity.Result) string {
	action, ok := result.Action()
	if !ok {
		return fmt.Sprintf("%s %s",
			lipgloss.NewStyle().Foreground(r.theme.Muted).Render(IconX),
			r.theme.Subtle.Render("no selection"),
		)
	}

	color := r.theme.Accent
	if action.IsDestructive() {
		color = r.theme.Destructive
	}
	label, _ := action.Label()
	if label == "" {
		label = action.Kind().String()
	}
	return fmt.Sprintf("%s %s %s",
		lipgloss.NewStyle().Foreground(color).Render(IconCheck),
		lipgloss.NewStyle().Foreground(color).Bold(true).Render(label),
		r.theme.Subtle.Render("("+action.Kind().String()+")"),
	)
}

// RenderVersion renders build info as aligned key/value lines.
func (r *Renderer) RenderVersion(info build.Info) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	keyStyle := r.theme.Subtle
	valStyle := r.theme.Highlight

	rows := []struct {
		icon, key, value string
	}{
		{IconVersion, "version", info.Version},
		{IconGitBranch, "commit", info.Commit},
		{IconCalendar, "built", info.BuildDate},
		{IconGo, "go", info.GoVersion},
		{IconGithub, "repo", build.RepoURL()},
	}

	var sb strings.Builder
	for _, row := range rows {
		if row.value == "" {
			continue
		}
		sb.WriteString(fmt.Sprintf("  %s %s %s\n",
			iconStyle.Render(row.icon),
			keyStyle.Render(fmt.Sprintf("%-8s", row.key)),
			valStyle.Render(row.value),
		))
	}
	return sb.String()
}

// RenderConfigPath renders the config file location.
func (r *Renderer) RenderConfigPath(path string, exists bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	status := r.theme.Subtle.Render("(not created yet)")
	if exists {
		status = ""
	}
	return strings.TrimSpace(fmt.Sprintf("%s %s %s",
		iconStyle.Render(IconConfig),
		r.theme.Normal.Render(path),
		status,
	))
}

// RenderError renders an error line.
func (r *Renderer) RenderError(err error) string {
	return fmt.Sprintf("%s %s", r.theme.ErrorStyle.Render(IconX), r.theme.ErrorStyle.Render(err.Error()))
}

// RenderConfigKeys renders documented config keys grouped by section.
func (r *Renderer) RenderConfigKeys(keys []entity.ConfigKeyInfo) string {
	var sb strings.Builder
	section := ""
	for _, k := range keys {
		if k.Section != section {
			if section != "" {
				sb.WriteString("\n")
			}
			section = k.Section
			sb.WriteString(r.theme.BoxHeader.Render(section))
			sb.WriteString("\n")
		}

		def := k.Default
		if def == "" {
			def = `""`
		}
		sb.WriteString(fmt.Sprintf("  %s %s %s\n",
			r.theme.Highlight.Render(k.Key),
			r.theme.Subtle.Render(k.Type),
			r.theme.Normal.Render("= "+def),
		))
		sb.WriteString("    " + r.theme.Subtle.Render(k.Description) + "\n")
		switch {
		case len(k.Values) > 0:
			sb.WriteString("    " + r.theme.Subtle.Render("one of: "+strings.Join(k.Values, ", ")) + "\n")
		case k.Range != "":
			sb.WriteString("    " + r.theme.Subtle.Render("range: "+k.Range) + "\n")
		}
	}
	return sb.String()
}
