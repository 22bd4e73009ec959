package dialog

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/confirm/internal/domain/entity"
	"github.com/bnema/confirm/internal/infrastructure/config"
)

// Theme holds the lipgloss styles of an overlay box.
type Theme struct {
	Accent      lipgloss.TerminalColor
	Destructive lipgloss.TerminalColor
	Muted       lipgloss.TerminalColor

	Box       lipgloss.Style
	Title     lipgloss.Style
	Message   lipgloss.Style
	Dimmed    lipgloss.Style
	Button    lipgloss.Style
	Focused   lipgloss.Style
	Preferred lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
}

// NewTheme builds the overlay styles from a palette. Empty palette entries
// fall back to the terminal's colors.
func NewTheme(p config.Palette) Theme {
	t := Theme{
		Accent:      colorOf(p.Accent),
		Destructive: colorOf(p.Destructive),
		Muted:       colorOf(p.Muted),
	}
	text := colorOf(p.Text)
	bg := colorOf(p.Background)

	t.Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorOf(p.Border)).
		Background(colorOf(p.Surface)).
		Foreground(text).
		Padding(0, 2)
	t.Title = lipgloss.NewStyle().Bold(true).Foreground(text)
	t.Message = lipgloss.NewStyle().Foreground(text)
	t.Dimmed = lipgloss.NewStyle().Foreground(t.Muted)
	t.Button = lipgloss.NewStyle().Padding(0, 1).Foreground(text)
	t.Focused = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(bg).Background(t.Accent)
	t.Preferred = lipgloss.NewStyle().Underline(true)
	t.HelpKey = lipgloss.NewStyle().Foreground(t.Accent)
	t.HelpDesc = lipgloss.NewStyle().Foreground(t.Muted)
	return t
}

func colorOf(hex string) lipgloss.TerminalColor {
	if hex == "" {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(hex)
}

func emphasisIcon(e entity.Emphasis) string {
	switch e {
	case entity.EmphasisCritical:
		return "⛔"
	case entity.EmphasisInformational:
		return "ℹ"
	case entity.EmphasisWarning:
		return "⚠"
	default:
		return ""
	}
}

func (t Theme) emphasisColor(e entity.Emphasis) lipgloss.TerminalColor {
	switch e {
	case entity.EmphasisCritical:
		return t.Destructive
	case entity.EmphasisInformational:
		return t.Accent
	default:
		return lipgloss.Color("#f9e2af")
	}
}

// renderer draws overlay boxes.
type renderer struct {
	theme    Theme
	keys     KeyMap
	help     help.Model
	minWidth int
	maxWidth int
}

func newRenderer(opts Options) renderer {
	theme := NewTheme(opts.Palette)
	h := help.New()
	h.ShortSeparator = "  "
	h.Styles.ShortKey = theme.HelpKey
	h.Styles.ShortDesc = theme.HelpDesc
	h.Styles.ShortSeparator = theme.HelpDesc

	minWidth := opts.MinWidth
	if minWidth <= 0 {
		minWidth = config.DefaultConfig().Dialog.MinWidth
	}
	maxWidth := max(opts.MaxWidth, minWidth)

	return renderer{
		theme:    theme,
		keys:     DefaultKeyMap(),
		help:     h,
		minWidth: minWidth,
		maxWidth: maxWidth,
	}
}

// render draws the box of o, at most viewportWidth cells wide when the
// viewport is known.
func (r renderer) render(o *overlay, viewportWidth int) string {
	d := o.dialog
	t := r.theme
	frame := t.Box.GetHorizontalFrameSize()

	buttons := r.buttonLabels(o)
	vertical := d.spec.Flavor == entity.FlavorActionSheet

	natural := lipgloss.Width(strings.Join(buttons, " "))
	if vertical {
		natural = 0
		for _, b := range buttons {
			natural = max(natural, lipgloss.Width(b))
		}
	}
	natural = max(natural, lipgloss.Width(d.spec.Title)+3, lipgloss.Width(d.spec.Message))
	width := min(max(natural+frame, r.minWidth), r.maxWidth)
	if viewportWidth > 0 {
		width = min(width, viewportWidth)
	}
	inner := max(width-frame, 1)

	if !vertical && natural > inner && lipgloss.Width(strings.Join(buttons, " ")) > inner {
		vertical = true
	}

	sections := make([]string, 0, 6)
	if d.spec.Title != "" {
		title := d.spec.Title
		if icon := emphasisIcon(d.spec.Emphasis); icon != "" && d.spec.Flavor == entity.FlavorAlert {
			title = lipgloss.NewStyle().Foreground(t.emphasisColor(d.spec.Emphasis)).Render(icon) + " " + title
		}
		sections = append(sections, r.textStyle(o, t.Title).Width(inner).Render(title))
	}
	if d.spec.Message != "" {
		sections = append(sections, r.textStyle(o, t.Message).Width(inner).Render(d.spec.Message))
	}
	if len(sections) > 0 {
		sections = append(sections, "")
	}
	sections = append(sections, r.renderButtons(o, inner, vertical))
	if !o.dismissing {
		sections = append(sections, "", lipgloss.NewStyle().Width(inner).Render(r.help.ShortHelpView(r.keys.ShortHelp())))
	}

	box := t.Box
	if o.dismissing {
		box = box.BorderForeground(t.Muted)
	}
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (r renderer) textStyle(o *overlay, base lipgloss.Style) lipgloss.Style {
	if o.dismissing {
		return r.theme.Dimmed
	}
	return base
}

// buttonLabels numbers the controls so 1-9 can pick them.
func (r renderer) buttonLabels(o *overlay) []string {
	labels := make([]string, len(o.dialog.controls))
	for i, c := range o.dialog.controls {
		labels[i] = r.theme.Button.Render(controlLabel(i, c))
	}
	return labels
}

func controlLabel(i int, c control) string {
	if i < 9 {
		return strconv.Itoa(i+1) + " " + c.spec.Label
	}
	return c.spec.Label
}

func (r renderer) renderButtons(o *overlay, inner int, vertical bool) string {
	t := r.theme
	rendered := make([]string, len(o.dialog.controls))
	for i, c := range o.dialog.controls {
		style := t.Button
		switch {
		case o.dismissing:
			style = t.Dimmed.Padding(0, 1)
		case i == o.focus:
			style = t.Focused
			if c.spec.Kind == entity.ActionKindDestructive {
				style = style.Background(t.Destructive)
			}
		case c.spec.Kind == entity.ActionKindDestructive:
			style = style.Foreground(t.Destructive)
		}
		if c.spec.Preferred && !o.dismissing {
			style = style.Inherit(t.Preferred)
		}
		if vertical {
			style = style.Width(inner).Align(lipgloss.Center)
		}
		rendered[i] = style.Render(controlLabel(i, c))
	}

	if vertical {
		return lipgloss.JoinVertical(lipgloss.Left, rendered...)
	}
	row := strings.Join(rendered, " ")
	return lipgloss.PlaceHorizontal(inner, lipgloss.Right, row)
}
