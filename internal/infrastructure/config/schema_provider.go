package config

import (
	"fmt"

	"github.com/bnema/confirm/internal/domain/entity"
)

// Section names for grouping config keys.
const (
	SectionGeneral    = "General"
	SectionLogging    = "Logging"
	SectionDialog     = "Dialog"
	SectionAppearance = "Appearance"
)

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all configuration keys with their metadata.
func (p *SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	defaults := DefaultConfig()

	keys := make([]entity.ConfigKeyInfo, 0, 16)
	keys = append(keys, p.getGeneralKeys(defaults)...)
	keys = append(keys, p.getLoggingKeys(defaults)...)
	keys = append(keys, p.getDialogKeys(defaults)...)
	keys = append(keys, p.getAppearanceKeys(defaults)...)
	return keys
}

func (*SchemaProvider) getGeneralKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "host",
			Type:        "string",
			Default:     string(defaults.Host),
			Description: "Dialog host; auto picks GTK on a graphical session, else the terminal",
			Values:      []string{string(HostAuto), string(HostGTK), string(HostTUI)},
			Section:     SectionGeneral,
		},
		{
			Key:         "locale",
			Type:        "string",
			Default:     defaults.Locale,
			Description: "BCP 47 tag for built-in labels; empty follows LANG",
			Section:     SectionGeneral,
		},
	}
}

func (*SchemaProvider) getLoggingKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     defaults.Logging.Level,
			Description: "Log verbosity level",
			Values:      []string{"trace", "debug", "info", "warn", "error"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.format",
			Type:        "string",
			Default:     defaults.Logging.Format,
			Description: "Log output format",
			Values:      []string{"console", "json"},
			Section:     SectionLogging,
		},
	}
}

func (*SchemaProvider) getDialogKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "dialog.dismiss_animation",
			Type:        "duration",
			Default:     defaults.Dialog.DismissAnimation.String(),
			Description: "How long a terminal overlay fades before the answer is reported",
			Range:       fmt.Sprintf("0s-%s", maxDismissAnimation),
			Section:     SectionDialog,
		},
		{
			Key:         "dialog.default_emphasis",
			Type:        "string",
			Default:     defaults.Dialog.DefaultEmphasis,
			Description: "Emphasis of alerts that do not ask for one",
			Values: []string{
				string(entity.EmphasisWarning),
				string(entity.EmphasisInformational),
				string(entity.EmphasisCritical),
			},
			Section: SectionDialog,
		},
		{
			Key:         "dialog.min_width",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Dialog.MinWidth),
			Description: "Narrowest terminal overlay box, in cells",
			Range:       fmt.Sprintf(">= %d", minDialogWidth),
			Section:     SectionDialog,
		},
		{
			Key:         "dialog.max_width",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Dialog.MaxWidth),
			Description: "Widest terminal overlay box, in cells",
			Range:       ">= dialog.min_width",
			Section:     SectionDialog,
		},
	}
}

func (*SchemaProvider) getAppearanceKeys(defaults *Config) []entity.ConfigKeyInfo {
	p := defaults.Appearance.Palette
	colors := []struct {
		name, value, desc string
	}{
		{"background", p.Background, "Backdrop behind focused buttons"},
		{"surface", p.Surface, "Overlay box background"},
		{"text", p.Text, "Title, message and button text"},
		{"muted", p.Muted, "Help footer and fading overlays"},
		{"accent", p.Accent, "Focused button and key hints"},
		{"destructive", p.Destructive, "Destructive buttons and critical icons"},
		{"border", p.Border, "Overlay box border"},
	}

	keys := make([]entity.ConfigKeyInfo, 0, len(colors))
	for _, c := range colors {
		keys = append(keys, entity.ConfigKeyInfo{
			Key:         "appearance.palette." + c.name,
			Type:        "color",
			Default:     c.value,
			Description: c.desc + " (#RRGGBB)",
			Section:     SectionAppearance,
		})
	}
	return keys
}
