package config

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/bnema/confirm/internal/domain/entity"
	domainvalidation "github.com/bnema/confirm/internal/domain/validation"
)

const (
	minDialogWidth      = 20
	maxDismissAnimation = 2 * time.Second
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateHost(config)...)
	validationErrors = append(validationErrors, validateLocale(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateDialog(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateHost(config *Config) []string {
	switch config.Host {
	case HostAuto, HostGTK, HostTUI:
		return nil
	default:
		return []string{fmt.Sprintf("host must be one of: auto, gtk, tui (got: %s)", config.Host)}
	}
}

func validateLocale(config *Config) []string {
	if config.Locale == "" {
		return nil
	}
	if _, err := language.Parse(config.Locale); err != nil {
		return []string{fmt.Sprintf("locale must be a BCP 47 language tag (got: %s)", config.Locale)}
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: trace, debug, info, warn, error (got: %s)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: console, json (got: %s)", config.Logging.Format))
	}
	return validationErrors
}

func validateDialog(config *Config) []string {
	var validationErrors []string
	d := config.Dialog
	if d.DismissAnimation < 0 || d.DismissAnimation > maxDismissAnimation {
		validationErrors = append(validationErrors, "dialog.dismiss_animation must be between 0s and 2s")
	}
	if _, err := entity.ParseEmphasis(d.DefaultEmphasis); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"dialog.default_emphasis must be one of: warning, informational, critical (got: %s)", d.DefaultEmphasis))
	}
	if d.MinWidth < minDialogWidth {
		validationErrors = append(validationErrors, fmt.Sprintf("dialog.min_width must be at least %d", minDialogWidth))
	}
	if d.MaxWidth < d.MinWidth {
		validationErrors = append(validationErrors, "dialog.max_width must be greater than or equal to dialog.min_width")
	}
	return validationErrors
}

func validateAppearance(config *Config) []string {
	p := config.Appearance.Palette
	return domainvalidation.ValidatePaletteHex("appearance.palette",
		domainvalidation.PaletteColor{Name: "background", Value: p.Background},
		domainvalidation.PaletteColor{Name: "surface", Value: p.Surface},
		domainvalidation.PaletteColor{Name: "text", Value: p.Text},
		domainvalidation.PaletteColor{Name: "muted", Value: p.Muted},
		domainvalidation.PaletteColor{Name: "accent", Value: p.Accent},
		domainvalidation.PaletteColor{Name: "destructive", Value: p.Destructive},
		domainvalidation.PaletteColor{Name: "border", Value: p.Border},
	)
}
