// Package config loads, validates and watches the confirm configuration file.
package config

import (
	"time"
)

const (
	dirPerm  = 0755 // Standard directory permissions (rwxr-xr-x)
	filePerm = 0644 // Standard file permissions (rw-r--r--)
)

// HostMode selects which dialog host renders confirmations.
type HostMode string

const (
	HostAuto HostMode = "auto"
	HostGTK  HostMode = "gtk"
	HostTUI  HostMode = "tui"
)

// Config is the complete confirm configuration.
type Config struct {
	// Host picks the dialog host: auto, gtk or tui.
	Host HostMode `mapstructure:"host" json:"host" jsonschema:"enum=auto,enum=gtk,enum=tui,default=auto"`
	// Locale is a BCP 47 tag for built-in labels. Empty follows LANG.
	Locale     string           `mapstructure:"locale" json:"locale,omitempty" jsonschema:"example=fr,example=en-US"`
	Logging    LoggingConfig    `mapstructure:"logging" json:"logging"`
	Dialog     DialogConfig     `mapstructure:"dialog" json:"dialog"`
	Appearance AppearanceConfig `mapstructure:"appearance" json:"appearance"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,default=info"`
	Format string `mapstructure:"format" json:"format" jsonschema:"enum=console,enum=json,default=console"`
}

// DialogConfig holds presentation settings shared by the hosts.
type DialogConfig struct {
	// DismissAnimation is how long the terminal overlay takes to fade out.
	DismissAnimation time.Duration `mapstructure:"dismiss_animation" json:"dismiss_animation" jsonschema:"type=string,example=150ms"`
	// DefaultEmphasis applies to alerts that do not set one.
	DefaultEmphasis string `mapstructure:"default_emphasis" json:"default_emphasis" jsonschema:"enum=warning,enum=informational,enum=critical,default=warning"`
	// MinWidth and MaxWidth bound the overlay box, in cells.
	MinWidth int `mapstructure:"min_width" json:"min_width" jsonschema:"minimum=20"`
	MaxWidth int `mapstructure:"max_width" json:"max_width" jsonschema:"minimum=20"`
}

// AppearanceConfig holds colors for the terminal overlay.
type AppearanceConfig struct {
	Palette Palette `mapstructure:"palette" json:"palette"`
}

// Palette colors are #RRGGBB hex strings. Empty means terminal default.
type Palette struct {
	Background  string `mapstructure:"background" json:"background,omitempty"`
	Surface     string `mapstructure:"surface" json:"surface,omitempty"`
	Text        string `mapstructure:"text" json:"text,omitempty"`
	Muted       string `mapstructure:"muted" json:"muted,omitempty"`
	Accent      string `mapstructure:"accent" json:"accent,omitempty"`
	Destructive string `mapstructure:"destructive" json:"destructive,omitempty"`
	Border      string `mapstructure:"border" json:"border,omitempty"`
}
