package config

import "time"

const (
	defaultDismissAnimation = 150 * time.Millisecond
	defaultMinWidth         = 36 // cells
	defaultMaxWidth         = 72 // cells
)

// DefaultConfig returns the default configuration values for confirm.
func DefaultConfig() *Config {
	return &Config{
		Host:   HostAuto,
		Locale: "",
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Dialog: DialogConfig{
			DismissAnimation: defaultDismissAnimation,
			DefaultEmphasis:  "warning",
			MinWidth:         defaultMinWidth,
			MaxWidth:         defaultMaxWidth,
		},
		Appearance: AppearanceConfig{
			Palette: Palette{
				Background:  "#1e1e2e",
				Surface:     "#313244",
				Text:        "#cdd6f4",
				Muted:       "#7f849c",
				Accent:      "#89b4fa",
				Destructive: "#f38ba8",
				Border:      "#585b70",
			},
		},
	}
}
