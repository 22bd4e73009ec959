package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	require.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "bad host", mutate: func(c *Config) { c.Host = "x11" }, wantErr: "host must be one of"},
		{name: "bad locale", mutate: func(c *Config) { c.Locale = "not a tag!" }, wantErr: "locale must be a BCP 47"},
		{name: "good locale", mutate: func(c *Config) { c.Locale = "pt-BR" }},
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantErr: "logging.level"},
		{name: "bad format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: "logging.format"},
		{name: "negative animation", mutate: func(c *Config) { c.Dialog.DismissAnimation = -time.Millisecond }, wantErr: "dialog.dismiss_animation"},
		{name: "no animation", mutate: func(c *Config) { c.Dialog.DismissAnimation = 0 }},
		{name: "slow animation", mutate: func(c *Config) { c.Dialog.DismissAnimation = 3 * time.Second }, wantErr: "dialog.dismiss_animation"},
		{name: "bad emphasis", mutate: func(c *Config) { c.Dialog.DefaultEmphasis = "loud" }, wantErr: "dialog.default_emphasis"},
		{name: "narrow", mutate: func(c *Config) { c.Dialog.MinWidth = 10 }, wantErr: "dialog.min_width"},
		{name: "max below min", mutate: func(c *Config) { c.Dialog.MaxWidth = 30 }, wantErr: "dialog.max_width"},
		{name: "bad color", mutate: func(c *Config) { c.Appearance.Palette.Accent = "blue" }, wantErr: "appearance.palette.accent"},
		{name: "empty color", mutate: func(c *Config) { c.Appearance.Palette.Background = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateConfig_ListsEveryViolation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Host = "x11"
	cfg.Logging.Format = "xml"

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed:\n  - host")
	assert.Contains(t, err.Error(), "\n  - logging.format")
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "confirm configuration", doc["title"])

	assert.Contains(t, string(data), `"dismiss_animation"`)
	assert.Contains(t, string(data), `"default_emphasis"`)
	assert.Contains(t, string(data), `"palette"`)
}
