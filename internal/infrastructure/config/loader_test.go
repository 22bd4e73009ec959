package config

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "auto", mgr.viper.GetString("host"))
	assert.Equal(t, "150ms", mgr.viper.GetString("dialog.dismiss_animation"))
	assert.Equal(t, 36, mgr.viper.GetInt("dialog.min_width"))
	assert.Equal(t, "#89b4fa", mgr.viper.GetString("appearance.palette.accent"))
}

func TestManager_LoadCreatesDefaultFile(t *testing.T) {
	dir := t.TempDir()
	mgr, err := NewManager(dir)
	require.NoError(t, err)

	require.NoError(t, mgr.Load())

	assert.FileExists(t, filepath.Join(dir, "config.toml"))
	assert.FileExists(t, filepath.Join(dir, "config.schema.json"))

	cfg := mgr.Get()
	assert.Equal(t, HostAuto, cfg.Host)
	assert.Equal(t, 150*time.Millisecond, cfg.Dialog.DismissAnimation)
	assert.Equal(t, "warning", cfg.Dialog.DefaultEmphasis)
	assert.Equal(t, DefaultConfig().Appearance.Palette, cfg.Appearance.Palette)
}

func TestManager_LoadReadsFileValues(t *testing.T) {
	dir := t.TempDir()
	content := `host = "TUI"
locale = "fr"

[dialog]
dismiss_animation = "300ms"
default_emphasis = "critical"
min_width = 40
max_width = 60
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644))

	mgr, err := NewManager(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, HostTUI, cfg.Host)
	assert.Equal(t, "fr", cfg.Locale)
	assert.Equal(t, 300*time.Millisecond, cfg.Dialog.DismissAnimation)
	assert.Equal(t, "critical", cfg.Dialog.DefaultEmphasis)
	assert.Equal(t, 40, cfg.Dialog.MinWidth)
	assert.Equal(t, "info", cfg.Logging.Level, "unset keys keep defaults")
}

func TestManager_EnvOverrides(t *testing.T) {
	t.Setenv("CONFIRM_HOST", "gtk")
	t.Setenv("CONFIRM_LOG_LEVEL", "debug")

	mgr, err := NewManager(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, HostGTK, cfg.Host)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestManager_LoadRejectsInvalidFile(t *testing.T) {
	dir := t.TempDir()
	content := `host = "x11"

[dialog]
min_width = 5
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644))

	mgr, err := NewManager(dir)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "host must be one of")
	assert.Contains(t, err.Error(), "dialog.min_width must be at least 20")
}

func TestManager_LoadRejectsMalformedTOML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("host = "), 0o644))

	mgr, err := NewManager(dir)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be valid TOML")
}

func TestManager_GetBeforeLoadReturnsDefaults(t *testing.T) {
	mgr, err := NewManager(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), mgr.Get())
}

func TestManager_WatchRequiresLoad(t *testing.T) {
	mgr, err := NewManager(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, mgr.Watch())
}

func TestManager_WatchReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	mgr, err := NewManager(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var seen atomic.Value
	mgr.OnConfigChange(func(cfg *Config) { seen.Store(cfg.Host) })
	require.NoError(t, mgr.Watch())
	require.NoError(t, mgr.Watch(), "second watch is a no-op")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`host = "tui"`+"\n"), 0o644))

	require.Eventually(t, func() bool {
		host, _ := seen.Load().(HostMode)
		return host == HostTUI
	}, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, HostTUI, mgr.Get().Host)
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Host = "GTK"
	cfg.Logging.Level = " Warning "
	cfg.Dialog.DefaultEmphasis = "Critical"

	normalizeConfig(cfg)

	assert.Equal(t, HostGTK, cfg.Host)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "critical", cfg.Dialog.DefaultEmphasis)
}

func TestGetConfigDir_FollowsXDG(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")

	dir, err := GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/xdg-config/confirm", dir)

	file, err := GetConfigFile()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/xdg-config/confirm/config.toml", file)
}

func TestSchemaProvider_GetSchema(t *testing.T) {
	keys := NewSchemaProvider().GetSchema()

	byKey := make(map[string]bool, len(keys))
	for _, k := range keys {
		assert.NotEmpty(t, k.Description, k.Key)
		assert.NotEmpty(t, k.Section, k.Key)
		byKey[k.Key] = true
	}

	for _, want := range []string{
		"host", "locale",
		"logging.level", "logging.format",
		"dialog.dismiss_animation", "dialog.default_emphasis", "dialog.min_width", "dialog.max_width",
		"appearance.palette.accent", "appearance.palette.destructive",
	} {
		assert.True(t, byKey[want], want)
	}
	assert.Equal(t, "150ms", keys[4].Default)
}
